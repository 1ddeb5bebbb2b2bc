package shader

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ragetools/shader_catalog_browser/utils"
	"github.com/ragetools/shader_catalog_browser/xmlmap"
)

const hashTokenPrefix = "hash_"

// Catalog is the name- and hash-indexed collection of all shader
// records of one catalog document. Build it once with LoadCatalog and
// treat it as read only: concurrent readers need no locking, hot
// reload means load a new catalog and swap the reference.
type Catalog struct {
	shaders       map[string]*Shader
	shadersByHash map[uint32]*Shader
	baseNames     map[*Shader]string
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open catalog %q", path)
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load catalog %q", path)
	}
	return c, nil
}

// LoadCatalog parses the whole catalog document and indexes every
// filename alias of every entry. A structurally malformed entry
// aborts the load; aliases with empty text are skipped. Duplicate
// aliases and hash collisions resolve last write wins.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	root, err := xmlmap.DecodeDocument(r)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		shaders:       make(map[string]*Shader),
		shadersByHash: make(map[uint32]*Shader),
		baseNames:     make(map[*Shader]string),
	}

	for i, entry := range root.Children {
		baseName := xmlmap.NewTextProperty("Name", "")
		if err := xmlmap.RequireField(entry, baseName); err != nil {
			return nil, errors.Wrapf(err, "Entry %d", i)
		}

		aliases := entry.Child("FileName")
		if aliases == nil {
			continue
		}
		for _, aliasNode := range aliases.Children {
			alias := strings.TrimSpace(aliasNode.Text)
			if alias == "" {
				continue
			}

			sh := NewShader()
			if err := sh.Parse(entry); err != nil {
				return nil, errors.Wrapf(err, "Entry %d (%q)", i, baseName.Value)
			}
			sh.FileName.Value = alias

			c.shaders[alias] = sh
			c.shadersByHash[utils.HashJenkins(alias)] = sh
			c.baseNames[sh] = baseName.Value
		}
	}

	return c, nil
}

// Find resolves a shader filename or a "hash_XXXXXXXX" token. Misses
// (including malformed hash tokens) return nil, never an error.
func (c *Catalog) Find(filename string) *Shader {
	if sh, ok := c.shaders[filename]; ok {
		return sh
	}
	if strings.HasPrefix(filename, hashTokenPrefix) {
		if hash, err := strconv.ParseUint(filename[len(hashTokenPrefix):], 16, 32); err == nil {
			return c.shadersByHash[uint32(hash)]
		}
	}
	return nil
}

// FindBaseName resolves the display name of the catalog entry owning
// the given filename alias.
func (c *Catalog) FindBaseName(filename string) (string, bool) {
	sh := c.Find(filename)
	if sh == nil {
		return "", false
	}
	name, ok := c.baseNames[sh]
	return name, ok
}

func (c *Catalog) BaseName(sh *Shader) (string, bool) {
	name, ok := c.baseNames[sh]
	return name, ok
}

// Filenames returns every registered alias, sorted.
func (c *Catalog) Filenames() []string {
	names := make([]string, 0, len(c.shaders))
	for name := range c.shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int { return len(c.shaders) }

// HashToken renders the lookup token of a filename.
func HashToken(filename string) string {
	return fmt.Sprintf("%s%.8x", hashTokenPrefix, utils.HashJenkins(filename))
}
