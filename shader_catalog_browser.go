package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ragetools/shader_catalog_browser/config"
	"github.com/ragetools/shader_catalog_browser/shader"
	"github.com/ragetools/shader_catalog_browser/web"
)

func main() {
	var addr, catalog, encoding, find string
	flag.StringVar(&addr, "i", ":8000", "Address of server")
	flag.StringVar(&catalog, "catalog", "", "Path to shader catalog xml document")
	flag.StringVar(&encoding, "encoding", "", "Text encoding of the catalog document (for legacy non-utf8 files). List of available encodings will be printed if invalid encoding provided")
	flag.StringVar(&find, "find", "", "Print one shader record as yaml and exit (filename or hash_XXXXXXXX token)")
	flag.Parse()

	if encoding != "" {
		if err := config.SetEncoding(encoding); err != nil {
			log.Printf("Available encodings: %v", strings.Join(config.ListEncodings(), ", "))
			log.Fatalf("Error setting encoding: %v", err)
		}
	}

	if catalog == "" {
		catalog = config.CatalogName()
	}

	c, err := shader.LoadCatalogFile(catalog)
	if err != nil {
		log.Fatalf("Error loading catalog: %v", err)
	}
	log.Printf("[catalog] Loaded %d shaders from %q", c.Len(), catalog)

	if find != "" {
		sh := c.Find(find)
		if sh == nil {
			log.Fatalf("Shader %q not found", find)
		}
		data, err := yaml.Marshal(c.Record(sh))
		if err != nil {
			log.Fatalf("Error marshaling shader: %v", err)
		}
		fmt.Print(string(data))
		return
	}

	if err := web.StartServer(addr, c); err != nil {
		log.Fatal(err)
	}
}
