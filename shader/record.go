package shader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ragetools/shader_catalog_browser/utils"
)

// RecordParameter is the export view of one shader parameter.
type RecordParameter struct {
	Name  string     `json:"name" yaml:"name"`
	Type  string     `json:"type,omitempty" yaml:"type,omitempty"`
	Value [4]float32 `json:"value" yaml:"value,flow"`
}

// Record is the consumer-facing view of one catalog shader: stored
// fields plus derived queries and classifications. Handlers and dump
// exports serialize it as json or yaml.
type Record struct {
	Filename             string            `json:"filename" yaml:"filename"`
	HashToken            string            `json:"hash" yaml:"hash"`
	BaseName             string            `json:"base_name,omitempty" yaml:"base_name,omitempty"`
	RenderBuckets        []int             `json:"render_buckets" yaml:"render_buckets,flow"`
	Layouts              [][]string        `json:"layouts" yaml:"layouts"`
	Parameters           []RecordParameter `json:"parameters" yaml:"parameters,omitempty"`
	RequiredTangent      bool              `json:"required_tangent" yaml:"required_tangent"`
	UsedTexcoords        []string          `json:"used_texcoords" yaml:"used_texcoords,flow"`
	UVAnimationSupported bool              `json:"uv_animation_supported" yaml:"uv_animation_supported"`
	Categories           []string          `json:"categories,omitempty" yaml:"categories,flow,omitempty"`
}

// Record builds the export view of a loaded shader.
func (c *Catalog) Record(sh *Shader) *Record {
	baseName, _ := c.BaseName(sh)

	params := make([]RecordParameter, 0, sh.Parameters.Len())
	for _, p := range sh.ParameterList() {
		params = append(params, RecordParameter{
			Name:  p.Name.Value,
			Type:  p.Type.Value,
			Value: [4]float32(p.Value.Value),
		})
	}

	name := sh.Filename()
	return &Record{
		Filename:             name,
		HashToken:            HashToken(name),
		BaseName:             baseName,
		RenderBuckets:        sh.RenderBuckets.Value,
		Layouts:              sh.LayoutFields(),
		Parameters:           params,
		RequiredTangent:      sh.RequiredTangent(),
		UsedTexcoords:        sh.UsedTexcoords(),
		UVAnimationSupported: sh.IsUVAnimationSupported(),
		Categories:           Categories(name),
	}
}

type recordYAMLType struct {
	Filename             yaml.Node         `yaml:"filename"`
	BaseName             string            `yaml:"base_name,omitempty"`
	RenderBuckets        []int             `yaml:"render_buckets,flow"`
	Layouts              [][]string        `yaml:"layouts"`
	Parameters           []RecordParameter `yaml:"parameters,omitempty"`
	RequiredTangent      bool              `yaml:"required_tangent"`
	UsedTexcoords        []string          `yaml:"used_texcoords,flow"`
	UVAnimationSupported bool              `yaml:"uv_animation_supported"`
	Categories           []string          `yaml:"categories,flow,omitempty"`
}

func (r *Record) MarshalYAML() (interface{}, error) {
	return &recordYAMLType{
		Filename: yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       r.Filename,
			LineComment: fmt.Sprintf("hash 0x%.8x", utils.HashJenkins(r.Filename)),
		},
		BaseName:             r.BaseName,
		RenderBuckets:        r.RenderBuckets,
		Layouts:              r.Layouts,
		Parameters:           r.Parameters,
		RequiredTangent:      r.RequiredTangent,
		UsedTexcoords:        r.UsedTexcoords,
		UVAnimationSupported: r.UVAnimationSupported,
		Categories:           r.Categories,
	}, nil
}

var _ yaml.Marshaler = (*Record)(nil)
