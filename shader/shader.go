package shader

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ragetools/shader_catalog_browser/xmlmap"
)

// RenderBucketsProperty reads the whitespace separated render bucket
// indices of one text node and writes them back joined with single
// spaces.
type RenderBucketsProperty struct {
	Value []int
}

func NewRenderBucketsProperty() *RenderBucketsProperty {
	return &RenderBucketsProperty{}
}

func (p *RenderBucketsProperty) TagName() string { return "RenderBucket" }

func (p *RenderBucketsProperty) Parse(n *xmlmap.Node) error {
	p.Value = p.Value[:0]
	for _, field := range strings.Fields(n.Text) {
		v, err := strconv.Atoi(field)
		if err != nil {
			return xmlmap.FormatErrorf(p.TagName(), "Bad bucket index %q", field)
		}
		p.Value = append(p.Value, v)
	}
	return nil
}

func (p *RenderBucketsProperty) Emit() *xmlmap.Node {
	n := xmlmap.NewNode(p.TagName())
	buckets := make([]string, len(p.Value))
	for i, v := range p.Value {
		buckets[i] = strconv.Itoa(v)
	}
	n.Text = strings.Join(buckets, " ")
	return n
}

// VertexLayout lists the vertex field tags of one layout entry in
// declaration order (Position, Normal, Tangent, TexCoord0, ...). The
// field names are the child element tags themselves, each child is
// empty.
type VertexLayout struct {
	Value []string
}

func NewVertexLayout() *VertexLayout { return &VertexLayout{} }

func (l *VertexLayout) TagName() string { return "Item" }

func (l *VertexLayout) Parse(n *xmlmap.Node) error {
	l.Value = l.Value[:0]
	for _, c := range n.Children {
		l.Value = append(l.Value, c.Tag)
	}
	return nil
}

func (l *VertexLayout) Emit() *xmlmap.Node {
	n := xmlmap.NewNode(l.TagName())
	for _, name := range l.Value {
		n.Append(xmlmap.NewNode(name))
	}
	return n
}

// Parameter is one named shader parameter: name and type attributes
// plus an x/y/z/w vector payload.
type Parameter struct {
	Name  *xmlmap.TextProperty
	Type  *xmlmap.TextProperty
	Value *xmlmap.VectorProperty
}

func NewParameter() *Parameter {
	return &Parameter{
		Name:  xmlmap.NewTextProperty("Name", ""),
		Type:  xmlmap.NewTextProperty("Type", ""),
		Value: xmlmap.NewVectorProperty("Value", mgl32.Vec4{}),
	}
}

func (p *Parameter) TagName() string { return "Item" }

func (p *Parameter) Parse(n *xmlmap.Node) error {
	if name, ok := n.Attr("name"); ok {
		p.Name.Value = name
	}
	if typ, ok := n.Attr("type"); ok {
		p.Type.Value = typ
	}
	return p.Value.Parse(n)
}

func (p *Parameter) Emit() *xmlmap.Node {
	n := p.Value.Emit()
	n.Tag = p.TagName()
	n.SetAttr("name", p.Name.Value)
	n.SetAttr("type", p.Type.Value)
	return n
}

// Shader is one catalog entry parsed into a typed record. Several
// filename aliases may share the field values of one entry; the
// loader overrides FileName per alias.
type Shader struct {
	FileName      *xmlmap.TextProperty
	RenderBuckets *RenderBucketsProperty
	Layouts       *xmlmap.ListProperty
	Parameters    *xmlmap.ListProperty
}

func NewShader() *Shader {
	return &Shader{
		FileName:      xmlmap.NewTextProperty("Name", ""),
		RenderBuckets: NewRenderBucketsProperty(),
		Layouts: xmlmap.NewListProperty("Layout", func() xmlmap.Property {
			return NewVertexLayout()
		}),
		Parameters: xmlmap.NewListProperty("Parameters", func() xmlmap.Property {
			return NewParameter()
		}),
	}
}

func (s *Shader) TagName() string { return "Item" }

func (s *Shader) Fields() []xmlmap.Property {
	return []xmlmap.Property{s.FileName, s.RenderBuckets, s.Layouts, s.Parameters}
}

func (s *Shader) Parse(n *xmlmap.Node) error { return xmlmap.ParseTree(s, n) }
func (s *Shader) Emit() *xmlmap.Node         { return xmlmap.EmitTree(s) }

func (s *Shader) Filename() string { return s.FileName.Value }

func (s *Shader) LayoutFields() [][]string {
	layouts := make([][]string, 0, s.Layouts.Len())
	for _, item := range s.Layouts.Items {
		layouts = append(layouts, item.(*VertexLayout).Value)
	}
	return layouts
}

func (s *Shader) ParameterList() []*Parameter {
	params := make([]*Parameter, 0, s.Parameters.Len())
	for _, item := range s.Parameters.Items {
		params = append(params, item.(*Parameter))
	}
	return params
}

// RequiredTangent reports whether any declared vertex layout carries
// a Tangent field.
func (s *Shader) RequiredTangent() bool {
	for _, layout := range s.LayoutFields() {
		for _, field := range layout {
			if field == "Tangent" {
				return true
			}
		}
	}
	return false
}

// UsedTexcoords returns the sorted set of TexCoord* field tags used
// by any declared vertex layout.
func (s *Shader) UsedTexcoords() []string {
	seen := make(map[string]struct{})
	for _, layout := range s.LayoutFields() {
		for _, field := range layout {
			if strings.Contains(field, "TexCoord") {
				seen[field] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsUVAnimationSupported reports whether both globalAnimUV0 and
// globalAnimUV1 parameters are declared.
func (s *Shader) IsUVAnimationSupported() bool {
	hasUV0 := false
	hasUV1 := false
	for _, param := range s.ParameterList() {
		switch param.Name.Value {
		case "globalAnimUV0":
			hasUV0 = true
		case "globalAnimUV1":
			hasUV1 = true
		}
	}
	return hasUV0 && hasUV1
}
