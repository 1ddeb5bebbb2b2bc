package xmlmap

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// TextProperty binds one element's character data to a string value.
type TextProperty struct {
	tag   string
	Value string
}

func NewTextProperty(tag string, def string) *TextProperty {
	return &TextProperty{tag: tag, Value: def}
}

func (p *TextProperty) TagName() string { return p.tag }

func (p *TextProperty) Parse(n *Node) error {
	p.Value = n.Text
	return nil
}

func (p *TextProperty) Emit() *Node {
	n := NewNode(p.tag)
	n.Text = p.Value
	return n
}

// IntProperty binds one element's character data to an integer.
// The source text is remembered and echoed back on emit while the
// value is untouched, keeping unmodified round-trips byte-stable.
type IntProperty struct {
	tag   string
	raw   string
	Value int
}

func NewIntProperty(tag string, def int) *IntProperty {
	return &IntProperty{tag: tag, Value: def}
}

func (p *IntProperty) TagName() string { return p.tag }

func (p *IntProperty) Parse(n *Node) error {
	v, err := strconv.Atoi(n.Text)
	if err != nil {
		return formatErrorf(p.tag, "Bad integer %q", n.Text)
	}
	p.raw = n.Text
	p.Value = v
	return nil
}

func (p *IntProperty) Set(v int) {
	p.raw = ""
	p.Value = v
}

func (p *IntProperty) Emit() *Node {
	n := NewNode(p.tag)
	if p.raw != "" {
		n.Text = p.raw
	} else {
		n.Text = strconv.Itoa(p.Value)
	}
	return n
}

type FloatProperty struct {
	tag   string
	raw   string
	Value float64
}

func NewFloatProperty(tag string, def float64) *FloatProperty {
	return &FloatProperty{tag: tag, Value: def}
}

func (p *FloatProperty) TagName() string { return p.tag }

func (p *FloatProperty) Parse(n *Node) error {
	v, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return formatErrorf(p.tag, "Bad float %q", n.Text)
	}
	p.raw = n.Text
	p.Value = v
	return nil
}

func (p *FloatProperty) Set(v float64) {
	p.raw = ""
	p.Value = v
}

func (p *FloatProperty) Emit() *Node {
	n := NewNode(p.tag)
	if p.raw != "" {
		n.Text = p.raw
	} else {
		n.Text = strconv.FormatFloat(p.Value, 'g', -1, 64)
	}
	return n
}

type BoolProperty struct {
	tag   string
	Value bool
}

func NewBoolProperty(tag string, def bool) *BoolProperty {
	return &BoolProperty{tag: tag, Value: def}
}

func (p *BoolProperty) TagName() string { return p.tag }

func (p *BoolProperty) Parse(n *Node) error {
	v, err := strconv.ParseBool(n.Text)
	if err != nil {
		return formatErrorf(p.tag, "Bad bool %q", n.Text)
	}
	p.Value = v
	return nil
}

func (p *BoolProperty) Emit() *Node {
	n := NewNode(p.tag)
	n.Text = strconv.FormatBool(p.Value)
	return n
}

// VectorProperty binds the x/y/z/w attributes of one element to a
// four component vector. Missing attributes keep their default
// component.
type VectorProperty struct {
	tag   string
	raw   [4]string
	has   [4]bool
	Value mgl32.Vec4
}

var vectorAttrNames = [4]string{"x", "y", "z", "w"}

func NewVectorProperty(tag string, def mgl32.Vec4) *VectorProperty {
	return &VectorProperty{tag: tag, Value: def}
}

func (p *VectorProperty) TagName() string { return p.tag }

func (p *VectorProperty) Parse(n *Node) error {
	for i, name := range vectorAttrNames {
		text, ok := n.Attr(name)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return formatErrorf(p.tag, "Bad %s component %q", name, text)
		}
		p.raw[i] = text
		p.has[i] = true
		p.Value[i] = float32(v)
	}
	return nil
}

func (p *VectorProperty) Set(v mgl32.Vec4) {
	p.raw = [4]string{}
	p.has = [4]bool{true, true, true, true}
	p.Value = v
}

// Emit writes back only the components that were parsed or set, so a
// value-less element does not grow zero attributes on round-trip.
func (p *VectorProperty) Emit() *Node {
	n := NewNode(p.tag)
	for i, name := range vectorAttrNames {
		if !p.has[i] {
			continue
		}
		if p.raw[i] != "" {
			n.SetAttr(name, p.raw[i])
		} else {
			n.SetAttr(name, strconv.FormatFloat(float64(p.Value[i]), 'g', -1, 32))
		}
	}
	return n
}
