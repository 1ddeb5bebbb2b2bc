package xmlmap

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func parseSnippet(t *testing.T, text string) *Node {
	t.Helper()
	n, err := DecodeDocument(strings.NewReader(text))
	if err != nil {
		t.Fatalf("DecodeDocument(%q) error: %v", text, err)
	}
	return n
}

var intRoundTripTests = []string{"0", "-123", "42", "007"}

func TestIntPropertyRoundTrip(t *testing.T) {
	for _, text := range intRoundTripTests {
		p := NewIntProperty("Level", 0)
		if err := p.Parse(parseSnippet(t, "<Level>"+text+"</Level>")); err != nil {
			t.Errorf("Parse(%q) error: %v", text, err)
			continue
		}
		if out := p.Emit().Text; out != text {
			t.Errorf("Emit after Parse(%q)=%q; expected source text back", text, out)
		}
	}
}

func TestIntPropertySetDropsSourceText(t *testing.T) {
	p := NewIntProperty("Level", 0)
	if err := p.Parse(parseSnippet(t, "<Level>007</Level>")); err != nil {
		t.Fatal(err)
	}
	p.Set(8)
	if out := p.Emit().Text; out != "8" {
		t.Errorf("Emit()=%q; expected %q", out, "8")
	}
}

func TestIntPropertyBadValue(t *testing.T) {
	p := NewIntProperty("Level", 0)
	err := p.Parse(parseSnippet(t, "<Level>twelve</Level>"))
	if err == nil {
		t.Fatal("Parse of non-integer text did not fail")
	}
	if !IsFormatError(err) {
		t.Errorf("Parse error %v is not a FormatError", err)
	}
}

func TestFloatPropertyEchoesSourceText(t *testing.T) {
	p := NewFloatProperty("Weight", 0)
	if err := p.Parse(parseSnippet(t, "<Weight>0.50</Weight>")); err != nil {
		t.Fatal(err)
	}
	if p.Value != 0.5 {
		t.Errorf("Value=%v; expected 0.5", p.Value)
	}
	if out := p.Emit().Text; out != "0.50" {
		t.Errorf("Emit()=%q; expected source text %q", out, "0.50")
	}
}

func TestBoolProperty(t *testing.T) {
	p := NewBoolProperty("Enabled", false)
	if err := p.Parse(parseSnippet(t, "<Enabled>true</Enabled>")); err != nil {
		t.Fatal(err)
	}
	if !p.Value {
		t.Error("Value=false; expected true")
	}
	if out := p.Emit().Text; out != "true" {
		t.Errorf("Emit()=%q; expected %q", out, "true")
	}
}

func TestVectorProperty(t *testing.T) {
	p := NewVectorProperty("Color", mgl32.Vec4{})
	if err := p.Parse(parseSnippet(t, `<Color x="1" y="0.25" z="-2" w="1"/>`)); err != nil {
		t.Fatal(err)
	}
	expected := mgl32.Vec4{1, 0.25, -2, 1}
	if p.Value != expected {
		t.Errorf("Value=%v; expected %v", p.Value, expected)
	}
	out := p.Emit()
	if y, _ := out.Attr("y"); y != "0.25" {
		t.Errorf("Emit y=%q; expected %q", y, "0.25")
	}
}

func TestVectorPropertyEmitsOnlyParsedComponents(t *testing.T) {
	p := NewVectorProperty("Color", mgl32.Vec4{})
	if err := p.Parse(parseSnippet(t, `<Color/>`)); err != nil {
		t.Fatal(err)
	}
	if out := p.Emit(); len(out.Attrs) != 0 {
		t.Errorf("Emit of value-less vector produced attrs %v; expected none", out.Attrs)
	}
}

func TestVectorPropertyBadComponent(t *testing.T) {
	p := NewVectorProperty("Color", mgl32.Vec4{})
	if err := p.Parse(parseSnippet(t, `<Color x="one"/>`)); !IsFormatError(err) {
		t.Errorf("Parse error %v; expected FormatError", err)
	}
}

func TestListPropertyPreservesOrder(t *testing.T) {
	l := NewListProperty("Names", func() Property { return NewTextProperty("Item", "") })
	src := "<Names><Item>c</Item><Item>a</Item><Ignored/><Item>b</Item></Names>"
	if err := l.Parse(parseSnippet(t, src)); err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0, l.Len())
	for _, item := range l.Items {
		got = append(got, item.(*TextProperty).Value)
	}
	expected := []string{"c", "a", "b"}
	if len(got) != len(expected) {
		t.Fatalf("Parsed %d items; expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Item %d = %q; expected %q", i, got[i], expected[i])
		}
	}

	reparsed := NewListProperty("Names", func() Property { return NewTextProperty("Item", "") })
	if err := reparsed.Parse(l.Emit()); err != nil {
		t.Fatal(err)
	}
	if reparsed.Len() != l.Len() {
		t.Errorf("Reparsed %d items; expected %d", reparsed.Len(), l.Len())
	}
}

func TestListPropertyEmpty(t *testing.T) {
	l := NewListProperty("Names", func() Property { return NewTextProperty("Item", "") })
	if err := l.Parse(parseSnippet(t, "<Names></Names>")); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("Len()=%d; expected 0", l.Len())
	}
	if out := l.Emit(); len(out.Children) != 0 {
		t.Errorf("Emit produced %d children; expected none", len(out.Children))
	}
}

func TestListPropertyFailsWhole(t *testing.T) {
	l := NewListProperty("Levels", func() Property { return NewIntProperty("Item", 0) })
	err := l.Parse(parseSnippet(t, "<Levels><Item>1</Item><Item>x</Item></Levels>"))
	if err == nil {
		t.Fatal("Parse with one malformed item did not fail")
	}
	if !IsFormatError(err) {
		t.Errorf("Parse error %v is not a FormatError", err)
	}
}

type testMaterial struct {
	Name  *TextProperty
	Level *IntProperty
}

func newTestMaterial() *testMaterial {
	return &testMaterial{
		Name:  NewTextProperty("Name", ""),
		Level: NewIntProperty("Level", 7),
	}
}

func (m *testMaterial) TagName() string { return "Material" }

func (m *testMaterial) Fields() []Property {
	return []Property{m.Name, m.Level}
}

func (m *testMaterial) Parse(n *Node) error { return ParseTree(m, n) }
func (m *testMaterial) Emit() *Node         { return EmitTree(m) }

func TestParseTreeFieldOrderIrrelevant(t *testing.T) {
	m := newTestMaterial()
	src := "<Material><Level>3</Level><Unknown/><Name>glass</Name></Material>"
	if err := ParseTree(m, parseSnippet(t, src)); err != nil {
		t.Fatal(err)
	}
	if m.Name.Value != "glass" || m.Level.Value != 3 {
		t.Errorf("Parsed name=%q level=%d; expected glass/3", m.Name.Value, m.Level.Value)
	}
}

func TestParseTreeKeepsDefaults(t *testing.T) {
	m := newTestMaterial()
	if err := ParseTree(m, parseSnippet(t, "<Material><Name>water</Name></Material>")); err != nil {
		t.Fatal(err)
	}
	if m.Level.Value != 7 {
		t.Errorf("Level=%d; expected default 7", m.Level.Value)
	}
}

func TestEmitTreeDeclaredOrder(t *testing.T) {
	m := newTestMaterial()
	m.Name.Value = "water"
	out := EmitTree(m)
	if len(out.Children) != 2 || out.Children[0].Tag != "Name" || out.Children[1].Tag != "Level" {
		t.Errorf("EmitTree children %+v; expected Name then Level", out.Children)
	}
}

func TestRequireFieldMissing(t *testing.T) {
	m := newTestMaterial()
	err := RequireField(parseSnippet(t, "<Material/>"), m.Name)
	if !IsFormatError(err) {
		t.Errorf("RequireField error %v; expected FormatError", err)
	}
}

func TestNestedTreeRoundTrip(t *testing.T) {
	m := newTestMaterial()
	src := "<Material><Name>stone</Name><Level>2</Level></Material>"
	if err := m.Parse(parseSnippet(t, src)); err != nil {
		t.Fatal(err)
	}

	reparsed := newTestMaterial()
	if err := reparsed.Parse(m.Emit()); err != nil {
		t.Fatal(err)
	}
	if reparsed.Name.Value != "stone" || reparsed.Level.Value != 2 {
		t.Errorf("Round trip gave name=%q level=%d; expected stone/2",
			reparsed.Name.Value, reparsed.Level.Value)
	}
}
