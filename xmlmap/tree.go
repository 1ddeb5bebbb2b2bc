package xmlmap

// Schema is a composite entity with a fixed, ordered set of named
// fields, each itself a Property. Field resolution during parse is by
// tag name, never by position; emit writes fields in declared order
// so regenerated documents diff minimally.
type Schema interface {
	TagName() string
	Fields() []Property
}

// ParseTree populates s from the root node. Fields without a matching
// child keep their defaults, unknown children are ignored.
func ParseTree(s Schema, root *Node) error {
	for _, f := range s.Fields() {
		child := root.Child(f.TagName())
		if child == nil {
			continue
		}
		if err := f.Parse(child); err != nil {
			return err
		}
	}
	return nil
}

// EmitTree is the structural inverse of ParseTree: one root node with
// one child per declared field, in declaration order.
func EmitTree(s Schema) *Node {
	root := NewNode(s.TagName())
	for _, f := range s.Fields() {
		root.Append(f.Emit())
	}
	return root
}

// RequireField re-reads a field that has no sensible default: absent
// children are a FormatError instead of falling back silently.
func RequireField(root *Node, f Property) error {
	child := root.Child(f.TagName())
	if child == nil {
		return formatErrorf(f.TagName(), "Required field is missing")
	}
	return f.Parse(child)
}
