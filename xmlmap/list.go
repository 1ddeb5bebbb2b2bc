package xmlmap

import "github.com/pkg/errors"

// ListProperty is an ordered homogeneous sequence of child properties.
// The item factory declares the element type; children carrying a
// foreign tag are skipped for forward compatibility. Item order is
// exactly the document order, an empty list is valid.
type ListProperty struct {
	tag     string
	newItem func() Property
	Items   []Property
}

func NewListProperty(tag string, newItem func() Property) *ListProperty {
	return &ListProperty{tag: tag, newItem: newItem}
}

func (l *ListProperty) TagName() string { return l.tag }

func (l *ListProperty) Len() int { return len(l.Items) }

func (l *ListProperty) Append(item Property) {
	l.Items = append(l.Items, item)
}

func (l *ListProperty) Parse(n *Node) error {
	l.Items = l.Items[:0]
	for _, c := range n.Children {
		item := l.newItem()
		if c.Tag != item.TagName() {
			continue
		}
		if err := item.Parse(c); err != nil {
			return errors.Wrapf(err, "Item %d of list %q", len(l.Items), l.tag)
		}
		l.Items = append(l.Items, item)
	}
	return nil
}

func (l *ListProperty) Emit() *Node {
	n := NewNode(l.tag)
	for _, item := range l.Items {
		n.Append(item.Emit())
	}
	return n
}
