package xmlmap

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"

	"github.com/ragetools/shader_catalog_browser/config"
)

// Node is one xml element: tag, attributes, character data and child
// elements in document order. Mixed content is not preserved: text is
// the concatenated trimmed character data of the element itself.
type Node struct {
	Tag      string
	Attrs    []xml.Attr
	Text     string
	Children []*Node
}

func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name.Local == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Child returns the first immediate child with the given tag, nil if
// none exists.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func (n *Node) Append(c *Node) {
	n.Children = append(n.Children, c)
}

func (n *Node) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.Tag = start.Name.Local
	n.Attrs = append(n.Attrs[:0], start.Attr...)
	n.Text = ""
	n.Children = n.Children[:0]

	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return errors.Errorf("Unexpected eof inside element %q", n.Tag)
			}
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Node{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.Text = strings.TrimSpace(text.String())
			return nil
		}
	}
}

func (n *Node) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}, Attr: n.Attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := e.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := c.MarshalXML(e, xml.StartElement{}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// DecodeDocument parses one xml document and returns its root element.
// Non UTF-8 charsets declared in the prolog are decoded through the
// charmaps known to the config package.
func DecodeDocument(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader

	root := &Node{}
	if err := d.Decode(root); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode xml document")
	}
	return root, nil
}

// EncodeDocument renders the node as an indented standalone document.
func EncodeDocument(w io.Writer, n *Node) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	e := xml.NewEncoder(w)
	e.Indent("", "  ")
	if err := e.Encode(n); err != nil {
		return errors.Wrapf(err, "Failed to encode xml document")
	}
	return e.Flush()
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return input, nil
	case "utf-16":
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		return enc.NewDecoder().Reader(input), nil
	}
	enc, err := config.ResolveEncoding(charset)
	if err != nil {
		// legacy catalogs carry odd charset labels, fall back to the
		// configured charmap instead of rejecting the document
		return config.GetEncoding().NewDecoder().Reader(input), nil
	}
	return enc.NewDecoder().Reader(input), nil
}
