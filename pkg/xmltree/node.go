// Package xmltree holds a minimal ordered XML tree and its pretty printer.
package xmltree

// Attr is a single attribute. Order is preserved on output.
type Attr struct {
	Name  string
	Value string
}

// Node is an element with ordered attributes and children. Text is the
// character data that precedes the first child.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// NewNode creates an element without attributes or children
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// SetAttr sets an attribute, replacing the value in place when the name
// is already present.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// GetAttr returns the value of the named attribute
func (n *Node) GetAttr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetText replaces the node's character data
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// Append adds children in order
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first direct child with the given tag
func (n *Node) Find(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Equal reports whether both trees have the same tags, attributes in the
// same order, text and children. Nil and empty slices compare equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Tag != other.Tag || n.Text != other.Text {
		return false
	}
	if len(n.Attrs) != len(other.Attrs) || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Attrs {
		if n.Attrs[i] != other.Attrs[i] {
			return false
		}
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
