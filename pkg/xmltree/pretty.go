package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

const (
	indentUnit  = "  "
	declaration = `<?xml version="1.0" ?>`
)

// PrettyPrint renders the tree with one element per line and two spaces of
// indentation per level. The output ends with a newline.
//
// Text is escaped but otherwise kept verbatim. An element that carries both
// text and children is written on a single line so that no whitespace is
// inserted into its content.
func PrettyPrint(root *Node) string {
	var b strings.Builder
	writePretty(&b, root, 0)
	return b.String()
}

// WriteDocument writes the XML declaration followed by the pretty-printed tree
func WriteDocument(w io.Writer, root *Node) error {
	_, err := io.WriteString(w, declaration+"\n"+PrettyPrint(root))
	return err
}

func writePretty(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	b.WriteString(indent)

	switch {
	case len(n.Children) == 0:
		writeCompact(b, n)
	case n.Text != "":
		// mixed content
		writeCompact(b, n)
	default:
		writeStart(b, n)
		b.WriteByte('>')
		b.WriteByte('\n')
		for _, child := range n.Children {
			writePretty(b, child, depth+1)
		}
		b.WriteString(indent)
		writeEnd(b, n)
	}
	b.WriteByte('\n')
}

// writeCompact writes n and its subtree without any added whitespace
func writeCompact(b *strings.Builder, n *Node) {
	writeStart(b, n)
	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	b.WriteString(escape(n.Text))
	for _, child := range n.Children {
		writeCompact(b, child)
	}
	writeEnd(b, n)
}

func writeStart(b *strings.Builder, n *Node) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escape(a.Value))
		b.WriteByte('"')
	}
}

func writeEnd(b *strings.Builder, n *Node) {
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func escape(s string) string {
	if s == "" {
		return s
	}
	var buf bytes.Buffer
	// writes to a bytes.Buffer cannot fail
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
