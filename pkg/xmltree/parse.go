package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse reads a single-rooted document into a tree.
//
// Namespace prefixes are kept as part of tag and attribute names.
// Comments, processing instructions and directives are dropped. Character
// data following a child element is not representable and is rejected.
//
// An element that has children keeps its leading text only if that text
// contains something other than whitespace. Whitespace-only text there
// cannot be told apart from indentation and is dropped, so a tree such as
// <a>  <b/></a> comes back from PrettyPrint and Parse with empty Text.
// Childless elements keep their text verbatim, blank or not.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var (
		root    *Node
		stack   []*Node
		pending strings.Builder
	)

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) > 0 {
				if err := flushLeading(stack[len(stack)-1], pending.String()); err != nil {
					return nil, err
				}
			} else if root != nil {
				return nil, fmt.Errorf("multiple root elements: <%s> after <%s>", qualified(t.Name), root.Tag)
			}
			pending.Reset()

			node := &Node{Tag: qualified(t.Name)}
			for _, a := range t.Attr {
				node.Attrs = append(node.Attrs, Attr{Name: qualified(a.Name), Value: a.Value})
			}

			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing tag </%s>", qualified(t.Name))
			}
			node := stack[len(stack)-1]
			if name := qualified(t.Name); name != node.Tag {
				return nil, fmt.Errorf("closing tag </%s> does not match <%s>", name, node.Tag)
			}

			text := pending.String()
			pending.Reset()
			if len(node.Children) == 0 {
				node.Text = text
			} else if err := checkTail(node, text); err != nil {
				return nil, err
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("character data outside the root element")
				}
				continue
			}
			pending.Write(t)
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].Tag)
	}
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return root, nil
}

// flushLeading assigns the data seen before a new child element. Before the
// first child it becomes the parent's text unless it is only whitespace.
func flushLeading(parent *Node, text string) error {
	if len(parent.Children) > 0 {
		return checkTail(parent, text)
	}
	if strings.TrimSpace(text) != "" {
		parent.Text = text
	}
	return nil
}

func checkTail(node *Node, text string) error {
	if strings.TrimSpace(text) != "" {
		return fmt.Errorf("unsupported mixed content in <%s>: %q", node.Tag, strings.TrimSpace(text))
	}
	return nil
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
