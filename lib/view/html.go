package view

import (
	"bytes"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts an element subtree to an html.Node tree. Attributes
// are emitted sorted by key with the class list first.
func ToHTMLNode(el *Element) *html.Node {
	if el.Kind == KindText {
		return &html.Node{Type: html.TextNode, Data: el.Text}
	}
	node := &html.Node{Type: html.ElementNode, Data: el.Name, DataAtom: atom.Lookup([]byte(el.Name))}
	if classes := el.Classes(); len(classes) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	for _, key := range slices.Sorted(maps.Keys(el.attributes)) {
		node.Attr = append(node.Attr, html.Attribute{Key: key, Val: el.attributes[key]})
	}
	for _, child := range el.Children {
		node.AppendChild(ToHTMLNode(child))
	}
	return node
}

// Stringify renders elements as HTML.
func Stringify(elements ...*Element) (string, error) {
	var buf bytes.Buffer
	for _, el := range elements {
		if el == nil {
			continue
		}
		if err := html.Render(&buf, ToHTMLNode(el)); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
