package conversion

import (
	"strings"

	"github.com/lexml/urnlink-go/lib/apool"
	"github.com/lexml/urnlink-go/lib/exception"
	"github.com/lexml/urnlink-go/lib/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type elementToAttribute struct {
	viewName string
	key      string
	value    string
}

type attributeToAttribute struct {
	viewKey  string
	modelKey string
	value    func(raw string) string
}

// Upcast turns HTML into model blocks.
type Upcast struct {
	defaultBlock string
	blocks       map[string]string
	inline       map[string]string
	elements     []elementToAttribute
	attributes   []attributeToAttribute
}

func NewUpcast(defaultBlock string) *Upcast {
	return &Upcast{
		defaultBlock: defaultBlock,
		blocks:       make(map[string]string),
		inline:       make(map[string]string),
	}
}

func (u *Upcast) ElementToBlock(viewName, modelName string) *Upcast {
	u.blocks[viewName] = modelName
	return u
}

func (u *Upcast) ElementToInline(viewName, modelName string) *Upcast {
	u.inline[viewName] = modelName
	return u
}

// ElementToAttribute sets key=value on text found inside viewName elements.
func (u *Upcast) ElementToAttribute(viewName, key, value string) *Upcast {
	u.elements = append(u.elements, elementToAttribute{viewName: viewName, key: key, value: value})
	return u
}

// AttributeToAttribute copies the viewKey attribute of any element onto the
// text inside it as modelKey. A nil value function keeps the raw value.
func (u *Upcast) AttributeToAttribute(viewKey, modelKey string, value func(raw string) string) *Upcast {
	u.attributes = append(u.attributes, attributeToAttribute{viewKey: viewKey, modelKey: modelKey, value: value})
	return u
}

// Convert parses data into blocks whose attribute strings live in doc's
// pool. Attributes the schema forbids in a block are dropped.
func (u *Upcast) Convert(data string, doc *model.Document, schema *model.Schema) ([]*model.Block, error) {
	nodes, err := html.ParseFragment(strings.NewReader(data), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, exception.NewParseError("cannot parse data", err)
	}

	c := &upcastContext{upcast: u, doc: doc, schema: schema}
	for _, node := range nodes {
		c.convertTopLevel(node)
	}
	c.closeImplicit()
	if len(c.blocks) == 0 {
		c.blocks = append(c.blocks, &model.Block{Name: u.defaultBlock})
	}
	return c.blocks, nil
}

type upcastContext struct {
	upcast   *Upcast
	doc      *model.Document
	schema   *model.Schema
	blocks   []*model.Block
	implicit *model.Block
}

func (c *upcastContext) convertTopLevel(node *html.Node) {
	if node.Type == html.ElementNode {
		if name, ok := c.upcast.blocks[node.Data]; ok && c.schema.IsBlock(name) {
			c.closeImplicit()
			block := &model.Block{Name: name}
			for child := node.FirstChild; child != nil; child = child.NextSibling {
				c.convertInline(block, child, nil)
			}
			c.finish(block)
			return
		}
	}
	if node.Type == html.TextNode && strings.TrimSpace(node.Data) == "" && c.implicit == nil {
		return
	}
	if c.implicit == nil {
		c.implicit = &model.Block{Name: c.upcast.defaultBlock}
	}
	c.convertInline(c.implicit, node, nil)
}

func (c *upcastContext) closeImplicit() {
	if c.implicit != nil {
		c.finish(c.implicit)
		c.implicit = nil
	}
}

func (c *upcastContext) finish(block *model.Block) {
	c.blocks = append(c.blocks, model.NewBlock(block.Name, block.Children...))
}

func (c *upcastContext) convertInline(block *model.Block, node *html.Node, inherited []apool.Attribute) {
	switch node.Type {
	case html.TextNode:
		if node.Data == "" {
			return
		}
		block.Children = append(block.Children, c.doc.NewText(node.Data, c.allowed(block, inherited)...))
	case html.ElementNode:
		if name, ok := c.upcast.inline[node.Data]; ok {
			block.Children = append(block.Children, c.doc.NewElement(name))
			return
		}
		attrs := c.attributesOf(node, inherited)
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			c.convertInline(block, child, attrs)
		}
	}
}

func (c *upcastContext) attributesOf(node *html.Node, inherited []apool.Attribute) []apool.Attribute {
	attrMap := apool.NewAttributeMap(c.doc.Pool)
	attrMap.Update(inherited)
	for _, conv := range c.upcast.elements {
		if conv.viewName == node.Data {
			attrMap.Set(conv.key, conv.value)
		}
	}
	for _, conv := range c.upcast.attributes {
		for _, attr := range node.Attr {
			if attr.Key != conv.viewKey {
				continue
			}
			value := attr.Val
			if conv.value != nil {
				value = conv.value(value)
			}
			attrMap.Set(conv.modelKey, value)
		}
	}
	return attrMap.Entries()
}

func (c *upcastContext) allowed(block *model.Block, attrs []apool.Attribute) []apool.Attribute {
	out := make([]apool.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		if c.schema.CheckTextAttribute(block.Name, attr.Key) {
			out = append(out, attr)
		}
	}
	return out
}
