package model

import "github.com/lexml/urnlink-go/lib/apool"

type recordingPublisher struct {
	published []*ChangeSet
}

func (r *recordingPublisher) ExecuteHooks(key string, ctx any) {
	if key == ChangedHook {
		r.published = append(r.published, ctx.(*ChangeSet))
	}
}

func testSchema() *Schema {
	schema := NewSchema()
	schema.RegisterBlock("paragraph", BlockDefinition{AllowInlineAttributes: true})
	schema.RegisterBlock("codeBlock", BlockDefinition{AllowInlineAttributes: false})
	schema.RegisterInline("softBreak")
	schema.Extend(TextName, "href", "bold")
	return schema
}

func href(value string) apool.Attribute {
	return apool.Attribute{Key: "href", Value: value}
}

func bold() apool.Attribute {
	return apool.Attribute{Key: "bold", Value: "true"}
}

func pos(block, offset int) Position {
	return Position{Block: block, Offset: offset}
}
