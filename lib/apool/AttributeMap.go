package apool

import (
	"maps"
	"slices"
)

// AttributeMap is a mutable view over an attribute string. Changes are only
// persisted by writing String() back to the owner.
type AttributeMap struct {
	pool  *APool
	attrs map[string]string
}

func NewAttributeMap(pool *APool) AttributeMap {
	return AttributeMap{
		pool:  pool,
		attrs: make(map[string]string),
	}
}

// FromString decodes s. Unknown attribute numbers are skipped.
func FromString(s string, pool *APool) AttributeMap {
	attrMap := NewAttributeMap(pool)
	attribs, err := AttribsFromString(s, pool)
	if err != nil {
		return attrMap
	}
	return *attrMap.Update(attribs)
}

func (a *AttributeMap) Update(entries []Attribute) *AttributeMap {
	for _, entry := range entries {
		a.attrs[entry.Key] = entry.Value
	}
	return a
}

func (a *AttributeMap) Has(key string) bool {
	_, ok := a.attrs[key]
	return ok
}

func (a *AttributeMap) Size() int {
	return len(a.attrs)
}

func (a *AttributeMap) Set(key string, value string) *AttributeMap {
	a.attrs[key] = value
	return a
}

func (a *AttributeMap) Delete(key string) *AttributeMap {
	delete(a.attrs, key)
	return a
}

func (a *AttributeMap) Get(key string) (string, bool) {
	val, ok := a.attrs[key]
	return val, ok
}

func (a *AttributeMap) Clone() AttributeMap {
	return AttributeMap{pool: a.pool, attrs: maps.Clone(a.attrs)}
}

// Entries returns the attributes sorted by key.
func (a *AttributeMap) Entries() []Attribute {
	entries := make([]Attribute, 0, len(a.attrs))
	for _, key := range slices.Sorted(maps.Keys(a.attrs)) {
		entries = append(entries, Attribute{Key: key, Value: a.attrs[key]})
	}
	return entries
}

func (a *AttributeMap) String() string {
	resolved, err := AttribsToString(a.Entries(), a.pool)
	if err != nil {
		return ""
	}
	return resolved
}
