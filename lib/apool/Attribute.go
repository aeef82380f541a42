package apool

// Attribute is a single key/value pair attached to inline content.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (a *Attribute) ToStringSlice() []string {
	return []string{a.Key, a.Value}
}

// CmpAttribute orders attributes by key. Values are not compared because an
// attribute set never holds the same key twice.
func CmpAttribute(a, b Attribute) int {
	if a.Key < b.Key {
		return -1
	}
	if a.Key > b.Key {
		return 1
	}
	return 0
}

func FromStringSlice(convertable []string) (Attribute, bool) {
	if len(convertable) != 2 {
		return Attribute{}, false
	}
	return Attribute{Key: convertable[0], Value: convertable[1]}, true
}
