package ep_urnlink

import "github.com/lexml/urnlink-go/lib/view"

// LinkPriority makes link elements wrap other inline styles.
const LinkPriority = 5

// LinkElementFactory creates the attribute elements rendering a link.
type LinkElementFactory struct {
	Name         string
	AttributeKey string
	Class        string
}

func (f LinkElementFactory) Create(value string, w *view.Writer) *view.Element {
	attrs := map[string]string{f.AttributeKey: value}
	if f.Class != "" {
		attrs["class"] = f.Class
	}
	el := w.CreateAttributeElement(f.Name, attrs, LinkPriority)
	w.SetCapability(view.CapabilityLink, el)
	return el
}

func IsLinkElement(el *view.Element) bool {
	return el.Kind == view.KindAttribute && el.Capability == view.CapabilityLink
}
