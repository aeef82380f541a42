package ep_urnlink

import (
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/view"
	"go.uber.org/zap"
)

// HighlightTracker marks the link elements of the link that contains the
// selection. Clear must run before a change reaches the view and Mark once
// the view has been rebuilt.
type HighlightTracker struct {
	model  *model.Model
	key    string
	class  string
	marked []*view.Element
	logger *zap.SugaredLogger
}

func NewHighlightTracker(m *model.Model, key, class string, logger *zap.SugaredLogger) *HighlightTracker {
	return &HighlightTracker{model: m, key: key, class: class, logger: logger}
}

// Clear removes the class from every marked element and forgets them.
func (h *HighlightTracker) Clear(w *view.Writer) {
	for _, el := range h.marked {
		w.RemoveClass(h.class, el)
	}
	h.marked = nil
}

// Mark highlights the view image of the link at the selection anchor and
// returns the number of elements marked.
func (h *HighlightTracker) Mark(mapper *view.Mapper, w *view.Writer) int {
	doc := h.model.Document
	selection := doc.Selection()
	value, ok := selection.GetAttribute(h.key)
	if !ok {
		return 0
	}

	linkRange := FindLinkRange(doc, selection.FirstPosition(), h.key, value)
	seen := make(map[*view.Element]struct{}, len(h.marked))
	for _, el := range h.marked {
		seen[el] = struct{}{}
	}
	added := 0
	for _, item := range mapper.ToViewRange(linkRange).Items() {
		if !IsLinkElement(item) {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		w.AddClass(h.class, item)
		h.marked = append(h.marked, item)
		added++
	}
	if added == 0 {
		h.logger.Debugw("No view elements for link", "range", linkRange.String())
	}
	return added
}

// Highlighted returns the marked elements in marking order.
func (h *HighlightTracker) Highlighted() []*view.Element {
	return h.marked
}
