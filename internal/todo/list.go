// Package todo implements the plain To-Do list: items with text only, deleted
// by their stable identifier.
package todo

import (
	"io"
	"slices"
	"strings"

	"github.com/pablasso/kanban/internal/util"
	"github.com/sirupsen/logrus"
)

// Item is a single entry in the list.
type Item struct {
	ID   int
	Text string
}

// List is an ordered, in-memory to-do list. It is not safe for concurrent use.
type List struct {
	items []Item
	ids   util.Sequence
	log   logrus.FieldLogger
}

// NewList creates an empty list. A nil logger discards output.
func NewList(log logrus.FieldLogger) *List {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &List{log: log}
}

// Add appends an item and returns its identifier.
// Empty or whitespace-only text is ignored and ok is false.
func (l *List) Add(text string) (id int, ok bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}
	id = l.ids.Next()
	l.items = append(l.items, Item{ID: id, Text: text})
	l.log.WithField("item_id", id).Debug("item added")
	return id, true
}

// Delete removes the item with the given identifier.
func (l *List) Delete(id int) bool {
	idx := slices.IndexFunc(l.items, func(it Item) bool { return it.ID == id })
	if idx < 0 {
		l.log.WithField("item_id", id).Debug("delete skipped: item not found")
		return false
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	l.log.WithField("item_id", id).Debug("item deleted")
	return true
}

// DeleteAt removes the item at position i. Out-of-range positions are ignored.
// Positions shift after every deletion, so callers removing several items
// should use Delete instead.
func (l *List) DeleteAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// Items returns a copy of the items in insertion order.
func (l *List) Items() []Item {
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// NextID returns the identifier the next added item will get.
func (l *List) NextID() int {
	return l.ids.Peek()
}

// Reconcile deletes every identifier in pending, in order, and returns how
// many items were removed. Identifiers already gone are skipped.
func Reconcile(l *List, pending []int) int {
	removed := 0
	for _, id := range pending {
		if l.Delete(id) {
			removed++
		}
	}
	return removed
}
