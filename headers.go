package tabular

import (
	"fmt"
	"strings"
)

// HeaderCollection is an ordered set of unique header names.
// The zero value is an empty, case-sensitive collection.
type HeaderCollection struct {
	names []string
	index map[string]int
	fold  bool
}

// NewHeaders creates a case-sensitive collection. Duplicate names are dropped,
// keeping the first occurrence.
func NewHeaders(names ...string) *HeaderCollection {
	h := &HeaderCollection{}
	for _, n := range names {
		h.Add(n)
	}
	return h
}

// NewFoldedHeaders creates a collection that matches names case-insensitively.
func NewFoldedHeaders(names ...string) *HeaderCollection {
	h := &HeaderCollection{fold: true}
	for _, n := range names {
		h.Add(n)
	}
	return h
}

func (h *HeaderCollection) key(name string) string {
	if h.fold {
		return strings.ToLower(name)
	}
	return name
}

// Len returns the number of headers.
func (h *HeaderCollection) Len() int {
	if h == nil {
		return 0
	}
	return len(h.names)
}

// Names returns a copy of the header names in order.
func (h *HeaderCollection) Names() []string {
	if h == nil {
		return nil
	}
	out := make([]string, len(h.names))
	copy(out, h.names)
	return out
}

// At returns the header at position i.
func (h *HeaderCollection) At(i int) string {
	return h.names[i]
}

// Add appends name unless it is already present. It reports whether the name was added.
func (h *HeaderCollection) Add(name string) bool {
	if h.index == nil {
		h.index = make(map[string]int)
	}
	k := h.key(name)
	if _, ok := h.index[k]; ok {
		return false
	}
	h.index[k] = len(h.names)
	h.names = append(h.names, name)
	return true
}

// IndexOf returns the ordinal position of name, or ErrHeaderNotFound.
func (h *HeaderCollection) IndexOf(name string) (int, error) {
	if h != nil {
		if i, ok := h.index[h.key(name)]; ok {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrHeaderNotFound, name)
}

// Contains reports whether name is in the collection.
func (h *HeaderCollection) Contains(name string) bool {
	_, err := h.IndexOf(name)
	return err == nil
}

// Merge returns a new collection holding the headers of h followed by the
// headers of other that h does not contain. The case policy of h is kept.
func (h *HeaderCollection) Merge(other *HeaderCollection) *HeaderCollection {
	out := &HeaderCollection{fold: h != nil && h.fold}
	for _, n := range h.Names() {
		out.Add(n)
	}
	for _, n := range other.Names() {
		out.Add(n)
	}
	return out
}

// String joins the names with ", ".
func (h *HeaderCollection) String() string {
	return strings.Join(h.Names(), ", ")
}
