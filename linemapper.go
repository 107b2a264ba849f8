package tabular

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
)

// Line is a RawLine bound to the header index of its read.
type Line struct {
	RawLine
	index *HeaderIndex
}

// Value returns the field under header. A header that is part of the index
// but beyond the end of a short line yields an empty value.
func (l Line) Value(header string) (string, error) {
	i, err := l.index.IndexOf(header)
	if err != nil {
		return "", err
	}
	if i >= len(l.Fields) {
		return "", nil
	}
	return l.Fields[i], nil
}

// Headers returns the header index of the line.
func (l Line) Headers() *HeaderIndex {
	return l.index
}

// LineMapper binds raw lines to header names. The header index comes from
// the first non-empty line when firstRowHeaders is set, and from the declared
// headers otherwise.
type LineMapper struct {
	declared        *HeaderCollection
	firstRowHeaders bool
	logger          *slog.Logger
}

// NewLineMapper creates a LineMapper.
func NewLineMapper(declared *HeaderCollection, firstRowHeaders bool, logger *slog.Logger) *LineMapper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LineMapper{declared: declared, firstRowHeaders: firstRowHeaders, logger: logger}
}

// Lines reads src lazily and yields every non-empty data line. Decoding
// errors from src are yielded once and end the sequence.
func (m *LineMapper) Lines(src LineSource) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		var index *HeaderIndex
		if !m.firstRowHeaders {
			index = NewHeaderIndex(m.declared.Names())
		}
		for {
			raw, err := src.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Line{}, fmt.Errorf("read line: %w", err))
				return
			}
			m.logger.Debug("line read", "line", raw.Number, "empty", raw.IsEmpty(), "fields", raw.Count())
			if raw.IsEmpty() {
				continue
			}
			if index == nil {
				index = NewHeaderIndex(raw.Fields)
				m.logger.Debug("headers resolved", "line", raw.Number, "headers", index.String())
				continue
			}
			if !yield(Line{RawLine: raw, index: index}, nil) {
				return
			}
		}
	}
}

// HeaderIndex maps header names to zero-based field positions for one read.
type HeaderIndex struct {
	names     []string
	positions map[string]int
}

// NewHeaderIndex builds an index from a header line. Names are trimmed and a
// leading byte order mark is dropped; for repeated names the first position wins.
func NewHeaderIndex(fields []string) *HeaderIndex {
	idx := &HeaderIndex{positions: make(map[string]int, len(fields))}
	for i, f := range fields {
		name := strings.TrimSpace(f)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		idx.names = append(idx.names, name)
		if _, ok := idx.positions[name]; !ok {
			idx.positions[name] = i
		}
	}
	return idx
}

// IndexOf returns the field position of name, or ErrHeaderNotFound.
func (idx *HeaderIndex) IndexOf(name string) (int, error) {
	if i, ok := idx.positions[name]; ok {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrHeaderNotFound, name)
}

// Names returns the indexed names in field order.
func (idx *HeaderIndex) Names() []string {
	out := make([]string, len(idx.names))
	copy(out, idx.names)
	return out
}

// String joins the names with ", ".
func (idx *HeaderIndex) String() string {
	return strings.Join(idx.names, ", ")
}
