package tabular

import (
	"io"
	"strings"
)

// RawLine is one decoded input record.
type RawLine struct {
	Number int // 1-based line number in the source
	Fields []string
}

// Count returns the number of fields.
func (l RawLine) Count() int {
	return len(l.Fields)
}

// IsEmpty reports whether the line has no fields or a single blank field.
func (l RawLine) IsEmpty() bool {
	return len(l.Fields) == 0 ||
		(len(l.Fields) == 1 && strings.TrimSpace(l.Fields[0]) == "")
}

// LineSource yields decoded input lines. Next returns io.EOF after the last line.
type LineSource interface {
	Next() (RawLine, error)
}

// sliceSource serves lines from memory.
type sliceSource struct {
	lines []RawLine
	pos   int
}

// Lines returns a LineSource over records, numbering them from 1.
func Lines(records ...[]string) LineSource {
	lines := make([]RawLine, len(records))
	for i, r := range records {
		lines[i] = RawLine{Number: i + 1, Fields: r}
	}
	return &sliceSource{lines: lines}
}

func (s *sliceSource) Next() (RawLine, error) {
	if s.pos >= len(s.lines) {
		return RawLine{}, io.EOF
	}
	l := s.lines[s.pos]
	s.pos++
	return l, nil
}
