package tabular

import (
	"log/slog"

	"golang.org/x/text/encoding"
)

// Definition is the ordered column list of a table plus its configuration.
// It is read-only after construction and may be shared by any number of
// reads and writes.
type Definition[T any] struct {
	columns []Column[T]
	opts    *Options
}

// NewDefinition creates a Definition. Column order is the on-disk column order.
func NewDefinition[T any](columns []Column[T], opts ...Option) *Definition[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	cols := make([]Column[T], len(columns))
	copy(cols, columns)
	return &Definition[T]{columns: cols, opts: o}
}

// Columns returns the columns in order.
func (d *Definition[T]) Columns() []Column[T] {
	out := make([]Column[T], len(d.columns))
	copy(out, d.columns)
	return out
}

// FirstRowContainsHeaders reports whether reads expect, and writes emit, a header line.
func (d *Definition[T]) FirstRowContainsHeaders() bool { return d.opts.firstRowContainsHeaders }

// Encoding is the character encoding of delimited input and output.
func (d *Definition[T]) Encoding() encoding.Encoding { return d.opts.encoding }

// Culture formats and parses cell values.
func (d *Definition[T]) Culture() Culture { return d.opts.culture }

// ThrowOnError reports whether reads stop at the first invalid line.
func (d *Definition[T]) ThrowOnError() bool { return d.opts.throwOnError }

// IgnoreReadonly reports whether readonly fields are skipped on read.
func (d *Definition[T]) IgnoreReadonly() bool { return d.opts.ignoreReadonly }

// RemoveNewLines reports whether line breaks are stripped from text cells.
func (d *Definition[T]) RemoveNewLines() bool { return d.opts.removeNewLines }

// WriteBOM reports whether delimited output starts with a byte order mark.
func (d *Definition[T]) WriteBOM() bool { return d.opts.writeBOM }

// Logger returns the logger used for read and write diagnostics.
func (d *Definition[T]) Logger() *slog.Logger { return d.opts.logger }

// ReadingHeaders returns the union of every column's reading headers.
func (d *Definition[T]) ReadingHeaders() *HeaderCollection {
	h := NewHeaders()
	for _, c := range d.columns {
		h = h.Merge(c.ReadingHeaders())
	}
	return h
}

// WritingHeaders returns each column's writing headers computed over rows,
// in column order.
func (d *Definition[T]) WritingHeaders(rows []T) []*HeaderCollection {
	out := make([]*HeaderCollection, len(d.columns))
	for i, c := range d.columns {
		out[i] = c.WritingHeaders(rows)
	}
	return out
}

// renderContext builds the context for one column of a write.
func (d *Definition[T]) renderContext(f CellFormatter, headers *HeaderCollection) RenderContext {
	return RenderContext{
		Culture:        d.opts.culture,
		Formatter:      f,
		RemoveNewLines: d.opts.removeNewLines,
		Headers:        headers,
	}
}
