package tabular

import (
	"fmt"
	"io"
)

// Writer writes a row collection in one output format.
type Writer[T any] interface {
	Write(w io.Writer, rows []T, def *Definition[T]) error
}

// RenderedCell is one output cell and the data type of the column that produced it.
type RenderedCell struct {
	Value    string
	DataType DataType
}

// RenderedTable is a row collection rendered by a Definition: the header
// line (when enabled) followed by one line per row.
type RenderedTable struct {
	Header []string
	Rows   [][]RenderedCell
}

// Render renders rows column by column. Header names are computed over the
// full row slice before any row is rendered.
func Render[T any](def *Definition[T], rows []T, f CellFormatter) (*RenderedTable, error) {
	headerSets := def.WritingHeaders(rows)
	out := &RenderedTable{}
	if def.FirstRowContainsHeaders() {
		for _, h := range headerSets {
			out.Header = append(out.Header, h.Names()...)
		}
	}

	out.Rows = make([][]RenderedCell, 0, len(rows))
	for i, row := range rows {
		var line []RenderedCell
		for j, col := range def.columns {
			cells, err := col.Render(def.renderContext(f, headerSets[j]), row)
			if err != nil {
				return nil, fmt.Errorf("render row %d column %s: %w", i+1, col.PropertyName(), err)
			}
			for _, c := range cells {
				line = append(line, RenderedCell{Value: c, DataType: col.DataType()})
			}
		}
		out.Rows = append(out.Rows, line)
	}
	def.Logger().Debug("rows rendered", "rows", len(out.Rows), "headers", len(out.Header))
	return out, nil
}
