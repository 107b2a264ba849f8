package tabular

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrettyWriter writes rows as an aligned text table for terminals and logs.
// Number columns are right aligned.
type PrettyWriter[T any] struct {
	// Index prepends a 1-based row number column.
	Index bool
}

// Write renders rows with def and writes the table to w.
func (pw *PrettyWriter[T]) Write(w io.Writer, rows []T, def *Definition[T]) error {
	rendered, err := Render(def, rows, GridFormatter{})
	if err != nil {
		return err
	}

	t := table.NewWriter()
	offset := 0
	if pw.Index {
		offset = 1
	}
	if rendered.Header != nil {
		header := make(table.Row, 0, len(rendered.Header)+offset)
		if pw.Index {
			header = append(header, "")
		}
		for _, h := range rendered.Header {
			header = append(header, h)
		}
		t.AppendHeader(header)
	}

	var configs []table.ColumnConfig
	for i, line := range rendered.Rows {
		row := make(table.Row, 0, len(line)+offset)
		if pw.Index {
			row = append(row, i+1)
		}
		for j, cell := range line {
			row = append(row, cell.Value)
			if i == 0 && CellKindOf(cell.DataType) == CellNumber {
				configs = append(configs, table.ColumnConfig{Number: j + 1 + offset, Align: text.AlignRight})
			}
		}
		t.AppendRow(row)
	}
	t.SetColumnConfigs(configs)
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false
	t.SuppressTrailingSpaces()

	if _, err := io.WriteString(w, t.Render()+"\n"); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// WritePretty writes rows to w as an aligned text table.
func WritePretty[T any](w io.Writer, rows []T, def *Definition[T]) error {
	return (&PrettyWriter[T]{}).Write(w, rows, def)
}

// ErrorReport renders the field errors of rows as a table, one line per
// error. It returns an empty string when no row has errors.
func ErrorReport[T any](rows []*MappedRow[T]) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Line", "Kind", "Header", "Message"})
	n := 0
	for _, r := range rows {
		if r == nil {
			continue
		}
		for _, fe := range r.FieldErrors() {
			t.AppendRow(table.Row{fe.Line, fe.Kind.String(), fe.Header, fe.Message})
			n++
		}
	}
	if n == 0 {
		return ""
	}
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.SuppressTrailingSpaces()
	return t.Render()
}
