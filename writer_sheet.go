package tabular

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "Document"

// Grid is a typed cell sink such as a worksheet.
type Grid interface {
	SetText(ref CellRef, v string) error
	SetNumber(ref CellRef, v float64) error
	SetBool(ref CellRef, v bool) error
	SetDateTime(ref CellRef, v time.Time) error
	SetDuration(ref CellRef, v time.Duration) error
}

// CellListener is notified before and after each cell is written to a Grid.
type CellListener interface {
	// BeforeWriteCell is called before the cell is written.
	// Return false to skip the default write for this cell.
	BeforeWriteCell(ref CellRef, cell RenderedCell, g Grid) bool

	// AfterWriteCell is called after the cell has been written or skipped.
	AfterWriteCell(ref CellRef, cell RenderedCell, g Grid)
}

// ExcelizeGrid implements Grid on one worksheet of an excelize file.
type ExcelizeGrid struct {
	file  *excelize.File
	sheet string
}

// NewExcelizeGrid returns a Grid writing to sheet of f, creating the sheet
// when it does not exist.
func NewExcelizeGrid(f *excelize.File, sheet string) (*ExcelizeGrid, error) {
	sheet = SafeSheetName(sheet)
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("lookup sheet %q: %w", sheet, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
	}
	return &ExcelizeGrid{file: f, sheet: sheet}, nil
}

// SetText stores v as a shared string.
func (g *ExcelizeGrid) SetText(ref CellRef, v string) error {
	return g.file.SetCellStr(g.sheet, ref.CellName(), v)
}

// SetNumber stores v as a number.
func (g *ExcelizeGrid) SetNumber(ref CellRef, v float64) error {
	return g.file.SetCellFloat(g.sheet, ref.CellName(), v, -1, 64)
}

// SetBool stores v as a boolean.
func (g *ExcelizeGrid) SetBool(ref CellRef, v bool) error {
	return g.file.SetCellBool(g.sheet, ref.CellName(), v)
}

// SetDateTime stores v as a date serial with the default date format.
func (g *ExcelizeGrid) SetDateTime(ref CellRef, v time.Time) error {
	return g.file.SetCellValue(g.sheet, ref.CellName(), v)
}

// SetDuration stores v as a fraction of days with a time format.
func (g *ExcelizeGrid) SetDuration(ref CellRef, v time.Duration) error {
	return g.file.SetCellValue(g.sheet, ref.CellName(), v)
}

// File returns the underlying workbook.
func (g *ExcelizeGrid) File() *excelize.File { return g.file }

// Sheet returns the worksheet name.
func (g *ExcelizeGrid) Sheet() string { return g.sheet }

// SpreadsheetWriter writes rows as an xlsx workbook with one worksheet.
// Each cell is typed by its column's DataType: numbers, booleans, dates and
// times become native cells, everything else is text. A value that does not
// parse back in the definition's culture is written as text.
type SpreadsheetWriter[T any] struct {
	// SheetName names the worksheet. Default is DefaultSheetName.
	SheetName string
	Listeners []CellListener
}

// NewSpreadsheetWriter creates a SpreadsheetWriter with the default sheet name.
func NewSpreadsheetWriter[T any](listeners ...CellListener) *SpreadsheetWriter[T] {
	return &SpreadsheetWriter[T]{SheetName: DefaultSheetName, Listeners: listeners}
}

// Write renders rows into a new workbook and writes it to w.
func (sw *SpreadsheetWriter[T]) Write(w io.Writer, rows []T, def *Definition[T]) error {
	f := excelize.NewFile()
	defer f.Close()

	name := SafeSheetName(sw.SheetName)
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return fmt.Errorf("name sheet %q: %w", name, err)
	}
	if err := sw.WriteGrid(&ExcelizeGrid{file: f, sheet: name}, rows, def); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteGrid renders rows into g starting at A1.
func (sw *SpreadsheetWriter[T]) WriteGrid(g Grid, rows []T, def *Definition[T]) error {
	table, err := Render(def, rows, GridFormatter{})
	if err != nil {
		return err
	}
	culture := def.Culture()

	r := 0
	if table.Header != nil {
		for c, h := range table.Header {
			if err := sw.writeCell(g, NewCellRef(r, c), RenderedCell{Value: h, DataType: Text}, culture); err != nil {
				return err
			}
		}
		r++
	}
	for _, line := range table.Rows {
		for c, cell := range line {
			if err := sw.writeCell(g, NewCellRef(r, c), cell, culture); err != nil {
				return err
			}
		}
		r++
	}
	def.Logger().Debug("grid written", "rows", len(table.Rows))
	return nil
}

func (sw *SpreadsheetWriter[T]) writeCell(g Grid, ref CellRef, cell RenderedCell, c Culture) error {
	write := true
	for _, l := range sw.Listeners {
		if !l.BeforeWriteCell(ref, cell, g) {
			write = false
		}
	}
	if write {
		if err := setTypedCell(g, ref, cell, c); err != nil {
			return fmt.Errorf("write cell %s: %w", ref, err)
		}
	}
	for _, l := range sw.Listeners {
		l.AfterWriteCell(ref, cell, g)
	}
	return nil
}

// setTypedCell parses the rendered value back and writes it with the cell
// type of its column. Empty values, and blank values of non-text columns,
// leave the cell empty.
func setTypedCell(g Grid, ref CellRef, cell RenderedCell, c Culture) error {
	v := cell.Value
	kind := CellKindOf(cell.DataType)
	if v == "" || (kind != CellText && strings.TrimSpace(v) == "") {
		return nil
	}
	switch kind {
	case CellNumber:
		if f, err := c.ParseFloat(v, 64); err == nil {
			return g.SetNumber(ref, f)
		}
	case CellBoolean:
		if b, err := c.ParseBool(v); err == nil {
			return g.SetBool(ref, b)
		}
	case CellDateTime:
		if t, err := c.ParseDateTime(v); err == nil {
			return g.SetDateTime(ref, t)
		}
	case CellDuration:
		if d, err := c.ParseDuration(v); err == nil {
			return g.SetDuration(ref, d)
		}
	}
	return g.SetText(ref, v)
}

// WriteXLSX writes rows to w as an xlsx workbook.
func WriteXLSX[T any](w io.Writer, rows []T, def *Definition[T]) error {
	return NewSpreadsheetWriter[T]().Write(w, rows, def)
}
