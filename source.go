package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVSource decodes delimited text into raw lines. A UTF-8 or UTF-16 byte
// order mark overrides the configured encoding.
type CSVSource struct {
	r *csv.Reader
}

// NewCSVSource creates a CSVSource reading r in enc with the given delimiter.
// A nil enc means UTF-8 and a zero comma means ','.
func NewCSVSource(r io.Reader, enc encoding.Encoding, comma rune) *CSVSource {
	if enc == nil {
		enc = unicode.UTF8
	}
	if comma == 0 {
		comma = ','
	}
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	return &CSVSource{r: cr}
}

// Next returns the next record, or io.EOF.
func (s *CSVSource) Next() (RawLine, error) {
	record, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return RawLine{}, io.EOF
		}
		return RawLine{}, fmt.Errorf("decode csv: %w", err)
	}
	line, _ := s.r.FieldPos(0)
	return RawLine{Number: line, Fields: record}, nil
}

// SheetSource reads the rows of one worksheet as raw lines. Cell values are
// reported raw (numbers in invariant form, dates as serial numbers), so
// parsing uses InvariantCulture.
type SheetSource struct {
	rows *excelize.Rows
	n    int
}

// NewSheetSource opens sheet of f for reading. An empty sheet name selects the first sheet.
func NewSheetSource(f *excelize.File, sheet string) (*SheetSource, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("open sheet %q: %w", sheet, err)
	}
	return &SheetSource{rows: rows}, nil
}

// Next returns the next row of the sheet, or io.EOF.
func (s *SheetSource) Next() (RawLine, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return RawLine{}, fmt.Errorf("read sheet row %d: %w", s.n+1, err)
		}
		return RawLine{}, io.EOF
	}
	s.n++
	cols, err := s.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		return RawLine{}, fmt.Errorf("read sheet row %d: %w", s.n, err)
	}
	return RawLine{Number: s.n, Fields: cols}, nil
}

// Culture returns the culture matching raw cell values.
func (s *SheetSource) Culture() Culture {
	return InvariantCulture
}

// Close releases the row iterator.
func (s *SheetSource) Close() error {
	return s.rows.Close()
}
