package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadCSV maps comma separated text from r into rows of T.
func ReadCSV[T any](r io.Reader, def *Definition[T]) ([]*MappedRow[T], error) {
	return ReadDelimited(r, ',', def)
}

// ReadDelimited maps delimited text from r into rows of T. The input is
// decoded with the definition's encoding unless it starts with a byte order mark.
func ReadDelimited[T any](r io.Reader, comma rune, def *Definition[T]) ([]*MappedRow[T], error) {
	return NewMapper(def).ReadAll(NewCSVSource(r, def.Encoding(), comma))
}

// ReadSheet maps one worksheet of the xlsx workbook in r into rows of T.
// An empty sheet name selects the first sheet.
func ReadSheet[T any](r io.Reader, sheet string, def *Definition[T]) ([]*MappedRow[T], error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	src, err := NewSheetSource(f, sheet)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return NewMapper(def).ReadAll(src)
}
