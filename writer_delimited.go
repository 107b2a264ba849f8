package tabular

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const defaultBufferSize = 4 << 10

// DelimitedWriter writes rows as delimited text. Cells are emitted exactly as
// the columns rendered them; text quoting is the columns' job.
type DelimitedWriter[T any] struct {
	// Comma is the field delimiter. Default is ','.
	Comma rune
	// UseLF terminates lines with \n instead of \r\n.
	UseLF bool
}

// NewDelimitedWriter creates a DelimitedWriter with the default delimiter.
func NewDelimitedWriter[T any]() *DelimitedWriter[T] {
	return &DelimitedWriter[T]{Comma: ','}
}

// Write renders rows with def and writes them to w in the definition's
// encoding, preceded by a byte order mark when configured.
func (dw *DelimitedWriter[T]) Write(w io.Writer, rows []T, def *Definition[T]) error {
	f := DelimitedFormatter{Comma: dw.comma()}
	table, err := Render(def, rows, f)
	if err != nil {
		return err
	}

	dst := w
	var tw *transform.Writer
	if def.Encoding() != unicode.UTF8 {
		tw = transform.NewWriter(w, def.Encoding().NewEncoder())
		dst = tw
	}
	bw := bufio.NewWriterSize(dst, defaultBufferSize)

	if def.WriteBOM() && hasPreamble(def.Encoding()) {
		if _, err := bw.WriteString("\ufeff"); err != nil {
			return fmt.Errorf("write bom: %w", err)
		}
	}

	comma := string(dw.comma())
	newline := "\r\n"
	if dw.UseLF {
		newline = "\n"
	}

	if table.Header != nil {
		quoted := make([]string, len(table.Header))
		for i, h := range table.Header {
			quoted[i] = f.FormatStringCell(h, true)
		}
		if _, err := bw.WriteString(strings.Join(quoted, comma) + newline); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	var line bytes.Buffer
	for i, row := range table.Rows {
		line.Reset()
		for j, cell := range row {
			if j > 0 {
				line.WriteString(comma)
			}
			line.WriteString(cell.Value)
		}
		line.WriteString(newline)
		if _, err := bw.Write(line.Bytes()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
	}
	def.Logger().Debug("delimited output written", "rows", len(table.Rows))
	return nil
}

func (dw *DelimitedWriter[T]) comma() rune {
	if dw.Comma == 0 {
		return ','
	}
	return dw.Comma
}

// WriteCSV writes rows to w as comma separated text.
func WriteCSV[T any](w io.Writer, rows []T, def *Definition[T]) error {
	return NewDelimitedWriter[T]().Write(w, rows, def)
}

// hasPreamble reports whether enc can encode a byte order mark. Single-byte
// charsets have none, so the BOM option does not apply to them.
func hasPreamble(enc encoding.Encoding) bool {
	if enc == unicode.UTF8 {
		return true
	}
	_, err := enc.NewEncoder().String("\ufeff")
	return err == nil
}
