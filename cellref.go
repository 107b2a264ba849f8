package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// CellRef addresses one cell of a grid.
type CellRef struct {
	Row int // 0-based row index
	Col int // 0-based column index
}

// NewCellRef creates a CellRef.
func NewCellRef(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// ParseCellRef parses a reference like "A1" or "$B$5".
func ParseCellRef(s string) (CellRef, error) {
	name := strings.ReplaceAll(strings.TrimSpace(s), "$", "")
	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return CellRef{}, fmt.Errorf("invalid cell reference: %q", s)
	}
	col, err := NameToCol(name[:i])
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}
	row, err := strconv.Atoi(name[i:])
	if err != nil || row < 1 {
		return CellRef{}, fmt.Errorf("invalid row in cell reference: %q", s)
	}
	return CellRef{Row: row - 1, Col: col}, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// CellName returns the A1 style name of the cell.
func (c CellRef) CellName() string {
	return ColToName(c.Col) + strconv.Itoa(c.Row+1)
}

func (c CellRef) String() string {
	return c.CellName()
}

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA"
func ColToName(col int) string {
	var b []byte
	for col++; col > 0; col /= 26 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
	}
	return string(b)
}

// NameToCol converts a column name to a 0-based column index.
func NameToCol(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col - 1, nil
}

const maxSheetNameLen = 31

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// SafeSheetName replaces characters a worksheet name cannot hold and
// truncates it to 31 characters. An empty name becomes DefaultSheetName.
func SafeSheetName(name string) string {
	name = strings.Trim(sheetNameReplacer.Replace(strings.TrimSpace(name)), "'")
	if name == "" {
		return DefaultSheetName
	}
	if r := []rune(name); len(r) > maxSheetNameLen {
		name = string(r[:maxSheetNameLen])
	}
	return name
}
