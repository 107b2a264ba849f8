package tabular

import "strings"

// CellFormatter applies the output format's quoting rules to rendered values.
type CellFormatter interface {
	// FormatCell formats a non-text value.
	FormatCell(value string) string
	// FormatStringCell formats a text value.
	FormatStringCell(value string, removeNewLines bool) string
	// FormatForcedStringCell formats a text value that must never be
	// reinterpreted as a number by the consumer.
	FormatForcedStringCell(value string, removeNewLines bool) string
}

// DelimitedFormatter quotes text cells for delimited output. Non-text cells
// are quoted only when they contain the delimiter, a quote or a line break,
// which happens with cultures using ',' as decimal separator.
type DelimitedFormatter struct {
	Comma rune
}

// FormatCell returns value, quoted when it would break the line.
func (f DelimitedFormatter) FormatCell(value string) string {
	comma := f.Comma
	if comma == 0 {
		comma = ','
	}
	if strings.ContainsRune(value, comma) || strings.ContainsAny(value, "\"\r\n") {
		return f.FormatStringCell(value, false)
	}
	return value
}

// FormatStringCell wraps value in double quotes, doubling embedded quotes.
// Embedded CRLF pairs are written as LF, the form CSV readers return.
func (f DelimitedFormatter) FormatStringCell(value string, removeNewLines bool) string {
	if removeNewLines {
		value = stripNewLines(value)
	} else {
		value = strings.ReplaceAll(value, "\r\n", "\n")
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// FormatForcedStringCell renders ="value" so spreadsheet applications keep the text as is.
func (f DelimitedFormatter) FormatForcedStringCell(value string, removeNewLines bool) string {
	return f.FormatStringCell(`="`+strings.ReplaceAll(value, `"`, `""`)+`"`, removeNewLines)
}

// GridFormatter leaves values untouched; typed grids need no quoting.
type GridFormatter struct{}

// FormatCell returns value.
func (GridFormatter) FormatCell(value string) string {
	return value
}

// FormatStringCell returns value, optionally without line breaks.
func (GridFormatter) FormatStringCell(value string, removeNewLines bool) string {
	if removeNewLines {
		return stripNewLines(value)
	}
	return value
}

// FormatForcedStringCell is FormatStringCell; grids store text as text.
func (g GridFormatter) FormatForcedStringCell(value string, removeNewLines bool) string {
	return g.FormatStringCell(value, removeNewLines)
}

var newLineReplacer = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

func stripNewLines(s string) string {
	return newLineReplacer.Replace(s)
}

// unforceText removes the ="..." wrapper written by FormatForcedStringCell
// once the delimited layer has removed its own quoting.
func unforceText(s string) string {
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		return strings.ReplaceAll(s[2:len(s)-1], `""`, `"`)
	}
	return s
}
