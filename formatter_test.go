package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelimitedFormatter(t *testing.T) {
	f := DelimitedFormatter{Comma: ';'}
	assert.Equal(t, "1,5", f.FormatCell("1,5"))
	assert.Equal(t, `"1;5"`, f.FormatCell("1;5"))
	assert.Equal(t, `"a""b"`, f.FormatCell(`a"b`))
	assert.Equal(t, `"x"`, f.FormatStringCell("x", false))
	assert.Equal(t, `"ab"`, f.FormatStringCell("a\nb", true))
	assert.Equal(t, `"=""12"""`, f.FormatForcedStringCell("12", false))
	assert.Equal(t, "\"a\nb\"", f.FormatStringCell("a\r\nb", false))

	assert.Equal(t, `"1,5"`, DelimitedFormatter{}.FormatCell("1,5"), "zero comma means ','")
}

func TestGridFormatter(t *testing.T) {
	var f GridFormatter
	assert.Equal(t, `a"b`, f.FormatCell(`a"b`))
	assert.Equal(t, "ab", f.FormatStringCell("a\r\nb", true))
	assert.Equal(t, "12", f.FormatForcedStringCell("12", false))
}

func TestUnforceText(t *testing.T) {
	assert.Equal(t, "12", unforceText(`="12"`))
	assert.Equal(t, `a"b`, unforceText(`="a""b"`))
	assert.Equal(t, "plain", unforceText("plain"))
	assert.Equal(t, `="`, unforceText(`="`))
}
