package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

func TestWriteCSV_Basic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, samplePeople(), personDefinition()))
	assert.Equal(t,
		`"ID","Name","IsActive"`+"\r\n"+
			`1,"Alice",True`+"\r\n"+
			`2,"Bob",False`+"\r\n"+
			`3,"Carol",True`+"\r\n",
		buf.String())
}

func TestWriteCSV_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, samplePeople()[:1], personDefinition(WithFirstRowHeaders(false))))
	assert.Equal(t, `1,"Alice",True`+"\r\n", buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, personDefinition()))
	assert.Equal(t, `"ID","Name","IsActive"`+"\r\n", buf.String())
}

func TestDelimitedWriter_BOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, samplePeople()[:1], personDefinition(WithBOM(true))))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))

	rows, err := ReadCSV(bytes.NewReader(buf.Bytes()), personDefinition())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].HasErrors(), rows[0].Errors())
	assert.Equal(t, 1, rows[0].Row.ID)
}

func TestDelimitedWriter_Encoding(t *testing.T) {
	def := personDefinition(WithEncoding(charmap.Windows1252))
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []person{{ID: 1, Name: "Zoë"}}, def))
	assert.Contains(t, buf.String(), "Zo\xeb")
	assert.NotContains(t, buf.String(), "Zoë")

	rows, err := ReadCSV(&buf, def)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Zoë", rows[0].Row.Name)
}

func TestDelimitedWriter_UTF16WithBOM(t *testing.T) {
	def := personDefinition(WithEncoding(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)), WithBOM(true))
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, samplePeople(), def))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xFF, 0xFE}))

	// The byte order mark overrides the UTF-8 default on read.
	rows, err := ReadCSV(&buf, personDefinition())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Carol", rows[2].Row.Name)
}

func TestDelimitedWriter_SemicolonAndCulture(t *testing.T) {
	type invoice struct {
		No     int
		Amount decimal.Decimal
	}
	cols := []Column[invoice]{
		NewNumberColumn("No", func(i invoice) int { return i.No }, func(i *invoice, v int) { i.No = v }),
		NewCurrencyColumn("Amount", func(i invoice) decimal.Decimal { return i.Amount }, func(i *invoice, v decimal.Decimal) { i.Amount = v }),
	}
	de := NewCulture(language.German)
	def := NewDefinition(cols, WithCulture(de))
	rows := []invoice{{No: 1, Amount: decimal.RequireFromString("1234.5")}}

	var buf bytes.Buffer
	w := &DelimitedWriter[invoice]{Comma: ';', UseLF: true}
	require.NoError(t, w.Write(&buf, rows, def))
	assert.Equal(t, "\"No\";\"Amount\"\n1;1234,50\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, rows, def))
	assert.Equal(t, "\"No\",\"Amount\"\r\n1,\"1234,50\"\r\n", buf.String())

	got, err := ReadCSV(&buf, def)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, rows[0].Amount.Equal(got[0].Row.Amount))
}

func TestDelimitedWriter_RemoveNewLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []person{{ID: 1, Name: "multi\r\nline"}}, personDefinition(WithRemoveNewLines(true))))
	assert.Equal(t, 2, strings.Count(buf.String(), "\r\n"))
	assert.Contains(t, buf.String(), `"multiline"`)
}

func TestDelimitedWriter_EmbeddedCRLFRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []person{{ID: 1, Name: "multi\r\nline"}}, personDefinition()))
	assert.Contains(t, buf.String(), "\"multi\nline\"")

	rows, err := ReadCSV(&buf, personDefinition())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "multi\nline", rows[0].Row.Name)
}

func TestDelimitedWriter_BOMWithSingleByteEncoding(t *testing.T) {
	def := personDefinition(WithEncoding(charmap.Windows1252), WithBOM(true))
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []person{{ID: 1, Name: "Zoë"}}, def))
	assert.True(t, strings.HasPrefix(buf.String(), `"ID"`), "no byte order mark for Windows-1252")

	rows, err := ReadCSV(&buf, def)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Zoë", rows[0].Row.Name)
}

func TestDelimitedWriter_RenderError(t *testing.T) {
	def := NewDefinition([]Column[measurement]{measurementColumn(FixedHeaders("COL1"))})
	var buf bytes.Buffer
	err := WriteCSV(&buf, sampleMeasurements(), def)
	assert.ErrorIs(t, err, ErrUndefinedColumn)
	assert.Zero(t, buf.Len(), "nothing is written when rendering fails")
}
