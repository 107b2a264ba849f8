package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDefinition_Defaults(t *testing.T) {
	def := personDefinition()
	assert.True(t, def.FirstRowContainsHeaders())
	assert.Equal(t, unicode.UTF8, def.Encoding())
	assert.Equal(t, InvariantCulture, def.Culture())
	assert.False(t, def.ThrowOnError())
	assert.False(t, def.IgnoreReadonly())
	assert.False(t, def.RemoveNewLines())
	assert.False(t, def.WriteBOM())
	assert.NotNil(t, def.Logger())
}

func TestDefinition_Options(t *testing.T) {
	def := personDefinition(
		WithFirstRowHeaders(false),
		WithEncoding(charmap.ISO8859_1),
		WithEncoding(nil),
		WithThrowOnError(true),
		WithRemoveNewLines(true),
		WithBOM(true),
		WithLogger(nil),
	)
	assert.False(t, def.FirstRowContainsHeaders())
	assert.Equal(t, charmap.ISO8859_1, def.Encoding(), "nil encoding is ignored")
	assert.True(t, def.ThrowOnError())
	assert.True(t, def.RemoveNewLines())
	assert.True(t, def.WriteBOM())
	assert.NotNil(t, def.Logger())
}

func TestDefinition_ColumnsAreCopied(t *testing.T) {
	cols := personColumns()
	def := NewDefinition(cols)
	cols[0] = nil
	assert.NotNil(t, def.Columns()[0])
	assert.Equal(t, "ID", def.Columns()[0].PropertyName())
}

func TestDefinition_Headers(t *testing.T) {
	def := NewDefinition([]Column[measurement]{
		NewTextColumn("Name", func(m measurement) string { return m.Name }, nil),
		measurementColumn(),
	})
	assert.Equal(t, []string{"Name"}, def.ReadingHeaders().Names())

	sets := def.WritingHeaders(sampleMeasurements())
	assert.Len(t, sets, 2)
	assert.Equal(t, []string{"COL1", "COL2", "COL3"}, sets[1].Names())
}
