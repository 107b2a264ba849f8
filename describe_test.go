package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe_Definition(t *testing.T) {
	out := Describe(personDefinition(WithThrowOnError(true)), nil)
	assert.Contains(t, out, "Definition: 3 columns")
	assert.Contains(t, out, "headers=true")
	assert.Contains(t, out, "strict=true")
	assert.Contains(t, out, "encoding=UTF-8")
	assert.Contains(t, out, "ID (Number) cell=Number")
	assert.Contains(t, out, "Name (Text)\n")
	assert.Contains(t, out, "read:  IsActive")
}

func TestDescribe_CompositeHeadersFromRows(t *testing.T) {
	def := NewDefinition([]Column[measurement]{
		NewTextColumn("Name", func(m measurement) string { return m.Name }, nil),
		measurementColumn(),
		MustExpressionColumn[measurement]("Count", "len(Values)"),
	})

	out := Describe(def, sampleMeasurements())
	assert.Contains(t, out, "Name (Text) readonly")
	assert.Contains(t, out, "Values (Composite)\n      write: COL1, COL2, COL3")
	assert.Contains(t, out, "len(Values) (Object) expression")

	out = Describe(def, nil)
	assert.NotContains(t, out, "COL1")
}
