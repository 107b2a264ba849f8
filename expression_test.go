package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type orderLine struct {
	Item     string
	Price    float64
	Quantity int
}

func TestExpressionColumn_Render(t *testing.T) {
	col, err := NewExpressionColumn[orderLine]("Total", "Price * Quantity", CellType(Decimal))
	require.NoError(t, err)
	assert.Equal(t, Decimal, col.DataType())
	assert.Equal(t, []string{"Total"}, col.ReadingHeaders().Names())
	assert.Equal(t, "Price * Quantity", col.PropertyName())

	row := orderLine{Item: "pen", Price: 1.25, Quantity: 4}
	cells, err := col.Render(RenderContext{Culture: InvariantCulture}, row)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, cells)

	de := NewCulture(language.German)
	row.Quantity = 3
	cells, err = col.Render(RenderContext{Culture: de, Formatter: DelimitedFormatter{Comma: ';'}}, row)
	require.NoError(t, err)
	assert.Equal(t, []string{"3,75"}, cells)
}

func TestExpressionColumn_StringResult(t *testing.T) {
	col := MustExpressionColumn[orderLine]("Label", `upper(Item) + " x" + string(Quantity)`)
	assert.Equal(t, Object, col.DataType())
	cells, err := col.Render(RenderContext{Formatter: DelimitedFormatter{}}, orderLine{Item: "pen", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{`"PEN x2"`}, cells)
}

func TestExpressionColumn_CompileError(t *testing.T) {
	_, err := NewExpressionColumn[orderLine]("Bad", "Price *")
	assert.Error(t, err)

	_, err = NewExpressionColumn[orderLine]("Unknown", "Discount * 2")
	assert.Error(t, err, "fields must exist on the row type")

	assert.Panics(t, func() { MustExpressionColumn[orderLine]("Bad", "(") })
}

func TestExpressionColumn_WriteOnly(t *testing.T) {
	col := MustExpressionColumn[orderLine]("Total", "Price * Quantity")
	_, ok := any(col).(FieldAssigner[orderLine])
	assert.False(t, ok)

	m := NewMapper(NewDefinition([]Column[orderLine]{col}))
	rows, err := m.ReadAll(Lines([]string{"Total"}, []string{"5"}))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].HasErrors())
}
