package tabular

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CompositeValue is one named sub-value of a composite column.
type CompositeValue[V any] struct {
	Name  string
	Value V
}

// NewCompositeValue creates a CompositeValue.
func NewCompositeValue[V any](name string, value V) CompositeValue[V] {
	return CompositeValue[V]{Name: name, Value: value}
}

// CompositeNames returns the distinct names of values in first-seen order.
func CompositeNames[V any](values []CompositeValue[V]) []string {
	h := NewHeaders()
	for _, v := range values {
		h.Add(v.Name)
	}
	return h.Names()
}

// CompositeColumn renders a collection of named values, one cell per name.
type CompositeColumn[T, V any] struct {
	property       string
	get            func(T) []CompositeValue[V]
	codec          Codec[V]
	itemType       DataType
	fixed          *HeaderCollection
	allowUndefined bool
}

// NewCompositeColumn creates a composite column whose cells are formatted by
// codec and quoted according to itemType.
func NewCompositeColumn[T, V any](property string, get func(T) []CompositeValue[V], codec Codec[V], itemType DataType, opts ...ColumnOption) *CompositeColumn[T, V] {
	o := newColumnOptions(opts)
	c := &CompositeColumn[T, V]{
		property:       property,
		get:            get,
		codec:          codec,
		itemType:       itemType,
		allowUndefined: o.allowUndefined,
	}
	if o.fixedHeaders != nil {
		c.fixed = NewHeaders(o.fixedHeaders...)
	}
	return c
}

// NewCompositeNumberColumn creates a composite column of integers.
func NewCompositeNumberColumn[T any, V Integer](property string, get func(T) []CompositeValue[V], opts ...ColumnOption) *CompositeColumn[T, V] {
	return NewCompositeColumn(property, get, Codec[V](intCodec[V]{}), Number, opts...)
}

// NewCompositeDecimalColumn creates a composite column of decimals.
func NewCompositeDecimalColumn[T any](property string, get func(T) []CompositeValue[decimal.Decimal], opts ...ColumnOption) *CompositeColumn[T, decimal.Decimal] {
	o := newColumnOptions(opts)
	return NewCompositeColumn(property, get, Codec[decimal.Decimal](decimalCodec{places: o.places}), Decimal, opts...)
}

// NewCompositeTextColumn creates a composite column of strings.
func NewCompositeTextColumn[T any](property string, get func(T) []CompositeValue[string], opts ...ColumnOption) *CompositeColumn[T, string] {
	return NewCompositeColumn(property, get, Codec[string](stringCodec{}), Text, opts...)
}

// PropertyName returns the name of the bound collection.
func (c *CompositeColumn[T, V]) PropertyName() string { return c.property }

// DataType is always Composite.
func (c *CompositeColumn[T, V]) DataType() DataType { return Composite }

// ReadingHeaders returns the fixed header list, which is empty when the
// headers are derived from data.
func (c *CompositeColumn[T, V]) ReadingHeaders() *HeaderCollection {
	if c.fixed == nil {
		return NewHeaders()
	}
	return c.fixed.Merge(nil)
}

// WritingHeaders returns the fixed list, or the distinct sub-value names of
// all rows in first-seen order.
func (c *CompositeColumn[T, V]) WritingHeaders(rows []T) *HeaderCollection {
	if c.fixed != nil {
		return c.fixed.Merge(nil)
	}
	h := NewHeaders()
	for _, row := range rows {
		for _, v := range c.get(row) {
			h.Add(v.Name)
		}
	}
	return h
}

// Render emits one cell per header of rc.Headers (or the fixed list), leaving
// cells empty for names the row does not carry.
func (c *CompositeColumn[T, V]) Render(rc RenderContext, row T) ([]string, error) {
	values := c.get(row)
	headers := c.headersFor(rc, values)

	cells := make([]string, headers.Len())
	filled := make([]bool, headers.Len())
	for _, v := range values {
		i, err := headers.IndexOf(v.Name)
		if err != nil {
			if c.allowUndefined {
				continue
			}
			return nil, fmt.Errorf("%w: %q in column %s", ErrUndefinedColumn, v.Name, c.property)
		}
		cells[i] = rc.formatValue(c.itemType, c.codec.Format(v.Value, rc.Culture), false)
		filled[i] = true
	}
	for i := range cells {
		if !filled[i] {
			cells[i] = rc.formatter().FormatCell("")
		}
	}
	return cells, nil
}

func (c *CompositeColumn[T, V]) headersFor(rc RenderContext, values []CompositeValue[V]) *HeaderCollection {
	switch {
	case rc.Headers != nil:
		return rc.Headers
	case c.fixed != nil:
		return c.fixed
	default:
		return NewHeaders(CompositeNames(values)...)
	}
}
