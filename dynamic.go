package tabular

import "fmt"

// DynamicColumn renders a collection of values whose cells are produced by a
// per-value column chosen by a converter. Each sub-column contributes its
// reading headers as the names of its cells.
type DynamicColumn[T, V any] struct {
	property       string
	get            func(T) []V
	converter      func(V) Column[V]
	fixed          *HeaderCollection
	allowUndefined bool
}

// NewDynamicColumn creates a dynamic column. Headers come from FixedHeaders
// when given, otherwise from scanning the rows being written.
func NewDynamicColumn[T, V any](property string, get func(T) []V, converter func(V) Column[V], opts ...ColumnOption) *DynamicColumn[T, V] {
	o := newColumnOptions(opts)
	c := &DynamicColumn[T, V]{
		property:       property,
		get:            get,
		converter:      converter,
		allowUndefined: o.allowUndefined,
	}
	if o.fixedHeaders != nil {
		c.fixed = NewHeaders(o.fixedHeaders...)
	}
	return c
}

// NewDynamicColumnFrom creates a dynamic column whose header set is computed
// once from a representative value collection.
func NewDynamicColumnFrom[T, V any](property string, get func(T) []V, values []V, converter func(V) Column[V], opts ...ColumnOption) *DynamicColumn[T, V] {
	c := NewDynamicColumn(property, get, converter, opts...)
	c.fixed = dynamicHeaders(values, converter)
	return c
}

func dynamicHeaders[V any](values []V, converter func(V) Column[V]) *HeaderCollection {
	h := NewHeaders()
	for _, v := range values {
		for _, name := range converter(v).ReadingHeaders().Names() {
			h.Add(name)
		}
	}
	return h
}

// PropertyName returns the name of the bound collection.
func (c *DynamicColumn[T, V]) PropertyName() string { return c.property }

// DataType is always Dynamic.
func (c *DynamicColumn[T, V]) DataType() DataType { return Dynamic }

// ReadingHeaders returns a copy of the fixed headers, or none.
func (c *DynamicColumn[T, V]) ReadingHeaders() *HeaderCollection {
	if c.fixed == nil {
		return NewHeaders()
	}
	return c.fixed.Merge(nil)
}

// WritingHeaders returns the fixed headers, or the names converted from
// the values of every row in first-seen order.
func (c *DynamicColumn[T, V]) WritingHeaders(rows []T) *HeaderCollection {
	if c.fixed != nil {
		return c.fixed.Merge(nil)
	}
	var values []V
	for _, row := range rows {
		values = append(values, c.get(row)...)
	}
	return dynamicHeaders(values, c.converter)
}

// Render emits one cell per header, empty where row has no value for it.
func (c *DynamicColumn[T, V]) Render(rc RenderContext, row T) ([]string, error) {
	values := c.get(row)
	headers := rc.Headers
	if headers == nil {
		headers = c.fixed
	}
	if headers == nil {
		headers = dynamicHeaders(values, c.converter)
	}

	cells := make([]string, headers.Len())
	filled := make([]bool, headers.Len())
	for _, v := range values {
		sub := c.converter(v)
		names := sub.ReadingHeaders().Names()
		rendered, err := sub.Render(RenderContext{
			Culture:        rc.Culture,
			Formatter:      rc.Formatter,
			RemoveNewLines: rc.RemoveNewLines,
		}, v)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", c.property, err)
		}
		for j, name := range names {
			if j >= len(rendered) {
				break
			}
			i, err := headers.IndexOf(name)
			if err != nil {
				if c.allowUndefined {
					continue
				}
				return nil, fmt.Errorf("%w: %q in column %s", ErrUndefinedColumn, name, c.property)
			}
			cells[i] = rendered[j]
			filled[i] = true
		}
	}
	for i := range cells {
		if !filled[i] {
			cells[i] = rc.formatter().FormatCell("")
		}
	}
	return cells, nil
}
