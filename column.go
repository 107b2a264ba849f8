package tabular

// RenderContext carries the write-time settings a column needs to render cells.
type RenderContext struct {
	Culture        Culture
	Formatter      CellFormatter
	RemoveNewLines bool

	// Headers is the writing header set of the column being rendered, as
	// computed over the full row collection. Only multi-header columns use it.
	Headers *HeaderCollection
}

func (rc RenderContext) formatter() CellFormatter {
	if rc.Formatter == nil {
		return GridFormatter{}
	}
	return rc.Formatter
}

// formatText applies the formatter's text rule.
func (rc RenderContext) formatText(s string, forced bool) string {
	if forced {
		return rc.formatter().FormatForcedStringCell(s, rc.RemoveNewLines)
	}
	return rc.formatter().FormatStringCell(s, rc.RemoveNewLines)
}

// formatValue applies the text rule for Text cells and the plain cell rule otherwise.
func (rc RenderContext) formatValue(dt DataType, s string, forced bool) string {
	if dt == Text {
		return rc.formatText(s, forced)
	}
	return rc.formatter().FormatCell(s)
}

// Column maps one field of T onto one or more cells.
type Column[T any] interface {
	// PropertyName names the field of T the column is bound to.
	PropertyName() string
	// DataType selects the intrinsic cell type of typed outputs.
	DataType() DataType
	// Render returns the cells for row, one string per writing header.
	Render(rc RenderContext, row T) ([]string, error)
	// ReadingHeaders returns the headers expected on input.
	ReadingHeaders() *HeaderCollection
	// WritingHeaders returns the headers to emit for the given rows.
	WritingHeaders(rows []T) *HeaderCollection
}

// FieldAssigner is implemented by columns the read path can assign.
type FieldAssigner[T any] interface {
	// Settable reports whether the bound field has a setter.
	Settable() bool
	// Assign parses raw and stores it in row.
	Assign(row *T, raw string, c Culture) error
}

// ColumnOption configures a column.
type ColumnOption func(*columnOptions)

type columnOptions struct {
	header         string
	forceText      bool
	places         int32
	layout         string
	textFormat     func(string, Culture) string
	fixedHeaders   []string
	allowUndefined bool
	dataType       DataType
	hasDataType    bool
}

func newColumnOptions(opts []ColumnOption) *columnOptions {
	o := &columnOptions{places: -1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// HeaderName sets the header used instead of the property name.
func HeaderName(name string) ColumnOption {
	return func(o *columnOptions) { o.header = name }
}

// ForceTextFormatting keeps numeric-looking text from being read as a number downstream.
func ForceTextFormatting() ColumnOption {
	return func(o *columnOptions) { o.forceText = true }
}

// TextFormat sets a function applied to text values before cell formatting.
func TextFormat(fn func(string, Culture) string) ColumnOption {
	return func(o *columnOptions) { o.textFormat = fn }
}

// DecimalPlaces rounds decimal output to n places.
func DecimalPlaces(n int32) ColumnOption {
	return func(o *columnOptions) { o.places = n }
}

// Layout sets the time layout of a date/time column, overriding the culture.
func Layout(layout string) ColumnOption {
	return func(o *columnOptions) { o.layout = layout }
}

// FixedHeaders sets the header list of a composite or dynamic column. The list
// replaces the headers derived from data and acts as a whitelist.
func FixedHeaders(names ...string) ColumnOption {
	return func(o *columnOptions) { o.fixedHeaders = names }
}

// AllowUndefinedColumns drops composite values whose name is outside the
// fixed header list instead of failing the render.
func AllowUndefinedColumns() ColumnOption {
	return func(o *columnOptions) { o.allowUndefined = true }
}

// CellType overrides the data type reported by an expression column.
func CellType(dt DataType) ColumnOption {
	return func(o *columnOptions) {
		o.dataType = dt
		o.hasDataType = true
	}
}

// ScalarColumn binds a single field of type V to one cell.
type ScalarColumn[T, V any] struct {
	property   string
	header     string
	dataType   DataType
	get        func(T) V
	set        func(*T, V)
	codec      Codec[V]
	forceText  bool
	textFormat func(string, Culture) string
}

// NewColumn creates a scalar column from an accessor pair and a codec.
// A nil set makes the field read-only for the read path.
func NewColumn[T, V any](property string, dt DataType, get func(T) V, set func(*T, V), codec Codec[V], opts ...ColumnOption) *ScalarColumn[T, V] {
	o := newColumnOptions(opts)
	return &ScalarColumn[T, V]{
		property:   property,
		header:     o.header,
		dataType:   dt,
		get:        get,
		set:        set,
		codec:      codec,
		forceText:  o.forceText,
		textFormat: o.textFormat,
	}
}

// PropertyName returns the name of the bound field.
func (c *ScalarColumn[T, V]) PropertyName() string { return c.property }

// DataType returns the declared value type.
func (c *ScalarColumn[T, V]) DataType() DataType { return c.dataType }

// HeaderName returns the declared header, or the property name when none was set.
func (c *ScalarColumn[T, V]) HeaderName() string {
	if c.header != "" {
		return c.header
	}
	return c.property
}

// ReadingHeaders returns the single header the column reads from.
func (c *ScalarColumn[T, V]) ReadingHeaders() *HeaderCollection {
	return NewHeaders(c.HeaderName())
}

// WritingHeaders returns the reading header; rows do not change it.
func (c *ScalarColumn[T, V]) WritingHeaders([]T) *HeaderCollection {
	return c.ReadingHeaders()
}

// Render renders the bound field of row as one cell.
func (c *ScalarColumn[T, V]) Render(rc RenderContext, row T) ([]string, error) {
	return []string{c.RenderValue(rc, c.get(row))}, nil
}

// RenderValue renders a single value the way Render renders the bound field.
func (c *ScalarColumn[T, V]) RenderValue(rc RenderContext, v V) string {
	s := c.codec.Format(v, rc.Culture)
	if c.dataType == Text && c.textFormat != nil {
		s = c.textFormat(s, rc.Culture)
	}
	return rc.formatValue(c.dataType, s, c.forceText)
}

// Settable reports whether the column has a setter.
func (c *ScalarColumn[T, V]) Settable() bool { return c.set != nil }

// Assign parses raw with culture and stores it in row.
func (c *ScalarColumn[T, V]) Assign(row *T, raw string, culture Culture) error {
	if c.set == nil {
		return ErrReadonlyProperty
	}
	if c.forceText {
		raw = unforceText(raw)
	}
	v, err := c.codec.Parse(raw, culture)
	if err != nil {
		return err
	}
	c.set(row, v)
	return nil
}
