package tabular

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/shopspring/decimal"
)

// ExpressionColumn is a write-only column whose value is an expr-lang
// expression evaluated against the row, e.g. `Price * Quantity`.
type ExpressionColumn[T any] struct {
	header     string
	expression string
	dataType   DataType
	program    *vm.Program
}

// NewExpressionColumn compiles expression against the fields of T. The column
// reports Object unless CellType says otherwise.
func NewExpressionColumn[T any](header, expression string, opts ...ColumnOption) (*ExpressionColumn[T], error) {
	o := newColumnOptions(opts)
	var zero T
	program, err := expr.Compile(expression, expr.Env(zero))
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	dt := Object
	if o.hasDataType {
		dt = o.dataType
	}
	if o.header != "" {
		header = o.header
	}
	return &ExpressionColumn[T]{
		header:     header,
		expression: expression,
		dataType:   dt,
		program:    program,
	}, nil
}

// MustExpressionColumn is like NewExpressionColumn but panics on a compile error.
func MustExpressionColumn[T any](header, expression string, opts ...ColumnOption) *ExpressionColumn[T] {
	c, err := NewExpressionColumn[T](header, expression, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// PropertyName returns the expression source.
func (c *ExpressionColumn[T]) PropertyName() string { return c.expression }

// DataType returns the type the result is formatted as.
func (c *ExpressionColumn[T]) DataType() DataType { return c.dataType }

// ReadingHeaders returns the column header.
func (c *ExpressionColumn[T]) ReadingHeaders() *HeaderCollection {
	return NewHeaders(c.header)
}

// WritingHeaders returns the column header.
func (c *ExpressionColumn[T]) WritingHeaders([]T) *HeaderCollection {
	return c.ReadingHeaders()
}

// Render evaluates the expression against row.
func (c *ExpressionColumn[T]) Render(rc RenderContext, row T) ([]string, error) {
	out, err := expr.Run(c.program, row)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression %q: %w", c.expression, err)
	}
	if s, ok := out.(string); ok {
		return []string{rc.formatText(s, false)}, nil
	}
	return []string{rc.formatValue(c.dataType, formatAny(out, rc.Culture), false)}, nil
}

// formatAny renders an untyped expression result under culture.
func formatAny(v any, c Culture) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		return c.FormatBool(x)
	case int:
		return c.FormatInt(int64(x))
	case int8:
		return c.FormatInt(int64(x))
	case int16:
		return c.FormatInt(int64(x))
	case int32:
		return c.FormatInt(int64(x))
	case int64:
		return c.FormatInt(x)
	case uint:
		return c.FormatUint(uint64(x))
	case uint8:
		return c.FormatUint(uint64(x))
	case uint16:
		return c.FormatUint(uint64(x))
	case uint32:
		return c.FormatUint(uint64(x))
	case uint64:
		return c.FormatUint(x)
	case float32:
		return c.FormatFloat(float64(x), 32)
	case float64:
		return c.FormatFloat(x, 64)
	case decimal.Decimal:
		return decimalCodec{places: -1}.Format(x, c)
	case time.Time:
		return c.FormatDateTime(x)
	case time.Duration:
		return c.FormatDuration(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
