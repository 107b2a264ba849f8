package tabular

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Codec converts a field value to and from its textual cell form.
// Parse returns ErrMissingValue for blank input of a non-nullable type and
// wraps ErrInvalidFormat for malformed input.
type Codec[V any] interface {
	Format(v V, c Culture) string
	Parse(s string, c Culture) (V, error)
}

// Integer is the set of integer field types supported by NumberColumn.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating point field types supported by FloatColumn.
type Float interface {
	~float32 | ~float64
}

// CodecFunc adapts a pair of functions to a Codec.
type CodecFunc[V any] struct {
	FormatFunc func(V, Culture) string
	ParseFunc  func(string, Culture) (V, error)
}

// Format calls FormatFunc.
func (f CodecFunc[V]) Format(v V, c Culture) string { return f.FormatFunc(v, c) }

// Parse calls ParseFunc.
func (f CodecFunc[V]) Parse(s string, c Culture) (V, error) { return f.ParseFunc(s, c) }

type stringCodec struct{}

func (stringCodec) Format(v string, _ Culture) string           { return v }
func (stringCodec) Parse(s string, _ Culture) (string, error) { return s, nil }

type intCodec[V Integer] struct{}

func (intCodec[V]) signed() bool {
	var zero V
	return zero-1 < zero
}

func (intCodec[V]) bits() int {
	return reflect.TypeFor[V]().Bits()
}

func (ic intCodec[V]) Format(v V, c Culture) string {
	if ic.signed() {
		return c.FormatInt(int64(v))
	}
	return c.FormatUint(uint64(v))
}

func (ic intCodec[V]) Parse(s string, c Culture) (V, error) {
	if ic.signed() {
		n, err := c.ParseInt(s, ic.bits())
		return V(n), err
	}
	n, err := c.ParseUint(s, ic.bits())
	return V(n), err
}

type floatCodec[V Float] struct{}

func (floatCodec[V]) bits() int {
	return reflect.TypeFor[V]().Bits()
}

func (fc floatCodec[V]) Format(v V, c Culture) string {
	return c.FormatFloat(float64(v), fc.bits())
}

func (fc floatCodec[V]) Parse(s string, c Culture) (V, error) {
	f, err := c.ParseFloat(s, fc.bits())
	return V(f), err
}

// decimalCodec renders decimals with a fixed number of places, or the
// shortest exact form when places is negative.
type decimalCodec struct {
	places int32
}

func (dc decimalCodec) Format(v decimal.Decimal, c Culture) string {
	if dc.places >= 0 {
		return c.localizeNumber(v.StringFixed(dc.places))
	}
	return c.localizeNumber(v.String())
}

func (dc decimalCodec) Parse(s string, c Culture) (decimal.Decimal, error) {
	n := c.NormalizeNumber(s)
	if n == "" {
		return decimal.Zero, ErrMissingValue
	}
	d, err := decimal.NewFromString(n)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", ErrInvalidFormat, s)
	}
	return d, nil
}

type boolCodec struct{}

func (boolCodec) Format(v bool, c Culture) string           { return c.FormatBool(v) }
func (boolCodec) Parse(s string, c Culture) (bool, error) { return c.ParseBool(s) }

// timeCodec uses layout when set and the culture layout otherwise.
type timeCodec struct {
	layout string
}

func (tc timeCodec) culture(c Culture) Culture {
	if tc.layout != "" {
		c.DateTimeLayout = tc.layout
	}
	return c
}

func (tc timeCodec) Format(v time.Time, c Culture) string {
	return tc.culture(c).FormatDateTime(v)
}

func (tc timeCodec) Parse(s string, c Culture) (time.Time, error) {
	return tc.culture(c).ParseDateTime(s)
}

type durationCodec struct{}

func (durationCodec) Format(v time.Duration, c Culture) string {
	return c.FormatDuration(v)
}

func (durationCodec) Parse(s string, c Culture) (time.Duration, error) {
	return c.ParseDuration(s)
}

type uuidCodec struct{}

func (uuidCodec) Format(v uuid.UUID, _ Culture) string {
	if v == uuid.Nil {
		return ""
	}
	return v.String()
}

func (uuidCodec) Parse(s string, _ Culture) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, ErrMissingValue
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a UUID", ErrInvalidFormat, s)
	}
	return u, nil
}

// nullableCodec maps nil to an empty cell and blank input to nil.
type nullableCodec[V any] struct {
	inner Codec[V]
}

// Nullable lifts a codec onto pointer fields.
func Nullable[V any](inner Codec[V]) Codec[*V] {
	return nullableCodec[V]{inner: inner}
}

func (nc nullableCodec[V]) Format(v *V, c Culture) string {
	if v == nil {
		return ""
	}
	return nc.inner.Format(*v, c)
}

func (nc nullableCodec[V]) Parse(s string, c Culture) (*V, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := nc.inner.Parse(s, c)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
