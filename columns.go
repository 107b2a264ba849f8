package tabular

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewTextColumn creates a Text column over a string field.
func NewTextColumn[T any](property string, get func(T) string, set func(*T, string), opts ...ColumnOption) *ScalarColumn[T, string] {
	return NewColumn(property, Text, get, set, Codec[string](stringCodec{}), opts...)
}

// NewNumberColumn creates a Number column over an integer field.
func NewNumberColumn[T any, V Integer](property string, get func(T) V, set func(*T, V), opts ...ColumnOption) *ScalarColumn[T, V] {
	return NewColumn(property, Number, get, set, Codec[V](intCodec[V]{}), opts...)
}

// NewNullableNumberColumn creates a Number column over a *integer field.
func NewNullableNumberColumn[T any, V Integer](property string, get func(T) *V, set func(*T, *V), opts ...ColumnOption) *ScalarColumn[T, *V] {
	return NewColumn(property, Number, get, set, Nullable[V](intCodec[V]{}), opts...)
}

// NewFloatColumn creates a Decimal column over a floating point field.
func NewFloatColumn[T any, V Float](property string, get func(T) V, set func(*T, V), opts ...ColumnOption) *ScalarColumn[T, V] {
	return NewColumn(property, Decimal, get, set, Codec[V](floatCodec[V]{}), opts...)
}

// NewNullableFloatColumn creates a Decimal column over a *float field.
func NewNullableFloatColumn[T any, V Float](property string, get func(T) *V, set func(*T, *V), opts ...ColumnOption) *ScalarColumn[T, *V] {
	return NewColumn(property, Decimal, get, set, Nullable[V](floatCodec[V]{}), opts...)
}

// NewDecimalColumn creates a Decimal column over a decimal.Decimal field.
func NewDecimalColumn[T any](property string, get func(T) decimal.Decimal, set func(*T, decimal.Decimal), opts ...ColumnOption) *ScalarColumn[T, decimal.Decimal] {
	o := newColumnOptions(opts)
	return NewColumn(property, Decimal, get, set, Codec[decimal.Decimal](decimalCodec{places: o.places}), opts...)
}

// NewNullableDecimalColumn creates a Decimal column over a *decimal.Decimal field.
func NewNullableDecimalColumn[T any](property string, get func(T) *decimal.Decimal, set func(*T, *decimal.Decimal), opts ...ColumnOption) *ScalarColumn[T, *decimal.Decimal] {
	o := newColumnOptions(opts)
	return NewColumn(property, Decimal, get, set, Nullable[decimal.Decimal](decimalCodec{places: o.places}), opts...)
}

// NewCurrencyColumn creates a Currency column rounded to two places unless
// DecimalPlaces says otherwise.
func NewCurrencyColumn[T any](property string, get func(T) decimal.Decimal, set func(*T, decimal.Decimal), opts ...ColumnOption) *ScalarColumn[T, decimal.Decimal] {
	o := newColumnOptions(append([]ColumnOption{DecimalPlaces(2)}, opts...))
	return NewColumn(property, Currency, get, set, Codec[decimal.Decimal](decimalCodec{places: o.places}), opts...)
}

// NewBooleanColumn creates a Boolean column.
func NewBooleanColumn[T any](property string, get func(T) bool, set func(*T, bool), opts ...ColumnOption) *ScalarColumn[T, bool] {
	return NewColumn(property, Boolean, get, set, Codec[bool](boolCodec{}), opts...)
}

// NewNullableBooleanColumn creates a Boolean column over a *bool field.
func NewNullableBooleanColumn[T any](property string, get func(T) *bool, set func(*T, *bool), opts ...ColumnOption) *ScalarColumn[T, *bool] {
	return NewColumn(property, Boolean, get, set, Nullable[bool](boolCodec{}), opts...)
}

// NewDateTimeColumn creates a DateTime column. Layout overrides the culture layout.
func NewDateTimeColumn[T any](property string, get func(T) time.Time, set func(*T, time.Time), opts ...ColumnOption) *ScalarColumn[T, time.Time] {
	o := newColumnOptions(opts)
	return NewColumn(property, DateTime, get, set, Codec[time.Time](timeCodec{layout: o.layout}), opts...)
}

// NewNullableDateTimeColumn creates a DateTime column over a *time.Time field.
func NewNullableDateTimeColumn[T any](property string, get func(T) *time.Time, set func(*T, *time.Time), opts ...ColumnOption) *ScalarColumn[T, *time.Time] {
	o := newColumnOptions(opts)
	return NewColumn(property, DateTime, get, set, Nullable[time.Time](timeCodec{layout: o.layout}), opts...)
}

// NewTimeColumn creates a Time column over a time.Duration field.
func NewTimeColumn[T any](property string, get func(T) time.Duration, set func(*T, time.Duration), opts ...ColumnOption) *ScalarColumn[T, time.Duration] {
	return NewColumn(property, Time, get, set, Codec[time.Duration](durationCodec{}), opts...)
}

// NewNullableTimeColumn creates a Time column over a *time.Duration field.
func NewNullableTimeColumn[T any](property string, get func(T) *time.Duration, set func(*T, *time.Duration), opts ...ColumnOption) *ScalarColumn[T, *time.Duration] {
	return NewColumn(property, Time, get, set, Nullable[time.Duration](durationCodec{}), opts...)
}

// NewUUIDColumn creates a StrongTyped column over a uuid.UUID field.
// uuid.Nil renders as an empty cell.
func NewUUIDColumn[T any](property string, get func(T) uuid.UUID, set func(*T, uuid.UUID), opts ...ColumnOption) *ScalarColumn[T, uuid.UUID] {
	return NewColumn(property, StrongTyped, get, set, Codec[uuid.UUID](uuidCodec{}), opts...)
}
