package tabular

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrHeaderNotFound is returned when a header name is not part of a collection.
	ErrHeaderNotFound = errors.New("tabular: header not found")
	// ErrMissingValue is returned when a field without a value is converted into a non-nullable type.
	ErrMissingValue = errors.New("tabular: value is missing")
	// ErrInvalidFormat is returned when a field value cannot be parsed into its target type.
	ErrInvalidFormat = errors.New("tabular: invalid field format")
	// ErrReadonlyProperty is returned when a column is mapped onto a field that has no setter.
	ErrReadonlyProperty = errors.New("tabular: property is readonly")
	// ErrUndefinedColumn is returned when a composite value names a column outside the fixed header list.
	ErrUndefinedColumn = errors.New("tabular: undefined dynamic column name")
)

// ErrorKind classifies a field error recorded while mapping a line.
type ErrorKind int

const (
	MissingHeader ErrorKind = iota
	MissingValue
	InvalidFormat
	Unexpected
	ReadonlyProperty
	UndefinedColumn
)

// String returns a human-readable name for the ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case MissingHeader:
		return "MissingHeader"
	case MissingValue:
		return "MissingValue"
	case InvalidFormat:
		return "InvalidFormat"
	case Unexpected:
		return "Unexpected"
	case ReadonlyProperty:
		return "ReadonlyProperty"
	case UndefinedColumn:
		return "UndefinedColumn"
	default:
		return "Unknown"
	}
}

// FieldError describes one failed field on one input line.
type FieldError struct {
	Kind     ErrorKind
	Header   string
	Property string
	Line     int
	Message  string
	Err      error
}

// Error returns the human-readable message.
func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap returns the underlying conversion error.
func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newFieldError(kind ErrorKind, header, property string, line int, err error) *FieldError {
	var msg string
	switch kind {
	case MissingHeader:
		msg = fmt.Sprintf("The corresponding value of header name '%s' (%s) was not found in the collection on line %d.", header, property, line)
	case MissingValue:
		msg = fmt.Sprintf("The value of '%s' (%s) was NULL on line %d.", header, property, line)
	case InvalidFormat:
		msg = fmt.Sprintf("The value of '%s' (%s) was invalid on line %d.", header, property, line)
	case ReadonlyProperty:
		msg = fmt.Sprintf("The field '%s' is readonly (e.g. is not writable) on line %d.", property, line)
	default:
		msg = fmt.Sprintf("An error occurred in field '%s' (%s) on line %d.", header, property, line)
	}
	return &FieldError{Kind: kind, Header: header, Property: property, Line: line, Message: msg, Err: err}
}

// classifyConversion maps a conversion error onto its ErrorKind.
func classifyConversion(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMissingValue):
		return MissingValue
	case errors.Is(err, ErrInvalidFormat):
		return InvalidFormat
	case errors.Is(err, ErrReadonlyProperty):
		return ReadonlyProperty
	case errors.Is(err, ErrUndefinedColumn):
		return UndefinedColumn
	default:
		return Unexpected
	}
}

// MapperError aborts a read in strict mode. It carries the failing line and
// every error recorded on it so far.
type MapperError struct {
	Line   RawLine
	Errors []*FieldError
	Err    *FieldError
}

// Error formats the triggering message followed by the line number.
func (e *MapperError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return fmt.Sprintf("tabular: mapping line %d failed: %s", e.Line.Number, strings.Join(msgs, " "))
}

// Unwrap returns the field error that aborted the read.
func (e *MapperError) Unwrap() error {
	if e == nil || e.Err == nil {
		return nil
	}
	return e.Err
}
