package tabular

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldError_Messages(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{MissingHeader, "The corresponding value of header name 'H' (P) was not found in the collection on line 4."},
		{MissingValue, "The value of 'H' (P) was NULL on line 4."},
		{InvalidFormat, "The value of 'H' (P) was invalid on line 4."},
		{ReadonlyProperty, "The field 'P' is readonly (e.g. is not writable) on line 4."},
		{Unexpected, "An error occurred in field 'H' (P) on line 4."},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			fe := newFieldError(tt.kind, "H", "P", 4, nil)
			assert.Equal(t, tt.want, fe.Error())
		})
	}
}

func TestClassifyConversion(t *testing.T) {
	assert.Equal(t, MissingValue, classifyConversion(ErrMissingValue))
	assert.Equal(t, InvalidFormat, classifyConversion(fmt.Errorf("%w: bad", ErrInvalidFormat)))
	assert.Equal(t, UndefinedColumn, classifyConversion(ErrUndefinedColumn))
	assert.Equal(t, ReadonlyProperty, classifyConversion(ErrReadonlyProperty))
	assert.Equal(t, Unexpected, classifyConversion(errors.New("other")))
}

func TestMapperError_Unwrap(t *testing.T) {
	fe := newFieldError(MissingValue, "H", "P", 2, ErrMissingValue)
	err := error(&MapperError{Line: RawLine{Number: 2}, Errors: []*FieldError{fe}, Err: fe})
	assert.ErrorIs(t, err, ErrMissingValue)
	assert.Equal(t, "tabular: mapping line 2 failed: The value of 'H' (P) was NULL on line 2.", err.Error())

	var got *FieldError
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, "P", got.Property)
}
