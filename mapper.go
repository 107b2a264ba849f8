package tabular

import (
	"errors"
	"fmt"
	"iter"
)

// MappedRow pairs a row built by the Mapper with its source line and the
// field errors recorded while converting it.
type MappedRow[T any] struct {
	Row  T
	Line RawLine

	errors []*FieldError
	seen   map[string]struct{}
}

// LineNumber returns the 1-based number of the source line.
func (r *MappedRow[T]) LineNumber() int {
	return r.Line.Number
}

// HasErrors reports whether any field failed.
func (r *MappedRow[T]) HasErrors() bool {
	return len(r.errors) > 0
}

// Errors returns the recorded messages, deduplicated, in the order they occurred.
func (r *MappedRow[T]) Errors() []string {
	out := make([]string, len(r.errors))
	for i, e := range r.errors {
		out[i] = e.Message
	}
	return out
}

// FieldErrors returns the recorded errors, deduplicated by message.
func (r *MappedRow[T]) FieldErrors() []*FieldError {
	out := make([]*FieldError, len(r.errors))
	copy(out, r.errors)
	return out
}

func (r *MappedRow[T]) addError(fe *FieldError) {
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	if _, ok := r.seen[fe.Message]; ok {
		return
	}
	r.seen[fe.Message] = struct{}{}
	r.errors = append(r.errors, fe)
}

// fieldBinding is a column the read path assigns.
type fieldBinding[T any] struct {
	header   string
	property string
	assigner FieldAssigner[T]
}

// Mapper reads lines into rows of T according to a Definition.
type Mapper[T any] struct {
	def      *Definition[T]
	headers  *HeaderCollection
	bindings []fieldBinding[T]
}

// NewMapper resolves the reading headers of def. Columns with more or fewer
// than one reading header, and columns that cannot assign a field, are not read.
func NewMapper[T any](def *Definition[T]) *Mapper[T] {
	m := &Mapper[T]{def: def, headers: def.ReadingHeaders()}
	for _, c := range def.columns {
		names := c.ReadingHeaders()
		if names.Len() != 1 {
			continue
		}
		a, ok := c.(FieldAssigner[T])
		if !ok {
			continue
		}
		m.bindings = append(m.bindings, fieldBinding[T]{
			header:   names.At(0),
			property: c.PropertyName(),
			assigner: a,
		})
	}
	return m
}

// Headers returns the union of the definition's reading headers.
func (m *Mapper[T]) Headers() *HeaderCollection {
	return m.headers.Merge(nil)
}

// Rows maps src lazily. Each call starts a new read of src. In lenient mode
// every line yields a row; in strict mode the first field error is yielded as
// a *MapperError and ends the sequence. Source errors end the sequence too.
//
// When src implements Culture() Culture, that culture is used for parsing
// instead of the definition's.
func (m *Mapper[T]) Rows(src LineSource) iter.Seq2[*MappedRow[T], error] {
	culture := m.def.Culture()
	if cs, ok := src.(interface{ Culture() Culture }); ok {
		culture = cs.Culture()
	}
	lm := NewLineMapper(m.headers, m.def.FirstRowContainsHeaders(), m.def.Logger())

	return func(yield func(*MappedRow[T], error) bool) {
		for line, err := range lm.Lines(src) {
			if err != nil {
				yield(nil, err)
				return
			}
			row, err := m.mapLine(line, culture)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// ReadAll collects every row of src. In strict mode it stops at the first error.
func (m *Mapper[T]) ReadAll(src LineSource) ([]*MappedRow[T], error) {
	var out []*MappedRow[T]
	for row, err := range m.Rows(src) {
		if err != nil {
			return out, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *Mapper[T]) mapLine(line Line, culture Culture) (*MappedRow[T], error) {
	row := &MappedRow[T]{Line: line.RawLine}
	logger := m.def.Logger()

	for _, b := range m.bindings {
		fe := m.assign(row, line, b, culture)
		if fe == nil {
			continue
		}
		row.addError(fe)
		logger.Warn("field error", "line", line.Number, "header", b.header, "kind", fe.Kind.String(), "error", fe.Err)
		if m.def.ThrowOnError() {
			return nil, &MapperError{Line: line.RawLine, Errors: row.FieldErrors(), Err: fe}
		}
	}
	return row, nil
}

// assign converts one field. It returns nil on success or when the field is
// skipped.
func (m *Mapper[T]) assign(row *MappedRow[T], line Line, b fieldBinding[T], culture Culture) (fe *FieldError) {
	if !b.assigner.Settable() {
		if m.def.IgnoreReadonly() {
			return nil
		}
		return newFieldError(ReadonlyProperty, b.header, b.property, line.Number, ErrReadonlyProperty)
	}

	raw, err := line.Value(b.header)
	if err != nil {
		return newFieldError(MissingHeader, b.header, b.property, line.Number, err)
	}

	// Custom codecs and setters are caller code; a panic there is reported
	// as an unexpected failure of this field.
	defer func() {
		if r := recover(); r != nil {
			fe = newFieldError(Unexpected, b.header, b.property, line.Number, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := b.assigner.Assign(&row.Row, raw, culture); err != nil {
		kind := classifyConversion(err)
		if kind == UndefinedColumn {
			kind = Unexpected
		}
		return newFieldError(kind, b.header, b.property, line.Number, err)
	}
	return nil
}

// IsMapperError reports whether err aborted a strict read.
func IsMapperError(err error) bool {
	var me *MapperError
	return errors.As(err, &me)
}
