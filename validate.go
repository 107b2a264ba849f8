package tabular

import (
	"fmt"
	"strings"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Reading or writing will fail or lose data
	SeverityWarning                 // May produce unexpected results
)

// ValidationIssue is a single problem found in a Definition.
type ValidationIssue struct {
	Severity Severity
	Column   string // property name of the column, empty for definition level issues
	Message  string
}

// String formats the issue as "[ERROR] Name: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	if v.Column == "" {
		return fmt.Sprintf("[%s] %s", sev, v.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.Column, v.Message)
}

// Validate checks def for problems that only show up when reading or
// writing, without requiring data.
func Validate[T any](def *Definition[T]) []ValidationIssue {
	var issues []ValidationIssue
	if len(def.columns) == 0 {
		issues = append(issues, ValidationIssue{Severity: SeverityError, Message: "definition has no columns"})
		return issues
	}

	seen := NewHeaders()
	owner := make(map[string]string)
	for _, c := range def.columns {
		issues = append(issues, validateColumn(def, c, seen, owner)...)
	}
	return issues
}

func validateColumn[T any](def *Definition[T], c Column[T], seen *HeaderCollection, owner map[string]string) []ValidationIssue {
	var issues []ValidationIssue
	prop := c.PropertyName()

	names := c.ReadingHeaders()
	for _, h := range names.Names() {
		if strings.TrimSpace(h) == "" {
			issues = append(issues, ValidationIssue{Severity: SeverityError, Column: prop, Message: "empty header name"})
			continue
		}
		if !seen.Add(h) {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError,
				Column:   prop,
				Message:  fmt.Sprintf("header %q is already used by %q", h, owner[h]),
			})
			continue
		}
		owner[h] = prop
	}

	a, assignable := c.(FieldAssigner[T])
	switch {
	case names.Len() != 1:
		issues = append(issues, ValidationIssue{
			Severity: SeverityWarning,
			Column:   prop,
			Message:  fmt.Sprintf("%s column has %d reading headers and is not read", c.DataType(), names.Len()),
		})
	case !assignable:
		issues = append(issues, ValidationIssue{Severity: SeverityWarning, Column: prop, Message: "column is write only and is not read"})
	case !a.Settable() && !def.IgnoreReadonly():
		issues = append(issues, ValidationIssue{
			Severity: SeverityWarning,
			Column:   prop,
			Message:  "field is readonly; every read line will report an error unless readonly fields are ignored",
		})
	}
	return issues
}
