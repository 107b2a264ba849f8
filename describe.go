package tabular

import (
	"fmt"
	"strings"
)

// Describe returns a human-readable tree of def: its options and, per
// column, the data type and the reading and writing headers. Writing headers
// of composite and dynamic columns depend on rows; pass nil to see only the
// fixed ones.
func Describe[T any](def *Definition[T], rows []T) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Definition: %d columns\n", len(def.columns))
	fmt.Fprintf(&b, "  headers=%t culture=%s encoding=%v strict=%t ignoreReadonly=%t removeNewLines=%t bom=%t\n",
		def.FirstRowContainsHeaders(), def.Culture(), def.Encoding(), def.ThrowOnError(),
		def.IgnoreReadonly(), def.RemoveNewLines(), def.WriteBOM())

	writing := def.WritingHeaders(rows)
	b.WriteString("  Columns:\n")
	for i, c := range def.columns {
		fmt.Fprintf(&b, "    %s (%s)%s\n", c.PropertyName(), c.DataType(), describeColumnAttrs(c))
		if r := c.ReadingHeaders(); r.Len() > 0 {
			fmt.Fprintf(&b, "      read:  %s\n", r)
		}
		if w := writing[i]; w.Len() > 0 {
			fmt.Fprintf(&b, "      write: %s\n", w)
		}
	}
	return b.String()
}

// describeColumnAttrs returns key column attributes for display.
func describeColumnAttrs[T any](c Column[T]) string {
	var parts []string
	if a, ok := c.(FieldAssigner[T]); ok && !a.Settable() {
		parts = append(parts, "readonly")
	}
	if _, ok := c.(*ExpressionColumn[T]); ok {
		parts = append(parts, "expression")
	}
	if ck := CellKindOf(c.DataType()); ck != CellText {
		parts = append(parts, "cell="+ck.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
