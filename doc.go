// Package tabular maps typed row values to and from delimited text and
// spreadsheet grids using a declarative list of columns.
//
// A Definition holds the ordered columns of a table and its configuration.
// Writers (DelimitedWriter, SpreadsheetWriter, PrettyWriter) ask every column
// for its header names and rendered cells; the Mapper reads lines from a
// LineSource back into rows, collecting field errors per row instead of
// failing the whole read.
//
//	type Person struct {
//		ID     int
//		Name   string
//		Active bool
//	}
//
//	def := tabular.NewDefinition([]tabular.Column[Person]{
//		tabular.NewNumberColumn("ID",
//			func(p Person) int { return p.ID },
//			func(p *Person, v int) { p.ID = v }),
//		tabular.NewTextColumn("Name",
//			func(p Person) string { return p.Name },
//			func(p *Person, v string) { p.Name = v }),
//		tabular.NewBooleanColumn("Active",
//			func(p Person) bool { return p.Active },
//			func(p *Person, v bool) { p.Active = v }),
//	})
//
//	err := tabular.WriteCSV(w, people, def)
//	rows, err := tabular.ReadCSV(r, def)
//
// Columns whose header set depends on the data (CompositeColumn,
// DynamicColumn) compute their headers from the full row slice when writing.
// They are write-only: the read path maps columns with exactly one header.
package tabular
