package tabular

import (
	"time"

	"github.com/shopspring/decimal"
)

type person struct {
	ID       int
	Name     string
	IsActive bool
	Balance  decimal.Decimal
	Born     time.Time
	Score    *int
}

func personColumns() []Column[person] {
	return []Column[person]{
		NewNumberColumn("ID", func(p person) int { return p.ID }, func(p *person, v int) { p.ID = v }),
		NewTextColumn("Name", func(p person) string { return p.Name }, func(p *person, v string) { p.Name = v }),
		NewBooleanColumn("IsActive", func(p person) bool { return p.IsActive }, func(p *person, v bool) { p.IsActive = v }),
	}
}

func personDefinition(opts ...Option) *Definition[person] {
	return NewDefinition(personColumns(), opts...)
}

func samplePeople() []person {
	return []person{
		{ID: 1, Name: "Alice", IsActive: true},
		{ID: 2, Name: "Bob", IsActive: false},
		{ID: 3, Name: "Carol", IsActive: true},
	}
}

func intPtr(v int) *int { return &v }
