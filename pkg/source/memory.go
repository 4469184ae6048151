package source

import (
	"context"

	"mercator-hq/sieve/pkg/person"
)

// MemorySource serves a fixed list of records.
type MemorySource struct {
	name    string
	records []person.Person
}

// NewMemorySource creates a source over a copy of records.
func NewMemorySource(records ...person.Person) *MemorySource {
	return &MemorySource{
		name:    "memory",
		records: append([]person.Person(nil), records...),
	}
}

// NewDemoSource creates a source serving Demo().
func NewDemoSource() *MemorySource {
	src := NewMemorySource(Demo()...)
	src.name = "demo"
	return src
}

// Name returns "memory", or "demo" for the demo source.
func (s *MemorySource) Name() string {
	return s.name
}

// Load returns a copy of the records.
func (s *MemorySource) Load(ctx context.Context) ([]person.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]person.Person(nil), s.records...), nil
}

// Demo returns the six sample records in their canonical order.
func Demo() []person.Person {
	return []person.Person{
		person.New("Robert", person.Male, person.Single),
		person.New("John", person.Male, person.Married),
		person.New("Laura", person.Female, person.Married),
		person.New("Diana", person.Female, person.Single),
		person.New("Mike", person.Male, person.Single),
		person.New("Bobby", person.Male, person.Single),
	}
}
