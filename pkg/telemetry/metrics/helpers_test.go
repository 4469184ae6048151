package metrics

import "mercator-hq/sieve/pkg/person"

func demoStore() *person.Store {
	return person.NewStore(
		person.New("Robert", person.Male, person.Single),
		person.New("John", person.Male, person.Married),
		person.New("Laura", person.Female, person.Married),
		person.New("Diana", person.Female, person.Single),
		person.New("Mike", person.Male, person.Single),
		person.New("Bobby", person.Male, person.Single),
	)
}
