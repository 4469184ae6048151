// Package person provides the record model and the record store that
// criteria are evaluated against.
//
// # Records
//
// A Person is an immutable value with a name, a gender and a marital status:
//
//	p := person.New("Diana", person.Female, person.Single)
//	fmt.Println(p.Name(), p.Gender(), p.MaritalStatus()) // Diana Female Single
//
// Two persons are equal when all three attributes are equal. Person is a
// comparable struct, so == and map keys work directly.
//
// # Store and Views
//
// A Store holds the canonical ordered collection for one evaluation session.
// Evaluation results are Views: ordered lists of Refs (indices) into the
// store. Views never copy records.
//
//	store := person.NewStore(records...)
//	all := store.All()
//	singles := all.Filter(func(p person.Person) bool {
//	    return p.MaritalStatus() == person.Single
//	})
//
// Stores and Views are immutable after construction and safe for
// concurrent reads.
package person
