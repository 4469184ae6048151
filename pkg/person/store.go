package person

import (
	"fmt"

	"github.com/google/uuid"
)

// Ref identifies a record by its position in a Store.
type Ref int

// Store is the ordered, read-only record collection for one evaluation session.
type Store struct {
	id      string
	records []Person
}

// NewStore creates a store holding a copy of records in the given order.
func NewStore(records ...Person) *Store {
	owned := make([]Person, len(records))
	copy(owned, records)
	return &Store{
		id:      uuid.NewString(),
		records: owned,
	}
}

// ID returns the session identifier assigned when the store was created.
func (s *Store) ID() string {
	return s.id
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record behind ref. It panics if ref is out of range.
func (s *Store) Get(ref Ref) Person {
	return s.records[ref]
}

// All returns a view over every record in store order.
func (s *Store) All() View {
	refs := make([]Ref, len(s.records))
	for i := range refs {
		refs[i] = Ref(i)
	}
	return View{store: s, refs: refs}
}

// View is an ordered sequence of references into a Store.
// The zero View is empty and bound to no store.
type View struct {
	store *Store
	refs  []Ref
}

// NewView builds a view over store from refs. Every ref must be in range.
func NewView(store *Store, refs []Ref) (View, error) {
	owned := make([]Ref, len(refs))
	for i, ref := range refs {
		if ref < 0 || int(ref) >= store.Len() {
			return View{}, fmt.Errorf("ref %d out of range [0, %d)", ref, store.Len())
		}
		owned[i] = ref
	}
	return View{store: store, refs: owned}, nil
}

// Store returns the store the view points into.
func (v View) Store() *Store {
	return v.store
}

// Len returns the number of references in the view.
func (v View) Len() int {
	return len(v.refs)
}

// Ref returns the i-th reference.
func (v View) Ref(i int) Ref {
	return v.refs[i]
}

// At returns the record behind the i-th reference.
func (v View) At(i int) Person {
	return v.store.Get(v.refs[i])
}

// Refs returns a copy of the references in view order.
func (v View) Refs() []Ref {
	out := make([]Ref, len(v.refs))
	copy(out, v.refs)
	return out
}

// Persons materialises the records behind the view, in view order.
// Intended for rendering; evaluation works on references.
func (v View) Persons() []Person {
	out := make([]Person, len(v.refs))
	for i, ref := range v.refs {
		out[i] = v.store.Get(ref)
	}
	return out
}

// Filter returns the subsequence of v whose records satisfy keep.
func (v View) Filter(keep func(Person) bool) View {
	out := make([]Ref, 0, len(v.refs))
	for _, ref := range v.refs {
		if keep(v.store.Get(ref)) {
			out = append(out, ref)
		}
	}
	return View{store: v.store, refs: out}
}

// Extend returns a view with refs appended after v's references.
// The refs must come from the same store.
func (v View) Extend(refs ...Ref) View {
	out := make([]Ref, 0, len(v.refs)+len(refs))
	out = append(out, v.refs...)
	out = append(out, refs...)
	return View{store: v.store, refs: out}
}
