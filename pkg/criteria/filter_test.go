package criteria

import (
	"math/rand"
	"testing"

	"mercator-hq/sieve/pkg/person"

	"github.com/google/go-cmp/cmp"
)

// demoStore returns the six sample records in their canonical order.
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

func names(v person.View) []string {
	out := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.At(i).Name()
	}
	return out
}

func TestFilter_DemoScenario(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "male",
			criteria: Male(),
			want:     []string{"Robert", "John", "Mike", "Bobby"},
		},
		{
			name:     "female",
			criteria: Female(),
			want:     []string{"Laura", "Diana"},
		},
		{
			name:     "single",
			criteria: Single(),
			want:     []string{"Robert", "Diana", "Mike", "Bobby"},
		},
		{
			name:     "single male",
			criteria: And(Male(), Single()),
			want:     []string{"Robert", "Mike", "Bobby"},
		},
		{
			name:     "single or female",
			criteria: Or(Female(), Single()),
			want:     []string{"Laura", "Diana", "Robert", "Mike", "Bobby"},
		},
		{
			name:     "single or female reversed",
			criteria: Or(Single(), Female()),
			want:     []string{"Robert", "Diana", "Mike", "Bobby", "Laura"},
		},
		{
			name:     "female and male is empty",
			criteria: And(Female(), Male()),
			want:     []string{},
		},
		{
			name:     "nested",
			criteria: Or(And(Female(), Single()), And(Male(), Single())),
			want:     []string{"Diana", "Robert", "Mike", "Bobby"},
		},
	}

	store := demoStore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(tt.criteria, store.All()))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%s) mismatch (-want +got):\n%s", String(tt.criteria), diff)
			}
		})
	}
}

func TestFilter_ReturnsReferencesIntoStore(t *testing.T) {
	store := demoStore()
	got := Filter(Female(), store.All())

	if got.Store() != store {
		t.Fatal("result must reference the input store")
	}
	if diff := cmp.Diff([]person.Ref{2, 3}, got.Refs()); diff != "" {
		t.Errorf("Refs() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	empty := person.NewStore().All()
	for _, c := range sampleCriteria() {
		if got := Filter(c, empty); got.Len() != 0 {
			t.Errorf("Filter(%s) over empty input returned %d records", String(c), got.Len())
		}
	}

	var zero person.View
	if got := Filter(Or(Male(), Single()), zero); got.Len() != 0 {
		t.Errorf("Filter over the zero view returned %d records", got.Len())
	}
}

// The right operand sees the left operand's output, so the result follows
// the order of the (reversed) input view.
func TestFilter_AndNarrowsSequentially(t *testing.T) {
	store := demoStore()
	in, err := person.NewView(store, []person.Ref{5, 4, 3, 2, 1, 0})
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}

	got := names(Filter(And(Single(), Male()), in))
	want := []string{"Bobby", "Mike", "Robert"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("And over reversed input mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_OrDeduplicatesStructurally(t *testing.T) {
	// Two distinct refs with equal records: the right operand's copy is
	// dropped because an equal record is already present.
	store := person.NewStore(
		person.New("Ann", person.Female, person.Single),
		person.New("Ann", person.Female, person.Single),
		person.New("Ben", person.Male, person.Single),
	)

	got := Filter(Or(Female(), Single()), store.All())
	want := []string{"Ann", "Ann", "Ben"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("Or() mismatch (-want +got):\n%s", diff)
	}

	got = Filter(Or(Male(), Single()), store.All())
	want = []string{"Ben", "Ann"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("Or() mismatch (-want +got):\n%s", diff)
	}
}

func sampleCriteria() []Criteria {
	return []Criteria{
		Female(),
		Male(),
		Single(),
		And(Male(), Single()),
		Or(Female(), Single()),
		Or(And(Female(), Single()), Male()),
		And(Or(Female(), Single()), Or(Male(), Single())),
	}
}

func randomStore(r *rand.Rand, n int) *person.Store {
	pool := []string{"Ada", "Bo", "Cy", "Di", "Ed"}
	records := make([]person.Person, n)
	for i := range records {
		records[i] = person.New(
			pool[r.Intn(len(pool))],
			person.Gender(r.Intn(2)),
			person.MaritalStatus(r.Intn(2)),
		)
	}
	return person.NewStore(records...)
}

func randomCriteria(r *rand.Rand, depth int) Criteria {
	if depth <= 1 || r.Intn(3) == 0 {
		switch r.Intn(3) {
		case 0:
			return Female()
		case 1:
			return Male()
		default:
			return Single()
		}
	}
	left := randomCriteria(r, depth-1)
	right := randomCriteria(r, depth-1)
	if r.Intn(2) == 0 {
		return And(left, right)
	}
	return Or(left, right)
}

func isSubsequence(sub, of person.View) bool {
	j := 0
	for i := 0; i < sub.Len(); i++ {
		for j < of.Len() && of.Ref(j) != sub.Ref(i) {
			j++
		}
		if j == of.Len() {
			return false
		}
		j++
	}
	return true
}

func refSet(v person.View) map[person.Ref]bool {
	set := make(map[person.Ref]bool, v.Len())
	for _, ref := range v.Refs() {
		set[ref] = true
	}
	return set
}

func personSet(v person.View) map[person.Person]bool {
	set := make(map[person.Person]bool, v.Len())
	for _, p := range v.Persons() {
		set[p] = true
	}
	return set
}

func sameViews(a, b person.View) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Ref(i) != b.Ref(i) {
			return false
		}
	}
	return true
}

func sameSets[K comparable](a, b map[K]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestFilter_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for iter := 0; iter < 300; iter++ {
		store := randomStore(r, r.Intn(12))
		in := store.All()
		c1 := randomCriteria(r, 4)
		c2 := randomCriteria(r, 4)

		out := Filter(c1, in)

		// Subsequence of the input, no duplicate references.
		if !isSubsequence(out, in) {
			t.Fatalf("Filter(%s) is not a subsequence of its input", String(c1))
		}
		if len(refSet(out)) != out.Len() {
			t.Fatalf("Filter(%s) returned duplicate references", String(c1))
		}

		// Or(C, C) == C.
		if !sameViews(Filter(Or(c1, c1), in), out) {
			t.Fatalf("Or(%s, %s) differs from %s", String(c1), String(c1), String(c1))
		}

		// And narrows its left operand.
		if !isSubsequence(Filter(And(c1, c2), in), out) {
			t.Fatalf("And(%s, %s) is not a subsequence of %s", String(c1), String(c2), String(c1))
		}

		// Or is the ordered set union of both operands.
		left := out
		right := Filter(c2, in)
		union := Filter(Or(c1, c2), in)

		for i := 0; i < left.Len(); i++ {
			if union.Ref(i) != left.Ref(i) {
				t.Fatalf("Or(%s, %s) does not start with the left result", String(c1), String(c2))
			}
		}
		want := personSet(left)
		for p := range personSet(right) {
			want[p] = true
		}
		if !sameSets(personSet(union), want) {
			t.Fatalf("Or(%s, %s) is not the union of both results", String(c1), String(c2))
		}
		tail, err := person.NewView(store, union.Refs()[left.Len():])
		if err != nil {
			t.Fatalf("NewView() error = %v", err)
		}
		if !isSubsequence(tail, right) {
			t.Fatalf("Or(%s, %s) tail is not in right-operand order", String(c1), String(c2))
		}

		// Or membership is commutative.
		if !sameSets(personSet(union), personSet(Filter(Or(c2, c1), in))) {
			t.Fatalf("Or(%s, %s) and its mirror have different members", String(c1), String(c2))
		}
	}
}
