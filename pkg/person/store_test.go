package person

import "testing"

func sampleStore() *Store {
	return NewStore(
		New("Robert", Male, Single),
		New("John", Male, Married),
		New("Laura", Female, Married),
	)
}

func TestNewStore_CopiesInput(t *testing.T) {
	records := []Person{New("A", Male, Single), New("B", Female, Married)}
	store := NewStore(records...)

	records[0] = New("Z", Female, Single)

	if got := store.Get(0).Name(); got != "A" {
		t.Errorf("store should not observe caller mutation, got %q", got)
	}
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
}

func TestNewStore_UniqueIDs(t *testing.T) {
	a, b := NewStore(), NewStore()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID(), b.ID())
	}
}

func TestStore_All(t *testing.T) {
	store := sampleStore()
	all := store.All()

	if all.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", all.Len())
	}
	for i := 0; i < all.Len(); i++ {
		if all.Ref(i) != Ref(i) {
			t.Errorf("Ref(%d) = %d, want %d", i, all.Ref(i), i)
		}
	}
	if all.Store() != store {
		t.Error("view should point at its store")
	}
}

func TestView_Filter(t *testing.T) {
	store := sampleStore()
	males := store.All().Filter(func(p Person) bool { return p.Gender() == Male })

	got := males.Refs()
	want := []Ref{0, 1}
	if len(got) != len(want) {
		t.Fatalf("Refs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Refs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	empty := View{}.Filter(func(Person) bool { return true })
	if empty.Len() != 0 {
		t.Errorf("filtering the zero view should be empty, got %d", empty.Len())
	}
}

func TestView_RefsIsCopy(t *testing.T) {
	store := sampleStore()
	all := store.All()

	refs := all.Refs()
	refs[0] = 2

	if all.Ref(0) != 0 {
		t.Error("mutating Refs() result must not affect the view")
	}
}

func TestView_PersonsAndAt(t *testing.T) {
	store := sampleStore()
	view, err := NewView(store, []Ref{2, 0})
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}

	persons := view.Persons()
	if persons[0].Name() != "Laura" || persons[1].Name() != "Robert" {
		t.Errorf("Persons() = %v", persons)
	}
	if view.At(1) != store.Get(0) {
		t.Error("At(1) should resolve to store record 0")
	}
}

func TestNewView_OutOfRange(t *testing.T) {
	store := sampleStore()
	if _, err := NewView(store, []Ref{0, 3}); err == nil {
		t.Error("expected error for out-of-range ref")
	}
	if _, err := NewView(store, []Ref{-1}); err == nil {
		t.Error("expected error for negative ref")
	}
}

func TestView_Extend(t *testing.T) {
	store := sampleStore()
	base, _ := NewView(store, []Ref{1})
	extended := base.Extend(0, 2)

	if base.Len() != 1 {
		t.Errorf("Extend must not modify the receiver, Len() = %d", base.Len())
	}
	if extended.Len() != 3 || extended.Ref(0) != 1 || extended.Ref(2) != 2 {
		t.Errorf("Extend() refs = %v", extended.Refs())
	}
}
