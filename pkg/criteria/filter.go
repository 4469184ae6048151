package criteria

import "mercator-hq/sieve/pkg/person"

// Filter returns the references in "in" that satisfy c.
//
// Leaves keep input order. And feeds the left result into the right operand.
// Or evaluates both operands over the original input and appends the right
// matches whose record is not already present, in the right operand's order.
// Filter is pure and never fails; an empty input yields an empty view.
func Filter(c Criteria, in person.View) person.View {
	switch n := c.(type) {
	case female:
		return in.Filter(isFemale)
	case male:
		return in.Filter(isMale)
	case single:
		return in.Filter(isSingle)
	case *and:
		return Filter(n.right, Filter(n.left, in))
	case *or:
		return union(Filter(n.left, in), Filter(n.right, in))
	default:
		panic(unknownVariant(c))
	}
}

func isFemale(p person.Person) bool { return p.Gender() == person.Female }

func isMale(p person.Person) bool { return p.Gender() == person.Male }

func isSingle(p person.Person) bool { return p.MaritalStatus() == person.Single }

// union appends to left every element of right whose record is not yet in
// the result. Records are compared structurally.
func union(left, right person.View) person.View {
	if right.Len() == 0 {
		return left
	}

	seen := make(map[person.Person]struct{}, left.Len()+right.Len())
	for i := 0; i < left.Len(); i++ {
		seen[left.At(i)] = struct{}{}
	}

	var tail []person.Ref
	for i := 0; i < right.Len(); i++ {
		p := right.At(i)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		tail = append(tail, right.Ref(i))
	}

	if len(tail) == 0 {
		return left
	}
	return left.Extend(tail...)
}
