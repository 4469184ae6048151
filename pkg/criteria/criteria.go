package criteria

import (
	"fmt"
	"strings"
)

// Kind identifies a criteria variant.
type Kind string

const (
	KindFemale Kind = "female" // gender is Female
	KindMale   Kind = "male"   // gender is Male
	KindSingle Kind = "single" // marital status is Single
	KindAnd    Kind = "and"    // right narrows left
	KindOr     Kind = "or"     // ordered union of left and right
)

// Criteria is an immutable predicate expression over person records.
// The variant set is closed: values are only created by the builders in
// this package.
type Criteria interface {
	criteriaNode()
}

type female struct{}

type male struct{}

type single struct{}

type and struct {
	left, right Criteria
}

type or struct {
	left, right Criteria
}

func (female) criteriaNode() {}
func (male) criteriaNode()   {}
func (single) criteriaNode() {}
func (*and) criteriaNode()   {}
func (*or) criteriaNode()    {}

// Female matches records whose gender is Female.
func Female() Criteria { return female{} }

// Male matches records whose gender is Male.
func Male() Criteria { return male{} }

// Single matches records whose marital status is Single.
func Single() Criteria { return single{} }

// And matches records satisfying left and then right. Right is evaluated
// over left's result, never over the original input. It panics if either
// operand is nil.
func And(left, right Criteria) Criteria {
	mustOperand("And", left, right)
	return &and{left: left, right: right}
}

// Or matches records satisfying left or right. Left's matches come first,
// followed by right's matches that are not already present. It panics if
// either operand is nil.
func Or(left, right Criteria) Criteria {
	mustOperand("Or", left, right)
	return &or{left: left, right: right}
}

func mustOperand(op string, left, right Criteria) {
	if left == nil || right == nil {
		panic("criteria: nil operand to " + op)
	}
}

// KindOf returns the variant of c.
func KindOf(c Criteria) Kind {
	switch c.(type) {
	case female:
		return KindFemale
	case male:
		return KindMale
	case single:
		return KindSingle
	case *and:
		return KindAnd
	case *or:
		return KindOr
	default:
		panic(unknownVariant(c))
	}
}

// Operands returns the two sub-criteria of an And or Or node.
// ok is false for leaves.
func Operands(c Criteria) (left, right Criteria, ok bool) {
	switch n := c.(type) {
	case *and:
		return n.left, n.right, true
	case *or:
		return n.left, n.right, true
	default:
		return nil, nil, false
	}
}

// Walk visits c and its sub-criteria in pre-order, left before right.
// Returning false from fn skips the node's children.
func Walk(c Criteria, fn func(Criteria) bool) {
	if !fn(c) {
		return
	}
	if left, right, ok := Operands(c); ok {
		Walk(left, fn)
		Walk(right, fn)
	}
}

// Depth returns the height of the expression tree. A leaf has depth 1.
func Depth(c Criteria) int {
	left, right, ok := Operands(c)
	if !ok {
		return 1
	}
	return 1 + max(Depth(left), Depth(right))
}

// String renders c as a readable expression such as "(male AND single)".
func String(c Criteria) string {
	var b strings.Builder
	writeTo(&b, c)
	return b.String()
}

func writeTo(b *strings.Builder, c Criteria) {
	switch n := c.(type) {
	case female, male, single:
		b.WriteString(string(KindOf(n)))
	case *and:
		writeBinary(b, n.left, " AND ", n.right)
	case *or:
		writeBinary(b, n.left, " OR ", n.right)
	default:
		panic(unknownVariant(c))
	}
}

func writeBinary(b *strings.Builder, left Criteria, op string, right Criteria) {
	b.WriteByte('(')
	writeTo(b, left)
	b.WriteString(op)
	writeTo(b, right)
	b.WriteByte(')')
}

func unknownVariant(c Criteria) string {
	return fmt.Sprintf("criteria: unknown variant %T", c)
}
