// Package criteria evaluates composable predicates over person records.
//
// A criteria value is an immutable expression tree built from three leaves
// and two combinators:
//
//	criteria.Female()          // gender is Female
//	criteria.Male()            // gender is Male
//	criteria.Single()          // marital status is Single
//	criteria.And(left, right)  // right narrows left's result
//	criteria.Or(left, right)   // left's result, then right's new matches
//
// The variant set is closed. There is no negation and no text syntax;
// expressions are composed in code.
//
// # Evaluation
//
// Filter interprets an expression against a person.View and returns a new
// view holding references into the same store:
//
//	store := person.NewStore(records...)
//	singleMales := criteria.Filter(
//	    criteria.And(criteria.Male(), criteria.Single()),
//	    store.All(),
//	)
//
// Ordering rules:
//
//   - Leaves keep input order.
//   - And(A, B) evaluates B over A's output, not over the original input.
//   - Or(A, B) evaluates A and B over the same input. The result is A's
//     sequence followed by the elements of B's sequence whose record is not
//     already present, in B's order. Records compare structurally.
//
// Filter is total. Evaluator adds an optional depth guard, debug logging and
// metrics around it.
//
// # Thread Safety
//
// Criteria, stores and views are immutable; Filter and Evaluator may be used
// from multiple goroutines at once.
package criteria
