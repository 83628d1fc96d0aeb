// Package literal defines the algebra that every other package in
// boolfactor builds on: positive Boolean literals, cubes (AND of
// literals) and sum-of-products expressions (OR of cubes).
//
// Values are immutable and canonical: a Cube is a sorted, deduplicated
// slice of literal identifiers, and an Expr is a sorted, deduplicated
// slice of Cubes. Two values that denote the same set compare equal
// with reflect.DeepEqual and produce identical keys when stringified,
// which is what lets Expr and Cube serve as map keys throughout the
// rest of the module.
//
// Every function here is pure: none of them mutate their arguments,
// and none of them retain references into the caller's slices.
package literal
