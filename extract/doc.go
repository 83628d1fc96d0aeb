// Package extract applies one factoring step — a rectangle extraction
// or a single-row extraction — to an expression, producing a rewritten
// expression and a new named definition.
package extract
