// Package sopio implements the two external collaborators kept out of
// the core's scope: parsing a textual sum-of-products expression into
// literal.Expr, and printing a synth.Network back out in the same
// textual form.
//
// Grammar (Parse): a cube is either a run of identifier characters
// ([A-Za-z0-9_]), read as one literal per character, or dot-separated
// identifiers ([A-Za-z_][A-Za-z0-9_]*, e.g. "d.t1"), read as one
// literal per field; concatenation means AND. Cubes are joined
// by "+", optionally padded with spaces. The literal "0" alone denotes
// the empty expression (constant 0); a "1" term denotes the empty cube
// (constant 1, i.e. an expression with one cube and no literals).
//
// Printed form (Print/Sprint): cubes are rendered as their literals
// in alphabetical order, concatenated when every literal is a single
// character and dot-separated otherwise; cubes are joined by " + ", and a
// Network is printed as one "name = expr" line per definition in
// generation order followed by "F = expr" for the root.
package sopio
