// Package synth is the synthesis driver: it iterates kernel
// extraction, kernel-matrix construction, rectangle selection, and
// extraction to a fixed point for one expression, then recurses onto
// every definition that extraction introduces.
//
// Synthesize is a pure function: it owns its fresh-name counter,
// definitions map, and history log for the duration of one call and
// returns them bundled in a Network. There is no global mutable
// state — Synthesize resolves its options once, drives the
// computation to completion, and returns a value, rather than
// exposing any shared, mutable handle across calls.
package synth
