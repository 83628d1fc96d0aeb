// Package kernel enumerates the kernels and co-kernels of a Boolean
// expression: the classical Brayton-McMullen decomposition that
// underlies algebraic multi-level factorization.
//
// A kernel of an expression F is a cube-free quotient F / d for some
// cube d (its co-kernel). Kernels returns every kernel of F paired
// with one deterministically-chosen co-kernel, in canonical literal
// order, with each kernel value appearing exactly once.
package kernel
