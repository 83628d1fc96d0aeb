// Package kmatrix builds the kernel-cube matrix that the rectangle
// enumerator operates on: a sparse Boolean matrix whose rows are the
// distinct co-kernels of an expression and whose columns are the
// distinct cubes appearing across all of its kernels.
//
// Matrix is built from label slices plus a reverse-lookup map plus a
// sparse set of entries — scaled down to the Boolean, unweighted case
// this package needs.
package kmatrix
