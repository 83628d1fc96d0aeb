package extract

import "errors"

// ErrRectangleNotRealized signals an internal-consistency failure: a
// selected rectangle named a cube (co-kernel + kernel-cube) that is
// not actually present in the expression being factored. It
// should never occur if kernel and matrix construction are correct;
// the driver treats it as recoverable and skips to the next candidate.
var ErrRectangleNotRealized = errors.New("extract: rectangle cube not present in expression")
