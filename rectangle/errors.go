package rectangle

import "errors"

// ErrEnumerationCapped is a non-fatal, informational sentinel:
// Enumerate never returns it as an error; it sets Result.Capped on a
// truncated result, and the driver's history log records the event
// with this value in Err, so errors.Is(entry.Err, rectangle.ErrEnumerationCapped) holds.
var ErrEnumerationCapped = errors.New("rectangle: enumeration capped before exhausting all column subsets")
