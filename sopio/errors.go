package sopio

import "errors"

// ErrSyntax is the sentinel wrapped (via %w, with the offending input,
// term or literal) by every parse failure Parse returns. Syntax errors are an external
// concern the core never raises; sopio is where they live.
var ErrSyntax = errors.New("sopio: syntax error")
