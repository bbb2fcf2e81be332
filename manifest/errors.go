package manifest

import "errors"

// ErrInternalInvariant marks a condition that should be unreachable given a
// correctly behaving dispatcher and rewriter: it indicates a code bug rather
// than bad input, and is never recovered internally.
var ErrInternalInvariant = errors.New("internal invariant violated")
