package tree

import (
	"fmt"
	"slices"
)

// BuildWithRoot assembles the forest for a raw root string, keeping an
// explicit root record in the result.
//
// rootID is classified with ParseRef: blank and the sentinel literals select
// the matching top-level records, any other value names the single root
// record. HasRoot defaults to true; a caller's WithHasRoot(false) returns
// the children of that record instead.
func BuildWithRoot[N Node[N]](rootID string, records []N, cmp func(a, b N) int, opts ...Option) ([]N, error) {
	return Assemble(ParseRef(rootID), records, cmp, opts...)
}

// BuildWithoutRoot assembles the forest hanging directly under rootID; the
// record named rootID is not part of the result. rootID must be a concrete
// id: blank or sentinel values return ErrInvalidRootID. HasRoot is always
// false here; a WithHasRoot option is overridden.
func BuildWithoutRoot[N Node[N]](rootID string, records []N, cmp func(a, b N) int, opts ...Option) ([]N, error) {
	if isBlank(rootID) || IsSentinel(rootID) {
		return nil, fmt.Errorf("%w: BuildWithoutRoot needs a concrete id, got %q", ErrInvalidRootID, rootID)
	}

	return Assemble(ID(rootID), records, cmp, append(slices.Clip(opts), WithHasRoot(false))...)
}
