package tree

import (
	"fmt"
	"strings"
)

// Sentinel literals conventionally meaning "no parent".
const (
	SentinelZero = "0"
	SentinelNull = "null"
)

// RefKind tells which root-selection policy a ParentRef uses.
type RefKind int

const (
	RefBlank    RefKind = iota // parent id is blank
	RefSentinel                // parent id equals a sentinel literal
	RefID                      // explicit record id
)

// String returns the lower-case kind name.
func (k RefKind) String() string {
	switch k {
	case RefBlank:
		return "blank"
	case RefSentinel:
		return "sentinel"
	case RefID:
		return "id"
	default:
		return "unknown"
	}
}

// ParentRef selects the top-level records of an assembly call.
// The zero value is Blank().
type ParentRef struct {
	kind  RefKind
	value string
}

// Blank selects every record whose parent id is empty or whitespace.
func Blank() ParentRef {
	return ParentRef{kind: RefBlank}
}

// Zero selects every record whose parent id is "0".
func Zero() ParentRef {
	return ParentRef{kind: RefSentinel, value: SentinelZero}
}

// Null selects every record whose parent id is "null".
func Null() ParentRef {
	return ParentRef{kind: RefSentinel, value: SentinelNull}
}

// ID names an explicit root record. Blank and sentinel values are rejected
// by Assemble with ErrInvalidRootID.
func ID(id string) ParentRef {
	return ParentRef{kind: RefID, value: id}
}

// ParseRef classifies a raw root string: blank → Blank, "0" / "null" → the
// matching sentinel, anything else → ID(s).
func ParseRef(s string) ParentRef {
	switch {
	case isBlank(s):
		return Blank()
	case s == SentinelZero:
		return Zero()
	case s == SentinelNull:
		return Null()
	default:
		return ID(s)
	}
}

// IsSentinel reports whether s is one of the sentinel literals.
func IsSentinel(s string) bool {
	return s == SentinelZero || s == SentinelNull
}

// Kind returns the selection policy.
func (r ParentRef) Kind() RefKind { return r.kind }

// Value returns the sentinel literal or explicit id; empty for Blank.
func (r ParentRef) Value() string { return r.value }

// String renders the ref as "blank", "sentinel(0)" or "id(42)".
func (r ParentRef) String() string {
	if r.kind == RefBlank {
		return r.kind.String()
	}

	return fmt.Sprintf("%s(%s)", r.kind, r.value)
}

// validate rejects refs that cannot be resolved unambiguously.
func (r ParentRef) validate() error {
	switch r.kind {
	case RefBlank:
		return nil
	case RefSentinel:
		if !IsSentinel(r.value) {
			return fmt.Errorf("%w: %q is not a sentinel", ErrInvalidRootID, r.value)
		}
		return nil
	case RefID:
		if isBlank(r.value) || IsSentinel(r.value) {
			return fmt.Errorf("%w: %q cannot name a root record", ErrInvalidRootID, r.value)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown ref kind %d", ErrInvalidRootID, int(r.kind))
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
