// Package tree defines the node contract, options and sentinel errors
// used by Assemble and its front ends.
package tree

import (
	"context"
	"errors"
	"log/slog"
)

// Visitation colours used for cycle detection.
const (
	white = iota // not reached yet
	gray         // on the current descent path
	black        // subtree fully attached
)

var (
	// ErrInvalidRootID is returned when an explicit root id is blank or one of
	// the sentinel literals "0" / "null". Use Blank(), Zero() or Null() instead.
	ErrInvalidRootID = errors.New("tree: invalid root id")

	// ErrCycleDetected indicates that a reachable record lists one of its own
	// descendants (or itself) as parent.
	ErrCycleDetected = errors.New("tree: cycle detected")

	// ErrMaxDepthExceeded indicates the forest is deeper than WithMaxDepth allows.
	ErrMaxDepthExceeded = errors.New("tree: max depth exceeded")
)

// Node is the capability set a record type implements to take part in
// assembly. N is normally the implementing pointer type itself:
//
//	type Dept struct{ ... }
//	func (d *Dept) SetChildren(c []*Dept) { d.Subs = c }
type Node[N any] interface {
	// ID returns the record identifier, unique within the collection.
	ID() string

	// ParentID returns the identifier of the logical parent, or a blank or
	// sentinel value for top-level records.
	ParentID() string

	// SetChildren receives the ordered direct children of the record.
	// It is called once per reached record; leaves receive an empty slice.
	SetChildren(children []N)
}

// Option configures optional behavior of Assemble.
type Option func(*Options)

// Options holds configurable parameters for an assembly call.
type Options struct {
	// Ctx allows cancellation; checked before each record is expanded.
	Ctx context.Context

	// HasRoot is consulted only for RefID roots. When true the record named by
	// the ref is the single top-level entry; when false its direct children are.
	HasRoot bool

	// CycleCheck enables gray/black marking along the descent path. With it
	// disabled, cyclic input recurses until MaxDepth (or the stack) gives out.
	CycleCheck bool

	// MaxDepth, if non-negative, is the deepest level allowed. Top-level
	// records are depth 0. Default is -1 (no limit).
	MaxDepth int

	// OnVisit, if non-nil, is invoked before a record's children are attached.
	// Returning an error aborts assembly with that error.
	OnVisit func(id string, depth int) error

	// Logger receives a debug summary of each call. nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - HasRoot = true
//   - cycle detection enabled
//   - no depth limit (MaxDepth = -1)
//   - no hook, no logger
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		HasRoot:    true,
		CycleCheck: true,
		MaxDepth:   -1,
		OnVisit:    nil,
		Logger:     nil,
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHasRoot controls whether an explicit root record is itself returned.
// It only matters for RefID; BuildWithoutRoot always sets it to false.
func WithHasRoot(hasRoot bool) Option {
	return func(o *Options) {
		o.HasRoot = hasRoot
	}
}

// WithCycleCheck enables or disables cycle detection.
func WithCycleCheck(enabled bool) Option {
	return func(o *Options) {
		o.CycleCheck = enabled
	}
}

// WithMaxDepth limits the depth of the assembled forest.
// A negative limit means unbounded.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithLogger routes the per-call debug summary to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
