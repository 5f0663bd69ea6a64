// Package tree implements forest assembly over caller-owned records.
//
// Assemble indexes the flat record list by parent id once, selects the
// top-level group for the ParentRef, then walks downward attaching each
// record's children (sorted by the optional comparator) before descending.
//
// Complexity:
//
//   - Time:   O(V) without a comparator, O(V log V) with one.
//   - Memory: O(V) for the index and colour map.
package tree

import (
	"fmt"
	"slices"
)

// assembler holds per-call state while attaching children.
type assembler[N Node[N]] struct {
	opts     Options          // resolved options
	cmp      func(a, b N) int // sibling order; nil keeps encounter order
	children map[string][]N   // parent id -> children in encounter order
	state    map[string]int   // colour per record id while CycleCheck is on
	attached int              // records that received SetChildren
	deepest  int              // deepest level reached
}

// Assemble builds the forest selected by ref from records.
// cmp, if non-nil, orders every sibling group (stable, so ties keep encounter
// order). The input slice is never reordered; records are touched only via
// SetChildren. A ref that matches nothing yields an empty, non-nil result.
func Assemble[N Node[N]](ref ParentRef, records []N, cmp func(a, b N) int, opts ...Option) ([]N, error) {
	// 1. Validate the root specifier before touching any record
	if err := ref.validate(); err != nil {
		return nil, err
	}

	// 2. Apply options
	aopts := DefaultOptions()
	for _, fn := range opts {
		fn(&aopts)
	}

	// 3. Select the top-level group
	top := selectTop(ref, records, aopts.HasRoot)
	if len(top) == 0 {
		if aopts.Logger != nil {
			aopts.Logger.DebugContext(aopts.Ctx, "tree: no records matched", "ref", ref.String(), "records", len(records))
		}

		return top, nil
	}

	// 4. Index children once and walk
	a := &assembler[N]{
		opts:     aopts,
		cmp:      cmp,
		children: indexByParent(records),
	}
	if aopts.CycleCheck {
		a.state = make(map[string]int, len(records))
	}
	if cmp != nil {
		slices.SortStableFunc(top, cmp)
	}
	for _, n := range top {
		if err := a.attach(n, 0); err != nil {
			return nil, err
		}
	}

	// 5. Summary
	if aopts.Logger != nil {
		aopts.Logger.DebugContext(aopts.Ctx, "tree: assembled",
			"ref", ref.String(),
			"records", len(records),
			"roots", len(top),
			"attached", a.attached,
			"depth", a.deepest,
		)
	}

	return top, nil
}

// attach gives n its children and descends into them.
func (a *assembler[N]) attach(n N, depth int) error {
	// 1. Cancellation check
	select {
	case <-a.opts.Ctx.Done():
		return a.opts.Ctx.Err()
	default:
	}

	id := n.ID()

	// 2. Depth limit
	if a.opts.MaxDepth >= 0 && depth > a.opts.MaxDepth {
		return fmt.Errorf("%w: %q at depth %d (limit %d)", ErrMaxDepthExceeded, id, depth, a.opts.MaxDepth)
	}

	// 3. Back-edge: id already on the current path
	if a.state != nil {
		if a.state[id] == gray {
			return fmt.Errorf("%w: %q is its own ancestor", ErrCycleDetected, id)
		}
		a.state[id] = gray
	}

	// 4. Pre-order hook
	if a.opts.OnVisit != nil {
		if err := a.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("tree: OnVisit hook for %q: %w", id, err)
		}
	}

	// 5. Attach children, parent first
	kids := a.childrenOf(id)
	n.SetChildren(kids)
	a.attached++
	if depth > a.deepest {
		a.deepest = depth
	}

	// 6. Descend
	for _, c := range kids {
		if err := a.attach(c, depth+1); err != nil {
			return err
		}
	}

	if a.state != nil {
		a.state[id] = black
	}

	return nil
}

// childrenOf returns a fresh, sorted copy of the children indexed under id.
func (a *assembler[N]) childrenOf(id string) []N {
	src := a.children[id]
	kids := make([]N, len(src))
	copy(kids, src)
	if a.cmp != nil && len(kids) > 1 {
		slices.SortStableFunc(kids, a.cmp)
	}

	return kids
}

// selectTop applies the root-selection policy, preserving encounter order.
func selectTop[N Node[N]](ref ParentRef, records []N, hasRoot bool) []N {
	var match func(n N) bool
	switch ref.kind {
	case RefBlank:
		match = func(n N) bool { return isBlank(n.ParentID()) }
	case RefSentinel:
		match = func(n N) bool { return n.ParentID() == ref.value }
	default:
		if hasRoot {
			match = func(n N) bool { return n.ID() == ref.value }
		} else {
			match = func(n N) bool { return n.ParentID() == ref.value }
		}
	}

	top := make([]N, 0)
	for _, n := range records {
		if match(n) {
			top = append(top, n)
		}
	}

	return top
}

// indexByParent groups records by parent id in encounter order.
func indexByParent[N Node[N]](records []N) map[string][]N {
	idx := make(map[string][]N, len(records))
	for _, n := range records {
		pid := n.ParentID()
		idx[pid] = append(idx[pid], n)
	}

	return idx
}
