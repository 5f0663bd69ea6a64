// Package tree rebuilds rooted forests from flat parent-linked records.
//
// What:
//
//   - Assemble: selects the top-level records for a ParentRef, then attaches
//     every record's children top-down by matching ParentID() against ID().
//   - BuildWithRoot / BuildWithoutRoot: the two front ends over Assemble,
//     either keeping an explicit root record or returning only its children.
//   - ParentRef: Blank, Zero/Null sentinels or an explicit ID, replacing the
//     overloaded "root id" string.
//
// Why:
//
//   - Database rows, org charts, menus and category tables usually arrive as
//     (id, parent_id) pairs; callers want nested children lists.
//   - Ordering siblings with a comparator at every level is part of the same pass.
//
// Root selection (in priority order):
//
//  1. Blank          every record whose ParentID() is blank.
//  2. Zero / Null    every record whose ParentID() equals "0" / "null".
//  3. ID(x), hasRoot every record whose ID() equals x.
//  4. ID(x)          every record whose ParentID() equals x; x itself is left out.
//
// Key Types:
//
//   - Node[N]: ID(), ParentID(), SetChildren([]N) implemented by the caller.
//   - ParentRef, RefKind: root specifier sum type.
//   - Option, Options: functional options (HasRoot, CycleCheck, MaxDepth,
//     Ctx, OnVisit, Logger).
//
// Complexity:
//
//   - Time:   O(V) to index and attach, plus O(V log V) when a comparator is given.
//   - Memory: O(V) for the children index and colour map, O(depth) stack.
//
// Errors:
//
//   - ErrInvalidRootID     explicit root id is blank or a sentinel literal
//   - ErrCycleDetected     a reachable record is its own ancestor
//   - ErrMaxDepthExceeded  the forest is deeper than WithMaxDepth allows
//   - context errors       assembly canceled via WithContext
//   - hook errors          propagated from OnVisit
//
// On error the records already visited keep the children attached so far;
// callers should discard the partial forest.
//
// Concurrency: Assemble keeps no state between calls. Two calls sharing the
// same record instances race on SetChildren and must be serialized by the caller.
package tree
