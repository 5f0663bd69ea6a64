// Package lvtree rebuilds hierarchies from flat, parent-linked records:
// org charts, menus, category tables, anything stored as (id, parent id).
//
// 🚀 What is lvtree?
//
//	A small generic library plus a CLI that bring together:
//		• tree/    : Assemble, BuildWithRoot, BuildWithoutRoot over any Node[N]
//		• record/  : a ready-made Record type, JSON/YAML/SQLite sources, sibling orders
//		• render/  : text, JSON and YAML output of an assembled forest
//		• cmd/lvtree : the command line front end (cobra + viper)
//
// ✨ Why lvtree?
//
//   - One pass index, one DFS attach: O(n log n) with sorting, O(n) without
//   - Cycles are reported instead of recursing forever
//   - Root selection by blank parent, by "0"/"null" sentinel, or by id
//   - Hooks (OnVisit) and context cancellation for large imports
//
// Quick ASCII example:
//
//	id  parent          11
//	11  0               ├── 2
//	32  11      ==>     └── 32
//	2   11                  ├── 5
//	5   32                  └── 4
//	4   32
//
//	go get github.com/katalvlaran/lvtree
package lvtree
