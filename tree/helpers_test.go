package tree_test

import (
	"strings"
)

// item is a minimal Node implementation used across the tests.
type item struct {
	id, pid string
	order   int
	kids    []*item
	sets    int // SetChildren call count
}

func (n *item) ID() string { return n.id }
func (n *item) ParentID() string { return n.pid }
func (n *item) SetChildren(c []*item) {
	n.kids = c
	n.sets++
}

// it builds an item; order defaults to 0.
func it(id, pid string, order ...int) *item {
	n := &item{id: id, pid: pid}
	if len(order) > 0 {
		n.order = order[0]
	}

	return n
}

// byOrder compares items by their order field.
func byOrder(a, b *item) int { return a.order - b.order }

// demoSet is the (id, parentId, order) dataset used by several tests:
//
//	11
//	├── 32
//	│   ├── 5
//	│   └── 4
//	└── 2
func demoSet(rootParent string) []*item {
	return []*item{
		it("11", rootParent, 1),
		it("32", "11", 11),
		it("2", "11", 2),
		it("5", "32", 1),
		it("4", "32", 2),
	}
}

// shape renders a forest as "11[32[5 4] 2]" for compact assertions.
func shape(forest []*item) string {
	var sb strings.Builder
	writeShape(&sb, forest)

	return sb.String()
}

func writeShape(sb *strings.Builder, nodes []*item) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.id)
		if len(n.kids) > 0 {
			sb.WriteByte('[')
			writeShape(sb, n.kids)
			sb.WriteByte(']')
		}
	}
}

// collectIDs walks a forest pre-order.
func collectIDs(forest []*item) []string {
	var ids []string
	var walk func(ns []*item)
	walk = func(ns []*item) {
		for _, n := range ns {
			ids = append(ids, n.id)
			walk(n.kids)
		}
	}
	walk(forest)

	return ids
}

// view is a plain projection of a forest for go-cmp comparisons.
type view struct {
	ID   string
	Kids []view
}

func project(forest []*item) []view {
	out := make([]view, 0, len(forest))
	for _, n := range forest {
		out = append(out, view{ID: n.id, Kids: project(n.kids)})
	}

	return out
}
