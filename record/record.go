// Package record provides Record, a serializable tree.Node, together with
// the sources that load flat records (JSON, YAML, SQL) and the comparators
// used to order siblings.
//
// Identifiers are always strings. Sources stringify numeric ids (JSON
// numbers, YAML ints, SQL integers) and map null parents to blank.
package record

import (
	"errors"

	"github.com/katalvlaran/lvtree/tree"
)

var (
	// ErrEmptyID is returned by sources when a record has a blank id.
	ErrEmptyID = errors.New("record: empty id")

	// ErrBadID is returned when an id is neither a string, a number nor null.
	ErrBadID = errors.New("record: id must be a string or number")

	// ErrUnsupportedFormat is returned for unknown input formats.
	ErrUnsupportedFormat = errors.New("record: unsupported format")

	// ErrBadColumns is returned when a SQL query does not yield 2 to 4 columns.
	ErrBadColumns = errors.New("record: query must return id, parent_id[, name[, ord]]")

	// ErrUnknownSort is returned by Comparator for unknown sort keys.
	ErrUnknownSort = errors.New("record: unknown sort key")
)

// Record is one row of a parent-linked hierarchy.
type Record struct {
	Key       string         `json:"id" yaml:"id"`
	ParentKey string         `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Order     int64          `json:"order,omitempty" yaml:"order,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children  []*Record      `json:"children,omitempty" yaml:"children,omitempty"`
}

var _ tree.Node[*Record] = (*Record)(nil)

// New returns a record with the given id and parent id.
func New(id, parentID string) *Record {
	return &Record{Key: id, ParentKey: parentID}
}

// ID implements tree.Node.
func (r *Record) ID() string { return r.Key }

// ParentID implements tree.Node.
func (r *Record) ParentID() string { return r.ParentKey }

// SetChildren implements tree.Node.
func (r *Record) SetChildren(children []*Record) { r.Children = children }

// Count returns the number of records in forest, descendants included.
func Count(forest []*Record) int {
	n := 0
	for _, r := range forest {
		n += 1 + Count(r.Children)
	}

	return n
}
