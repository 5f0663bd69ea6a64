package record

import (
	"cmp"
	"fmt"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ByOrder orders records by their Order field.
func ByOrder(a, b *Record) int {
	return cmp.Compare(a.Order, b.Order)
}

// ByKey orders records by id. Integer ids come first and compare
// numerically, so "2" sorts before "10"; other ids follow as plain strings.
func ByKey(a, b *Record) int {
	x, errA := strconv.ParseInt(a.Key, 10, 64)
	y, errB := strconv.ParseInt(b.Key, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(x, y)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a.Key, b.Key)
	}
}

// ByName orders records by Name using the collation rules of tag.
// The returned function is not safe for concurrent use.
func ByName(tag language.Tag) func(a, b *Record) int {
	c := collate.New(tag)

	return func(a, b *Record) int {
		return c.CompareString(a.Name, b.Name)
	}
}

// Comparator resolves a sort key: "" (encounter order, nil), "order", "id"
// or "name". locale is a BCP 47 tag used by "name"; empty means und.
func Comparator(key, locale string) (func(a, b *Record) int, error) {
	switch key {
	case "":
		return nil, nil
	case "order":
		return ByOrder, nil
	case "id":
		return ByKey, nil
	case "name":
		tag := language.Und
		if locale != "" {
			var err error
			if tag, err = language.Parse(locale); err != nil {
				return nil, fmt.Errorf("record: locale %q: %w", locale, err)
			}
		}
		return ByName(tag), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSort, key)
	}
}
