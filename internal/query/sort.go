package query

import (
	"cmp"
	"slices"

	"github.com/roach88/datasets/internal/value"
)

// SortBy returns a stably sorted copy of records ordered by field.
// An empty input yields an empty, non-nil slice.
func SortBy(records []value.Object, field string, order Order) []value.Object {
	sorted := make([]value.Object, len(records))
	copy(sorted, records)

	slices.SortStableFunc(sorted, func(a, b value.Object) int {
		av, _ := a.Get(field)
		bv, _ := b.Get(field)
		return compareForOrder(av, bv, order)
	})

	return sorted
}

// compareForOrder places nulls first for Asc and last for Desc, then
// orders non-null values by kind rank and, within a kind, by value.Compare,
// in the requested direction.
func compareForOrder(a, b value.Value, order Order) int {
	aNull, bNull := value.IsNull(a), value.IsNull(b)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		if order == Desc {
			return 1
		}
		return -1
	case bNull:
		if order == Desc {
			return -1
		}
		return 1
	}

	c := cmp.Compare(a.Kind(), b.Kind())
	if c == 0 {
		c = value.Compare(a, b)
	}
	if order == Desc {
		return -c
	}
	return c
}
