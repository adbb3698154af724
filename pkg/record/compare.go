package record

import "sort"

// Comparator is a three-way ordering function over two live records.
// It must return:
//
// 1. -1 if a orders before b
//
// 2. 0 if a and b order equally
//
// 3. 1 if a orders after b
//
// A comparator is read-only: it never mutates, consumes or releases
// either record.
type Comparator func(a, b *Record) int

// ByID orders records ascending by id. Records with equal ids compare
// equal; their relative order after a sort is unspecified.
func ByID(a, b *Record) int {
	switch {
	case a.id < b.id:
		return -1
	case a.id > b.id:
		return 1
	default:
		return 0
	}
}

// Compare is the default record ordering, by id.
func Compare(a, b *Record) int {
	return ByID(a, b)
}

// Sort orders recs in place using cmp. The sort is not stable: ties are
// broken arbitrarily. The caller must have exclusive access to recs for
// the duration of the call.
func Sort(recs []*Record, cmp Comparator) {
	sort.Slice(recs, func(i, j int) bool {
		return cmp(recs[i], recs[j]) < 0
	})
}

// SortByID sorts recs in place, ascending by id.
func SortByID(recs []*Record) {
	Sort(recs, ByID)
}
