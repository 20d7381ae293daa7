// SPDX-License-Identifier: MIT

// Package sparse - EntrySet: ordered (row,col)→value input for construction.
//
// Purpose:
//   - Hold the sparse structure a caller assembles before compressing it.
//   - Guarantee unique keys (the backing ordered map replaces on re-insert).
//   - Traverse in exactly the composite order the target layout expects,
//     so the construction loop stays a single forward pass.
//
// AI-Hints:
//   - Use NewColumnMajorEntries for CCS and NewRowMajorEntries for CRS.
//     Passing a set of the wrong Order to a constructor is a caller error.
//   - Call Covers(n) before construction when the input is not known to
//     populate every column/row.

package sparse

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// cell is the map key; it is compared by one of the two comparators below.
type cell struct {
	row, col int
}

// compareInts orders two ints ascending.
func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// columnMajorComparator sorts by column first, then row.
func columnMajorComparator(a, b interface{}) int {
	x, y := a.(cell), b.(cell)
	if c := compareInts(x.col, y.col); c != 0 {
		return c
	}

	return compareInts(x.row, y.row)
}

// rowMajorComparator sorts by row first, then column.
func rowMajorComparator(a, b interface{}) int {
	x, y := a.(cell), b.(cell)
	if c := compareInts(x.row, y.row); c != 0 {
		return c
	}

	return compareInts(x.col, y.col)
}

// comparatorFor maps an Order onto its key comparator.
func comparatorFor(order Order) utils.Comparator {
	if order == RowMajor {
		return rowMajorComparator
	}

	return columnMajorComparator
}

// EntrySet is an ordered map from (row, col) to a value of type T.
// Keys are unique; Set on an existing key replaces its value.
// The zero value is not usable; build one with NewEntrySet or one of the
// Order-specific helpers.
type EntrySet[T Scalar] struct {
	order Order
	tree  *treemap.Map // cell -> T, sorted by comparatorFor(order)
}

// NewEntrySet returns an empty set traversed in the given order.
// Complexity: O(1).
func NewEntrySet[T Scalar](order Order) *EntrySet[T] {
	return &EntrySet[T]{
		order: order,
		tree:  treemap.NewWith(comparatorFor(order)),
	}
}

// NewColumnMajorEntries returns an empty set ordered for CCS construction.
func NewColumnMajorEntries[T Scalar]() *EntrySet[T] { return NewEntrySet[T](ColumnMajor) }

// NewRowMajorEntries returns an empty set ordered for CRS construction.
func NewRowMajorEntries[T Scalar]() *EntrySet[T] { return NewEntrySet[T](RowMajor) }

// FromTriplets builds a set of the given order from a list of entries in
// any order. Later duplicates of a (row, col) key overwrite earlier ones.
// Complexity: O(k·log k) for k entries.
func FromTriplets[T Scalar](order Order, entries []Entry[T]) *EntrySet[T] {
	s := NewEntrySet[T](order)
	for _, e := range entries {
		s.Set(e.Row, e.Col, e.Value)
	}

	return s
}

// Order reports the traversal order of the set.
func (s *EntrySet[T]) Order() Order { return s.order }

// Len returns the number of stored entries (the nnz of a matrix built from it).
func (s *EntrySet[T]) Len() int { return s.tree.Size() }

// Set stores v at (row, col), replacing any previous value.
// Coordinates are not range-checked here; see Covers.
// Complexity: O(log k).
func (s *EntrySet[T]) Set(row, col int, v T) {
	s.tree.Put(cell{row: row, col: col}, v)
}

// Get returns the value at (row, col) and whether it is present.
func (s *EntrySet[T]) Get(row, col int) (T, bool) {
	v, ok := s.tree.Get(cell{row: row, col: col})
	if !ok {
		var zero T

		return zero, false
	}

	return v.(T), true
}

// Delete removes (row, col) if present.
func (s *EntrySet[T]) Delete(row, col int) {
	s.tree.Remove(cell{row: row, col: col})
}

// Each calls fn for every entry in ascending composite-key order.
// fn must not mutate the set.
// Complexity: O(k).
func (s *EntrySet[T]) Each(fn func(e Entry[T])) {
	it := s.tree.Iterator()
	for it.Next() {
		k := it.Key().(cell)
		fn(Entry[T]{Row: k.row, Col: k.col, Value: it.Value().(T)})
	}
}

// Entries returns a snapshot of the set in traversal order.
func (s *EntrySet[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, s.Len())
	s.Each(func(e Entry[T]) { out = append(out, e) })

	return out
}

// Covers reports whether the set satisfies the construction precondition
// for an n×n matrix: every coordinate lies in [0,n) and every major slice
// (column for ColumnMajor, row for RowMajor) has at least one entry.
//
// Returns nil on success, otherwise a wrapped ErrBadDimension,
// ErrIndexOutOfRange or ErrEmptySlice naming the first offending slice.
// Complexity: O(k + n) time, O(n) space.
func (s *EntrySet[T]) Covers(n int) error {
	const tag = "EntrySet.Covers"
	if n < 0 {
		return sparseErrorf(tag, n, ErrBadDimension)
	}

	seen := make([]bool, n)
	var err error
	s.Each(func(e Entry[T]) {
		if err != nil {
			return
		}
		major := e.Col
		if s.order == RowMajor {
			major = e.Row
		}
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			err = sparseErrorf(tag, major, ErrIndexOutOfRange)

			return
		}
		seen[major] = true
	})
	if err != nil {
		return err
	}

	for k, ok := range seen {
		if !ok {
			return sparseErrorf(tag, k, ErrEmptySlice)
		}
	}

	return nil
}
