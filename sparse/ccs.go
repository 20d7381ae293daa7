// SPDX-License-Identifier: MIT

// Package sparse - CCS (Compressed Column Storage).
//
// Layout:
//   - values[ip], rowInd[ip] for ip in [colPtr[j], colPtr[j+1]) are the
//     stored entries of column j, sorted ascending by row.
//   - colPtr has n+1 slots; colPtr[0] == 0 and colPtr[n] == nnz.
//
// Ownership:
//   - The three slices belong to the matrix. Accessors hand out the owned
//     slices themselves (no copy) so that NewCCS callers can fill them;
//     Clone/CopyFrom are the only ways to get independent storage.
//
// Complexity quicksheet:
//   - NewCCS: O(n + nnz) zero-init; NewCCSFromEntries: O(n + nnz);
//     Clone/CopyFrom: O(n + nnz); Column: O(1); At: O(log nnz_j).

package sparse

import "slices"

// CCS is an n×n sparse matrix in compressed-column form.
type CCS[T Scalar] struct {
	n      int
	colPtr []int // len n+1, start offset of each column
	rowInd []int // len nnz, row of each stored value
	values []T   // len nnz
}

// NewCCS allocates an n×n matrix with room for nnz entries.
// All three arrays are zero-filled; the caller is responsible for filling
// ColPtr, RowInd and Values consistently before using the matrix.
// Complexity: O(n + nnz).
func NewCCS[T Scalar](n, nnz int) *CCS[T] {
	return &CCS[T]{
		n:      n,
		colPtr: make([]int, n+1),
		rowInd: make([]int, nnz),
		values: make([]T, nnz),
	}
}

// NewCCSFromEntries compresses a ColumnMajor entry set into an n×n CCS.
//
// Implementation:
//   - Stage 1: allocate arrays for entries.Len() values and n+1 pointers.
//   - Stage 2: walk the set (column, then row ascending). Each entry's row
//     and value land at position ip; the first entry of a new column c
//     records colPtr[c] = ip.
//   - Stage 3: colPtr[n] = nnz unconditionally.
//
// PRECONDITION (not checked): every column 0..n-1 holds at least one entry
// and every coordinate is in [0,n). A column with no entries never gets its
// colPtr slot written, so it keeps the allocation's zero and the column
// boundaries from there on are wrong. Check with entries.Covers(n) first, or
// with Validate afterwards, if the input is not trusted.
//
// Complexity: O(n + nnz) time and memory.
func NewCCSFromEntries[T Scalar](n int, entries *EntrySet[T]) *CCS[T] {
	nnz := entries.Len()
	m := NewCCS[T](n, nnz)

	ip, prevCol := 0, 0
	m.colPtr[0] = 0
	entries.Each(func(e Entry[T]) {
		m.rowInd[ip] = e.Row
		m.values[ip] = e.Value
		ip++
		if e.Col != prevCol {
			prevCol = e.Col
			m.colPtr[e.Col] = ip - 1
		}
	})
	m.colPtr[n] = nnz

	return m
}

// N returns the dimension of the matrix.
func (m *CCS[T]) N() int { return m.n }

// NNZ returns the number of stored entries as recorded by colPtr[n].
func (m *CCS[T]) NNZ() int { return m.colPtr[m.n] }

// ColPtr returns the owned column pointer array (len n+1).
func (m *CCS[T]) ColPtr() []int { return m.colPtr }

// RowInd returns the owned row index array (len nnz).
func (m *CCS[T]) RowInd() []int { return m.rowInd }

// Values returns the owned value array (len nnz).
func (m *CCS[T]) Values() []T { return m.values }

// Column returns the rows and values stored in column j.
// The returned slices alias the matrix storage.
func (m *CCS[T]) Column(j int) (rows []int, vals []T) {
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return m.rowInd[lo:hi], m.values[lo:hi]
}

// At returns the stored value at (row, col), or zero if nothing is stored.
// Relies on the sorted-rows invariant of each column.
func (m *CCS[T]) At(row, col int) T {
	rows, vals := m.Column(col)
	if k, ok := slices.BinarySearch(rows, row); ok {
		return vals[k]
	}
	var zero T

	return zero
}

// Each calls fn for every stored entry, column by column, rows ascending.
// This is the read-only walk external exporters need.
func (m *CCS[T]) Each(fn func(row, col int, v T)) {
	for j := 0; j < m.n; j++ {
		for ip := m.colPtr[j]; ip < m.colPtr[j+1]; ip++ {
			fn(m.rowInd[ip], j, m.values[ip])
		}
	}
}

// Clone returns a deep copy of m. nnz is taken from m's own colPtr[n], so a
// malformed source is copied faithfully, not repaired.
// Complexity: O(n + nnz).
func (m *CCS[T]) Clone() *CCS[T] {
	c := &CCS[T]{}
	c.CopyFrom(m)

	return c
}

// CopyFrom replaces m's storage with a deep copy of src. The previous
// arrays are dropped. Copying a matrix onto itself is a no-op.
// Complexity: O(n + nnz).
func (m *CCS[T]) CopyFrom(src *CCS[T]) {
	if m == src {
		return
	}
	n := src.n
	nnz := src.colPtr[n]

	m.n = n
	m.colPtr = slices.Clone(src.colPtr[:n+1])
	m.rowInd = slices.Clone(src.rowInd[:nnz])
	m.values = slices.Clone(src.values[:nnz])
}

// Validate checks the full storage contract, including the
// every-column-populated precondition. It never modifies m.
// Returns nil or a wrapped sentinel from errors.go.
// Complexity: O(n + nnz).
func (m *CCS[T]) Validate() error {
	return validateCompressed("CCS.Validate", m.n, m.colPtr, m.rowInd, len(m.values))
}
