// SPDX-License-Identifier: MIT

// Package sparse - CRS (Compressed Row Storage).
//
// The row-major mirror of CCS: values[jp], colInd[jp] for jp in
// [rowPtr[i], rowPtr[i+1]) are the stored entries of row i, sorted
// ascending by column. rowPtr has n+1 slots, rowPtr[0] == 0 and
// rowPtr[n] == nnz. Ownership and complexity match ccs.go.

package sparse

import "slices"

// CRS is an n×n sparse matrix in compressed-row form.
type CRS[T Scalar] struct {
	n      int
	rowPtr []int // len n+1, start offset of each row
	colInd []int // len nnz, column of each stored value
	values []T   // len nnz
}

// NewCRS allocates an n×n matrix with room for nnz entries, zero-filled.
// The caller fills RowPtr, ColInd and Values.
func NewCRS[T Scalar](n, nnz int) *CRS[T] {
	return &CRS[T]{
		n:      n,
		rowPtr: make([]int, n+1),
		colInd: make([]int, nnz),
		values: make([]T, nnz),
	}
}

// NewCRSFromEntries compresses a RowMajor entry set into an n×n CRS.
// Same single pass as NewCCSFromEntries with rows and columns exchanged:
// the first entry of a new row r records rowPtr[r], and rowPtr[n] = nnz is
// written last.
//
// PRECONDITION (not checked): every row 0..n-1 holds at least one entry.
// An empty row leaves its rowPtr slot at zero and corrupts the row
// boundaries from there on. See EntrySet.Covers and Validate.
func NewCRSFromEntries[T Scalar](n int, entries *EntrySet[T]) *CRS[T] {
	nnz := entries.Len()
	m := NewCRS[T](n, nnz)

	ip, prevRow := 0, 0
	m.rowPtr[0] = 0
	entries.Each(func(e Entry[T]) {
		m.colInd[ip] = e.Col
		m.values[ip] = e.Value
		ip++
		if e.Row != prevRow {
			prevRow = e.Row
			m.rowPtr[e.Row] = ip - 1
		}
	})
	m.rowPtr[n] = nnz

	return m
}

// N returns the dimension of the matrix.
func (m *CRS[T]) N() int { return m.n }

// NNZ returns the number of stored entries as recorded by rowPtr[n].
func (m *CRS[T]) NNZ() int { return m.rowPtr[m.n] }

// RowPtr returns the owned row pointer array (len n+1).
func (m *CRS[T]) RowPtr() []int { return m.rowPtr }

// ColInd returns the owned column index array (len nnz).
func (m *CRS[T]) ColInd() []int { return m.colInd }

// Values returns the owned value array (len nnz).
func (m *CRS[T]) Values() []T { return m.values }

// Row returns the columns and values stored in row i, aliasing storage.
func (m *CRS[T]) Row(i int) (cols []int, vals []T) {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return m.colInd[lo:hi], m.values[lo:hi]
}

// At returns the stored value at (row, col), or zero.
func (m *CRS[T]) At(row, col int) T {
	cols, vals := m.Row(row)
	if k, ok := slices.BinarySearch(cols, col); ok {
		return vals[k]
	}
	var zero T

	return zero
}

// Each calls fn for every stored entry, row by row, columns ascending.
func (m *CRS[T]) Each(fn func(row, col int, v T)) {
	for i := 0; i < m.n; i++ {
		for jp := m.rowPtr[i]; jp < m.rowPtr[i+1]; jp++ {
			fn(i, m.colInd[jp], m.values[jp])
		}
	}
}

// Clone returns a deep copy of m sized from m's own rowPtr[n].
func (m *CRS[T]) Clone() *CRS[T] {
	c := &CRS[T]{}
	c.CopyFrom(m)

	return c
}

// CopyFrom replaces m's storage with a deep copy of src.
// Copying a matrix onto itself is a no-op.
func (m *CRS[T]) CopyFrom(src *CRS[T]) {
	if m == src {
		return
	}
	n := src.n
	nnz := src.rowPtr[n]

	m.n = n
	m.rowPtr = slices.Clone(src.rowPtr[:n+1])
	m.colInd = slices.Clone(src.colInd[:nnz])
	m.values = slices.Clone(src.values[:nnz])
}

// Validate checks the full storage contract, including the
// every-row-populated precondition.
func (m *CRS[T]) Validate() error {
	return validateCompressed("CRS.Validate", m.n, m.rowPtr, m.colInd, len(m.values))
}
