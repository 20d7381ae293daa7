// SPDX-License-Identifier: MIT

// Package sparse - matrix–vector kernels.
//
// Both kernels compute
//
//	Y := scaleY*Y + scaleAX*A*X
//
// for dense X, Y of length n owned by the caller. X must not alias Y.
// Nothing is validated: a length mismatch between A, X and Y is a caller
// error (an index panic at best, a wrong answer at worst). No allocation.

package sparse

// MulVecCCS computes Y := scaleY*Y + scaleAX*A*X for a CCS matrix.
//
// Implementation:
//   - Stage 1: Y[j] *= scaleY for all j (so scaleY = 0 clears Y of any
//     finite prior contents; 0*NaN is still NaN).
//   - Stage 2: for each column j, scatter Y[i] += scaleAX*X[j]*v over the
//     column's stored (i, v).
//
// Complexity: O(nnz + n).
func MulVecCCS[T Scalar](a *CCS[T], x, y []T, scaleAX, scaleY T) {
	n := a.n
	for j := 0; j < n; j++ {
		y[j] *= scaleY
	}
	for j := 0; j < n; j++ {
		xj := x[j]
		for ip := a.colPtr[j]; ip < a.colPtr[j+1]; ip++ {
			i := a.rowInd[ip]
			y[i] += scaleAX * xj * a.values[ip]
		}
	}
}

// MulVecCRS computes Y := scaleY*Y + scaleAX*A*X for a CRS matrix.
//
// Each row accumulates sum = Σ scaleAX*X[j]*v over its stored (j, v) and
// then writes Y[i] = scaleY*Y[i] + sum once. scaleAX is applied exactly
// once per product term.
//
// Complexity: O(nnz + n).
func MulVecCRS[T Scalar](a *CRS[T], x, y []T, scaleAX, scaleY T) {
	n := a.n
	for i := 0; i < n; i++ {
		var sum T
		for jp := a.rowPtr[i]; jp < a.rowPtr[i+1]; jp++ {
			j := a.colInd[jp]
			sum += scaleAX * x[j] * a.values[jp]
		}
		y[i] = scaleY*y[i] + sum
	}
}

// MulVec overwrites y with A*x (scaleAX = 1, scaleY = 0).
func (m *CCS[T]) MulVec(x, y []T) { MulVecCCS(m, x, y, 1, 0) }

// MulVecAdd computes y += A*x (scaleAX = 1, scaleY = 1).
func (m *CCS[T]) MulVecAdd(x, y []T) { MulVecCCS(m, x, y, 1, 1) }

// MulVec overwrites y with A*x (scaleAX = 1, scaleY = 0).
func (m *CRS[T]) MulVec(x, y []T) { MulVecCRS(m, x, y, 1, 0) }

// MulVecAdd computes y += A*x (scaleAX = 1, scaleY = 1).
func (m *CRS[T]) MulVecAdd(x, y []T) { MulVecCRS(m, x, y, 1, 1) }
