// SPDX-License-Identifier: MIT

// Package sparse stores square sparse matrices in compressed form and
// multiplies them against dense vectors.
//
// 🚀 What is in here?
//
//	Two mirror-image layouts over a generic scalar T (float32, float64,
//	complex64, complex128):
//	  • CCS: Compressed Column Storage: values grouped by column,
//	    colPtr[j] marks where column j starts inside rowInd/values.
//	  • CRS: Compressed Row Storage: values grouped by row,
//	    rowPtr[i] marks where row i starts inside colInd/values.
//
//	Both are built once from an EntrySet (an ordered (row,col)→value map)
//	and then used by the multiply kernels:
//
//	  Y := scaleY*Y + scaleAX*A*X
//
// ⚠️ Caller contract:
//
//	The kernels and constructors trust the caller. Nothing below checks
//	dimensions, index ranges or duplicate keys at run time, and the
//	entry-set constructors ASSUME every major slice (every column for CCS,
//	every row for CRS) holds at least one entry. A skipped slice leaves its
//	pointer slot at the value it had before construction (zero for a fresh
//	allocation), which silently corrupts that slice and every lookup that
//	reads it. Use EntrySet.Covers before building, or Validate after, when
//	you want a fail-fast answer instead.
//
// ⚙️ Usage:
//
//	set := sparse.NewColumnMajorEntries[float64]()
//	set.Set(0, 0, 2)
//	set.Set(1, 0, 1)
//	set.Set(1, 1, 3)
//	set.Set(2, 2, 5)
//
//	A := sparse.NewCCSFromEntries(3, set)
//	y := make([]float64, 3)
//	A.MulVec([]float64{1, 1, 1}, y) // y == [2 4 5]
//
// Performance:
//
//   - Construction: O(nnz) after the O(nnz·log nnz) ordered inserts.
//   - MulVec: O(nnz + n) time, no allocation.
//
// Concurrency:
//
//	No internal locking. Multiply never mutates the matrix, so concurrent
//	MulVec calls against one matrix with disjoint Y slices are safe;
//	anything that writes the raw arrays must be serialized by the caller.
package sparse
