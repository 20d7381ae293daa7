// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - One structural checker shared by CCS.Validate and CRS.Validate; the
//     two layouts differ only in which axis is major.
//   - Report, never repair. Construction and multiply do not call this.
//
// Check order (first failure wins):
//   dimension -> array lengths -> ptr[0] -> ptr[n] -> per slice
//   (order, non-empty, minor range, strictly ascending minor).

package sparse

// validateCompressed checks a compressed layout of dimension n.
// ptr is the major-axis pointer array, ind the minor-axis index array and
// nvals the length of the value array.
// Complexity: O(n + nnz), no allocation.
func validateCompressed(tag string, n int, ptr, ind []int, nvals int) error {
	if n < 0 {
		return sparseErrorf(tag, n, ErrBadDimension)
	}
	if len(ptr) != n+1 {
		return sparseErrorf(tag, n, ErrLengthMismatch)
	}
	if len(ind) != nvals {
		return sparseErrorf(tag, n, ErrLengthMismatch)
	}
	if ptr[0] != 0 {
		return sparseErrorf(tag, 0, ErrPointerStart)
	}
	if ptr[n] != len(ind) {
		return sparseErrorf(tag, n, ErrPointerEnd)
	}

	for k := 0; k < n; k++ {
		lo, hi := ptr[k], ptr[k+1]
		if hi < lo || lo < 0 || hi > len(ind) {
			return sparseErrorf(tag, k, ErrPointerOrder)
		}
		if hi == lo {
			return sparseErrorf(tag, k, ErrEmptySlice)
		}
		for p := lo; p < hi; p++ {
			if ind[p] < 0 || ind[p] >= n {
				return sparseErrorf(tag, k, ErrIndexOutOfRange)
			}
			if p > lo && ind[p] <= ind[p-1] {
				return sparseErrorf(tag, k, ErrUnsortedSlice)
			}
		}
	}

	return nil
}
