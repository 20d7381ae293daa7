// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// Construction and multiply never return errors (the caller owns the
// contract). These sentinels are reported only by the opt-in structural
// checks: (*CCS).Validate, (*CRS).Validate and (*EntrySet).Covers.
// Match them with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension is returned when a matrix or entry set is checked
	// against a negative dimension.
	ErrBadDimension = errors.New("sparse: dimension must be >= 0")

	// ErrLengthMismatch indicates that the pointer, index and value arrays
	// do not have the lengths implied by n and nnz.
	ErrLengthMismatch = errors.New("sparse: array length mismatch")

	// ErrPointerStart indicates ptr[0] != 0.
	ErrPointerStart = errors.New("sparse: pointer array must start at 0")

	// ErrPointerEnd indicates ptr[n] != nnz.
	ErrPointerEnd = errors.New("sparse: pointer array must end at nnz")

	// ErrPointerOrder indicates a decreasing step in the pointer array.
	ErrPointerOrder = errors.New("sparse: pointer array is not non-decreasing")

	// ErrEmptySlice indicates a column (CCS) or row (CRS) with no entries,
	// the precondition the entry-set constructors rely on.
	ErrEmptySlice = errors.New("sparse: empty major-axis slice")

	// ErrIndexOutOfRange indicates a row or column coordinate outside [0,n).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrUnsortedSlice indicates minor indices that are not strictly
	// ascending inside one slice (this also catches duplicates).
	ErrUnsortedSlice = errors.New("sparse: slice not sorted by minor index")
)

// sparseErrorf tags err with the checking call site and the offending slice.
func sparseErrorf(tag string, k int, err error) error {
	return fmt.Errorf("%s: slice %d: %w", tag, k, err)
}
