// SPDX-License-Identifier: MIT

package sparse

// Scalar is the numeric payload accepted by every container and kernel in
// this package. Real and complex payloads are handled uniformly; only
// add, multiply and assignment are used.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Entry is one stored element of a sparse matrix.
type Entry[T Scalar] struct {
	Row   int // row coordinate, 0 <= Row < n
	Col   int // column coordinate, 0 <= Col < n
	Value T   // payload
}

// Order selects the composite key an EntrySet traverses by.
//
//   - ColumnMajor: column ascending, then row ascending (input for CCS).
//   - RowMajor: row ascending, then column ascending (input for CRS).
type Order int

const (
	// ColumnMajor sorts entries by column first, then by row.
	ColumnMajor Order = iota

	// RowMajor sorts entries by row first, then by column.
	RowMajor
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	default:
		return "unknown"
	}
}
