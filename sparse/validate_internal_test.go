// SPDX-License-Identifier: MIT

package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateCompressed_Lengths covers the array-length guards that the
// public constructors can never violate.
func TestValidateCompressed_Lengths(t *testing.T) {
	assert.ErrorIs(t, validateCompressed("t", -1, nil, nil, 0), ErrBadDimension)
	assert.ErrorIs(t, validateCompressed("t", 2, []int{0, 1}, []int{0}, 1), ErrLengthMismatch)
	assert.ErrorIs(t, validateCompressed("t", 1, []int{0, 1}, []int{0}, 2), ErrLengthMismatch)
	assert.NoError(t, validateCompressed("t", 0, []int{0}, nil, 0))
	assert.NoError(t, validateCompressed("t", 1, []int{0, 1}, []int{0}, 1))
}

// TestValidate_WrappedMessage checks the tag and slice land in the message.
func TestValidate_WrappedMessage(t *testing.T) {
	m := &CRS[float64]{n: 2, rowPtr: []int{0, 1, 1}, colInd: []int{0}, values: []float64{1}}
	err := m.Validate()
	assert.ErrorIs(t, err, ErrEmptySlice)
	assert.EqualError(t, err, "CRS.Validate: slice 1: sparse: empty major-axis slice")
}
