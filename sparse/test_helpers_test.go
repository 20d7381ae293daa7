// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures.
//
// Purpose:
//   - Small deterministic entry sets with known products.
//   - Seeded random sets that populate every row AND column, so both
//     layouts satisfy the construction precondition.
//   - A gonum dense reference product for cross-checking the kernels.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsparse/sparse"
)

// tol is the absolute tolerance for float comparisons across summation orders.
const tol = 1e-9

// scenario3 is the 3×3 matrix
//
//	[2 0 0]
//	[1 3 0]
//	[0 0 5]
//
// listed as (row, col, value).
var scenario3 = []sparse.Entry[float64]{
	{Row: 0, Col: 0, Value: 2},
	{Row: 1, Col: 0, Value: 1},
	{Row: 1, Col: 1, Value: 3},
	{Row: 2, Col: 2, Value: 5},
}

// randomEntries returns a deterministic entry list for an n×n matrix with
// a full diagonal plus roughly extra off-diagonal entries.
func randomEntries(n, extra int, seed int64) []sparse.Entry[float64] {
	rng := rand.New(rand.NewSource(seed))
	out := make([]sparse.Entry[float64], 0, n+extra)
	for k := 0; k < n; k++ {
		out = append(out, sparse.Entry[float64]{Row: k, Col: k, Value: rng.Float64()*2 - 1})
	}
	for e := 0; e < extra; e++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if i == j {
			continue
		}
		out = append(out, sparse.Entry[float64]{Row: i, Col: j, Value: rng.Float64()*2 - 1})
	}

	return out
}

// randomVector returns a deterministic dense vector of length n.
func randomVector(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*10 - 5
	}

	return v
}

// mustCCS builds a CCS from triplets and checks the storage contract.
func mustCCS(t testing.TB, n int, entries []sparse.Entry[float64]) *sparse.CCS[float64] {
	t.Helper()
	m := sparse.NewCCSFromEntries(n, sparse.FromTriplets(sparse.ColumnMajor, entries))
	require.NoError(t, m.Validate(), "fixture must satisfy the CCS contract")

	return m
}

// mustCRS builds a CRS from triplets and checks the storage contract.
func mustCRS(t testing.TB, n int, entries []sparse.Entry[float64]) *sparse.CRS[float64] {
	t.Helper()
	m := sparse.NewCRSFromEntries(n, sparse.FromTriplets(sparse.RowMajor, entries))
	require.NoError(t, m.Validate(), "fixture must satisfy the CRS contract")

	return m
}

// denseProduct returns A*x computed by gonum on a dense copy of the entries.
// Later duplicates overwrite earlier ones, matching FromTriplets.
func denseProduct(n int, entries []sparse.Entry[float64], x []float64) []float64 {
	a := mat.NewDense(n, n, nil)
	for _, e := range entries {
		a.Set(e.Row, e.Col, e.Value)
	}
	var y mat.VecDense
	y.MulVec(a, mat.NewVecDense(n, append([]float64(nil), x...)))

	out := make([]float64, n)
	for i := range out {
		out[i] = y.AtVec(i)
	}

	return out
}
