// Package lvsparse is a compact kernel for square sparse matrices: two
// compressed storage layouts and the matrix–vector product built on them.
//
// 🚀 What is lvsparse?
//
//	A small, generic (float32/float64/complex64/complex128) library that
//	brings together:
//		• CCS: Compressed Column Storage
//		• CRS: Compressed Row Storage
//		• EntrySet: an ordered (row,col)→value map used to build either one
//		• MulVec kernels: Y := scaleY*Y + scaleAX*A*X
//
// ✨ Why lvsparse?
//
//   - Minimal API, mirror-image layouts, no hidden allocation in kernels
//   - Trust-the-caller hot paths, with opt-in structural validation
//   - Pure Go – no cgo
//
// Everything lives in one subpackage:
//
//	sparse/   EntrySet, CCS, CRS, MulVecCCS, MulVecCRS, Validate
//	examples/ a power-iteration walkthrough on a sparse adjacency matrix
//
// Factorizations, eigen-solvers and iterative methods are meant to be
// layered on top; they are not part of this module.
//
//	go get github.com/katalvlaran/lvsparse/sparse
package lvsparse
