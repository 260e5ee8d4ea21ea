// Package liealg is your in-memory catalog for constructing and inspecting
// named low-dimensional Lie algebras over an arbitrary coefficient ring.
//
// 🚀 What is liealg?
//
//	A small, deterministic library that brings together:
//		• Coefficient rings: exact integer, rational and modular arithmetic
//		• Structure-coefficient algebras: brackets from closed-form tables
//		• Matrix algebras: brackets derived as commutators in a matrix space
//		• A factory catalog: 3-dimensional families, sl2, Heisenberg (finite,
//		  matrix and infinite rank), affine transformations of the line,
//		  abelian algebras, (strictly) upper triangular matrices, and the
//		  Witt algebra of regular vector fields
//
// ✨ Why choose liealg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable results, sentinel errors, in-code docs
//   - Pure Go – no cgo, exact arithmetic via math/big
//   - Extensible – bring your own ring.Ring; every factory is ring-generic
//
// Under the hood, everything is organized under four subpackages:
//
//	ring/    — the coefficient-ring interface and concrete rings
//	matrix/  — dense & sparse matrix spaces over a ring
//	lie/     — structure-coefficient and from-associative bracket engines
//	builder/ — the named factory catalog (the public face of the module)
//
// Quick example:
//
//	R := ring.Rationals()
//	L, _ := builder.CrossProduct(R)
//	fmt.Println(L.CoefficientsString())
//	// {[X, Y]: ((Z, 1)), [X, Z]: ((Y, -1)), [Y, Z]: ((X, 1))}
//
// Dive into the builder package docs for the full catalog and the exact
// bracket tables each factory emits.
//
//	go get github.com/katalvlaran/liealg
package liealg
