// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the factory catalog,
// ensuring consistent error context and defaults across all factories.

package builder

//-----------------------------------------------------------------------------
// Factory Method Name Constants
//   used to prefix errors with the factory name for context.
//-----------------------------------------------------------------------------

const (
	// MethodThreeDimensional is the canonical name of the ThreeDimensional factory.
	MethodThreeDimensional = "ThreeDimensional"
	// MethodCrossProduct is the canonical name of the CrossProduct factory.
	MethodCrossProduct = "CrossProduct"
	// MethodThreeDimensionalByRank is the canonical name of the ThreeDimensionalByRank factory.
	MethodThreeDimensionalByRank = "ThreeDimensionalByRank"
	// MethodSL is the canonical name of the SL factory.
	MethodSL = "SL"
	// MethodAffineTransformationsLine is the canonical name of the AffineTransformationsLine factory.
	MethodAffineTransformationsLine = "AffineTransformationsLine"
	// MethodAbelian is the canonical name of the Abelian factory.
	MethodAbelian = "Abelian"
	// MethodHeisenberg is the canonical name of the Heisenberg factory.
	MethodHeisenberg = "Heisenberg"
	// MethodRegularVectorFields is the canonical name of the RegularVectorFields factory.
	MethodRegularVectorFields = "RegularVectorFields"
	// MethodUpperTriangularMatrices is the canonical name of the UpperTriangularMatrices factory.
	MethodUpperTriangularMatrices = "UpperTriangularMatrices"
	// MethodStrictlyUpperTriangularMatrices is the canonical name of the StrictlyUpperTriangularMatrices factory.
	MethodStrictlyUpperTriangularMatrices = "StrictlyUpperTriangularMatrices"
)

//-----------------------------------------------------------------------------
// Rank & Representation Constants
//-----------------------------------------------------------------------------

// Infinity selects the infinite-rank variant where a family has one
// (currently only Heisenberg). Any other negative rank is invalid.
const Infinity = -1

// Representation selects among mathematically equivalent realizations of
// one family.
type Representation string

const (
	// RepBracket realizes the algebra via structure coefficients (SL,
	// AffineTransformationsLine).
	RepBracket Representation = "bracket"
	// RepStructure is the structure-coefficient realization under the name
	// the Heisenberg family historically uses.
	RepStructure Representation = "structure"
	// RepMatrix realizes the algebra as matrices with the commutator bracket.
	RepMatrix Representation = "matrix"
)
