// SPDX-License-Identifier: MIT
package lie_test

import (
	"fmt"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/ring"
)

// ExampleNewStructureAlgebra builds so(3) from its table and brackets two
// elements. Keys may arrive in either orientation; the engine folds them
// into basis order.
func ExampleNewStructureAlgebra() {
	r := ring.Rationals()
	L, err := lie.NewStructureAlgebra(r, map[lie.BracketKey]map[string]ring.Element{
		{Left: "X", Right: "Y"}: {"Z": r.One()},
		{Left: "Y", Right: "Z"}: {"X": r.One()},
		{Left: "Z", Right: "X"}: {"Y": r.One()},
	}, []string{"X", "Y", "Z"}, lie.WithVerify())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(L.CoefficientsString())

	x, _ := L.Generator("X")
	y, _ := L.Generator("Y")
	b, _ := x.Bracket(y)
	fmt.Println(b)
	// Output:
	// {[X, Y]: ((Z, 1)), [X, Z]: ((Y, -1)), [Y, Z]: ((X, 1))}
	// Z
}

// ExampleNewHeisenberg shows the rank-1 canonical commutation relations.
func ExampleNewHeisenberg() {
	L, err := lie.NewHeisenberg(ring.Integers(), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(L)
	fmt.Println(L.CoefficientsString())

	p, _ := L.Generator("p1")
	q, _ := L.Generator("q1")
	central, _ := p.Bracket(q)
	fmt.Println(central)
	// Output:
	// Heisenberg algebra of rank 1 over Integer Ring
	// {[p1, q1]: ((z, 1))}
	// z
}
