package ring_test

import (
	"fmt"

	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// ExampleNewPoly builds x^2 - 3/2*x*y + 1 in QQ[x,y] under degrevlex.
// Terms may be listed in any order; the constructor sorts them descending
// and merges duplicates.
func ExampleNewPoly() {
	m, _ := order.DegRevLex(2)
	r, _ := ring.NewRing([]string{"x", "y"}, m)

	p, _ := ring.NewPoly(r,
		ring.NewTerm(1, 1, 0, 0),
		ring.NewTerm(-3, 2, 1, 1),
		ring.NewTerm(1, 1, 2, 0),
	)
	fmt.Println(p)
	fmt.Println(p.LeadingTerm().Coeff, p.LeadingExponent())
	// Output:
	// x^2 - 3/2*x*y + 1
	// 1/1 [2 0]
}

// ExampleNewIdeal keeps generators in the order they were given.
func ExampleNewIdeal() {
	m, _ := order.DegRevLex(2)
	r, _ := ring.NewRing([]string{"x", "y"}, m)

	f, _ := ring.NewPoly(r, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(-1, 1, 0, 1))
	g, _ := ring.NewPoly(r, ring.NewTerm(1, 1, 0, 2), ring.NewTerm(-1, 1, 1, 0))
	I, _ := ring.NewIdeal(r, f, g)

	fmt.Println(I)
	// Output:
	// <x^2 - y, y^2 - x>
}
