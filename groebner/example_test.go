package groebner_test

import (
	"fmt"

	"github.com/katalvlaran/gwalk/groebner"
	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// ExampleStd intersects the unit circle with the diagonal line x = y.
// The lex basis eliminates x, leaving the univariate 2y^2 = 1.
func ExampleStd() {
	m, _ := order.Lex(2)
	r, _ := ring.NewRing([]string{"x", "y"}, m)

	circle, _ := ring.NewPoly(r,
		ring.NewTerm(1, 1, 2, 0), // x^2
		ring.NewTerm(1, 1, 0, 2), // y^2
		ring.NewTerm(-1, 1, 0, 0),
	)
	line, _ := ring.NewPoly(r,
		ring.NewTerm(1, 1, 1, 0),
		ring.NewTerm(-1, 1, 0, 1),
	)
	I, _ := ring.NewIdeal(r, circle, line)

	G, _ := groebner.Std(I, true)
	fmt.Println(G)
	// Output:
	// <y^2 - 1/2, x - y>
}
