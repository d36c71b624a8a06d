package walk

import (
	"math"
	"math/big"
	"strings"

	"github.com/katalvlaran/gwalk/ring"
)

// Weight vectors travel through the walk as []*big.Int so that cone
// boundaries computed from rational convex combinations stay exact. A
// vector is converted to int64 matrix-row form only after exceedsLimit
// has admitted it.

// weightLimit bounds each component of a weight destined for an order
// matrix row.
var weightLimit = big.NewInt(math.MaxInt32)

// bigWeight lifts an order-matrix row into exact weight form.
func bigWeight(row []int64) []*big.Int {
	w := make([]*big.Int, len(row))
	for i, c := range row {
		w[i] = big.NewInt(c)
	}

	return w
}

// copyWeight returns an independent copy of w.
func copyWeight(w []*big.Int) []*big.Int {
	out := make([]*big.Int, len(w))
	for i, c := range w {
		out[i] = new(big.Int).Set(c)
	}

	return out
}

// weightsEqual reports componentwise equality.
func weightsEqual(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// dotExp returns Σ w[i]·e[i] for an exponent vector e.
// Caller guarantees len(w) == len(e).
func dotExp(w []*big.Int, e []int) *big.Int {
	sum := new(big.Int)
	tmp := new(big.Int)
	for i, c := range w {
		if e[i] == 0 {
			continue
		}
		sum.Add(sum, tmp.Mul(c, big.NewInt(int64(e[i]))))
	}

	return sum
}

// normalizeWeight divides w by the gcd of its components, in place.
// The zero vector is returned unchanged.
func normalizeWeight(w []*big.Int) []*big.Int {
	g := new(big.Int)
	for _, c := range w {
		g.GCD(nil, nil, g, new(big.Int).Abs(c))
	}
	if g.Sign() == 0 || g.Cmp(bigOne) == 0 {
		return w
	}
	for _, c := range w {
		c.Quo(c, g)
	}

	return w
}

var bigOne = big.NewInt(1)

// clearDenominators scales a rational vector to its smallest integer
// multiple: multiply by the lcm of the denominators, then divide by the
// gcd of the results.
func clearDenominators(v []*big.Rat) []*big.Int {
	lcm := new(big.Int).Set(bigOne)
	tmp := new(big.Int)
	for _, c := range v {
		d := c.Denom()
		tmp.GCD(nil, nil, lcm, d)
		lcm.Div(new(big.Int).Mul(lcm, d), tmp)
	}

	out := make([]*big.Int, len(v))
	for i, c := range v {
		out[i] = new(big.Int).Mul(c.Num(), tmp.Div(lcm, c.Denom()))
	}

	return normalizeWeight(out)
}

// advanceWeight returns cw + t·(tw − cw) cleared to the smallest integer
// vector. t comes from nextWeight/nextT and lies in (0, 1].
func advanceWeight(cw, tw []*big.Int, t *big.Rat) []*big.Int {
	v := make([]*big.Rat, len(cw))
	step := new(big.Rat)
	for i := range cw {
		step.SetInt(new(big.Int).Sub(tw[i], cw[i]))
		step.Mul(step, t)
		v[i] = new(big.Rat).Add(new(big.Rat).SetInt(cw[i]), step)
	}

	return clearDenominators(v)
}

// exceedsLimit reports whether any component magnitude is beyond the
// order-matrix range.
func exceedsLimit(w []*big.Int) bool {
	abs := new(big.Int)
	for _, c := range w {
		if abs.Abs(c).Cmp(weightLimit) > 0 {
			return true
		}
	}

	return false
}

// toRow converts a bounded weight into matrix-row form.
// Caller guarantees !exceedsLimit(w).
func toRow(w []*big.Int) []int64 {
	row := make([]int64, len(w))
	for i, c := range w {
		row[i] = c.Int64()
	}

	return row
}

// truncateWeight scales w by 1/10 (rounding to nearest) until it fits the
// matrix range, re-normalizing by gcd after each pass. Scaling is valid
// only while the rounded vector still selects the same initial forms on
// G; the second return is false when the forms change (or the vector
// collapses to zero) before the bound is met.
func truncateWeight(G *ring.Ideal, w []*big.Int) ([]*big.Int, bool, error) {
	ref, err := initialForms(G, w)
	if err != nil {
		return nil, false, err
	}

	ten := big.NewInt(10)
	five := big.NewInt(5)
	cur := copyWeight(w)
	for exceedsLimit(cur) {
		next := make([]*big.Int, len(cur))
		zero := true
		for i, c := range cur {
			// Round |c|/10 to nearest, away from zero on ties.
			q := new(big.Int).Abs(c)
			q.Div(q.Add(q, five), ten)
			if c.Sign() < 0 {
				q.Neg(q)
			}
			if q.Sign() != 0 {
				zero = false
			}
			next[i] = q
		}
		if zero {
			return nil, false, nil
		}
		next = normalizeWeight(next)

		forms, err := initialForms(G, next)
		if err != nil {
			return nil, false, err
		}
		if !sameForms(ref, forms) {
			return nil, false, nil
		}
		cur = next
	}

	return cur, true, nil
}

// weightString renders a weight vector for log output, e.g. "(2,1)".
func weightString(w []*big.Int) string {
	var b strings.Builder
	b.WriteString("(")
	for i, c := range w {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(c.String())
	}
	b.WriteString(")")

	return b.String()
}
