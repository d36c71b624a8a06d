package walk

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// The walk never materializes a Gröbner cone; every decision is made from
// the difference vectors lead − tail of the current basis. All dot
// products run in big.Int so boundary parameters stay exact.

// differenceVectors returns the deduplicated lead−tail exponent
// differences over all generators, in first-seen order.
func differenceVectors(G *ring.Ideal) [][]int {
	var (
		out  [][]int
		seen = make(map[string]struct{})
		i, k int // generator / component iterators
	)
	for i = 0; i < G.Len(); i++ {
		exps := G.Gen(i).ExponentVectors()
		lead := exps[0]
		for _, e := range exps[1:] {
			v := make([]int, len(lead))
			for k = range v {
				v[k] = lead[k] - e[k]
			}
			if _, dup := seen[vecKey(v)]; dup {
				continue
			}
			seen[vecKey(v)] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

// markedDifferenceVectors is the Generic-walk variant: the difference is
// taken from the marked leading exponent, not the ring-order one.
func markedDifferenceVectors(gens []marked) [][]int {
	var (
		out  [][]int
		seen = make(map[string]struct{})
		k    int
	)
	for _, mk := range gens {
		lead := mk.lead.Exp
		for _, t := range mk.g.Terms() {
			if intsEqual(t.Exp, lead) {
				continue
			}
			v := make([]int, len(lead))
			for k = range v {
				v[k] = lead[k] - t.Exp[k]
			}
			if _, dup := seen[vecKey(v)]; dup {
				continue
			}
			seen[vecKey(v)] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

// vecKey encodes a vector for dedup bookkeeping.
func vecKey(v []int) string {
	var b strings.Builder
	for i, c := range v {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// intsEqual reports componentwise equality.
func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// leadExponentUnder returns the exponent of p's leading term under m,
// which need not be the order p's ring sorts by.
func leadExponentUnder(p ring.Poly, m order.Matrix) []int {
	exps := p.ExponentVectors()
	best := exps[0]
	for _, e := range exps[1:] {
		if m.Compare(e, best) > 0 {
			best = e
		}
	}

	return best
}

// inCone reports whether w certifies the T-cone for G: per generator, the
// T-leading exponent must attain the maximal w-weight over all terms.
func inCone(G *ring.Ideal, T order.Matrix, w []*big.Int) bool {
	for i := 0; i < G.Len(); i++ {
		g := G.Gen(i)
		tl := dotExp(w, leadExponentUnder(g, T))
		for _, e := range g.ExponentVectors() {
			if dotExp(w, e).Cmp(tl) > 0 {
				return false
			}
		}
	}

	return true
}

// sameCone reports whether every generator's leading exponent under T
// coincides with its current ring-order leading exponent.
func sameCone(G *ring.Ideal, T order.Matrix) bool {
	for i := 0; i < G.Len(); i++ {
		g := G.Gen(i)
		if !intsEqual(leadExponentUnder(g, T), g.LeadingExponent()) {
			return false
		}
	}

	return true
}

// nextWeight returns the last weight on the segment cw→tw that still lies
// in the current cone: minimize (cw·v)/(cw·v − tw·v) over difference
// vectors with tw·v < 0. An unobstructed segment returns tw itself,
// exactly and unnormalized, so callers can test arrival by equality.
func nextWeight(G *ring.Ideal, cw, tw []*big.Int) []*big.Int {
	tmin := big.NewRat(1, 1)
	for _, v := range differenceVectors(G) {
		twv := dotExp(tw, v)
		if twv.Sign() >= 0 {
			continue
		}
		cwv := dotExp(cw, v)
		den := new(big.Int).Sub(cwv, twv)
		if den.Sign() <= 0 {
			continue
		}
		if t := new(big.Rat).SetFrac(cwv, den); t.Cmp(tmin) < 0 {
			tmin = t
		}
	}
	if tmin.Cmp(ratOne) == 0 {
		return copyWeight(tw)
	}

	return advanceWeight(cw, tw, tmin)
}

var ratOne = big.NewRat(1, 1)

// nextT returns the smallest interpolation parameter t ∈ (0, 1] at which
// the segment w→tw meets a facet of the current cone. The second return
// is false when no facet obstructs the segment (or w already equals tw);
// the Fractal recursion treats that as "depth target reached".
func nextT(G *ring.Ideal, w, tw []*big.Int) (*big.Rat, bool) {
	if weightsEqual(w, tw) {
		return nil, false
	}

	var tmin *big.Rat
	frac := new(big.Int)
	for _, v := range differenceVectors(G) {
		wv := dotExp(w, v)
		frac.Sub(wv, dotExp(tw, v))
		if frac.Sign() == 0 {
			continue
		}
		t := new(big.Rat).SetFrac(wv, frac)
		if t.Sign() <= 0 || t.Cmp(ratOne) > 0 {
			continue
		}
		if tmin == nil || t.Cmp(tmin) < 0 {
			tmin = t
		}
	}
	if tmin == nil {
		return nil, false
	}

	return tmin, true
}

// nextGamma picks the next facet for the Generic walk: among marked
// difference vectors that are positive under S, negative under T, and
// strictly beyond the last crossed facet, return the minimal one under
// the facet preorder. The second return is false when no facet remains.
func nextGamma(gens []marked, lastFacet []int, S, T order.Matrix) ([]int, bool) {
	var best []int
	for _, v := range markedDifferenceVectors(gens) {
		if !biggerThanZero(S, v) || !lessThanZero(T, v) {
			continue
		}
		if lastFacet != nil && !lessFacet(lastFacet, v, S, T) {
			continue
		}
		if best == nil || lessFacet(v, best, S, T) {
			best = v
		}
	}

	return best, best != nil
}

// biggerThanZero reports whether the first nonzero row dot of M·v is
// positive.
func biggerThanZero(M order.Matrix, v []int) bool {
	for i := 0; i < M.Dim(); i++ {
		if d := matRowDot(M, i, v); d != 0 {
			return d > 0
		}
	}

	return false
}

// lessThanZero reports whether the first nonzero row dot of M·v is
// negative.
func lessThanZero(M order.Matrix, v []int) bool {
	for i := 0; i < M.Dim(); i++ {
		if d := matRowDot(M, i, v); d != 0 {
			return d < 0
		}
	}

	return false
}

// matRowDot returns row i of M dotted with v.
func matRowDot(M order.Matrix, i int, v []int) int64 {
	var d int64
	for j := range v {
		d += M.Entry(i, j) * int64(v[j])
	}

	return d
}

// lessFacet orders facet normals: the first (i, j) row pair with
// (T_i·u)(S_j·v) ≠ (T_i·v)(S_j·u) decides. Products run in big.Int; the
// pair scan order is the implementation-defined tie-break.
func lessFacet(u, v []int, S, T order.Matrix) bool {
	n := S.Dim()
	su := make([]int64, n)
	sv := make([]int64, n)
	for j := 0; j < n; j++ {
		su[j] = matRowDot(S, j, u)
		sv[j] = matRowDot(S, j, v)
	}

	left := new(big.Int)
	right := new(big.Int)
	for i := 0; i < n; i++ {
		tu := matRowDot(T, i, u)
		tv := matRowDot(T, i, v)
		for j := 0; j < n; j++ {
			left.Mul(big.NewInt(tu), big.NewInt(sv[j]))
			right.Mul(big.NewInt(tv), big.NewInt(su[j]))
			if c := left.Cmp(right); c != 0 {
				return c < 0
			}
		}
	}

	return false
}

// isParallel reports whether u is a positive rational multiple of v.
func isParallel(u, v []int) bool {
	p := -1
	for i := range u {
		if (u[i] == 0) != (v[i] == 0) {
			return false
		}
		if u[i] != 0 && p < 0 {
			p = i
		}
	}
	if p < 0 {
		return false
	}
	if int64(u[p])*int64(v[p]) <= 0 {
		return false
	}
	for i := range u {
		if int64(u[i])*int64(v[p]) != int64(v[i])*int64(u[p]) {
			return false
		}
	}

	return true
}

// facetInitials restricts each marked generator to its marked lead plus
// the tail terms whose lead−tail difference is parallel to the facet v.
func facetInitials(gens []marked, v []int) ([]ring.Poly, error) {
	var (
		out = make([]ring.Poly, len(gens))
		d   []int
		k   int
	)
	for i, mk := range gens {
		keep := []ring.Term{mk.lead}
		lead := mk.lead.Exp
		for _, t := range mk.g.Terms() {
			if intsEqual(t.Exp, lead) {
				continue
			}
			d = make([]int, len(lead))
			for k = range d {
				d[k] = lead[k] - t.Exp[k]
			}
			if isParallel(d, v) {
				keep = append(keep, t)
			}
		}
		form, err := ring.NewPoly(mk.g.Ring(), keep...)
		if err != nil {
			return nil, fmt.Errorf("facet initials: %w", err)
		}
		out[i] = form
	}

	return out, nil
}
