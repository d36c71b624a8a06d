package walk

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// perturbedVector compresses the first p rows of M into a single weight
// that orders monomials of degree up to I.MaxDegree() exactly like M
// does. Rows are stacked in base eps, where eps bounds the spread a row
// can contribute; p = 1 returns the first row verbatim.
func perturbedVector(I *ring.Ideal, M order.Matrix, p int) []*big.Int {
	n := M.Dim()
	var msum int64
	for i := 1; i < p; i++ {
		var mi int64
		for j := 0; j < n; j++ {
			if a := M.Entry(i, j); a > mi {
				mi = a
			} else if -a > mi {
				mi = -a
			}
		}
		msum += mi
	}
	eps := big.NewInt(int64(I.MaxDegree()))
	eps.Mul(eps, big.NewInt(msum))
	eps.Add(eps, bigOne)

	w := make([]*big.Int, n)
	for j := range w {
		w[j] = new(big.Int)
	}
	scale := big.NewInt(1)
	for i := p - 1; i >= 0; i-- {
		row := M.Row(i)
		for j := 0; j < n; j++ {
			w[j].Add(w[j], new(big.Int).Mul(scale, big.NewInt(row[j])))
		}
		scale = new(big.Int).Mul(scale, eps)
	}

	return w
}

// perturbedWalk runs standard segments between degree-p perturbations of
// S and T, decreasing p whenever the arrival cone fails to certify the
// target. Lower degrees mean shorter weights but more segments; p = 1
// degenerates to the plain first rows, after which the engine finishes
// the conversion directly.
func perturbedWalk(e Engine, lg *zap.Logger, G *ring.Ideal, S, T order.Matrix, p int) (*ring.Ideal, int, error) {
	var (
		steps int
		s     int
		err   error
		cw    = perturbedVector(G, S, p)
	)
	for {
		lg.Info("perturbation degree", zap.Int("degree", p))
		tw := perturbedVector(G, T, p)
		if G, s, err = standardWalkFrom(e, lg, G, T, cw, tw); err != nil {
			return nil, 0, err
		}
		steps += s

		// The degree bound may have changed, so certify with a vector
		// perturbed for the basis we actually hold.
		if inCone(G, T, perturbedVector(G, T, p)) {
			return G, steps, nil
		}
		if p == 1 {
			lg.Info("finishing with a direct basis computation")
			H, err := targetBasis(e, G, T)
			if err != nil {
				return nil, 0, err
			}

			return H, steps, nil
		}
		p--
		cw = tw
	}
}
