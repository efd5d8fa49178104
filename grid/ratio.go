package grid

import (
	"math/big"
)

// limitDenominator finds the closest fraction to x with a denominator no
// greater than max, using the continued fraction expansion of x. On an exact
// tie the fraction with the smaller denominator is used, and failing that the
// last convergent.
func limitDenominator(x *big.Rat, max int64) *big.Rat {
	limit := big.NewInt(max)
	if x.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(x)
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n, d := new(big.Int).Set(x.Num()), new(big.Int).Set(x.Denom())

	a, q2, tmp := new(big.Int), new(big.Int), new(big.Int)
	for d.Sign() != 0 {
		a.Div(n, d)
		q2.Add(q0, tmp.Mul(a, q1))
		if q2.Cmp(limit) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, tmp.Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, new(big.Int).Set(q2)
		n, d = d, new(big.Int).Sub(n, tmp.Mul(a, d))
	}

	// Semiconvergent closest to the bound
	k := new(big.Int).Div(new(big.Int).Sub(limit, q0), q1)
	lower := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	upper := new(big.Rat).SetFrac(p1, q1)

	du := new(big.Rat).Abs(new(big.Rat).Sub(upper, x))
	dl := new(big.Rat).Abs(new(big.Rat).Sub(lower, x))
	switch du.Cmp(dl) {
	case -1:
		return upper
	case 1:
		return lower
	}
	if lower.Denom().Cmp(upper.Denom()) < 0 {
		return lower
	}
	return upper
}

// BestFit returns the grid whose proportions best approximate ratio with
// neither side exceeding max tiles. A max of less than one is treated as one.
func BestFit(ratio float64, max int) Grid {
	if max < 1 {
		max = 1
	}

	// Work with the short side over the long side so that bounding the
	// denominator bounds the longer side of the grid
	x := new(big.Rat).SetFloat64(ratio)
	if x.Cmp(big.NewRat(1, 1)) > 0 {
		x.Inv(x)
	}

	f := limitDenominator(x, int64(max))
	short, long := int(f.Num().Int64()), int(f.Denom().Int64())
	if short < 1 {
		short, long = 1, max
	}

	if ratio >= 1 {
		return Grid{long, short}
	}
	return Grid{short, long}
}
