package factor

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// Pair is a nontrivial factorization p*q = N with 1 < p, q < N.
type Pair struct {
	P *big.Int
	Q *big.Int
}

func (p *Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.P, p.Q)
}

// Resolve derives factors of N from a multiplicative order r of a modulo N.
// Returns nil when this witness base yields nothing:
//   - r is nil (no order found) or odd;
//   - a^(r/2) = N-1 (mod N), the degenerate square root of unity;
//   - neither gcd(a^(r/2)-1, N) nor gcd(a^(r/2)+1, N) is a proper factor.
//
// When both gcds are proper factors the first wins, so resolution is
// deterministic for a given (a, N, r).
func Resolve(a, N, r *big.Int) *Pair {
	if r == nil || r.Bit(0) == 1 {
		return nil
	}

	half := new(big.Int).Rsh(r, 1)
	x := new(big.Int).Exp(a, half, N)
	if x.Cmp(new(big.Int).Sub(N, one)) == 0 {
		return nil
	}

	for _, candidate := range []*big.Int{
		new(big.Int).Sub(x, one),
		new(big.Int).Add(x, one),
	} {
		f := new(big.Int).GCD(nil, nil, candidate.Abs(candidate), N)
		if f.Cmp(one) > 0 && f.Cmp(N) < 0 {
			return &Pair{P: f, Q: new(big.Int).Div(new(big.Int).Set(N), f)}
		}
	}
	return nil
}
