package order

import (
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend"
)

const DefaultMaxClassicalIterations = 1 << 20

var one = big.NewInt(1)

// Extractor recovers the multiplicative order r of a modulo N, i.e. the
// smallest positive r with a^r = 1 (mod N). The quantum-derived path decodes
// the peak measurement bitstring into a phase estimate and runs a continued
// fraction expansion over it; when that yields nothing usable (as it cannot
// with a placeholder modular exponentiation stage) the bounded classical
// search is authoritative.
type Extractor struct {
	// Upper bound on classical search iterations. The classical search is
	// O(N) and exists for small N; without a bound it would block
	// indefinitely on large moduli.
	maxClassicalIterations uint64
}

func NewExtractor(maxClassicalIterations uint64) *Extractor {
	if maxClassicalIterations == 0 {
		maxClassicalIterations = DefaultMaxClassicalIterations
	}
	return &Extractor{maxClassicalIterations: maxClassicalIterations}
}

// Extract returns the order of a modulo N, or nil when no order was found
// within the search bounds. countingBits is the width of the circuit's
// counting register, needed to convert a measured value into a phase.
func (e *Extractor) Extract(a, N *big.Int, outcome backend.MeasurementOutcome, countingBits int) *big.Int {
	if r := e.fromOutcome(a, N, outcome, countingBits); r != nil {
		return r
	}
	return e.classical(a, N)
}

// fromOutcome decodes the most frequently observed bitstring into a phase
// s/2^countingBits and expands it as a continued fraction, testing each
// convergent denominator q < N as an order candidate. Candidates are
// verified before being returned, so an unusable distribution yields nil.
func (e *Extractor) fromOutcome(a, N *big.Int, outcome backend.MeasurementOutcome, countingBits int) *big.Int {
	if len(outcome) == 0 || countingBits <= 0 {
		return nil
	}
	peak := peakBitstring(outcome)
	measured, ok := new(big.Int).SetString(peak, 2)
	if !ok {
		log.WithField("bitstring", peak).Warn("measurement outcome contains an undecodable bitstring")
		return nil
	}

	// The counting register occupies the low countingBits classical bits.
	den := new(big.Int).Lsh(one, uint(countingBits))
	num := new(big.Int).And(measured, new(big.Int).Sub(den, one))
	if num.Sign() == 0 {
		return nil
	}

	for _, q := range convergentDenominators(num, den, N) {
		if new(big.Int).Exp(a, q, N).Cmp(one) == 0 {
			return q
		}
	}
	return nil
}

// convergentDenominators returns the denominators of the continued fraction
// convergents of num/den, in order, stopping before they reach bound.
func convergentDenominators(num, den, bound *big.Int) []*big.Int {
	var qs []*big.Int
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	kPrev := big.NewInt(1)
	k := big.NewInt(0)
	for d.Sign() != 0 {
		quo, rem := new(big.Int).QuoRem(n, d, new(big.Int))
		kNext := new(big.Int).Add(new(big.Int).Mul(quo, k), kPrev)
		if kNext.Cmp(bound) >= 0 {
			break
		}
		if kNext.Sign() > 0 {
			qs = append(qs, kNext)
		}
		kPrev, k = k, kNext
		n, d = d, rem
	}
	return qs
}

// classical finds the order by direct search: a^1, a^2, ... mod N. Exact and
// smallest-first, but bounded so large moduli cannot spin forever.
func (e *Extractor) classical(a, N *big.Int) *big.Int {
	pow := new(big.Int).Mod(a, N)
	r := new(big.Int).Set(one)
	var iterations uint64
	for r.Cmp(N) < 0 && iterations < e.maxClassicalIterations {
		if pow.Cmp(one) == 0 {
			return new(big.Int).Set(r)
		}
		pow.Mul(pow, a).Mod(pow, N)
		r.Add(r, one)
		iterations++
	}
	return nil
}

// peakBitstring returns the bitstring with the highest count, breaking ties
// towards the lexicographically smallest string so extraction is
// deterministic for identical outcomes.
func peakBitstring(outcome backend.MeasurementOutcome) string {
	var best string
	bestCount := -1
	for bits, count := range outcome {
		if count > bestCount || (count == bestCount && bits < best) {
			best = bits
			bestCount = count
		}
	}
	return best
}
