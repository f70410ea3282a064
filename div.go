package decimalint

import (
	"math"

	"github.com/agbru/decimalint/internal/dcerrors"
)

// Div returns the quotient a/d. Panics if d is zero.
func Div(a, d Int) Int {
	q, _ := DivMod(a, d)
	return q
}

// Mod returns the remainder of a/d. Panics if d is zero.
func Mod(a, d Int) Int {
	_, r := DivMod(a, d)
	return r
}

// DivMod computes (quotient, remainder) such that a == quotient*d +
// remainder and 0 <= remainder < d, via long division over base Base
// driven by a double-precision quotient-digit estimator with bounded
// bidirectional correction. Panics if d is zero.
func DivMod(a, d Int) (Int, Int) {
	if d.IsZero() {
		dcerrors.PanicPrecondition(dcerrors.DivideByZeroError("Div"))
	}

	n, m := len(a.limbs), len(d.limbs)
	quotient := make([]uint32, 0)
	remainder := a

	for i := n - m; i >= 0; i-- {
		if i >= len(remainder.limbs) {
			continue
		}
		chunk := remainder.Range(i, len(remainder.limbs))

		div := uint64(estimateDiv(chunk, d) + 1e-7)
		scalar := MultiplyScalar(d, div)

		corrections := 0
		for div > 0 && Compare(scalar, chunk) > 0 {
			scalar = Sub(scalar, d)
			div--
			corrections++
		}
		for div < Base-1 && Compare(Add(scalar, d), chunk) <= 0 {
			scalar = Add(scalar, d)
			div++
			corrections++
		}
		if log.Debug().Enabled() {
			log.Debug().Int("position", i).Int("corrections", corrections).Msg("division digit corrected")
		}
		metrics.DivisionCorrections.Observe(float64(corrections))

		remainder = Sub(remainder, scalar.Shift(i))
		if div > 0 {
			quotient = checkedAdd(quotient, i, uint32(div))
		}
	}

	return Int{limbs: trim(quotient)}, remainder
}

// estimateDiv approximates chunk/d as a double by summing each operand's
// top DoubleDivSections limbs as a descending-base-Base fraction, taking
// their ratio, and rescaling by Base^(|chunk|-|d|).
func estimateDiv(chunk, d Int) float64 {
	sections := currentThresholds().DoubleDivSections
	estimate := sumTopLimbs(chunk.limbs, sections)
	otherEstimate := sumTopLimbs(d.limbs, sections)
	return estimate / otherEstimate * math.Pow(Base, float64(len(chunk.limbs)-len(d.limbs)))
}

func sumTopLimbs(limbs []uint32, sections int) float64 {
	var sum, pBase float64 = 0, 1
	count := 0
	for i := len(limbs) - 1; i >= 0 && count < sections; i-- {
		sum += pBase * float64(limbs[i])
		pBase /= Base
		count++
	}
	return sum
}

// DivScalar returns (quotient, remainder) of a/denominator, with the
// remainder as a machine integer. Panics if denominator is zero.
func DivScalar(a Int, denominator uint64) (Int, uint64) {
	if denominator == 0 {
		dcerrors.PanicPrecondition(dcerrors.DivideByZeroError("DivScalar"))
	}
	if denominator >= baseOverflowCutoff {
		q, r := DivMod(a, FromUint64(denominator))
		return q, r.ToUint64()
	}

	n := len(a.limbs)
	quotient := make([]uint32, n)
	var remainder uint64
	for i := n - 1; i >= 0; i-- {
		remainder = Base*remainder + uint64(a.limbs[i])
		if remainder >= denominator {
			quotient[i] = uint32(remainder / denominator)
			remainder %= denominator
		}
	}
	return Int{limbs: trim(quotient)}, remainder
}

// ModScalar returns a mod denominator as a machine integer. Panics if
// denominator is zero.
func ModScalar(a Int, denominator uint64) uint64 {
	if denominator == 0 {
		dcerrors.PanicPrecondition(dcerrors.DivideByZeroError("ModScalar"))
	}
	if Base%denominator == 0 {
		return uint64(a.limbs[0]) % denominator
	}
	if denominator >= baseOverflowCutoff {
		_, r := DivMod(a, FromUint64(denominator))
		return r.ToUint64()
	}

	n := len(a.limbs)
	var remainder uint64
	for i := n - 1; i >= 0; i-- {
		remainder = Base*remainder + uint64(a.limbs[i])
		remainder %= denominator
	}
	return remainder
}
