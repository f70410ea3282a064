package decimalint

import "github.com/agbru/decimalint/internal/dmetrics"

// u64Bound is the accumulator threshold above which the schoolbook path's
// column sum must be partially reduced to avoid overflowing a uint64.
// Derived from Base; re-derive if Base ever changes.
const u64Bound = ^uint64(0) - uint64(Base)*uint64(Base)

// baseOverflowCutoff is the scalar value at or above which a scalar
// operation falls back to promoting the scalar to a full Int rather than
// risking scalar*limb overflowing a uint64.
const baseOverflowCutoff = ^uint64(0) / Base

// Multiply returns a*b, dispatching to the schoolbook, Karatsuba, or FFT
// path by operand limb-count against the configured thresholds.
func Multiply(a, b Int) Int {
	if len(a.limbs) > len(b.limbs) {
		a, b = b, a
	}
	n, m := len(a.limbs), len(b.limbs)
	t := currentThresholds()

	switch {
	case n > t.KaratsubaCutoff && n+m > t.FFTCutoff:
		dispatchLog(dmetrics.PathFFT, n, m)
		return normalizeProduct(convolve(a.limbs, b.limbs))
	case n > t.KaratsubaCutoff:
		dispatchLog(dmetrics.PathKaratsuba, n, m)
		return karatsubaMultiply(a, b)
	default:
		dispatchLog(dmetrics.PathSchoolbook, n, m)
		return schoolbookMultiply(a, b)
	}
}

func dispatchLog(path string, n, m int) {
	if log.Debug().Enabled() {
		log.Debug().Str("path", path).Int("n", n).Int("m", m).Msg("dispatch multiply")
	}
	metrics.MultiplyPathTotal.WithLabelValues(path).Inc()
	if path == dmetrics.PathFFT {
		metrics.SampleMemory()
	}
}

// Square returns a*a via the half-cost squaring specialization. Preferred
// over Multiply(a, a) whenever the caller already knows both operands are
// the same value: Go slices have no cheap, copy-safe identity check, so
// this explicit entry point is how callers opt into the cheaper path.
func Square(a Int) Int {
	n := len(a.limbs)
	t := currentThresholds()
	if n > t.KaratsubaCutoff && 2*n > t.FFTCutoff {
		dispatchLog(dmetrics.PathFFT, n, n)
		return normalizeProduct(squareConvolve(a.limbs))
	}
	return Multiply(a, a)
}

// normalizeProduct carry-normalizes a raw (possibly out-of-[0,Base))
// convolution coefficient sequence into a limb vector: walk it
// least-significant first, pushing each coefficient plus incoming carry
// through carry = value/Base, value mod Base, continuing past the
// sequence's end while a carry remains.
func normalizeProduct(raw []uint64) Int {
	limbs := make([]uint32, 0, len(raw)+1)
	var carry uint64
	for i := 0; i < len(raw) || carry > 0; i++ {
		value := carry
		if i < len(raw) {
			value += raw[i]
		}
		carry = value / Base
		limbs = checkedAdd(limbs, i, uint32(value%Base))
	}
	return Int{limbs: trim(limbs)}
}

// karatsubaMultiply implements the classical three-multiplication
// recursive split: x = a2*b2, z = a1*b1, y = (a1+a2)*(b1+b2) - x - z,
// result = x<<2mid + y<<mid + z. The two subtractions building y are
// safe without an underflow check because (a1+a2)*(b1+b2) >= x+z
// component-wise.
func karatsubaMultiply(a, b Int) Int {
	n, m := len(a.limbs), len(b.limbs)
	mid := n / 2

	a1 := a.Range(0, mid)
	a2 := a.Range(mid, n)
	b1 := b.Range(0, mid)
	b2 := b.Range(mid, m)

	x := Multiply(a2, b2)
	z := Multiply(a1, b1)
	y := Sub(Sub(Multiply(Add(a1, a2), Add(b1, b2)), x), z)

	return Add(Add(x.Shift(2*mid), y.Shift(mid)), z)
}

// schoolbookMultiply accumulates column sums directly in a 64-bit
// register, triggering a partial carry reduction whenever the
// accumulator exceeds u64Bound so a later addition within the same
// column can't overflow uint64.
func schoolbookMultiply(a, b Int) Int {
	n, m := len(a.limbs), len(b.limbs)
	outputSize := n + m - 1
	limbs := make([]uint32, 0, outputSize+1)

	var carry uint64
	for indexSum := 0; indexSum < outputSize || carry > 0; indexSum++ {
		value := carry % Base
		carry /= Base

		lo := indexSum - (m - 1)
		if lo < 0 {
			lo = 0
		}
		hi := indexSum
		if hi > n-1 {
			hi = n - 1
		}

		for i := lo; i <= hi; i++ {
			value += uint64(a.limbs[i]) * uint64(b.limbs[indexSum-i])
			if value > u64Bound {
				carry += value / Base
				value %= Base
			}
		}

		carry += value / Base
		value %= Base
		limbs = checkedAdd(limbs, indexSum, uint32(value))
	}

	return Int{limbs: trim(limbs)}
}

// MultiplyScalar returns a*scalar. If scalar would risk overflowing a
// uint64 accumulator, it falls back to promoting scalar to a full Int and
// dispatching through Multiply.
func MultiplyScalar(a Int, scalar uint64) Int {
	if scalar == 0 {
		return Zero()
	}
	if scalar >= baseOverflowCutoff {
		return Multiply(a, FromUint64(scalar))
	}

	n := len(a.limbs)
	limbs := make([]uint32, 0, n+1)
	var carry uint64
	for i := 0; i < n || carry > 0; i++ {
		var av uint64
		if i < n {
			av = uint64(a.limbs[i])
		}
		value := scalar*av + carry
		carry = value / Base
		limbs = checkedAdd(limbs, i, uint32(value%Base))
	}
	return Int{limbs: trim(limbs)}
}
