package decimalint

import (
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/agbru/decimalint/internal/fftkernel"
)

// log2PowerOfTwo returns log2(n) for a power-of-two n.
func log2PowerOfTwo(n int) int { return bits.Len(uint(n)) - 1 }

// convolve computes the discrete convolution of two coefficient
// sequences, falling back to schoolbook accumulation when the FFT path's
// estimated cost does not beat it. The result is not yet carry-
// normalized into limbs; mul.go's normalizeProduct does that.
func convolve(left, right []uint32) []uint64 {
	n, m := len(left), len(right)
	outputSize := n + m - 1
	N := fftkernel.RoundUpPowerTwo(outputSize)

	t := currentThresholds()
	bruteForceCost := t.MulCost * float64(n) * float64(m)
	fftCost := t.FFTCost * float64(N) * float64(log2PowerOfTwo(N)+3)

	if bruteForceCost < fftCost {
		return schoolbookConvolve(left, right, outputSize)
	}

	values := make([]complex128, N)
	for i, v := range left {
		values[i] = complex(float64(v), 0)
	}
	for i, v := range right {
		values[i] += complex(0, float64(v))
	}

	fftkernel.Transform(values)
	for i := 0; i <= N/2; i++ {
		j := (N - i) & (N - 1)
		product := fftkernel.Extract(N, values, i, -1)
		values[i] = product
		values[j] = cmplx.Conj(product)
	}
	fftkernel.Inverse(values)

	result := make([]uint64, outputSize)
	for i := 0; i < outputSize; i++ {
		result[i] = uint64(math.Round(real(values[i])))
	}
	return result
}

func schoolbookConvolve(left, right []uint32, outputSize int) []uint64 {
	result := make([]uint64, outputSize)
	for i, lv := range left {
		for j, rv := range right {
			result[i+j] += uint64(lv) * uint64(rv)
		}
	}
	return result
}

// squareConvolve computes the self-convolution of input (its coefficient
// sequence squared), using the half-length packing specialization: even-
// indexed coefficients are packed as real, odd-indexed as imaginary, which
// halves the transform size needed for a squaring.
func squareConvolve(input []uint32) []uint64 {
	n := len(input)
	outputSize := 2*n - 1
	N := fftkernel.RoundUpPowerTwo(n)

	t := currentThresholds()
	bruteForceCost := t.SquareMulCost * float64(n) * float64(n)
	fftCost := t.SquareFFTCost * float64(N) * float64(log2PowerOfTwo(N)+3)

	if bruteForceCost < fftCost {
		result := make([]uint64, outputSize)
		for i := 0; i < n; i++ {
			result[2*i] += uint64(input[i]) * uint64(input[i])
			for j := i + 1; j < n; j++ {
				result[i+j] += 2 * uint64(input[i]) * uint64(input[j])
			}
		}
		return result
	}

	values := make([]complex128, N)
	for i := 0; i < n; i += 2 {
		var im float64
		if i+1 < n {
			im = float64(input[i+1])
		}
		values[i/2] = complex(float64(input[i]), im)
	}
	fftkernel.Transform(values)

	for i := 0; i <= N/2; i++ {
		j := (N - i) & (N - 1)
		even := fftkernel.Extract(N, values, i, 0)
		odd := fftkernel.Extract(N, values, i, 1)
		root := fftkernel.Root(N + i)

		aux := even*even + odd*odd*root*root
		tmp := even * odd
		values[i] = aux - complex(0, 2)*tmp
		values[j] = cmplx.Conj(aux) - complex(0, 2)*cmplx.Conj(tmp)
	}

	for i := range values {
		values[i] = cmplx.Conj(values[i]) * complex(1/float64(N), 0)
	}
	fftkernel.Transform(values)

	result := make([]uint64, outputSize)
	for i := 0; i < outputSize; i++ {
		var v float64
		if i%2 == 0 {
			v = real(values[i/2])
		} else {
			v = imag(values[i/2])
		}
		result[i] = uint64(math.Round(v))
	}
	return result
}
