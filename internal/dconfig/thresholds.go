// Package dconfig holds the tunable cost-model constants and size cutoffs
// that the multiplier and divider read to decide which algorithm to run.
// Every such constant lives here, named and in one place, each
// overridable by an environment variable (see env.go).
package dconfig

// EnvPrefix namespaces every environment variable this package reads.
const EnvPrefix = "DECIMALINT_"

// Thresholds bundles every tunable constant the multiplier and divider
// consult. The zero value is not meaningful; use Default() or FromEnv().
type Thresholds struct {
	// KaratsubaCutoff is the minimum limb count of the smaller operand
	// before Karatsuba multiplication is considered over schoolbook.
	KaratsubaCutoff int

	// FFTCutoff is the minimum combined limb count (n+m) before the FFT
	// path is considered, in addition to KaratsubaCutoff on the smaller
	// operand.
	FFTCutoff int

	// DoubleDivSections is the number of leading limbs of the dividend
	// chunk and divisor consulted by the double-precision quotient
	// estimator.
	DoubleDivSections int

	// MulCost and FFTCost are the empirically tuned constants in the
	// multiplication cost model: schoolbook cost ~= MulCost * n * m,
	// FFT cost ~= FFTCost * N * (log2 N + 3).
	MulCost float64
	FFTCost float64

	// SquareMulCost and SquareFFTCost are the squaring specializations
	// of the same cost model.
	SquareMulCost float64
	SquareFFTCost float64
}

// Default returns the thresholds this engine was tuned against.
func Default() Thresholds {
	return Thresholds{
		KaratsubaCutoff:   150,
		FFTCutoff:         1500,
		DoubleDivSections: 5,
		MulCost:           0.55,
		FFTCost:           1.5,
		SquareMulCost:     0.4,
		SquareFFTCost:     2.0,
	}
}
