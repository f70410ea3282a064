// Package decimalint implements arbitrary-precision non-negative integer
// arithmetic over a base-10,000 little-endian limb vector, with a
// three-tier multiplication strategy (schoolbook, Karatsuba, complex-FFT
// via a real+imaginary packing trick) and a long division driven by a
// double-precision quotient estimator with bounded correction.
//
// Values are immutable: no operation writes into the limbs of an existing
// Int. Arithmetic returns a new Int; the in-place forms (Inc, AddAssign and
// the rest of surface.go) replace the variable *a with such a new value,
// so other copies of the old value are unaffected and Int is safe to pass
// and store by value.
package decimalint

import (
	"sync"

	"github.com/agbru/decimalint/internal/dconfig"
	"github.com/agbru/decimalint/internal/dmetrics"
	"github.com/agbru/decimalint/internal/tracelog"
)

// Section is the number of decimal digits packed into a single limb.
const Section = 4

// Base is the limb radix (10_000). Raising it requires re-deriving the
// u64Bound overflow guard in mul.go and the FFT precision envelope in
// poly.go.
const Base = 10_000

// Int is an arbitrary-precision non-negative integer.
type Int struct {
	limbs []uint32 // little-endian, each in [0, Base)
}

var log = tracelog.Get("decimalint")

var (
	mu         sync.RWMutex
	thresholds = dconfig.FromEnv()
	metrics    = dmetrics.Default
)

// Configure replaces the cost-model and cutoff thresholds consulted by
// Multiply and DivMod. Safe to call concurrently with arithmetic
// operations; takes effect for calls made after it returns.
func Configure(t dconfig.Thresholds) {
	mu.Lock()
	defer mu.Unlock()
	thresholds = t
}

func currentThresholds() dconfig.Thresholds {
	mu.RLock()
	defer mu.RUnlock()
	return thresholds
}

// Metrics returns the prometheus registry decimalint reports dispatch
// counters and cache-growth gauges into.
func Metrics() *dmetrics.Registry { return metrics }

// Zero returns the value 0.
func Zero() Int { return Int{limbs: []uint32{0}} }

// IsZero reports whether v is 0.
func (v Int) IsZero() bool { return len(v.limbs) == 1 && v.limbs[0] == 0 }

// KaratsubaCutoff, FFTCutoff, and DoubleDivSections expose the currently
// configured cutoffs, so a caller predicting which path a given operand
// size will dispatch to doesn't have to duplicate the dispatch logic.
func KaratsubaCutoff() int    { return currentThresholds().KaratsubaCutoff }
func FFTCutoff() int          { return currentThresholds().FFTCutoff }
func DoubleDivSections() int  { return currentThresholds().DoubleDivSections }
