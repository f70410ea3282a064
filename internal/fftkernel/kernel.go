package fftkernel

import (
	"math"
	"math/bits"
	"math/cmplx"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/agbru/decimalint/internal/dmetrics"
	"github.com/agbru/decimalint/internal/tracelog"
)

var log = tracelog.Get("fftkernel")

// Kernel owns the twiddle-root table and bit-reversal permutation cache
// shared by every transform of a given size. The zero value is not usable;
// construct with New.
type Kernel struct {
	mu sync.RWMutex

	roots  []complex128 // roots[0]={0,0}, roots[1]={1,0}, doubled in place as needed
	bitrev map[int][]int

	grow singleflight.Group

	metrics *dmetrics.Registry
}

// New returns a Kernel that reports cache growth into m. Pass nil to skip
// metrics entirely.
func New(m *dmetrics.Registry) *Kernel {
	return &Kernel{
		roots:   []complex128{0, 1},
		bitrev:  make(map[int][]int),
		metrics: m,
	}
}

var global = New(dmetrics.Default)

// Transform performs an in-place iterative radix-2 DIT FFT on values, whose
// length must already be a power of two. RoundUpPowerTwo computes a
// suitable length for callers assembling an input buffer.
func Transform(values []complex128) { global.Transform(values) }

// Inverse recovers, in place, the length-n real sequence whose transform is
// values: it conjugates and scales by 1/n, folds the n values into a
// length-n/2 buffer, runs one length-n/2 forward transform, and reads the
// real parts as the even-indexed outputs and the imaginary parts as the
// odd-indexed outputs. The result is only meaningful when the underlying
// sequence is real.
func Inverse(values []complex128) { global.Inverse(values) }

// Extract recovers one of the two packed real transforms (side 0 or 1) or
// the product spectrum of two packed real sequences (side -1) from the
// combined transform `values` of length n, at frequency bin index.
func Extract(n int, values []complex128, index, side int) complex128 {
	return extract(n, values, index, side)
}

// Root returns the cached twiddle root at index k, growing the shared
// table first if needed. Used by the squaring specialization, which
// needs a root beyond what a same-size Transform call would have primed.
func Root(k int) complex128 { return global.Root(k) }

func (k *Kernel) Root(index int) complex128 {
	k.prepareRoots(index + 1)
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.roots[index]
}

// RoundUpPowerTwo returns the smallest power of two >= n, or 1 if n <= 0.
func RoundUpPowerTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

func (k *Kernel) Transform(values []complex128) {
	n := len(values)
	k.prepareRoots(n)
	k.bitReorder(n, values)

	roots := k.rootsSnapshot()
	for length := 1; length < n; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			for i := 0; i < length; i++ {
				even := values[start+i]
				odd := values[start+length+i] * roots[length+i]
				values[start+length+i] = even - odd
				values[start+i] = even + odd
			}
		}
	}
}

func (k *Kernel) Inverse(values []complex128) {
	n := len(values)
	for i := range values {
		values[i] = cmplx.Conj(values[i]) * complex(1/float64(n), 0)
	}

	roots := k.rootsSnapshot()
	half := n / 2
	for i := 0; i < half; i++ {
		first := values[i] + values[half+i]
		second := (values[i] - values[half+i]) * roots[half+i]
		values[i] = first + second*complex(0, 1)
	}

	k.Transform(values[:half])

	for i := n - 1; i >= 0; i-- {
		if i%2 == 0 {
			values[i] = complex(real(values[i/2]), 0)
		} else {
			values[i] = complex(imag(values[i/2]), 0)
		}
	}
}

// prepareRoots grows the shared twiddle table to at least length n,
// deduplicating concurrent growth requests for the same target size via
// singleflight so that two callers racing to extend the cache don't
// double the work.
func (k *Kernel) prepareRoots(n int) {
	n = RoundUpPowerTwo(n)
	k.mu.RLock()
	have := len(k.roots)
	k.mu.RUnlock()
	if have >= n {
		return
	}

	key := "roots:" + strconv.Itoa(n)
	_, _, _ = k.grow.Do(key, func() (any, error) {
		k.mu.Lock()
		defer k.mu.Unlock()
		if len(k.roots) >= n {
			return nil, nil
		}

		length := bits.TrailingZeros(uint(len(k.roots)))
		k.roots = append(k.roots, make([]complex128, n-len(k.roots))...)

		for 1<<length < n {
			minAngle := 2 * math.Pi / float64(uint(1)<<(length+1))
			for i := 0; i < 1<<(length-1); i++ {
				index := (1 << (length - 1)) + i
				k.roots[2*index] = k.roots[index]
				angle := minAngle * float64(2*i+1)
				k.roots[2*index+1] = complex(math.Cos(angle), math.Sin(angle))
			}
			length++
		}

		if log.Debug().Enabled() {
			log.Debug().Int("size", len(k.roots)).Msg("grew twiddle root cache")
		}
		if k.metrics != nil {
			k.metrics.FFTCacheTwiddleSize.Set(float64(len(k.roots)))
		}
		return nil, nil
	})
}

func (k *Kernel) rootsSnapshot() []complex128 {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.roots
}

// bitReorder applies the in-place bit-reversal permutation for length n,
// computing and caching the permutation the first time n is seen.
func (k *Kernel) bitReorder(n int, values []complex128) {
	perm := k.bitReversalPermutation(n)
	for i := 0; i < n; i++ {
		if i < perm[i] {
			values[i], values[perm[i]] = values[perm[i]], values[i]
		}
	}
}

func (k *Kernel) bitReversalPermutation(n int) []int {
	k.mu.RLock()
	perm, ok := k.bitrev[n]
	k.mu.RUnlock()
	if ok {
		return perm
	}

	v, _, _ := k.grow.Do("bitrev:"+strconv.Itoa(n), func() (any, error) {
		k.mu.RLock()
		if p, ok := k.bitrev[n]; ok {
			k.mu.RUnlock()
			return p, nil
		}
		k.mu.RUnlock()

		p := make([]int, n)
		length := bits.TrailingZeros(uint(n))
		for i := 1; i < n; i++ {
			p[i] = p[i>>1]>>1 | (i&1)<<(length-1)
		}

		k.mu.Lock()
		k.bitrev[n] = p
		k.mu.Unlock()
		return p, nil
	})
	return v.([]int)
}

// extract recovers a packed real transform or product spectrum from the
// combined transform of two real sequences packed into one complex FFT.
// side 0 and 1 recover the two original transforms; side -1 recovers the
// transform of their convolution (used by the general multiply path's
// convolve; the squaring path uses sides 0 and 1).
func extract(n int, values []complex128, index, side int) complex128 {
	other := (n - index) & (n - 1)

	if side == -1 {
		a := values[other] * values[other]
		b := values[index] * values[index]
		return (cmplx.Conj(a) - b) * complex(0, 0.25)
	}

	sign := 1.0
	multiplier := complex(0.5, 0)
	if side != 0 {
		sign = -1.0
		multiplier = complex(0, -0.5)
	}
	re := real(values[index]) + real(values[other])*sign
	im := imag(values[index]) - imag(values[other])*sign
	return multiplier * complex(re, im)
}
