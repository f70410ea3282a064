// Package fftkernel implements the iterative radix-2 decimation-in-time
// FFT over complex128 used to convolve decimalint operands, plus the
// twiddle-root and bit-reversal caches that make repeated transforms of a
// given size cheap. It never inspects decimal digits directly: callers
// pack/unpack limbs into complex128 slices and this package only does the
// transform math.
package fftkernel
