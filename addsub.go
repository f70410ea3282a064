package decimalint

import "github.com/agbru/decimalint/internal/dcerrors"

// Compare returns -1, 0, or +1 as a is less than, equal to, or greater
// than b: first by limb count, then by limb from most- to
// least-significant.
func Compare(a, b Int) int {
	if len(a.limbs) != len(b.limbs) {
		if len(a.limbs) < len(b.limbs) {
			return -1
		}
		return 1
	}
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns a+b.
func Add(a, b Int) Int {
	n := len(a.limbs)
	if len(b.limbs) > n {
		n = len(b.limbs)
	}
	out := make([]uint32, n)

	var carry uint32
	for i := 0; i < n; i++ {
		var x, y uint32
		if i < len(a.limbs) {
			x = a.limbs[i]
		}
		if i < len(b.limbs) {
			y = b.limbs[i]
		}
		sum := x + y + carry
		if sum >= Base {
			sum -= Base
			carry = 1
		} else {
			carry = 0
		}
		out[i] = sum
	}
	if carry > 0 {
		out = append(out, carry)
	}
	return Int{limbs: trim(out)}
}

// Sub returns a-b. Precondition: a >= b; violating it panics with a
// dcerrors.NegativeResultError rather than wrapping silently.
func Sub(a, b Int) Int {
	if Compare(a, b) < 0 {
		dcerrors.PanicPrecondition(dcerrors.NegativeResultError())
	}

	out := make([]uint32, len(a.limbs))
	var borrow int32
	for i := range a.limbs {
		x := int32(a.limbs[i]) - borrow
		var y int32
		if i < len(b.limbs) {
			y = int32(b.limbs[i])
		}
		d := x - y
		if d < 0 {
			d += Base
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return Int{limbs: trim(out)}
}

// Shift returns a << k, equivalent to a * Base^k, by prepending k zero
// limbs.
func (a Int) Shift(k int) Int {
	if k <= 0 || a.IsZero() {
		return a
	}
	out := make([]uint32, k+len(a.limbs))
	copy(out[k:], a.limbs)
	return Int{limbs: out}
}

// Range returns the half-open limb window [i, j) of a, renormalized. Used
// by Karatsuba's split and by long division's chunk extraction.
func (a Int) Range(i, j int) Int {
	if i < 0 {
		i = 0
	}
	if j > len(a.limbs) {
		j = len(a.limbs)
	}
	if j <= i {
		return Zero()
	}
	out := make([]uint32, j-i)
	copy(out, a.limbs[i:j])
	return Int{limbs: trim(out)}
}
