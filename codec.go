package decimalint

import "github.com/agbru/decimalint/internal/dcerrors"

// Parse converts a decimal string (digits only, no sign) into an Int.
//
// Invalid input yields an error that wraps a *dcerrors.ParseError
// (retrievable with errors.As). The empty string is rejected this way
// rather than treated as zero: a silently-accepted empty value is more likely to
// indicate an unguarded caller bug (e.g. an empty split result) than an
// intentional zero.
func Parse(s string) (Int, error) {
	if len(s) == 0 {
		return Int{}, dcerrors.WrapError(dcerrors.NewEmptyInputError(), "decimalint: parsing empty string")
	}

	numLimbs := (len(s) + Section - 1) / Section
	limbs := make([]uint32, numLimbs)

	counter := 0
	index := 0
	p10 := uint32(1)

	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return Int{}, dcerrors.WrapError(&dcerrors.ParseError{Input: s, Pos: i, Char: c}, "decimalint: parsing %q", s)
		}
		limbs[index] += p10 * uint32(c-'0')

		counter++
		if counter >= Section {
			counter = 0
			index++
			p10 = 1
		} else {
			p10 *= 10
		}
	}

	return Int{limbs: trim(limbs)}, nil
}

// MustParse is like Parse but panics if s is not a valid decimal string.
func MustParse(s string) Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromUint64 converts a machine integer into an Int.
func FromUint64(x uint64) Int {
	limbs := make([]uint32, 0, 4)
	for {
		limbs = append(limbs, uint32(x%Base))
		x /= Base
		if x == 0 {
			break
		}
	}
	return Int{limbs: limbs}
}

// ToUint64 evaluates v modulo 2^64 via Horner's method from the
// most-significant limb. Wraparound is the caller's responsibility if v
// exceeds the 64-bit range.
func (v Int) ToUint64() uint64 {
	var x uint64
	for i := len(v.limbs) - 1; i >= 0; i-- {
		x = Base*x + uint64(v.limbs[i])
	}
	return x
}

// String renders v as a canonical decimal string: no leading zeros,
// except the single character "0" for zero.
func (v Int) String() string {
	digits := make([]byte, 0, len(v.limbs)*Section)
	for _, limb := range v.limbs {
		for i := 0; i < Section; i++ {
			digits = append(digits, byte('0'+limb%10))
			limb /= 10
		}
	}

	n := len(digits)
	for n > 1 && digits[n-1] == '0' {
		n--
	}
	digits = digits[:n]

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
