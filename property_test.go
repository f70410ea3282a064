package decimalint_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/decimalint"
)

// randomDigitString builds a decimal string of exactly n digits whose first
// digit is never zero (so it is never "0"), deterministically from seed.
func randomDigitString(seed uint64, n int) string {
	rng := rand.New(rand.NewSource(int64(seed)))
	b := make([]byte, n)
	b[0] = byte('1' + rng.Intn(9))
	for i := 1; i < n; i++ {
		b[i] = byte('0' + rng.Intn(10))
	}
	return string(b)
}

func mustVal(s string) decimalint.Int { return decimalint.MustParse(s) }

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("to_string(from_string(s)) == s", prop.ForAll(
		func(seed uint64, n int) bool {
			s := randomDigitString(seed, n)
			return decimalint.MustParse(s).String() == s
		},
		gen.UInt64Range(0, 1<<62),
		gen.IntRange(1, 60),
	))

	properties.TestingRun(t)
}

func TestOrderTotalityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("exactly one of <, ==, > holds, matching zero-padded string order", prop.ForAll(
		func(seedA, seedB uint64, nA, nB int) bool {
			sa, sb := randomDigitString(seedA, nA), randomDigitString(seedB, nB)
			a, b := mustVal(sa), mustVal(sb)
			lt, eq, gt := a.Less(b), a.Equal(b), a.Greater(b)
			count := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					count++
				}
			}
			if count != 1 {
				return false
			}
			cmp := padCompare(sa, sb)
			return (lt == (cmp < 0)) && (eq == (cmp == 0)) && (gt == (cmp > 0))
		},
		gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62),
		gen.IntRange(1, 40), gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}

func padCompare(a, b string) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	a = strings.Repeat("0", n-len(a)) + a
	b = strings.Repeat("0", n-len(b)) + b
	return strings.Compare(a, b)
}

func TestRingLawsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("addition is associative", prop.ForAll(
		func(seedA, seedB, seedC uint64) bool {
			a := mustVal(randomDigitString(seedA, 30))
			b := mustVal(randomDigitString(seedB, 30))
			c := mustVal(randomDigitString(seedC, 30))
			left := decimalint.Add(decimalint.Add(a, b), c)
			right := decimalint.Add(a, decimalint.Add(b, c))
			return left.Equal(right)
		},
		gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62),
	))

	properties.Property("addition is commutative", prop.ForAll(
		func(seedA, seedB uint64) bool {
			a := mustVal(randomDigitString(seedA, 30))
			b := mustVal(randomDigitString(seedB, 30))
			return decimalint.Add(a, b).Equal(decimalint.Add(b, a))
		},
		gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(seedA, seedB uint64) bool {
			a := mustVal(randomDigitString(seedA, 30))
			b := mustVal(randomDigitString(seedB, 30))
			return decimalint.Multiply(a, b).Equal(decimalint.Multiply(b, a))
		},
		gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(seedA, seedB, seedC uint64) bool {
			a := mustVal(randomDigitString(seedA, 20))
			b := mustVal(randomDigitString(seedB, 20))
			c := mustVal(randomDigitString(seedC, 20))
			left := decimalint.Multiply(a, decimalint.Add(b, c))
			right := decimalint.Add(decimalint.Multiply(a, b), decimalint.Multiply(a, c))
			return left.Equal(right)
		},
		gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62),
	))

	properties.Property("identity elements", prop.ForAll(
		func(seedA uint64) bool {
			a := mustVal(randomDigitString(seedA, 30))
			return decimalint.Add(a, decimalint.Zero()).Equal(a) &&
				decimalint.Multiply(a, decimalint.FromUint64(1)).Equal(a) &&
				decimalint.Multiply(a, decimalint.Zero()).IsZero()
		},
		gen.UInt64Range(0, 1<<62),
	))

	properties.TestingRun(t)
}

func TestSubAddInverseProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("(a-b)+b == a when a >= b", prop.ForAll(
		func(seedA, seedB uint64) bool {
			a := mustVal(randomDigitString(seedA, 30))
			b := mustVal(randomDigitString(seedB, 30))
			if a.Less(b) {
				a, b = b, a
			}
			return decimalint.Add(decimalint.Sub(a, b), b).Equal(a)
		},
		gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62),
	))

	properties.TestingRun(t)
}

func TestDivisionIdentityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("a == (a/d)*d + (a mod d), 0 <= a mod d < d", prop.ForAll(
		func(seedA, seedD uint64) bool {
			a := mustVal(randomDigitString(seedA, 40))
			d := mustVal(randomDigitString(seedD, 15))
			if d.IsZero() {
				d = decimalint.FromUint64(1)
			}
			q, r := decimalint.DivMod(a, d)
			reconstructed := decimalint.Add(decimalint.Multiply(q, d), r)
			return reconstructed.Equal(a) && r.Less(d)
		},
		gen.UInt64Range(0, 1<<62), gen.UInt64Range(0, 1<<62),
	))

	properties.TestingRun(t)
}

func TestShiftEquivalenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a << k == a * Base^k", prop.ForAll(
		func(seedA uint64, k int) bool {
			a := mustVal(randomDigitString(seedA, 20))
			power := decimalint.FromUint64(1)
			baseVal := decimalint.FromUint64(decimalint.Base)
			for i := 0; i < k; i++ {
				power = decimalint.Multiply(power, baseVal)
			}
			return a.Shift(k).Equal(decimalint.Multiply(a, power))
		},
		gen.UInt64Range(0, 1<<62), gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}

func TestScalarConsistencyProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a*s == a*integer(s) and a/s == a/integer(s)", prop.ForAll(
		func(seedA uint64, s uint32) bool {
			a := mustVal(randomDigitString(seedA, 25))
			scalar := uint64(s) + 1

			mulScalar := decimalint.MultiplyScalar(a, scalar)
			mulGeneral := decimalint.Multiply(a, decimalint.FromUint64(scalar))
			if !mulScalar.Equal(mulGeneral) {
				return false
			}

			qScalar, _ := decimalint.DivScalar(a, scalar)
			qGeneral := decimalint.Div(a, decimalint.FromUint64(scalar))
			return qScalar.Equal(qGeneral)
		},
		gen.UInt64Range(0, 1<<62), gen.UInt32Range(0, 1<<20),
	))

	properties.TestingRun(t)
}

func TestPathAgreementAcrossSizes(t *testing.T) {
	sizes := [][2]int{{40, 40}, {800, 800}, {3200, 8000}}
	for i, sz := range sizes {
		a := randomDigitString(uint64(i*2+1), sz[0])
		b := randomDigitString(uint64(i*2+2), sz[1])

		got := decimalint.Multiply(decimalint.MustParse(a), decimalint.MustParse(b))
		want := stringMultiplyReference(a, b)
		if got.String() != want {
			t.Fatalf("size (%d,%d): got %s want %s", sz[0], sz[1], got.String(), want)
		}
	}
}

// stringMultiplyReference is a decimal-string brute-force oracle
// independent of decimalint's own limb representation, used to validate
// path agreement across operand sizes straddling KaratsubaCutoff and
// FFTCutoff.
func stringMultiplyReference(a, b string) string {
	digitsA := reverseDigits(a)
	digitsB := reverseDigits(b)
	result := make([]int, len(digitsA)+len(digitsB))
	for i, da := range digitsA {
		for j, db := range digitsB {
			result[i+j] += da * db
		}
	}
	carry := 0
	for i := range result {
		result[i] += carry
		carry = result[i] / 10
		result[i] %= 10
	}
	for carry > 0 {
		result = append(result, carry%10)
		carry /= 10
	}
	n := len(result)
	for n > 1 && result[n-1] == 0 {
		n--
	}
	result = result[:n]
	out := make([]byte, len(result))
	for i, d := range result {
		out[len(result)-1-i] = byte('0' + d)
	}
	return string(out)
}

func reverseDigits(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[len(s)-1-i] - '0')
	}
	return out
}
