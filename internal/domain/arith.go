package domain

import "math/bits"

// Step is one iteration of Euclid's algorithm: A is divided by B leaving Remainder.
// The next step operates on (B, Remainder).
type Step struct {
	A         int64 `json:"a"`
	B         int64 `json:"b"`
	Remainder int64 `json:"remainder"`
}

// GCD returns the greatest common divisor of a and b using the Euclidean algorithm:
// (a, b) is replaced by (b, a mod b) until b reaches zero, and a is the answer.
//
// Operands are reduced to their absolute values first, so the result is never
// negative (GCD(-12, 18) == 6). GCD(0, 0) is 0. The only magnitude int64 cannot hold
// is |math.MinInt64|; GCD(math.MinInt64, 0) and GCD(math.MinInt64, math.MinInt64)
// therefore wrap to math.MinInt64.
func GCD(a, b int64) int64 {
	return int64(gcdUint(absUint(a), absUint(b)))
}

// LCM returns the least common multiple of a and b, computed as |a| / gcd * |b|.
// LCM(a, 0) and LCM(0, b) are 0, and so is LCM(0, 0).
//
// Like any Go integer arithmetic, results beyond int64 wrap silently.
// Use CheckedLCM when the operands are untrusted.
func LCM(a, b int64) int64 {
	ua, ub := absUint(a), absUint(b)
	if ua == 0 || ub == 0 {
		return 0
	}
	return int64(ua / gcdUint(ua, ub) * ub)
}

// CheckedLCM is LCM with overflow detection. It returns an OpError of kind
// KindOverflow when the least common multiple does not fit in an int64.
func CheckedLCM(a, b int64) (int64, error) {
	ua, ub := absUint(a), absUint(b)
	if ua == 0 || ub == 0 {
		return 0, nil
	}

	hi, lo := bits.Mul64(ua/gcdUint(ua, ub), ub)
	if hi != 0 || lo > maxInt64 {
		return 0, overflowError(a, b)
	}
	return int64(lo), nil
}

// EuclidSteps returns every division performed by GCD(a, b), in order.
// The last step always has a zero remainder and its B is the GCD.
// No steps are returned when b is zero, since the loop never runs.
func EuclidSteps(a, b int64) []Step {
	ua, ub := absUint(a), absUint(b)

	var steps []Step
	for ub != 0 {
		r := ua % ub
		steps = append(steps, Step{A: int64(ua), B: int64(ub), Remainder: int64(r)})
		ua, ub = ub, r
	}
	return steps
}

// Multiples returns the first count positive multiples of |n|.
func Multiples(n int64, count int) []int64 {
	if count <= 0 {
		return nil
	}

	step := int64(absUint(n))
	out := make([]int64, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, step*int64(i))
	}
	return out
}

// GCDOf folds GCD over nums. GCDOf() is 0.
func GCDOf(nums ...int64) int64 {
	var g int64
	for _, n := range nums {
		g = GCD(g, n)
	}
	return g
}

// LCMOf folds CheckedLCM over nums. LCMOf() is 0 and any zero operand makes the result 0.
func LCMOf(nums ...int64) (int64, error) {
	if len(nums) == 0 {
		return 0, nil
	}

	first := absUint(nums[0])
	if first > maxInt64 {
		return 0, overflowError(nums[0], nums[0])
	}

	l := int64(first)
	for _, n := range nums[1:] {
		next, err := CheckedLCM(l, n)
		if err != nil {
			return 0, err
		}
		l = next
	}
	return l, nil
}

const maxInt64 = 1<<63 - 1

func gcdUint(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absUint(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
