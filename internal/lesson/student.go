package lesson

// GCD is your greatest common divisor. Replace nil with a function, for example:
//
//	var GCD = func(a, b int64) int64 {
//		for b != 0 {
//			a, b = b, a%b
//		}
//		return a
//	}
//
// Then run `euclid verify --candidate student`.
var GCD func(a, b int64) int64

// LCM is your least common multiple. Remember lcm(a, b) = a*b / gcd(a, b),
// and think about what happens when one of the numbers is zero.
var LCM func(a, b int64) int64
