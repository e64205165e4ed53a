package check

import (
	"fmt"

	"github.com/aalvaropc/euclid/internal/domain"
)

const (
	NameGCD = "gcd"
	NameLCM = "lcm"
)

// GCD compares an observed greatest common divisor with the expected one.
func GCD(expected int64, got int64) domain.AssertionResult {
	return equal(NameGCD, expected, got)
}

// LCM compares an observed least common multiple with the expected one.
func LCM(expected int64, got int64) domain.AssertionResult {
	return equal(NameLCM, expected, got)
}

// NotImplemented is recorded when the candidate does not provide the function.
func NotImplemented(name string) domain.AssertionResult {
	return domain.AssertionResult{
		Name:    name,
		Passed:  false,
		Message: fmt.Sprintf("%s is not implemented yet", name),
	}
}

// Fault is recorded when the candidate function panicked.
func Fault(name string, reason string) domain.AssertionResult {
	return domain.AssertionResult{
		Name:    name,
		Passed:  false,
		Message: fmt.Sprintf("%s panicked: %s", name, reason),
	}
}

func equal(name string, expected int64, got int64) domain.AssertionResult {
	if got == expected {
		return domain.AssertionResult{
			Name:    name,
			Passed:  true,
			Message: fmt.Sprintf("%s %d", name, got),
		}
	}

	return domain.AssertionResult{
		Name:    name,
		Passed:  false,
		Message: fmt.Sprintf("expected %s %d, got %d", name, expected, got),
	}
}
