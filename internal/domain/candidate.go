package domain

import "fmt"

// GCDFunc computes a greatest common divisor.
type GCDFunc func(a, b int64) int64

// LCMFunc computes a least common multiple.
type LCMFunc func(a, b int64) int64

// Candidate is an implementation under test. A nil function means it has not
// been written yet; the verifier reports that instead of calling it.
type Candidate struct {
	Name string
	GCD  GCDFunc
	LCM  LCMFunc
}

// Missing returns the names of the functions the candidate does not provide.
func (c Candidate) Missing() []string {
	var out []string
	if c.GCD == nil {
		out = append(out, "gcd")
	}
	if c.LCM == nil {
		out = append(out, "lcm")
	}
	return out
}

// Implemented reports whether both functions are present.
func (c Candidate) Implemented() bool {
	return c.GCD != nil && c.LCM != nil
}

const CandidateReference = "reference"

// Reference returns the candidate backed by this package's GCD and LCM.
func Reference() Candidate {
	return Candidate{
		Name: CandidateReference,
		GCD:  GCD,
		LCM:  LCM,
	}
}

// FixtureName is the default label for a fixture on operands a and b.
func FixtureName(a, b int64) string {
	return fmt.Sprintf("%d and %d", a, b)
}
