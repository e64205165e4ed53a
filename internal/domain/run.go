package domain

import "time"

// Outcome classifies a single fixture after verification.
type Outcome string

const (
	OutcomePass           Outcome = "pass"
	OutcomeFail           Outcome = "fail"
	OutcomeNotImplemented Outcome = "not_implemented"
	OutcomeFault          Outcome = "fault"
)

// AssertionResult is the output of a single assertion.
type AssertionResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// FixtureResult is the outcome of checking one fixture against a candidate.
// GotGCD/GotLCM are nil when the function was missing or panicked.
type FixtureResult struct {
	Index   int     `json:"index"`
	Fixture Fixture `json:"fixture"`

	GotGCD *int64 `json:"got_gcd,omitempty"`
	GotLCM *int64 `json:"got_lcm,omitempty"`

	GCDCorrect bool `json:"gcd_correct"`
	LCMCorrect bool `json:"lcm_correct"`

	Outcome    Outcome           `json:"outcome"`
	Assertions []AssertionResult `json:"assertions"`

	// Fault holds the recovered panic message when Outcome is OutcomeFault.
	Fault string `json:"fault,omitempty"`
}

// Passed reports whether both GCD and LCM matched.
func (r FixtureResult) Passed() bool {
	return r.Outcome == OutcomePass
}

// Report is the result of one verification run over a suite.
type Report struct {
	ID string `json:"id"`

	SuiteName string `json:"suite"`
	SuitePath string `json:"suite_path,omitempty"`
	Candidate string `json:"candidate"`

	// Missing lists candidate functions that were not implemented.
	Missing []string `json:"missing,omitempty"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Results []FixtureResult `json:"results"`
}

// Total is the number of fixtures evaluated.
func (r Report) Total() int {
	return len(r.Results)
}

// Passed is the number of fixtures where both GCD and LCM matched.
func (r Report) Passed() int {
	return r.Count(OutcomePass)
}

// Count returns how many fixtures ended with the given outcome.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// AllPassed reports whether every fixture passed. An empty report never passes.
func (r Report) AllPassed() bool {
	return r.Total() > 0 && r.Passed() == r.Total()
}

// Implemented reports whether the candidate provided every function.
func (r Report) Implemented() bool {
	return len(r.Missing) == 0
}

// ReportRef is a lightweight index entry for a saved report.
type ReportRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Suite     string    `json:"suite"`
	Candidate string    `json:"candidate"`
	Passed    int       `json:"passed"`
	Total     int       `json:"total"`
	StartedAt time.Time `json:"started_at"`
}

// Calculation is what the calculator shows for one pair of numbers.
type Calculation struct {
	A   int64 `json:"a"`
	B   int64 `json:"b"`
	GCD int64 `json:"gcd"`
	LCM int64 `json:"lcm"`

	// MultipleA is LCM/A and MultipleB is LCM/B; nil when the operand is zero.
	MultipleA *int64 `json:"multiple_a,omitempty"`
	MultipleB *int64 `json:"multiple_b,omitempty"`

	Steps []Step `json:"steps"`
}

// ListCalculation is the calculator output for more than two numbers.
type ListCalculation struct {
	Operands []int64 `json:"operands"`
	GCD      int64   `json:"gcd"`
	LCM      int64   `json:"lcm"`
}
