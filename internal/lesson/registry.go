// Package lesson holds the functions the student writes and the registry of
// candidates the verifier can check.
package lesson

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/euclid/internal/domain"
)

const CandidateStudent = "student"

// Student returns the candidate backed by the package-level GCD and LCM slots.
// Slots are read on each call so tests can swap them.
func Student() domain.Candidate {
	return domain.Candidate{
		Name: CandidateStudent,
		GCD:  GCD,
		LCM:  LCM,
	}
}

// Candidates returns every known candidate keyed by name.
func Candidates() map[string]domain.Candidate {
	return map[string]domain.Candidate{
		domain.CandidateReference: domain.Reference(),
		CandidateStudent:          Student(),
	}
}

// Names lists candidate names in a stable order.
func Names() []string {
	all := Candidates()
	out := make([]string, 0, len(all))
	for n := range all {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Lookup finds a candidate by name, case-insensitively.
func Lookup(name string) (domain.Candidate, error) {
	c, ok := Candidates()[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.Candidate{}, &domain.OpError{
			Op:   "lesson.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("candidate %q (known: %s): %w", name, strings.Join(Names(), ", "), domain.ErrNotFound),
		}
	}
	return c, nil
}
