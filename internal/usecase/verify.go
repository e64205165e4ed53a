package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/usecase/check"
)

// Verify checks a candidate against fixtures in order and returns a report with
// one result per fixture.
//
// Missing candidate functions are never called: the fixture is marked
// not_implemented while the function that does exist is still evaluated.
// A panic inside a candidate function marks that fixture as fault and the run
// continues. Cancellation stops before the next fixture and returns the
// partial report together with ctx.Err().
func Verify(ctx context.Context, fixtures []domain.Fixture, c domain.Candidate) (domain.Report, error) {
	report := domain.Report{
		ID:        uuid.NewString(),
		Candidate: c.Name,
		Missing:   c.Missing(),
		StartedAt: time.Now(),
		Results:   make([]domain.FixtureResult, 0, len(fixtures)),
	}

	for i, f := range fixtures {
		if err := ctx.Err(); err != nil {
			report.EndedAt = time.Now()
			return report, err
		}
		report.Results = append(report.Results, verifyFixture(i, f, c))
	}

	report.EndedAt = time.Now()
	return report, nil
}

func verifyFixture(index int, f domain.Fixture, c domain.Candidate) domain.FixtureResult {
	res := domain.FixtureResult{
		Index:      index,
		Fixture:    f,
		Assertions: make([]domain.AssertionResult, 0, 2),
	}

	var faults []string

	switch {
	case c.GCD == nil:
		res.Assertions = append(res.Assertions, check.NotImplemented(check.NameGCD))
	default:
		got, fault := call(c.GCD, f.A, f.B)
		if fault != "" {
			faults = append(faults, fault)
			res.Assertions = append(res.Assertions, check.Fault(check.NameGCD, fault))
			break
		}
		a := check.GCD(f.WantGCD, got)
		res.GotGCD = &got
		res.GCDCorrect = a.Passed
		res.Assertions = append(res.Assertions, a)
	}

	switch {
	case c.LCM == nil:
		res.Assertions = append(res.Assertions, check.NotImplemented(check.NameLCM))
	default:
		got, fault := call(c.LCM, f.A, f.B)
		if fault != "" {
			faults = append(faults, fault)
			res.Assertions = append(res.Assertions, check.Fault(check.NameLCM, fault))
			break
		}
		a := check.LCM(f.WantLCM, got)
		res.GotLCM = &got
		res.LCMCorrect = a.Passed
		res.Assertions = append(res.Assertions, a)
	}

	switch {
	case len(faults) > 0:
		res.Outcome = domain.OutcomeFault
		res.Fault = faults[0]
	case !c.Implemented():
		res.Outcome = domain.OutcomeNotImplemented
	case res.GCDCorrect && res.LCMCorrect:
		res.Outcome = domain.OutcomePass
	default:
		res.Outcome = domain.OutcomeFail
	}

	return res
}

// call runs fn and converts a panic into a fault message.
func call[F ~func(int64, int64) int64](fn F, a, b int64) (got int64, fault string) {
	defer func() {
		if r := recover(); r != nil {
			got = 0
			fault = fmt.Sprint(r)
			if fault == "" {
				fault = "panic"
			}
		}
	}()
	return fn(a, b), ""
}
