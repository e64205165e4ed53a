package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/ports"
)

type RunSuite struct {
	suites ports.SuiteLoader
	store  ports.ReportStore
}

// NewRunSuite wires the suite runner. store may be nil, in which case reports
// are not persisted.
func NewRunSuite(sl ports.SuiteLoader, store ports.ReportStore) *RunSuite {
	return &RunSuite{
		suites: sl,
		store:  store,
	}
}

// Execute resolves the suite, verifies the candidate against it and saves the
// report. The report is returned even when saving fails so callers can print it.
func (uc *RunSuite) Execute(ctx context.Context, ref domain.SuiteRef, c domain.Candidate) (domain.Report, string, error) {
	suite, err := uc.resolve(ref)
	if err != nil {
		return domain.Report{}, "", err
	}

	report, err := Verify(ctx, suite.Fixtures, c)
	report.SuiteName = suite.Name
	report.SuitePath = ref.Path
	if err != nil {
		return report, "", err
	}

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	return report, id, nil
}

func (uc *RunSuite) resolve(ref domain.SuiteRef) (domain.Suite, error) {
	if ref.BuiltIn {
		s, ok := domain.BuiltInSuite(ref.Name)
		if !ok {
			return domain.Suite{}, &domain.OpError{
				Op:   "suite.resolve",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("built-in suite %q: %w", ref.Name, domain.ErrNotFound),
			}
		}
		return s, nil
	}

	if uc.suites == nil {
		return domain.Suite{}, &domain.OpError{
			Op:   "suite.resolve",
			Kind: domain.KindInvalidConfig,
			Path: ref.Path,
			Err:  fmt.Errorf("no suite loader configured: %w", domain.ErrInvalidConfig),
		}
	}
	return uc.suites.LoadSuite(ref.Path)
}
