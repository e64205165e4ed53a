package usecase

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/ports"
)

type ValidateSuite struct {
	suites ports.SuiteLoader
}

func NewValidateSuite(sl ports.SuiteLoader) *ValidateSuite {
	return &ValidateSuite{suites: sl}
}

// Execute loads a suite file and checks every fixture's expectations against
// the reference arithmetic. All mismatches are reported, not just the first.
func (uc *ValidateSuite) Execute(ctx context.Context, path string) (domain.Suite, error) {
	suite, err := uc.suites.LoadSuite(path)
	if err != nil {
		return domain.Suite{}, err
	}

	if len(suite.Fixtures) == 0 {
		return suite, &domain.OpError{
			Op:   "suite.validate",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("suite %q has no fixtures: %w", suite.Name, domain.ErrInvalidConfig),
		}
	}

	var errs error
	for i, f := range suite.Fixtures {
		if err := ctx.Err(); err != nil {
			return suite, err
		}
		errs = multierr.Append(errs, checkFixture(i, f))
	}

	if errs != nil {
		return suite, &domain.OpError{
			Op:   "suite.validate",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  errs,
		}
	}
	return suite, nil
}

func checkFixture(i int, f domain.Fixture) error {
	var errs error

	if g := domain.GCD(f.A, f.B); g != f.WantGCD {
		errs = multierr.Append(errs, fmt.Errorf("fixture[%d] %q: gcd is %d, fixture expects %d", i, f.Name, g, f.WantGCD))
	}

	l, err := domain.CheckedLCM(f.A, f.B)
	switch {
	case err != nil:
		errs = multierr.Append(errs, fmt.Errorf("fixture[%d] %q: %w", i, f.Name, err))
	case l != f.WantLCM:
		errs = multierr.Append(errs, fmt.Errorf("fixture[%d] %q: lcm is %d, fixture expects %d", i, f.Name, l, f.WantLCM))
	}

	return errs
}
