package usecase

import (
	"context"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/ports"
)

// --- fakes shared by the use case tests ---

type fakeSuiteLoader struct {
	suite domain.Suite
	err   error
	paths []string
}

func (f *fakeSuiteLoader) LoadSuite(path string) (domain.Suite, error) {
	f.paths = append(f.paths, path)
	return f.suite, f.err
}

func (f *fakeSuiteLoader) ListSuites(_ string) ([]domain.SuiteRef, error) {
	return nil, nil
}

type fakeStore struct {
	saved bool
	last  domain.Report
	err   error
}

func (s *fakeStore) SaveReport(r domain.Report) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = r
	return "run-123", nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}

// naiveLCM is the textbook a*b/gcd(a,b) without a zero guard.
func naiveLCM(a, b int64) int64 {
	return a * b / domain.GCD(a, b)
}

// wrongGCD returns the smaller operand.
func wrongGCD(a, b int64) int64 {
	return min(a, b)
}

// cancellingGCD cancels the run after its first call.
func cancellingGCD(cancel context.CancelFunc) domain.GCDFunc {
	return func(a, b int64) int64 {
		cancel()
		return domain.GCD(a, b)
	}
}

var (
	_ ports.SuiteLoader          = (*fakeSuiteLoader)(nil)
	_ ports.ReportStore          = (*fakeStore)(nil)
	_ ports.WorkspaceInitializer = (*fakeInitializer)(nil)
)
