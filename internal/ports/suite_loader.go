package ports

import "github.com/aalvaropc/euclid/internal/domain"

// SuiteLoader loads fixture suites from a source (e.g., filesystem).
type SuiteLoader interface {
	LoadSuite(path string) (domain.Suite, error)
	ListSuites(root string) ([]domain.SuiteRef, error)
}
