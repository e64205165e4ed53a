package tui

import (
	"log/slog"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// Candidate is checked by the verify screens. A zero value falls back to
	// the reference implementation.
	Candidate domain.Candidate
	Operands  domain.OperandsConfig

	Logger *slog.Logger
	Debug  bool
}
