package usecase

import (
	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/ports"
)

// InitWorkspace scaffolds euclid.yaml, suites/practice.yaml, runs/ and the
// log directory under a root. Existing files survive unless force is set.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force)
}
