package ports

import "github.com/aalvaropc/euclid/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
