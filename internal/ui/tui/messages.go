package tui

import "github.com/aalvaropc/euclid/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type verifyDoneMsg struct {
	suite  string
	report domain.Report
	id     string
	err    error
}
