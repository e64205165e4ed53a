package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/infra/config"
	"github.com/aalvaropc/euclid/internal/infra/reportstore"
	"github.com/aalvaropc/euclid/internal/ports"
	"github.com/aalvaropc/euclid/internal/usecase"
)

const verifyTimeout = 30 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

// cmdInitWorkspaceHere never overwrites files that already exist.
func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func listenVerify(ch <-chan verifyDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return verifyDoneMsg{err: errors.New("verify channel closed")}
		}
		return msg
	}
}

// startVerifyAsync checks the candidate against a built-in suite in the
// background. Reports are saved under workspaceRoot when it is not empty.
func startVerifyAsync(
	workspaceRoot, suiteName string,
	candidate domain.Candidate,
	log *slog.Logger,
	debug bool,
) (chan verifyDoneMsg, tea.Cmd) {
	ch := make(chan verifyDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("verify.start",
			"workspace", workspaceRoot,
			"suite", suiteName,
			"candidate", candidate.Name,
			"debug", debug,
		)

		var store ports.ReportStore
		if workspaceRoot != "" {
			cfg, err := config.Load(workspaceRoot)
			if err != nil && !domain.IsKind(err, domain.KindNotFound) {
				log.Error("verify.load_config.failed", "err", err)
				ch <- verifyDoneMsg{suite: suiteName, err: err}
				return
			}
			store = reportstore.NewJSONStore(workspaceRoot, cfg, reportstore.WithIndex(true))
		}

		uc := usecase.NewRunSuite(nil, store)

		ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		defer cancel()

		ref := domain.SuiteRef{Name: suiteName, BuiltIn: true}
		report, id, execErr := uc.Execute(ctx, ref, candidate)

		if execErr != nil {
			log.Error("verify.failed", "err", execErr, "saved_id", id)
		} else {
			log.Info("verify.ok",
				"saved_id", id,
				"passed", report.Passed(),
				"total", report.Total(),
			)
		}

		if debug {
			for _, res := range report.Results {
				if res.Passed() {
					continue
				}
				log.Debug("fixture.not_passed",
					"name", res.Fixture.Name,
					"outcome", string(res.Outcome),
					"fault", res.Fault,
				)
			}
		}

		ch <- verifyDoneMsg{suite: suiteName, report: report, id: id, err: execErr}
	}()

	return ch, listenVerify(ch)
}
