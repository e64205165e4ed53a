package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/infra/config"
	"github.com/aalvaropc/euclid/internal/infra/fsworkspace"
	"github.com/aalvaropc/euclid/internal/infra/logger"
	"github.com/aalvaropc/euclid/internal/infra/workspacefinder"
	"github.com/aalvaropc/euclid/internal/lesson"
	"github.com/aalvaropc/euclid/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	closeLogger()
	if err != nil {
		os.Exit(1)
	}
}

var logCleanup func() error

// setupLogger writes logs under the enclosing workspace. Outside a workspace
// logging stays disabled so no stray .euclid directories are created.
func setupLogger(debug bool) string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	wd, _ = filepath.Abs(wd)

	root, ferr := workspacefinder.NewFinder().FindRoot(wd)
	if ferr != nil || root == "" {
		return ""
	}

	cleanup, err := logger.Setup(logger.Config{
		Root:  root,
		Debug: debug,
	})
	if err == nil {
		logCleanup = cleanup
	}
	return root
}

func closeLogger() {
	if logCleanup != nil {
		_ = logCleanup()
		logCleanup = nil
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "euclid",
		Short:        "euclid: learn and check GCD and LCM",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			root := setupLogger(debug)
			logger.L().Debug("cli.start", "command", cmd.CommandPath(), "workspace", root)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			finder := workspacefinder.NewFinder()

			cfg := domain.DefaultConfig()
			if wd, err := os.Getwd(); err == nil {
				if root, ferr := finder.FindRoot(wd); ferr == nil {
					if c, cerr := config.Load(root); cerr == nil {
						cfg = c
					}
				}
			}

			candidate, err := lesson.Lookup(cfg.Defaults.Candidate)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Candidate:            candidate,
				Operands:             cfg.Operands,
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .euclid/logs/euclid.log")

	cmd.AddCommand(
		calcCmd(),
		explainCmd(),
		verifyCmd(),
		validateCmd(),
		suitesCmd(),
		runsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
