package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/infra/logger"
	"github.com/aalvaropc/euclid/internal/lesson"
	"github.com/aalvaropc/euclid/internal/usecase"
)

func verifyCmd() *cobra.Command {
	var workspace string
	var suite string
	var candidate string
	var bonus bool
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "verify",
		Short: "Check a GCD/LCM implementation against a fixture suite",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspaceOptional(workspace)
			if err != nil {
				return err
			}

			if bonus {
				suite = domain.SuiteBonus
			}
			ref, err := resolveSuite(ws, suite)
			if err != nil {
				return err
			}

			name := candidate
			if name == "" {
				name = ws.cfg.Defaults.Candidate
			}
			cand, err := lesson.Lookup(name)
			if err != nil {
				return err
			}

			var store = ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewRunSuite(ws.suites, store)

			report, runID, err := uc.Execute(cmd.Context(), ref, cand)
			if err != nil {
				// Print what we have (partial or unsaved report) and return the error.
				if report.Total() > 0 {
					_ = printReport(os.Stdout, report, runID, format)
				}
				return err
			}

			logger.L().Info("verify.done",
				"suite", report.SuiteName,
				"candidate", report.Candidate,
				"passed", report.Passed(),
				"total", report.Total(),
				"run_id", runID,
			)

			if err := printReport(os.Stdout, report, runID, format); err != nil {
				return err
			}
			return verdict(report)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&suite, "suite", "s", "", "Suite name or path (defaults to the workspace default suite)")
	c.Flags().StringVar(&candidate, "candidate", "", "Implementation to check: reference|student (defaults to the workspace default)")
	c.Flags().BoolVar(&bonus, "bonus", false, "Run the bonus edge-case suite")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under runs/")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}
