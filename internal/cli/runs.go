package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/usecase/query"
)

func runsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Browse saved verification reports",
	}

	c.AddCommand(runsListCmd(), runsShowCmd())
	return c
}

func runsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved reports, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.reports.ListReports()
			if err != nil {
				return err
			}

			printRunRefs(os.Stdout, refs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func runsShowCmd() *cobra.Command {
	var workspace string
	var expr string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a saved report (use 'latest' for the newest one)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			id, err := resolveRunID(ws, args[0])
			if err != nil {
				return err
			}

			b, err := ws.reports.LoadReport(id)
			if err != nil {
				return err
			}

			if strings.TrimSpace(expr) == "" {
				_, err = os.Stdout.Write(b)
				return err
			}

			out, err := query.Apply(b, expr)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&expr, "query", "q", "", "JSONPath expression to evaluate against the report, e.g. $.results[*].outcome")
	return cmd
}

func resolveRunID(ws *workspaceCtx, arg string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(arg), "latest") {
		return arg, nil
	}

	refs, err := ws.reports.ListReports()
	if err != nil {
		return "", err
	}
	if len(refs) == 0 {
		return "", &domain.OpError{
			Op:   "cli.resolve_run",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("no saved reports yet: %w", domain.ErrNotFound),
		}
	}
	return refs[0].ID, nil
}

func printRunRefs(w io.Writer, refs []domain.ReportRef) {
	if len(refs) == 0 {
		fmt.Fprintln(w, "(no reports found)")
		return
	}
	for _, r := range refs {
		fmt.Fprintf(w, "- %s  %s  %s/%s  %d/%d\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.Suite, r.Candidate, r.Passed, r.Total)
	}
}
