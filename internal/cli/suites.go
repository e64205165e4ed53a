package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/euclid/internal/domain"
)

func suitesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "suites",
		Short: "Manage fixture suites",
	}

	c.AddCommand(suitesListCmd())
	return c
}

func suitesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and workspace suites",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspaceOptional(workspace)
			if err != nil {
				return err
			}

			var refs []domain.SuiteRef
			if ws.inWorkspace() {
				refs, err = ws.suites.ListSuites(ws.root)
				if err != nil && !domain.IsKind(err, domain.KindNotFound) {
					return err
				}
			}

			printSuites(os.Stdout, ws.root, ws.cfg.Defaults.Suite, refs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func printSuites(w io.Writer, root string, defaultSuite string, refs []domain.SuiteRef) {
	if root != "" {
		fmt.Fprintf(w, "Workspace: %s\n", root)
	}
	fmt.Fprintf(w, "Default:   %s\n\n", defaultSuite)

	fmt.Fprintln(w, "Built in:")
	for _, r := range domain.BuiltInSuiteRefs() {
		s, _ := domain.BuiltInSuite(r.Name)
		fmt.Fprintf(w, "- %s  (%d fixtures) %s\n", s.Name, len(s.Fixtures), s.Description)
	}

	if root == "" {
		return
	}

	fmt.Fprintln(w, "\nWorkspace:")
	if len(refs) == 0 {
		fmt.Fprintln(w, "(no suites found)")
		return
	}
	for _, r := range refs {
		rel, err := filepath.Rel(root, r.Path)
		if err != nil {
			rel = r.Path
		}
		fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
	}
}
