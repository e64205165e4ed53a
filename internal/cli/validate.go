package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/euclid/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var suite string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check that a suite file's expected answers are correct",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspaceOptional(workspace)
			if err != nil {
				return err
			}

			ref, err := resolveSuite(ws, suite)
			if err != nil {
				return err
			}
			if ref.BuiltIn {
				fmt.Printf("OK (%s is built in)\n", ref.Name)
				return nil
			}

			uc := usecase.NewValidateSuite(ws.suites)
			s, err := uc.Execute(cmd.Context(), ref.Path)
			if err != nil {
				return err
			}

			fmt.Printf("OK (%s: %d fixture(s))\n", s.Name, len(s.Fixtures))
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&suite, "suite", "s", "", "Suite name or path (required)")

	_ = c.MarkFlagRequired("suite")
	return c
}
