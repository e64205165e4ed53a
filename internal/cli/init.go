package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/euclid/internal/infra/fsworkspace"
	"github.com/aalvaropc/euclid/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a euclid workspace (euclid.yaml, suites/, runs/)",
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Printf("Workspace ready at %s\n", root)
			fmt.Println("Next: write your functions in internal/lesson/student.go, then run `euclid verify --candidate student`.")
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
