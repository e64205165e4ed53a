package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/infra/logger"
	"github.com/aalvaropc/euclid/internal/usecase"
)

func calcCmd() *cobra.Command {
	var workspace string
	var format string

	c := &cobra.Command{
		Use:   "calc A B [C...]",
		Short: "Compute the GCD and LCM of two or more whole numbers",
		Example: `  euclid calc 12 18
  euclid calc 4 6 10 --format json
  euclid calc -- -12 18    # "--" lets the first number be negative`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			nums, err := parseOperands(args)
			if err != nil {
				return err
			}

			ws, err := loadWorkspaceOptional(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewCalculate(ws.cfg.Operands)

			if len(nums) == 2 {
				out, err := uc.Execute(nums[0], nums[1])
				if err != nil {
					return err
				}
				logger.L().Info("calc.done", "a", out.A, "b", out.B, "gcd", out.GCD, "lcm", out.LCM)
				return printCalculation(os.Stdout, out, format)
			}

			out, err := uc.ExecuteMany(nums)
			if err != nil {
				return err
			}
			logger.L().Info("calc.done", "operands", len(out.Operands), "gcd", out.GCD, "lcm", out.LCM)
			return printListCalculation(os.Stdout, out, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

func explainCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "explain A B",
		Short: "Show every step of Euclid's algorithm for two numbers",
		Example: `  euclid explain 48 18
  euclid explain -- -48 18`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			nums, err := parseOperands(args)
			if err != nil {
				return err
			}
			a, b := nums[0], nums[1]

			printSteps(os.Stdout, a, b, domain.EuclidSteps(a, b))

			if l, err := domain.CheckedLCM(a, b); err == nil && a != 0 && b != 0 {
				fmt.Println()
				printMultiples(os.Stdout, a, b, l)
				fmt.Printf("LCM = |%d × %d| / %d = %d\n", a, b, domain.GCD(a, b), l)
			}
			return nil
		},
	}
	return c
}

func parseOperands(args []string) ([]int64, error) {
	out := make([]int64, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "cli.parse_operands",
				Kind: domain.KindInvalidOperand,
				Err:  fmt.Errorf("%q is not a whole number: %w", a, domain.ErrInvalidOperand),
			}
		}
		out = append(out, n)
	}
	return out, nil
}
