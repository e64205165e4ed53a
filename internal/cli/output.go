package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aalvaropc/euclid/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printReport(w io.Writer, report domain.Report, runID string, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		// Include runID (optional) as a wrapper to avoid changing domain model.
		return writeJSON(w, map[string]any{
			"run_id": runID,
			"report": report,
		})
	}
	printPrettyReport(w, report, runID)
	return nil
}

func printPrettyReport(w io.Writer, report domain.Report, runID string) {
	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Suite:      %s\n", report.SuiteName)
	fmt.Fprintf(w, "Candidate:  %s\n", report.Candidate)
	fmt.Fprintf(w, "Started:    %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:   %s\n", total)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:     %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, r := range report.Results {
		fmt.Fprintf(w, "- [%s] %s: gcd(%d, %d)=%d, lcm=%d\n",
			outcomeLabel(r.Outcome), r.Fixture.Name, r.Fixture.A, r.Fixture.B, r.Fixture.WantGCD, r.Fixture.WantLCM)
		if r.Outcome == domain.OutcomePass {
			continue
		}
		for _, a := range r.Assertions {
			mark := "✓"
			if !a.Passed {
				mark = "✗"
			}
			fmt.Fprintf(w, "    %s %s: %s\n", mark, a.Name, a.Message)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Score: %d/%d passed\n", report.Passed(), report.Total())
	if n := report.Count(domain.OutcomeFault); n > 0 {
		fmt.Fprintf(w, "Faults: %d fixture(s) panicked\n", n)
	}
	if !report.Implemented() {
		fmt.Fprintf(w, "Not implemented yet: %s (see internal/lesson/student.go)\n", strings.Join(report.Missing, ", "))
	}
}

func outcomeLabel(o domain.Outcome) string {
	switch o {
	case domain.OutcomePass:
		return "PASS"
	case domain.OutcomeFail:
		return "FAIL"
	case domain.OutcomeNotImplemented:
		return "TODO"
	case domain.OutcomeFault:
		return "PANIC"
	default:
		return strings.ToUpper(string(o))
	}
}

// verdict turns a finished report into the command's exit error.
func verdict(report domain.Report) error {
	if !report.Implemented() {
		return &domain.OpError{
			Op:   "verify",
			Kind: domain.KindNotImplemented,
			Err:  fmt.Errorf("%s: %w", strings.Join(report.Missing, ", "), domain.ErrNotImplemented),
		}
	}
	if fails := report.Total() - report.Passed(); fails > 0 {
		return fmt.Errorf("verification failed (%d of %d fixture(s) did not pass)", fails, report.Total())
	}
	if report.Total() == 0 {
		return fmt.Errorf("verification failed (suite has no fixtures)")
	}
	return nil
}

func printCalculation(w io.Writer, c domain.Calculation, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, c)
	}

	fmt.Fprintf(w, "GCD(%d, %d) = %d\n", c.A, c.B, c.GCD)
	fmt.Fprintf(w, "LCM(%d, %d) = %d\n", c.A, c.B, c.LCM)
	if c.MultipleA != nil {
		fmt.Fprintf(w, "  %d = %d × %d\n", c.LCM, c.A, *c.MultipleA)
	}
	if c.MultipleB != nil {
		fmt.Fprintf(w, "  %d = %d × %d\n", c.LCM, c.B, *c.MultipleB)
	}
	return nil
}

func printListCalculation(w io.Writer, c domain.ListCalculation, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, c)
	}

	nums := make([]string, 0, len(c.Operands))
	for _, n := range c.Operands {
		nums = append(nums, fmt.Sprint(n))
	}
	list := strings.Join(nums, ", ")
	fmt.Fprintf(w, "GCD(%s) = %d\n", list, c.GCD)
	fmt.Fprintf(w, "LCM(%s) = %d\n", list, c.LCM)
	return nil
}

func printSteps(w io.Writer, a, b int64, steps []domain.Step) {
	fmt.Fprintf(w, "Euclid's algorithm for %d and %d:\n", a, b)
	if len(steps) == 0 {
		fmt.Fprintf(w, "  the second number is 0, so the answer is |%d| = %d\n", a, domain.GCD(a, b))
		return
	}
	for i, s := range steps {
		q := int64(0)
		if s.B != 0 {
			q = s.A / s.B
		}
		fmt.Fprintf(w, "  %d. %d = %d × %d + %d\n", i+1, s.A, s.B, q, s.Remainder)
	}
	last := steps[len(steps)-1]
	fmt.Fprintf(w, "The remainder is 0, so GCD = %d\n", last.B)
}

const maxShownMultiples = 8

// printMultiples lists multiples of each operand up to their LCM, which is
// marked in brackets. Nothing is printed when an operand is zero.
func printMultiples(w io.Writer, a, b, lcm int64) {
	if a == 0 || b == 0 || lcm <= 0 {
		return
	}
	fmt.Fprintln(w, "Multiples:")
	for _, n := range []int64{a, b} {
		fmt.Fprintf(w, "  %d: %s\n", n, formatMultiples(n, lcm))
	}
	fmt.Fprintf(w, "The smallest common multiple is %d\n", lcm)
}

func formatMultiples(n, lcm int64) string {
	step := domain.Multiples(n, 1)[0]
	count := maxShownMultiples
	if k := lcm / step; k < int64(count) {
		count = int(k)
	}

	ms := domain.Multiples(n, count)
	parts := make([]string, 0, len(ms)+2)
	for _, m := range ms {
		if m == lcm {
			parts = append(parts, fmt.Sprintf("[%d]", m))
			return strings.Join(parts, ", ")
		}
		parts = append(parts, fmt.Sprint(m))
	}
	parts = append(parts, "…", fmt.Sprintf("[%d]", lcm))
	return strings.Join(parts, ", ")
}
