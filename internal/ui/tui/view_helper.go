package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/euclid/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderCalculation(c domain.Calculation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("GCD(%d, %d) = %d\n", c.A, c.B, c.GCD))
	b.WriteString(fmt.Sprintf("LCM(%d, %d) = %d\n", c.A, c.B, c.LCM))

	if c.MultipleA != nil || c.MultipleB != nil {
		b.WriteString("\n")
	}
	if c.MultipleA != nil {
		b.WriteString(fmt.Sprintf("  %d ÷ %d = %d\n", c.LCM, c.A, *c.MultipleA))
	}
	if c.MultipleB != nil {
		b.WriteString(fmt.Sprintf("  %d ÷ %d = %d\n", c.LCM, c.B, *c.MultipleB))
	}

	if c.MultipleA != nil && c.MultipleB != nil && c.LCM > 0 {
		b.WriteString("\nMultiples:\n")
		b.WriteString(fmt.Sprintf("  %d: %s\n", c.A, multiplesUpTo(c.A, c.LCM)))
		b.WriteString(fmt.Sprintf("  %d: %s\n", c.B, multiplesUpTo(c.B, c.LCM)))
	}

	if len(c.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for i, s := range c.Steps {
			b.WriteString(fmt.Sprintf("  %d. %d = %d × %d + %d\n", i+1, s.A, s.B, s.A/s.B, s.Remainder))
		}
	}

	return b.String()
}

const shownMultiples = 6

// multiplesUpTo lists the first multiples of n and ends with the LCM marked by
// a star. Long runs are elided.
func multiplesUpTo(n, lcm int64) string {
	step := domain.Multiples(n, 1)[0]
	count := shownMultiples
	if k := lcm / step; k < int64(count) {
		count = int(k)
	}

	var parts []string
	for _, m := range domain.Multiples(n, count) {
		if m == lcm {
			break
		}
		parts = append(parts, fmt.Sprint(m))
	}
	if int64(count) < lcm/step {
		parts = append(parts, "…")
	}
	parts = append(parts, fmt.Sprintf("%d*", lcm))
	return strings.Join(parts, ", ")
}

func (m model) outcomeBadge(o domain.Outcome) string {
	switch o {
	case domain.OutcomePass:
		return m.theme.Pass.Render("PASS")
	case domain.OutcomeFail:
		return m.theme.Fail.Render("FAIL")
	case domain.OutcomeNotImplemented:
		return m.theme.Todo.Render("TODO")
	case domain.OutcomeFault:
		return m.theme.Fail.Render("PANIC")
	default:
		return strings.ToUpper(string(o))
	}
}

func (m model) renderReport(r domain.Report, id string) string {
	var b strings.Builder

	for _, res := range r.Results {
		line := fmt.Sprintf("%s  %s", m.outcomeBadge(res.Outcome), res.Fixture.Name)
		b.WriteString(line)
		b.WriteString("\n")

		if res.Outcome == domain.OutcomePass || res.Outcome == domain.OutcomeNotImplemented {
			continue
		}
		for _, a := range res.Assertions {
			if a.Passed {
				continue
			}
			b.WriteString("      ")
			b.WriteString(clampString(a.Message, 72))
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nScore: %d/%d passed\n", r.Passed(), r.Total()))
	if !r.Implemented() {
		b.WriteString(m.theme.Todo.Render("Not implemented yet: " + strings.Join(r.Missing, ", ")))
		b.WriteString("\n")
	}
	if id != "" {
		b.WriteString(m.theme.Help.Render("Saved as " + id))
		b.WriteString("\n")
	}

	return b.String()
}
