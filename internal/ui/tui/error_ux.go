package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/euclid/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into one short line for the status area.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlsuite") || strings.Contains(oe.Op, "suite.") {
				return "Suite not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidOperand:
			if oe.Err != nil {
				return oe.Err.Error()
			}
			return "Invalid number"

		case domain.KindOverflow:
			return "The LCM is too big for a 64-bit integer"

		case domain.KindNotImplemented:
			return "Not implemented yet"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrOverflow) {
		return "The LCM is too big for a 64-bit integer"
	}
	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
