package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/euclid/internal/domain"
)

// Apply evaluates a JSONPath expression against a saved report and returns the
// result rendered as text: scalars as-is, a single-element array unwrapped,
// everything else as indented JSON.
func Apply(report []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", &domain.OpError{
			Op:   "query.apply",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidConfig),
		}
	}

	doc, err := parseJSON(report)
	if err != nil {
		return "", &domain.OpError{
			Op:   "query.apply",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("report is not valid JSON: %w", err),
		}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", &domain.OpError{
			Op:   "query.apply",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}

	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "query.apply",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("jsonpath %q: no value found: %w", expr, domain.ErrNotFound),
		}
	}

	return toString(val)
}

// parseJSON keeps numbers as json.Number so int64 fields above 2^53 survive.
func parseJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the report")
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
