package reportstore

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/euclid/internal/domain"
)

func sampleReport(start time.Time) domain.Report {
	got := int64(6)
	return domain.Report{
		ID:        "0b9c3c1e-0000-4000-8000-000000000001",
		SuiteName: "Lesson 1",
		Candidate: "student",
		Missing:   []string{"lcm"},
		StartedAt: start,
		EndedAt:   start.Add(time.Millisecond),
		Results: []domain.FixtureResult{
			{
				Index:      0,
				Fixture:    domain.Fixture{Name: "12 and 18", A: 12, B: 18, WantGCD: 6, WantLCM: 36},
				GotGCD:     &got,
				GCDCorrect: true,
				Outcome:    domain.OutcomeNotImplemented,
				Assertions: []domain.AssertionResult{
					{Name: "gcd", Passed: true, Message: "gcd 6"},
					{Name: "lcm", Passed: false, Message: "lcm is not implemented yet"},
				},
			},
		},
	}
}

func TestSaveReport_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveReport(sampleReport(start))
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}

	wantFile := filepath.Join(tmp, "runs", "20260203T101112Z_lesson-1.json")
	if _, err := os.Stat(wantFile); err != nil {
		t.Fatalf("expected file at %s, stat err=%v (id=%s)", wantFile, err, id)
	}

	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.Report
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.SuiteName != "Lesson 1" {
		t.Fatalf("expected suite name, got=%q", decoded.SuiteName)
	}
	if len(decoded.Results) != 1 || *decoded.Results[0].GotGCD != 6 {
		t.Fatalf("unexpected results: %+v", decoded.Results)
	}
	if decoded.Results[0].GotLCM != nil {
		t.Fatalf("expected missing lcm to stay absent")
	}
}

func TestSaveReport_UsesUniqueFilenameOnCollision(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id1, err := store.SaveReport(sampleReport(start))
	if err != nil {
		t.Fatalf("SaveReport #1 error: %v", err)
	}
	id2, err := store.SaveReport(sampleReport(start))
	if err != nil {
		t.Fatalf("SaveReport #2 error: %v", err)
	}
	if id2 != id1+"_2" {
		t.Fatalf("expected second id %q, got %q", id1+"_2", id2)
	}
	if _, err := os.Stat(filepath.Join(tmp, "runs", id2+".json")); err != nil {
		t.Fatalf("expected second file, stat err=%v", err)
	}
}

func TestSaveReport_UsesNowWhenStartMissing(t *testing.T) {
	tmp := t.TempDir()
	fixed := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return fixed }))

	r := sampleReport(time.Time{})
	r.SuiteName = ""
	r.SuitePath = "suites/extra.yaml"

	id, err := store.SaveReport(r)
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if id != "20260506T070809Z_extra" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestListReports_NewestFirst(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	if _, err := store.SaveReport(sampleReport(older)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.SaveReport(sampleReport(newer)); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Garbage lines are ignored.
	f, err := os.OpenFile(filepath.Join(tmp, "runs", "index.jsonl"), os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	_, _ = f.WriteString("not json\n\n")
	_ = f.Close()

	refs, err := store.ListReports()
	if err != nil {
		t.Fatalf("ListReports error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if !refs[0].StartedAt.Equal(newer) {
		t.Fatalf("expected newest first, got %v", refs[0].StartedAt)
	}
	if refs[0].Passed != 0 || refs[0].Total != 1 || refs[0].Candidate != "student" {
		t.Fatalf("unexpected index entry: %+v", refs[0])
	}
}

func TestListReports_NoIndex(t *testing.T) {
	refs, err := NewJSONStore(t.TempDir(), domain.DefaultConfig()).ListReports()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected no refs, got %d", len(refs))
	}
}

func TestListReports_IndexDisabled(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndex(false))

	if _, err := store.SaveReport(sampleReport(time.Now())); err != nil {
		t.Fatalf("save: %v", err)
	}
	refs, err := store.ListReports()
	if err != nil {
		t.Fatalf("ListReports error: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected empty list without index, got %d", len(refs))
	}
}

func TestLoadReport(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	id, err := store.SaveReport(sampleReport(time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := store.LoadReport(id + ".json")
	if err != nil {
		t.Fatalf("LoadReport error: %v", err)
	}
	var decoded domain.Report
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Candidate != "student" {
		t.Fatalf("unexpected report: %+v", decoded)
	}
}

func TestLoadReport_Errors(t *testing.T) {
	store := NewJSONStore(t.TempDir(), domain.DefaultConfig())

	if _, err := store.LoadReport("missing"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if _, err := store.LoadReport("../etc/passwd"); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Lesson 1":      "lesson-1",
		"  bonus  ":     "bonus",
		"A__b..c":       "a-b-c",
		"¡Hola!":        "hola",
		"":              "",
		"--edge--case-": "edge-case",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestSaveReport_IndexFailureIsLoggedNotFatal(t *testing.T) {
	tmp := t.TempDir()
	runs := filepath.Join(tmp, "runs")
	// A directory where the index file should be makes the append fail.
	if err := os.MkdirAll(filepath.Join(runs, indexFile), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var logs bytes.Buffer
	store := NewJSONStore(tmp, domain.DefaultConfig(),
		WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))),
	)

	id, err := store.SaveReport(sampleReport(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(runs, id+".json")); err != nil {
		t.Fatalf("report file missing: %v", err)
	}

	out := logs.String()
	if !strings.Contains(out, "reportstore.index.failed") || !strings.Contains(out, id) {
		t.Fatalf("expected index warning for %s, got: %s", id, out)
	}
}
