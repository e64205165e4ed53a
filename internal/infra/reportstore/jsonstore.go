package reportstore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/infra/logger"
	"github.com/aalvaropc/euclid/internal/ports"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"
)

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
	log         *slog.Logger
}

type Option func(*JSONStore)

// WithIndex toggles the JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithLogger overrides the process logger for index warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *JSONStore) { s.log = l }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  true,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.ReportStore  = (*JSONStore)(nil)
	_ ports.ReportReader = (*JSONStore)(nil)
)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.runsDirName)
}

func (s *JSONStore) SaveReport(report domain.Report) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := report
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	suitePart := report.SuiteName
	if strings.TrimSpace(suitePart) == "" {
		suitePart = strings.TrimSuffix(filepath.Base(report.SuitePath), filepath.Ext(report.SuitePath))
	}
	slug := slugify(suitePart)
	if slug == "" {
		slug = "report"
	}

	id := uniqueID(dir, fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug))
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		s.indexOrWarn(dir, domain.ReportRef{
			ID:        id,
			File:      filename,
			Suite:     toSave.SuiteName,
			Candidate: toSave.Candidate,
			Passed:    toSave.Passed(),
			Total:     toSave.Total(),
			StartedAt: toSave.StartedAt,
		})
	}

	return id, nil
}

// uniqueID appends _2, _3, ... when a report with the same base id exists.
func uniqueID(dir, base string) string {
	id := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, id+".json")); errors.Is(err, fs.ErrNotExist) {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

// indexOrWarn records the report in the index. The report file is already on
// disk, so a failure is logged and the save still succeeds.
func (s *JSONStore) indexOrWarn(dir string, ref domain.ReportRef) {
	err := s.appendIndex(dir, ref)
	if err == nil {
		return
	}
	log := s.log
	if log == nil {
		log = logger.L()
	}
	log.Warn("reportstore.index.failed",
		"id", ref.ID,
		"index", filepath.Join(dir, indexFile),
		"err", err,
	)
}

func (s *JSONStore) appendIndex(dir string, ref domain.ReportRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ListReports returns the indexed reports, newest first. A missing index means
// no reports yet. Malformed index lines are skipped.
func (s *JSONStore) ListReports() ([]domain.ReportRef, error) {
	indexPath := filepath.Join(s.dir(), indexFile)
	b, err := os.ReadFile(indexPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.ReportRef{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "reportstore.list",
			Kind: domain.KindExecution,
			Path: indexPath,
			Err:  err,
		}
	}

	refs := []domain.ReportRef{}
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var ref domain.ReportRef
		if err := json.Unmarshal(line, &ref); err != nil || ref.ID == "" {
			continue
		}
		refs = append(refs, ref)
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].StartedAt.After(refs[j].StartedAt) })
	return refs, nil
}

func (s *JSONStore) LoadReport(id string) ([]byte, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".json")
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("invalid report id %q: %w", id, domain.ErrInvalidConfig),
		}
	}

	path := filepath.Join(s.dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
			err = fmt.Errorf("report %q: %w", id, domain.ErrNotFound)
		}
		return nil, &domain.OpError{
			Op:   "reportstore.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
