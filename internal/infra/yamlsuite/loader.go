package yamlsuite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	suitesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{suitesDir: "suites"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithSuitesDir(dir string) Option {
	return func(l *Loader) { l.suitesDir = dir }
}

var _ ports.SuiteLoader = (*Loader)(nil)

func (l *Loader) LoadSuite(path string) (domain.Suite, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Suite{}, &domain.OpError{
			Op:   "yamlsuite.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ys yamlSuite
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Suite{}, &domain.OpError{
			Op:   "yamlsuite.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, ys)
}

func (l *Loader) ListSuites(root string) ([]domain.SuiteRef, error) {
	dir := filepath.Join(root, l.suitesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlsuite.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.SuiteRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readSuiteName(p)
		if strings.TrimSpace(n) == "" {
			n = stem(name)
		}

		refs = append(refs, domain.SuiteRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readSuiteName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlSuite struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Fixtures    []yamlFixture `yaml:"fixtures"`
}

// Numeric fields are pointers so a missing key is told apart from zero.
type yamlFixture struct {
	Name string `yaml:"name"`
	A    *int64 `yaml:"a"`
	B    *int64 `yaml:"b"`
	GCD  *int64 `yaml:"gcd"`
	LCM  *int64 `yaml:"lcm"`
}

func mapAndValidate(path string, ys yamlSuite) (domain.Suite, error) {
	name := strings.TrimSpace(ys.Name)
	if name == "" {
		name = stem(filepath.Base(path))
	}

	if len(ys.Fixtures) == 0 {
		return domain.Suite{}, invalidField(path, "fixtures", "at least one fixture is required")
	}

	s := domain.Suite{
		Name:        name,
		Description: strings.TrimSpace(ys.Description),
		Fixtures:    make([]domain.Fixture, 0, len(ys.Fixtures)),
	}

	for i, f := range ys.Fixtures {
		fieldPrefix := fmt.Sprintf("fixtures[%d]", i)

		for _, req := range []struct {
			key string
			val *int64
		}{
			{"a", f.A},
			{"b", f.B},
			{"gcd", f.GCD},
			{"lcm", f.LCM},
		} {
			if req.val == nil {
				return domain.Suite{}, invalidField(path, fieldPrefix+"."+req.key, "value is required")
			}
		}

		fx := domain.Fixture{
			Name:    strings.TrimSpace(f.Name),
			A:       *f.A,
			B:       *f.B,
			WantGCD: *f.GCD,
			WantLCM: *f.LCM,
		}
		if fx.Name == "" {
			fx.Name = domain.FixtureName(fx.A, fx.B)
		}

		s.Fixtures = append(s.Fixtures, fx)
	}

	return s, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlsuite.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
