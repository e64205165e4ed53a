package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/infra/config"
	"github.com/aalvaropc/euclid/internal/infra/reportstore"
	"github.com/aalvaropc/euclid/internal/infra/workspacefinder"
	"github.com/aalvaropc/euclid/internal/infra/yamlsuite"
	"github.com/aalvaropc/euclid/internal/ports"
)

type workspaceCtx struct {
	// root is empty when running outside a workspace.
	root string
	cfg  domain.Config

	suites  ports.SuiteLoader
	store   ports.ReportStore
	reports ports.ReportReader
}

func (ws *workspaceCtx) inWorkspace() bool {
	return ws.root != ""
}

// loadWorkspace requires a workspace (explicit or autodetected).
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}
	return openWorkspace(root)
}

// loadWorkspaceOptional falls back to defaults with built-in suites only and no
// report store when no workspace can be found.
func loadWorkspaceOptional(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		if strings.TrimSpace(workspaceFlag) != "" {
			return nil, err
		}
		cfg := domain.DefaultConfig()
		return &workspaceCtx{
			cfg:    cfg,
			suites: yamlsuite.NewLoader(yamlsuite.WithSuitesDir(cfg.Paths.SuitesDir)),
		}, nil
	}
	return openWorkspace(root)
}

func openWorkspace(root string) (*workspaceCtx, error) {
	cfg, err := config.Load(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	suiteLoader := yamlsuite.NewLoader(
		yamlsuite.WithSuitesDir(cfg.Paths.SuitesDir),
	)

	store := reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		suites:  suiteLoader,
		store:   store,
		reports: store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `euclid init`): %w", wd, err)
	}
	return root, nil
}

// resolveSuite maps a -s argument to a suite reference. Resolution order:
// explicit path, built-in name, file under the suites dir, suite "name" field.
func resolveSuite(ws *workspaceCtx, arg string) (domain.SuiteRef, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Suite
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) && ws.inWorkspace() {
			p = filepath.Join(ws.root, p)
		}
		p = filepath.Clean(p)
		return domain.SuiteRef{Name: strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)), Path: p}, nil
	}

	if _, ok := domain.BuiltInSuite(strings.ToLower(in)); ok {
		return domain.SuiteRef{Name: strings.ToLower(in), BuiltIn: true}, nil
	}

	if !ws.inWorkspace() {
		if hasYAMLExt(in) && fileExists(in) {
			return domain.SuiteRef{Name: strings.TrimSuffix(in, filepath.Ext(in)), Path: in}, nil
		}
		return domain.SuiteRef{}, &domain.OpError{
			Op:   "cli.resolve_suite",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("suite %q is not built in and no workspace was found (tip: run `euclid init`): %w", in, domain.ErrNotFound),
		}
	}

	suitesDir := filepath.Join(ws.root, ws.cfg.Paths.SuitesDir)

	// If user provided "practice.yaml", treat it as file under suites dir.
	if hasYAMLExt(in) {
		p := filepath.Join(suitesDir, in)
		if fileExists(p) {
			return domain.SuiteRef{Name: strings.TrimSuffix(in, filepath.Ext(in)), Path: p}, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(suitesDir, in+ext)
		if fileExists(p) {
			return domain.SuiteRef{Name: in, Path: p}, nil
		}
	}

	// As a last resort: match by suite "name" field.
	refs, err := ws.suites.ListSuites(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r, nil
			}
		}
	}

	return domain.SuiteRef{}, &domain.OpError{
		Op:   "cli.resolve_suite",
		Kind: domain.KindNotFound,
		Path: suitesDir,
		Err:  fmt.Errorf("suite %q: %w", in, domain.ErrNotFound),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
