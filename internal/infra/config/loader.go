package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/aalvaropc/euclid/internal/domain"
)

const (
	// FileName is the workspace marker and config file.
	FileName = "euclid.yaml"

	// EnvPrefix scopes environment overrides, e.g. EUCLID_DEFAULTS_SUITE.
	EnvPrefix = "EUCLID"

	rootKey = "euclid"
)

// keys lists every setting that can be overridden from the environment.
var keys = []string{
	"defaults.suite",
	"defaults.candidate",
	"paths.suites_dir",
	"paths.runs_dir",
	"operands.allow_negative",
	"operands.max_abs",
}

type file struct {
	Euclid domain.Config `mapstructure:"euclid"`
}

// Load reads euclid.yaml from the workspace root. Defaults come from struct
// tags and environment variables win over the file.
//
// A missing file yields the defaults (with env overrides) and a not_found error,
// so callers can decide whether a workspace is required.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	for _, k := range keys {
		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(k, ".", "_"))
		_ = v.BindEnv(rootKey+"."+k, envKey)
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return domain.DefaultConfig(), &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		readErr = &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	out := &file{}
	if err := defaults.Set(&out.Euclid); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.defaults",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("failed to set config defaults: %w", err),
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	if err := Validate(out.Euclid); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.validate",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return out.Euclid, readErr
}

// Validate checks the struct-tag rules on a config.
func Validate(cfg domain.Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), domain.ErrInvalidConfig)
}
