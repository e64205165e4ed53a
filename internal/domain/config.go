package domain

// Config represents the euclid workspace configuration loaded from euclid.yaml.
// Defaults and validation rules are struct tags applied by the config loader.
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Paths    PathsConfig    `mapstructure:"paths"`
	Operands OperandsConfig `mapstructure:"operands"`
}

type DefaultsConfig struct {
	Suite     string `mapstructure:"suite" default:"lesson" validate:"required"`
	Candidate string `mapstructure:"candidate" default:"reference" validate:"required"`
}

type PathsConfig struct {
	SuitesDir string `mapstructure:"suites_dir" default:"suites" validate:"required"`
	RunsDir   string `mapstructure:"runs_dir" default:"runs" validate:"required"`
}

// OperandsConfig is the calculator's input policy.
type OperandsConfig struct {
	AllowNegative bool `mapstructure:"allow_negative" default:"true"`

	// MaxAbs bounds |a| and |b|; zero means unlimited.
	MaxAbs int64 `mapstructure:"max_abs" default:"0" validate:"gte=0"`
}

// DefaultConfig provides sane defaults when no euclid.yaml is available.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Suite:     SuiteLesson,
			Candidate: CandidateReference,
		},
		Paths: PathsConfig{
			SuitesDir: "suites",
			RunsDir:   "runs",
		},
		Operands: OperandsConfig{
			AllowNegative: true,
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
