package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

// Environment names accepted by APP_ENV.
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// Config holds every setting of the CLI and HTTP server.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP HTTPConfig

	Generator GeneratorConfig

	HistorySize int `env:"HISTORY_SIZE" envDefault:"1000"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// GeneratorConfig holds the default generation parameters and the rule and
// modifier selection.
type GeneratorConfig struct {
	A             int64    `env:"GEN_A" envDefault:"1664525"`
	C             int64    `env:"GEN_C" envDefault:"1013904223"`
	M             int64    `env:"GEN_M" envDefault:"4294967296"`
	EntropyWeight float64  `env:"GEN_ENTROPY_WEIGHT" envDefault:"1.0"`
	CorpusPath    string   `env:"GEN_CORPUS_PATH"`
	ExtraRules    []string `env:"GEN_EXTRA_RULES" envSeparator:","`
	Modifiers     []string `env:"GEN_MODIFIERS" envSeparator:","`
}

// Params converts the generator settings to namegen.Params.
func (g GeneratorConfig) Params() namegen.Params {
	return namegen.Params{A: g.A, C: g.C, M: g.M, EntropyWeight: g.EntropyWeight}
}

// Validate checks values that cannot be expressed with struct tags.
func (c Config) Validate() error {
	var errs []error
	if err := c.Generator.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.HistorySize <= 0 {
		errs = append(errs, fmt.Errorf("HISTORY_SIZE must be positive, got %d", c.HistorySize))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "", "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// IsProduction reports whether APP_ENV names production.
func (c Config) IsProduction() bool {
	return c.Env == Production || c.Env == "prod"
}

// ParseLevel maps LOG_LEVEL values to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", s, err)
	}
	return l, nil
}
