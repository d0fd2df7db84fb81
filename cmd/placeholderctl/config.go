package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/placeholder"
	"github.com/jmgilman/go/placeholder/filters"
	"github.com/jmgilman/go/placeholder/providers/cli"
	"github.com/jmgilman/go/placeholder/providers/rest"
	"github.com/jmgilman/go/placeholder/query"
	"gopkg.in/yaml.v3"
)

// Backends selectable with the backend setting.
const (
	BackendHTTP = "http"
	BackendCurl = "curl"
)

// Config is the CLI configuration. Values come from the defaults, then the
// YAML file, then command line flags.
type Config struct {
	BaseURL      string        `yaml:"base_url"`
	Backend      string        `yaml:"backend"`
	Timeout      time.Duration `yaml:"timeout"`
	Retention    time.Duration `yaml:"retention"`
	FetchRetries int           `yaml:"fetch_retries"`
	Debounce     time.Duration `yaml:"debounce"`
	LogLevel     string        `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		BaseURL:      placeholder.DefaultBaseURL,
		Backend:      BackendHTTP,
		Retention:    query.DefaultRetention,
		FetchRetries: query.DefaultFetchRetries,
		Debounce:     filters.DefaultDebounce,
		LogLevel:     "warn",
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		err := errors.Wrap(err, errors.CodeInvalidConfig, "failed to open config file")
		return cfg, errors.WithContext(err, "path", path)
	}
	defer func() { _ = f.Close() }()

	if err := decodeConfig(f, &cfg); err != nil {
		return cfg, errors.WithContext(err, "path", path)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config file")
	}
	return nil
}

// ApplyFlags overrides cfg with the flags present in opts.
func (c *Config) ApplyFlags(opts docopt.Opts) error {
	if v, err := opts.String("--base-url"); err == nil && v != "" {
		c.BaseURL = v
	}
	if v, err := opts.String("--backend"); err == nil && v != "" {
		c.Backend = v
	}
	if v, err := opts.String("--log-level"); err == nil && v != "" {
		c.LogLevel = v
	}
	if v, err := opts.String("--timeout"); err == nil && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			err := errors.Wrap(err, errors.CodeInvalidInput, "invalid timeout")
			return errors.WithContext(err, "value", v)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks the settings that can be checked without a network call.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendHTTP, BackendCurl:
	default:
		err := errors.Newf(errors.CodeInvalidConfig, "unknown backend %q", c.Backend)
		return errors.WithContext(err, "allowed", []string{BackendHTTP, BackendCurl})
	}
	if c.Timeout < 0 {
		return errors.New(errors.CodeInvalidConfig, "timeout cannot be negative")
	}
	if c.Retention <= 0 {
		return errors.New(errors.CodeInvalidConfig, "retention must be positive")
	}
	if c.FetchRetries < 0 {
		return errors.New(errors.CodeInvalidConfig, "fetch_retries cannot be negative")
	}
	if c.Debounce < 0 {
		return errors.New(errors.CodeInvalidConfig, "debounce cannot be negative")
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		err := errors.Wrap(err, errors.CodeInvalidConfig, "invalid log level")
		return level, errors.WithContext(err, "value", c.LogLevel)
	}
	return level, nil
}

// NewLogger builds the text logger on w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewGateway builds the configured backend.
func (c Config) NewGateway(logger *slog.Logger) (placeholder.Gateway, error) {
	if c.Backend == BackendCurl {
		gw, err := cli.New(cli.WithBaseURL(c.BaseURL), cli.WithMaxTime(c.Timeout))
		if err != nil {
			return nil, err
		}
		return gw, nil
	}

	gw, err := rest.New(
		rest.WithBaseURL(c.BaseURL),
		rest.WithTimeout(c.Timeout),
		rest.WithLogger(logger.With("component", "gateway")),
	)
	if err != nil {
		return nil, err
	}
	return gw, nil
}

// NewClient builds a client over gateway with the cache settings.
func (c Config) NewClient(gateway placeholder.Gateway, logger *slog.Logger) (*placeholder.Client, error) {
	return placeholder.NewClient(gateway,
		placeholder.WithLogger(logger),
		placeholder.WithRetention(c.Retention),
		placeholder.WithFetchRetries(c.FetchRetries),
	)
}
