package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config controls how calc reads, evaluates, and reports expressions.
type Config struct {
	// LogLevel is one of debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
	// Strict stops at the first expression that fails to evaluate.
	Strict bool `yaml:"strict"`
	// Echo prints the tokens of each expression before its result.
	Echo bool `yaml:"echo"`
}

// Environment variables that override the config file.
const (
	envLogLevel  = "CALC_LOG_LEVEL"
	envLogFormat = "CALC_LOG_FORMAT"
	envStrict    = "CALC_STRICT"
	envEcho      = "CALC_ECHO"
	envFile      = "CALC_ENV_FILE"
)

const defaultEnvFile = ".env"

func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// lookupFunc has the signature of os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// LoadConfigFile decodes a YAML config file over cfg. Keys missing from the
// file leave the corresponding fields unchanged.
func LoadConfigFile(cfg *Config, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file.
			return nil
		}
		return err
	}
	return nil
}

// loadDotEnv reads variables from a .env file and returns them with the path
// they came from. The file named by CALC_ENV_FILE must exist; the default .env
// is optional, and when it is missing the returned path is empty.
func loadDotEnv(lookup lookupFunc) (map[string]string, string, error) {
	path, explicit := lookup(envFile)
	if !explicit || path == "" {
		path = defaultEnvFile
		explicit = false
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("load env file %q: %w", path, err)
	}
	return vars, path, nil
}

// withDotEnv returns a lookup that prefers the real environment and falls
// back to variables from a .env file.
func withDotEnv(lookup lookupFunc, vars map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
}

// ApplyEnv overrides fields of cfg from CALC_* environment variables.
func ApplyEnv(cfg *Config, lookup lookupFunc) error {
	if v, ok := lookup(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envLogFormat); ok {
		cfg.LogFormat = v
	}
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{envStrict, &cfg.Strict},
		{envEcho, &cfg.Echo},
	} {
		v, ok := lookup(b.key)
		if !ok {
			continue
		}
		x, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = x
	}
	return nil
}

// Validate checks that the logging settings name real levels and formats.
func (cfg *Config) Validate() error {
	if _, err := cfg.level(); err != nil {
		return err
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", cfg.LogFormat)
	}
}

func (cfg *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", cfg.LogLevel, err)
	}
	return l, nil
}

// Logger creates the logger described by cfg, writing to w. cfg must be
// valid.
func (cfg *Config) Logger(w io.Writer) *slog.Logger {
	l, _ := cfg.level()
	opts := &slog.HandlerOptions{Level: l}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
