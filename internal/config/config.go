package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	ErrInvalidLogFormat = errors.New("invalid log-format: must be 'text' or 'json'")
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultPrompt    = "> "
)

// Config is the set of settings of a textpipe run.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Prompt    string `yaml:"prompt"`
	// Quiet suppresses the banner, the prompt and the farewell of an interactive session.
	Quiet bool `yaml:"quiet"`
	// Stats logs per-stage metrics once the session is over.
	Stats bool `yaml:"stats"`
	// GraphPath, when set, receives a DOT rendering of the session stages.
	GraphPath string `yaml:"graph"`
}

// Default returns the settings used when neither a file nor a flag says otherwise.
func Default() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Prompt:    DefaultPrompt,
	}
}

// Load reads the YAML file at path on top of the defaults.
// Fields missing from the file keep their default value; unknown fields are an error.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to read config file %s", path)
	}

	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	err = dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrapf(err, "unable to decode config file %s", path)
	}

	cfg.normalise()

	return cfg, cfg.Validate()
}

func (c *Config) normalise() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidLogLevel, "got %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidLogFormat, "got %q", c.LogFormat)
	}

	return nil
}
