package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInput is the design file converted when neither the configuration file nor a
// flag names one.
const DefaultInput = "sample-file.sketch"

// Env var names used as overrides.
const (
	EnvInput  = "SKETCH_TOKENS_INPUT"
	EnvOutput = "SKETCH_TOKENS_OUTPUT"
)

// ImagesConfig controls the export of images used by image fills.
type ImagesConfig struct {
	Export   bool   `yaml:"export"`
	Dir      string `yaml:"dir"`
	Parallel int    `yaml:"parallel"`
}

// Config is the tool configuration, read from a YAML file.
// Fields missing from the file keep their defaults.
type Config struct {
	Input  string       `yaml:"input"`
	Output string       `yaml:"output"`
	Indent string       `yaml:"indent"`
	CSS    string       `yaml:"css"`    // optional stylesheet path
	Report string       `yaml:"report"` // optional markdown report path
	Images ImagesConfig `yaml:"images"`
}

// Defaults returns the tool defaults.
func Defaults() Config {
	return Config{
		Input:  DefaultInput,
		Output: "design-tokens.json",
		Indent: "  ",
		Images: ImagesConfig{Export: false, Dir: "design-assets", Parallel: 5},
	}
}

// Load reads the configuration file at path over the defaults and applies environment
// overrides. A missing file is not an error; an empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvInput)); v != "" {
		cfg.Input = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output = v
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Input) == "" {
		errs = append(errs, errors.New("input must not be empty"))
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	if strings.Trim(c.Indent, " \t") != "" {
		errs = append(errs, fmt.Errorf("indent %q must only contain spaces or tabs", c.Indent))
	}
	if c.Images.Export {
		if strings.TrimSpace(c.Images.Dir) == "" {
			errs = append(errs, errors.New("images.dir must not be empty when exporting images"))
		}
		if c.Images.Parallel < 1 {
			errs = append(errs, fmt.Errorf("images.parallel must be at least 1, got %d", c.Images.Parallel))
		}
	}
	return errors.Join(errs...)
}
