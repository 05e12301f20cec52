// Package config loads the per-project relkit configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "relkit.yaml"

var (
	// ErrInvalidConfig indicates the config file could not be parsed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyCommand indicates a step was configured with no argv.
	ErrEmptyCommand = errors.New("empty command")
)

// Step is a single external tool invocation.
type Step struct {
	// Command is the argv to execute. It is not passed through a shell.
	Command []string `yaml:"command"`
}

// Clean lists the build artifacts removed by the clean command.
type Clean struct {
	// Paths are removed recursively. Absent paths are not an error.
	Paths []string `yaml:"paths"`
	// Globs are expanded relative to the working directory and removed.
	Globs []string `yaml:"globs"`
}

// Upload configures artifact publication.
type Upload struct {
	// Command is the uploader argv; the matched artifact paths are appended.
	Command []string `yaml:"command"`
	// Artifacts is a glob selecting the files to publish.
	Artifacts string `yaml:"artifacts"`
}

// Config is the full relkit configuration for a project.
type Config struct {
	// VersionFile is the text file holding the `version = "X.Y.Z"` assignment.
	VersionFile string `yaml:"versionFile"`
	// Timeout bounds each external tool invocation.
	Timeout Duration `yaml:"timeout"`

	Clean  Clean  `yaml:"clean"`
	Test   Step   `yaml:"test"`
	Build  Step   `yaml:"build"`
	Upload Upload `yaml:"upload"`
}

// Default returns the configuration used when no config file exists. The
// defaults drive a standard Python packaging workflow.
func Default() *Config {
	return &Config{
		VersionFile: "pyproject.toml",
		Timeout:     Duration(10 * time.Minute),
		Clean: Clean{
			Paths: []string{"build", "dist"},
			Globs: []string{"*.egg-info"},
		},
		Test:  Step{Command: []string{"pytest"}},
		Build: Step{Command: []string{"python", "-m", "build"}},
		Upload: Upload{
			Command:   []string{"twine", "upload"},
			Artifacts: "dist/*",
		},
	}
}

// Load reads the config file at path. A missing file yields [Default];
// any field left unset in the file keeps its default value.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// Validate checks that every configured step has an argv.
func (c *Config) Validate() error {
	if len(c.Test.Command) == 0 {
		return fmt.Errorf("%w: test", ErrEmptyCommand)
	}

	if len(c.Build.Command) == 0 {
		return fmt.Errorf("%w: build", ErrEmptyCommand)
	}

	if len(c.Upload.Command) == 0 {
		return fmt.Errorf("%w: upload", ErrEmptyCommand)
	}

	return nil
}

// Duration is a [time.Duration] parsed from its YAML string form.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string

	err := value.Decode(&s)
	if err != nil {
		return fmt.Errorf("decode duration: %w", err)
	}

	td, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration: %w", err)
	}

	*d = Duration(td)

	return nil
}
