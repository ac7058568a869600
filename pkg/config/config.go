package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config is the resolved tool configuration
type Config struct {
	Templates TemplatesConfig `koanf:"templates"`
	Engine    EngineConfig    `koanf:"engine"`
	Generate  GenerateConfig  `koanf:"generate"`
	Output    OutputConfig    `koanf:"output"`
}

// TemplatesConfig locates templates and the variables file
type TemplatesConfig struct {
	Path     string   `koanf:"path"`
	VarsFile string   `koanf:"vars_file"`
	VarsName string   `koanf:"vars_name"`
	Ignore   []string `koanf:"ignore"`
}

// EngineConfig selects the template syntax
type EngineConfig struct {
	Name   string `koanf:"name"`
	Suffix string `koanf:"suffix"`
}

// GenerateConfig controls generation runs
type GenerateConfig struct {
	OutputDir   string `koanf:"output_dir"`
	FailFast    bool   `koanf:"fail_fast"`
	Parallelism int    `koanf:"parallelism"`
}

// OutputConfig controls console output
type OutputConfig struct {
	Color bool `koanf:"color"`
}

const (
	// EnvPlaceholder is replaced by the environment name in generate.output_dir
	EnvPlaceholder = "{env}"

	// DefaultOutputPattern applies when no output directory is configured
	DefaultOutputPattern = "deployment/" + EnvPlaceholder
)

// ExpandOutputDir fills pattern for one environment; an empty pattern means
// DefaultOutputPattern
func ExpandOutputDir(pattern, environment string) string {
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultOutputPattern
	}
	return filepath.FromSlash(strings.ReplaceAll(pattern, EnvPlaceholder, environment))
}

// VarsPath returns the variables file, defaulting to vars_name inside the
// template root (or next to it when the root is a single file).
func (c *Config) VarsPath(templateRootIsDir bool) string {
	if c.Templates.VarsFile != "" {
		return c.Templates.VarsFile
	}
	dir := c.Templates.Path
	if !templateRootIsDir {
		dir = filepath.Dir(dir)
	}
	return filepath.Join(dir, c.Templates.VarsName)
}

// OutputDir expands the output_dir pattern for one environment
func (c *Config) OutputDir(environment string) string {
	return ExpandOutputDir(c.Generate.OutputDir, environment)
}

// Validate checks values that koanf cannot type-check on its own
func (c *Config) Validate() error {
	if c.Templates.Path == "" {
		return fmt.Errorf("templates.path must not be empty")
	}
	if c.Templates.VarsName == "" {
		return fmt.Errorf("templates.vars_name must not be empty")
	}
	if c.Engine.Name == "" {
		return fmt.Errorf("engine.name must not be empty")
	}
	if c.Generate.Parallelism < 1 {
		return fmt.Errorf("generate.parallelism must be at least 1, got %d", c.Generate.Parallelism)
	}
	for _, pattern := range c.Templates.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("templates.ignore: bad pattern %q: %w", pattern, err)
		}
	}
	return nil
}
