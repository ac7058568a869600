package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	cgerrors "github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "CONFGEN_"

// ProjectFiles are looked up, in order, in the working directory
var ProjectFiles = []string{".confgen.toml", ".confgen.yaml", ".confgen.yml"}

// LoadOptions tells Load where to look
type LoadOptions struct {
	// ConfigFile is an explicit project file; it must exist when set.
	ConfigFile string
	// WorkDir is searched for ProjectFiles when ConfigFile is empty.
	WorkDir string
	// Overrides are flat dotted keys applied last (command-line flags).
	Overrides map[string]interface{}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// GetDefaultsContent returns the embedded defaults file
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// Default returns the configuration built from embedded defaults only
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load builds the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, cgerrors.Wrap(err, cgerrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project file
	path, err := projectFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, cgerrors.Wrapf(err, cgerrors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
	}

	// 3. Environment variables
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, cgerrors.Wrap(err, cgerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, cgerrors.Wrap(err, cgerrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, cgerrors.Wrap(err, cgerrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, cgerrors.Wrap(err, cgerrors.ErrConfiguration, "invalid configuration")
	}
	return cfg, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func projectFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", cgerrors.Wrapf(err, cgerrors.ErrConfigLoad, "config file %s not readable", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, cgerrors.Newf(cgerrors.ErrConfiguration, "unsupported config file type %q", filepath.Ext(path)).
		WithDetail("path", path)
}
