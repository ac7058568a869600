package variables

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/filesystem"
	"github.com/arthur-debert/confgen/pkg/logging"
)

// Load builds an Environment from source, which is either a path to an
// existing variables file or an already built mapping.
func Load(fsys filesystem.FS, source any) (Environment, error) {
	logger := logging.GetLogger("variables")

	switch src := source.(type) {
	case string:
		if src != "" && filesystem.IsRegularFile(fsys, src) {
			env, err := loadFile(fsys, src)
			if err != nil {
				return nil, err
			}
			logger.Debug().
				Str("path", src).
				Strs("environments", env.Names()).
				Msg("Loaded variables file")
			return env, nil
		}
	case Environment:
		if src != nil {
			return src, nil
		}
	case map[string]Map:
		if src != nil {
			return Environment(src), nil
		}
	case map[string]map[string]any:
		if src != nil {
			env := make(Environment, len(src))
			for name, vars := range src {
				env[name] = Map(vars)
			}
			return env, nil
		}
	case map[string]any:
		if src != nil {
			return fromRaw(src, "mapping")
		}
	}

	return nil, errors.Newf(errors.ErrConfiguration,
		"need a mapping or a valid file path to load template variables from, received: %v", source).
		WithDetail("source", fmt.Sprintf("%v", source))
}

// Parse decodes variables file content; format is a file extension such as
// ".yml", ".toml" or ".jsonc".
func Parse(data []byte, format string) (Environment, error) {
	raw := map[string]any{}

	switch strings.ToLower(format) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported variables file type %q", format)
	}

	return fromRaw(raw, "file")
}

func loadFile(fsys filesystem.FS, path string) (Environment, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "reading variables file %s", path).
			WithDetail("path", path)
	}

	env, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfiguration, "loading variables file %s", path).
			WithDetail("path", path)
	}
	return env, nil
}

// fromRaw checks the two-level shape and converts nested values
func fromRaw(raw map[string]any, what string) (Environment, error) {
	env := make(Environment, len(raw))
	for name, value := range raw {
		if value == nil {
			env[name] = Map{}
			continue
		}
		vars, ok := asStringMap(value)
		if !ok {
			return nil, errors.Newf(errors.ErrConfiguration,
				"environment %q in variables %s must be a mapping of variable names to values, got %T", name, what, value).
				WithDetail("environment", name)
		}
		env[name] = vars
	}
	return env, nil
}

func asStringMap(value any) (Map, bool) {
	switch v := value.(type) {
	case Map:
		return v, true
	case map[string]any:
		return Map(v), true
	case map[any]any:
		out := make(Map, len(v))
		for k, val := range v {
			out[fmt.Sprintf("%v", k)] = val
		}
		return out, true
	}
	return nil, false
}
