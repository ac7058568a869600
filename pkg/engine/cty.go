package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/zclconf/go-cty/cty"

	"github.com/arthur-debert/confgen/pkg/variables"
)

// toCtyVariables converts one environment into HCL evaluation variables
func toCtyVariables(vars variables.Map) (map[string]cty.Value, error) {
	out := make(map[string]cty.Value, len(vars))
	for name, value := range vars {
		v, err := toCty(value)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// toCty converts a decoded YAML/TOML/JSON value into a cty.Value
func toCty(value any) (cty.Value, error) {
	switch v := value.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return v, nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int8:
		return cty.NumberIntVal(int64(v)), nil
	case int16:
		return cty.NumberIntVal(int64(v)), nil
	case int32:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case uint:
		return cty.NumberUIntVal(uint64(v)), nil
	case uint8:
		return cty.NumberUIntVal(uint64(v)), nil
	case uint16:
		return cty.NumberUIntVal(uint64(v)), nil
	case uint32:
		return cty.NumberUIntVal(uint64(v)), nil
	case uint64:
		return cty.NumberUIntVal(v), nil
	case float32:
		return cty.NumberFloatVal(float64(v)), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	case time.Time:
		return cty.StringVal(v.Format(time.RFC3339)), nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return toCty(items)
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		items := make([]cty.Value, len(v))
		for i, item := range v {
			converted, err := toCty(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = converted
		}
		return cty.TupleVal(items), nil
	case variables.Map:
		return objectVal(v)
	case map[string]any:
		return objectVal(v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, item := range v {
			m[fmt.Sprintf("%v", k)] = item
		}
		return objectVal(m)
	case fmt.Stringer:
		return cty.StringVal(v.String()), nil
	}
	return cty.NilVal, fmt.Errorf("unsupported value type %T", value)
}

func objectVal(m map[string]any) (cty.Value, error) {
	if len(m) == 0 {
		return cty.EmptyObjectVal, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make(map[string]cty.Value, len(m))
	for _, k := range keys {
		converted, err := toCty(m[k])
		if err != nil {
			return cty.NilVal, fmt.Errorf("key %q: %w", k, err)
		}
		attrs[k] = converted
	}
	return cty.ObjectVal(attrs), nil
}
