package engine

import (
	"bytes"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"text/template"

	"github.com/arthur-debert/confgen/pkg/variables"
)

// GoTemplateSuffix is the default suffix of text/template templates
const GoTemplateSuffix = ".gotmpl"

// {{ .name, {{- .name
var goReference = regexp.MustCompile(`\{\{-?\s*\.([A-Za-z][0-9A-Za-z_]*)`)

// GoTemplate renders text/template templates
type GoTemplate struct {
	suffix string
}

// NewGoTemplate creates a text/template engine
func NewGoTemplate(suffix string) *GoTemplate {
	if suffix == "" {
		suffix = GoTemplateSuffix
	}
	return &GoTemplate{suffix: suffix}
}

func (g *GoTemplate) Name() string   { return "go" }
func (g *GoTemplate) Suffix() string { return g.suffix }

func (g *GoTemplate) References(text string) []string {
	return scanReferences(goReference, text)
}

func (g *GoTemplate) Render(name, text string, vars variables.Map) (string, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(goFunctions()).
		Parse(text)
	if err != nil {
		return "", renderError(err, name)
	}

	// The template sees a private copy; it cannot reach the caller's map.
	data := map[string]any(vars.Clone())

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", renderError(err, name)
	}
	return buf.String(), nil
}

func goFunctions() template.FuncMap {
	return template.FuncMap{
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"trimspace": strings.TrimSpace,
		"join": join,
	}
}

// join accepts any list value, whether it came from a vars file or from Go code
func join(sep string, items any) (string, error) {
	switch list := items.(type) {
	case nil:
		return "", nil
	case []string:
		return strings.Join(list, sep), nil
	case []any:
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep), nil
	}

	v := reflect.ValueOf(items)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return "", fmt.Errorf("join: expected a list, got %T", items)
	}
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return strings.Join(parts, sep), nil
}
