package engine

import (
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/arthur-debert/confgen/pkg/variables"
)

// HCLSuffix is the default suffix of HCL templates
const HCLSuffix = ".tmpl"

// ${ name, ${~ name; $${ is an escaped literal and is skipped.
var hclReference = regexp.MustCompile(`(?:^|[^$])\$\{~?\s*([A-Za-z][0-9A-Za-z_]*)`)

// HCL renders HCL native templates
type HCL struct {
	suffix string
}

// NewHCL creates an HCL engine
func NewHCL(suffix string) *HCL {
	if suffix == "" {
		suffix = HCLSuffix
	}
	return &HCL{suffix: suffix}
}

func (h *HCL) Name() string   { return "hcl" }
func (h *HCL) Suffix() string { return h.suffix }

func (h *HCL) References(text string) []string {
	return scanReferences(hclReference, text)
}

func (h *HCL) Render(name, text string, vars variables.Map) (string, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(text), name, hcl.InitialPos)
	if diags.HasErrors() {
		return "", renderError(diags, name)
	}

	values, err := toCtyVariables(vars)
	if err != nil {
		return "", renderError(err, name)
	}

	ctx := &hcl.EvalContext{
		Variables: values,
		Functions: hclFunctions(),
	}

	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return "", renderError(diags, name)
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return "", renderErrorf(name, "template produced no value")
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", renderErrorf(name, "template result is %s, not text: %v", val.Type().FriendlyName(), err)
	}
	return str.AsString(), nil
}

// hclFunctions builds a fresh function table for one evaluation
func hclFunctions() map[string]function.Function {
	return map[string]function.Function{
		"upper":      stdlib.UpperFunc,
		"lower":      stdlib.LowerFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"join":       stdlib.JoinFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
	}
}
