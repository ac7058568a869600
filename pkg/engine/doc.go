// Package engine provides the template engines confgen renders with.
//
// An Engine owns one expression syntax and offers two capabilities over it:
// a lexical scan reporting which variables a template references, and
// expansion of the template against one environment's variables.
//
// Two engines are registered:
//
//   - "hcl" (default, files ending in .tmpl) uses HCL template syntax:
//     ${name} interpolates, %{ if cond }...%{ endif } and
//     %{ for x in list }...%{ endfor } are directives, $${ is a literal "${".
//     A small fixed set of functions is available: upper, lower, trimspace,
//     join and jsonencode.
//   - "go" (files ending in .gotmpl) uses text/template: {{ .name }}
//     interpolates, missing keys are errors.
//
// # Reference scanning
//
// References is a lexical scan, not a parse. It captures the first
// identifier of every output expression (${name...} or {{ .name... }}) and
// nothing else. Consequences:
//
//   - variables used only inside directives (%{ if debug }, {{ if .debug }})
//     are not reported, so they are not checked before rendering; a missing
//     one surfaces as a render error instead;
//   - for-loop locals used in an output expression (${item}) are reported as
//     references and must be supplied by the environment;
//   - for ${a.b} or ${upper(name)} only "a" and "upper" are reported.
package engine
