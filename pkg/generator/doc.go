// Package generator ties template location, variable loading, validation,
// rendering and output together.
//
// A Generator is built once from a template root and a variables source and
// then runs for any number of environments:
//
//	gen, err := generator.New(generator.Options{
//		TemplatePath: "deployment/templates",
//		Vars:         "deployment/templates/vars.yml",
//	})
//	results, err := gen.Generate(ctx, "staging", "deployment/staging", false)
//
// # Failure policy
//
// By default a run validates every template before rendering any of them,
// renders every template before writing any file, and only then writes. A
// missing variable or a template syntax error therefore leaves the output
// tree untouched. With Options.FailFast each template is validated, rendered
// and written in turn and the run stops at the first failure; files written
// for earlier templates stay on disk.
//
// Output paths mirror the template tree: a template at <root>/a/b.conf.tmpl
// is written to <output>/a/b.conf. Missing directories are created.
package generator
