// pkg/generator/generator_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Memory and OS filesystems via testutil
// PURPOSE: Test the locate, validate, render, write pipeline end to end

package generator_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/confgen/pkg/engine"
	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/generator"
	"github.com/arthur-debert/confgen/pkg/output"
	"github.com/arthur-debert/confgen/pkg/testutil"
	"github.com/arthur-debert/confgen/pkg/validator"
	"github.com/arthur-debert/confgen/pkg/variables"
)

func newGenerator(t *testing.T, env *testutil.TestEnvironment, vars any, mutate ...func(*generator.Options)) (*generator.Generator, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts := generator.Options{
		FS:           env.FS,
		TemplatePath: env.TemplateRoot,
		Vars:         vars,
		Printer:      output.NewPrinter(&buf, false),
	}
	for _, m := range mutate {
		m(&opts)
	}
	gen, err := generator.New(opts)
	require.NoError(t, err)
	return gen, &buf
}

func TestGenerate_Scenario(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"greeting.txt.tmpl": "Hello, ${name}!"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"name": "Ada"}})

	results, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, env.OutputPath("greeting.txt"), results[0].OutputPath)
	assert.Equal(t, len("Hello, Ada!"), results[0].Bytes)
	testutil.AssertFileContent(t, env.FS, env.OutputPath("greeting.txt"), "Hello, Ada!")
}

func TestGenerate_DryRunPrintsAndWritesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{
			"a.conf.tmpl":     "host=${host}\n",
			"sub/b.conf.tmpl": "port=${port}",
		})

	gen, buf := newGenerator(t, env, map[string]any{"prod": map[string]any{"host": "db", "port": 5432}})

	results, err := gen.Generate(context.Background(), "prod", env.OutputRoot, true)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Empty(t, r.OutputPath)
	}
	assert.Empty(t, env.Outputs())

	out := buf.String()
	assert.Contains(t, out, `Dry run for environment "prod"`)
	headerA := output.HeaderRule + " " + env.TemplatePath("a.conf.tmpl") + " " + output.HeaderRule
	headerB := output.HeaderRule + " " + env.TemplatePath("sub/b.conf.tmpl") + " " + output.HeaderRule
	assert.Contains(t, out, headerA+"\n\nhost=db\n")
	assert.Contains(t, out, headerB+"\n\nport=5432\n")
	assert.Less(t, strings.Index(out, headerA), strings.Index(out, headerB))
}

func TestGenerate_MirrorsDirectoriesOnDisk(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).
		WithTemplates(map[string]string{
			"app.yaml.tmpl":              "name: ${name}\n",
			"nginx/site.conf.tmpl":       "server_name ${name};\n",
			"nginx/deep/extra.conf.tmpl": "# ${name}\n",
			"static.txt":                 "no suffix\n",
		})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"name": "svc"}})

	_, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"app.yaml", "nginx/site.conf", "nginx/deep/extra.conf", "static.txt",
	}, env.Outputs())
	testutil.AssertFileContent(t, env.FS, env.OutputPath("nginx/deep/extra.conf"), "# svc\n")
	testutil.AssertFileContent(t, env.FS, env.OutputPath("static.txt"), "no suffix\n")
}

func TestGenerate_OverwritesExistingOutput(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).
		WithTemplates(map[string]string{"a.tmpl": "${v}"})
	testutil.WriteTree(t, env.FS, env.OutputRoot, map[string]string{"a": "old content that is longer"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"v": "new"}})

	_, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.NoError(t, err)
	testutil.AssertFileContent(t, env.FS, env.OutputPath("a"), "new")
}

func TestGenerate_UpFrontValidationWritesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{
			"1-good.tmpl": "${present}",
			"2-bad.tmpl":  "${present} ${absent}",
			"3-good.tmpl": "${present}",
		})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"present": "x"}})

	results, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.Error(t, err)
	assert.Empty(t, results)
	assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))

	var missing *validator.MissingVariablesError
	require.True(t, stderrors.As(err, &missing))
	assert.Equal(t, []string{"absent"}, missing.Missing)
	assert.Equal(t, env.TemplatePath("2-bad.tmpl"), missing.Template)

	assert.Empty(t, env.Outputs())
}

func TestGenerate_FailFastKeepsEarlierOutputs(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{
			"1-good.tmpl": "${present}",
			"2-bad.tmpl":  "${absent}",
			"3-good.tmpl": "${present}",
		})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"present": "x"}},
		func(o *generator.Options) { o.FailFast = true })

	results, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	require.Len(t, results, 1)

	assert.Equal(t, []string{"1-good"}, env.Outputs())
	testutil.AssertNoFile(t, env.FS, env.OutputPath("3-good"))
}

func TestGenerate_UnknownEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"a.tmpl": "literal"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{}, "prod": map[string]any{}})

	_, err := gen.Generate(context.Background(), "staging", env.OutputRoot, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownEnvironment))
	assert.Equal(t, []string{"dev", "prod"}, errors.GetErrorDetails(err)["known"])
	assert.Empty(t, env.Outputs())
}

func TestGenerate_RenderErrorIsNotValidationError(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"a.tmpl": "%{ if debug }on%{ endif }"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{}})

	_, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.Error(t, err)
	assert.True(t, errors.IsRender(err))
	assert.False(t, errors.IsValidation(err))
	assert.Empty(t, env.Outputs())
}

func TestGenerate_LiteralTemplateWithEmptyEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"plain.tmpl": "key = value\n"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": nil})

	_, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.NoError(t, err)
	testutil.AssertFileContent(t, env.FS, env.OutputPath("plain"), "key = value\n")
}

func TestGenerate_VarsFileInTreeIsNotATemplate(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{
			"vars.yml": "dev:\n  name: Ada\n",
			"a.tmpl":   "${name}",
		})

	gen, _ := newGenerator(t, env, env.TemplatePath("vars.yml"))
	assert.Equal(t, []string{env.TemplatePath("a.tmpl")}, gen.Templates().Paths())
	assert.Equal(t, []string{"dev"}, gen.Environments())

	_, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, env.Outputs())
}

func TestGenerate_SingleTemplateFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"only.conf.tmpl": "${x}"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"x": 1}},
		func(o *generator.Options) { o.TemplatePath = env.TemplatePath("only.conf.tmpl") })

	_, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.NoError(t, err)
	testutil.AssertFileContent(t, env.FS, env.OutputPath("only.conf"), "1")
}

func TestGenerate_GoEngine(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"a.ini.gotmpl": "name={{ .name }}"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"name": "Ada"}},
		func(o *generator.Options) { o.Engine = engine.NewGoTemplate("") })

	_, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.NoError(t, err)
	testutil.AssertFileContent(t, env.FS, env.OutputPath("a.ini"), "name=Ada")
}

func TestGenerate_Cancelled(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"a.tmpl": "x"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, "dev", env.OutputRoot, false)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
	assert.Empty(t, env.Outputs())
}

func TestNew_Errors(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := generator.New(generator.Options{FS: env.FS, TemplatePath: env.TemplateRoot, Vars: 42})
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))

	_, err = generator.New(generator.Options{
		FS:           env.FS,
		TemplatePath: env.TemplatePath("missing"),
		Vars:         map[string]any{"dev": map[string]any{}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestValidate_ReportsEveryTemplate(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{
			"a.tmpl": "${host}:${port}",
			"b.tmpl": "${host} ${user} ${pass}",
		})

	gen, _ := newGenerator(t, env, variables.Environment{"dev": variables.Map{"host": "h", "port": 1}})

	reports, err := gen.Validate(context.Background(), "dev")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
	assert.Equal(t, 1, errors.GetErrorDetails(err)["failed"])

	require.Len(t, reports, 2)
	assert.True(t, reports[0].OK())
	assert.Equal(t, []string{"host", "port"}, reports[0].References)
	assert.False(t, reports[1].OK())
	assert.Equal(t, []string{"pass", "user"}, reports[1].Missing)
	assert.Equal(t, []string{"host", "port"}, reports[1].Provided)
}

func TestValidate_AllPass(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"a.tmpl": "${x}"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"x": 1}})

	reports, err := gen.Validate(context.Background(), "dev")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].OK())
}

func TestGenerator_References(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"a.tmpl": "${b} ${a} ${b}"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{}})

	refs, err := gen.References(gen.Templates()[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, refs)
}

func TestGenerate_CustomVarsFileInTreeIsNotATemplate(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{
			"env.yaml":      "dev:\n  name: Ada\nprod:\n  name: secret\n",
			"a.tmpl":        "${name}",
			"conf/env.yaml": "kept: ${name}",
		})

	gen, _ := newGenerator(t, env, env.TemplatePath("env.yaml"))
	assert.Equal(t, []string{env.TemplatePath("a.tmpl"), env.TemplatePath("conf/env.yaml")}, gen.Templates().Paths())

	_, err := gen.Generate(context.Background(), "dev", env.OutputRoot, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "conf/env.yaml"}, env.Outputs())
	testutil.AssertNoFile(t, env.FS, env.OutputPath("env.yaml"))
}

func TestNew_ExcludeWithLoadedVariables(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{
			"settings.toml": "[dev]\nname = \"Ada\"\n",
			"a.tmpl":        "${name}",
		})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"name": "Ada"}},
		func(o *generator.Options) { o.Exclude = []string{env.TemplatePath("settings.toml")} })
	assert.Equal(t, []string{env.TemplatePath("a.tmpl")}, gen.Templates().Paths())
}

func TestGenerate_EmptyOutputRootDefaultsToDeployment(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithTemplates(map[string]string{"sub/a.conf.tmpl": "${x}"})

	gen, _ := newGenerator(t, env, map[string]any{"dev": map[string]any{"x": "y"}})

	results, err := gen.Generate(context.Background(), "dev", "", false)
	require.NoError(t, err)
	require.Len(t, results, 1)

	want := filepath.Join("deployment", "dev", "sub", "a.conf")
	assert.Equal(t, want, results[0].OutputPath)
	testutil.AssertFileContent(t, env.FS, want, "y")
}
