package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/confgen/pkg/filesystem"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds a template root and an output root on one FS
type TestEnvironment struct {
	FS           filesystem.FS
	Root         string
	TemplateRoot string
	OutputRoot   string
	Type         EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.Root = "/work"
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.Root = t.TempDir()
	}

	env.TemplateRoot = filepath.Join(env.Root, "templates")
	env.OutputRoot = filepath.Join(env.Root, "out")

	if err := env.FS.MkdirAll(env.TemplateRoot, 0755); err != nil {
		t.Fatalf("Failed to create template root: %v", err)
	}
	return env
}

// WithTemplates writes templates under TemplateRoot
func (e *TestEnvironment) WithTemplates(files map[string]string) *TestEnvironment {
	e.t.Helper()
	WriteTree(e.t, e.FS, e.TemplateRoot, files)
	return e
}

// TemplatePath returns the path of a template given relative to TemplateRoot
func (e *TestEnvironment) TemplatePath(rel string) string {
	return filepath.Join(e.TemplateRoot, filepath.FromSlash(rel))
}

// OutputPath returns the path of an output file given relative to OutputRoot
func (e *TestEnvironment) OutputPath(rel string) string {
	return filepath.Join(e.OutputRoot, filepath.FromSlash(rel))
}

// Outputs lists files written under OutputRoot
func (e *TestEnvironment) Outputs() []string {
	e.t.Helper()
	return ListFiles(e.t, e.FS, e.OutputRoot)
}
