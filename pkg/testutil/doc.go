// Package testutil provides utilities for testing confgen components.
//
// Key components:
//   - TestEnvironment: a template tree plus variables, on disk or in memory
//   - WriteTree / CreateFile: declarative file setup
//   - AssertFileContent / AssertNoFile: output checks against any FS
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when behaviour depends on the
//     real filesystem (permissions, missing directories on write)
//   - All test data should be defined inline, not in external files
package testutil
