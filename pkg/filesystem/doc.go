// Package filesystem provides filesystem implementations for confgen.
//
// The generator never touches the os package directly: it reads templates,
// walks template trees and writes rendered output through the FS interface.
// NewOS backs it with the real filesystem, NewMemory with an in-memory afero
// filesystem for tests and dry runs that must not touch disk.
package filesystem
