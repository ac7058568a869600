// Package output renders confgen's console output: the dry-run stream of
// rendered templates, run summaries and validation reports.
//
// Styling is applied only when the destination is a terminal, color is
// enabled in the configuration and the environment does not opt out
// (NO_COLOR, CLICOLOR=0). Otherwise output is plain text, so a dry run piped
// into a file contains exactly the rendered templates and their headers.
package output
