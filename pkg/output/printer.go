package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// HeaderRule frames template names in dry-run output
const HeaderRule = "~~~~~~~~~~"

// Printer writes dry-run output and summaries
type Printer struct {
	w      io.Writer
	color  bool
	header lipgloss.Style
	banner lipgloss.Style
	errSty lipgloss.Style
}

// NewPrinter creates a Printer; color is honoured only when ColorEnabled
// agrees for w
func NewPrinter(w io.Writer, color bool) *Printer {
	color = ColorEnabled(w, color)
	renderer := lipgloss.NewRenderer(w)

	return &Printer{
		w:     w,
		color: color,
		header: renderer.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
		banner: renderer.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9B9B9B"}),
		errSty: renderer.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F6D"}),
	}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// DryRunBanner announces a dry run for one environment
func (p *Printer) DryRunBanner(environment string) error {
	_, err := fmt.Fprintln(p.w, p.style(p.banner,
		fmt.Sprintf("Dry run for environment %q: printing rendered templates instead of writing files", environment)))
	return err
}

// Template prints one rendered template preceded by a header naming it
func (p *Printer) Template(name, rendered string) error {
	header := fmt.Sprintf("%s %s %s", HeaderRule, name, HeaderRule)
	if _, err := fmt.Fprintf(p.w, "\n%s\n\n", p.style(p.header, header)); err != nil {
		return err
	}
	if _, err := io.WriteString(p.w, rendered); err != nil {
		return err
	}
	if !strings.HasSuffix(rendered, "\n") {
		_, err := fmt.Fprintln(p.w)
		return err
	}
	return nil
}

// Written reports one generated file
func (p *Printer) Written(template, path string) error {
	_, err := fmt.Fprintf(p.w, "%s %s -> %s\n", p.mark(true), template, path)
	return err
}

// Summary closes a run
func (p *Printer) Summary(environment string, count int, dryRun bool) error {
	verb := "generated"
	if dryRun {
		verb = "rendered"
	}
	line := fmt.Sprintf("%d template(s) %s for %s", count, verb, environment)
	if p.color {
		line = pterm.Bold.Sprint(line)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// ValidationLine reports one template's validation outcome
func (p *Printer) ValidationLine(template string, missing []string) error {
	if len(missing) == 0 {
		_, err := fmt.Fprintf(p.w, "%s %s\n", p.mark(true), template)
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s %s: missing [%s]\n", p.mark(false), template, strings.Join(missing, ", "))
	return err
}

// Error prints err with styling
func (p *Printer) Error(err error) {
	_, _ = fmt.Fprintf(p.w, "%s %v\n", p.style(p.errSty, "Error:"), err)
}

func (p *Printer) mark(ok bool) string {
	if !p.color {
		if ok {
			return "ok  "
		}
		return "FAIL"
	}
	if ok {
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("✓")
	}
	return pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("✗")
}
