package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour; other formats pass
// through unchanged
type GlamourRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty") or
	// "auto" to detect from the terminal
	Style string
	// Width wraps output; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer; plain selects the notty style for
// output that is not a color terminal
func NewGlamourRenderer(plain bool) *GlamourRenderer {
	style := "auto"
	if plain {
		style = "notty"
	}
	return &GlamourRenderer{Style: style}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
