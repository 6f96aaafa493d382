// Package markdown renders the help text with glamour, falling back to
// plain word-wrapped text when glamour cannot render.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/ui/styles"
)

// noMarginStyle removes glamour's document margins so the output lines up
// with the rest of the overlay.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour for one width and background.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	dark     bool
}

// New creates a renderer for width cells using the dark or light glamour
// style to match the current theme mode.
func New(width int) (*Renderer, error) {
	dark := styles.IsDark()
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width, dark: dark}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Stale reports whether the theme mode changed since the renderer was built.
func (r *Renderer) Stale() bool {
	return r.dark != styles.IsDark()
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// RenderOrWrap renders md with r, or word-wraps it to width when r is nil
// or rendering fails.
func RenderOrWrap(r *Renderer, md string, width int) string {
	if r != nil {
		out, err := r.Render(md)
		if err == nil {
			return out
		}
		log.ErrorErr(log.CatUI, "Markdown render failed, using plain text", err)
	}
	return Plain(md, width)
}

// Plain strips the markdown markers the help text uses and wraps it.
func Plain(md string, width int) string {
	replacer := strings.NewReplacer("**", "", "`", "", "# ", "")
	return wordwrap.String(replacer.Replace(md), max(width, 1))
}
