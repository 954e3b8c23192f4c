package article

import (
	"github.com/charmbracelet/glamour"
	"github.com/cockroachdb/errors"
)

// Styles accepted by NewRenderer. "auto" picks dark or light from the
// terminal background.
var Styles = []string{"auto", "ascii", "dark", "dracula", "light", "notty", "pink"}

// Renderer turns markdown into styled terminal output.
type Renderer struct {
	style string
	wrap  int
	term  *glamour.TermRenderer
}

// NewRenderer builds a glamour renderer. wrap <= 0 disables word wrapping.
func NewRenderer(style string, wrap int) (*Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	switch style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "create %q renderer", style)
	}
	return &Renderer{style: style, wrap: wrap, term: term}, nil
}

// Render styles markdown.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.term.Render(markdown)
	if err != nil {
		return "", errors.Wrap(err, "render markdown")
	}
	return out, nil
}

// Width is the word-wrap width; 0 means no wrapping.
func (r *Renderer) Width() int {
	return r.wrap
}

// Resize returns a renderer with the same style wrapped at width.
func (r *Renderer) Resize(width int) (*Renderer, error) {
	if width == r.wrap {
		return r, nil
	}
	return NewRenderer(r.style, width)
}
