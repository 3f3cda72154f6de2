// Package report renders an ExtractionResult into the two output
// documents: the HTML dashboard and the importable Netscape bookmarks
// file.
package report

import (
	"html"

	"github.com/vincentbai/chrome-rescue/internal/config"
)

// Renderer holds the presentation settings shared by both documents.
type Renderer struct {
	cfg config.Config
}

func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// esc escapes user-supplied strings for embedding in markup. Every URL,
// title, folder name, and timestamp goes through here; nothing is
// interpolated raw.
func esc(s string) string {
	return html.EscapeString(s)
}
