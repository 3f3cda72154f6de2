package report

import (
	"fmt"
	"strings"

	"github.com/vincentbai/chrome-rescue/internal/bookmarks"
	"github.com/vincentbai/chrome-rescue/internal/models"
)

var netscapeHeader = []string{
	"<!DOCTYPE NETSCAPE-Bookmark-file-1>",
	"<!-- This is an automatically generated file.",
	"     It will be read and overwritten.",
	"     DO NOT EDIT! -->",
	`<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">`,
	"<TITLE>Bookmarks</TITLE>",
	"<H1>Bookmarks</H1>",
}

// Netscape renders the bookmark roots as a browser-importable
// Netscape-bookmark-format document. The nested <DL>/<DT> structure
// mirrors the folder tree exactly, in the same pre-order the dashboard
// uses. Callers must not invoke this when bookmarks are absent.
func (r *Renderer) Netscape(roots map[string]models.BookmarkNode) []byte {
	parts := make([]string, 0, 16)
	parts = append(parts, netscapeHeader...)
	parts = append(parts, "<DL><p>")

	for _, rootName := range models.OrderedRootNames(roots) {
		if r.cfg.RootExcluded(rootName) {
			continue
		}
		parts = appendNetscapeTree(parts, roots[rootName])
	}

	parts = append(parts, "</DL><p>")
	return []byte(strings.Join(parts, "\n"))
}

// appendNetscapeTree serializes one root from the shared pre-order walk.
// Open folders are tracked on a stack; a drop in record depth closes the
// corresponding <DL> blocks.
func appendNetscapeTree(parts []string, root models.BookmarkNode) []string {
	var open []int // depths of folders whose <DL> is still open
	bookmarks.Walk(root, func(rec bookmarks.Record) {
		for len(open) > 0 && open[len(open)-1] >= rec.Depth {
			parts = append(parts, indentFor(open[len(open)-1])+"</DL><p>")
			open = open[:len(open)-1]
		}
		prefix := indentFor(rec.Depth)
		if rec.Kind == models.KindFolder {
			parts = append(parts, fmt.Sprintf("%s<DT><H3>%s</H3>", prefix, esc(rec.Name)))
			parts = append(parts, prefix+"<DL><p>")
			open = append(open, rec.Depth)
			return
		}
		parts = append(parts, fmt.Sprintf(`%s<DT><A HREF="%s">%s</A>`, prefix, esc(rec.URL), esc(rec.Name)))
	})
	for len(open) > 0 {
		parts = append(parts, indentFor(open[len(open)-1])+"</DL><p>")
		open = open[:len(open)-1]
	}
	return parts
}

// Roots sit one level inside the outer <DL>, so walk depth 0 renders at
// one indent unit.
func indentFor(depth int) string {
	return strings.Repeat("    ", depth+1)
}
