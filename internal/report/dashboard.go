package report

import (
	"fmt"
	"strings"

	"github.com/vincentbai/chrome-rescue/internal/bookmarks"
	"github.com/vincentbai/chrome-rescue/internal/models"
)

const dashboardStyle = `  * { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    max-width: 900px; margin: 40px auto; padding: 0 20px;
    color: #333; background: #fafafa;
  }
  h1 { font-size: 28px; margin-bottom: 8px; }
  .subtitle { color: #888; margin-bottom: 32px; }
  h2 { font-size: 20px; margin: 32px 0 16px; padding-bottom: 8px; border-bottom: 2px solid #ddd; }
  .tab-list, .history-list { list-style: none; }
  .tab-list li, .history-list li {
    padding: 8px 0; border-bottom: 1px solid #eee;
  }
  .tab-list a, .history-list a, .bookmark-link {
    color: #1a73e8; text-decoration: none;
  }
  .tab-list a:hover, .history-list a:hover, .bookmark-link:hover {
    text-decoration: underline;
  }
  .url-display { color: #888; font-size: 12px; display: block; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
  .timestamp { color: #888; font-size: 12px; margin-left: 8px; }
  .folder { font-weight: 600; margin-top: 12px; padding: 4px 0; }
  .bookmark-item { padding: 3px 0; }
  .indent-1 { padding-left: 20px; }
  .indent-2 { padding-left: 40px; }
  .indent-3 { padding-left: 60px; }
  .indent-4 { padding-left: 80px; }
  .indent-5 { padding-left: 100px; }
  .section-count { color: #888; font-weight: normal; font-size: 14px; }
  .empty-note { color: #999; font-style: italic; padding: 12px 0; }
  nav { margin-bottom: 24px; }
  nav a { margin-right: 16px; color: #1a73e8; text-decoration: none; font-weight: 500; }
  nav a:hover { text-decoration: underline; }`

// Dashboard renders the self-contained HTML dashboard. Each section is
// rendered independently per the tri-state rule: an absent feature shows
// a could-not-be-recovered notice, a present-but-empty one shows a
// none-found notice, and a populated one lists entries with a count in
// its heading. Navigation links point only to present sections.
func (r *Renderer) Dashboard(res models.ExtractionResult) []byte {
	var parts []string
	parts = append(parts, fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
<h1>%s</h1>
<p class="subtitle">%s</p>
<nav>`, esc(r.cfg.DashboardTitle), dashboardStyle, esc(r.cfg.DashboardTitle), esc(r.cfg.DashboardSubtitle)))

	if res.Tabs.Present() {
		parts = append(parts, `<a href="#tabs">Open Tabs</a>`)
	}
	if res.Bookmarks.Present() {
		parts = append(parts, `<a href="#bookmarks">Bookmarks</a>`)
	}
	if res.History.Present() {
		parts = append(parts, `<a href="#history">History</a>`)
	}
	parts = append(parts, "</nav>")

	parts = r.tabsSection(parts, res.Tabs)
	parts = r.bookmarksSection(parts, res.Bookmarks)
	parts = r.historySection(parts, res.History)

	parts = append(parts, "</body></html>")
	return []byte(strings.Join(parts, "\n"))
}

func (r *Renderer) tabsSection(parts []string, tabs models.Feature[[]models.TabEntry]) []string {
	if !tabs.Present() {
		parts = append(parts, `<h2 id="tabs">Open Tabs</h2>`)
		parts = append(parts, `<p class="empty-note">Could not recover open tabs from session files.</p>`)
		return parts
	}
	entries := tabs.Value()
	parts = append(parts, fmt.Sprintf(`<h2 id="tabs">Open Tabs <span class="section-count">(%d)</span></h2>`, len(entries)))
	if len(entries) == 0 {
		parts = append(parts, `<p class="empty-note">No open tabs found.</p>`)
		return parts
	}
	parts = append(parts, `<ul class="tab-list">`)
	for _, tab := range entries {
		parts = append(parts, fmt.Sprintf(`<li><a href="%s">%s</a><span class="url-display">%s</span></li>`,
			esc(tab.URL), labelFor(tab.Title, tab.URL), esc(tab.URL)))
	}
	parts = append(parts, "</ul>")
	return parts
}

func (r *Renderer) bookmarksSection(parts []string, feature models.Feature[map[string]models.BookmarkNode]) []string {
	if !feature.Present() {
		parts = append(parts, `<h2 id="bookmarks">Bookmarks</h2>`)
		parts = append(parts, `<p class="empty-note">Could not recover bookmarks.</p>`)
		return parts
	}

	roots := feature.Value()
	linkCount := 0
	var items []string
	for _, rootName := range models.OrderedRootNames(roots) {
		if r.cfg.RootExcluded(rootName) {
			continue
		}
		bookmarks.Walk(roots[rootName], func(rec bookmarks.Record) {
			indent := rec.Depth
			if indent > r.cfg.IndentCap {
				indent = r.cfg.IndentCap
			}
			if rec.Kind == models.KindFolder {
				items = append(items, fmt.Sprintf(`<div class="folder indent-%d">%s</div>`, indent, esc(rec.Name)))
				return
			}
			linkCount++
			items = append(items, fmt.Sprintf(`<div class="bookmark-item indent-%d"><a class="bookmark-link" href="%s">%s</a></div>`,
				indent, esc(rec.URL), esc(rec.Name)))
		})
	}

	parts = append(parts, fmt.Sprintf(`<h2 id="bookmarks">Bookmarks <span class="section-count">(%d)</span></h2>`, linkCount))
	if len(items) == 0 {
		parts = append(parts, `<p class="empty-note">No bookmarks found.</p>`)
		return parts
	}
	parts = append(parts, items...)
	return parts
}

func (r *Renderer) historySection(parts []string, history models.Feature[[]models.HistoryEntry]) []string {
	if !history.Present() {
		parts = append(parts, `<h2 id="history">Browsing History</h2>`)
		parts = append(parts, `<p class="empty-note">Could not recover browsing history.</p>`)
		return parts
	}
	entries := history.Value()
	parts = append(parts, fmt.Sprintf(`<h2 id="history">Browsing History <span class="section-count">(%d)</span></h2>`, len(entries)))
	if len(entries) == 0 {
		parts = append(parts, `<p class="empty-note">No history entries found.</p>`)
		return parts
	}
	parts = append(parts, `<ul class="history-list">`)
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf(`<li><a href="%s">%s</a><span class="timestamp">%s</span><span class="url-display">%s</span></li>`,
			esc(entry.URL), labelFor(entry.Title, entry.URL), esc(entry.VisitedAt), esc(entry.URL)))
	}
	parts = append(parts, "</ul>")
	return parts
}

// labelFor picks the visible link label: the title when non-empty, the
// raw URL otherwise. Escaped either way.
func labelFor(title, url string) string {
	if title != "" {
		return esc(title)
	}
	return esc(url)
}
