// Package models holds the shared data model for one recovery run.
package models

import "sort"

// NodeKind discriminates bookmark tree nodes.
type NodeKind string

const (
	KindFolder NodeKind = "folder"
	KindURL    NodeKind = "url"
)

// BookmarkNode is one node of the bookmark tree: either a folder with
// ordered children or a link. Children preserve source order.
type BookmarkNode struct {
	Kind     NodeKind
	Name     string
	URL      string         // links only
	Children []BookmarkNode // folders only
}

// HistoryEntry is one row recovered from the History store.
type HistoryEntry struct {
	URL       string
	Title     string // may be empty
	VisitedAt string // "2006-01-02 15:04:05" or "Unknown"
}

// TabEntry is one open/recent tab recovered from session snapshot files.
type TabEntry struct {
	URL   string
	Title string // may be empty
}

// Feature is a tri-state holder: absent (source unreadable or missing)
// or present with a value that may itself be empty. Absence and
// emptiness render differently.
type Feature[T any] struct {
	value   T
	present bool
}

// Present wraps a recovered value.
func Present[T any](v T) Feature[T] {
	return Feature[T]{value: v, present: true}
}

// Absent marks a feature whose source could not be read.
func Absent[T any]() Feature[T] {
	return Feature[T]{}
}

func (f Feature[T]) Present() bool { return f.present }

// Value returns the recovered value; the zero value when absent.
func (f Feature[T]) Value() T { return f.value }

// ExtractionResult aggregates everything one run recovered. Built once,
// then only read by the renderers.
type ExtractionResult struct {
	Tabs      Feature[[]TabEntry]
	Bookmarks Feature[map[string]BookmarkNode]
	History   Feature[[]HistoryEntry]
}

// canonical Chrome root order; anything else sorts after these by name
var rootRank = map[string]int{
	"bookmark_bar": 0,
	"other":        1,
	"mobile":       2,
}

// OrderedRootNames returns the bookmark root names in a deterministic
// order: the canonical Chrome roots first, then any remaining names
// alphabetically. Keeps rendered output byte-identical across runs.
func OrderedRootNames(roots map[string]BookmarkNode) []string {
	names := make([]string, 0, len(roots))
	for name := range roots {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iKnown := rootRank[names[i]]
		rj, jKnown := rootRank[names[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return names[i] < names[j]
		}
	})
	return names
}
