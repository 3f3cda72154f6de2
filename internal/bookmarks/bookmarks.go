// Package bookmarks parses Chrome's Bookmarks JSON document into a
// normalized tree and provides the pre-order walk both renderers share.
package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vincentbai/chrome-rescue/internal/models"
	"github.com/vincentbai/chrome-rescue/internal/profile"
)

// UntitledName substitutes for a node with no "name" field.
const UntitledName = "Untitled"

// jsonNode mirrors one node of Chrome's Bookmarks document. Fields are
// all optional; the "type" discriminator decides how a node is read.
// Name is a pointer so an explicitly empty name survives: only a
// missing field falls back to UntitledName.
type jsonNode struct {
	Type     string     `json:"type"`
	Name     *string    `json:"name"`
	URL      string     `json:"url"`
	Children []jsonNode `json:"children"`
}

// Roots stay raw here: older profiles carry non-object bookkeeping
// entries (e.g. "sync_transaction_version": "1") and one of those must
// not kill the whole feature.
type bookmarksDocument struct {
	Roots map[string]json.RawMessage `json:"roots"`
}

// Extract parses the Bookmarks file inside the profile directory.
// A missing file returns (nil, nil): the feature is absent, not failed.
// A file that exists but is not valid JSON is a parse error for this
// feature only.
func Extract(dir string) (map[string]models.BookmarkNode, error) {
	path := filepath.Join(dir, profile.BookmarksFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read bookmarks file: %w", err)
	}

	var doc bookmarksDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks file: %w", err)
	}

	roots := make(map[string]models.BookmarkNode, len(doc.Roots))
	for name, raw := range doc.Roots {
		var decoded jsonNode
		if err := json.Unmarshal(raw, &decoded); err != nil {
			continue
		}
		node, ok := convert(decoded)
		if !ok {
			continue
		}
		roots[name] = node
	}
	return roots, nil
}

// convert normalizes one JSON node. Unrecognized types are dropped;
// missing optional fields fall back to documented defaults.
func convert(raw jsonNode) (models.BookmarkNode, bool) {
	name := UntitledName
	if raw.Name != nil {
		name = *raw.Name
	}
	switch raw.Type {
	case "folder":
		node := models.BookmarkNode{Kind: models.KindFolder, Name: name}
		for _, child := range raw.Children {
			converted, ok := convert(child)
			if !ok {
				continue
			}
			node.Children = append(node.Children, converted)
		}
		return node, true
	case "url":
		return models.BookmarkNode{Kind: models.KindURL, Name: name, URL: raw.URL}, true
	default:
		return models.BookmarkNode{}, false
	}
}

// Record is one step of a pre-order bookmark tree traversal.
type Record struct {
	Depth int
	Kind  models.NodeKind
	Name  string
	URL   string
}

// Walk traverses node depth-first, pre-order, visiting the folder itself
// before each child in source order. Both renderers consume this walk so
// the ordering contract lives in exactly one place.
func Walk(node models.BookmarkNode, visit func(Record)) {
	walk(node, 0, visit)
}

func walk(node models.BookmarkNode, depth int, visit func(Record)) {
	switch node.Kind {
	case models.KindFolder:
		visit(Record{Depth: depth, Kind: models.KindFolder, Name: node.Name})
		for _, child := range node.Children {
			walk(child, depth+1, visit)
		}
	case models.KindURL:
		visit(Record{Depth: depth, Kind: models.KindURL, Name: node.Name, URL: node.URL})
	}
}
