package bookmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincentbai/chrome-rescue/internal/models"
	"github.com/vincentbai/chrome-rescue/internal/profile"
)

func writeBookmarks(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, profile.BookmarksFile), []byte(content), 0o644))
	return dir
}

func TestExtract(t *testing.T) {
	t.Run("missing file reports absence, not error", func(t *testing.T) {
		roots, err := Extract(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, roots)
	})

	t.Run("invalid JSON is a parse error", func(t *testing.T) {
		dir := writeBookmarks(t, "{not json")
		_, err := Extract(dir)
		assert.Error(t, err)
	})

	t.Run("simple tree", func(t *testing.T) {
		dir := writeBookmarks(t, `{"roots":{"bookmark_bar":{"type":"folder","name":"Bar","children":[{"type":"url","name":"Ex","url":"https://example.com"}]}}}`)
		roots, err := Extract(dir)
		require.NoError(t, err)
		require.Contains(t, roots, "bookmark_bar")

		bar := roots["bookmark_bar"]
		assert.Equal(t, models.KindFolder, bar.Kind)
		assert.Equal(t, "Bar", bar.Name)
		require.Len(t, bar.Children, 1)
		assert.Equal(t, models.BookmarkNode{Kind: models.KindURL, Name: "Ex", URL: "https://example.com"}, bar.Children[0])
	})

	t.Run("missing optional fields fall back to defaults", func(t *testing.T) {
		dir := writeBookmarks(t, `{"roots":{"other":{"type":"folder","children":[{"type":"url"}]}}}`)
		roots, err := Extract(dir)
		require.NoError(t, err)

		other := roots["other"]
		assert.Equal(t, UntitledName, other.Name)
		require.Len(t, other.Children, 1)
		assert.Equal(t, UntitledName, other.Children[0].Name)
		assert.Equal(t, "", other.Children[0].URL)
	})

	t.Run("explicitly empty name is kept, not retitled", func(t *testing.T) {
		dir := writeBookmarks(t, `{"roots":{"other":{"type":"folder","name":"","children":[{"type":"url","name":"","url":"https://blank.test"}]}}}`)
		roots, err := Extract(dir)
		require.NoError(t, err)

		other := roots["other"]
		assert.Equal(t, "", other.Name)
		require.Len(t, other.Children, 1)
		assert.Equal(t, "", other.Children[0].Name)
	})

	t.Run("non-object root entry does not kill the feature", func(t *testing.T) {
		dir := writeBookmarks(t, `{"roots":{"bookmark_bar":{"type":"folder","name":"Bar","children":[{"type":"url","name":"Ex","url":"https://example.com"}]},"sync_transaction_version":"1"}}`)
		roots, err := Extract(dir)
		require.NoError(t, err)

		assert.NotContains(t, roots, "sync_transaction_version")
		require.Contains(t, roots, "bookmark_bar")
		require.Len(t, roots["bookmark_bar"].Children, 1)
		assert.Equal(t, "Ex", roots["bookmark_bar"].Children[0].Name)
	})

	t.Run("unrecognized node types are silently skipped", func(t *testing.T) {
		dir := writeBookmarks(t, `{"roots":{"other":{"type":"folder","name":"Other","children":[{"type":"separator"},{"type":"url","name":"Keep","url":"https://keep.test"}]},"sync_transaction_version":{"type":"meta"}}}`)
		roots, err := Extract(dir)
		require.NoError(t, err)

		assert.NotContains(t, roots, "sync_transaction_version")
		require.Len(t, roots["other"].Children, 1)
		assert.Equal(t, "Keep", roots["other"].Children[0].Name)
	})
}

func TestWalk(t *testing.T) {
	tree := models.BookmarkNode{
		Kind: models.KindFolder, Name: "root",
		Children: []models.BookmarkNode{
			{Kind: models.KindURL, Name: "a", URL: "https://a.test"},
			{Kind: models.KindFolder, Name: "sub", Children: []models.BookmarkNode{
				{Kind: models.KindURL, Name: "b", URL: "https://b.test"},
				{Kind: models.KindURL, Name: "c", URL: "https://c.test"},
			}},
			{Kind: models.KindURL, Name: "d", URL: "https://d.test"},
		},
	}

	var got []Record
	Walk(tree, func(rec Record) { got = append(got, rec) })

	want := []Record{
		{Depth: 0, Kind: models.KindFolder, Name: "root"},
		{Depth: 1, Kind: models.KindURL, Name: "a", URL: "https://a.test"},
		{Depth: 1, Kind: models.KindFolder, Name: "sub"},
		{Depth: 2, Kind: models.KindURL, Name: "b", URL: "https://b.test"},
		{Depth: 2, Kind: models.KindURL, Name: "c", URL: "https://c.test"},
		{Depth: 1, Kind: models.KindURL, Name: "d", URL: "https://d.test"},
	}
	assert.Equal(t, want, got)
}
