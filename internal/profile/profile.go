// Package profile validates candidate Chrome profile directories.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Marker file names a Chrome profile directory is expected to contain.
const (
	BookmarksFile = "Bookmarks"
	HistoryFile   = "History"
)

// expectedFiles gate the whole run: if either is missing the directory
// is rejected before any extraction is attempted.
var expectedFiles = []string{BookmarksFile, HistoryFile}

// ValidationError rejects a directory that does not look like a Chrome
// profile, naming the marker files that were not found.
type ValidationError struct {
	Dir     string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s does not look like a Chrome profile: missing %s",
		e.Dir, strings.Join(e.Missing, ", "))
}

// Validate checks that dir plausibly contains Chrome profile data. It
// only tests marker-file existence, never content or permissions.
// Returns (true, nil) on success, or (false, missing names) otherwise.
func Validate(dir string) (bool, []string) {
	var missing []string
	for _, name := range expectedFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}
