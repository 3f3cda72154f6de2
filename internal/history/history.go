// Package history reads Chrome's History SQLite store.
package history

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // CGO-free SQLite

	"github.com/vincentbai/chrome-rescue/internal/models"
	"github.com/vincentbai/chrome-rescue/internal/profile"
)

// UnknownTime substitutes for a visit timestamp that cannot be converted.
const UnknownTime = "Unknown"

// Chrome stores last_visit_time as microseconds since 1601-01-01 UTC.
// Offset between that epoch and the Unix epoch, in seconds.
const epochOffsetSeconds = 11644473600

const visitTimeLayout = "2006-01-02 15:04:05"

// Read returns the most recent history rows, newest first, capped at
// limit. A missing History file returns (nil, nil): the feature is
// absent, not failed.
//
// The live store may be exclusively locked by a running browser, so the
// query runs against a uniquely named temporary copy which is removed on
// every exit path.
func Read(dir string, limit int) ([]models.HistoryEntry, error) {
	path := filepath.Join(dir, profile.HistoryFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat history file: %w", err)
	}

	tmpPath := filepath.Join(os.TempDir(), "chrome-rescue-history-"+uuid.NewString()+".db")
	if err := copyFile(path, tmpPath); err != nil {
		return nil, fmt.Errorf("failed to copy history store: %w", err)
	}
	defer os.Remove(tmpPath)

	return query(tmpPath, limit)
}

func query(path string, limit int) ([]models.HistoryEntry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT url, title, last_visit_time
		FROM urls
		ORDER BY last_visit_time DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history store: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var (
			url       string
			title     sql.NullString
			visitTime sql.NullInt64
		)
		if err := rows.Scan(&url, &title, &visitTime); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, models.HistoryEntry{
			URL:       url,
			Title:     title.String,
			VisitedAt: formatVisitTime(visitTime),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, nil
}

// formatVisitTime converts a Chrome-epoch microsecond timestamp to a
// display string. Any invalid value yields the UnknownTime sentinel
// instead of failing the row.
func formatVisitTime(raw sql.NullInt64) string {
	if !raw.Valid || raw.Int64 < 0 {
		return UnknownTime
	}
	micros := raw.Int64
	t := time.Unix(micros/1e6-epochOffsetSeconds, (micros%1e6)*1000).UTC()
	if t.Year() < 1601 || t.Year() > 9999 {
		return UnknownTime
	}
	return t.Format(visitTimeLayout)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}
