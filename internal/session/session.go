// Package session recovers open tabs from Chrome's session snapshot
// files by delegating to the snss decoder capability.
package session

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/vincentbai/chrome-rescue/internal/models"
	"github.com/vincentbai/chrome-rescue/internal/snss"
)

// Candidate is one snapshot file to try, tagged with its dialect.
type Candidate struct {
	Name    string
	Dialect snss.Dialect
}

// DefaultCandidates returns the snapshot files in priority order. The
// first file to mention a URL wins deduplication.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "Current Session", Dialect: snss.DialectSession},
		{Name: "Last Session", Dialect: snss.DialectSession},
		{Name: "Current Tabs", Dialect: snss.DialectTab},
		{Name: "Last Tabs", Dialect: snss.DialectTab},
	}
}

// Extract scans the candidate snapshot files inside dir in priority
// order and collects a deduplicated, order-preserving tab list.
//
// The tabs feature is absent (nil tabs) when no decoder exists, every
// candidate is missing, or every present candidate fails to decode. If
// at least one candidate decodes, the result is present even when empty
// (non-nil slice).
//
// Entries with an empty URL or a URL on the browser-internal scheme are
// excluded. A decode failure on one candidate is logged and skipped; it
// never aborts the scan.
func Extract(dir string, dec snss.Decoder, candidates []Candidate, internalScheme string, logger *zap.Logger) ([]models.TabEntry, error) {
	if dec == nil {
		return nil, snss.ErrDecoderUnavailable
	}

	var (
		tabs       []models.TabEntry
		seen       = make(map[string]struct{})
		decodedAny bool
	)
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate.Name)
		f, err := os.Open(path)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("failed to open snapshot file",
					zap.String("file", candidate.Name), zap.Error(err))
			}
			continue
		}
		entries, err := dec.Decode(f, candidate.Dialect)
		f.Close()
		if err != nil {
			logger.Warn("failed to decode snapshot file",
				zap.String("file", candidate.Name),
				zap.Stringer("dialect", candidate.Dialect),
				zap.Error(err))
			continue
		}
		decodedAny = true

		for _, entry := range entries {
			if entry.URL == "" {
				continue
			}
			if internalScheme != "" && strings.HasPrefix(entry.URL, internalScheme) {
				continue
			}
			if _, dup := seen[entry.URL]; dup {
				continue
			}
			seen[entry.URL] = struct{}{}
			tabs = append(tabs, models.TabEntry{URL: entry.URL, Title: entry.Title})
		}
	}

	if !decodedAny {
		return nil, nil
	}
	if tabs == nil {
		tabs = []models.TabEntry{}
	}
	return tabs, nil
}
