// Package recovery orchestrates one read-only extraction run: validate
// the profile, run the three extractors independently, render and write
// the output documents.
package recovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/vincentbai/chrome-rescue/internal/bookmarks"
	"github.com/vincentbai/chrome-rescue/internal/config"
	"github.com/vincentbai/chrome-rescue/internal/history"
	"github.com/vincentbai/chrome-rescue/internal/models"
	"github.com/vincentbai/chrome-rescue/internal/profile"
	"github.com/vincentbai/chrome-rescue/internal/report"
	"github.com/vincentbai/chrome-rescue/internal/session"
	"github.com/vincentbai/chrome-rescue/internal/snss"
)

// Runner performs one recovery run. It never writes to the source
// profile and performs no retries: each feature fails at most once and
// the run proceeds with whatever remains.
type Runner struct {
	cfg     config.Config
	logger  *zap.Logger
	decoder snss.Decoder // nil when the capability is unavailable
}

func NewRunner(cfg config.Config, logger *zap.Logger, decoder snss.Decoder) *Runner {
	return &Runner{cfg: cfg, logger: logger, decoder: decoder}
}

// Outcome reports what one run recovered and where it was written.
type Outcome struct {
	Result        models.ExtractionResult
	OutputDir     string
	DashboardPath string
	BookmarksPath string // empty when no bookmarks document was written
}

// Run validates profileDir and extracts whatever it can into outputDir.
// Validation failure returns *profile.ValidationError and nothing is
// written. Any other per-feature failure degrades that feature to
// absent; the dashboard is always produced.
func (r *Runner) Run(profileDir, outputDir string) (*Outcome, error) {
	if ok, missing := profile.Validate(profileDir); !ok {
		return nil, &profile.ValidationError{Dir: profileDir, Missing: missing}
	}

	result := models.ExtractionResult{
		Tabs:      r.extractTabs(profileDir),
		Bookmarks: r.extractBookmarks(profileDir),
		History:   r.extractHistory(profileDir),
	}

	renderer := report.NewRenderer(r.cfg)
	outcome := &Outcome{Result: result, OutputDir: outputDir}

	outcome.DashboardPath = filepath.Join(outputDir, r.cfg.DashboardFile)
	if err := os.WriteFile(outcome.DashboardPath, renderer.Dashboard(result), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write dashboard: %w", err)
	}

	if result.Bookmarks.Present() && len(result.Bookmarks.Value()) > 0 {
		outcome.BookmarksPath = filepath.Join(outputDir, r.cfg.BookmarksFile)
		if err := os.WriteFile(outcome.BookmarksPath, renderer.Netscape(result.Bookmarks.Value()), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write bookmarks file: %w", err)
		}
	}

	return outcome, nil
}

func (r *Runner) extractBookmarks(dir string) models.Feature[map[string]models.BookmarkNode] {
	roots, err := bookmarks.Extract(dir)
	if err != nil {
		r.logger.Warn("bookmarks unavailable", zap.Error(err))
		return models.Absent[map[string]models.BookmarkNode]()
	}
	if roots == nil {
		r.logger.Info("bookmarks file not found")
		return models.Absent[map[string]models.BookmarkNode]()
	}
	return models.Present(roots)
}

func (r *Runner) extractHistory(dir string) models.Feature[[]models.HistoryEntry] {
	entries, err := history.Read(dir, r.cfg.HistoryLimit)
	if err != nil {
		r.logger.Warn("history unavailable", zap.Error(err))
		return models.Absent[[]models.HistoryEntry]()
	}
	if entries == nil {
		r.logger.Info("history file not found")
		return models.Absent[[]models.HistoryEntry]()
	}
	return models.Present(entries)
}

func (r *Runner) extractTabs(dir string) models.Feature[[]models.TabEntry] {
	tabs, err := session.Extract(dir, r.decoder, session.DefaultCandidates(), r.cfg.InternalScheme, r.logger)
	if err != nil {
		r.logger.Warn("tabs unavailable", zap.Error(err))
		return models.Absent[[]models.TabEntry]()
	}
	if tabs == nil {
		r.logger.Info("no session snapshot could be decoded")
		return models.Absent[[]models.TabEntry]()
	}
	return models.Present(tabs)
}

// Summary renders the consolidated completion message: what was
// recovered and where the files went.
func (o *Outcome) Summary() string {
	var recovered []string
	if tabs := o.Result.Tabs; tabs.Present() && len(tabs.Value()) > 0 {
		recovered = append(recovered, fmt.Sprintf("%d open tabs", len(tabs.Value())))
	}
	if bm := o.Result.Bookmarks; bm.Present() && len(bm.Value()) > 0 {
		recovered = append(recovered, "bookmarks")
	}
	if hist := o.Result.History; hist.Present() && len(hist.Value()) > 0 {
		recovered = append(recovered, fmt.Sprintf("%d history entries", len(hist.Value())))
	}

	summary := "No data could be recovered from that profile."
	if len(recovered) > 0 {
		summary = "Recovered: " + strings.Join(recovered, ", ") + "."
	}

	note := fmt.Sprintf("Dashboard saved to %s.", o.OutputDir)
	if o.BookmarksPath != "" {
		note = fmt.Sprintf("Files saved to %s.", o.OutputDir)
	}
	return summary + " " + note
}

// DefaultOutputDir is the Desktop when it exists, the home directory
// otherwise.
func DefaultOutputDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	desktop := filepath.Join(home, "Desktop")
	if info, err := os.Stat(desktop); err == nil && info.IsDir() {
		return desktop, nil
	}
	return home, nil
}
