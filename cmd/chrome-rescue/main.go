// chrome-rescue recovers open tabs, bookmarks, and browsing history
// from an on-disk Chrome profile directory and writes an HTML dashboard
// plus an importable bookmarks file.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vincentbai/chrome-rescue/internal/config"
	"github.com/vincentbai/chrome-rescue/internal/profile"
	"github.com/vincentbai/chrome-rescue/internal/recovery"
	"github.com/vincentbai/chrome-rescue/internal/snss"
	"github.com/vincentbai/chrome-rescue/internal/ui"
)

var (
	profileDir   string
	outputDir    string
	configPath   string
	verbose      bool
	historyLimit int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chrome-rescue",
	Short: "Recover tabs, bookmarks, and history from a Chrome profile folder",
	Long: `chrome-rescue reads a Chrome profile directory (usually named
"Default" or "Profile 1") and recovers whatever browsing artifacts its
files still hold: open tabs from session snapshots, the bookmark tree,
and recent visit history.

It writes two documents: a self-contained HTML dashboard for reading,
and a Netscape-format bookmarks file any browser can import. The source
profile is never modified.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runRecovery,
}

func runRecovery(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("history-limit") {
		cfg.HistoryLimit = historyLimit
	}

	outDir := outputDir
	if outDir == "" {
		outDir, err = recovery.DefaultOutputDir()
		if err != nil {
			return err
		}
	}

	notifier := ui.ForPlatform()
	runner := recovery.NewRunner(cfg, logger, snss.Registered())

	outcome, err := runner.Run(profileDir, outDir)
	if err != nil {
		var vErr *profile.ValidationError
		if errors.As(err, &vErr) {
			notifier.Warn("Not a Chrome Profile", fmt.Sprintf(
				"That folder doesn't look like a Chrome profile. "+
					"We expected to find: %s. "+
					"Make sure you selected the folder that contains your Chrome data "+
					"(usually named 'Default' or 'Profile 1').",
				strings.Join(vErr.Missing, ", ")))
		}
		return err
	}

	notifier.Info("Recovery Complete", outcome.Summary())
	notifier.Reveal(outDir)
	return nil
}

func main() {
	rootCmd.Flags().StringVarP(&profileDir, "profile", "p", "", "path to the Chrome profile directory (required)")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "", "output directory (default: Desktop, falling back to home)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "optional YAML config file")
	rootCmd.Flags().IntVar(&historyLimit, "history-limit", config.Default().HistoryLimit, "maximum history rows to recover")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("profile")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
