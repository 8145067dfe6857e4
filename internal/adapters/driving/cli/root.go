// Package cli provides the docsift command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/docsift/docsift/internal/adapters/driven/config/file"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Ingest HTML documents into clean text",
	Long: `Docsift ingests HTML documents of uncertain provenance: it resolves
the character encoding of the raw bytes, filters the markup down to a
safe structural vocabulary, and emits clean text or XHTML.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openConfig loads the configuration store. A missing or unreadable
// config is not fatal; commands fall back to defaults.
func openConfig() driven.ConfigStore {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("could not load config: %v", err)
		return nil
	}
	if cfg.GetBool("verbose") {
		logger.SetVerbose(true)
	}
	return cfg
}
