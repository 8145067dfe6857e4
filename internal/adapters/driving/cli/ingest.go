package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/docsift/docsift/internal/adapters/driven/storage/sqlite"
	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/core/services"
	"github.com/docsift/docsift/internal/logger"
	htmlnorm "github.com/docsift/docsift/internal/normalisers/html"
	"github.com/docsift/docsift/internal/normalisers/plaintext"
)

var (
	ingestXHTML   bool
	ingestStore   bool
	ingestWatch   bool
	ingestCharset string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [paths...]",
	Short: "Ingest HTML files into clean text",
	Long: `Reads each file, resolves its character encoding, filters the markup
through the safe-element policy, and prints the result.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestXHTML, "xhtml", false, "print filtered XHTML instead of plain text")
	ingestCmd.Flags().BoolVar(&ingestStore, "store", false, "persist ingested documents to the local store")
	ingestCmd.Flags().BoolVar(&ingestWatch, "watch", false, "keep running and re-ingest files on change")
	ingestCmd.Flags().StringVar(&ingestCharset, "charset", "", "declared charset hint for encoding resolution")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	service, store, err := buildIngestService()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	for _, path := range args {
		if err := ingestPath(cmd, service, path); err != nil {
			return err
		}
	}

	if ingestWatch {
		return watchPaths(cmd, service, args)
	}
	return nil
}

// buildIngestService wires the normalisers and, when requested, the
// SQLite store. The returned store is nil unless --store was given.
func buildIngestService() (*services.IngestService, *sqlite.Store, error) {
	html := htmlnorm.New()
	if cfg := openConfig(); cfg != nil {
		if name := cfg.GetString("default_charset"); name != "" {
			html.Resolver().SetDefaultCharset(name)
		}
	}

	var store *sqlite.Store
	var docStore driven.DocumentStore
	if ingestStore {
		s, err := sqlite.NewStore("")
		if err != nil {
			return nil, nil, fmt.Errorf("opening document store: %w", err)
		}
		store = s
		docStore = s
	}

	service := services.NewIngestService(
		[]driven.Normaliser{html, plaintext.New()}, docStore)
	return service, store, nil
}

func ingestPath(cmd *cobra.Command, service *services.IngestService, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	raw := &domain.RawDocument{
		SourceID: "local",
		URI:      path,
		MIMEType: mimeTypeFor(path),
		Content:  content,
	}
	if ingestCharset != "" {
		raw.Metadata = map[string]any{domain.MetaContentEncoding: ingestCharset}
	}

	result, err := service.Ingest(cmd.Context(), raw)
	if err != nil {
		return err
	}

	logger.Info("ingested %s as %v", path, result.Document.Metadata[domain.MetaContentEncoding])
	if ingestXHTML {
		cmd.Println(result.XHTML)
	} else {
		cmd.Println(result.Document.Content)
	}
	return nil
}

// mimeTypeFor derives the MIME type from the file extension. Unknown
// extensions fall back to plain text.
func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return "text/html"
	case ".md":
		return "text/markdown"
	case ".csv":
		return "text/csv"
	default:
		return "text/plain"
	}
}

// watchPaths re-ingests files as they change, until interrupted.
func watchPaths(cmd *cobra.Command, service *services.IngestService, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cmd.Println("Watching for changes. Press Ctrl+C to stop.")
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("change detected: %s", event.Name)
			if err := ingestPath(cmd, service, event.Name); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				logger.Warn("re-ingest of %s failed: %v", event.Name, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
