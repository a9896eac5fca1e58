package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tmanas06/uportfolio-sub000/internal/catalog"
	"github.com/tmanas06/uportfolio-sub000/internal/config"
	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/service"
	"github.com/tmanas06/uportfolio-sub000/internal/storage"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	source  string
	path    string
	dbPath  string
	json    bool
	verbose bool
}

// NewRootCommand builds the portfolio command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Query and manage portfolio content",
		SilenceUsage:  true, // don't print usage on operational errors
		SilenceErrors: true, // main prints the error
		Long: `portfolio searches the site content the same way the API does and
manages the SQLite content store the API can serve from.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().StringVar(&opts.source, "source", config.SourceEmbedded, "content source: embedded, yaml or sqlite")
	root.PersistentFlags().StringVar(&opts.path, "content", "", "YAML content file (with --source yaml)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "./data/portfolio.db", "SQLite database (with --source sqlite)")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newSearchCommand(opts),
		newProjectsCommand(opts),
		newIndexCommand(opts),
		newSeedCommand(opts),
		newExportCommand(opts),
	)
	return root
}

// openSource returns the content source selected by the flags.
// The returned close func must always be called.
func (o *options) openSource() (content.Source, func(), error) {
	switch o.source {
	case config.SourceEmbedded:
		return content.NewEmbeddedSource(), func() {}, nil
	case config.SourceYAML:
		if o.path == "" {
			return nil, nil, fmt.Errorf("--content is required with --source %s", config.SourceYAML)
		}
		return content.NewYAMLSource(o.path), func() {}, nil
	case config.SourceSQLite:
		db, err := storage.New(o.dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open database %s: %w", o.dbPath, err)
		}
		if err := storage.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("cannot migrate database %s: %w", o.dbPath, err)
		}
		return storage.NewContentRepo(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q (want embedded, yaml or sqlite)", o.source)
	}
}

// loadService loads the content once and wraps it in a SearchService.
func (o *options) loadService(ctx context.Context) (service.SearchService, *catalog.Snapshot, error) {
	source, closeSource, err := o.openSource()
	if err != nil {
		return nil, nil, err
	}
	defer closeSource()

	cat := catalog.New(source)
	snap, err := cat.Reload(ctx)
	if err != nil {
		return nil, nil, err
	}
	return service.NewSearchService(cat), snap, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
