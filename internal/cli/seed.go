package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/storage"
)

func newSeedCommand(opts *options) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the SQLite content store with a YAML file",
		Long: `Seed validates a YAML content file and writes it into the SQLite
database given by --db, replacing whatever was there. Without --from the
embedded sample content is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var source content.Source = content.NewEmbeddedSource()
			if from != "" {
				source = content.NewYAMLSource(from)
			}
			c, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}

			db, err := storage.New(opts.dbPath)
			if err != nil {
				return fmt.Errorf("cannot open database %s: %w", opts.dbPath, err)
			}
			defer func() {
				_ = db.Close()
			}()
			if err := storage.Migrate(db); err != nil {
				return fmt.Errorf("cannot migrate database %s: %w", opts.dbPath, err)
			}

			if err := storage.NewContentRepo(db).Replace(cmd.Context(), c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s: %d projects, %d skills, %d experience, %d achievements, %d certifications\n",
				opts.dbPath, len(c.Projects), c.Skills.Len(), len(c.Experience), len(c.Achievements), len(c.Certifications))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "YAML content file to seed from (default: embedded sample)")
	return cmd
}
