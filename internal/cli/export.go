package cli

import (
	"github.com/spf13/cobra"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
)

func newExportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the selected content source out as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}
			c, err := svc.Content(cmd.Context())
			if err != nil {
				return err
			}
			data, err := content.Marshal(c)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
