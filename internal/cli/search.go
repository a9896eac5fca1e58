package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmanas06/uportfolio-sub000/internal/service"
)

func newSearchCommand(opts *options) *cobra.Command {
	var submit bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search all content the way the site search box does",
		Long: `Search matches the query against every record's title, subtitle and
category. At most 8 records are returned, grouped by category.

With --submit the command prints where pressing enter would navigate to.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			svc, _, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}

			if submit {
				resp, err := svc.Submit(cmd.Context(), service.SubmitRequest{Query: query})
				if err != nil {
					return err
				}
				if !resp.OK {
					// blank query: pressing enter does nothing
					return nil
				}
				if opts.json {
					return writeJSON(cmd.OutOrStdout(), resp.Navigation)
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp.Navigation.Target)
				return nil
			}

			resp, err := svc.Search(cmd.Context(), service.SearchRequest{Query: query})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), resp.Results)
			}
			if resp.Results.Empty() {
				fmt.Fprintf(cmd.OutOrStdout(), "No results for %q\n", query)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, g := range resp.Results.Groups {
				fmt.Fprintf(tw, "%s\n", g.Label)
				for _, r := range g.Records {
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", r.ID, r.Title, r.Subtitle, r.NavigationTarget)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&submit, "submit", false, "print the navigation target for an enter-key submission")
	return cmd
}
