package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmanas06/uportfolio-sub000/internal/service"
)

func newProjectsCommand(opts *options) *cobra.Command {
	var (
		category string
		featured bool
	)

	cmd := &cobra.Command{
		Use:   "projects [text]",
		Short: "List projects filtered by category and text",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := svc.FilterProjects(cmd.Context(), service.ProjectFilterRequest{
				Category:     category,
				Text:         strings.Join(args, " "),
				FeaturedOnly: featured,
			})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), resp.Projects)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tTECH\tCHAINS")
			for _, p := range resp.Projects {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Title, strings.Join(p.Tech, ", "), strings.Join(p.Chains, ", "))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d project(s) in %s\n", len(resp.Projects), resp.Category)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "filter tab: all, web3, mobile or ai")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured projects")
	return cmd
}
