package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wizardwayz/portal/pkg/config"
)

func newPillarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pillars",
		Short: "List the pillar catalog",
		Long: `List every pillar with its category, slug and outbound destination, as the
server would load them from the current environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			return printPillars(cmd.OutOrStdout(), cfg)
		},
	}
}

func printPillars(w io.Writer, cfg appConfig) error {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tNAME\tSLUG\tOUTBOUND")
	for _, p := range reg.All() {
		outbound, _ := reg.Outbound(p.Name)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Category, p.Name, p.Slug(), outbound)
	}
	return tw.Flush()
}
