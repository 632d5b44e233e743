package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

func newRulesCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the pipeline rules and modifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.generatorOptions(nil, nil)
			if err != nil {
				return err
			}
			gen, err := namegen.New(opts...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STATUS\tKIND\tRULE")
			active := make(map[string]bool)
			for _, r := range gen.Rules() {
				active[r.Name] = true
				fmt.Fprintf(tw, "active\t%s\t%s\n", r.Kind, r.Name)
			}
			if all {
				for _, r := range namegen.OptionalRules() {
					if !active[r.Name] {
						fmt.Fprintf(tw, "optional\t%s\t%s\n", r.Kind, r.Name)
					}
				}
				for _, t := range namegen.Modifiers(nil) {
					fmt.Fprintf(tw, "modifier\t-\t%s\n", t.Name)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if !all {
				fmt.Fprintln(cmd.OutOrStdout(), "\nUse --all to include optional rules and modifiers.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also list optional rules and modifiers")
	return cmd
}
