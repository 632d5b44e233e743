package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		pf    paramFlags
		bound int
		count int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Draw raw values from the entropy mixer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := pf.params(cmd, a.cfg.Generator.Params())
			if err != nil {
				return err
			}
			mixer := namegen.NewMixer(nil, nil)
			out := cmd.OutOrStdout()
			for range max(count, 1) {
				v, err := mixer.Intn(bound, p)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().IntVar(&bound, "max", 100, "Exclusive upper bound")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to draw")
	return cmd
}
