package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		pf         paramFlags
		count      int
		debug      bool
		asJSON     bool
		corpusPath string
		rules      []string
		modifiers  []string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more names",
		Long: "Generate names from the configured corpora. The seed is reset from the clock\n" +
			"before every name, the way the interactive generator does it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("%w: count must be positive, got %d", namegen.ErrInvalidParameter, count)
			}
			p, err := pf.params(cmd, a.cfg.Generator.Params())
			if err != nil {
				return err
			}
			if corpusPath != "" {
				a.cfg.Generator.CorpusPath = corpusPath
			}
			opts, err := a.generatorOptions(rules, modifiers)
			if err != nil {
				return err
			}
			gen, err := namegen.New(opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for range count {
				gen.ResetSeed()
				res, err := gen.Generate(cmd.Context(), p)
				if err != nil {
					return err
				}
				switch {
				case asJSON:
					if err := enc.Encode(res); err != nil {
						return err
					}
				case debug:
					fmt.Fprintf(out, "%s\n%s\n\n", res.Name, res.DebugLog)
				default:
					fmt.Fprintln(out, res.Name)
				}
			}
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of names to generate")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print the decision trace under each name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print each result as a JSON object")
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "YAML file with first and second word lists")
	cmd.Flags().StringSliceVar(&rules, "rules", nil, "Extra rules to append to the pipeline, by name")
	cmd.Flags().StringSliceVar(&modifiers, "modifiers", nil, "Post-processing modifiers to enable, by name")
	return cmd
}
