package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/aesthetic/pkg/config"
	"github.com/dmitrymomot/aesthetic/pkg/httpapi"
	"github.com/dmitrymomot/aesthetic/pkg/logger"
	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

const serviceName = "aesthetic"

// app carries what every subcommand needs once the configuration is loaded.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var envFile string

	root := &cobra.Command{
		Use:           "aesthetic",
		Short:         "Generate aesthetic two-word names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if envFile != "" {
				a.cfg, err = config.LoadFiles(envFile)
			} else {
				a.cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			if a.log, err = newLogger(a.cfg, cmd.ErrOrStderr()); err != nil {
				return err
			}
			logger.SetAsDefault(a.log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Load settings from this .env file instead of ./.env")

	root.AddCommand(
		newGenerateCmd(a),
		newRandomCmd(a),
		newRulesCmd(a),
		newServeCmd(a),
	)
	return root
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithContextExtractors(httpapi.RequestIDExtractor()),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...), nil
}

// generatorOptions turns the generator settings plus any command-line rule
// and modifier names into namegen options.
func (a *app) generatorOptions(extraRules, modifiers []string) ([]namegen.Option, error) {
	gc := a.cfg.Generator
	opts := []namegen.Option{namegen.WithLogger(a.log)}

	if gc.CorpusPath != "" {
		corpus, err := namegen.LoadCorpus(gc.CorpusPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, namegen.WithCorpus(corpus))
	}

	if names := nonEmpty(append(append([]string(nil), gc.ExtraRules...), extraRules...)); len(names) > 0 {
		rules, err := namegen.RulesByName(names...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, namegen.WithExtraRules(rules...))
	}

	if names := nonEmpty(append(append([]string(nil), gc.Modifiers...), modifiers...)); len(names) > 0 {
		chain, err := namegen.TransformsByName(namegen.Modifiers(nil), names...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, namegen.WithTransforms(chain...))
	}
	return opts, nil
}

func nonEmpty(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// paramFlags binds the generator parameter flags shared by generate and random.
type paramFlags struct {
	a, c, m int64
	weight  float64
}

func (f *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64VarP(&f.a, "multiplier", "a", namegen.DefaultA, "LCG multiplier A")
	cmd.Flags().Int64VarP(&f.c, "increment", "c", namegen.DefaultC, "LCG increment C")
	cmd.Flags().Int64VarP(&f.m, "modulus", "m", namegen.DefaultM, "LCG modulus M (> 1)")
	cmd.Flags().Float64VarP(&f.weight, "weight", "w", namegen.DefaultEntropyWeight, "Entropy weight, 0 disables timing entropy")
}

// params starts from the configured defaults and applies the flags that were
// set explicitly.
func (f *paramFlags) params(cmd *cobra.Command, base namegen.Params) (namegen.Params, error) {
	flags := cmd.Flags()
	if flags.Changed("multiplier") {
		base.A = f.a
	}
	if flags.Changed("increment") {
		base.C = f.c
	}
	if flags.Changed("modulus") {
		base.M = f.m
	}
	if flags.Changed("weight") {
		base.EntropyWeight = f.weight
	}
	if err := base.Validate(); err != nil {
		return namegen.Params{}, err
	}
	return base, nil
}
