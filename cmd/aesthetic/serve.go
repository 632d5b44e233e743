package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/aesthetic/pkg/history"
	"github.com/dmitrymomot/aesthetic/pkg/httpapi"
	"github.com/dmitrymomot/aesthetic/pkg/httpserver"
	"github.com/dmitrymomot/aesthetic/pkg/metrics"
	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	return cmd
}

// corpusFileCheck reports not ready while the configured corpus file fails to parse.
func (a *app) corpusFileCheck() []func(context.Context) error {
	path := a.cfg.Generator.CorpusPath
	if path == "" {
		return nil
	}
	return []func(context.Context) error{func(context.Context) error {
		_, err := namegen.LoadCorpus(path)
		return err
	}}
}

func (a *app) serve(ctx context.Context) error {
	collector := metrics.New()
	opts, err := a.generatorOptions(nil, nil)
	if err != nil {
		return err
	}
	gen, err := namegen.New(append(opts, namegen.WithObserver(collector.Observe))...)
	if err != nil {
		return err
	}

	api := httpapi.New(gen,
		httpapi.WithHistory(history.New(a.cfg.HistorySize)),
		httpapi.WithMetrics(collector),
		httpapi.WithDefaults(a.cfg.Generator.Params()),
		httpapi.WithLogger(a.log),
		httpapi.WithReadinessChecks(a.corpusFileCheck()...),
	)

	srv := httpserver.New(append(httpserver.FromConfig(a.cfg.HTTP), httpserver.WithLogger(a.log))...)
	return srv.Run(ctx, api.Router())
}
