// Package httpserver runs the API behind a context-driven lifecycle: Run
// blocks until the context is cancelled and then shuts the server down
// within the configured timeout.
//
// # Usage
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(append(httpserver.FromConfig(cfg.HTTP), httpserver.WithLogger(log))...)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
