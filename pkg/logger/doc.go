// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers so field names stay consistent across the CLI,
// the HTTP API and the generator.
//
// New picks a JSON or text handler, applies static attributes and wraps the
// result in a LogHandlerDecorator. The decorator runs ContextExtractor
// callbacks on every record, which is how the HTTP layer gets request IDs
// into log lines without passing loggers around.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "aesthetic"),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "name generated", logger.Result(res))
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
