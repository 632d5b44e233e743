package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// An empty id returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Params groups generator parameters under the key "params".
func Params(p namegen.Params) slog.Attr {
	return slog.Group("params",
		slog.Int64("a", p.A),
		slog.Int64("c", p.C),
		slog.Int64("m", p.M),
		slog.Float64("entropy_weight", p.EntropyWeight),
	)
}

// Result records the identifying fields of a generated name under "result".
func Result(r namegen.Result) slog.Attr {
	return slog.Group("result",
		slog.String("id", r.ID.String()),
		slog.String("name", r.Name),
		slog.Int("pool_size", r.PoolSize),
		slog.Bool("exhausted", r.Exhausted),
	)
}
