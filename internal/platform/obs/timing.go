package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID stores a request id in ctx for downstream log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs the duration of an operation when the returned function runs.
// Pass a pointer to the surrounding function's named error so failures are
// logged with the same event.
//
//	defer obs.Time(ctx, log, "solver.Optimize")(&err)
func Time(ctx context.Context, log zerolog.Logger, op string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		ev := log.Info()
		if errp != nil && *errp != nil {
			ev = log.Error().Err(*errp)
		}
		ev.Str("req_id", reqID).Str("op", op).Int64("dur_ms", dur.Milliseconds()).Msg("op done")
	}
}
