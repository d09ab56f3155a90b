package middleware

import (
	"context"
	"log/slog"

	"travelgo/internal/app/commands"
	"travelgo/internal/app/outbox"
)

// OutboxFlush publishes the search.submitted and language.changed records a
// command left in box. The command has already taken effect by then, so a
// failed flush is logged and the records stay with the outbox for its next flush.
// The flush outlives a cancelled request context.
func OutboxFlush(box outbox.Outbox, logger *slog.Logger) CommandMiddleware {
	if box == nil {
		panic("middleware: outbox required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return func(next commands.Bus) commands.Bus {
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			res, err := next.Dispatch(ctx, cmd)
			if err != nil {
				return nil, err
			}
			if err := box.Flush(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("outbox flush failed", "command", cmd.Key(), "error", err)
			}
			return res, nil
		})
	}
}
