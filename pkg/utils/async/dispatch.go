package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs a handler on its own goroutine with panic recovery.
// The caller's context is replaced with a background context carrying the
// same logger, so cache warmers keep running after an HTTP request
// completes. Handler errors are logged and otherwise dropped.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := detach(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// detach builds a background context preserving the request logger.
func detach(ctx context.Context) context.Context {
	newCtx := context.Background()
	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}
	return newCtx
}
