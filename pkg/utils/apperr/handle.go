package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an application error with its goerr values attached.
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("application error", "error", err)
}
