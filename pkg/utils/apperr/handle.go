package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
)

// Handle logs an error that has no caller to return to
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	if goerr.HasTag(err, model.ErrTagValidation) {
		logger.Warn("validation error", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
