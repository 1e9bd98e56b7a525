package main

import (
	"context"

	"go.uber.org/zap"

	"movieapi/errs"
)

type movieAdder interface {
	AddMovie(ctx context.Context, title string) (int64, error)
}

type seedResult struct {
	Added    int
	NotFound int
	Failed   int
}

// seed adds every title through svc. Unknown titles and per-title failures
// are counted and logged; only cancellation stops the run early.
func seed(ctx context.Context, svc movieAdder, titles []string, log *zap.SugaredLogger) (seedResult, error) {
	var res seedResult
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		id, err := svc.AddMovie(ctx, title)
		switch {
		case err == nil:
			res.Added++
			log.Debugw("movie added", "title", title, "id", id)
		case errs.IsNotFound(err):
			res.NotFound++
			log.Debugw("title not found", "title", title)
		default:
			res.Failed++
			log.Warnw("cannot add movie", "title", title, "error", err)
		}
	}
	return res, nil
}
