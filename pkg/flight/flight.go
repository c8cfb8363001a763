// Package flight collapses concurrent identical calls without tying the
// shared work to whichever caller arrived first.
package flight

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Do runs fn once per key among concurrent callers. fn receives a context
// that keeps the first caller's values but not its cancellation, bounded by
// timeout. Each caller stops waiting when its own ctx is done; the shared
// call keeps running for the others.
func Do[T any](
	ctx context.Context,
	g *singleflight.Group,
	key string,
	timeout time.Duration,
	fn func(ctx context.Context) (T, error),
) (v T, shared bool, err error) {
	ch := g.DoChan(key, func() (any, error) {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		return fn(wctx)
	})

	select {
	case <-ctx.Done():
		return v, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return v, res.Shared, res.Err
		}
		v, _ = res.Val.(T)
		return v, res.Shared, nil
	}
}
