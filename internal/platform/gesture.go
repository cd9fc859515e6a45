package platform

import (
	"context"
	"sync"
)

// GestureResult is a single-shot future for an in-flight gesture. The
// platform resolves it exactly once, either completed or cancelled;
// subsequent resolutions are ignored. Callers that abandon the gesture can
// stop waiting through the context passed to Await.
type GestureResult struct {
	once      sync.Once
	done      chan struct{}
	completed bool
}

// NewGestureResult returns an unresolved gesture future.
func NewGestureResult() *GestureResult {
	return &GestureResult{done: make(chan struct{})}
}

// Complete resolves the future: true for a completed gesture, false for a
// cancelled one. Only the first resolution takes effect.
func (g *GestureResult) Complete(ok bool) {
	g.once.Do(func() {
		g.completed = ok
		close(g.done)
	})
}

// Cancel resolves the future as cancelled.
func (g *GestureResult) Cancel() {
	g.Complete(false)
}

// Await blocks until the gesture resolves or ctx is done. It returns whether
// the gesture completed, or the context error if the caller gave up first.
func (g *GestureResult) Await(ctx context.Context) (bool, error) {
	select {
	case <-g.done:
		return g.completed, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
