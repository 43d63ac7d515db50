package fetch

import (
	"context"
	"sync"
)

// Guard hands out strictly increasing generation numbers for one class
// of request and cancels the previous in-flight request whenever a new
// one is issued. A response is applied to state only when its
// generation is still the latest; anything older is discarded, which
// keeps a slow early response from overwriting a fast later one.
type Guard struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Next cancels the active request, bumps the generation, and returns a
// context for the new request together with its generation number.
func (g *Guard) Next(parent context.Context) (context.Context, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	g.cancel = cancel
	g.gen++
	return ctx, g.gen
}

// Current reports whether gen is still the most recently issued
// generation.
func (g *Guard) Current(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gen == g.gen
}

// CancelActive cancels the in-flight request, if any, without issuing
// a new generation.
func (g *Guard) CancelActive() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
