package extract

import "sync"

// Guard serializes the outcome of concurrent extractions. Each request takes
// a ticket; only the result of the latest ticket may be applied, so a slow
// earlier extraction cannot overwrite what a later one already wrote.
type Guard struct {
	mu     sync.Mutex
	latest uint64
}

// Begin registers a new extraction and returns its ticket.
func (g *Guard) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latest++
	return g.latest
}

// Current reports whether the ticket is still the latest one, i.e. whether
// its result is allowed to be applied.
func (g *Guard) Current(ticket uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ticket == g.latest
}
