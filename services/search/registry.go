package search

import "sync"

// Registry hands out one governor per wizard session, so each session gets
// its own cache and request budget.
type Registry struct {
	mu        sync.Mutex
	governors map[string]*Governor
	search    SearchFunc
	opts      Options
}

func NewRegistry(search SearchFunc, opts Options) *Registry {
	return &Registry{
		governors: make(map[string]*Governor),
		search:    search,
		opts:      opts,
	}
}

// For returns the governor for a session, creating it on first use.
func (r *Registry) For(sessionID string) *Governor {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.governors[sessionID]
	if !ok {
		g = NewGovernor(r.search, r.opts)
		r.governors[sessionID] = g
	}
	return g
}

// Drop releases a session's governor when the session ends.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.governors, sessionID)
}
