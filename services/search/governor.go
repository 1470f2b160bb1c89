package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"jdservices/models"
)

// SearchFunc is the network call the governor shapes.
type SearchFunc func(ctx context.Context, query, zipCode string) ([]models.MaterialOption, error)

// Options tune the governor's gates. Zero values fall back to the canonical
// production settings.
type Options struct {
	Debounce     time.Duration // quiet time before a call dispatches
	CacheTTL     time.Duration // per-query result lifetime
	Throttle     time.Duration // minimum gap between repeats of one query
	Window       time.Duration // rolling rate-limit window
	MaxPerWindow int           // network calls allowed per window
	Timeout      time.Duration // network call deadline
	Now          func() time.Time
}

// DefaultOptions are the canonical production settings: 300 ms debounce,
// 30 min cache, 5 min per-query throttle, 10 calls per rolling minute, 10 s
// network timeout.
func DefaultOptions() Options {
	return Options{
		Debounce:     300 * time.Millisecond,
		CacheTTL:     30 * time.Minute,
		Throttle:     5 * time.Minute,
		Window:       time.Minute,
		MaxPerWindow: 10,
		Timeout:      10 * time.Second,
	}
}

type cacheEntry struct {
	results []models.MaterialOption
	at      time.Time
}

// Governor mediates all calls to the product search so a burst of keystrokes
// or repeated submissions cannot exceed the provider's usage limits, while
// repeat queries come back from cache. State is per session and in memory;
// real quota enforcement lives in the server-side rate-limit middleware.
type Governor struct {
	opts   Options
	search SearchFunc

	mu            sync.Mutex
	gen           uint64
	cache         map[string]cacheEntry
	lastSearch    map[string]time.Time
	window        []time.Time
	results       []models.MaterialOption
	loading       bool
	lastErr       error
	nextAvailable *time.Time
}

// Snapshot is the governor's read-only observable state.
type Snapshot struct {
	Results              []models.MaterialOption `json:"results"`
	Loading              bool                    `json:"loading"`
	LastError            string                  `json:"lastError,omitempty"`
	RequestsRemaining    int                     `json:"requestsRemaining"`
	NextRequestAvailable *time.Time              `json:"nextRequestAvailable,omitempty"`
}

// NewGovernor wraps a search call with the governor's gates.
func NewGovernor(search SearchFunc, opts Options) *Governor {
	def := DefaultOptions()
	if opts.Debounce <= 0 {
		opts.Debounce = def.Debounce
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = def.CacheTTL
	}
	if opts.Throttle <= 0 {
		opts.Throttle = def.Throttle
	}
	if opts.Window <= 0 {
		opts.Window = def.Window
	}
	if opts.MaxPerWindow <= 0 {
		opts.MaxPerWindow = def.MaxPerWindow
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Governor{
		opts:       opts,
		search:     search,
		cache:      make(map[string]cacheEntry),
		lastSearch: make(map[string]time.Time),
	}
}

// Search runs one governed query. Gates, in order: debounce (only the newest
// call in the window proceeds), cache, per-query throttle, rolling rate
// limit, then the network call under its own deadline. A failed or timed-out
// call does not consume cache, throttle, or rate budget.
func (g *Governor) Search(ctx context.Context, query, zipCode string) ([]models.MaterialOption, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		g.mu.Lock()
		g.results = nil
		g.lastErr = nil
		g.mu.Unlock()
		return nil, nil
	}

	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.mu.Unlock()

	timer := time.NewTimer(g.opts.Debounce)
	select {
	case <-ctx.Done():
		timer.Stop()
		return nil, ctx.Err()
	case <-timer.C:
	}

	g.mu.Lock()
	if gen != g.gen {
		g.mu.Unlock()
		return nil, ErrSuperseded
	}
	now := g.opts.Now()

	if entry, ok := g.cache[q]; ok {
		if now.Sub(entry.at) <= g.opts.CacheTTL {
			g.results = entry.results
			g.lastErr = nil
			g.mu.Unlock()
			return entry.results, nil
		}
		delete(g.cache, q)
	}

	if last, ok := g.lastSearch[q]; ok && now.Sub(last) <= g.opts.Throttle {
		err := &ThrottledError{RetryAt: last.Add(g.opts.Throttle)}
		g.lastErr = err
		g.mu.Unlock()
		return nil, err
	}

	g.pruneWindow(now)
	if len(g.window) >= g.opts.MaxPerWindow {
		retryAt := g.window[0].Add(g.opts.Window)
		err := &RateLimitedError{RetryAt: retryAt}
		g.nextAvailable = &retryAt
		g.lastErr = err
		g.mu.Unlock()
		return nil, err
	}

	g.loading = true
	g.lastErr = nil
	g.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	results, err := g.search(callCtx, q, zipCode)
	cancel()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.loading = false
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrSearchTimeout
		}
		g.lastErr = err
		return nil, err
	}

	now = g.opts.Now()
	g.window = append(g.window, now)
	g.lastSearch[q] = now
	g.cache[q] = cacheEntry{results: results, at: now}
	g.nextAvailable = nil
	if gen == g.gen {
		g.results = results
	}
	return results, nil
}

// Clear drops the current result set and error.
func (g *Governor) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++ // cancels any in-flight debounce
	g.results = nil
	g.lastErr = nil
}

// Snapshot reports the observable state for the session's UI.
func (g *Governor) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pruneWindow(g.opts.Now())
	snap := Snapshot{
		Results:              g.results,
		Loading:              g.loading,
		RequestsRemaining:    g.opts.MaxPerWindow - len(g.window),
		NextRequestAvailable: g.nextAvailable,
	}
	if g.lastErr != nil {
		snap.LastError = g.lastErr.Error()
	}
	return snap
}

// pruneWindow drops timestamps older than the rolling window. Callers hold
// the mutex.
func (g *Governor) pruneWindow(now time.Time) {
	kept := g.window[:0]
	for _, ts := range g.window {
		if now.Sub(ts) < g.opts.Window {
			kept = append(kept, ts)
		}
	}
	g.window = kept
	if len(g.window) < g.opts.MaxPerWindow {
		g.nextAvailable = nil
	}
}
