// Package search coalesces bursts of query changes into a single lookup
// dispatched after a quiet period.
package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultDelay = 300 * time.Millisecond

// Func performs one lookup. An empty query is passed through as is.
type Func[T any] func(ctx context.Context, query string) ([]T, error)

// State is what a search box shows.
type State[T any] struct {
	Query       string `json:"query"`
	Results     []T    `json:"results"`
	IsSearching bool   `json:"isSearching"`
	ShowResults bool   `json:"showResults"`
}

// Coalescer runs fn for the latest query once no new query has arrived for
// delay. Results of superseded lookups are dropped and their contexts
// cancelled.
type Coalescer[T any] struct {
	mu     sync.Mutex
	base   context.Context
	delay  time.Duration
	fn     Func[T]
	logger *zap.Logger

	state  State[T]
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

func New[T any](base context.Context, delay time.Duration, fn Func[T], logger *zap.Logger) *Coalescer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coalescer[T]{
		base:   base,
		delay:  delay,
		fn:     fn,
		logger: logger,
		state:  State[T]{Results: []T{}},
	}
}

// SetQuery records q and schedules a lookup. Typing always opens the
// results panel.
func (c *Coalescer[T]) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.state.Query = q
	c.state.ShowResults = true
	c.schedule(c.delay)
}

// Load dispatches a lookup for the current query without waiting.
func (c *Coalescer[T]) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.schedule(0)
}

// Clear empties the query and hides the panel, reloading the unfiltered
// results in the background.
func (c *Coalescer[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.state.Query = ""
	c.state.ShowResults = false
	c.schedule(c.delay)
}

func (c *Coalescer[T]) SetShowResults(show bool) {
	c.mu.Lock()
	c.state.ShowResults = show
	c.mu.Unlock()
}

func (c *Coalescer[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.state
	out.Results = append([]T(nil), c.state.Results...)
	if out.Results == nil {
		out.Results = []T{}
	}
	return out
}

// Close stops pending and running lookups. The coalescer ignores calls
// afterwards.
func (c *Coalescer[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stop()
}

// schedule must be called with mu held.
func (c *Coalescer[T]) schedule(after time.Duration) {
	c.stop()
	c.seq++
	c.state.IsSearching = true

	seq, query := c.seq, c.state.Query
	c.timer = time.AfterFunc(after, func() { c.run(seq, query) })
}

func (c *Coalescer[T]) stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Coalescer[T]) run(seq uint64, query string) {
	c.mu.Lock()
	if seq != c.seq || c.closed {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(c.base)
	c.cancel = cancel
	c.mu.Unlock()

	results, err := c.fn(ctx, query)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.cancel = nil
	c.state.IsSearching = false
	if err != nil {
		c.logger.Warn("search failed", zap.String("query", query), zap.Error(err))
		c.state.Results = []T{}
		return
	}
	if results == nil {
		results = []T{}
	}
	c.state.Results = results
}
