package gate

import (
	"sync"
	"time"
)

const (
	DefaultRouteLimit  = 10
	DefaultGlobalLimit = 60
	DefaultWindow      = time.Minute

	// every sweepEvery admissions the limiter drops clients whose windows emptied
	sweepEvery = 256
)

type LimiterConfig struct {
	// RouteLimit caps requests per client per route inside Window.
	RouteLimit int
	// GlobalLimit caps requests per client across all guarded routes inside Window.
	GlobalLimit int
	Window      time.Duration
	Now         func() time.Time
}

// Limiter is a sliding-window log limiter keyed by client identifier.
// Only admitted requests are recorded, so a client that keeps hammering a
// full window is let back in as soon as its oldest admitted request ages out.
type Limiter struct {
	cfg LimiterConfig

	mu      sync.Mutex
	clients map[string]*clientLog
	calls   int
}

type clientLog struct {
	global []time.Time
	routes map[string][]time.Time
}

func NewLimiter(cfg LimiterConfig) *Limiter {
	if cfg.RouteLimit <= 0 {
		cfg.RouteLimit = DefaultRouteLimit
	}
	if cfg.GlobalLimit <= 0 {
		cfg.GlobalLimit = DefaultGlobalLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Limiter{cfg: cfg, clients: make(map[string]*clientLog)}
}

// Allow admits or rejects one request from clientID on route. Admission and
// recording happen under the same lock.
func (l *Limiter) Allow(clientID, route string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.cfg.Now()
	cutoff := now.Add(-l.cfg.Window)

	l.calls++
	if l.calls%sweepEvery == 0 {
		l.sweep(cutoff)
	}

	c, ok := l.clients[clientID]
	if !ok {
		c = &clientLog{routes: make(map[string][]time.Time)}
		l.clients[clientID] = c
	}
	c.prune(cutoff)

	hits := c.routes[route]
	var wait time.Duration
	if len(hits) >= l.cfg.RouteLimit {
		wait = l.retryAfter(hits, l.cfg.RouteLimit, now)
	}
	if len(c.global) >= l.cfg.GlobalLimit {
		if w := l.retryAfter(c.global, l.cfg.GlobalLimit, now); w > wait {
			wait = w
		}
	}
	if wait > 0 {
		return &RateLimitError{Route: route, RetryAfter: wait}
	}

	c.routes[route] = append(hits, now)
	c.global = append(c.global, now)
	return nil
}

// Clients is the number of clients currently tracked.
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) retryAfter(hits []time.Time, limit int, now time.Time) time.Duration {
	// hits[len-limit] is the oldest request that still keeps the window full
	d := hits[len(hits)-limit].Add(l.cfg.Window).Sub(now)
	if d <= 0 {
		d = time.Nanosecond
	}
	return d
}

func (l *Limiter) sweep(cutoff time.Time) {
	for id, c := range l.clients {
		c.prune(cutoff)
		if len(c.global) == 0 {
			delete(l.clients, id)
		}
	}
}

func (c *clientLog) prune(cutoff time.Time) {
	c.global = dropExpired(c.global, cutoff)
	for route, hits := range c.routes {
		hits = dropExpired(hits, cutoff)
		if len(hits) == 0 {
			delete(c.routes, route)
			continue
		}
		c.routes[route] = hits
	}
}

// dropExpired removes timestamps at or before cutoff. hits is in arrival order.
func dropExpired(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return hits
	}
	return append(hits[:0], hits[i:]...)
}
