package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request outcomes for the /metrics endpoint. Counters are
// plain atomics; a Snapshot taken under load is approximate, which is enough
// for a dashboard health view.
type Collector struct {
	requests    atomic.Uint64
	clientErrs  atomic.Uint64
	serverErrs  atomic.Uint64
	authDenied  atomic.Uint64
	rateLimited atomic.Uint64
	durationMs  atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.requests.Add(1)
	c.durationMs.Add(uint64(duration.Milliseconds()))
	switch {
	case status == 429:
		c.rateLimited.Add(1)
	case status == 401 || status == 403:
		c.authDenied.Add(1)
	case status >= 500:
		c.serverErrs.Add(1)
	case status >= 400:
		c.clientErrs.Add(1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := c.requests.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(c.durationMs.Load()) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"clientErrors":     c.clientErrs.Load(),
		"serverErrors":     c.serverErrs.Load(),
		"authRejections":   c.authDenied.Load(),
		"rateLimitedTotal": c.rateLimited.Load(),
		"avgDurationMs":    avg,
	}
}
