package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Collector keeps process-lifetime request counters and per-operation
// outcome counts for the calculation endpoints.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	clientErrors    uint64
	rateLimited     uint64
	totalDurationMs uint64

	mu         sync.Mutex
	operations map[string]*outcome
}

type outcome struct {
	ok     uint64
	failed uint64
}

func New() *Collector {
	return &Collector{operations: map[string]*outcome{}}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status >= 500:
		atomic.AddUint64(&c.errorRequests, 1)
	case status == 429:
		atomic.AddUint64(&c.rateLimited, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// Observe counts one run of a named domain operation.
func (c *Collector) Observe(operation string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.operations[operation]
	if !ok {
		o = &outcome{}
		c.operations[operation] = o
	}
	if err != nil {
		o.failed++
		return
	}
	o.ok++
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	clientErrs := atomic.LoadUint64(&c.clientErrors)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	names := make([]string, 0, len(c.operations))
	for name := range c.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	ops := make(map[string]any, len(names))
	for _, name := range names {
		o := c.operations[name]
		ops[name] = map[string]uint64{"ok": o.ok, "failed": o.failed}
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       errs,
		"clientErrorsTotal": clientErrs,
		"rateLimitedTotal":  limited,
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"operations":        ops,
	}
}
