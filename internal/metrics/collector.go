// Package metrics provides in-memory chat session statistics collection.
package metrics

import (
	"math"
	"sync"
	"time"
)

// TurnMetrics holds aggregated timings for one intent category.
type TurnMetrics struct {
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// TurnSnapshot provides computed stats from raw turn metrics.
type TurnSnapshot struct {
	Intent      string
	Count       int64
	TotalTimeMs int64
	AvgTimeMs   float64
	MinTimeMs   int64
	MaxTimeMs   int64
}

// Snapshot represents the full session statistics at a point in time.
type Snapshot struct {
	UptimeSeconds float64
	TotalTurns    int64
	Intents       []TurnSnapshot
}

// Collector aggregates in-memory per-intent turn statistics.
// All methods are thread-safe.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	turns     map[string]*TurnMetrics
	order     []string
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		turns:     make(map[string]*TurnMetrics),
	}
}

// getOrCreate returns existing metrics or creates new ones for an intent.
// Caller must hold write lock.
func (c *Collector) getOrCreate(intent string) *TurnMetrics {
	m, ok := c.turns[intent]
	if !ok {
		m = &TurnMetrics{MinTime: time.Duration(math.MaxInt64)}
		c.turns[intent] = m
		c.order = append(c.order, intent)
	}
	return m
}

// RecordTurn records the processing time of one chat turn under its intent.
func (c *Collector) RecordTurn(intent string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(intent)
	m.Count++
	m.TotalTime += duration

	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// Snapshot returns a point-in-time snapshot of all metrics. Intents appear
// in first-seen order.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		UptimeSeconds: time.Since(c.startTime).Seconds(),
	}
	for _, intent := range c.order {
		m := c.turns[intent]
		if m.Count == 0 {
			continue
		}
		snap.TotalTurns += m.Count
		snap.Intents = append(snap.Intents, TurnSnapshot{
			Intent:      intent,
			Count:       m.Count,
			TotalTimeMs: m.TotalTime.Milliseconds(),
			AvgTimeMs:   float64(m.TotalTime.Milliseconds()) / float64(m.Count),
			MinTimeMs:   m.MinTime.Milliseconds(),
			MaxTimeMs:   m.MaxTime.Milliseconds(),
		})
	}
	return snap
}
