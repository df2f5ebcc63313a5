// Package stats tracks in-memory assistant metrics. Nothing here is
// persisted; the numbers reset with the process.
package stats

import (
	"sync/atomic"
	"time"
)

// Collector counts what the assistant has done since startup. All
// counters are atomic so the orchestrator can record from any turn.
type Collector struct {
	startTime time.Time

	turns         atomic.Int64
	directTurns   atomic.Int64
	plannedTurns  atomic.Int64
	apologies     atomic.Int64
	errors        atomic.Int64
	toolCalls     atomic.Int64
	totalDuration atomic.Int64 // nanoseconds
}

// NewCollector creates a collector with the clock started now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// RecordDirect records a completed intent-matched turn.
func (c *Collector) RecordDirect(d time.Duration) {
	c.turns.Add(1)
	c.directTurns.Add(1)
	c.totalDuration.Add(int64(d))
}

// RecordPlanned records a completed plan-driven turn.
func (c *Collector) RecordPlanned(d time.Duration, toolCalls int) {
	c.turns.Add(1)
	c.plannedTurns.Add(1)
	c.toolCalls.Add(int64(toolCalls))
	c.totalDuration.Add(int64(d))
}

// RecordApology records a turn that degraded to an apology reply.
func (c *Collector) RecordApology() {
	c.turns.Add(1)
	c.apologies.Add(1)
}

// RecordError records a turn that failed with a transport error.
func (c *Collector) RecordError() {
	c.turns.Add(1)
	c.errors.Add(1)
}

// Stats is a point-in-time snapshot.
type Stats struct {
	Uptime       string  `json:"uptime"`
	Turns        int64   `json:"turns"`
	DirectTurns  int64   `json:"direct_turns"`
	PlannedTurns int64   `json:"planned_turns"`
	Apologies    int64   `json:"apologies"`
	Errors       int64   `json:"errors"`
	ToolCalls    int64   `json:"tool_calls"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

// Snapshot returns the current counters.
func (c *Collector) Snapshot() *Stats {
	turns := c.turns.Load()
	completed := c.directTurns.Load() + c.plannedTurns.Load()
	avg := float64(0)
	if completed > 0 {
		avg = float64(c.totalDuration.Load()) / float64(completed) / 1e6
	}

	return &Stats{
		Uptime:       time.Since(c.startTime).Round(time.Second).String(),
		Turns:        turns,
		DirectTurns:  c.directTurns.Load(),
		PlannedTurns: c.plannedTurns.Load(),
		Apologies:    c.apologies.Load(),
		Errors:       c.errors.Load(),
		ToolCalls:    c.toolCalls.Load(),
		AvgLatencyMs: avg,
	}
}
