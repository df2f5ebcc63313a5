package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()

	c.RecordDirect(100 * time.Millisecond)
	c.RecordPlanned(300*time.Millisecond, 2)
	c.RecordApology()
	c.RecordError()

	s := c.Snapshot()
	assert.Equal(t, int64(4), s.Turns)
	assert.Equal(t, int64(1), s.DirectTurns)
	assert.Equal(t, int64(1), s.PlannedTurns)
	assert.Equal(t, int64(1), s.Apologies)
	assert.Equal(t, int64(1), s.Errors)
	assert.Equal(t, int64(2), s.ToolCalls)
	assert.InDelta(t, 200.0, s.AvgLatencyMs, 0.01)
}

func TestSnapshotEmpty(t *testing.T) {
	s := NewCollector().Snapshot()
	assert.Zero(t, s.Turns)
	assert.Zero(t, s.AvgLatencyMs)
}
