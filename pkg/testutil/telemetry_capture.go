package testutil

import (
	"sync"

	"carbon-telemetry/pkg/telemetry"
)

// CapturingPublisher collects telemetry events for assertions in tests.
type CapturingPublisher struct {
	mu     sync.Mutex
	Events []telemetry.Event
}

func NewCapturingPublisher() *CapturingPublisher { return &CapturingPublisher{} }

func (c *CapturingPublisher) Publish(event telemetry.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Events = append(c.Events, event)
}

// Snapshot returns a copy of the captured events.
func (c *CapturingPublisher) Snapshot() []telemetry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]telemetry.Event, len(c.Events))
	copy(out, c.Events)
	return out
}

// CountByType tallies captured events by their EventType.
func (c *CapturingPublisher) CountByType() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := make(map[string]int)
	for _, e := range c.Events {
		counts[e.EventType()]++
	}
	return counts
}
