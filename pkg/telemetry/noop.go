package telemetry

// NoopPublisher discards every event. Useful in tests that only care about
// agent behavior.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (n *NoopPublisher) Publish(event Event) {
	// No-op
}
