package events

// EventCollector is embedded in aggregates to buffer domain events raised
// during state transitions until the application layer drains them.
type EventCollector struct {
	pending []DomainEvent
}

// Record buffers a domain event.
func (c *EventCollector) Record(event DomainEvent) {
	c.pending = append(c.pending, event)
}

// Events returns the buffered events without draining them.
func (c *EventCollector) Events() []DomainEvent {
	return c.pending
}

// ClearEvents drains the buffer. It returns nil when nothing was recorded.
func (c *EventCollector) ClearEvents() []DomainEvent {
	drained := c.pending
	c.pending = nil
	return drained
}
