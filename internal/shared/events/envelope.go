package events

import "time"

// Envelope is the shared event shape used across Caritas contexts.
// Outbox rows store a serialized Envelope; the relay publishes it verbatim.
type Envelope struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	SourceService  string    `json:"source_service"`
	OccurredAtUTC  time.Time `json:"occurred_at_utc"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	RecipientID    string    `json:"recipient_id"`
	PayloadVersion int       `json:"payload_version"`
	Payload        any       `json:"payload"`
}
