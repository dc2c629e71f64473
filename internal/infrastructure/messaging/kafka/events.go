// Package kafka publishes dataset lifecycle events so other service
// instances can invalidate their cached chart specs.
package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types carried on the dataset events topic.
const (
	EventDatasetCreated  = "dataset.created"
	EventDatasetReplaced = "dataset.replaced"
	EventDatasetDeleted  = "dataset.deleted"
)

// EventEnvelope standardizes event messages on the wire.
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	SchemaVersion string          `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}

// DatasetEventPayload is the payload for every dataset lifecycle event.
type DatasetEventPayload struct {
	DatasetID string `json:"dataset_id"`
	Name      string `json:"name,omitempty"`
	Version   int    `json:"version"`
}

// NewDatasetEvent builds a ready-to-publish envelope around a payload.
func NewDatasetEvent(eventType string, payload DatasetEventPayload) (*EventEnvelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &EventEnvelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		Source:        "bullseye-radar",
		Timestamp:     time.Now().UTC(),
		SchemaVersion: "1.0",
		Payload:       raw,
	}, nil
}

//Personal.AI order the ending
