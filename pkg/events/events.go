package events

import (
	"fmt"
	"time"

	"proteus/pkg/api"
)

// EventType type of event
type EventType string

const (
	// TypeBatch is published once per plan batch, in execution order.
	TypeBatch EventType = "BATCH"

	// TypePipeline closes the dispatch of a plan.
	TypePipeline EventType = "PIPELINE"
)

// Event represents a message published when a plan is dispatched.
type Event struct {
	Type          EventType `json:"type"`
	ProcessID     string    `json:"process_id"`
	CorrelationID string    `json:"correlation_id"`
	Pipeline      string    `json:"pipeline"`

	// Batch is set for events with type TypeBatch.
	Batch *api.Batch `json:"batch,omitempty"`

	// Batches is the total number of batches, set for TypePipeline events.
	Batches int `json:"batches,omitempty"`

	Time time.Time `json:"time"`
}

func (e Event) String() string {
	if e.Batch != nil {
		return fmt.Sprintf("%s %d of pipeline %s", e.Type, e.Batch.Seq, e.Pipeline)
	}
	return fmt.Sprintf("%s for pipeline %s", e.Type, e.Pipeline)
}
