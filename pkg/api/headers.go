package api

// Headers attached to dispatched events, whatever the transport.
const (
	// HeaderProcessID identifies the pipeline process the event belongs to
	HeaderProcessID = "X-Proteus-ProcessID"

	// HeaderCorrelationID carries the correlation ID of the dispatch
	HeaderCorrelationID = "X-Proteus-CorrelationID"

	// HeaderType is the event type
	HeaderType = "X-Proteus-Type"
)
