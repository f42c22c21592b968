package sse

// SSE event type constants
const (
	EventMessage = "message"
	EventPhoto   = "photo"
	EventDelete  = "delete"
)

// Event is a single Server-Sent Event queued for a chat
type Event struct {
	Name string
	Data string // JSON payload
}
