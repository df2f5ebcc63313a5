// Package protocol provides the wire types exchanged between the
// assistant engine and the admin web frontend. These types can be
// imported by any transport layer (SSE, WebSocket, polling).
package protocol

// ChatRequest is an incoming question from the frontend.
type ChatRequest struct {
	ID      string        `json:"id"`
	Message string        `json:"message"`
	History []HistoryTurn `json:"history,omitempty"`
}

// HistoryTurn is one prior conversation turn. Reasoning is carried for
// display only and is never sent back to the model.
type HistoryTurn struct {
	Role      string `json:"role"` // "user" or "model"
	Text      string `json:"text"`
	Reasoning string `json:"reasoning,omitempty"`
}

// EventType discriminates streamed chat events.
type EventType string

const (
	// EventAnswer carries the full answer text accumulated so far.
	EventAnswer EventType = "answer"
	// EventReasoning carries the full reasoning text accumulated so far.
	EventReasoning EventType = "reasoning"
	// EventDone marks successful completion of the turn.
	EventDone EventType = "done"
	// EventError marks a failed turn. Done and error are exclusive.
	EventError EventType = "error"
)

// ChatEvent is one streamed event of a turn. Answer and reasoning
// events replace the previously displayed text, they do not append.
type ChatEvent struct {
	RequestID string    `json:"request_id"`
	Type      EventType `json:"type"`
	Text      string    `json:"text,omitempty"`
	Error     string    `json:"error,omitempty"`
}
