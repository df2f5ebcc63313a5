// Package model provides the streaming generative-model client.
package model

import "context"

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one entry of the conversation history. Model turns carry the
// reasoning stream separately from the visible answer; Reasoning keeps
// growing while ReasoningStreaming is true and is final afterwards.
type Turn struct {
	Role               Role
	Text               string
	Reasoning          string
	ReasoningStreaming bool
}

// Part is one fragment of a streamed response. Thought marks reasoning
// fragments that must never be shown as answer text.
type Part struct {
	Text    string
	Thought bool
}

// Chunk is one streamed response event, carrying zero or more parts.
type Chunk struct {
	Parts []Part
}

// Request describes one generation call.
type Request struct {
	Model             string
	SystemInstruction string
	History           []Turn
	Message           string
}

// Stream yields response chunks in arrival order. Recv returns io.EOF
// when the model has finished; any other error is terminal.
type Stream interface {
	Recv() (*Chunk, error)
	Close() error
}

// Streamer starts a streaming generation call.
type Streamer interface {
	StreamGenerate(ctx context.Context, req *Request) (Stream, error)
}
