package model

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/tutorhub-ai/tutorhub/internal/errors"
)

// GeminiConfig configures the Gemini streaming client.
type GeminiConfig struct {
	APIKey  string
	BaseURL string // Default: https://generativelanguage.googleapis.com/v1beta
	Timeout time.Duration
}

// DefaultGeminiConfig returns default configuration.
func DefaultGeminiConfig(apiKey string) *GeminiConfig {
	return &GeminiConfig{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
	}
}

// GeminiClient implements Streamer against the Gemini SSE endpoint.
// Thought parts arrive interleaved with answer parts in the same
// stream; the per-part thought flag is preserved on each Part.
type GeminiClient struct {
	cfg    *GeminiConfig
	client *http.Client
}

// NewGeminiClient creates a new streaming client.
func NewGeminiClient(cfg *GeminiConfig) *GeminiClient {
	if cfg == nil {
		return nil
	}
	return &GeminiClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ============================================================
// Wire types
// ============================================================

type geminiPart struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  map[string]any  `json:"generationConfig,omitempty"`
}

type geminiChunk struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// StreamGenerate opens an SSE stream for the request. The caller must
// drain the stream to io.EOF or Close it.
func (c *GeminiClient) StreamGenerate(ctx context.Context, req *Request) (Stream, error) {
	if c == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	body := geminiRequest{
		Contents: make([]geminiContent, 0, len(req.History)+1),
		GenerationConfig: map[string]any{
			"thinkingConfig": map[string]any{"includeThoughts": true},
		},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemInstruction}},
		}
	}
	for _, turn := range req.History {
		// Reasoning text never goes back to the model.
		body.Contents = append(body.Contents, geminiContent{
			Role:  string(turn.Role),
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	body.Contents = append(body.Contents, geminiContent{
		Role:  string(RoleUser),
		Parts: []geminiPart{{Text: req.Message}},
	})

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse",
		strings.TrimRight(c.cfg.BaseURL, "/"), req.Model)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeModelStream, "model request failed", apperrors.CategoryTransport)
	}

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, apperrors.New(apperrors.CodeModelStream,
			fmt.Sprintf("model API error (status %d): %s", resp.StatusCode, string(respBody)),
			apperrors.CategoryTransport)
	}

	return newSSEStream(resp.Body), nil
}

// ============================================================
// SSE stream
// ============================================================

// maxEventSize bounds one SSE data line. A chunk arrives as a single
// line, so the default 64KB scanner cap is far too small for long
// generations.
const maxEventSize = 4 << 20

type sseStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	closed  bool
}

func newSSEStream(body io.ReadCloser) *sseStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)
	return &sseStream{body: body, scanner: scanner}
}

// Recv returns the next chunk. Lines without a data prefix and
// keep-alive events are skipped.
func (s *sseStream) Recv() (*Chunk, error) {
	if s.closed {
		return nil, io.EOF
	}

	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}

		var raw geminiChunk
		if err := json.Unmarshal([]byte(data), &raw); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeModelStream, "malformed stream event", apperrors.CategoryTransport)
		}

		chunk := &Chunk{}
		for _, cand := range raw.Candidates {
			for _, part := range cand.Content.Parts {
				if part.Text == "" {
					continue
				}
				chunk.Parts = append(chunk.Parts, Part{Text: part.Text, Thought: part.Thought})
			}
		}
		if len(chunk.Parts) == 0 {
			continue
		}
		return chunk, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeModelStream, "stream read failed", apperrors.CategoryTransport)
	}
	return nil, io.EOF
}

// Close releases the underlying connection.
func (s *sseStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.body.Close()
}
