package assistant

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/tutorhub-ai/tutorhub/internal/model"
	"github.com/tutorhub-ai/tutorhub/internal/prompt"
)

// streamReply streams a model call whose visible text IS the reply.
// Thought parts go to the reasoning channel, everything else to the
// answer channel. Both accumulate onto the in-flight turn, and the
// callbacks get the whole accumulated text each time.
func (o *Orchestrator) streamReply(ctx context.Context, g *guard, turn *model.Turn, promptText string, history []model.Turn) error {
	return o.consume(ctx, promptText, history, func(part model.Part) {
		if part.Thought {
			turn.Reasoning += part.Text
			g.reasoning(turn.Reasoning)
			return
		}
		turn.Text += part.Text
		g.answer(turn.Text)
	})
}

// streamPlan streams a model call whose visible text is a tool plan.
// Thought parts still stream to the reasoning channel, but the plan
// text is buffered and returned instead of being shown as an answer.
func (o *Orchestrator) streamPlan(ctx context.Context, g *guard, turn *model.Turn, promptText string, history []model.Turn) (string, error) {
	var planBuf strings.Builder

	err := o.consume(ctx, promptText, history, func(part model.Part) {
		if part.Thought {
			turn.Reasoning += part.Text
			g.reasoning(turn.Reasoning)
			return
		}
		planBuf.WriteString(part.Text)
	})
	if err != nil {
		return "", err
	}
	return planBuf.String(), nil
}

// consume runs one generation call and feeds every part to sink in
// arrival order.
func (o *Orchestrator) consume(ctx context.Context, promptText string, history []model.Turn, sink func(model.Part)) error {
	stream, err := o.streamer.StreamGenerate(ctx, &model.Request{
		Model:             o.model,
		SystemInstruction: prompt.SystemInstruction,
		History:           history,
		Message:           promptText,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		for _, part := range chunk.Parts {
			sink(part)
		}
	}
}
