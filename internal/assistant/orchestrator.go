package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tutorhub-ai/tutorhub/internal/apireq"
	apperrors "github.com/tutorhub-ai/tutorhub/internal/errors"
	"github.com/tutorhub-ai/tutorhub/internal/intent"
	"github.com/tutorhub-ai/tutorhub/internal/model"
	"github.com/tutorhub-ai/tutorhub/internal/plan"
	"github.com/tutorhub-ai/tutorhub/internal/prompt"
	"github.com/tutorhub-ai/tutorhub/internal/stats"
	"github.com/tutorhub-ai/tutorhub/internal/tools"
)

// apologyReply is streamed when a turn fails for a reason the user can
// do nothing about: a bad plan, an unknown tool, or a backend error.
const apologyReply = "Xin lỗi, tôi chưa thể trả lời câu hỏi này. Bạn vui lòng thử lại sau nhé."

// Config wires an orchestrator.
type Config struct {
	Catalog  *intent.Catalog
	Caller   tools.Caller
	Registry *tools.Registry
	Streamer model.Streamer
	Model    string
	Logger   *slog.Logger
	Stats    *stats.Collector
}

// Orchestrator answers one chat turn at a time. A matched intent is
// answered directly from the backend; everything else goes through a
// model-generated tool plan. Both paths stream the reply.
type Orchestrator struct {
	catalog  *intent.Catalog
	caller   tools.Caller
	registry *tools.Registry
	streamer model.Streamer
	executor *plan.Executor
	model    string
	log      *slog.Logger
	stats    *stats.Collector
}

// New creates an orchestrator.
func New(cfg *Config) *Orchestrator {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	collector := cfg.Stats
	if collector == nil {
		collector = stats.NewCollector()
	}
	return &Orchestrator{
		catalog:  cfg.Catalog,
		caller:   cfg.Caller,
		registry: cfg.Registry,
		streamer: cfg.Streamer,
		executor: plan.NewExecutor(cfg.Registry, log),
		model:    cfg.Model,
		log:      log,
		stats:    collector,
	}
}

// Stats returns the collector tracking this orchestrator's turns.
func (o *Orchestrator) Stats() *stats.Collector { return o.stats }

// Ask handles one user query. It blocks until the turn completes; all
// incremental output is delivered through cb, and the completed model
// turn is returned for the caller's history. Exactly one of OnDone or
// OnError is invoked. Ask itself never returns an error: failures are
// reported through the callbacks.
func (o *Orchestrator) Ask(ctx context.Context, query string, history []model.Turn, cb Callbacks) *model.Turn {
	turnID := uuid.NewString()
	log := o.log.With("turn", turnID)
	g := &guard{cb: cb}
	turn := &model.Turn{Role: model.RoleModel, ReasoningStreaming: true}

	log.Info("turn started", "state", StateMatchingIntent)

	req, mapping := o.catalog.CreateRequest(query)
	if mapping != nil {
		o.answerDirect(ctx, log, g, turn, query, history, req, mapping)
	} else {
		o.answerPlanned(ctx, log, g, turn, query, history)
	}

	turn.ReasoningStreaming = false
	return turn
}

// answerDirect serves a matched intent: one backend call, then a model
// call to phrase the result.
func (o *Orchestrator) answerDirect(ctx context.Context, log *slog.Logger, g *guard, turn *model.Turn,
	query string, history []model.Turn, req *apireq.Request, mapping *intent.Mapping) {

	log.Info("intent matched", "state", StateDirectAnswering, "endpoint", req.Endpoint)
	started := time.Now()

	data, err := o.caller.Call(ctx, req)
	if err != nil {
		// Every backend failure on the direct path ends the turn with a
		// user-facing utterance, network errors included; the error
		// callback is reserved for the model transport.
		o.degradeToApology(log, g, turn, err)
		return
	}

	var p string
	if arr, ok := asArray(data); ok && mapping.ResultMode == intent.ResultModeCount {
		p = prompt.ForCount(query, len(arr))
	} else if s, ok := data.(string); ok {
		// A bare text payload is already an answer; no model call.
		turn.Text = s
		g.answer(turn.Text)
		o.stats.RecordDirect(time.Since(started))
		log.Info("turn finished", "state", StateDone)
		g.done()
		return
	} else {
		p = prompt.ForData(query, data)
	}

	if err := o.streamReply(ctx, g, turn, p, history); err != nil {
		o.finishWithError(log, g, turn, err)
		return
	}

	o.stats.RecordDirect(time.Since(started))
	log.Info("turn finished", "state", StateDone)
	g.done()
}

// answerPlanned serves an unmatched query: the model writes a tool
// plan, the executor runs it, and a second model call phrases the
// results. Reasoning fragments from both model calls stream to the
// reasoning channel.
func (o *Orchestrator) answerPlanned(ctx context.Context, log *slog.Logger, g *guard, turn *model.Turn,
	query string, history []model.Turn) {

	log.Info("no intent matched", "state", StatePlanGenerating)
	started := time.Now()

	planText, err := o.streamPlan(ctx, g, turn, prompt.ForPlan(query, o.registry.Catalog()), history)
	if err != nil {
		o.finishWithError(log, g, turn, err)
		return
	}

	p, err := plan.Parse(planText)
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		o.finishWithError(log, g, turn, err)
		return
	}

	log.Info("plan parsed", "state", StatePlanExecuting, "steps", len(p))

	results, err := o.executor.Execute(ctx, p)
	if err != nil {
		o.finishWithError(log, g, turn, err)
		return
	}

	log.Info("plan executed", "state", StatePlanAnswering)

	if err := o.streamReply(ctx, g, turn, prompt.ForPlanAnswer(query, results), history); err != nil {
		o.finishWithError(log, g, turn, err)
		return
	}

	o.stats.RecordPlanned(time.Since(started), len(p))
	log.Info("turn finished", "state", StateDone)
	g.done()
}

// finishWithError closes the turn after a failure. User-addressable
// failures (bad plan, unknown tool, backend rejection) are turned into
// an apology reply and a normal completion; transport failures
// propagate through OnError.
func (o *Orchestrator) finishWithError(log *slog.Logger, g *guard, turn *model.Turn, err error) {
	if isTransport(err) {
		log.Error("turn failed", "state", StateError, "err", err)
		o.stats.RecordError()
		g.fail(err)
		return
	}

	o.degradeToApology(log, g, turn, err)
}

// degradeToApology ends the turn with the fixed apology utterance and a
// normal completion.
func (o *Orchestrator) degradeToApology(log *slog.Logger, g *guard, turn *model.Turn, err error) {
	log.Warn("turn degraded to apology", "state", StateDone, "err", err)
	o.stats.RecordApology()
	turn.Text = apologyReply
	g.answer(turn.Text)
	g.done()
}

func isTransport(err error) bool {
	if apperrors.IsApiError(err) || apperrors.IsToolNotFound(err) || apperrors.IsPlanParse(err) {
		return false
	}
	return apperrors.GetCategory(err) == apperrors.CategoryTransport
}

// asArray unwraps the backend payload to an array when it is one,
// either directly or inside a data/items/content envelope. Count mode
// only applies to array results; anything else falls through to the
// regular answering branches.
func asArray(data any) ([]any, bool) {
	switch v := data.(type) {
	case []any:
		return v, true
	case map[string]any:
		for _, key := range []string{"data", "items", "content"} {
			if arr, ok := v[key].([]any); ok {
				return arr, true
			}
		}
	}
	return nil, false
}
