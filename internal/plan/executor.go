package plan

import (
	"context"
	"log/slog"
	"regexp"

	apperrors "github.com/tutorhub-ai/tutorhub/internal/errors"
	"github.com/tutorhub-ai/tutorhub/internal/tools"
)

// Context holds the results produced so far, keyed by saveAs name. The
// namespace is flat: a later step writing an existing name silently
// overwrites it.
type Context map[string]any

// varRef matches a parameter value that is exactly one variable
// reference. Partial forms ("prefix {{x}}", "{{a.b}}") are passed
// through as literals.
var varRef = regexp.MustCompile(`^\{\{(\w+)\}\}$`)

// Executor runs plans step by step against a tool registry.
type Executor struct {
	registry *tools.Registry
	log      *slog.Logger
}

// NewExecutor creates an executor over the given registry.
func NewExecutor(registry *tools.Registry, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{registry: registry, log: log}
}

// Execute runs the plan strictly in order and returns the full result
// context. Any failure aborts the remaining steps: an unknown tool name
// yields *ToolNotFoundError before the step runs, and a tool error is
// wrapped and returned as-is. Steps already executed keep their effects.
func (e *Executor) Execute(ctx context.Context, p Plan) (Context, error) {
	results := make(Context, len(p))

	for i, step := range p {
		tool, ok := e.registry.Find(step.Tool)
		if !ok {
			e.log.Warn("plan references unknown tool", "step", i, "tool", step.Tool)
			return results, &apperrors.ToolNotFoundError{Name: step.Tool}
		}

		params := e.resolveParams(step.Params, results)

		e.log.Debug("executing plan step", "step", i, "tool", step.Tool, "saveAs", step.SaveAs)
		out, err := tool.Invoke(ctx, params)
		if err != nil {
			return results, apperrors.Wrap(err, apperrors.CodeToolExecution,
				"plan step failed: "+step.Tool, apperrors.CategoryExecution)
		}

		results[step.SaveAs] = out
	}

	return results, nil
}

// resolveParams substitutes variable references with prior results. A
// reference to a name that has not been produced resolves to nil; the
// lookup is flat, no path traversal into nested structures.
func (e *Executor) resolveParams(params map[string]any, results Context) map[string]any {
	if len(params) == 0 {
		return nil
	}

	resolved := make(map[string]any, len(params))
	for key, val := range params {
		s, isString := val.(string)
		if !isString {
			resolved[key] = val
			continue
		}
		m := varRef.FindStringSubmatch(s)
		if m == nil {
			resolved[key] = val
			continue
		}
		resolved[key] = results[m[1]]
	}
	return resolved
}
