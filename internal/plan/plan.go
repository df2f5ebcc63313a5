// Package plan parses model-generated tool plans and executes them
// sequentially against the tool registry.
package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/tutorhub-ai/tutorhub/internal/errors"
)

// Step is one tool invocation in a plan. SaveAs names the variable the
// result is stored under; later steps reference it as "{{name}}".
type Step struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params,omitempty"`
	SaveAs string         `json:"saveAs"`
}

// Plan is an ordered list of steps. Order is execution order.
type Plan []Step

// Parse extracts the first JSON array from the model output and decodes
// it as a plan. Model replies routinely wrap the array in prose or
// markdown fences, so everything outside the first balanced [...] span
// is ignored. A missing or undecodable array yields *PlanParseError.
func Parse(text string) (Plan, error) {
	raw, ok := firstJSONArray(text)
	if !ok {
		return nil, &apperrors.PlanParseError{Inner: fmt.Errorf("no json array in model output")}
	}

	var p Plan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, &apperrors.PlanParseError{Inner: err}
	}
	return p, nil
}

// Validate rejects plans that cannot be executed: empty plans and steps
// with a missing tool name or save target. The plan is untrusted model
// output, so this runs before any tool is touched.
func (p Plan) Validate() error {
	if len(p) == 0 {
		return apperrors.New(apperrors.CodePlanInvalid, "plan has no steps", apperrors.CategoryExecution)
	}
	for i, step := range p {
		if strings.TrimSpace(step.Tool) == "" {
			return apperrors.New(apperrors.CodePlanInvalid,
				fmt.Sprintf("step %d has no tool name", i), apperrors.CategoryExecution)
		}
		if strings.TrimSpace(step.SaveAs) == "" {
			return apperrors.New(apperrors.CodePlanInvalid,
				fmt.Sprintf("step %d has no saveAs target", i), apperrors.CategoryExecution)
		}
	}
	return nil
}

// firstJSONArray returns the first balanced top-level [...] span. The
// scan is string-aware so brackets inside JSON strings do not confuse
// the depth counter.
func firstJSONArray(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '[':
			if start < 0 {
				start = i
			}
			depth++
		case ']':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
