package assistant

// State tracks where a turn is in its lifecycle. It exists for logging
// and tests; callers observe progress through the callbacks.
type State int

const (
	StateIdle State = iota
	StateMatchingIntent
	StateDirectAnswering
	StatePlanGenerating
	StatePlanExecuting
	StatePlanAnswering
	StateDone
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMatchingIntent:
		return "matching_intent"
	case StateDirectAnswering:
		return "direct_answering"
	case StatePlanGenerating:
		return "plan_generating"
	case StatePlanExecuting:
		return "plan_executing"
	case StatePlanAnswering:
		return "plan_answering"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
