// Package assistant orchestrates one chat turn: intent matching, direct
// backend answers, and model-planned tool execution.
package assistant

import "sync"

// Callbacks receives the streamed output of one turn. OnAnswer and
// OnReasoning are invoked with the FULL accumulated text after every
// fragment, so consumers replace their display instead of appending.
// Exactly one of OnDone or OnError fires, and only once.
type Callbacks struct {
	OnAnswer    func(full string)
	OnReasoning func(full string)
	OnDone      func()
	OnError     func(err error)
}

// guard enforces the done/error exclusivity for one turn.
type guard struct {
	once sync.Once
	cb   Callbacks
}

func (g *guard) answer(full string) {
	if g.cb.OnAnswer != nil {
		g.cb.OnAnswer(full)
	}
}

func (g *guard) reasoning(full string) {
	if g.cb.OnReasoning != nil {
		g.cb.OnReasoning(full)
	}
}

func (g *guard) done() {
	g.once.Do(func() {
		if g.cb.OnDone != nil {
			g.cb.OnDone()
		}
	})
}

func (g *guard) fail(err error) {
	g.once.Do(func() {
		if g.cb.OnError != nil {
			g.cb.OnError(err)
		}
	})
}
