// Package tools defines the tool abstraction and the registry the plan
// executor draws from.
package tools

import (
	"context"
	"encoding/json"
	"sort"
)

// Tool is one invocable capability. Params describes the accepted
// parameters as name -> human-readable description; the description is
// rendered into the planning prompt, it is not a validation schema.
type Tool interface {
	Name() string
	Description() string
	Params() map[string]string
	Invoke(ctx context.Context, params map[string]any) (any, error)
}

// ============================================================
// Registry
// ============================================================

// Registry is a name-indexed tool collection. Registration happens at
// startup; lookups during plan execution are read-only, so no locking.
type Registry struct {
	byName map[string]Tool
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Tool)}
}

// Register adds a tool. Re-registering a name replaces the previous
// tool and keeps its original position.
func (r *Registry) Register(t Tool) {
	name := t.Name()
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = t
}

// Find returns the tool registered under name.
func (r *Registry) Find(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// List returns all tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Catalog renders the registry as a JSON document for the planning
// prompt: one entry per tool with name, description and parameters.
func (r *Registry) Catalog() string {
	type entry struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Params      map[string]string `json:"params,omitempty"`
	}

	entries := make([]entry, 0, len(r.order))
	for _, name := range r.order {
		t := r.byName[name]
		entries = append(entries, entry{
			Name:        t.Name(),
			Description: t.Description(),
			Params:      t.Params(),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
