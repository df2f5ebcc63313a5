// Package intent provides intent classification for user questions.
//
// Classification flow:
// 1. Ordered catalog of trigger phrases (instant, no model call)
// 2. Plan-based fallback handled by the orchestrator when nothing matches
package intent

import (
	"strings"

	"github.com/tutorhub-ai/tutorhub/internal/apireq"
)

// ResultMode tells the orchestrator how to interpret a matched intent's
// REST result before reply synthesis.
type ResultMode string

const (
	// ResultModeDefault hands the raw payload to the model for a
	// conversational explanation.
	ResultModeDefault ResultMode = ""

	// ResultModeCount gives the model only the element count of an
	// array result, never the rows themselves.
	ResultModeCount ResultMode = "count"

	// ResultModeList asks the model for a tabular markdown rendering.
	ResultModeList ResultMode = "list"
)

// Mapping binds a set of trigger phrases to an abstract request shape.
type Mapping struct {
	// Patterns are matched by case-insensitive substring containment.
	Patterns []string

	// Request is the abstract template compiled once parameters are
	// extracted from the question.
	Request apireq.Template

	// Description is shown in logs and debugging output.
	Description string

	// ResultMode selects the reply-synthesis branch.
	ResultMode ResultMode
}

// Catalog is an ordered, immutable list of mappings. Order defines
// priority: the first entry with a matching pattern wins, so authors
// must place more specific phrases before generic ones (e.g. "phí có
// id" before "liệt kê phí").
type Catalog struct {
	entries []*Mapping
}

// NewCatalog creates a catalog from the given entries. The slice is
// used as-is; callers must not mutate it afterwards.
func NewCatalog(entries []*Mapping) *Catalog {
	return &Catalog{entries: entries}
}

// Default returns the catalog for the tutoring-center backend.
func Default() *Catalog {
	return NewCatalog(defaultMappings())
}

// Entries returns the catalog entries in priority order.
func (c *Catalog) Entries() []*Mapping {
	return c.entries
}

// Match returns the first mapping whose patterns contain the normalized
// query, or nil when nothing matches. A nil result is not an error: it
// routes the question to the plan-based fallback.
func (c *Catalog) Match(query string) *Mapping {
	q := normalize(query)

	for _, m := range c.entries {
		for _, pattern := range m.Patterns {
			if strings.Contains(q, strings.ToLower(pattern)) {
				return m
			}
		}
	}

	return nil
}

// CreateRequest runs matcher, extractor and template resolution in one
// step. It returns the compiled request and the mapping that produced
// it, or (nil, nil) when no intent matched.
func (c *Catalog) CreateRequest(query string) (*apireq.Request, *Mapping) {
	m := c.Match(query)
	if m == nil {
		return nil, nil
	}

	params := ExtractParameters(query)
	return m.Request.Resolve(params), m
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
