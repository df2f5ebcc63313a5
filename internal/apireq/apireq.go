// Package apireq defines abstract API request templates and the
// concrete requests compiled from them.
package apireq

import "strconv"

// ExtractFromQuery is the sentinel value marking a template parameter
// whose concrete value must be pulled out of the user's question.
const ExtractFromQuery = "EXTRACT_FROM_QUERY"

// Method is an HTTP method accepted by the backend.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Template is an abstract request shape owned by a catalog entry.
// Endpoint may contain "{name}" placeholders; PathParams and QueryParams
// hold either literal values or the ExtractFromQuery sentinel.
type Template struct {
	Endpoint    string
	Method      Method
	PathParams  map[string]string
	QueryParams map[string]string
	Body        any
}

// Request is a template with every resolvable sentinel replaced by an
// extracted value. An unresolvable query param is dropped; an
// unresolvable path param keeps the literal sentinel, which the URL
// builder then substitutes verbatim.
type Request struct {
	Endpoint    string
	Method      Method
	PathParams  map[string]string
	QueryParams map[string]string
	Body        any
}

// Resolve compiles the template into a concrete request using the
// extracted parameter values. Path params with no extracted value keep
// the sentinel; query params with no extracted value are left empty and
// filtered out when the URL is built.
func (t *Template) Resolve(extracted map[string]int) *Request {
	req := &Request{
		Endpoint: t.Endpoint,
		Method:   t.Method,
		Body:     t.Body,
	}

	if len(t.PathParams) > 0 {
		req.PathParams = make(map[string]string, len(t.PathParams))
		for key, val := range t.PathParams {
			if val == ExtractFromQuery {
				if n, ok := extracted[key]; ok {
					req.PathParams[key] = strconv.Itoa(n)
					continue
				}
			}
			req.PathParams[key] = val
		}
	}

	if len(t.QueryParams) > 0 {
		req.QueryParams = make(map[string]string, len(t.QueryParams))
		for key, val := range t.QueryParams {
			if val == ExtractFromQuery {
				if n, ok := extracted[key]; ok {
					req.QueryParams[key] = strconv.Itoa(n)
				} else {
					req.QueryParams[key] = ""
				}
				continue
			}
			req.QueryParams[key] = val
		}
	}

	return req
}
