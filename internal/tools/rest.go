package tools

import (
	"context"
	"fmt"

	"github.com/tutorhub-ai/tutorhub/internal/apireq"
)

// Caller executes a compiled API request. Satisfied by rest.Invoker;
// tests substitute a fake.
type Caller interface {
	Call(ctx context.Context, req *apireq.Request) (any, error)
}

// RESTTool maps a tool invocation onto one backend endpoint. Plan
// parameters are matched by name against the declared path and query
// parameters; anything the plan does not supply is left empty and
// dropped at URL build time.
type RESTTool struct {
	name        string
	description string
	params      map[string]string
	method      apireq.Method
	endpoint    string
	pathParams  []string
	queryParams []string
	caller      Caller
}

func (t *RESTTool) Name() string              { return t.name }
func (t *RESTTool) Description() string       { return t.description }
func (t *RESTTool) Params() map[string]string { return t.params }

// Invoke compiles the request from the supplied parameters and executes
// it. Parameter values arrive as any because they come from parsed
// model output; they are stringified with fmt.
func (t *RESTTool) Invoke(ctx context.Context, params map[string]any) (any, error) {
	req := &apireq.Request{
		Endpoint: t.endpoint,
		Method:   t.method,
	}

	if len(t.pathParams) > 0 {
		req.PathParams = make(map[string]string, len(t.pathParams))
		for _, key := range t.pathParams {
			req.PathParams[key] = stringify(params[key])
		}
	}
	if len(t.queryParams) > 0 {
		req.QueryParams = make(map[string]string, len(t.queryParams))
		for _, key := range t.queryParams {
			req.QueryParams[key] = stringify(params[key])
		}
	}

	return t.caller.Call(ctx, req)
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; render integers without the
		// fractional part.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ============================================================
// Default tool set
// ============================================================

// DefaultRegistry registers the read-only tool set for the
// tutoring-center backend, all routed through caller.
func DefaultRegistry(caller Caller) *Registry {
	r := NewRegistry()

	get := func(name, description, endpoint string, params map[string]string, pathParams, queryParams []string) {
		r.Register(&RESTTool{
			name:        name,
			description: description,
			params:      params,
			method:      apireq.MethodGet,
			endpoint:    endpoint,
			pathParams:  pathParams,
			queryParams: queryParams,
			caller:      caller,
		})
	}

	get("student_list", "List every student in the center", "/api/v1/student", nil, nil, nil)
	get("student_get", "Fetch one student by id", "/api/v1/student/{id}",
		map[string]string{"id": "numeric student id"}, []string{"id"}, nil)
	get("group_list", "List every study group", "/api/v1/group", nil, nil, nil)
	get("group_get", "Fetch one study group by id", "/api/v1/group/{id}",
		map[string]string{"id": "numeric group id"}, []string{"id"}, nil)
	get("group_students", "List the students enrolled in one group", "/api/v1/group/{groupId}/students",
		map[string]string{"groupId": "numeric group id"}, []string{"groupId"}, nil)
	get("teacher_list", "List every teacher", "/api/v1/teacher", nil, nil, nil)
	get("teacher_get", "Fetch one teacher by id", "/api/v1/teacher/{id}",
		map[string]string{"id": "numeric teacher id"}, []string{"id"}, nil)
	get("fee_list", "List every fee type", "/api/v1/fee", nil, nil, nil)
	get("fee_get", "Fetch one fee by id", "/api/v1/fee/{id}",
		map[string]string{"id": "numeric fee id"}, []string{"id"}, nil)
	get("payment_list", "List payments, optionally filtered by student", "/api/v1/payment",
		map[string]string{"studentId": "numeric student id, optional"}, nil, []string{"studentId"})
	get("schedule_list", "List schedules, optionally filtered by group", "/api/v1/schedule",
		map[string]string{"groupId": "numeric group id, optional"}, nil, []string{"groupId"})
	get("exam_list", "List every exam", "/api/v1/exam", nil, nil, nil)
	get("exam_grades", "List the grades recorded for one exam", "/api/v1/exam/{examId}/grades",
		map[string]string{"examId": "numeric exam id"}, []string{"examId"}, nil)
	get("academic_year_list", "List every academic year", "/api/v1/academic-year", nil, nil, nil)

	return r
}
