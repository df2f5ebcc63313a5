package apireq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFillsPathSentinel(t *testing.T) {
	tpl := &Template{
		Endpoint:   "/api/v1/student/{id}",
		Method:     MethodGet,
		PathParams: map[string]string{"id": ExtractFromQuery},
	}

	req := tpl.Resolve(map[string]int{"id": 42})
	assert.Equal(t, "42", req.PathParams["id"])
}

func TestResolveKeepsPathSentinelWhenMissing(t *testing.T) {
	tpl := &Template{
		Endpoint:   "/api/v1/student/{id}",
		Method:     MethodGet,
		PathParams: map[string]string{"id": ExtractFromQuery},
	}

	req := tpl.Resolve(nil)
	assert.Equal(t, ExtractFromQuery, req.PathParams["id"])
}

func TestResolveBlanksQuerySentinelWhenMissing(t *testing.T) {
	tpl := &Template{
		Endpoint:    "/api/v1/payment",
		Method:      MethodGet,
		QueryParams: map[string]string{"studentId": ExtractFromQuery},
	}

	req := tpl.Resolve(nil)
	assert.Equal(t, "", req.QueryParams["studentId"])
}

func TestResolveLeavesLiteralsAlone(t *testing.T) {
	tpl := &Template{
		Endpoint:    "/api/v1/payment",
		Method:      MethodGet,
		QueryParams: map[string]string{"status": "paid", "studentId": ExtractFromQuery},
	}

	req := tpl.Resolve(map[string]int{"studentId": 7})
	assert.Equal(t, "paid", req.QueryParams["status"])
	assert.Equal(t, "7", req.QueryParams["studentId"])

	// The template itself is untouched.
	assert.Equal(t, ExtractFromQuery, tpl.QueryParams["studentId"])
}
