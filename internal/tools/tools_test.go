package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub-ai/tutorhub/internal/apireq"
)

// fakeCaller captures the compiled request and returns a canned value.
type fakeCaller struct {
	got    *apireq.Request
	result any
	err    error
}

func (f *fakeCaller) Call(ctx context.Context, req *apireq.Request) (any, error) {
	f.got = req
	return f.result, f.err
}

func TestRegistryFind(t *testing.T) {
	r := DefaultRegistry(&fakeCaller{})

	tool, ok := r.Find("student_get")
	require.True(t, ok)
	assert.Equal(t, "student_get", tool.Name())

	_, ok = r.Find("no_such_tool")
	assert.False(t, ok)
}

func TestRegistryCatalogListsAllTools(t *testing.T) {
	r := DefaultRegistry(&fakeCaller{})

	catalog := r.Catalog()
	for _, tool := range r.List() {
		assert.Contains(t, catalog, `"`+tool.Name()+`"`)
	}
}

func TestRESTToolCompilesPathParams(t *testing.T) {
	caller := &fakeCaller{result: map[string]any{"id": float64(42)}}
	r := DefaultRegistry(caller)
	tool, ok := r.Find("student_get")
	require.True(t, ok)

	out, err := tool.Invoke(context.Background(), map[string]any{"id": float64(42)})
	require.NoError(t, err)
	assert.Equal(t, caller.result, out)

	require.NotNil(t, caller.got)
	assert.Equal(t, "/api/v1/student/{id}", caller.got.Endpoint)
	assert.Equal(t, apireq.MethodGet, caller.got.Method)
	assert.Equal(t, "42", caller.got.PathParams["id"])
}

func TestRESTToolCompilesQueryParams(t *testing.T) {
	caller := &fakeCaller{result: []any{}}
	r := DefaultRegistry(caller)
	tool, ok := r.Find("payment_list")
	require.True(t, ok)

	_, err := tool.Invoke(context.Background(), map[string]any{"studentId": "7"})
	require.NoError(t, err)
	assert.Equal(t, "7", caller.got.QueryParams["studentId"])
}

func TestRESTToolMissingParamIsEmpty(t *testing.T) {
	caller := &fakeCaller{result: []any{}}
	r := DefaultRegistry(caller)
	tool, ok := r.Find("payment_list")
	require.True(t, ok)

	_, err := tool.Invoke(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "", caller.got.QueryParams["studentId"])
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "42", stringify(float64(42)))
	assert.Equal(t, "4.5", stringify(4.5))
	assert.Equal(t, "abc", stringify("abc"))
	assert.Equal(t, "", stringify(nil))
	assert.Equal(t, "true", stringify(true))
}
