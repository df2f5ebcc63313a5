package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tutorhub-ai/tutorhub/internal/errors"
)

func TestParseBareArray(t *testing.T) {
	p, err := Parse(`[{"tool":"student_list","saveAs":"students"}]`)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, "student_list", p[0].Tool)
	assert.Equal(t, "students", p[0].SaveAs)
}

func TestParseFencedArray(t *testing.T) {
	text := "Here is the plan:\n```json\n" +
		`[{"tool":"group_get","params":{"id":3},"saveAs":"g"}]` +
		"\n```\nLet me know if you need anything else."
	p, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, "group_get", p[0].Tool)
	assert.Equal(t, float64(3), p[0].Params["id"])
}

func TestParseIgnoresBracketsInsideStrings(t *testing.T) {
	p, err := Parse(`[{"tool":"student_list","params":{"note":"a ] b"},"saveAs":"s"}]`)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, "a ] b", p[0].Params["note"])
}

func TestParseNoArray(t *testing.T) {
	_, err := Parse("I cannot help with that.")
	require.Error(t, err)
	assert.True(t, apperrors.IsPlanParse(err))
}

func TestParseMalformedArray(t *testing.T) {
	_, err := Parse(`[{"tool": student_list}]`)
	require.Error(t, err)
	assert.True(t, apperrors.IsPlanParse(err))
}

func TestValidateEmptyPlan(t *testing.T) {
	assert.Error(t, Plan{}.Validate())
}

func TestValidateMissingToolName(t *testing.T) {
	p := Plan{{Tool: "", SaveAs: "x"}}
	assert.Error(t, p.Validate())
}

func TestValidateMissingSaveAs(t *testing.T) {
	p := Plan{{Tool: "student_list", SaveAs: " "}}
	assert.Error(t, p.Validate())
}

func TestValidateOK(t *testing.T) {
	p := Plan{
		{Tool: "group_get", Params: map[string]any{"id": 1}, SaveAs: "g"},
		{Tool: "group_students", Params: map[string]any{"groupId": "{{g}}"}, SaveAs: "members"},
	}
	assert.NoError(t, p.Validate())
}
