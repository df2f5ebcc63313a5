package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub-ai/tutorhub/internal/apireq"
)

func TestMatchFirstHitWins(t *testing.T) {
	c := Default()

	// "danh sách học sinh trong nhóm 3" contains both the group-students
	// phrase and the generic list phrase; catalog order decides.
	m := c.Match("danh sách học sinh trong nhóm 3")
	require.NotNil(t, m)
	assert.Equal(t, "/api/v1/group/{groupId}/students", m.Request.Endpoint)
}

func TestMatchCaseInsensitive(t *testing.T) {
	c := Default()

	lower := c.Match("danh sách học sinh")
	upper := c.Match("  DANH SÁCH HỌC SINH  ")
	require.NotNil(t, lower)
	require.NotNil(t, upper)
	assert.Same(t, lower, upper)
}

func TestMatchIdempotent(t *testing.T) {
	c := Default()

	first := c.Match("bao nhiêu học sinh")
	second := c.Match("bao nhiêu học sinh")
	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestMatchNoHit(t *testing.T) {
	c := Default()
	assert.Nil(t, c.Match("thời tiết hôm nay thế nào"))
}

func TestMatchGenericListPhrase(t *testing.T) {
	c := Default()

	m := c.Match("trung tâm có những nhóm học nào")
	require.NotNil(t, m)
	assert.Equal(t, "/api/v1/group", m.Request.Endpoint)
	assert.Equal(t, ResultModeList, m.ResultMode)
}

func TestExtractParametersSingleID(t *testing.T) {
	params := ExtractParameters("học sinh có id 42 tên là gì")
	assert.Equal(t, 42, params["id"])
	// "có" sits between "học sinh" and the numeral, so no studentId.
	_, ok := params["studentId"]
	assert.False(t, ok)
}

func TestExtractParametersVietnameseIDLabels(t *testing.T) {
	// "mã" and "số" end in non-ASCII letters; they must extract the
	// same way "id" does.
	params := ExtractParameters("học sinh có mã 42")
	assert.Equal(t, 42, params["id"])

	params = ExtractParameters("thông tin học sinh số 7")
	assert.Equal(t, 7, params["id"])
}

func TestExtractParametersIDLabelNotInsideWord(t *testing.T) {
	// "id" embedded in another word is not a label.
	params := ExtractParameters("valid 9 thing")
	_, ok := params["id"]
	assert.False(t, ok)
}

func TestExtractParametersGroup(t *testing.T) {
	params := ExtractParameters("học sinh trong nhóm 3")
	assert.Equal(t, 3, params["groupId"])
}

func TestExtractParametersMultipleLabels(t *testing.T) {
	params := ExtractParameters("điểm của học sinh 7 trong bài thi 12")
	assert.Equal(t, 7, params["studentId"])
	assert.Equal(t, 12, params["examId"])
}

func TestExtractParametersNoNumerals(t *testing.T) {
	assert.Empty(t, ExtractParameters("danh sách học sinh"))
}

func TestExtractParametersIgnoresDecimals(t *testing.T) {
	// Only the integer prefix of "3.5" is captured by the digit class.
	params := ExtractParameters("nhóm 3.5")
	assert.Equal(t, 3, params["groupId"])
}

func TestCreateRequestResolvesPathParam(t *testing.T) {
	c := Default()

	req, m := c.CreateRequest("học sinh có id 42")
	require.NotNil(t, m)
	require.NotNil(t, req)
	assert.Equal(t, apireq.MethodGet, req.Method)
	assert.Equal(t, "42", req.PathParams["id"])
}

func TestCreateRequestResolvesVietnameseIDLabel(t *testing.T) {
	c := Default()

	req, m := c.CreateRequest("học sinh có mã 42")
	require.NotNil(t, m)
	require.NotNil(t, req)
	assert.Equal(t, "42", req.PathParams["id"])
}

func TestCreateRequestKeepsSentinelWhenUnextracted(t *testing.T) {
	c := Default()

	// Phrase matches the by-id intent but carries no numeral.
	req, m := c.CreateRequest("học sinh có id nào đó")
	require.NotNil(t, m)
	require.NotNil(t, req)
	assert.Equal(t, apireq.ExtractFromQuery, req.PathParams["id"])
}

func TestCreateRequestDropsUnextractedQueryParam(t *testing.T) {
	c := Default()

	req, m := c.CreateRequest("thanh toán của học sinh nào")
	require.NotNil(t, m)
	require.NotNil(t, req)
	assert.Equal(t, "", req.QueryParams["studentId"])
}

func TestCreateRequestNoMatch(t *testing.T) {
	c := Default()

	req, m := c.CreateRequest("kể chuyện cười đi")
	assert.Nil(t, req)
	assert.Nil(t, m)
}
