package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/types"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"type":"init"}`))
	require.NoError(t, err)
	assert.IsType(t, InitRequest{}, req)

	req, err = ParseRequest([]byte(`{"type":"match","resumeText":"my resume","jobDescription":"the job"}`))
	require.NoError(t, err)
	match, ok := req.(MatchRequest)
	require.True(t, ok)
	assert.Equal(t, "my resume", match.ResumeText)
	assert.Equal(t, "the job", match.JobDescription)
}

func TestParseRequestErrors(t *testing.T) {
	_, err := ParseRequest([]byte(`{"type":"unknown"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown request type")

	_, err = ParseRequest([]byte(`not json`))
	assert.Error(t, err)
}

func TestResponseWireFormat(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{
			"progress",
			ProgressResponse{Progress: 42, Status: "loading model"},
			`{"type":"init:progress","progress":42,"status":"loading model"}`,
		},
		{
			"ready",
			ReadyResponse{},
			`{"type":"init:ready"}`,
		},
		{
			"error",
			ErrorResponse{Error: "something failed"},
			`{"type":"error","error":"something failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestResultResponseWireFormat(t *testing.T) {
	resp := ResultResponse{Result: &types.EnhancedScanResult{
		MatchPercentage: 75,
		TotalKeywords:   4,
		MatchedCount:    3,
		Matched:         []types.EnhancedKeywordResult{},
		Partial:         []types.EnhancedKeywordResult{},
		Missing:         []types.EnhancedKeywordResult{},
	}}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "match:result", decoded["type"])

	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(75), result["matchPercentage"])
	assert.Equal(t, float64(4), result["totalKeywords"])
	assert.Equal(t, float64(3), result["matchedCount"])
}
