// Package session coordinates the scanning backend lifecycle: a session
// loads its matcher once, reports progress while loading, serializes match
// requests, and refuses work after shutdown. The wire protocol is a small
// tagged-union message set used by the worker mode.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-scanner/internal/types"
)

// Request type tags.
const (
	RequestInit  = "init"
	RequestMatch = "match"
)

// Response type tags.
const (
	ResponseProgress = "init:progress"
	ResponseReady    = "init:ready"
	ResponseResult   = "match:result"
	ResponseError    = "error"
)

// Request is a message received by the session loop.
type Request interface {
	requestTag() string
}

// InitRequest asks the session to load its backend.
type InitRequest struct{}

func (InitRequest) requestTag() string { return RequestInit }

// MatchRequest asks the session to match a resume against a job description.
type MatchRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

func (MatchRequest) requestTag() string { return RequestMatch }

// ParseRequest decodes one wire message into its concrete request type.
func ParseRequest(data []byte) (Request, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	switch envelope.Type {
	case RequestInit:
		return InitRequest{}, nil
	case RequestMatch:
		var req MatchRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse match request: %w", err)
		}
		return req, nil
	default:
		return nil, fmt.Errorf("unknown request type %q", envelope.Type)
	}
}

// Response is a message emitted by the session loop.
type Response interface {
	responseTag() string
}

// ProgressResponse reports backend loading progress.
type ProgressResponse struct {
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

func (ProgressResponse) responseTag() string { return ResponseProgress }

// MarshalJSON emits the tagged wire form.
func (r ProgressResponse) MarshalJSON() ([]byte, error) {
	type alias ProgressResponse
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: ResponseProgress, alias: alias(r)})
}

// ReadyResponse signals that the backend finished loading.
type ReadyResponse struct{}

func (ReadyResponse) responseTag() string { return ResponseReady }

// MarshalJSON emits the tagged wire form.
func (r ReadyResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{Type: ResponseReady})
}

// ResultResponse carries a completed match result.
type ResultResponse struct {
	Result *types.EnhancedScanResult `json:"result"`
}

func (ResultResponse) responseTag() string { return ResponseResult }

// MarshalJSON emits the tagged wire form.
func (r ResultResponse) MarshalJSON() ([]byte, error) {
	type alias ResultResponse
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: ResponseResult, alias: alias(r)})
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (ErrorResponse) responseTag() string { return ResponseError }

// MarshalJSON emits the tagged wire form.
func (r ErrorResponse) MarshalJSON() ([]byte, error) {
	type alias ErrorResponse
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: ResponseError, alias: alias(r)})
}
