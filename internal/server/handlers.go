package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resume-scanner/internal/session"
	"github.com/jonathan/resume-scanner/internal/types"
)

// handleScan runs the lexical matcher.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeScanRequest(w, r)
	if !ok {
		return
	}

	keywords := s.extractor.ExtractKeywords(req.JobDescription)
	result := s.lexical.Match(req.ResumeText, keywords)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleScanSemantic runs the embedding matcher through the session, loading
// the backend on first use.
func (s *Server) handleScanSemantic(w http.ResponseWriter, r *http.Request) {
	if s.session == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Semantic matching is not configured; set an API key")
		return
	}

	req, ok := s.decodeScanRequest(w, r)
	if !ok {
		return
	}

	result, err := s.session.Match(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		if errors.Is(err, session.ErrSessionDisposed) {
			s.errorResponse(w, http.StatusServiceUnavailable, "Scanner is shutting down")
			return
		}
		s.errorResponse(w, http.StatusBadGateway, "Semantic scan failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHealth reports liveness and the semantic backend state.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{"status": "ok"}
	if s.session != nil {
		health["semantic"] = string(s.session.State())
	} else {
		health["semantic"] = "unconfigured"
	}
	s.jsonResponse(w, http.StatusOK, health)
}

func (s *Server) decodeScanRequest(w http.ResponseWriter, r *http.Request) (*types.ScanRequest, bool) {
	var req types.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid scan request: "+err.Error())
		return nil, false
	}
	return &req, true
}
