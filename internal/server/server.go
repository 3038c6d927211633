// Package server provides the HTTP REST API for the resume scanner.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-scanner/internal/extraction"
	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/semantic"
	"github.com/jonathan/resume-scanner/internal/session"
	"github.com/jonathan/resume-scanner/internal/skills"
)

// Config holds server configuration
type Config struct {
	Addr           string
	APIKey         string
	EmbeddingModel string
	Semantic       semantic.Config
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	extractor  *extraction.Extractor
	lexical    *matching.LexicalMatcher
	session    *session.Session // nil when no API key is configured
}

// New creates a new server instance. The semantic endpoint is wired only
// when an API key is configured; the lexical endpoint always works.
func New(cfg Config) *Server {
	dict := skills.NewDictionary()

	s := &Server{
		extractor: extraction.NewExtractor(dict),
		lexical:   matching.NewLexicalMatcher(dict),
	}

	if cfg.APIKey != "" {
		load := func(ctx context.Context, progress func(pct int, status string)) (session.Backend, error) {
			progress(10, "connecting to embedding backend")
			embedder, err := semantic.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
			if err != nil {
				return nil, err
			}
			progress(100, "matcher ready")
			return semantic.NewMatcher(embedder, dict, cfg.Semantic), nil
		}
		s.session = session.New(load, func(pct int, status string) {
			log.Printf("semantic backend: %d%% %s", pct, status)
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /scan", s.handleScan)
	mux.HandleFunc("POST /scan/semantic", s.handleScanSemantic)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // semantic scans wait on the embedding API
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.session != nil {
		if err := s.session.Shutdown(); err != nil {
			log.Printf("Session shutdown error: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request ID
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
