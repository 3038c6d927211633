package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonathan/resume-scanner/internal/types"
)

// MaxInputLength caps resume and job description inputs, in characters.
// Longer texts are truncated rather than rejected; scans degrade gracefully
// on oversized pastes.
const MaxInputLength = 3000

// State is the session lifecycle phase.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// ErrSessionDisposed is returned for any request after Shutdown.
var ErrSessionDisposed = errors.New("session disposed")

// Backend is a loaded matcher the session dispatches work to.
type Backend interface {
	Match(ctx context.Context, resumeText, jobDescription string) (*types.EnhancedScanResult, error)
	Close() error
}

// LoadFunc builds the backend. It may call progress with a percentage and a
// status line as loading advances.
type LoadFunc func(ctx context.Context, progress func(pct int, status string)) (Backend, error)

// loadAttempt is one execution of the load function. The outcome is stored
// on the attempt itself so a waiter always observes the result of the load
// it joined, even if a retry has started in the meantime.
type loadAttempt struct {
	done chan struct{}
	err  error
}

// Session owns one backend lifecycle. Concurrent init requests share a
// single load; match requests wait for readiness; everything fails fast
// after Shutdown.
type Session struct {
	load       LoadFunc
	onProgress func(pct int, status string)

	mu       sync.Mutex
	state    State
	backend  Backend
	attempt  *loadAttempt
	disposed bool
}

// New creates an idle session. onProgress may be nil.
func New(load LoadFunc, onProgress func(pct int, status string)) *Session {
	return &Session{
		load:       load,
		onProgress: onProgress,
		state:      StateIdle,
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// EnsureReady loads the backend if needed and blocks until the session is
// ready. Concurrent callers share one load; cancelling one caller's context
// abandons the wait, not the load. After a failed load the next call starts
// a fresh one.
func (s *Session) EnsureReady(ctx context.Context) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrSessionDisposed
	}

	switch s.state {
	case StateReady:
		s.mu.Unlock()
		return nil
	case StateLoading:
		// fall through to wait on the in-flight load
	default:
		// idle, or retrying after a failed load
		s.state = StateLoading
		s.attempt = &loadAttempt{done: make(chan struct{})}
		go s.runLoad(s.attempt)
	}
	attempt := s.attempt
	s.mu.Unlock()

	select {
	case <-attempt.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrSessionDisposed
	}
	return attempt.err
}

// runLoad executes the load off the caller's context so that one abandoned
// waiter cannot cancel the shared load.
func (s *Session) runLoad(attempt *loadAttempt) {
	backend, err := s.load(context.Background(), s.emitProgress)

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		if backend != nil {
			backend.Close()
		}
		attempt.err = ErrSessionDisposed
		close(attempt.done)
		return
	}
	if err != nil {
		attempt.err = fmt.Errorf("backend load failed: %w", err)
		s.state = StateError
	} else {
		s.state = StateReady
		s.backend = backend
	}
	s.mu.Unlock()
	close(attempt.done)
}

func (s *Session) emitProgress(pct int, status string) {
	s.mu.Lock()
	disposed := s.disposed
	cb := s.onProgress
	s.mu.Unlock()
	if disposed || cb == nil {
		return
	}
	cb(pct, status)
}

// Match runs one scan, loading the backend first if necessary. Inputs beyond
// MaxInputLength are truncated. A failed match leaves the session ready for
// the next request.
func (s *Session) Match(ctx context.Context, resumeText, jobDescription string) (*types.EnhancedScanResult, error) {
	if err := s.EnsureReady(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil, ErrSessionDisposed
	}
	backend := s.backend
	s.mu.Unlock()

	result, err := backend.Match(ctx, truncateInput(resumeText), truncateInput(jobDescription))
	if err != nil {
		return nil, fmt.Errorf("match failed: %w", err)
	}

	// A shutdown that raced the match wins; the result is dropped.
	s.mu.Lock()
	disposed := s.disposed
	s.mu.Unlock()
	if disposed {
		return nil, ErrSessionDisposed
	}
	return result, nil
}

// Shutdown disposes the session and closes the backend. Safe to call more
// than once.
func (s *Session) Shutdown() error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	s.disposed = true
	backend := s.backend
	s.backend = nil
	s.mu.Unlock()

	if backend != nil {
		return backend.Close()
	}
	return nil
}

// HandleRequest dispatches one wire request and emits the responses it
// produces. Progress messages flow through the session's onProgress callback
// wired at construction.
func (s *Session) HandleRequest(ctx context.Context, req Request, emit func(Response)) {
	switch r := req.(type) {
	case InitRequest:
		if err := s.EnsureReady(ctx); err != nil {
			emit(ErrorResponse{Error: err.Error()})
			return
		}
		emit(ReadyResponse{})
	case MatchRequest:
		result, err := s.Match(ctx, r.ResumeText, r.JobDescription)
		if err != nil {
			emit(ErrorResponse{Error: err.Error()})
			return
		}
		emit(ResultResponse{Result: result})
	default:
		emit(ErrorResponse{Error: fmt.Sprintf("unhandled request type %q", req.requestTag())})
	}
}

func truncateInput(s string) string {
	if len(s) <= MaxInputLength {
		return s
	}
	runes := []rune(s)
	if len(runes) <= MaxInputLength {
		return s
	}
	return string(runes[:MaxInputLength])
}
