package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/types"
)

type fakeBackend struct {
	mu         sync.Mutex
	calls      int
	lastResume string
	lastJob    string
	err        error
	closed     bool
	block      chan struct{} // when non-nil, Match waits for a receive
}

func (b *fakeBackend) Match(_ context.Context, resumeText, jobDescription string) (*types.EnhancedScanResult, error) {
	b.mu.Lock()
	b.calls++
	b.lastResume = resumeText
	b.lastJob = jobDescription
	err := b.err
	block := b.block
	b.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return &types.EnhancedScanResult{TotalKeywords: 1}, nil
}

func (b *fakeBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

func loaderFor(backend Backend, loads *atomic.Int32) LoadFunc {
	return func(_ context.Context, progress func(pct int, status string)) (Backend, error) {
		loads.Add(1)
		progress(50, "halfway")
		progress(100, "done")
		return backend, nil
	}
}

func TestEnsureReadyLoadsOnce(t *testing.T) {
	var loads atomic.Int32
	s := New(loaderFor(&fakeBackend{}, &loads), nil)

	require.Equal(t, StateIdle, s.State())
	require.NoError(t, s.EnsureReady(context.Background()))
	require.NoError(t, s.EnsureReady(context.Background()))

	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, int32(1), loads.Load())
}

func TestEnsureReadyDedupsConcurrentCallers(t *testing.T) {
	var loads atomic.Int32
	gate := make(chan struct{})
	load := func(_ context.Context, _ func(int, string)) (Backend, error) {
		loads.Add(1)
		<-gate
		return &fakeBackend{}, nil
	}
	s := New(load, nil)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.EnsureReady(context.Background())
		}(i)
	}

	// Give the waiters time to pile up on the single in-flight load.
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), loads.Load())
}

func TestProgressForwarding(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	var loads atomic.Int32
	s := New(loaderFor(&fakeBackend{}, &loads), func(pct int, _ string) {
		mu.Lock()
		seen = append(seen, pct)
		mu.Unlock()
	})

	require.NoError(t, s.EnsureReady(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{50, 100}, seen)
}

func TestMatchTruncatesInputs(t *testing.T) {
	backend := &fakeBackend{}
	var loads atomic.Int32
	s := New(loaderFor(backend, &loads), nil)

	longResume := strings.Repeat("r", MaxInputLength+500)
	longJob := strings.Repeat("j", MaxInputLength+1)

	_, err := s.Match(context.Background(), longResume, longJob)
	require.NoError(t, err)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Len(t, backend.lastResume, MaxInputLength)
	assert.Len(t, backend.lastJob, MaxInputLength)
}

func TestMatchTruncatesOnRuneBoundary(t *testing.T) {
	backend := &fakeBackend{}
	var loads atomic.Int32
	s := New(loaderFor(backend, &loads), nil)

	resume := strings.Repeat("é", MaxInputLength+10)
	_, err := s.Match(context.Background(), resume, "job")
	require.NoError(t, err)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, MaxInputLength, utf8.RuneCountInString(backend.lastResume))
	assert.True(t, utf8.ValidString(backend.lastResume))
}

func TestMatchErrorKeepsSessionReady(t *testing.T) {
	backend := &fakeBackend{err: errors.New("embedding outage")}
	var loads atomic.Int32
	s := New(loaderFor(backend, &loads), nil)

	_, err := s.Match(context.Background(), "resume", "job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding outage")
	assert.Equal(t, StateReady, s.State())

	backend.mu.Lock()
	backend.err = nil
	backend.mu.Unlock()

	result, err := s.Match(context.Background(), "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalKeywords)
}

func TestFailedLoadWaiterSeesErrorDuringRetry(t *testing.T) {
	// A waiter on a failed load must get that load's error even when another
	// caller has already kicked off a retry by the time the waiter wakes up.
	for i := 0; i < 100; i++ {
		var loads atomic.Int32
		release := make(chan struct{})
		load := func(_ context.Context, _ func(int, string)) (Backend, error) {
			if loads.Add(1) == 1 {
				return nil, errors.New("transient outage")
			}
			<-release
			return &fakeBackend{}, nil
		}
		s := New(load, nil)

		first := make(chan error, 1)
		go func() { first <- s.EnsureReady(context.Background()) }()
		for loads.Load() == 0 {
			time.Sleep(50 * time.Microsecond)
		}

		// Hammer retries until one lands after the failure and starts a
		// second load, which then blocks on release.
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for loads.Load() < 2 {
				ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
				_ = s.EnsureReady(ctx)
				cancel()
			}
		}()

		err := <-first
		require.Error(t, err, "iteration %d: waiter on the failed load returned nil", i)
		assert.Contains(t, err.Error(), "transient outage")

		close(release)
		wg.Wait()
		require.NoError(t, s.EnsureReady(context.Background()))
		require.Equal(t, StateReady, s.State())
	}
}

func TestLoadErrorAllowsRetry(t *testing.T) {
	var loads atomic.Int32
	load := func(_ context.Context, _ func(int, string)) (Backend, error) {
		if loads.Add(1) == 1 {
			return nil, errors.New("no api key")
		}
		return &fakeBackend{}, nil
	}
	s := New(load, nil)

	err := s.EnsureReady(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no api key")
	assert.Equal(t, StateError, s.State())

	require.NoError(t, s.EnsureReady(context.Background()))
	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, int32(2), loads.Load())
}

func TestShutdown(t *testing.T) {
	backend := &fakeBackend{}
	var loads atomic.Int32
	s := New(loaderFor(backend, &loads), nil)

	require.NoError(t, s.EnsureReady(context.Background()))
	require.NoError(t, s.Shutdown())

	backend.mu.Lock()
	closed := backend.closed
	backend.mu.Unlock()
	assert.True(t, closed)

	_, err := s.Match(context.Background(), "resume", "job")
	assert.ErrorIs(t, err, ErrSessionDisposed)
	assert.ErrorIs(t, s.EnsureReady(context.Background()), ErrSessionDisposed)

	// Shutdown is idempotent.
	assert.NoError(t, s.Shutdown())
}

func TestShutdownDropsInFlightResult(t *testing.T) {
	backend := &fakeBackend{block: make(chan struct{})}
	var loads atomic.Int32
	s := New(loaderFor(backend, &loads), nil)
	require.NoError(t, s.EnsureReady(context.Background()))

	done := make(chan error, 1)
	go func() {
		_, err := s.Match(context.Background(), "resume", "job")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.Shutdown())
	backend.block <- struct{}{}

	assert.ErrorIs(t, <-done, ErrSessionDisposed)
}

func TestHandleRequest(t *testing.T) {
	backend := &fakeBackend{}
	var loads atomic.Int32
	s := New(loaderFor(backend, &loads), nil)

	var responses []Response
	emit := func(r Response) { responses = append(responses, r) }

	s.HandleRequest(context.Background(), InitRequest{}, emit)
	require.Len(t, responses, 1)
	assert.IsType(t, ReadyResponse{}, responses[0])

	responses = nil
	s.HandleRequest(context.Background(), MatchRequest{ResumeText: "r", JobDescription: "j"}, emit)
	require.Len(t, responses, 1)
	result, ok := responses[0].(ResultResponse)
	require.True(t, ok)
	assert.Equal(t, 1, result.Result.TotalKeywords)
}

func TestHandleRequestErrors(t *testing.T) {
	backend := &fakeBackend{err: errors.New("backend broken")}
	var loads atomic.Int32
	s := New(loaderFor(backend, &loads), nil)

	var responses []Response
	s.HandleRequest(context.Background(), MatchRequest{ResumeText: "r", JobDescription: "j"}, func(r Response) {
		responses = append(responses, r)
	})

	require.Len(t, responses, 1)
	errResp, ok := responses[0].(ErrorResponse)
	require.True(t, ok)
	assert.Contains(t, errResp.Error, "backend broken")
}
