package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<html>
<head><script>trackEverything()</script></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
  <h1>Senior Backend Engineer</h1>
  <p>Python and Kubernetes required.</p>
</div>
<footer>© Example Corp</footer>
</body>
</html>`

func TestIngestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	text, meta, err := IngestFromURL(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Backend Engineer")
	assert.Contains(t, text, "Python and Kubernetes required.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Example Corp")
	assert.NotContains(t, text, "trackEverything")

	require.NotNil(t, meta)
	assert.Equal(t, srv.URL, meta.URL)
}

func TestIngestFromURLFallsBackToBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Plain posting text.</p></body></html>`))
	}))
	defer srv.Close()

	text, _, err := IngestFromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text.")
}

func TestIngestFromURLInvalid(t *testing.T) {
	_, _, err := IngestFromURL(context.Background(), "not a url")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestIngestFromURLHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, _, err := IngestFromURL(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}
