package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"crlf", "line one\r\nline two\r", "line one\nline two"},
		{"collapses blank runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"squeezes inner spaces", "senior   backend    engineer", "senior backend engineer"},
		{"keeps bullets", "- Python\n- Go", "- Python\n- Go"},
		{"trims edges", "  \n hello \n  ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestIngestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior  Engineer\r\n\r\n\r\nPython required.\n"), 0o644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer\n\nPython required.", text)
	require.NotNil(t, meta)
	assert.Equal(t, len(text), meta.CharCount)
	assert.Equal(t, 4, meta.WordCount)
	assert.NotEmpty(t, meta.Hash)
	assert.Empty(t, meta.URL)
}

func TestIngestFromFileMissing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestMetadataHashIsStable(t *testing.T) {
	a := NewMetadata("same content", "")
	b := NewMetadata("same content", "")
	c := NewMetadata("other content", "")

	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.Hash, c.Hash)
}

func TestMetadataToJSON(t *testing.T) {
	meta := NewMetadata("hello world", "https://example.com/job")

	data, err := meta.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"url": "https://example.com/job"`)
	assert.Contains(t, string(data), `"word_count": 2`)
}
