package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	fetchTimeout = 30 * time.Second
	userAgent    = "Mozilla/5.0 (compatible; ResumeScanner/1.0)"
)

var (
	// ErrInvalidURL is returned when the URL is malformed.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text can be extracted.
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// jobContentSelectors are tried in order; the first match wins. The list
// leads with job-board description containers and falls back to generic
// page structure.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// IngestFromURL fetches a job posting page, extracts its main text, and
// returns the cleaned text with metadata.
func IngestFromURL(ctx context.Context, urlStr string) (string, *Metadata, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidURL, urlStr)
	}

	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := extractMainText(html)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleaned := CleanText(text)
	metadata := NewMetadata(cleaned, urlStr)
	return cleaned, metadata, nil
}

func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	client := &http.Client{Timeout: fetchTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// extractMainText strips navigation and script noise, then returns the text
// of the first matching content container, falling back to the page body.
func extractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range jobContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	text := strings.TrimSpace(content.Text())
	if text == "" {
		return "", errors.New("page contains no extractable text")
	}
	return text, nil
}
