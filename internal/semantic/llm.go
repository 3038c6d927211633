package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-scanner/internal/extraction"
	"github.com/jonathan/resume-scanner/internal/skills"
	"github.com/jonathan/resume-scanner/internal/types"
)

// DefaultScoringModel is the generative model used for LLM-scored matching
// when the configuration does not name one.
const DefaultScoringModel = "gemini-2.0-flash"

// scoreResponseSchema validates the model's scoring output before it is
// trusted. Responses missing keywords or carrying non-numeric scores are
// rejected rather than silently coerced.
const scoreResponseSchema = `{
	"type": "object",
	"required": ["results"],
	"properties": {
		"results": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["keyword", "similarity"],
				"properties": {
					"keyword": {"type": "string"},
					"similarity": {"type": "number"}
				}
			}
		}
	}
}`

var scoreSchema = gojsonschema.NewStringLoader(scoreResponseSchema)

// LLMMatcher scores keywords against the resume by asking a generative model
// for per-keyword similarity instead of computing embeddings. It shares the
// extraction pipeline and tier classification with Matcher.
type LLMMatcher struct {
	cfg       Config
	client    *genai.Client
	model     string
	extractor *extraction.Extractor
}

// NewLLMMatcher creates an LLM-scored matcher over the given Gemini model.
func NewLLMMatcher(ctx context.Context, apiKey, model string, dict *skills.Dictionary, cfg Config) (*LLMMatcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultScoringModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &LLMMatcher{
		cfg:       cfg,
		client:    client,
		model:     model,
		extractor: extraction.NewExtractor(dict),
	}, nil
}

// Close releases resources held by the underlying client.
func (m *LLMMatcher) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// Match extracts keywords from the job description and asks the model to
// score each one against the resume text.
func (m *LLMMatcher) Match(ctx context.Context, resumeText, jobDescription string) (*types.EnhancedScanResult, error) {
	keywords := m.extractor.ExtractKeywords(jobDescription)
	if len(keywords) == 0 {
		return buildResult(nil), nil
	}

	scores, err := m.scoreKeywords(ctx, resumeText, keywords)
	if err != nil {
		return nil, err
	}

	results := make([]types.EnhancedKeywordResult, 0, len(keywords))
	for _, kw := range keywords {
		sim := ClampScore(scores[kw.Phrase])
		results = append(results, classifyKeyword(m.cfg, kw, sim, ""))
	}
	return buildResult(results), nil
}

// scoreKeywords runs one scoring call and returns similarity by phrase.
// Keywords the model omits score zero.
func (m *LLMMatcher) scoreKeywords(ctx context.Context, resumeText string, keywords []types.Keyword) (map[string]float64, error) {
	model := m.client.GenerativeModel(m.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := buildScoringPrompt(resumeText, keywords)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to score keywords: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	text = cleanJSONBlock(text)

	validation, err := gojsonschema.Validate(scoreSchema, gojsonschema.NewStringLoader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to validate scoring response: %w", err)
	}
	if !validation.Valid() {
		return nil, fmt.Errorf("scoring response failed validation: %v", validation.Errors())
	}

	var parsed struct {
		Results []struct {
			Keyword    string  `json:"keyword"`
			Similarity float64 `json:"similarity"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse scoring response: %w", err)
	}

	scores := make(map[string]float64, len(parsed.Results))
	for _, r := range parsed.Results {
		scores[strings.ToLower(strings.TrimSpace(r.Keyword))] = r.Similarity
	}
	return scores, nil
}

// buildScoringPrompt constructs the scoring request for the model.
func buildScoringPrompt(resumeText string, keywords []types.Keyword) string {
	var sb strings.Builder
	sb.WriteString("You are an applicant tracking system. For each keyword below, score how strongly ")
	sb.WriteString("the resume demonstrates that skill or experience, from 0.0 (absent) to 1.0 (explicit, central).\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\"results\": [{\"keyword\": \"string\", \"similarity\": 0.0}]}\n\n")
	sb.WriteString("Score every keyword exactly once, keyword text verbatim.\n\n")
	sb.WriteString("Keywords:\n")
	for _, kw := range keywords {
		sb.WriteString("- ")
		sb.WriteString(kw.Phrase)
		sb.WriteString("\n")
	}
	sb.WriteString("\nResume:\n\"\"\"\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// responseText extracts the text parts of a generation response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
