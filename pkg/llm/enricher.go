// Package llm talks to an OpenAI-compatible model for progress-note
// enrichment, category suggestion and weekly summaries. Model output is
// untrusted, everything structured goes through the normalizers before the
// rest of the system sees it.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/resolved/pkg/config"
	"github.com/umputun/resolved/pkg/domain"
)

// ErrMalformedResponse indicates the model returned something that is not a
// JSON object where structured data was required. This is the only fatal
// normalization outcome, odd field values are silently defaulted instead.
var ErrMalformedResponse = errors.New("malformed model response")

// Enricher uses an LLM to annotate tracker data
type Enricher struct {
	client *openai.Client
	config config.LLMConfig
}

// NewEnricher creates an enricher from LLM configuration
func NewEnricher(cfg config.LLMConfig) *Enricher {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Enricher{client: openai.NewClientWithConfig(clientConfig), config: cfg}
}

// RecentNote is a prior progress note passed to the model for context
type RecentNote struct {
	Note      string
	CreatedAt time.Time
}

// EnrichRequest contains the context for progress-note enrichment
type EnrichRequest struct {
	Title       string
	Description string
	RecentNotes []RecentNote
	NewNote     string
}

// EnrichLog asks the model to analyze a new progress note and returns the
// normalized sentiment, progress estimate and coaching feedback
func (e *Enricher) EnrichLog(ctx context.Context, req EnrichRequest) (domain.EnrichmentResult, error) {
	var sb strings.Builder
	sb.WriteString("You are analyzing a progress update for a personal resolution. ")
	sb.WriteString("Respond with valid JSON only, no markdown, no explanation.\n\n")
	sb.WriteString(fmt.Sprintf("Resolution: %s\n", req.Title))
	if req.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", req.Description))
	}

	sb.WriteString("\nRecent progress logs:\n")
	notes := req.RecentNotes
	if len(notes) > 5 {
		notes = notes[len(notes)-5:]
	}
	if len(notes) == 0 {
		sb.WriteString("No previous logs.\n")
	}
	for _, n := range notes {
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", n.Note, n.CreatedAt.Format("2006-01-02")))
	}

	sb.WriteString(fmt.Sprintf("\nNew update: %s\n\n", req.NewNote))
	sb.WriteString(`Respond with this exact JSON structure:
{"sentiment":"positive|neutral|negative","progress_estimate":0-100,"feedback":"1-2 sentences of specific encouraging coaching"}`)

	content, err := e.complete(ctx, "You are a supportive habit coach.", sb.String())
	if err != nil {
		return domain.EnrichmentResult{}, err
	}
	return ParseEnrichment(content)
}

// SuggestCategory asks the model to pick a category and motivational framing
// for a new resolution
func (e *Enricher) SuggestCategory(ctx context.Context, title, description string) (domain.CategoryResult, error) {
	categories := make([]string, 0, 6)
	for _, c := range domain.Categories() {
		categories = append(categories, string(c))
	}

	var sb strings.Builder
	sb.WriteString("Suggest a category and motivational framing for this resolution. Respond with valid JSON only.\n\n")
	sb.WriteString(fmt.Sprintf("Resolution title: %s\n", title))
	sb.WriteString(fmt.Sprintf("Description: %s\n\n", description))
	sb.WriteString(fmt.Sprintf("Categories (choose exactly one): %s\n\n", strings.Join(categories, ", ")))
	sb.WriteString(`Respond with this exact JSON structure:
{"category":"one of the above","framing":"one sentence about why this matters"}`)

	content, err := e.complete(ctx, "You are a supportive habit coach.", sb.String())
	if err != nil {
		return domain.CategoryResult{}, err
	}
	return ParseCategory(content)
}

// SummaryRequest contains a user's week of logs for summarization
type SummaryRequest struct {
	UserName string
	Logs     []domain.LogWithTitle
}

// WeeklySummary generates a free-text recap of the user's week. Returns an
// empty string without calling the model when there are no logs.
func (e *Enricher) WeeklySummary(ctx context.Context, req SummaryRequest) (string, error) {
	if len(req.Logs) == 0 {
		return "", nil
	}

	name := req.UserName
	if name == "" {
		name = "this person"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Write a brief weekly summary for %s's resolution progress. ", name))
	sb.WriteString("Be warm, specific, and end with one concrete suggestion.\n\n")
	sb.WriteString("This week's logs:\n")
	for _, l := range req.Logs {
		sentiment := "no sentiment"
		if l.AISentiment != "" {
			sentiment = string(l.AISentiment)
		}
		sb.WriteString(fmt.Sprintf("[%s] %s (%s)\n", l.ResolutionTitle, l.Note, sentiment))
	}
	sb.WriteString("\nWrite 2-3 short paragraphs. No bullet points. No markdown.")

	return e.complete(ctx, "You are a supportive habit coach.", sb.String())
}

// complete sends a single chat completion request and returns the raw content
func (e *Enricher) complete(ctx context.Context, system, prompt string) (string, error) {
	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(e.config.Temperature),
		MaxTokens:   e.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// ParseEnrichment normalizes a raw enrichment response. A payload that is not
// a JSON object fails with ErrMalformedResponse, individual bad fields never
// fail: unknown sentiment defaults to neutral, non-numeric progress becomes 0
// and any number is clamped into [0,100].
func ParseEnrichment(raw string) (domain.EnrichmentResult, error) {
	data, err := parseObject(raw)
	if err != nil {
		return domain.EnrichmentResult{}, err
	}

	res := domain.EnrichmentResult{Sentiment: domain.SentimentNeutral}
	if s, ok := data["sentiment"].(string); ok && domain.Sentiment(s).Valid() {
		res.Sentiment = domain.Sentiment(s)
	}
	res.ProgressEstimate = clampProgress(data["progress_estimate"])
	if f, ok := data["feedback"].(string); ok {
		res.Feedback = f
	}
	return res, nil
}

// ParseCategory normalizes a raw category-suggestion response. A payload that
// is not a JSON object fails with ErrMalformedResponse. A category outside
// the allow-list is not an error, it is "no suggestion".
func ParseCategory(raw string) (domain.CategoryResult, error) {
	data, err := parseObject(raw)
	if err != nil {
		return domain.CategoryResult{}, err
	}

	res := domain.CategoryResult{}
	if c, ok := data["category"].(string); ok {
		for _, allowed := range domain.Categories() {
			if domain.Category(c) == allowed {
				res.Category = allowed
				break
			}
		}
	}
	if f, ok := data["framing"].(string); ok {
		res.Framing = f
	}
	return res, nil
}

// parseObject unmarshals a JSON object from raw model output. A payload that
// is valid JSON but not an object (array, scalar) is malformed. Models wrap
// JSON in prose or markdown fences often enough that when the payload is not
// valid JSON at all, the span between the first "{" and the last "}" gets a
// second attempt.
func parseObject(raw string) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err == nil {
		if data == nil { // literal null
			return nil, fmt.Errorf("response is not a json object: %w", ErrMalformedResponse)
		}
		return data, nil
	}

	if json.Valid([]byte(raw)) {
		// parseable but the wrong shape, no point digging for an object inside
		return nil, fmt.Errorf("response is not a json object: %w", ErrMalformedResponse)
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json object found in response: %w", ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &data); err != nil {
		return nil, fmt.Errorf("parse json object response: %w", ErrMalformedResponse)
	}
	return data, nil
}

// clampProgress coerces an arbitrary JSON value to an integer in [0,100]
func clampProgress(v interface{}) int {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	// ParseFloat accepts "NaN" and "Inf", both escape the range comparisons
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return int(f)
}
