package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/resolved/pkg/config"
	"github.com/umputun/resolved/pkg/domain"
	"github.com/umputun/resolved/pkg/llm"
)

// fakeLLM serves an OpenAI-compatible chat completion endpoint returning the
// given content and recording the last prompt
func fakeLLM(t *testing.T, content string, lastPrompt *string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if lastPrompt != nil && len(req.Messages) > 0 {
			*lastPrompt = req.Messages[len(req.Messages)-1].Content
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testLLMConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:    endpoint,
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   500,
		Timeout:     5 * time.Second,
	}
}

func TestEnricher_EnrichLog(t *testing.T) {
	t.Run("well-formed response", func(t *testing.T) {
		var prompt string
		srv := fakeLLM(t, `{"sentiment":"positive","progress_estimate":60,"feedback":"Nice pace, keep it up."}`, &prompt)
		defer srv.Close()

		e := llm.NewEnricher(testLLMConfig(srv.URL))
		res, err := e.EnrichLog(context.Background(), llm.EnrichRequest{
			Title:       "Run daily",
			Description: "5k every morning",
			RecentNotes: []llm.RecentNote{{Note: "ran 3k", CreatedAt: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)}},
			NewNote:     "ran 5k today",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SentimentPositive, res.Sentiment)
		assert.Equal(t, 60, res.ProgressEstimate)
		assert.Equal(t, "Nice pace, keep it up.", res.Feedback)

		// prompt carries the resolution context and the new note
		assert.Contains(t, prompt, "Resolution: Run daily")
		assert.Contains(t, prompt, "ran 3k (2024-03-10)")
		assert.Contains(t, prompt, "New update: ran 5k today")
	})

	t.Run("non-json response fails", func(t *testing.T) {
		srv := fakeLLM(t, "I cannot analyze this right now.", nil)
		defer srv.Close()

		e := llm.NewEnricher(testLLMConfig(srv.URL))
		_, err := e.EnrichLog(context.Background(), llm.EnrichRequest{Title: "Run daily", NewNote: "ran"})
		require.Error(t, err)
		assert.ErrorIs(t, err, llm.ErrMalformedResponse)
	})

	t.Run("unreachable endpoint fails", func(t *testing.T) {
		e := llm.NewEnricher(testLLMConfig("http://127.0.0.1:1"))
		_, err := e.EnrichLog(context.Background(), llm.EnrichRequest{Title: "Run daily", NewNote: "ran"})
		require.Error(t, err)
	})
}

func TestEnricher_SuggestCategory(t *testing.T) {
	var prompt string
	srv := fakeLLM(t, `{"category":"Health","framing":"Daily movement compounds."}`, &prompt)
	defer srv.Close()

	e := llm.NewEnricher(testLLMConfig(srv.URL))
	res, err := e.SuggestCategory(context.Background(), "Run daily", "5k every morning")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryHealth, res.Category)
	assert.Equal(t, "Daily movement compounds.", res.Framing)
	assert.Contains(t, prompt, "Resolution title: Run daily")
	assert.Contains(t, prompt, "Health, Finance, Learning")
}

func TestEnricher_WeeklySummary(t *testing.T) {
	t.Run("free-text recap", func(t *testing.T) {
		srv := fakeLLM(t, "A strong week with two runs logged. Try adding a rest-day stretch.", nil)
		defer srv.Close()

		e := llm.NewEnricher(testLLMConfig(srv.URL))
		summary, err := e.WeeklySummary(context.Background(), llm.SummaryRequest{
			UserName: "Alice",
			Logs: []domain.LogWithTitle{
				{ProgressLog: domain.ProgressLog{Note: "ran 5k", AISentiment: domain.SentimentPositive}, ResolutionTitle: "Run daily"},
			},
		})
		require.NoError(t, err)
		assert.Contains(t, summary, "strong week")
	})

	t.Run("no logs skips the model entirely", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		e := llm.NewEnricher(testLLMConfig(srv.URL))
		summary, err := e.WeeklySummary(context.Background(), llm.SummaryRequest{UserName: "Alice"})
		require.NoError(t, err)
		assert.Empty(t, summary)
		assert.False(t, called)
	})
}

func TestParseEnrichment(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    domain.EnrichmentResult
		wantErr bool
	}{
		{
			name: "clean payload",
			raw:  `{"sentiment":"negative","progress_estimate":25,"feedback":"Rough patch, try smaller steps."}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNegative, ProgressEstimate: 25, Feedback: "Rough patch, try smaller steps."},
		},
		{
			name: "markdown fenced payload",
			raw:  "```json\n{\"sentiment\":\"positive\",\"progress_estimate\":80,\"feedback\":\"ok\"}\n```",
			want: domain.EnrichmentResult{Sentiment: domain.SentimentPositive, ProgressEstimate: 80, Feedback: "ok"},
		},
		{
			name: "unknown sentiment defaults to neutral",
			raw:  `{"sentiment":"amazing","progress_estimate":50,"feedback":"x"}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNeutral, ProgressEstimate: 50, Feedback: "x"},
		},
		{
			name: "progress above range clamped",
			raw:  `{"sentiment":"neutral","progress_estimate":150,"feedback":"x"}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNeutral, ProgressEstimate: 100, Feedback: "x"},
		},
		{
			name: "negative progress clamped",
			raw:  `{"sentiment":"neutral","progress_estimate":-5,"feedback":"x"}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNeutral, ProgressEstimate: 0, Feedback: "x"},
		},
		{
			name: "numeric string progress accepted",
			raw:  `{"sentiment":"neutral","progress_estimate":"42","feedback":"x"}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNeutral, ProgressEstimate: 42, Feedback: "x"},
		},
		{
			name: "non-numeric progress becomes zero",
			raw:  `{"sentiment":"neutral","progress_estimate":"halfway","feedback":"x"}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNeutral, ProgressEstimate: 0, Feedback: "x"},
		},
		{
			name: "NaN string progress becomes zero",
			raw:  `{"sentiment":"neutral","progress_estimate":"NaN","feedback":"x"}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNeutral, ProgressEstimate: 0, Feedback: "x"},
		},
		{
			name: "infinite string progress becomes zero",
			raw:  `{"sentiment":"neutral","progress_estimate":"Inf","feedback":"x"}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNeutral, ProgressEstimate: 0, Feedback: "x"},
		},
		{
			name: "missing fields fall back to defaults",
			raw:  `{}`,
			want: domain.EnrichmentResult{Sentiment: domain.SentimentNeutral},
		},
		{
			name:    "plain prose",
			raw:     "not json",
			wantErr: true,
		},
		{
			name:    "json array",
			raw:     `[{"sentiment":"positive"}]`,
			wantErr: true,
		},
		{
			name:    "json scalar",
			raw:     `"positive"`,
			wantErr: true,
		},
		{
			name:    "json null",
			raw:     `null`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := llm.ParseEnrichment(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, llm.ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    domain.CategoryResult
		wantErr bool
	}{
		{
			name: "known category",
			raw:  `{"category":"Career","framing":"You show up for yourself."}`,
			want: domain.CategoryResult{Category: domain.CategoryCareer, Framing: "You show up for yourself."},
		},
		{
			name: "unknown category means no suggestion",
			raw:  `{"category":"extreme-sports","framing":"Go big."}`,
			want: domain.CategoryResult{Framing: "Go big."},
		},
		{
			name: "prose wrapped payload",
			raw:  `Sure! Here you go: {"category":"Learning","framing":"Curiosity pays off."}`,
			want: domain.CategoryResult{Category: domain.CategoryLearning, Framing: "Curiosity pays off."},
		},
		{
			name:    "array payload",
			raw:     `["Health"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := llm.ParseCategory(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, llm.ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
