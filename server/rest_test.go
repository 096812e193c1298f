package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/resolved/pkg/domain"
	"github.com/umputun/resolved/pkg/llm"
	"github.com/umputun/resolved/pkg/repository"
	"github.com/umputun/resolved/server/mocks"
)

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var data map[string]interface{}
	if resp.ContentLength != 0 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
	}
	return resp, data
}

func TestServer_CreateUser(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email == "taken@example.com" {
				return &domain.User{ID: 7, Email: email}, nil
			}
			return nil, fmt.Errorf("user %s: %w", email, repository.ErrNotFound)
		},
		CreateUserFunc: func(ctx context.Context, user *domain.User) error {
			user.ID = 42
			user.Frequency = domain.FrequencyDaily
			return nil
		},
	}
	baseURL := startTestServer(t, Params{Users: users})

	t.Run("creates with defaults", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, baseURL+"/api/v1/users",
			`{"email":"Alice@Example.com","name":"Alice"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, float64(42), data["id"])
		assert.Equal(t, "alice@example.com", data["email"]) // normalized
		assert.Equal(t, "daily", data["frequency"])
		assert.Equal(t, true, data["checkin_emails"])
		assert.Equal(t, true, data["summary_emails"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, baseURL+"/api/v1/users",
			`{"email":"taken@example.com"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, data["error"], "already exists")
	})

	t.Run("duplicate created concurrently", func(t *testing.T) {
		// the pre-check misses, the insert itself hits the unique constraint
		racers := &mocks.UserStoreMock{
			GetUserByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, fmt.Errorf("user %s: %w", email, repository.ErrNotFound)
			},
			CreateUserFunc: func(ctx context.Context, user *domain.User) error {
				return fmt.Errorf("user %s: %w", user.Email, repository.ErrDuplicate)
			},
		}
		raceURL := startTestServer(t, Params{Users: racers})

		resp, data := doJSON(t, http.MethodPost, raceURL+"/api/v1/users",
			`{"email":"raced@example.com"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, data["error"], "already exists")
	})

	t.Run("invalid email", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/v1/users", `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid frequency", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/v1/users",
			`{"email":"ok@example.com","frequency":"hourly"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_GetUser(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetUserFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			if id != 1 {
				return nil, fmt.Errorf("user %d: %w", id, repository.ErrNotFound)
			}
			return &domain.User{ID: 1, Email: "alice@example.com", Name: "Alice", Frequency: domain.FrequencyWeekly}, nil
		},
	}
	baseURL := startTestServer(t, Params{Users: users})

	t.Run("found", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodGet, baseURL+"/api/v1/users/1", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "alice@example.com", data["email"])
		assert.Equal(t, "weekly", data["frequency"])
	})

	t.Run("missing", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, baseURL+"/api/v1/users/99", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad id", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, baseURL+"/api/v1/users/abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_CreateResolution(t *testing.T) {
	t.Run("creates with ai suggestion", func(t *testing.T) {
		var created *domain.Resolution
		resolutions := &mocks.ResolutionStoreMock{
			CreateFunc: func(ctx context.Context, res *domain.Resolution) error {
				res.ID = 10
				created = res
				return nil
			},
		}
		enricher := &mocks.EnricherMock{
			SuggestCategoryFunc: func(ctx context.Context, title, description string) (domain.CategoryResult, error) {
				return domain.CategoryResult{Category: domain.CategoryHealth, Framing: "Movement compounds."}, nil
			},
		}
		baseURL := startTestServer(t, Params{Resolutions: resolutions, Enricher: enricher})

		resp, data := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions",
			`{"user_id":1,"title":"Run daily","description":"5k every morning"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, float64(10), data["id"])
		assert.Equal(t, "Health", data["category"])
		assert.Equal(t, "Movement compounds.", data["ai_framing"])
		assert.Equal(t, "active", data["status"])

		require.NotNil(t, created)
		assert.Equal(t, domain.CategoryHealth, created.Category)
	})

	t.Run("ai failure never blocks creation", func(t *testing.T) {
		resolutions := &mocks.ResolutionStoreMock{
			CreateFunc: func(ctx context.Context, res *domain.Resolution) error {
				res.ID = 11
				return nil
			},
		}
		enricher := &mocks.EnricherMock{
			SuggestCategoryFunc: func(ctx context.Context, title, description string) (domain.CategoryResult, error) {
				return domain.CategoryResult{}, errors.New("model down")
			},
		}
		baseURL := startTestServer(t, Params{Resolutions: resolutions, Enricher: enricher})

		resp, data := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions",
			`{"user_id":1,"title":"Run daily"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Nil(t, data["category"]) // omitted when empty
		assert.Len(t, resolutions.CreateCalls(), 1)
	})

	t.Run("title is sanitized", func(t *testing.T) {
		resolutions := &mocks.ResolutionStoreMock{
			CreateFunc: func(ctx context.Context, res *domain.Resolution) error {
				res.ID = 12
				return nil
			},
		}
		enricher := &mocks.EnricherMock{
			SuggestCategoryFunc: func(ctx context.Context, title, description string) (domain.CategoryResult, error) {
				return domain.CategoryResult{}, nil
			},
		}
		baseURL := startTestServer(t, Params{Resolutions: resolutions, Enricher: enricher})

		resp, data := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions",
			`{"user_id":1,"title":"  Run <script>alert(1)</script>daily  "}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Run daily", data["title"])
	})

	t.Run("missing title", func(t *testing.T) {
		baseURL := startTestServer(t, Params{})
		resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions", `{"user_id":1}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad body", func(t *testing.T) {
		baseURL := startTestServer(t, Params{})
		resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions", `{not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_ListResolutions(t *testing.T) {
	resolutions := &mocks.ResolutionStoreMock{
		ListByUserFunc: func(ctx context.Context, userID int64, status domain.Status) ([]domain.Resolution, error) {
			if status == domain.StatusPaused {
				return nil, nil
			}
			return []domain.Resolution{
				{ID: 1, UserID: userID, Title: "Run daily", Status: domain.StatusActive},
				{ID: 2, UserID: userID, Title: "Read more", Status: domain.StatusActive},
			}, nil
		},
	}
	baseURL := startTestServer(t, Params{Resolutions: resolutions})

	t.Run("all for user", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/api/v1/resolutions?user_id=1")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Len(t, list, 2)
	})

	t.Run("status filter passes through", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/api/v1/resolutions?user_id=1&status=paused")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Empty(t, list)
	})

	t.Run("invalid status", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, baseURL+"/api/v1/resolutions?user_id=1&status=bogus", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing user_id", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, baseURL+"/api/v1/resolutions", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_GetResolution(t *testing.T) {
	resolutions := &mocks.ResolutionStoreMock{
		GetFunc: func(ctx context.Context, userID, id int64) (*domain.Resolution, error) {
			if id != 10 || userID != 1 {
				return nil, fmt.Errorf("resolution %d: %w", id, repository.ErrNotFound)
			}
			return &domain.Resolution{ID: 10, UserID: 1, Title: "Run daily", Status: domain.StatusActive}, nil
		},
	}
	logs := &mocks.LogStoreMock{
		ListByResolutionFunc: func(ctx context.Context, resolutionID int64, limit int) ([]domain.ProgressLog, error) {
			return []domain.ProgressLog{{ID: 100, ResolutionID: resolutionID, UserID: 1, Note: "ran 5k"}}, nil
		},
	}
	baseURL := startTestServer(t, Params{Resolutions: resolutions, Logs: logs})

	t.Run("returns resolution with recent logs", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodGet, baseURL+"/api/v1/resolutions/10?user_id=1", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		res, ok := data["resolution"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Run daily", res["title"])

		logList, ok := data["logs"].([]interface{})
		require.True(t, ok)
		require.Len(t, logList, 1)
		assert.Equal(t, "ran 5k", logList[0].(map[string]interface{})["note"])
	})

	t.Run("owner scoped", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, baseURL+"/api/v1/resolutions/10?user_id=2", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_UpdateResolution(t *testing.T) {
	resolutions := &mocks.ResolutionStoreMock{
		UpdateFunc: func(ctx context.Context, userID, id int64, title, description string, targetDate *time.Time) error {
			if id != 10 {
				return fmt.Errorf("resolution %d: %w", id, repository.ErrNotFound)
			}
			return nil
		},
	}
	baseURL := startTestServer(t, Params{Resolutions: resolutions})

	t.Run("updates fields", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPut, baseURL+"/api/v1/resolutions/10",
			`{"user_id":1,"title":"Run twice daily","description":"morning and evening"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "updated", data["result"])

		calls := resolutions.UpdateCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "Run twice daily", calls[0].Title)
		assert.Equal(t, "morning and evening", calls[0].Description)
		assert.Nil(t, calls[0].TargetDate)
	})

	t.Run("title is sanitized", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, baseURL+"/api/v1/resolutions/10",
			`{"user_id":1,"title":" Run <b>twice</b> daily "}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := resolutions.UpdateCalls()
		assert.Equal(t, "Run twice daily", calls[len(calls)-1].Title)
	})

	t.Run("missing title", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, baseURL+"/api/v1/resolutions/10", `{"user_id":1,"title":"  "}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing resolution", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, baseURL+"/api/v1/resolutions/99",
			`{"user_id":1,"title":"Run daily"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_UpdateStatus(t *testing.T) {
	resolutions := &mocks.ResolutionStoreMock{
		UpdateStatusFunc: func(ctx context.Context, userID, id int64, status domain.Status) error {
			if id != 10 {
				return fmt.Errorf("resolution %d: %w", id, repository.ErrNotFound)
			}
			return nil
		},
	}
	baseURL := startTestServer(t, Params{Resolutions: resolutions})

	t.Run("updates", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPut, baseURL+"/api/v1/resolutions/10/status",
			`{"user_id":1,"status":"completed"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "completed", data["status"])

		calls := resolutions.UpdateStatusCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.StatusCompleted, calls[0].Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, baseURL+"/api/v1/resolutions/10/status",
			`{"user_id":1,"status":"done"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing resolution", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, baseURL+"/api/v1/resolutions/99/status",
			`{"user_id":1,"status":"paused"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_CreateLog(t *testing.T) {
	resolution := &domain.Resolution{ID: 10, UserID: 1, Title: "Run daily", Description: "5k"}

	newStores := func() (*mocks.ResolutionStoreMock, *mocks.LogStoreMock) {
		resolutions := &mocks.ResolutionStoreMock{
			GetFunc: func(ctx context.Context, userID, id int64) (*domain.Resolution, error) {
				if id != 10 || userID != 1 {
					return nil, fmt.Errorf("resolution %d: %w", id, repository.ErrNotFound)
				}
				return resolution, nil
			},
		}
		logs := &mocks.LogStoreMock{
			CreateFunc: func(ctx context.Context, plog *domain.ProgressLog) error {
				plog.ID = 100
				return nil
			},
			ListByResolutionFunc: func(ctx context.Context, resolutionID int64, limit int) ([]domain.ProgressLog, error) {
				return []domain.ProgressLog{
					{ID: 99, ResolutionID: resolutionID, UserID: 1, Note: "ran 3k", CreatedAt: time.Now().Add(-24 * time.Hour)},
				}, nil
			},
		}
		return resolutions, logs
	}

	t.Run("saves with enrichment", func(t *testing.T) {
		resolutions, logs := newStores()
		enricher := &mocks.EnricherMock{
			EnrichLogFunc: func(ctx context.Context, req llm.EnrichRequest) (domain.EnrichmentResult, error) {
				return domain.EnrichmentResult{
					Sentiment:        domain.SentimentPositive,
					ProgressEstimate: 60,
					Feedback:         "Nice pace.",
				}, nil
			},
		}
		baseURL := startTestServer(t, Params{Resolutions: resolutions, Logs: logs, Enricher: enricher})

		resp, data := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions/10/logs",
			`{"user_id":1,"note":"ran 5k today"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "ran 5k today", data["note"])
		assert.Equal(t, "positive", data["ai_sentiment"])
		assert.Equal(t, float64(60), data["ai_progress"])
		assert.Equal(t, "Nice pace.", data["ai_feedback"])

		// enrichment got the resolution context and prior notes
		calls := enricher.EnrichLogCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "Run daily", calls[0].Req.Title)
		require.Len(t, calls[0].Req.RecentNotes, 1)
		assert.Equal(t, "ran 3k", calls[0].Req.RecentNotes[0].Note)
		assert.Equal(t, "ran 5k today", calls[0].Req.NewNote)
	})

	t.Run("enrichment failure saves plain log", func(t *testing.T) {
		resolutions, logs := newStores()
		enricher := &mocks.EnricherMock{
			EnrichLogFunc: func(ctx context.Context, req llm.EnrichRequest) (domain.EnrichmentResult, error) {
				return domain.EnrichmentResult{}, llm.ErrMalformedResponse
			},
		}
		baseURL := startTestServer(t, Params{Resolutions: resolutions, Logs: logs, Enricher: enricher})

		resp, data := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions/10/logs",
			`{"user_id":1,"note":"ran 5k today"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "ran 5k today", data["note"])
		assert.Nil(t, data["ai_sentiment"])
		assert.Nil(t, data["ai_progress"])
		assert.Len(t, logs.CreateCalls(), 1)
	})

	t.Run("empty note rejected", func(t *testing.T) {
		resolutions, logs := newStores()
		baseURL := startTestServer(t, Params{Resolutions: resolutions, Logs: logs})

		resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions/10/logs",
			`{"user_id":1,"note":"   "}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, logs.CreateCalls())
	})

	t.Run("missing resolution", func(t *testing.T) {
		resolutions, logs := newStores()
		baseURL := startTestServer(t, Params{Resolutions: resolutions, Logs: logs})

		resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/v1/resolutions/99/logs",
			`{"user_id":1,"note":"hello"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_ListSummaries(t *testing.T) {
	summaries := &mocks.SummaryStoreMock{
		ListByUserFunc: func(ctx context.Context, userID int64, limit int) ([]domain.WeeklySummary, error) {
			return []domain.WeeklySummary{{ID: 1, UserID: userID, Summary: "a good week"}}, nil
		},
	}
	baseURL := startTestServer(t, Params{Summaries: summaries})

	resp, err := http.Get(baseURL + "/api/v1/users/1/summaries")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "a good week", list[0]["summary"])
}

func TestServer_UpdateSettings(t *testing.T) {
	users := &mocks.UserStoreMock{
		UpdateSettingsFunc: func(ctx context.Context, userID int64, settings domain.Settings) error {
			if userID != 1 {
				return fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
			}
			return nil
		},
	}
	baseURL := startTestServer(t, Params{Users: users})

	t.Run("updates", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, baseURL+"/api/v1/users/1/settings",
			`{"frequency":"every_3_days","checkin_emails":true,"summary_emails":false}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := users.UpdateSettingsCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.FrequencyEvery3Days, calls[0].Settings.Frequency)
		assert.True(t, calls[0].Settings.CheckinEmails)
		assert.False(t, calls[0].Settings.SummaryEmails)
	})

	t.Run("invalid frequency", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, baseURL+"/api/v1/users/1/settings",
			`{"frequency":"hourly"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing user is an error not a no-op", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, baseURL+"/api/v1/users/99/settings",
			`{"frequency":"daily"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_CronEndpoints(t *testing.T) {
	digester := &mocks.DigesterMock{
		CheckInFunc:       func(ctx context.Context) (int, error) { return 3, nil },
		WeeklySummaryFunc: func(ctx context.Context) (int, error) { return 2, nil },
	}

	t.Run("with valid secret", func(t *testing.T) {
		baseURL := startTestServer(t, Params{Digester: digester})

		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/cron/check-in", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer test-secret")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var data map[string]int
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
		assert.Equal(t, 3, data["sent"])

		req, err = http.NewRequest(http.MethodPost, baseURL+"/api/v1/cron/weekly-summary", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer test-secret")
		resp2, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp2.Body.Close()

		assert.Equal(t, http.StatusOK, resp2.StatusCode)
		require.NoError(t, json.NewDecoder(resp2.Body).Decode(&data))
		assert.Equal(t, 2, data["processed"])
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		baseURL := startTestServer(t, Params{Digester: digester})

		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/cron/check-in", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer wrong")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unset secret disables endpoints", func(t *testing.T) {
		cfg := &mocks.ConfigProviderMock{
			GetServerConfigFunc: nil, // filled below
			GetCronSecretFunc:   func() string { return "" },
		}
		// startTestServer only injects a config when none given, so build one
		// with the empty secret and a real listen address
		baseURL := startTestServerWithConfig(t, Params{Digester: digester}, cfg)

		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/cron/check-in", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer ") // even a matching empty token fails
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

// startTestServerWithConfig is startTestServer with a caller-provided config,
// the listen address is still overridden to a free local port
func startTestServerWithConfig(t *testing.T, p Params, cfg *mocks.ConfigProviderMock) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}
	p.Config = cfg
	p.Version = "test"

	srv := New(p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = srv.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond, "server did not start")

	return baseURL
}
