package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/resolved/pkg/domain"
	"github.com/umputun/resolved/pkg/llm"
	"github.com/umputun/resolved/pkg/repository"
)

// resolutionJSON is the wire representation of a resolution
type resolutionJSON struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	AIFraming   string     `json:"ai_framing,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toResolutionJSON(res domain.Resolution) resolutionJSON {
	return resolutionJSON{
		ID:          res.ID,
		UserID:      res.UserID,
		Title:       res.Title,
		Description: res.Description,
		Category:    string(res.Category),
		AIFraming:   res.AIFraming,
		TargetDate:  res.TargetDate,
		Status:      string(res.Status),
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}

// logJSON is the wire representation of a progress log
type logJSON struct {
	ID           int64     `json:"id"`
	ResolutionID int64     `json:"resolution_id"`
	UserID       int64     `json:"user_id"`
	Note         string    `json:"note"`
	AISentiment  string    `json:"ai_sentiment,omitempty"`
	AIProgress   *int      `json:"ai_progress,omitempty"`
	AIFeedback   string    `json:"ai_feedback,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toLogJSON(plog domain.ProgressLog) logJSON {
	return logJSON{
		ID:           plog.ID,
		ResolutionID: plog.ResolutionID,
		UserID:       plog.UserID,
		Note:         plog.Note,
		AISentiment:  string(plog.AISentiment),
		AIProgress:   plog.AIProgress,
		AIFeedback:   plog.AIFeedback,
		CreatedAt:    plog.CreatedAt,
	}
}

// userJSON is the wire representation of a user
type userJSON struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	Frequency     string    `json:"frequency"`
	CheckinEmails bool      `json:"checkin_emails"`
	SummaryEmails bool      `json:"summary_emails"`
	CreatedAt     time.Time `json:"created_at"`
}

func toUserJSON(user domain.User) userJSON {
	return userJSON{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Frequency:     string(user.Frequency),
		CheckinEmails: user.CheckinEmails,
		SummaryEmails: user.SummaryEmails,
		CreatedAt:     user.CreatedAt,
	}
}

// createUserHandler registers a user. Email must be unique, frequency
// defaults to daily when omitted.
func (s *Server) createUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Email     string `json:"email"`
		Name      string `json:"name"`
		Frequency string `json:"frequency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		renderError(w, r, fmt.Errorf("valid email is required"), http.StatusBadRequest)
		return
	}
	if req.Frequency != "" && !domain.Frequency(req.Frequency).Valid() {
		renderError(w, r, fmt.Errorf("invalid frequency %q", req.Frequency), http.StatusBadRequest)
		return
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		renderError(w, r, fmt.Errorf("user with email %s already exists", email), http.StatusConflict)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Printf("[ERROR] failed to check existing user: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	user := &domain.User{
		Email:         email,
		Name:          s.cleanText(req.Name),
		Frequency:     domain.Frequency(req.Frequency),
		CheckinEmails: true,
		SummaryEmails: true,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a race with a concurrent signup for the same address
			renderError(w, r, fmt.Errorf("user with email %s already exists", email), http.StatusConflict)
			return
		}
		log.Printf("[ERROR] failed to create user: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, toUserJSON(*user))
}

// getUserHandler returns a user's profile and notification settings
func (s *Server) getUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	user, err := s.users.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get user: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, toUserJSON(*user))
}

// createResolutionHandler creates a resolution with a best-effort AI category
// suggestion, AI failure never blocks the creation
func (s *Server) createResolutionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		UserID      int64      `json:"user_id"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		TargetDate  *time.Time `json:"target_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	title := s.cleanText(req.Title)
	description := s.cleanText(req.Description)
	if req.UserID == 0 || title == "" {
		renderError(w, r, fmt.Errorf("user_id and title are required"), http.StatusBadRequest)
		return
	}

	res := &domain.Resolution{
		UserID:      req.UserID,
		Title:       title,
		Description: description,
		TargetDate:  req.TargetDate,
		Status:      domain.StatusActive,
	}

	// AI suggestion is best-effort
	if suggestion, err := s.enricher.SuggestCategory(ctx, title, description); err != nil {
		log.Printf("[WARN] category suggestion failed: %v", err)
	} else {
		res.Category = suggestion.Category
		res.AIFraming = suggestion.Framing
	}

	if err := s.resolutions.Create(ctx, res); err != nil {
		log.Printf("[ERROR] failed to create resolution: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, toResolutionJSON(*res))
}

// listResolutionsHandler lists a user's resolutions, optionally by status
func (s *Server) listResolutionsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user_id"), http.StatusBadRequest)
		return
	}

	status := domain.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		renderError(w, r, fmt.Errorf("invalid status %q", status), http.StatusBadRequest)
		return
	}

	resolutions, err := s.resolutions.ListByUser(r.Context(), userID, status)
	if err != nil {
		log.Printf("[ERROR] failed to list resolutions: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	result := make([]resolutionJSON, 0, len(resolutions))
	for _, res := range resolutions {
		result = append(result, toResolutionJSON(res))
	}
	renderJSON(w, r, http.StatusOK, result)
}

// getResolutionHandler returns a resolution with its recent logs
func (s *Server) getResolutionHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user_id"), http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid resolution ID"), http.StatusBadRequest)
		return
	}

	res, err := s.resolutions.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get resolution: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	logs, err := s.logs.ListByResolution(r.Context(), id, 20)
	if err != nil {
		log.Printf("[ERROR] failed to list logs: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	logsResult := make([]logJSON, 0, len(logs))
	for _, plog := range logs {
		logsResult = append(logsResult, toLogJSON(plog))
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"resolution": toResolutionJSON(*res),
		"logs":       logsResult,
	})
}

// updateResolutionHandler edits a resolution's title, description and target
// date. The AI suggestion is not recomputed on edit.
func (s *Server) updateResolutionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid resolution ID"), http.StatusBadRequest)
		return
	}

	var req struct {
		UserID      int64      `json:"user_id"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		TargetDate  *time.Time `json:"target_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	title := s.cleanText(req.Title)
	description := s.cleanText(req.Description)
	if req.UserID == 0 || title == "" {
		renderError(w, r, fmt.Errorf("user_id and title are required"), http.StatusBadRequest)
		return
	}

	if err := s.resolutions.Update(r.Context(), req.UserID, id, title, description, req.TargetDate); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to update resolution: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"result": "updated"})
}

// updateStatusHandler changes a resolution's lifecycle status
func (s *Server) updateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid resolution ID"), http.StatusBadRequest)
		return
	}

	var req struct {
		UserID int64  `json:"user_id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	status := domain.Status(req.Status)
	if !status.Valid() {
		renderError(w, r, fmt.Errorf("invalid status %q", req.Status), http.StatusBadRequest)
		return
	}

	if err := s.resolutions.UpdateStatus(r.Context(), req.UserID, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to update status: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": string(status)})
}

// createLogHandler records a progress log with best-effort AI enrichment.
// A malformed AI payload means the log is saved without annotations.
func (s *Server) createLogHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid resolution ID"), http.StatusBadRequest)
		return
	}

	var req struct {
		UserID int64  `json:"user_id"`
		Note   string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	note := s.cleanText(req.Note)
	if note == "" {
		renderError(w, r, fmt.Errorf("note is required"), http.StatusBadRequest)
		return
	}

	res, err := s.resolutions.Get(ctx, req.UserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get resolution: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	plog := &domain.ProgressLog{ResolutionID: id, UserID: req.UserID, Note: note}

	// AI enrichment is best-effort
	recent, err := s.logs.ListByResolution(ctx, id, 5)
	if err != nil {
		log.Printf("[WARN] failed to load recent logs for enrichment: %v", err)
		recent = nil
	}
	recentNotes := make([]llm.RecentNote, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- { // oldest first for the prompt
		recentNotes = append(recentNotes, llm.RecentNote{Note: recent[i].Note, CreatedAt: recent[i].CreatedAt})
	}
	enrichment, err := s.enricher.EnrichLog(ctx, llm.EnrichRequest{
		Title:       res.Title,
		Description: res.Description,
		RecentNotes: recentNotes,
		NewNote:     note,
	})
	if err != nil {
		log.Printf("[WARN] enrichment failed, saving log without annotations: %v", err)
	} else {
		plog.AISentiment = enrichment.Sentiment
		plog.AIProgress = &enrichment.ProgressEstimate
		plog.AIFeedback = enrichment.Feedback
	}

	if err := s.logs.Create(ctx, plog); err != nil {
		log.Printf("[ERROR] failed to create log: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, toLogJSON(*plog))
}

// listSummariesHandler returns a user's recent weekly summaries
func (s *Server) listSummariesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	summaries, err := s.summaries.ListByUser(r.Context(), userID, 10)
	if err != nil {
		log.Printf("[ERROR] failed to list summaries: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type summaryJSON struct {
		ID        int64     `json:"id"`
		Summary   string    `json:"summary"`
		CreatedAt time.Time `json:"created_at"`
	}
	result := make([]summaryJSON, 0, len(summaries))
	for _, sum := range summaries {
		result = append(result, summaryJSON{ID: sum.ID, Summary: sum.Summary, CreatedAt: sum.CreatedAt})
	}
	renderJSON(w, r, http.StatusOK, result)
}

// updateSettingsHandler changes a user's notification preferences. A missing
// user is a visible error, never a silent no-op.
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	var req struct {
		Frequency     string `json:"frequency"`
		CheckinEmails bool   `json:"checkin_emails"`
		SummaryEmails bool   `json:"summary_emails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	freq := domain.Frequency(req.Frequency)
	if !freq.Valid() {
		renderError(w, r, fmt.Errorf("invalid frequency %q", req.Frequency), http.StatusBadRequest)
		return
	}

	settings := domain.Settings{Frequency: freq, CheckinEmails: req.CheckinEmails, SummaryEmails: req.SummaryEmails}
	if err := s.users.UpdateSettings(r.Context(), userID, settings); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to update settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"result": "updated"})
}

// cronCheckinHandler triggers the check-in digest
func (s *Server) cronCheckinHandler(w http.ResponseWriter, r *http.Request) {
	if !s.cronAuthorized(r) {
		renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
		return
	}

	sent, err := s.digester.CheckIn(r.Context())
	if err != nil {
		log.Printf("[ERROR] check-in digest failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"sent": sent})
}

// cronSummaryHandler triggers the weekly summary digest
func (s *Server) cronSummaryHandler(w http.ResponseWriter, r *http.Request) {
	if !s.cronAuthorized(r) {
		renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
		return
	}

	processed, err := s.digester.WeeklySummary(r.Context())
	if err != nil {
		log.Printf("[ERROR] weekly summary digest failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"processed": processed})
}

// cronAuthorized checks the bearer secret on cron endpoints. An unset secret
// disables the endpoints entirely.
func (s *Server) cronAuthorized(r *http.Request) bool {
	secret := s.config.GetCronSecret()
	if secret == "" {
		return false
	}
	auth := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(auth), []byte("Bearer "+secret)) == 1
}

// cleanText strips markup from user-supplied free text and trims whitespace.
// Entities escaped by the sanitizer are restored, notes are plain text, not HTML.
func (s *Server) cleanText(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(text)))
}

func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
