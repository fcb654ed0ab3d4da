package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/diagnostica/diagnostica/internal/session"
	"github.com/diagnostica/diagnostica/pkg/assessment"
	"github.com/diagnostica/diagnostica/pkg/recommend"
	"github.com/diagnostica/diagnostica/pkg/verdict"
)

type submitRequest struct {
	UUID    string               `json:"uuid"`
	Answers assessment.AnswerMap `json:"answers"`
	Email   *string              `json:"email"`
	Name    *string              `json:"name"`
}

type resultResponse struct {
	UUID            string                     `json:"uuid"`
	Scores          assessment.Totals          `json:"scores"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Verdict         verdict.Result             `json:"verdict"`
	Persisted       bool                       `json:"persisted"`
}

// handleSubmit scores the submitted answers and persists the session.
// Persistence failure does not fail the request: the respondent still gets
// a computed result, flagged persisted:false.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	id := req.UUID
	if id == "" {
		id = uuid.New().String()
	} else if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}

	resp := h.compute(id, req.Answers)

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode answers: "+err.Error())
		return
	}
	scoresJSON, err := json.Marshal(resp.Scores)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode scores: "+err.Error())
		return
	}

	if _, err := h.sessions.Upsert(r.Context(), session.Record{
		UUID:    id,
		Answers: answersJSON,
		Scores:  scoresJSON,
		Email:   req.Email,
		Name:    req.Name,
	}); err != nil {
		log.Printf("persist assessment %s: %v", id, err)
	} else {
		resp.Persisted = true
	}

	if h.archive != nil {
		blob, err := json.Marshal(resp)
		if err == nil {
			err = h.archive.PutResult(r.Context(), id, blob)
		}
		if err != nil {
			log.Printf("archive assessment %s: %v", id, err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGet returns the stored session with results recomputed from the
// stored answers, so catalog and rule updates apply retroactively.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("uuid")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}

	rec, err := h.sessions.FindByUUID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}
	h.writeRecord(w, rec)
}

// handleRecover returns the latest session for an email address.
func (h *Handler) handleRecover(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter required")
		return
	}

	rec, err := h.sessions.FindLatestByEmail(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusNotFound, "no assessment for email")
		return
	}
	h.writeRecord(w, rec)
}

func (h *Handler) writeRecord(w http.ResponseWriter, rec *session.Record) {
	var answers assessment.AnswerMap
	if err := json.Unmarshal(rec.Answers, &answers); err != nil {
		writeError(w, http.StatusInternalServerError, "decode stored answers: "+err.Error())
		return
	}

	resp := h.compute(rec.UUID, answers)
	resp.Persisted = true
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) compute(id string, answers assessment.AnswerMap) resultResponse {
	totals := h.engine.Score(answers)
	return resultResponse{
		UUID:            id,
		Scores:          totals,
		Recommendations: h.ranker.Rank(totals, h.catalog),
		Verdict:         verdict.Evaluate(answers, h.rules),
	}
}

type sessionSummary struct {
	UUID      string          `json:"uuid"`
	Email     *string         `json:"email,omitempty"`
	Name      *string         `json:"name,omitempty"`
	Scores    json.RawMessage `json:"scores"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// handleListRecent returns the newest sessions for the editorial dashboard.
func (h *Handler) handleListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.sessions.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list assessments: "+err.Error())
		return
	}

	summaries := make([]sessionSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, sessionSummary{
			UUID:      rec.UUID,
			Email:     rec.Email,
			Name:      rec.Name,
			Scores:    rec.Scores,
			UpdatedAt: rec.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"assessments": summaries})
}

func (h *Handler) handleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"questions": h.questionnaire})
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"books": h.catalog})
}
