// Package v1 implements the v1 HTTP API.
package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/veritext/veritext/application/service"
	"github.com/veritext/veritext/domain/match"
	"github.com/veritext/veritext/infrastructure/api/middleware"
	"github.com/veritext/veritext/infrastructure/api/v1/dto"
)

// CheckRouter handles check, correction, rule and history endpoints.
type CheckRouter struct {
	checker   service.Checker
	corrector service.Corrector
	history   *service.History
}

// NewCheckRouter creates a CheckRouter. history may be nil when persistence
// is disabled; the history endpoint then reports 404.
func NewCheckRouter(checker service.Checker, corrector service.Corrector, history *service.History) CheckRouter {
	return CheckRouter{
		checker:   checker,
		corrector: corrector,
		history:   history,
	}
}

// Routes returns the chi router for the v1 API.
func (cr CheckRouter) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/check", cr.checkText)
	r.Post("/check/bitext", cr.checkBitext)
	r.Post("/correct", cr.correctText)
	r.Get("/rules", cr.listRules)
	r.Get("/history", cr.listHistory)
	return r
}

func (cr CheckRouter) checkText(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteBadRequest(w, "invalid request body")
		return
	}

	result, err := cr.checker.CheckText(r.Context(), req.Text, req.LineOffset)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	if cr.history != nil {
		// History is best-effort; a storage failure must not fail the check.
		_, _ = cr.history.Record(r.Context(), "check", result.MatchCount(), result.SentenceCount(), result.Elapsed())
	}

	middleware.WriteJSON(w, http.StatusOK, dto.CheckResponseFromResult(result))
}

func (cr CheckRouter) checkBitext(w http.ResponseWriter, r *http.Request) {
	var req dto.BitextCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteBadRequest(w, "invalid request body")
		return
	}
	if req.Target == "" {
		middleware.WriteBadRequest(w, "target is required")
		return
	}

	matches, err := cr.checker.CheckPair(r.Context(), req.Source, req.Target)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.CheckResponse{
		Matches:       dto.MatchesFromDomain(matches),
		SentenceCount: 1,
	})
}

func (cr CheckRouter) correctText(w http.ResponseWriter, r *http.Request) {
	var req dto.CorrectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteBadRequest(w, "invalid request body")
		return
	}

	result, err := cr.checker.CheckText(r.Context(), req.Text, 0)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	matches := result.Matches()
	match.SortByPosition(matches)
	corrected := match.Apply(req.Text, matches)

	middleware.WriteJSON(w, http.StatusOK, dto.CorrectResponse{
		Corrected:  corrected,
		MatchCount: result.MatchCount(),
	})
}

func (cr CheckRouter) listRules(w http.ResponseWriter, r *http.Request) {
	registry := cr.checker.Registry()

	rules := registry.All()
	out := make([]dto.Rule, len(rules))
	for i, rl := range rules {
		out[i] = dto.Rule{
			ID:          rl.ID(),
			Description: rl.Description(),
			DefaultOff:  rl.DefaultOff(),
			Active:      registry.IsActive(rl.ID()),
		}
	}
	middleware.WriteJSON(w, http.StatusOK, dto.RulesResponse{Rules: out})
}

func (cr CheckRouter) listHistory(w http.ResponseWriter, r *http.Request) {
	if cr.history == nil {
		middleware.WriteBadRequest(w, "history is not enabled")
		return
	}

	limit := service.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			middleware.WriteBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := cr.history.Recent(r.Context(), limit)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	out := make([]dto.CheckRecord, len(records))
	for i, rec := range records {
		out[i] = dto.CheckRecordFromDomain(rec)
	}
	middleware.WriteJSON(w, http.StatusOK, dto.HistoryResponse{Checks: out})
}
