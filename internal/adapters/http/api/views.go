// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
)

// ViewsHandler handles the read-side aggregation endpoints.
type ViewsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewViewsHandler creates a new views handler.
func NewViewsHandler(deps Dependencies, maxLimit int) *ViewsHandler {
	return &ViewsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleStandings handles GET /standings?season=YYYY requests.
func (h *ViewsHandler) HandleStandings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_standings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	season, err := seasonParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	tables, err := h.deps.Standings(r.Context(), season)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

// HandleATS handles GET /leaderboard/ats?season=YYYY&limit=N requests.
func (h *ViewsHandler) HandleATS(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_ats"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	season, err := seasonParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	n, err := limitParam(r, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	board, err := h.deps.ATS(r.Context(), season, n)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// HandleATSSeasons handles GET /leaderboard/ats/seasons?limit=N
// requests: the best and worst single-season ATS runs of all time.
func (h *ViewsHandler) HandleATSSeasons(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_ats_seasons"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n, err := limitParam(r, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	board, err := h.deps.ATSSeasons(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// HandlePower handles GET /rankings/power?season=YYYY&limit=N requests.
func (h *ViewsHandler) HandlePower(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_power"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	season, err := seasonParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	n, err := limitParam(r, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	rows, err := h.deps.Power(r.Context(), season, n)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleStrength handles GET /rankings/strength?season=YYYY requests.
func (h *ViewsHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_strength"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	season, err := seasonParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	rows, err := h.deps.Strength(r.Context(), season)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleDraftValue handles GET /draft/value?limit=N requests.
func (h *ViewsHandler) HandleDraftValue(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_draft_value"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n, err := limitParam(r, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	report, err := h.deps.DraftValue(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleLeagueSplits handles GET /league/splits requests.
func (h *ViewsHandler) HandleLeagueSplits(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_league_splits"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	splits, err := h.deps.LeagueSplits(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, splits)
}

// HandleImpact handles GET /reports/impact requests.
func (h *ViewsHandler) HandleImpact(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_impact"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	report, err := h.deps.SituationalImpact(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleSeasons handles GET /seasons requests.
func (h *ViewsHandler) HandleSeasons(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_seasons"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	seasons, err := h.deps.Seasons(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}

// HandleTeams handles GET /teams requests.
func (h *ViewsHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_teams"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	teams, err := h.deps.Teams(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, teams)
}
