// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/gridiron/internal/domain/model"
)

// GamesHandler handles game ingestion requests.
type GamesHandler struct {
	deps Dependencies
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(deps Dependencies) *GamesHandler {
	return &GamesHandler{deps: deps}
}

// HandlePostGame handles POST /games requests. Accepted games are
// processed asynchronously; replays of already-stored fixtures are
// dropped by the pipeline, so resubmitting a feed is safe.
func (h *GamesHandler) HandlePostGame(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_game"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}

	if ok := h.deps.Enqueue(r.Context(), req.record()); !ok {
		writeError(w, http.StatusTooManyRequests, "backpressure", fmt.Errorf("%s: %w", op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted"})
}

// draftPickRequest mirrors the OpenAPI schema for PUT /draft/picks.
type draftPickRequest struct {
	Season   int    `json:"season"`
	Team     string `json:"team"`
	Position int    `json:"position"`
}

func (p draftPickRequest) validate() error {
	switch {
	case p.Season <= 0:
		return errors.New("missing season")
	case strings.TrimSpace(p.Team) == "":
		return errors.New("missing team")
	case p.Position < 1:
		return errors.New("position must be 1-based")
	}
	return nil
}

// HandlePutDraftPicks handles PUT /draft/picks requests, replacing the
// stored first-round picks wholesale.
func (h *GamesHandler) HandlePutDraftPicks(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_draft_picks"
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	var reqs []draftPickRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	picks := make([]model.DraftPick, 0, len(reqs))
	for _, req := range reqs {
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
			return
		}
		picks = append(picks, model.DraftPick{
			Season:   req.Season,
			Team:     strings.TrimSpace(req.Team),
			Position: req.Position,
		})
	}
	if err := h.deps.PutDraftPicks(r.Context(), picks); err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "stored"})
}
