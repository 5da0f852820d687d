// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	service "github.com/okian/gridiron/internal/app"
	"github.com/okian/gridiron/internal/domain/leaderboard"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/standings"
)

// DefaultMaxLimit caps the limit query parameter when no override is
// configured.
const DefaultMaxLimit = 100

// Dependencies bundles the service operations the handlers need. Using
// an interface bundle keeps the handler layer loosely coupled to the
// service implementation.
type Dependencies interface {
	// Enqueue pushes a game for async ingestion. Returns false on
	// backpressure.
	Enqueue(ctx context.Context, g model.GameRecord) bool

	// Read operations expose the aggregation views.
	Standings(ctx context.Context, season int) ([]standings.DivisionTable, error)
	ATS(ctx context.Context, season, n int) (leaderboard.ATSBoard, error)
	ATSSeasons(ctx context.Context, n int) (leaderboard.ATSBoard, error)
	Power(ctx context.Context, season, n int) ([]leaderboard.PowerRow, error)
	Strength(ctx context.Context, season int) ([]leaderboard.StrengthRow, error)
	DraftValue(ctx context.Context, n int) (leaderboard.DraftValue, error)
	LeagueSplits(ctx context.Context) (leaderboard.LeagueSplits, error)
	SituationalImpact(ctx context.Context) (service.Impact, error)
	Seasons(ctx context.Context) ([]int, error)
	Teams(ctx context.Context) ([]model.TeamInfo, error)
	PutDraftPicks(ctx context.Context, picks []model.DraftPick) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	gamesHandler  *GamesHandler
	viewsHandler  *ViewsHandler
	maxLimit      int
}

// NewServer creates a new API server with all handlers. maxLimit caps
// the limit query parameter; non-positive values use DefaultMaxLimit.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		gamesHandler:  NewGamesHandler(deps),
		viewsHandler:  NewViewsHandler(deps, maxLimit),
		maxLimit:      maxLimit,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/games", MetricsMiddleware(s.gamesHandler.HandlePostGame, "games"))
	mux.HandleFunc("/standings", MetricsMiddleware(s.viewsHandler.HandleStandings, "standings"))
	mux.HandleFunc("/leaderboard/ats", MetricsMiddleware(s.viewsHandler.HandleATS, "ats"))
	mux.HandleFunc("/leaderboard/ats/seasons", MetricsMiddleware(s.viewsHandler.HandleATSSeasons, "ats_seasons"))
	mux.HandleFunc("/rankings/power", MetricsMiddleware(s.viewsHandler.HandlePower, "power"))
	mux.HandleFunc("/rankings/strength", MetricsMiddleware(s.viewsHandler.HandleStrength, "strength"))
	mux.HandleFunc("/draft/value", MetricsMiddleware(s.viewsHandler.HandleDraftValue, "draft_value"))
	mux.HandleFunc("/draft/picks", MetricsMiddleware(s.gamesHandler.HandlePutDraftPicks, "draft_picks"))
	mux.HandleFunc("/league/splits", MetricsMiddleware(s.viewsHandler.HandleLeagueSplits, "league_splits"))
	mux.HandleFunc("/reports/impact", MetricsMiddleware(s.viewsHandler.HandleImpact, "impact"))
	mux.HandleFunc("/seasons", MetricsMiddleware(s.viewsHandler.HandleSeasons, "seasons"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.viewsHandler.HandleTeams, "teams"))
}

// gameRequest mirrors the OpenAPI schema for POST /games.
type gameRequest struct {
	Season    int     `json:"season"`
	Week      string  `json:"week"`
	Date      string  `json:"date,omitempty"`
	Home      string  `json:"home"`
	Away      string  `json:"away"`
	HomeScore int     `json:"home_score"`
	AwayScore int     `json:"away_score"`
	Playoff   bool    `json:"playoff"`
	Spread    float64 `json:"spread,omitempty"`
	OverUnder float64 `json:"over_under,omitempty"`
	HasOdds   bool    `json:"has_odds"`
}

func (g gameRequest) validate() error {
	switch {
	case g.Season <= 0:
		return errors.New("missing season")
	case strings.TrimSpace(g.Week) == "":
		return errors.New("missing week")
	case strings.TrimSpace(g.Home) == "":
		return errors.New("missing home")
	case strings.TrimSpace(g.Away) == "":
		return errors.New("missing away")
	case strings.EqualFold(strings.TrimSpace(g.Home), strings.TrimSpace(g.Away)):
		return errors.New("home and away must differ")
	case g.HomeScore < 0 || g.AwayScore < 0:
		return errors.New("scores must be non-negative")
	}
	if g.Date != "" {
		if _, err := time.Parse("2006-01-02", g.Date); err != nil {
			return errors.New("invalid date; must be YYYY-MM-DD")
		}
	}
	return nil
}

// record converts the validated request into the domain model.
func (g gameRequest) record() model.GameRecord {
	rec := model.GameRecord{
		Season:    g.Season,
		Week:      strings.TrimSpace(g.Week),
		Home:      strings.TrimSpace(g.Home),
		Away:      strings.TrimSpace(g.Away),
		HomeScore: g.HomeScore,
		AwayScore: g.AwayScore,
		Playoff:   g.Playoff,
		Spread:    g.Spread,
		OverUnder: g.OverUnder,
		HasOdds:   g.HasOdds,
	}
	if g.Date != "" {
		rec.Date, _ = time.Parse("2006-01-02", g.Date)
	}
	return rec
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// seasonParam parses the optional season query parameter; absent or
// empty selects all seasons (0).
func seasonParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return 0, nil
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season < 1 {
		return 0, errors.New("invalid season")
	}
	return season, nil
}

// limitParam parses the optional limit query parameter; absent or empty
// lets the view apply its default.
func limitParam(r *http.Request, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("invalid limit")
	}
	if n > maxLimit {
		return 0, errors.New("limit exceeds maximum")
	}
	return n, nil
}
