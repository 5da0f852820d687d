package seasongen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/okian/gridiron/pkg/logger"
)

// divisionTable mirrors the standings response shape this tool checks.
type divisionTable struct {
	Conference string `json:"conference"`
	Division   string `json:"division"`
	Teams      []struct {
		Team string `json:"team"`
		Pct  string `json:"pct"`
	} `json:"teams"`
}

// fetchJSON gets url and decodes the response into v.
func fetchJSON(ctx context.Context, client *HTTPClient, url string, v any) error {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", url, err)
	}
	return nil
}

// verifyResults checks that every generated season is visible and that
// each produces full standings.
func verifyResults(ctx context.Context, config *Config, stats *Stats) error {
	client := newHTTPClient(config.Timeout)

	var seasons []int
	if err := fetchJSON(ctx, client, config.BaseURL+"/seasons", &seasons); err != nil {
		return fmt.Errorf("season listing failed: %w", err)
	}

	for s := 0; s < config.NumSeasons; s++ {
		season := config.StartSeason + s
		if !slices.Contains(seasons, season) {
			return fmt.Errorf("season %d missing from /seasons", season)
		}

		var tables []divisionTable
		url := fmt.Sprintf("%s/standings?season=%d", config.BaseURL, season)
		if err := fetchJSON(ctx, client, url, &tables); err != nil {
			return fmt.Errorf("standings for %d failed: %w", season, err)
		}
		if len(tables) != 8 {
			return fmt.Errorf("season %d: expected 8 division tables, got %d", season, len(tables))
		}
		for _, tbl := range tables {
			if len(tbl.Teams) != 4 {
				return fmt.Errorf("season %d: %s %s has %d teams", season, tbl.Conference, tbl.Division, len(tbl.Teams))
			}
		}
		stats.SeasonsVerified++

		if config.Verbose {
			logger.Get().Info(ctx, "season verified", logger.Int("season", season))
		}
	}

	// Exercise the heavier views so a smoke run touches every endpoint.
	for _, path := range []string{
		"/leaderboard/ats",
		"/leaderboard/ats/seasons",
		"/rankings/power",
		"/rankings/strength",
		"/league/splits",
		"/draft/value",
		"/reports/impact",
	} {
		var payload json.RawMessage
		if err := fetchJSON(ctx, client, config.BaseURL+path, &payload); err != nil {
			return fmt.Errorf("view %s failed: %w", path, err)
		}
	}

	logger.Get().Info(ctx, "verification passed",
		logger.Int("seasonsVerified", stats.SeasonsVerified))
	return nil
}
