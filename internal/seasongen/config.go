// Package seasongen generates synthetic NFL seasons and drives them
// through a running service instance, then verifies the views the
// ingested games produce. It is the load/smoke tool behind
// cmd/seasongen.
package seasongen

import "time"

// Config holds configuration for a generation run.
type Config struct {
	BaseURL     string        // Base URL of the service
	StartSeason int           // First season to generate
	NumSeasons  int           // Number of consecutive seasons
	Workers     int           // Number of concurrent submitters
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Output file for generated games
	LogFile     string        // Log file for run output
	Verbose     bool          // Enable verbose logging
}

// Game mirrors the POST /games request schema.
type Game struct {
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

// AckResponse represents the response from game submission.
type AckResponse struct {
	Status string `json:"status"`
}

// Stats holds run statistics.
type Stats struct {
	GamesGenerated  int
	GamesSubmitted  int
	GamesSuccessful int
	GamesFailed     int
	SeasonsVerified int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
