package seasongen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gridiron/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// settleDelay gives the ingest workers time to drain the queue before
// verification reads the views.
const settleDelay = 2 * time.Second

// Run executes a complete generate/submit/verify cycle.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	runID := uuid.New().String()

	logger.Get().Info(ctx, "starting season generation run",
		logger.String("runID", runID),
		logger.String("baseURL", config.BaseURL),
		logger.Int("startSeason", config.StartSeason),
		logger.Int("numSeasons", config.NumSeasons),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	games := generateGames(ctx, config, stats)

	if err := saveGamesToFile(ctx, config, runID, games); err != nil {
		logger.Get().Warn(ctx, "failed to save games to file", logger.Error(err))
	}

	if err := submitGames(ctx, config, games, stats); err != nil {
		return fmt.Errorf("game submission failed: %w", err)
	}

	logger.Get().Info(ctx, "waiting for games to be processed")
	time.Sleep(settleDelay)

	if err := verifyResults(ctx, config, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "run completed successfully", logger.String("runID", runID))
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveGamesToFile writes the generated games to a JSON file so a run
// can be replayed or inspected.
func saveGamesToFile(ctx context.Context, config *Config, runID string, games []Game) error {
	if len(games) == 0 {
		return fmt.Errorf("no games to save")
	}

	filename := config.OutputFile
	if filename == "" {
		filename = "generated_games_" + runID + ".json"
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.WriteString("[\n"); err != nil {
		return fmt.Errorf("failed to write opening bracket: %w", err)
	}
	for i, g := range games {
		raw, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("failed to marshal game %d: %w", i, err)
		}
		if _, err := file.Write(raw); err != nil {
			return fmt.Errorf("failed to write game %d: %w", i, err)
		}
		if i < len(games)-1 {
			if _, err := file.WriteString(","); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}
		}
		_, _ = file.WriteString("\n")
	}
	if _, err := file.WriteString("]\n"); err != nil {
		return fmt.Errorf("failed to write closing bracket: %w", err)
	}

	logger.Get().Info(ctx, "games saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	var successRate, gamesPerSecond float64
	if stats.GamesSubmitted > 0 {
		successRate = float64(stats.GamesSuccessful) / float64(stats.GamesSubmitted) * 100
	}
	if stats.Duration > 0 {
		gamesPerSecond = float64(stats.GamesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("gamesGenerated", stats.GamesGenerated),
		logger.Int("gamesSubmitted", stats.GamesSubmitted),
		logger.Int("gamesSuccessful", stats.GamesSuccessful),
		logger.Int("gamesFailed", stats.GamesFailed),
		logger.Int("seasonsVerified", stats.SeasonsVerified),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("gamesPerSecond", gamesPerSecond))
}
