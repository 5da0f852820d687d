package seasongen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/gridiron/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seasongen_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the season generation tool.
func ShowHelp() {
	os.Stdout.WriteString(`Gridiron Season Generator
=========================

Generates synthetic NFL seasons, submits them to a running service,
and verifies the standings and leaderboard views they produce.

Usage:
  go run cmd/seasongen/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -start int
        First season to generate (default 2020)
  -seasons int
        Number of consecutive seasons (default 3)
  -workers int
        Number of concurrent submitters (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for generated games (default: generated_games_RUNID.json)
  -log string
        Log file for run output (default: seasongen_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Smoke-test with default settings
  go run cmd/seasongen/main.go

  # A decade of seasons against a local instance
  go run cmd/seasongen/main.go -start 2014 -seasons 10 -workers 16

  # Verbose run with a custom log file
  go run cmd/seasongen/main.go -verbose -log my_run.log
`)
}
