package seasongen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/gridiron/pkg/logger"
)

// HTTPClient wraps http.Client with a timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with the given timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

// submitGames posts games concurrently with a worker pool.
func submitGames(ctx context.Context, config *Config, games []Game, stats *Stats) error {
	logger.Get().Info(ctx, "submitting games",
		logger.Int("games", len(games)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/games"

	var successful, failed atomic.Int64

	work := make(chan Game)
	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range work {
				resp, err := client.Post(ctx, url, g)
				if err != nil {
					failed.Add(1)
					if config.Verbose {
						logger.Get().Warn(ctx, "submission failed", logger.Error(err))
					}
					continue
				}
				_, _ = readResponseBody(resp)
				if resp.StatusCode == http.StatusAccepted {
					successful.Add(1)
				} else {
					failed.Add(1)
					if config.Verbose {
						logger.Get().Warn(ctx, "submission rejected",
							logger.Int("status", resp.StatusCode),
							logger.String("home", g.Home),
							logger.String("away", g.Away))
					}
				}
			}
		}()
	}

	for _, g := range games {
		select {
		case <-ctx.Done():
			close(work)
			wg.Wait()
			return fmt.Errorf("submission cancelled: %w", ctx.Err())
		case work <- g:
		}
	}
	close(work)
	wg.Wait()

	stats.GamesSubmitted = len(games)
	stats.GamesSuccessful = int(successful.Load())
	stats.GamesFailed = int(failed.Load())

	if stats.GamesFailed > 0 {
		logger.Get().Warn(ctx, "some submissions failed",
			logger.Int("failed", stats.GamesFailed),
			logger.Int("successful", stats.GamesSuccessful))
	}
	return nil
}
