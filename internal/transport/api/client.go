package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
)

// Response is the raw body of one call and how long it took.
type Response struct {
	URL     string
	Body    string
	Elapsed time.Duration
}

type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
}

// New - creates a client for the service rooted at baseURL. A zero timeout leaves the transport default.
func New(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:     logger.With("component", "api"),
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Get - performs a blocking GET against {baseURL}/{path} and returns the body as text.
func (that *Client) Get(ctx context.Context, path string) (*Response, error) {
	url := that.baseURL + "/" + strings.TrimPrefix(path, "/")
	log := that.logger.With("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	log.Info("calling endpoint")

	started := time.Now()

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	elapsed := time.Since(started)
	log.Info("response received", "status", resp.StatusCode, "elapsed", elapsed)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d from %s", apperror.ErrUnexpectedStatus, resp.StatusCode, url)
	}

	return &Response{
		URL:     url,
		Body:    string(body),
		Elapsed: elapsed,
	}, nil
}
