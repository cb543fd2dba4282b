package checkers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ExtractionAPIChecker probes the hosted document extraction service.
// Readiness does not fail hard on it when local extraction can cover
// the common formats, so callers decide how to weigh the result.
type ExtractionAPIChecker struct {
	baseURL string
	client  *http.Client
}

func NewExtractionAPIChecker(baseURL string) *ExtractionAPIChecker {
	return &ExtractionAPIChecker{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *ExtractionAPIChecker) Name() string { return "extraction-api" }

func (c *ExtractionAPIChecker) Check(ctx context.Context) error {
	if c.baseURL == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthcheck", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("extraction api unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("extraction api returned %d", resp.StatusCode)
	}
	return nil
}
