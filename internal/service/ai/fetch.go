package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// previewLimit caps how much of a fetched page enters the prompt.
const previewLimit = 5000

// previewFetcher pulls a bounded content preview from a user-supplied URL.
type previewFetcher struct {
	client *http.Client
}

func newPreviewFetcher(timeout time.Duration) *previewFetcher {
	return &previewFetcher{client: &http.Client{Timeout: timeout}}
}

// Preview fetches url and returns at most previewLimit bytes of its body.
func (f *previewFetcher) Preview(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build url request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch url: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, previewLimit))
	if err != nil {
		return "", fmt.Errorf("read url body: %w", err)
	}
	return string(body), nil
}
