// Package summary derives short article summaries for notification bodies.
// The default Heuristic extractor prefers curated meta-description tags and
// falls back to the first prose paragraph; the AI extractor feeds the
// readable article text to an OpenAI-compatible or Ollama model instead.
package summary

import (
	"context"
	"fmt"
	"net/http"
)

// fetchPage performs the article GET with a browser-like User-Agent; some
// servers reject non-browser clients. The caller owns the response body.
func fetchPage(ctx context.Context, client *http.Client, userAgent, pageURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	return resp, nil
}
