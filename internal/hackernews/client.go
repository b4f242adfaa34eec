// Package hackernews implements a minimal client for the Hacker News
// Firebase API: the ranked top-stories list and per-story item lookups.
package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/0x0BSoD/hnPush/internal/model"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20 // 1MB
)

type Client struct {
	client  *http.Client
	baseURL string
}

// New returns a client for the API rooted at baseURL
// (e.g. https://hacker-news.firebaseio.com/v0).
func New(client *http.Client, baseURL string) *Client {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// TopStories fetches the ranked story id list and truncates it to limit,
// preserving the upstream order.
func (c *Client) TopStories(ctx context.Context, limit int) ([]int, error) {
	body, err := c.get(ctx, c.baseURL+"/topstories.json")
	if err != nil {
		return nil, fmt.Errorf("fetch top stories: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("decode top stories: %w", err)
	}

	if limit < 0 {
		limit = 0
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	return ids, nil
}

type item struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
}

// Item resolves a story id to its metadata. The URL field stays empty for
// text-only posts; the API answers "null" for unknown ids, which decodes to
// an all-zero item and is treated the same way.
func (c *Client) Item(ctx context.Context, id int) (*model.Story, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/item/%d.json", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("fetch item %d: %w", id, err)
	}

	var it item
	if err := json.Unmarshal(body, &it); err != nil {
		return nil, fmt.Errorf("decode item %d: %w", id, err)
	}

	return &model.Story{
		ID:    id,
		Title: it.Title,
		URL:   it.URL,
		Score: it.Score,
	}, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}
