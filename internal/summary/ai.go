package summary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

// Summarizer condenses article text into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

var redundantNewLines = regexp.MustCompile(`\n{3,}`)

// AIExtractor pulls the readable article text out of a page and hands it to
// a model-backed Summarizer.
type AIExtractor struct {
	client     *http.Client
	userAgent  string
	summarizer Summarizer
}

func NewAIExtractor(client *http.Client, userAgent string, summarizer Summarizer) *AIExtractor {
	if client == nil {
		client = http.DefaultClient
	}
	return &AIExtractor{
		client:     client,
		userAgent:  userAgent,
		summarizer: summarizer,
	}
}

func (e *AIExtractor) Extract(ctx context.Context, pageURL string) (string, error) {
	resp, err := fetchPage(ctx, e.client, e.userAgent, pageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return "", fmt.Errorf("extract article text: %w", err)
	}

	text := cleanupText(article.TextContent)
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	return e.summarizer.Summarize(ctx, text)
}

func cleanupText(text string) string {
	return redundantNewLines.ReplaceAllString(text, "\n")
}
