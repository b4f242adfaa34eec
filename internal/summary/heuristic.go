package summary

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaSelectors in preference order. Search-engine-style meta tags are
// usually curated, so they beat arbitrary body text.
var metaSelectors = []string{
	`meta[name="description"]`,
	`meta[property="og:description"]`,
	`meta[name="twitter:description"]`,
}

const (
	// minParagraphWords is a crude prose signal: captions and nav labels
	// rarely reach twenty words.
	minParagraphWords = 20
	maxSentences      = 2
)

// Heuristic extracts a summary from a page without any model calls.
type Heuristic struct {
	client    *http.Client
	userAgent string
}

func NewHeuristic(client *http.Client, userAgent string) *Heuristic {
	if client == nil {
		client = http.DefaultClient
	}
	return &Heuristic{client: client, userAgent: userAgent}
}

// Extract fetches pageURL and derives a summary from its HTML. An empty
// string with a nil error means the page had nothing usable.
func (h *Heuristic) Extract(ctx context.Context, pageURL string) (string, error) {
	resp, err := fetchPage(ctx, h.client, h.userAgent, pageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	return FromDocument(doc), nil
}

// FromDocument applies the summary heuristic to an already parsed page:
// first non-empty description meta tag, otherwise the first two sentences
// of the first paragraph with at least minParagraphWords words.
func FromDocument(doc *goquery.Document) string {
	for _, sel := range metaSelectors {
		content, ok := doc.Find(sel).First().Attr("content")
		if !ok {
			continue
		}
		if c := strings.TrimSpace(content); c != "" {
			return c
		}
	}

	var found string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		words := strings.Fields(s.Text())
		if len(words) < minParagraphWords {
			return true
		}
		found = firstSentences(strings.Join(words, " "), maxSentences)
		return false
	})

	return found
}

// firstSentences approximates sentence boundaries by splitting on
// period-space, keeps at most n segments and rejoins them with a trailing
// period.
func firstSentences(text string, n int) string {
	parts := strings.Split(text, ". ")
	if len(parts) > n {
		parts = parts[:n]
	}
	out := strings.Join(parts, ". ")
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}
