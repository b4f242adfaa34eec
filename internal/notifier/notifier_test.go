package notifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0BSoD/hnPush/internal/model"
)

type captureSender struct {
	sent []model.Notification
	err  error
}

func (c *captureSender) Send(_ context.Context, n model.Notification) error {
	c.sent = append(c.sent, n)
	return c.err
}

func TestNotifyStoryFormatsPayload(t *testing.T) {
	sender := &captureSender{}
	n := New(sender, "news", "Hacker News Top 10")

	err := n.NotifyStory(context.Background(), model.Story{
		Title:   "A story",
		URL:     "https://example.com/a",
		Score:   10,
		Summary: "So it goes.",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	got := sender.sent[0]
	assert.Equal(t, "A story", got.Title)
	assert.Equal(t, "news", got.Tags)
	assert.Equal(t, "So it goes.\nhttps://example.com/a", got.Body)
	assert.Equal(t, "https://example.com/a", got.ClickURL)
}

func TestNotifyStorySubstitutesPlaceholder(t *testing.T) {
	sender := &captureSender{}
	n := New(sender, "news", "Hacker News Top 10")

	err := n.NotifyStory(context.Background(), model.Story{
		Title: "No summary story",
		URL:   "https://example.com/b",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, NoSummaryPlaceholder+"\nhttps://example.com/b", sender.sent[0].Body)
}

func TestNotifyDigestFormatsEntries(t *testing.T) {
	sender := &captureSender{}
	n := New(sender, "news", "Hacker News Top 10")

	err := n.NotifyDigest(context.Background(), []model.Story{
		{Title: "First", URL: "https://example.com/1", Score: 100, Summary: "One."},
		{Title: "Second", URL: "https://example.com/2", Score: 50},
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	got := sender.sent[0]
	assert.Equal(t, "Hacker News Top 10", got.Title)
	assert.Empty(t, got.ClickURL)
	assert.Equal(t,
		"1. First (100 points)\nOne.\nhttps://example.com/1\n\n"+
			"2. Second (50 points)\n"+NoSummaryPlaceholder+"\nhttps://example.com/2",
		got.Body)
}

func TestNtfySenderHeadersAndBody(t *testing.T) {
	var (
		gotPath    string
		gotTitle   string
		gotTags    string
		gotClick   string
		gotBody    string
		gotMethod  string
		haveClicks []string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotTitle = r.Header.Get("X-Title")
		gotTags = r.Header.Get("X-Tags")
		gotClick = r.Header.Get("X-Click")
		haveClicks = r.Header.Values("X-Click")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
	}))
	defer srv.Close()

	s := NewNtfySender(srv.Client(), srv.URL+"/", "hn_daily_summaries")
	err := s.Send(context.Background(), model.Notification{
		Title:    "A story",
		Tags:     "news",
		Body:     "summary\nhttps://example.com/a",
		ClickURL: "https://example.com/a",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/hn_daily_summaries", gotPath)
	assert.Equal(t, "A story", gotTitle)
	assert.Equal(t, "news", gotTags)
	assert.Equal(t, "https://example.com/a", gotClick)
	assert.Equal(t, "summary\nhttps://example.com/a", gotBody)

	// digest payloads carry no click target at all
	err = s.Send(context.Background(), model.Notification{Title: "digest", Tags: "news", Body: "body"})
	require.NoError(t, err)
	assert.Empty(t, haveClicks)
}

func TestNtfySenderNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewNtfySender(srv.Client(), srv.URL, "topic")
	err := s.Send(context.Background(), model.Notification{Title: "t", Body: "b"})
	assert.Error(t, err)
}
