package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/0x0BSoD/hnPush/internal/model"
)

// NtfySender publishes notifications to an ntfy-compatible topic relay.
// The notification text travels as the request body; title, tags and the
// click target ride in headers.
type NtfySender struct {
	client   *http.Client
	relayURL string
	topic    string
}

func NewNtfySender(client *http.Client, relayURL, topic string) *NtfySender {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &NtfySender{
		client:   client,
		relayURL: strings.TrimRight(relayURL, "/"),
		topic:    topic,
	}
}

func (s *NtfySender) Send(ctx context.Context, n model.Notification) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.relayURL+"/"+s.topic, strings.NewReader(n.Body))
	if err != nil {
		return err
	}

	req.Header.Set("X-Title", n.Title)
	req.Header.Set("X-Tags", n.Tags)
	if n.ClickURL != "" {
		req.Header.Set("X-Click", n.ClickURL)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	return nil
}
