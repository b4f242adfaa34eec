// Package notifier formats enriched stories into notifications and hands
// them to a delivery transport. Transports are pluggable behind the Sender
// interface; ntfy and Telegram are provided.
package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/0x0BSoD/hnPush/internal/model"
)

// NoSummaryPlaceholder replaces an empty summary; summary absence never
// blocks a notification.
const NoSummaryPlaceholder = "(No summary available)"

type Sender interface {
	Send(ctx context.Context, n model.Notification) error
}

type Notifier struct {
	sender      Sender
	tags        string
	digestTitle string
}

func New(sender Sender, tags, digestTitle string) *Notifier {
	return &Notifier{
		sender:      sender,
		tags:        tags,
		digestTitle: digestTitle,
	}
}

// NotifyStory sends one notification for a single story. The story URL
// doubles as the click target so mobile clients can open the article.
func (n *Notifier) NotifyStory(ctx context.Context, story model.Story) error {
	return n.sender.Send(ctx, model.Notification{
		Title:    story.Title,
		Tags:     n.tags,
		Body:     orPlaceholder(story.Summary) + "\n" + story.URL,
		ClickURL: story.URL,
	})
}

// NotifyDigest sends a single notification covering all stories, numbered
// in ranking order. There is no per-item click target in digest mode.
func (n *Notifier) NotifyDigest(ctx context.Context, stories []model.Story) error {
	entries := lo.Map(stories, func(s model.Story, i int) string {
		return fmt.Sprintf("%d. %s (%d points)\n%s\n%s",
			i+1, s.Title, s.Score, orPlaceholder(s.Summary), s.URL)
	})

	return n.sender.Send(ctx, model.Notification{
		Title: n.digestTitle,
		Tags:  n.tags,
		Body:  strings.Join(entries, "\n\n"),
	})
}

func orPlaceholder(summary string) string {
	if summary == "" {
		return NoSummaryPlaceholder
	}
	return summary
}
