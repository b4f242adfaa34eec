// Package pipeline runs one list → enrich → notify pass over the current
// Hacker News top stories. Every run is independent and stateless; only a
// failure to fetch the story list itself is fatal.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/samber/lo"

	"github.com/0x0BSoD/hnPush/internal/model"
)

type Mode string

const (
	ModePerStory Mode = "per_story"
	ModeDigest   Mode = "digest"
)

type StoryAPI interface {
	TopStories(ctx context.Context, limit int) ([]int, error)
	Item(ctx context.Context, id int) (*model.Story, error)
}

type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

type Publisher interface {
	NotifyStory(ctx context.Context, story model.Story) error
	NotifyDigest(ctx context.Context, stories []model.Story) error
}

// FailureReporter receives a short message when a run fails outright.
// reporter.Reporter satisfies it and is nil-safe.
type FailureReporter interface {
	Notify(msg string)
}

// Result is what a completed run reports back to the invoker. Sent counts
// attempted story ids in per-story mode (not confirmed deliveries); Count
// is the number of stories included in a digest.
type Result struct {
	Mode  Mode
	Sent  int
	Count int
}

type skipReason string

const (
	skipNone      skipReason = ""
	skipItemFetch skipReason = "item fetch failed"
	skipNoURL     skipReason = "no url"
)

// item is the outcome of enriching one story id: either a story to notify
// or the reason it was dropped.
type item struct {
	story model.Story
	skip  skipReason
}

type Pipeline struct {
	api         StoryAPI
	extractor   Extractor
	publisher   Publisher
	reporter    FailureReporter
	mode        Mode
	limit       int
	concurrency int
}

func New(
	api StoryAPI,
	extractor Extractor,
	publisher Publisher,
	reporter FailureReporter,
	mode Mode,
	limit int,
	concurrency int,
) *Pipeline {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pipeline{
		api:         api,
		extractor:   extractor,
		publisher:   publisher,
		reporter:    reporter,
		mode:        mode,
		limit:       limit,
		concurrency: concurrency,
	}
}

// Run executes one full pass. A top-stories failure aborts before anything
// is sent; per-story failures are logged and swallowed.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	ids, err := p.api.TopStories(ctx, p.limit)
	if err != nil {
		err = fmt.Errorf("list top stories: %w", err)
		if p.reporter != nil {
			p.reporter.Notify(fmt.Sprintf("hnPush run failed: %v", err))
		}
		return Result{}, err
	}

	log.Printf("[INFO] fetched %d story ids", len(ids))
	items := p.enrich(ctx, ids)

	if p.mode == ModeDigest {
		return p.sendDigest(ctx, items), nil
	}
	return p.sendPerStory(ctx, items), nil
}

// enrich resolves ids to stories with summaries. Fan-out is bounded and the
// result slice keeps the upstream ranking order.
func (p *Pipeline) enrich(ctx context.Context, ids []int) []item {
	items := make([]item, len(ids))

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(i, id int) {
			defer wg.Done()
			defer func() { <-sem }()

			items[i] = p.enrichOne(ctx, id)
		}(i, id)
	}
	wg.Wait()

	return items
}

func (p *Pipeline) enrichOne(ctx context.Context, id int) item {
	story, err := p.api.Item(ctx, id)
	if err != nil {
		log.Printf("[ERROR] failed to fetch item %d: %v", id, err)
		return item{skip: skipItemFetch}
	}

	// text-only posts have no link to summarize or open
	if story.URL == "" {
		return item{skip: skipNoURL}
	}

	summary, err := p.extractor.Extract(ctx, story.URL)
	if err != nil {
		log.Printf("[INFO] no summary for %q: %v", story.Title, err)
		summary = ""
	}
	story.Summary = summary

	return item{story: *story}
}

func (p *Pipeline) sendPerStory(ctx context.Context, items []item) Result {
	sent := 0
	for _, it := range items {
		// best-effort accounting: counts every attempted id, kept from the
		// observed behavior of the deployed system
		sent++

		if it.skip != skipNone {
			continue
		}

		if err := p.publisher.NotifyStory(ctx, it.story); err != nil {
			log.Printf("[ERROR] failed to deliver %q: %v", it.story.Title, err)
		}
	}

	return Result{Mode: ModePerStory, Sent: sent}
}

func (p *Pipeline) sendDigest(ctx context.Context, items []item) Result {
	stories := lo.FilterMap(items, func(it item, _ int) (model.Story, bool) {
		return it.story, it.skip == skipNone
	})

	if len(stories) == 0 {
		log.Printf("[INFO] no stories survived enrichment, skipping digest")
		return Result{Mode: ModeDigest}
	}

	if err := p.publisher.NotifyDigest(ctx, stories); err != nil {
		log.Printf("[ERROR] failed to deliver digest: %v", err)
	}

	return Result{Mode: ModeDigest, Count: len(stories)}
}
