package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedstash/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser

// FeedStore is the part of the feed repository used by refreshes
type FeedStore interface {
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	ListFeeds(ctx context.Context) ([]domain.Feed, error)
	UpdateFeedMetadata(ctx context.Context, feed *domain.Feed) error
}

// ArticleStore persists articles and removes old ones
type ArticleStore interface {
	InsertNewArticles(ctx context.Context, feedID int64, articles []domain.Article) (int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Parser fetches and parses a feed
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// FeedProcessor runs the ingestion pipeline: fetch and parse a feed, skip known entries,
// store new articles. A failure of one feed never affects the others.
type FeedProcessor struct {
	feeds      FeedStore
	articles   ArticleStore
	parser     Parser
	metrics    *Metrics
	maxWorkers int
}

// FeedProcessorConfig holds configuration for FeedProcessor
type FeedProcessorConfig struct {
	Feeds      FeedStore
	Articles   ArticleStore
	Parser     Parser
	Metrics    *Metrics // optional
	MaxWorkers int      // default 4
}

// NewFeedProcessor creates a new feed processor
func NewFeedProcessor(cfg FeedProcessorConfig) *FeedProcessor {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	return &FeedProcessor{
		feeds:      cfg.Feeds,
		articles:   cfg.Articles,
		parser:     cfg.Parser,
		metrics:    cfg.Metrics,
		maxWorkers: cfg.MaxWorkers,
	}
}

// UpdateAllFeeds refreshes every stored feed through a bounded worker pool.
// Per-feed failures are reported in the results, the error is returned only if feeds can't be listed.
func (fp *FeedProcessor) UpdateAllFeeds(ctx context.Context) ([]domain.RefreshResult, error) {
	started := time.Now()
	feeds, err := fp.feeds.ListFeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}

	lgr.Printf("[INFO] updating %d feeds", len(feeds))

	results := make([]domain.RefreshResult, len(feeds))
	g := errgroup.Group{}
	g.SetLimit(fp.maxWorkers)
	for i := range feeds {
		g.Go(func() error {
			results[i] = fp.UpdateFeed(ctx, &feeds[i])
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	created, failed := 0, 0
	for _, r := range results {
		created += r.New
		if r.Err != nil {
			failed++
		}
	}
	fp.metrics.passDone(time.Since(started))
	lgr.Printf("[INFO] feed update completed in %v, %d new articles, %d of %d feeds failed",
		time.Since(started).Truncate(time.Millisecond), created, failed, len(feeds))
	return results, nil
}

// UpdateFeedNow refreshes a single feed by id, returns NotFoundError for unknown feeds
func (fp *FeedProcessor) UpdateFeedNow(ctx context.Context, feedID int64) (domain.RefreshResult, error) {
	lgr.Printf("[DEBUG] triggering immediate update for feed %d", feedID)
	f, err := fp.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return domain.RefreshResult{FeedID: feedID, Err: err}, fmt.Errorf("get feed %d: %w", feedID, err)
	}
	return fp.UpdateFeed(ctx, f), nil
}

// UpdateFeed performs one refresh cycle of a feed. It never panics the caller,
// any failure is logged and returned in the result.
func (fp *FeedProcessor) UpdateFeed(ctx context.Context, f *domain.Feed) (res domain.RefreshResult) {
	res.FeedID = f.ID
	feedID := feedIdentifier(f)
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic while updating feed %s: %v", feedID, r)
			lgr.Printf("[ERROR] %v", res.Err)
		}
		fp.metrics.refreshFailed(res.Err)
	}()

	lgr.Printf("[DEBUG] updating feed: %s", feedID)

	parsed, err := fp.parser.Parse(ctx, f.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to parse feed %s: %v", feedID, err)
		res.Err = err
		return res
	}

	articles := make([]domain.Article, 0, len(parsed.Entries))
	for _, e := range parsed.Entries {
		articles = append(articles, domain.NewArticle(f.ID, e))
	}

	created, err := fp.articles.InsertNewArticles(ctx, f.ID, articles)
	if err != nil {
		lgr.Printf("[WARN] failed to store articles of feed %s: %v", feedID, err)
		res.Err = fmt.Errorf("store articles: %w", err)
		return res
	}
	res.New = created
	fp.metrics.ingested(created)

	if mergeMetadata(f, parsed) {
		if err := fp.feeds.UpdateFeedMetadata(ctx, f); err != nil {
			// articles are stored already, stale metadata is not worth failing the refresh
			lgr.Printf("[WARN] failed to update metadata of feed %s: %v", feedID, err)
		}
	}

	if created > 0 {
		lgr.Printf("[INFO] added %d new articles from feed %s", created, feedID)
	}
	return res
}

// mergeMetadata copies changed upstream metadata into f, never replacing a value with a blank one.
// Returns true if anything changed.
func mergeMetadata(f *domain.Feed, parsed *domain.ParsedFeed) bool {
	changed := false
	title := parsed.Title
	if title == domain.UntitledFeedTitle && f.Title != "" {
		title = ""
	}
	if title != "" && title != f.Title {
		f.Title, changed = title, true
	}
	if parsed.SiteURL != "" && parsed.SiteURL != f.SiteURL {
		f.SiteURL, changed = parsed.SiteURL, true
	}
	if parsed.Description != "" && parsed.Description != f.Description {
		f.Description, changed = parsed.Description, true
	}
	return changed
}

// feedIdentifier returns a human-readable identifier for a feed
func feedIdentifier(f *domain.Feed) string {
	if f.Title != "" {
		return f.Title
	}
	return f.URL
}
