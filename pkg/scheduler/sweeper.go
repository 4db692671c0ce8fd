package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedstash/pkg/domain"
)

// Sweeper removes articles older than the retention window
type Sweeper struct {
	articles ArticleStore
	metrics  *Metrics
	now      func() time.Time
}

// NewSweeper makes a sweeper over the article store, metrics is optional
func NewSweeper(articles ArticleStore, metrics *Metrics) *Sweeper {
	return &Sweeper{articles: articles, metrics: metrics, now: time.Now}
}

// Sweep deletes articles published more than days ago, days must be one of domain.CleanupDaysAllowed.
// Articles without a publish time are kept. Returns the number of deleted articles.
func (s *Sweeper) Sweep(ctx context.Context, days int) (int64, error) {
	if err := domain.ValidateCleanupDays(days); err != nil {
		return 0, err
	}

	cutoff := s.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
	deleted, err := s.articles.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweep articles older than %d days: %w", days, err)
	}
	s.metrics.swept(deleted)
	lgr.Printf("[INFO] cleanup: deleted %d articles older than %d days", deleted, days)
	return deleted, nil
}
