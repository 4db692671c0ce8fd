package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedstash/pkg/domain"
	"github.com/umputun/feedstash/pkg/scheduler/mocks"
)

func TestSweeper_Sweep(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	articles := &mocks.ArticleStoreMock{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) { return 4, nil },
	}
	s := NewSweeper(articles, NewMetrics(prometheus.NewRegistry()))
	s.now = func() time.Time { return now }

	deleted, err := s.Sweep(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	require.Len(t, articles.DeleteOlderThanCalls(), 1)
	assert.Equal(t, now.Add(-14*24*time.Hour), articles.DeleteOlderThanCalls()[0].Cutoff)
	assert.InDelta(t, 4.0, testutil.ToFloat64(s.metrics.articlesSwept), 0.001)
}

func TestSweeper_AllowedDays(t *testing.T) {
	for _, days := range domain.CleanupDaysAllowed {
		articles := &mocks.ArticleStoreMock{
			DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) { return 0, nil },
		}
		_, err := NewSweeper(articles, nil).Sweep(context.Background(), days)
		require.NoError(t, err, "days %d", days)
		assert.Len(t, articles.DeleteOlderThanCalls(), 1)
	}
}

func TestSweeper_InvalidDays(t *testing.T) {
	articles := &mocks.ArticleStoreMock{}
	s := NewSweeper(articles, nil)

	for _, days := range []int{0, -1, 5, 13, 100} {
		_, err := s.Sweep(context.Background(), days)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "days %d", days)
		assert.Equal(t, "days", verr.Field)
	}
	assert.Empty(t, articles.DeleteOlderThanCalls(), "nothing deleted on invalid input")
}

func TestSweeper_StoreError(t *testing.T) {
	articles := &mocks.ArticleStoreMock{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, errors.New("disk full")
		},
	}
	_, err := NewSweeper(articles, nil).Sweep(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "older than 7 days")
}
