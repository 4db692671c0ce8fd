package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedstash/pkg/domain"
	"github.com/umputun/feedstash/pkg/scheduler/mocks"
)

// fakeClock is advanced manually by tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func settingsMock(s domain.Settings) *mocks.SettingsProviderMock {
	return &mocks.SettingsProviderMock{
		GetSettingsFunc: func(ctx context.Context) (domain.Settings, error) { return s, nil },
	}
}

func refresherMock() *mocks.RefresherMock {
	return &mocks.RefresherMock{
		UpdateAllFeedsFunc: func(ctx context.Context) ([]domain.RefreshResult, error) { return nil, nil },
	}
}

func cleanerMock() *mocks.CleanerMock {
	return &mocks.CleanerMock{
		SweepFunc: func(ctx context.Context, days int) (int64, error) { return 0, nil },
	}
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(refresherMock(), cleanerMock(), Config{})
	assert.Equal(t, time.Minute, s.cfg.Tick)
	assert.Equal(t, 24*time.Hour, s.cfg.CleanupInterval)
	assert.Equal(t, 30*time.Second, s.cfg.ShutdownGrace)

	s = NewScheduler(refresherMock(), cleanerMock(), Config{Tick: time.Second, CleanupInterval: time.Hour, ShutdownGrace: time.Millisecond})
	assert.Equal(t, time.Second, s.cfg.Tick)
	assert.Equal(t, time.Hour, s.cfg.CleanupInterval)
	assert.Equal(t, time.Millisecond, s.cfg.ShutdownGrace)
}

func TestScheduler_FirstCheckRunsImmediately(t *testing.T) {
	refresher, cleaner := refresherMock(), cleanerMock()
	s := NewScheduler(refresher, cleaner, Config{Tick: time.Hour})

	require.NoError(t, s.Start(context.Background(), settingsMock(domain.Settings{AutoCleanupEnabled: true,
		AutoCleanupDays: 14, RefreshIntervalMinutes: 60})))
	defer s.Stop()

	require.Eventually(t, func() bool {
		return len(refresher.UpdateAllFeedsCalls()) == 1 && len(cleaner.SweepCalls()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 14, cleaner.SweepCalls()[0].Days)
}

func TestScheduler_Check(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	refresher, cleaner := refresherMock(), cleanerMock()
	s := NewScheduler(refresher, cleaner, Config{CleanupInterval: 24 * time.Hour})
	s.now = clock.Now
	settings := settingsMock(domain.Settings{AutoCleanupEnabled: true, AutoCleanupDays: 7, RefreshIntervalMinutes: 15})
	ctx := context.Background()

	s.check(ctx, settings)
	assert.Len(t, refresher.UpdateAllFeedsCalls(), 1, "first check refreshes")
	assert.Len(t, cleaner.SweepCalls(), 1, "first check cleans up")

	clock.Advance(10 * time.Minute)
	s.check(ctx, settings)
	assert.Len(t, refresher.UpdateAllFeedsCalls(), 1, "interval not elapsed")

	clock.Advance(5 * time.Minute)
	s.check(ctx, settings)
	assert.Len(t, refresher.UpdateAllFeedsCalls(), 2, "15 minutes elapsed")
	assert.Len(t, cleaner.SweepCalls(), 1)

	clock.Advance(24 * time.Hour)
	s.check(ctx, settings)
	assert.Len(t, refresher.UpdateAllFeedsCalls(), 3)
	assert.Len(t, cleaner.SweepCalls(), 2, "cleanup interval elapsed")
}

func TestScheduler_CheckFollowsSettingsChanges(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	refresher := refresherMock()
	s := NewScheduler(refresher, cleanerMock(), Config{})
	s.now = clock.Now

	current := domain.Settings{RefreshIntervalMinutes: 60}
	settings := &mocks.SettingsProviderMock{
		GetSettingsFunc: func(ctx context.Context) (domain.Settings, error) { return current, nil },
	}

	s.check(context.Background(), settings)
	clock.Advance(5 * time.Minute)
	s.check(context.Background(), settings)
	assert.Len(t, refresher.UpdateAllFeedsCalls(), 1)

	current.RefreshIntervalMinutes = 5
	s.check(context.Background(), settings)
	assert.Len(t, refresher.UpdateAllFeedsCalls(), 2, "shorter interval applied on the next check")
}

func TestScheduler_CleanupDisabled(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cleaner := cleanerMock()
	s := NewScheduler(refresherMock(), cleaner, Config{CleanupInterval: time.Hour})
	s.now = clock.Now
	settings := settingsMock(domain.Settings{AutoCleanupEnabled: false, AutoCleanupDays: 7, RefreshIntervalMinutes: 5})

	for range 5 {
		s.check(context.Background(), settings)
		clock.Advance(2 * time.Hour)
	}
	assert.Empty(t, cleaner.SweepCalls())
	assert.True(t, s.lastCleanup.IsZero(), "cleanup timer untouched while disabled")
}

func TestScheduler_CheckSurvivesFailures(t *testing.T) {
	t.Run("settings error skips the check", func(t *testing.T) {
		refresher := refresherMock()
		s := NewScheduler(refresher, cleanerMock(), Config{})
		settings := &mocks.SettingsProviderMock{
			GetSettingsFunc: func(ctx context.Context) (domain.Settings, error) {
				return domain.Settings{}, errors.New("db locked")
			},
		}
		s.check(context.Background(), settings)
		assert.Empty(t, refresher.UpdateAllFeedsCalls())
	})

	t.Run("refresh error still moves the timer", func(t *testing.T) {
		refresher := &mocks.RefresherMock{
			UpdateAllFeedsFunc: func(ctx context.Context) ([]domain.RefreshResult, error) {
				return nil, errors.New("list failed")
			},
		}
		s := NewScheduler(refresher, cleanerMock(), Config{})
		settings := settingsMock(domain.Settings{RefreshIntervalMinutes: 60})
		s.check(context.Background(), settings)
		s.check(context.Background(), settings)
		assert.Len(t, refresher.UpdateAllFeedsCalls(), 1)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		refresher := &mocks.RefresherMock{
			UpdateAllFeedsFunc: func(ctx context.Context) ([]domain.RefreshResult, error) { panic("boom") },
		}
		s := NewScheduler(refresher, cleanerMock(), Config{})
		assert.NotPanics(t, func() {
			s.check(context.Background(), settingsMock(domain.Settings{RefreshIntervalMinutes: 60}))
		})
	})
}

func TestScheduler_TicksUntilStopped(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var mu sync.Mutex
	calls := 0
	refresher := &mocks.RefresherMock{
		UpdateAllFeedsFunc: func(ctx context.Context) ([]domain.RefreshResult, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			clock.Advance(time.Hour) // every tick sees an elapsed interval
			return []domain.RefreshResult{{FeedID: 1, Err: errors.New("failed")}}, nil
		},
	}
	s := NewScheduler(refresher, cleanerMock(), Config{Tick: 10 * time.Millisecond})
	s.now = clock.Now

	require.NoError(t, s.Start(context.Background(), settingsMock(domain.Settings{RefreshIntervalMinutes: 5})))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 3
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	mu.Lock()
	stoppedAt := calls
	mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, stoppedAt, calls, "no refresh after stop")
}

func TestScheduler_StartTwice(t *testing.T) {
	s := NewScheduler(refresherMock(), cleanerMock(), Config{Tick: time.Hour})
	settings := settingsMock(domain.Settings{RefreshIntervalMinutes: 60})

	require.NoError(t, s.Start(context.Background(), settings))
	require.ErrorIs(t, s.Start(context.Background(), settings), ErrSchedulerStopped)
	s.Stop()
	s.Stop() // second stop is a no-op
	require.ErrorIs(t, s.Start(context.Background(), settings), ErrSchedulerStopped, "can't restart after stop")
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler(refresherMock(), cleanerMock(), Config{})
	assert.NotPanics(t, s.Stop)
	require.ErrorIs(t, s.Start(context.Background(), settingsMock(domain.Settings{})), ErrSchedulerStopped)
}

func TestScheduler_StopWaitsForInFlightWork(t *testing.T) {
	started, finished := make(chan struct{}), make(chan struct{})
	refresher := &mocks.RefresherMock{
		UpdateAllFeedsFunc: func(ctx context.Context) ([]domain.RefreshResult, error) {
			close(started)
			select {
			case <-time.After(50 * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			close(finished)
			return nil, nil
		},
	}
	s := NewScheduler(refresher, cleanerMock(), Config{Tick: time.Hour, ShutdownGrace: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx, settingsMock(domain.Settings{RefreshIntervalMinutes: 60})))
	<-started
	cancel() // cancelling the start context doesn't abort in-flight work

	s.Stop()
	select {
	case <-finished:
	default:
		t.Fatal("stop returned before in-flight refresh finished")
	}
}

func TestScheduler_StopCancelsAfterGrace(t *testing.T) {
	started := make(chan struct{})
	var workErr error
	refresher := &mocks.RefresherMock{
		UpdateAllFeedsFunc: func(ctx context.Context) ([]domain.RefreshResult, error) {
			close(started)
			<-ctx.Done()
			workErr = ctx.Err()
			return nil, ctx.Err()
		},
	}
	s := NewScheduler(refresher, cleanerMock(), Config{Tick: time.Hour, ShutdownGrace: 20 * time.Millisecond})
	require.NoError(t, s.Start(context.Background(), settingsMock(domain.Settings{RefreshIntervalMinutes: 60})))
	<-started

	st := time.Now()
	s.Stop()
	assert.Less(t, time.Since(st), time.Second)
	require.ErrorIs(t, workErr, context.Canceled)
}
