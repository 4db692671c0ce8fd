package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedstash/pkg/domain"
)

//go:generate moq -out mocks/settings_provider.go -pkg mocks -skip-ensure -fmt goimports . SettingsProvider
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher
//go:generate moq -out mocks/cleaner.go -pkg mocks -skip-ensure -fmt goimports . Cleaner

// ErrSchedulerStopped is returned by Start on a scheduler which was already started or stopped
var ErrSchedulerStopped = errors.New("scheduler can't be started twice")

// SettingsProvider returns current settings, read on every tick
type SettingsProvider interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
}

// Refresher runs a refresh pass over all feeds
type Refresher interface {
	UpdateAllFeeds(ctx context.Context) ([]domain.RefreshResult, error)
}

// Cleaner runs a retention sweep
type Cleaner interface {
	Sweep(ctx context.Context, days int) (int64, error)
}

// Config holds scheduler timings
type Config struct {
	Tick            time.Duration // how often timers are checked, default 60s
	CleanupInterval time.Duration // cleanup cadence, default 24h
	ShutdownGrace   time.Duration // how long Stop waits for in-flight work, default 30s
}

// Scheduler periodically triggers refresh passes and retention sweeps.
// It is one-shot: once stopped it can't be started again.
type Scheduler struct {
	refresher Refresher
	cleaner   Cleaner
	cfg       Config
	now       func() time.Time

	mu         sync.Mutex
	started    bool
	stopped    bool
	cancelTick context.CancelFunc
	cancelWork context.CancelFunc
	done       chan struct{}

	// timers, touched only by the loop goroutine
	lastRefresh time.Time
	lastCleanup time.Time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(refresher Refresher, cleaner Cleaner, cfg Config) *Scheduler {
	if cfg.Tick <= 0 {
		cfg.Tick = time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 24 * time.Hour
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = 30 * time.Second
	}
	return &Scheduler{refresher: refresher, cleaner: cleaner, cfg: cfg, now: time.Now, done: make(chan struct{})}
}

// Start launches the background loop. The first check runs immediately.
// Cancelling ctx stops ticking, in-flight work is cancelled by Stop only.
func (s *Scheduler) Start(ctx context.Context, settings SettingsProvider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return ErrSchedulerStopped
	}
	s.started = true

	var tickCtx, workCtx context.Context
	tickCtx, s.cancelTick = context.WithCancel(ctx)
	workCtx, s.cancelWork = context.WithCancel(context.WithoutCancel(ctx))

	go s.run(tickCtx, workCtx, settings)

	lgr.Printf("[INFO] scheduler started, tick %v, cleanup interval %v", s.cfg.Tick, s.cfg.CleanupInterval)
	return nil
}

// Stop stops ticking and waits for in-flight work up to the shutdown grace period,
// after that the work is cancelled. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	s.mu.Unlock()

	if !started {
		return
	}

	lgr.Printf("[INFO] stopping scheduler...")
	s.cancelTick()

	select {
	case <-s.done:
	case <-time.After(s.cfg.ShutdownGrace):
		lgr.Printf("[WARN] in-flight work not finished in %v, cancelling", s.cfg.ShutdownGrace)
		s.cancelWork()
		<-s.done
	}
	s.cancelWork()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) run(tickCtx, workCtx context.Context, settings SettingsProvider) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	s.check(workCtx, settings)
	for {
		select {
		case <-tickCtx.Done():
			return
		case <-ticker.C:
			if tickCtx.Err() != nil {
				return
			}
			s.check(workCtx, settings)
		}
	}
}

// check runs whatever is due. Panics and errors are logged, the loop keeps going.
func (s *Scheduler) check(ctx context.Context, settings SettingsProvider) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] scheduler check panic: %v", r)
		}
	}()

	st, err := settings.GetSettings(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to get settings: %v", err)
		return
	}

	now := s.now()
	refreshInterval := time.Duration(st.RefreshIntervalMinutes) * time.Minute
	if s.lastRefresh.IsZero() || now.Sub(s.lastRefresh) >= refreshInterval {
		s.refresh(ctx)
		s.lastRefresh = now
	}

	if st.AutoCleanupEnabled && (s.lastCleanup.IsZero() || now.Sub(s.lastCleanup) >= s.cfg.CleanupInterval) {
		s.cleanup(ctx, st.AutoCleanupDays)
		s.lastCleanup = now
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	results, err := s.refresher.UpdateAllFeeds(ctx)
	if err != nil {
		lgr.Printf("[ERROR] refresh pass failed: %v", err)
		return
	}
	for _, r := range results {
		if r.Err != nil {
			lgr.Printf("[DEBUG] %s", r)
		}
	}
}

func (s *Scheduler) cleanup(ctx context.Context, days int) {
	if _, err := s.cleaner.Sweep(ctx, days); err != nil {
		lgr.Printf("[ERROR] auto cleanup failed: %v", err)
	}
}
