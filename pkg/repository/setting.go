package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedstash/pkg/domain"
)

// SettingRepository keeps the single settings row
type SettingRepository struct {
	db       *sqlx.DB
	defaults domain.Settings
}

type settingsSQL struct {
	AutoCleanupEnabled     bool `db:"auto_cleanup_enabled"`
	AutoCleanupDays        int  `db:"auto_cleanup_days"`
	RefreshIntervalMinutes int  `db:"refresh_interval_minutes"`
}

// NewSettingRepository creates a new setting repository, defaults are stored on first read
func NewSettingRepository(db *sqlx.DB, defaults domain.Settings) *SettingRepository {
	return &SettingRepository{db: db, defaults: defaults}
}

// GetSettings returns current settings, creating the row with defaults if missing
func (r *SettingRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	selectQuery := "SELECT auto_cleanup_enabled, auto_cleanup_days, refresh_interval_minutes FROM settings WHERE id = 1"

	var row settingsSQL
	err := r.db.GetContext(ctx, &row, selectQuery)
	if errors.Is(err, sql.ErrNoRows) {
		insert := r.db.Rebind(`
			INSERT INTO settings (id, auto_cleanup_enabled, auto_cleanup_days, refresh_interval_minutes, updated_at)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`)
		d := r.defaults
		if err = withRetry(ctx, func() error {
			_, e := r.db.ExecContext(ctx, insert, d.AutoCleanupEnabled, d.AutoCleanupDays, d.RefreshIntervalMinutes, time.Now().UTC())
			return e
		}); err != nil {
			return domain.Settings{}, classify("create settings", err)
		}
		err = r.db.GetContext(ctx, &row, selectQuery)
	}
	if err != nil {
		return domain.Settings{}, classify("get settings", err)
	}
	return domain.Settings{
		AutoCleanupEnabled:     row.AutoCleanupEnabled,
		AutoCleanupDays:        row.AutoCleanupDays,
		RefreshIntervalMinutes: row.RefreshIntervalMinutes,
	}, nil
}

// UpdateSettings validates and applies a partial update in one statement. Only non-nil fields are
// written, concurrent updates of different fields both persist. Returns the stored settings.
func (r *SettingRepository) UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	current, err := r.GetSettings(ctx) // makes sure the row exists
	if err != nil {
		return domain.Settings{}, err
	}
	if _, err = upd.Apply(current); err != nil {
		return current, err
	}

	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("settings")
	assignments := []string{ub.Assign("updated_at", time.Now().UTC())}
	if upd.AutoCleanupEnabled != nil {
		assignments = append(assignments, ub.Assign("auto_cleanup_enabled", *upd.AutoCleanupEnabled))
	}
	if upd.AutoCleanupDays != nil {
		assignments = append(assignments, ub.Assign("auto_cleanup_days", *upd.AutoCleanupDays))
	}
	if upd.RefreshIntervalMinutes != nil {
		assignments = append(assignments, ub.Assign("refresh_interval_minutes", *upd.RefreshIntervalMinutes))
	}
	ub.Set(assignments...).Where(ub.Equal("id", 1))
	query, args := ub.Build()
	query = r.db.Rebind(query)

	err = withRetry(ctx, func() error {
		_, e := r.db.ExecContext(ctx, query, args...)
		return e
	})
	if err != nil {
		return current, classify("update settings", err)
	}
	return r.GetSettings(ctx)
}
