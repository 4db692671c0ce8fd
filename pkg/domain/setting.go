package domain

import (
	"fmt"

	"github.com/samber/lo"
)

// allowed values for settings
var (
	CleanupDaysAllowed     = []int{7, 14, 28}
	RefreshIntervalAllowed = []int{5, 10, 15, 30, 60}
)

// Settings is the process-wide singleton governing the scheduler
type Settings struct {
	AutoCleanupEnabled     bool `json:"auto_cleanup_enabled"`
	AutoCleanupDays        int  `json:"auto_cleanup_days"`
	RefreshIntervalMinutes int  `json:"refresh_interval_minutes"`
}

// DefaultSettings returns the values used when the settings row is created lazily
func DefaultSettings() Settings {
	return Settings{AutoCleanupEnabled: true, AutoCleanupDays: 28, RefreshIntervalMinutes: 60}
}

// SettingsUpdate is a partial update, nil fields are left untouched
type SettingsUpdate struct {
	AutoCleanupEnabled     *bool `json:"auto_cleanup_enabled,omitempty"`
	AutoCleanupDays        *int  `json:"auto_cleanup_days,omitempty"`
	RefreshIntervalMinutes *int  `json:"refresh_interval_minutes,omitempty"`
}

// Apply validates the update and merges it into s
func (u SettingsUpdate) Apply(s Settings) (Settings, error) {
	if u.AutoCleanupDays != nil {
		if err := ValidateCleanupDays(*u.AutoCleanupDays); err != nil {
			return s, err
		}
		s.AutoCleanupDays = *u.AutoCleanupDays
	}
	if u.RefreshIntervalMinutes != nil {
		if !lo.Contains(RefreshIntervalAllowed, *u.RefreshIntervalMinutes) {
			return s, &ValidationError{Field: "refresh_interval_minutes",
				Msg: fmt.Sprintf("must be one of %v, got %d", RefreshIntervalAllowed, *u.RefreshIntervalMinutes)}
		}
		s.RefreshIntervalMinutes = *u.RefreshIntervalMinutes
	}
	if u.AutoCleanupEnabled != nil {
		s.AutoCleanupEnabled = *u.AutoCleanupEnabled
	}
	return s, nil
}

// ValidateCleanupDays checks the retention window is one of the allowed values
func ValidateCleanupDays(days int) error {
	if !lo.Contains(CleanupDaysAllowed, days) {
		return &ValidationError{Field: "days", Msg: fmt.Sprintf("must be one of %v, got %d", CleanupDaysAllowed, days)}
	}
	return nil
}
