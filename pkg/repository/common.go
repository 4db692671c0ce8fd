package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/lib/pq"

	"github.com/umputun/feedstash/pkg/domain"
)

// isLockError checks if an error is a SQLite lock/busy error or a dropped PostgreSQL connection
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// serialization_failure, deadlock_detected, connection exceptions
		return pqErr.Code == "40001" || pqErr.Code == "40P01" || pqErr.Code.Class() == "08"
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked") ||
		strings.Contains(errStr, "driver: bad connection")
}

// isUniqueViolation checks for a unique constraint failure on either engine
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// classify wraps store errors with domain sentinels so callers can tell transient from permanent
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrConflict, err)
	case isLockError(err):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrTransient, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// withRetry runs fn retrying lock errors with backoff. Any other error stops retries
// and is returned as is.
func withRetry(ctx context.Context, fn func() error) error {
	var permanent error
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		err := fn()
		if err == nil || isLockError(err) {
			return err
		}
		permanent = err
		return nil
	})
	if permanent != nil {
		return permanent
	}
	return err
}
