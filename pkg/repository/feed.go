package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedstash/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID          int64         `db:"id"`
	URL         string        `db:"url"`
	Title       string        `db:"title"`
	SiteURL     string        `db:"site_url"`
	Description string        `db:"description"`
	FaviconURL  string        `db:"favicon_url"`
	FolderID    sql.NullInt64 `db:"folder_id"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

const feedColumns = "id, url, title, site_url, description, favicon_url, folder_id, created_at, updated_at"

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// createFeed inserts a feed without articles and sets its ID.
// Returns domain.ErrConflict for an already registered URL.
func (r *FeedRepository) createFeed(ctx context.Context, feed *domain.Feed) error {
	err := withRetry(ctx, func() error {
		return InTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
			return insertFeed(ctx, tx, feed)
		})
	})
	return classify("create feed", err)
}

// CreateFeedWithArticles inserts a feed and its initial articles in one transaction,
// nothing is stored if any insert fails. Returns the number of stored articles.
func (r *FeedRepository) CreateFeedWithArticles(ctx context.Context, feed *domain.Feed, articles []domain.Article) (int, error) {
	var created int
	err := withRetry(ctx, func() error {
		created = 0
		return InTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
			if err := insertFeed(ctx, tx, feed); err != nil {
				return err
			}
			for i := range articles {
				articles[i].FeedID = feed.ID
			}
			n, err := insertNewArticles(ctx, tx, feed.ID, articles)
			created = n
			return err
		})
	})
	if err != nil {
		feed.ID = 0
		return 0, classify("create feed with articles", err)
	}
	return created, nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var row feedSQL
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT "+feedColumns+" FROM feeds WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Kind: "feed", ID: id}
	}
	if err != nil {
		return nil, classify("get feed", err)
	}
	return row.toDomain(), nil
}

// FindFeedByURL returns the feed registered for url, or nil if there is none
func (r *FeedRepository) FindFeedByURL(ctx context.Context, feedURL string) (*domain.Feed, error) {
	var row feedSQL
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT "+feedColumns+" FROM feeds WHERE url = ?"), feedURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // absence is not an error here
	}
	if err != nil {
		return nil, classify("find feed by url", err)
	}
	return row.toDomain(), nil
}

// ListFeeds returns all feeds ordered by title
func (r *FeedRepository) ListFeeds(ctx context.Context) ([]domain.Feed, error) {
	var rows []feedSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT "+feedColumns+" FROM feeds ORDER BY LOWER(title), id"); err != nil {
		return nil, classify("list feeds", err)
	}
	feeds := make([]domain.Feed, 0, len(rows))
	for i := range rows {
		feeds = append(feeds, *rows[i].toDomain())
	}
	return feeds, nil
}

// UpdateFeedMetadata stores title, site url, description and favicon of a feed
func (r *FeedRepository) UpdateFeedMetadata(ctx context.Context, feed *domain.Feed) error {
	now := time.Now().UTC()
	query := r.db.Rebind(`
		UPDATE feeds
		SET title = ?, site_url = ?, description = ?, favicon_url = ?, updated_at = ?
		WHERE id = ?
	`)
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, feed.Title, feed.SiteURL, feed.Description, feed.FaviconURL, now, feed.ID)
		if err != nil {
			return err
		}
		return requireAffected(res, "feed", feed.ID)
	})
	if err != nil {
		return classify("update feed metadata", err)
	}
	feed.UpdatedAt = now
	return nil
}

// MoveFeed sets the folder of a feed, nil folderID makes it unfiled
func (r *FeedRepository) MoveFeed(ctx context.Context, feedID int64, folderID *int64) error {
	query := r.db.Rebind("UPDATE feeds SET folder_id = ?, updated_at = ? WHERE id = ?")
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, nullInt64(folderID), time.Now().UTC(), feedID)
		if err != nil {
			return err
		}
		return requireAffected(res, "feed", feedID)
	})
	return classify("move feed", err)
}

// DeleteFeed removes a feed and all its articles
func (r *FeedRepository) DeleteFeed(ctx context.Context, id int64) error {
	query := r.db.Rebind("DELETE FROM feeds WHERE id = ?")
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		return requireAffected(res, "feed", id)
	})
	return classify("delete feed", err)
}

func insertFeed(ctx context.Context, tx *sqlx.Tx, feed *domain.Feed) error {
	now := time.Now().UTC()
	query := tx.Rebind(`
		INSERT INTO feeds (url, title, site_url, description, favicon_url, folder_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	var id int64
	err := tx.GetContext(ctx, &id, query, feed.URL, feed.Title, feed.SiteURL, feed.Description, feed.FaviconURL,
		nullInt64(feed.FolderID), now, now)
	if err != nil {
		return err
	}
	feed.ID, feed.CreatedAt, feed.UpdatedAt = id, now, now
	return nil
}

func (f *feedSQL) toDomain() *domain.Feed {
	res := &domain.Feed{
		ID:          f.ID,
		URL:         f.URL,
		Title:       f.Title,
		SiteURL:     f.SiteURL,
		Description: f.Description,
		FaviconURL:  f.FaviconURL,
		CreatedAt:   f.CreatedAt.UTC(),
		UpdatedAt:   f.UpdatedAt.UTC(),
	}
	if f.FolderID.Valid {
		id := f.FolderID.Int64
		res.FolderID = &id
	}
	return res
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// requireAffected turns a zero-rows update/delete into NotFoundError
func requireAffected(res sql.Result, kind string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Kind: kind, ID: id}
	}
	return nil
}
