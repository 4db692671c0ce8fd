package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedstash/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db      *sqlx.DB
	dialect dialect
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID        int64        `db:"id"`
	FeedID    int64        `db:"feed_id"`
	GUID      string       `db:"guid"`
	Title     string       `db:"title"`
	Link      string       `db:"link"`
	Published sql.NullTime `db:"published"`
	Content   string       `db:"content"`
	ImageURL  string       `db:"image_url"`
	IsRead    bool         `db:"is_read"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

const articleColumns = "id, feed_id, guid, title, link, published, content, image_url, is_read, created_at, updated_at"

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB, d dialect) *ArticleRepository {
	return &ArticleRepository{db: db, dialect: d}
}

// createArticle inserts a single article bypassing dedup. A second article with the same (feed, guid)
// is rejected with domain.ErrConflict.
func (r *ArticleRepository) createArticle(ctx context.Context, a *domain.Article) error {
	now := time.Now().UTC()
	query := r.db.Rebind(`
		INSERT INTO articles (feed_id, guid, title, link, published, content, image_url, is_read, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := withRetry(ctx, func() error {
		return r.db.GetContext(ctx, &a.ID, query, a.FeedID, a.GUID, a.Title, a.Link, nullTime(a.Published),
			a.Content, a.ImageURL, a.IsRead, now, now)
	})
	if err != nil {
		return classify("create article", err)
	}
	a.CreatedAt, a.UpdatedAt = now, now
	return nil
}

// InsertNewArticles stores articles of one feed skipping those already known by guid or link.
// All inserts share one transaction. Returns the number of stored articles.
func (r *ArticleRepository) InsertNewArticles(ctx context.Context, feedID int64, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}
	var created int
	err := withRetry(ctx, func() error {
		created = 0
		return InTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
			n, err := insertNewArticles(ctx, tx, feedID, articles)
			created = n
			return err
		})
	})
	if err != nil {
		return 0, classify("insert articles", err)
	}
	return created, nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var row articleSQL
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT "+articleColumns+" FROM articles WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Kind: "article", ID: id}
	}
	if err != nil {
		return nil, classify("get article", err)
	}
	return row.toDomain(), nil
}

// ListArticles returns articles of a feed, newest first, undated ones last. limit <= 0 means no limit.
func (r *ArticleRepository) ListArticles(ctx context.Context, feedID int64, limit int) ([]domain.Article, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(articleColumns).From("articles").
		Where(sb.Equal("feed_id", feedID)).
		OrderBy("published IS NULL", "published DESC", "id DESC")
	if limit > 0 {
		sb.Limit(limit)
	}
	query, args := sb.BuildWithFlavor(r.dialect.flavor)

	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify("list articles", err)
	}
	res := make([]domain.Article, 0, len(rows))
	for i := range rows {
		res = append(res, *rows[i].toDomain())
	}
	return res, nil
}

// CountArticles returns the number of stored articles of a feed
func (r *ArticleRepository) CountArticles(ctx context.Context, feedID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind("SELECT COUNT(*) FROM articles WHERE feed_id = ?"), feedID); err != nil {
		return 0, classify("count articles", err)
	}
	return count, nil
}

// SetRead marks an article read or unread
func (r *ArticleRepository) SetRead(ctx context.Context, id int64, read bool) error {
	query := r.db.Rebind("UPDATE articles SET is_read = ?, updated_at = ? WHERE id = ?")
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, read, time.Now().UTC(), id)
		if err != nil {
			return err
		}
		return requireAffected(res, "article", id)
	})
	return classify("set article read", err)
}

// DeleteOlderThan removes articles published before cutoff in a single statement and
// transaction. Articles without a publish time are never removed.
func (r *ArticleRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	del := sqlbuilder.NewDeleteBuilder()
	del.DeleteFrom("articles").Where(del.IsNotNull("published"), del.LessThan("published", cutoff.UTC()))
	query, args := del.BuildWithFlavor(r.dialect.flavor)

	var deleted int64
	err := withRetry(ctx, func() error {
		return InTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return err
			}
			if deleted, err = res.RowsAffected(); err != nil {
				return fmt.Errorf("rows affected: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return 0, classify("delete old articles", err)
	}
	return deleted, nil
}

// insertNewArticles does the dedup-and-insert work inside an open transaction
func insertNewArticles(ctx context.Context, tx *sqlx.Tx, feedID int64, articles []domain.Article) (int, error) {
	existsQuery := tx.Rebind(`
		SELECT COUNT(*) FROM articles
		WHERE feed_id = ? AND (guid = ? OR (? <> '' AND link = ?))
	`)
	insertQuery := tx.Rebind(`
		INSERT INTO articles (feed_id, guid, title, link, published, content, image_url, is_read, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (feed_id, guid) DO NOTHING
		RETURNING id
	`)

	now := time.Now().UTC()
	created := 0
	for i := range articles {
		a := &articles[i]
		var count int
		if err := tx.GetContext(ctx, &count, existsQuery, feedID, a.GUID, a.Link, a.Link); err != nil {
			return 0, fmt.Errorf("check article %q: %w", a.GUID, err)
		}
		if count > 0 {
			continue
		}

		var id int64
		err := tx.GetContext(ctx, &id, insertQuery, feedID, a.GUID, a.Title, a.Link, nullTime(a.Published),
			a.Content, a.ImageURL, a.IsRead, now, now)
		if errors.Is(err, sql.ErrNoRows) {
			continue // conflict on (feed_id, guid), stored by someone else meanwhile
		}
		if err != nil {
			return 0, fmt.Errorf("insert article %q: %w", a.GUID, err)
		}
		a.ID, a.FeedID, a.CreatedAt, a.UpdatedAt = id, feedID, now, now
		created++
	}
	return created, nil
}

func (a *articleSQL) toDomain() *domain.Article {
	res := &domain.Article{
		ID:        a.ID,
		FeedID:    a.FeedID,
		GUID:      a.GUID,
		Title:     a.Title,
		Link:      a.Link,
		Content:   a.Content,
		ImageURL:  a.ImageURL,
		IsRead:    a.IsRead,
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	}
	if a.Published.Valid {
		t := a.Published.Time.UTC()
		res.Published = &t
	}
	return res
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
