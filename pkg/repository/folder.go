package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedstash/pkg/domain"
)

// FolderRepository handles folder-related database operations
type FolderRepository struct {
	db *sqlx.DB
}

type folderSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db *sqlx.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// CreateFolder inserts a folder, names are unique and a duplicate returns domain.ErrConflict
func (r *FolderRepository) CreateFolder(ctx context.Context, name string) (*domain.Folder, error) {
	now := time.Now().UTC()
	query := r.db.Rebind("INSERT INTO folders (name, created_at) VALUES (?, ?) RETURNING id")
	var id int64
	err := withRetry(ctx, func() error {
		return r.db.GetContext(ctx, &id, query, name, now)
	})
	if err != nil {
		return nil, classify("create folder", err)
	}
	return &domain.Folder{ID: id, Name: name, CreatedAt: now}, nil
}

// GetFolder retrieves a folder by ID
func (r *FolderRepository) GetFolder(ctx context.Context, id int64) (*domain.Folder, error) {
	var row folderSQL
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT id, name, created_at FROM folders WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Kind: "folder", ID: id}
	}
	if err != nil {
		return nil, classify("get folder", err)
	}
	return &domain.Folder{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt.UTC()}, nil
}

// ListFolders returns all folders ordered by name
func (r *FolderRepository) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	var rows []folderSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name, created_at FROM folders ORDER BY LOWER(name), id"); err != nil {
		return nil, classify("list folders", err)
	}
	res := make([]domain.Folder, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Folder{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt.UTC()})
	}
	return res, nil
}

// RenameFolder changes the name of a folder
func (r *FolderRepository) RenameFolder(ctx context.Context, id int64, name string) error {
	query := r.db.Rebind("UPDATE folders SET name = ? WHERE id = ?")
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, name, id)
		if err != nil {
			return err
		}
		return requireAffected(res, "folder", id)
	})
	return classify("rename folder", err)
}

// DeleteFolder removes a folder, its feeds become unfiled
func (r *FolderRepository) DeleteFolder(ctx context.Context, id int64) error {
	query := r.db.Rebind("DELETE FROM folders WHERE id = ?")
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		return requireAffected(res, "folder", id)
	})
	return classify("delete folder", err)
}
