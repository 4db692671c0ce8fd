package repository

import (
	"context"
	"embed"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/feedstash/pkg/domain"
)

//go:embed schema_sqlite.sql schema_postgres.sql
var schemaFS embed.FS

// DefaultDSN is used when no DSN is configured
const DefaultDSN = "file:feedstash.db?mode=rwc"

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Defaults        domain.Settings // used to create the settings row on first read
}

// Repositories contains all repository instances
type Repositories struct {
	Feed    *FeedRepository
	Article *ArticleRepository
	Folder  *FolderRepository
	Setting *SettingRepository
	DB      *sqlx.DB
}

// dialect keeps per-engine bits, queries are written with ? and rebound by sqlx
type dialect struct {
	driver string
	flavor sqlbuilder.Flavor
	schema string
}

var (
	sqliteDialect   = dialect{driver: "sqlite", flavor: sqlbuilder.SQLite, schema: "schema_sqlite.sql"}
	postgresDialect = dialect{driver: "postgres", flavor: sqlbuilder.PostgreSQL, schema: "schema_postgres.sql"}
)

// NewRepositories creates all repositories with a shared database connection.
// DSN starting with postgres:// or postgresql:// selects PostgreSQL, anything else is a SQLite file.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = DefaultDSN
	}
	if cfg.Defaults == (domain.Settings{}) {
		cfg.Defaults = domain.DefaultSettings()
	}

	d, dsn := sqliteDialect, sqliteDSN(cfg.DSN)
	if isPostgresDSN(cfg.DSN) {
		d, dsn = postgresDialect, cfg.DSN
	}

	db, err := sqlx.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := initSchema(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Repositories{
		Feed:    NewFeedRepository(db),
		Article: NewArticleRepository(db, d),
		Folder:  NewFolderRepository(db),
		Setting: NewSettingRepository(db, cfg.Defaults),
		DB:      db,
	}, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB, d dialect) error {
	schema, err := schemaFS.ReadFile(d.schema)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// InTransaction executes fn within a transaction, rolling back on error
func InTransaction(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %w (rollback also failed: %s)", err, rbErr.Error())
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// sqliteDSN adds pragmas as DSN parameters so every pooled connection gets them,
// PRAGMA statements executed on the pool only affect a single connection
func sqliteDSN(dsn string) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "journal_mode(WAL)")
	params.Add("_pragma", "synchronous(NORMAL)")
	params.Add("_pragma", "busy_timeout(5000)")
	params.Add("_pragma", "temp_store(MEMORY)")
	params.Set("_time_format", "sqlite")
	params.Set("_txlock", "immediate")

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + params.Encode()
}
