package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/samber/lo"

	"github.com/umputun/feedstash/pkg/domain"
	"github.com/umputun/feedstash/pkg/feed"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/folder_store.go -pkg mocks -skip-ensure -fmt goimports . FolderStore
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/feed_parser.go -pkg mocks -skip-ensure -fmt goimports . FeedParser
//go:generate moq -out mocks/favicon_resolver.go -pkg mocks -skip-ensure -fmt goimports . FaviconResolver
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher
//go:generate moq -out mocks/cleaner.go -pkg mocks -skip-ensure -fmt goimports . Cleaner

// FeedStore is the feed persistence used by the service
type FeedStore interface {
	CreateFeedWithArticles(ctx context.Context, feed *domain.Feed, articles []domain.Article) (int, error)
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	FindFeedByURL(ctx context.Context, feedURL string) (*domain.Feed, error)
	ListFeeds(ctx context.Context) ([]domain.Feed, error)
	MoveFeed(ctx context.Context, feedID int64, folderID *int64) error
	DeleteFeed(ctx context.Context, id int64) error
}

// ArticleStore is the article persistence used by the service
type ArticleStore interface {
	ListArticles(ctx context.Context, feedID int64, limit int) ([]domain.Article, error)
	SetRead(ctx context.Context, id int64, read bool) error
}

// FolderStore is the folder persistence used by the service
type FolderStore interface {
	CreateFolder(ctx context.Context, name string) (*domain.Folder, error)
	GetFolder(ctx context.Context, id int64) (*domain.Folder, error)
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	RenameFolder(ctx context.Context, id int64, name string) error
	DeleteFolder(ctx context.Context, id int64) error
}

// SettingStore reads and writes the settings singleton
type SettingStore interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
}

// FeedParser fetches feeds
type FeedParser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
	FetchTitle(ctx context.Context, url string) (domain.FeedPreview, error)
}

// FaviconResolver looks up the icon of a site
type FaviconResolver interface {
	Resolve(ctx context.Context, siteURL string) (string, error)
}

// Refresher runs an immediate refresh of one feed
type Refresher interface {
	UpdateFeedNow(ctx context.Context, feedID int64) (domain.RefreshResult, error)
}

// Cleaner runs a retention sweep
type Cleaner interface {
	Sweep(ctx context.Context, days int) (int64, error)
}

// Params holds dependencies of FeedService
type Params struct {
	Feeds     FeedStore
	Articles  ArticleStore
	Folders   FolderStore
	Settings  SettingStore
	Parser    FeedParser
	Favicons  FaviconResolver
	Refresher Refresher
	Cleaner   Cleaner
	OPMLTitle string
}

// FeedService implements operations exposed to the API layer. Interactive failures
// are returned to the caller as typed domain errors.
type FeedService struct {
	feeds     FeedStore
	articles  ArticleStore
	folders   FolderStore
	settings  SettingStore
	parser    FeedParser
	favicons  FaviconResolver
	refresher Refresher
	cleaner   Cleaner
	opml      *feed.OPMLExporter
}

// NewFeedService creates a new feed service
func NewFeedService(p Params) *FeedService {
	return &FeedService{
		feeds:     p.Feeds,
		articles:  p.Articles,
		folders:   p.Folders,
		settings:  p.Settings,
		parser:    p.Parser,
		favicons:  p.Favicons,
		refresher: p.Refresher,
		cleaner:   p.Cleaner,
		opml:      feed.NewOPMLExporter(p.OPMLTitle),
	}
}

// AddFeed registers a new source. The source is parsed before anything is stored,
// so a parse failure leaves no feed behind. The feed and its initial articles are
// created in one transaction. A non-empty title replaces the one from the source.
func (s *FeedService) AddFeed(ctx context.Context, feedURL, title string, folderID *int64) (*domain.Feed, error) {
	feedURL = strings.TrimSpace(feedURL)
	if err := validateURL(feedURL); err != nil {
		return nil, err
	}

	if existing, err := s.feeds.FindFeedByURL(ctx, feedURL); err != nil {
		return nil, fmt.Errorf("check existing feed: %w", err)
	} else if existing != nil {
		return nil, &domain.DuplicateError{FeedID: existing.ID, Title: existing.Title, URL: feedURL}
	}

	if folderID != nil {
		if _, err := s.folders.GetFolder(ctx, *folderID); err != nil {
			return nil, err
		}
	}

	parsed, err := s.parser.Parse(ctx, feedURL)
	if err != nil {
		lgr.Printf("[WARN] can't add feed %s: %v", feedURL, err)
		return nil, err
	}

	f := &domain.Feed{
		URL:         feedURL,
		Title:       parsed.Title,
		SiteURL:     parsed.SiteURL,
		Description: parsed.Description,
		FolderID:    folderID,
	}
	if title = strings.TrimSpace(title); title != "" {
		f.Title = title
	}
	if f.SiteURL != "" && s.favicons != nil {
		icon, ferr := s.favicons.Resolve(ctx, f.SiteURL)
		if ferr != nil {
			lgr.Printf("[DEBUG] no favicon for %s: %v", f.SiteURL, ferr)
		}
		f.FaviconURL = icon
	}

	articles := lo.Map(parsed.Entries, func(e domain.ParsedEntry, _ int) domain.Article {
		return domain.NewArticle(0, e)
	})

	created, err := s.feeds.CreateFeedWithArticles(ctx, f, articles)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// registered concurrently between the check and the insert
			if existing, ferr := s.feeds.FindFeedByURL(ctx, feedURL); ferr == nil && existing != nil {
				return nil, &domain.DuplicateError{FeedID: existing.ID, Title: existing.Title, URL: feedURL}
			}
		}
		return nil, fmt.Errorf("create feed %s: %w", feedURL, err)
	}

	lgr.Printf("[INFO] added feed %q (%s) with %d articles", f.Title, f.URL, created)
	return f, nil
}

// RefreshFeed runs one ingestion cycle of a feed right away and returns the updated feed
// with the refresh outcome. A fetch or parse failure is returned as the error.
func (s *FeedService) RefreshFeed(ctx context.Context, feedID int64) (*domain.Feed, domain.RefreshResult, error) {
	res, err := s.refresher.UpdateFeedNow(ctx, feedID)
	if err != nil {
		return nil, res, err
	}
	if res.Err != nil {
		return nil, res, res.Err
	}
	f, err := s.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return nil, res, err
	}
	return f, res, nil
}

// PreviewFeedTitle fetches a source and returns its title without storing anything
func (s *FeedService) PreviewFeedTitle(ctx context.Context, feedURL string) (domain.FeedPreview, error) {
	feedURL = strings.TrimSpace(feedURL)
	if err := validateURL(feedURL); err != nil {
		return domain.FeedPreview{}, err
	}
	return s.parser.FetchTitle(ctx, feedURL)
}

// CleanupArticles removes articles published more than days ago, days must be 7, 14 or 28
func (s *FeedService) CleanupArticles(ctx context.Context, days int) (int64, error) {
	if err := domain.ValidateCleanupDays(days); err != nil {
		return 0, err
	}
	return s.cleaner.Sweep(ctx, days)
}

// GetSettings returns current settings, creating defaults on first read
func (s *FeedService) GetSettings(ctx context.Context) (domain.Settings, error) {
	return s.settings.GetSettings(ctx)
}

// UpdateSettings applies a partial update and returns the stored settings.
// The store writes only the fields set in upd, invalid values are rejected with ValidationError.
func (s *FeedService) UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	updated, err := s.settings.UpdateSettings(ctx, upd)
	if err != nil {
		return updated, err
	}
	lgr.Printf("[INFO] settings updated: %+v", updated)
	return updated, nil
}

// ListFeeds returns all registered feeds
func (s *FeedService) ListFeeds(ctx context.Context) ([]domain.Feed, error) {
	return s.feeds.ListFeeds(ctx)
}

// DeleteFeed removes a feed with all its articles
func (s *FeedService) DeleteFeed(ctx context.Context, feedID int64) error {
	if err := s.feeds.DeleteFeed(ctx, feedID); err != nil {
		return err
	}
	lgr.Printf("[INFO] deleted feed %d", feedID)
	return nil
}

// MoveFeed puts a feed into a folder, nil folderID makes it unfiled
func (s *FeedService) MoveFeed(ctx context.Context, feedID int64, folderID *int64) (*domain.Feed, error) {
	if folderID != nil {
		if _, err := s.folders.GetFolder(ctx, *folderID); err != nil {
			return nil, err
		}
	}
	if err := s.feeds.MoveFeed(ctx, feedID, folderID); err != nil {
		return nil, err
	}
	return s.feeds.GetFeed(ctx, feedID)
}

// ListArticles returns articles of a feed, newest first
func (s *FeedService) ListArticles(ctx context.Context, feedID int64, limit int) ([]domain.Article, error) {
	if _, err := s.feeds.GetFeed(ctx, feedID); err != nil {
		return nil, err
	}
	return s.articles.ListArticles(ctx, feedID, limit)
}

// MarkRead sets the read flag of an article
func (s *FeedService) MarkRead(ctx context.Context, articleID int64, read bool) error {
	return s.articles.SetRead(ctx, articleID, read)
}

// CreateFolder adds a folder, names must be unique
func (s *FeedService) CreateFolder(ctx context.Context, name string) (*domain.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Msg: "folder name is required"}
	}
	folder, err := s.folders.CreateFolder(ctx, name)
	if errors.Is(err, domain.ErrConflict) {
		return nil, &domain.ValidationError{Field: "name", Msg: fmt.Sprintf("folder %q already exists", name)}
	}
	return folder, err
}

// ListFolders returns all folders
func (s *FeedService) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	return s.folders.ListFolders(ctx)
}

// RenameFolder changes the name of a folder
func (s *FeedService) RenameFolder(ctx context.Context, id int64, name string) (*domain.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Msg: "folder name is required"}
	}
	err := s.folders.RenameFolder(ctx, id, name)
	if errors.Is(err, domain.ErrConflict) {
		return nil, &domain.ValidationError{Field: "name", Msg: fmt.Sprintf("folder %q already exists", name)}
	}
	if err != nil {
		return nil, err
	}
	return s.folders.GetFolder(ctx, id)
}

// DeleteFolder removes a folder, its feeds become unfiled
func (s *FeedService) DeleteFolder(ctx context.Context, id int64) error {
	return s.folders.DeleteFolder(ctx, id)
}

// ExportOPML renders all subscriptions grouped by folder
func (s *FeedService) ExportOPML(ctx context.Context) ([]byte, error) {
	folders, err := s.folders.ListFolders(ctx)
	if err != nil {
		return nil, err
	}
	feeds, err := s.feeds.ListFeeds(ctx)
	if err != nil {
		return nil, err
	}
	return s.opml.Export(folders, feeds)
}

// validateURL accepts absolute http and https urls only
func validateURL(raw string) error {
	if raw == "" {
		return &domain.ValidationError{Field: "url", Msg: "url is required"}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &domain.ValidationError{Field: "url", Msg: fmt.Sprintf("%q is not an http(s) url", raw)}
	}
	return nil
}
