package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedstash/pkg/domain"
	"github.com/umputun/feedstash/pkg/service/mocks"
)

func techNews() *domain.ParsedFeed {
	return &domain.ParsedFeed{
		Title:       "Tech News",
		Link:        "http://x/feed",
		SiteURL:     "http://x",
		Description: "all the news",
		Entries: []domain.ParsedEntry{
			{GUID: "1", Title: "First", Link: "http://x/1", Published: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{GUID: "2", Title: "Second", Link: "http://x/2", Published: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestFeedService_AddFeed(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		FindFeedByURLFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) { return nil, nil },
		CreateFeedWithArticlesFunc: func(ctx context.Context, f *domain.Feed, articles []domain.Article) (int, error) {
			f.ID = 11
			return len(articles), nil
		},
	}
	parser := &mocks.FeedParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) { return techNews(), nil },
	}
	favicons := &mocks.FaviconResolverMock{
		ResolveFunc: func(ctx context.Context, siteURL string) (string, error) { return "http://x/icon.png", nil },
	}
	svc := NewFeedService(Params{Feeds: feeds, Parser: parser, Favicons: favicons})

	f, err := svc.AddFeed(context.Background(), " http://x/feed ", "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(11), f.ID)
	assert.Equal(t, "Tech News", f.Title)
	assert.Equal(t, "http://x/feed", f.URL)
	assert.Equal(t, "http://x", f.SiteURL)
	assert.Equal(t, "all the news", f.Description)
	assert.Equal(t, "http://x/icon.png", f.FaviconURL)
	assert.Nil(t, f.FolderID)

	require.Len(t, feeds.CreateFeedWithArticlesCalls(), 1)
	articles := feeds.CreateFeedWithArticlesCalls()[0].Articles
	require.Len(t, articles, 2)
	assert.Equal(t, "1", articles[0].GUID)
	assert.Equal(t, "Second", articles[1].Title)
	require.NotNil(t, articles[1].Published)

	require.Len(t, favicons.ResolveCalls(), 1)
	assert.Equal(t, "http://x", favicons.ResolveCalls()[0].SiteURL)
}

func TestFeedService_AddFeedCustomTitle(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		FindFeedByURLFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) { return nil, nil },
		CreateFeedWithArticlesFunc: func(ctx context.Context, f *domain.Feed, articles []domain.Article) (int, error) {
			f.ID = 12
			return len(articles), nil
		},
	}
	parser := &mocks.FeedParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) { return techNews(), nil },
	}
	svc := NewFeedService(Params{Feeds: feeds, Parser: parser})

	f, err := svc.AddFeed(context.Background(), "http://x/feed", "  My Tech  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "My Tech", f.Title)
	assert.Equal(t, "My Tech", feeds.CreateFeedWithArticlesCalls()[0].Feed.Title)

	f, err = svc.AddFeed(context.Background(), "http://x/feed2", "   ", nil)
	require.NoError(t, err)
	assert.Equal(t, "Tech News", f.Title, "blank title keeps the parsed one")
}

func TestFeedService_AddFeedDuplicate(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		FindFeedByURLFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) {
			return &domain.Feed{ID: 3, Title: "Tech News", URL: feedURL}, nil
		},
	}
	parser := &mocks.FeedParserMock{}
	svc := NewFeedService(Params{Feeds: feeds, Parser: parser})

	_, err := svc.AddFeed(context.Background(), "http://x/feed", "", nil)
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(3), dup.FeedID)
	assert.Equal(t, "Tech News", dup.Title)
	assert.Empty(t, parser.ParseCalls(), "duplicate detected before fetching")
	assert.Empty(t, feeds.CreateFeedWithArticlesCalls())
}

func TestFeedService_AddFeedConcurrentDuplicate(t *testing.T) {
	lookups := 0
	feeds := &mocks.FeedStoreMock{
		FindFeedByURLFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) {
			lookups++
			if lookups == 1 {
				return nil, nil
			}
			return &domain.Feed{ID: 8, Title: "Other", URL: feedURL}, nil
		},
		CreateFeedWithArticlesFunc: func(ctx context.Context, f *domain.Feed, articles []domain.Article) (int, error) {
			return 0, fmt.Errorf("create feed with articles: %w", domain.ErrConflict)
		},
	}
	parser := &mocks.FeedParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) { return techNews(), nil },
	}
	svc := NewFeedService(Params{Feeds: feeds, Parser: parser})

	_, err := svc.AddFeed(context.Background(), "http://x/feed", "", nil)
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(8), dup.FeedID)
}

func TestFeedService_AddFeedParseFailure(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		FindFeedByURLFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) { return nil, nil },
	}
	parser := &mocks.FeedParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
			return nil, &domain.ParseError{URL: url, Err: errors.New("not a feed")}
		},
	}
	svc := NewFeedService(Params{Feeds: feeds, Parser: parser})

	_, err := svc.AddFeed(context.Background(), "http://x/page.html", "", nil)
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Empty(t, feeds.CreateFeedWithArticlesCalls(), "nothing stored on parse failure")
}

func TestFeedService_AddFeedValidation(t *testing.T) {
	svc := NewFeedService(Params{Feeds: &mocks.FeedStoreMock{}, Parser: &mocks.FeedParserMock{}})

	for _, u := range []string{"", "   ", "not a url", "ftp://x/feed", "/relative/feed.xml", "http://"} {
		_, err := svc.AddFeed(context.Background(), u, "", nil)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "url %q", u)
		assert.Equal(t, "url", verr.Field)
	}
}

func TestFeedService_AddFeedFolder(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		FindFeedByURLFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) { return nil, nil },
		CreateFeedWithArticlesFunc: func(ctx context.Context, f *domain.Feed, articles []domain.Article) (int, error) {
			f.ID = 1
			return len(articles), nil
		},
	}
	folders := &mocks.FolderStoreMock{
		GetFolderFunc: func(ctx context.Context, id int64) (*domain.Folder, error) {
			if id == 2 {
				return &domain.Folder{ID: 2, Name: "tech"}, nil
			}
			return nil, &domain.NotFoundError{Kind: "folder", ID: id}
		},
	}
	parser := &mocks.FeedParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) { return techNews(), nil },
	}
	favicons := &mocks.FaviconResolverMock{
		ResolveFunc: func(ctx context.Context, siteURL string) (string, error) { return "", errors.New("unreachable") },
	}
	svc := NewFeedService(Params{Feeds: feeds, Folders: folders, Parser: parser, Favicons: favicons})

	folderID := int64(2)
	f, err := svc.AddFeed(context.Background(), "http://x/feed", "", &folderID)
	require.NoError(t, err)
	require.NotNil(t, f.FolderID)
	assert.Equal(t, int64(2), *f.FolderID)
	assert.Empty(t, f.FaviconURL, "favicon failure leaves it empty")

	missing := int64(99)
	_, err = svc.AddFeed(context.Background(), "http://y/feed", "", &missing)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "folder", nf.Kind)
	assert.Len(t, parser.ParseCalls(), 1, "unknown folder rejected before fetching")
}

func TestFeedService_RefreshFeed(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		GetFeedFunc: func(ctx context.Context, id int64) (*domain.Feed, error) {
			return &domain.Feed{ID: id, Title: "Tech News"}, nil
		},
	}
	refresher := &mocks.RefresherMock{
		UpdateFeedNowFunc: func(ctx context.Context, feedID int64) (domain.RefreshResult, error) {
			switch feedID {
			case 1:
				return domain.RefreshResult{FeedID: 1, New: 3}, nil
			case 2:
				return domain.RefreshResult{FeedID: 2, Err: &domain.FetchError{URL: "u", Status: 500}}, nil
			default:
				nf := &domain.NotFoundError{Kind: "feed", ID: feedID}
				return domain.RefreshResult{FeedID: feedID, Err: nf}, nf
			}
		},
	}
	svc := NewFeedService(Params{Feeds: feeds, Refresher: refresher})

	f, res, err := svc.RefreshFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Tech News", f.Title)
	assert.Equal(t, 3, res.New)

	_, _, err = svc.RefreshFeed(context.Background(), 2)
	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)

	_, _, err = svc.RefreshFeed(context.Background(), 77)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Len(t, feeds.GetFeedCalls(), 1)
}

func TestFeedService_PreviewFeedTitle(t *testing.T) {
	parser := &mocks.FeedParserMock{
		FetchTitleFunc: func(ctx context.Context, url string) (domain.FeedPreview, error) {
			if url == "http://x/feed" {
				return domain.FeedPreview{Title: "Tech News", URL: url}, nil
			}
			return domain.FeedPreview{}, errors.New("can't get feed title")
		},
	}
	svc := NewFeedService(Params{Parser: parser})

	p, err := svc.PreviewFeedTitle(context.Background(), "http://x/feed")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedPreview{Title: "Tech News", URL: "http://x/feed"}, p)

	_, err = svc.PreviewFeedTitle(context.Background(), "http://x/broken")
	require.Error(t, err)

	_, err = svc.PreviewFeedTitle(context.Background(), "")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, parser.FetchTitleCalls(), 2)
}

func TestFeedService_CleanupArticles(t *testing.T) {
	cleaner := &mocks.CleanerMock{
		SweepFunc: func(ctx context.Context, days int) (int64, error) { return 12, nil },
	}
	svc := NewFeedService(Params{Cleaner: cleaner})

	n, err := svc.CleanupArticles(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	_, err = svc.CleanupArticles(context.Background(), 30)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, cleaner.SweepCalls(), 1)
}

func TestFeedService_Settings(t *testing.T) {
	stored := domain.DefaultSettings()
	settings := &mocks.SettingStoreMock{
		GetSettingsFunc: func(ctx context.Context) (domain.Settings, error) { return stored, nil },
		UpdateSettingsFunc: func(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
			updated, err := upd.Apply(stored)
			if err != nil {
				return stored, err
			}
			stored = updated
			return stored, nil
		},
	}
	svc := NewFeedService(Params{Settings: settings})

	s, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)

	days, enabled := 7, false
	s, err = svc.UpdateSettings(context.Background(), domain.SettingsUpdate{AutoCleanupDays: &days, AutoCleanupEnabled: &enabled})
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{AutoCleanupEnabled: false, AutoCleanupDays: 7, RefreshIntervalMinutes: 60}, s)
	assert.Equal(t, s, stored)

	interval := 7
	_, err = svc.UpdateSettings(context.Background(), domain.SettingsUpdate{RefreshIntervalMinutes: &interval})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "refresh_interval_minutes", verr.Field)
	assert.Equal(t, 60, stored.RefreshIntervalMinutes, "invalid update not saved")
	require.Len(t, settings.UpdateSettingsCalls(), 2)
	assert.Equal(t, &interval, settings.UpdateSettingsCalls()[1].Upd.RefreshIntervalMinutes)
}

func TestFeedService_MoveFeed(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		MoveFeedFunc: func(ctx context.Context, feedID int64, folderID *int64) error { return nil },
		GetFeedFunc: func(ctx context.Context, id int64) (*domain.Feed, error) {
			return &domain.Feed{ID: id}, nil
		},
	}
	folders := &mocks.FolderStoreMock{
		GetFolderFunc: func(ctx context.Context, id int64) (*domain.Folder, error) {
			if id == 1 {
				return &domain.Folder{ID: 1}, nil
			}
			return nil, &domain.NotFoundError{Kind: "folder", ID: id}
		},
	}
	svc := NewFeedService(Params{Feeds: feeds, Folders: folders})

	folderID := int64(1)
	_, err := svc.MoveFeed(context.Background(), 5, &folderID)
	require.NoError(t, err)
	require.Len(t, feeds.MoveFeedCalls(), 1)
	assert.Equal(t, &folderID, feeds.MoveFeedCalls()[0].FolderID)

	_, err = svc.MoveFeed(context.Background(), 5, nil)
	require.NoError(t, err)
	assert.Nil(t, feeds.MoveFeedCalls()[1].FolderID)

	unknown := int64(4)
	_, err = svc.MoveFeed(context.Background(), 5, &unknown)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Len(t, feeds.MoveFeedCalls(), 2)
}

func TestFeedService_Folders(t *testing.T) {
	folders := &mocks.FolderStoreMock{
		CreateFolderFunc: func(ctx context.Context, name string) (*domain.Folder, error) {
			if name == "taken" {
				return nil, fmt.Errorf("create folder: %w", domain.ErrConflict)
			}
			return &domain.Folder{ID: 1, Name: name}, nil
		},
		RenameFolderFunc: func(ctx context.Context, id int64, name string) error { return nil },
		GetFolderFunc: func(ctx context.Context, id int64) (*domain.Folder, error) {
			return &domain.Folder{ID: id, Name: "renamed"}, nil
		},
		DeleteFolderFunc: func(ctx context.Context, id int64) error { return nil },
	}
	svc := NewFeedService(Params{Folders: folders})

	f, err := svc.CreateFolder(context.Background(), " tech ")
	require.NoError(t, err)
	assert.Equal(t, "tech", f.Name)

	_, err = svc.CreateFolder(context.Background(), "taken")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.CreateFolder(context.Background(), "  ")
	require.ErrorAs(t, err, &verr)

	f, err = svc.RenameFolder(context.Background(), 1, "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", f.Name)

	require.NoError(t, svc.DeleteFolder(context.Background(), 1))
	assert.Len(t, folders.DeleteFolderCalls(), 1)
}

func TestFeedService_ListArticles(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		GetFeedFunc: func(ctx context.Context, id int64) (*domain.Feed, error) {
			if id != 1 {
				return nil, &domain.NotFoundError{Kind: "feed", ID: id}
			}
			return &domain.Feed{ID: 1}, nil
		},
	}
	articles := &mocks.ArticleStoreMock{
		ListArticlesFunc: func(ctx context.Context, feedID int64, limit int) ([]domain.Article, error) {
			return []domain.Article{{ID: 1, FeedID: feedID}}, nil
		},
		SetReadFunc: func(ctx context.Context, id int64, read bool) error { return nil },
	}
	svc := NewFeedService(Params{Feeds: feeds, Articles: articles})

	res, err := svc.ListArticles(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 10, articles.ListArticlesCalls()[0].Limit)

	_, err = svc.ListArticles(context.Background(), 2, 10)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)

	require.NoError(t, svc.MarkRead(context.Background(), 1, true))
	assert.True(t, articles.SetReadCalls()[0].Read)
}

func TestFeedService_ExportOPML(t *testing.T) {
	folderID := int64(1)
	feeds := &mocks.FeedStoreMock{
		ListFeedsFunc: func(ctx context.Context) ([]domain.Feed, error) {
			return []domain.Feed{
				{ID: 1, Title: "Tech News", URL: "http://x/feed", SiteURL: "http://x", FolderID: &folderID},
				{ID: 2, Title: "Blog", URL: "http://y/rss"},
			}, nil
		},
	}
	folders := &mocks.FolderStoreMock{
		ListFoldersFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{{ID: 1, Name: "tech"}}, nil
		},
	}
	svc := NewFeedService(Params{Feeds: feeds, Folders: folders, OPMLTitle: "my feeds"})

	data, err := svc.ExportOPML(context.Background())
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "<title>my feeds</title>")
	assert.Contains(t, out, `text="tech"`)
	assert.Contains(t, out, `xmlUrl="http://x/feed"`)
	assert.Contains(t, out, `xmlUrl="http://y/rss"`)
}
