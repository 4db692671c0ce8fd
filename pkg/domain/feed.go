package domain

import (
	"fmt"
	"time"
)

// Feed represents a registered syndication source
type Feed struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"` // source URL, unique across feeds
	Title       string    `json:"title"`
	SiteURL     string    `json:"site_url"`
	Description string    `json:"description"`
	FaviconURL  string    `json:"favicon_url"`
	FolderID    *int64    `json:"folder_id"` // nil for unfiled feeds
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Folder groups feeds
type Folder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UntitledFeedTitle is used by the parser for feeds without a title
const UntitledFeedTitle = "Untitled Feed"

// ParsedFeed is the feed-level summary produced by the parser
type ParsedFeed struct {
	Title       string
	Link        string
	SiteURL     string
	Description string
	Entries     []ParsedEntry
}

// ParsedEntry is one normalized entry of a parsed feed
type ParsedEntry struct {
	Title     string
	Link      string
	GUID      string
	Published time.Time
	Content   string
	ImageURL  string
}

// FeedPreview is the lightweight result of previewing a source before adding it
type FeedPreview struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RefreshResult is the outcome of one refresh of a single feed
type RefreshResult struct {
	FeedID int64
	New    int   // number of newly stored articles
	Err    error // nil on success
}

// String returns a human-readable summary
func (r RefreshResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("feed %d: failed, %v", r.FeedID, r.Err)
	}
	return fmt.Sprintf("feed %d: %d new articles", r.FeedID, r.New)
}
