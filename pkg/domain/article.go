package domain

import "time"

// Article represents one ingested entry of a feed
type Article struct {
	ID        int64      `json:"id"`
	FeedID    int64      `json:"feed_id"`
	GUID      string     `json:"guid"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published"` // nil when the source omitted it
	Content   string     `json:"content"`
	ImageURL  string     `json:"image_url"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewArticle builds an unsaved article of the given feed from a parsed entry
func NewArticle(feedID int64, e ParsedEntry) Article {
	a := Article{
		FeedID:   feedID,
		GUID:     e.GUID,
		Title:    e.Title,
		Link:     e.Link,
		Content:  e.Content,
		ImageURL: e.ImageURL,
	}
	if !e.Published.IsZero() {
		published := e.Published.UTC()
		a.Published = &published
	}
	return a
}
