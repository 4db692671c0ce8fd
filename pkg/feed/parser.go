package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedstash/pkg/domain"
)

const (
	maxFeedSize    = 10 << 20
	untitledEntry  = "No title"
	defaultTimeout = 10 * time.Second
)

// Parser fetches and parses RSS/Atom/JSON feeds
type Parser struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	dates     *DateNormalizer
	images    *ImageResolver
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed parser, zero timeout means default of 10s
func NewParser(timeout time.Duration, userAgent string) *Parser {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Parser{
		client:    newHTTPClient(timeout),
		timeout:   timeout,
		userAgent: userAgent,
		dates:     NewDateNormalizer(),
		images:    NewImageResolver(),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Parse fetches and parses a feed from the given URL.
// Returns *domain.FetchError if the feed can't be retrieved and *domain.ParseError if it is not a feed.
func (p *Parser) Parse(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	feed, err := p.fetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	result := &domain.ParsedFeed{
		Title:       strings.TrimSpace(feed.Title),
		Link:        strings.TrimSpace(feed.FeedLink),
		SiteURL:     strings.TrimSpace(feed.Link),
		Description: strings.TrimSpace(feed.Description),
		Entries:     make([]domain.ParsedEntry, 0, len(feed.Items)),
	}
	if result.Title == "" {
		result.Title = domain.UntitledFeedTitle
	}
	if result.Link == "" {
		result.Link = feedURL
	}
	if result.SiteURL == "" {
		result.SiteURL = result.Link
	}

	base := baseURL(feed.Link, feedURL)
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		result.Entries = append(result.Entries, p.entry(item, feed.Title, base))
	}
	return result, nil
}

// FetchTitle retrieves the feed and returns its title with the requested url.
// Unlike Parse it reports any failure as a plain error.
func (p *Parser) FetchTitle(ctx context.Context, feedURL string) (domain.FeedPreview, error) {
	feed, err := p.fetchFeed(ctx, feedURL)
	if err != nil {
		return domain.FeedPreview{}, fmt.Errorf("can't get feed title for %s: %v", feedURL, err) //nolint:errorlint // flattened on purpose
	}
	return domain.FeedPreview{Title: strings.TrimSpace(feed.Title), URL: feedURL}, nil
}

// entry converts a gofeed item, feedTitle is the raw channel title used for synthetic guids
func (p *Parser) entry(item *gofeed.Item, feedTitle string, base *url.URL) domain.ParsedEntry {
	res := domain.ParsedEntry{
		Title: strings.TrimSpace(item.Title),
		Link:  strings.TrimSpace(item.Link),
		GUID:  strings.TrimSpace(item.GUID),
	}

	switch {
	case res.GUID != "":
	case res.Link != "":
		res.GUID = res.Link
	default:
		res.GUID = fmt.Sprintf("%s-%s", feedTitle, item.Title)
	}

	if res.Title == "" {
		res.Title = untitledEntry
	}

	published := item.Published
	if strings.TrimSpace(published) == "" {
		published = item.Updated
	}
	res.Published = p.dates.Normalize(published)

	// image lookup needs the raw markup, sanitizer drops meta tags
	res.ImageURL = p.images.Resolve(item, base)

	body := item.Content
	if strings.TrimSpace(body) == "" {
		body = item.Description
	}
	res.Content = strings.TrimSpace(p.sanitizer.Sanitize(body))
	return res
}

// fetchFeed downloads and parses the feed document
func (p *Parser) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	body, err := p.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.ParseError{URL: feedURL, Err: err}
	}
	return feed, nil
}

// fetch retrieves the whole body of a URL
func (p *Parser) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Err: fmt.Errorf("create request: %w", err)}
	}
	setRequestHeaders(req, p.userAgent, acceptFeed)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{URL: feedURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &domain.ParseError{URL: feedURL, Err: errors.New("empty document")}
	}
	return body, nil
}

// baseURL picks the url relative links in entries are resolved against
func baseURL(link, feedURL string) *url.URL {
	for _, candidate := range []string{link, feedURL} {
		if u, err := url.Parse(strings.TrimSpace(candidate)); err == nil && u.IsAbs() {
			return u
		}
	}
	return nil
}
