package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/go-pkgz/lgr"
	"golang.org/x/net/html/charset"

	"github.com/umputun/feedstash/pkg/domain"
)

const maxPageSize = 2 << 20 // icon links live in <head>, no need to read huge pages

// FaviconResolver finds the icon of a site by looking at its home page
type FaviconResolver struct {
	client    *http.Client
	userAgent string
}

// NewFaviconResolver makes a resolver with the given fetch timeout
func NewFaviconResolver(timeout time.Duration, userAgent string) *FaviconResolver {
	return &FaviconResolver{client: newHTTPClient(timeout), userAgent: userAgent}
}

// Resolve fetches siteURL and returns the href of the first <link rel="*icon*"> made absolute.
// A page without such a tag resolves to {scheme}://{host}/favicon.ico.
// Failing to fetch the page at all returns *domain.FetchError, callers treat it as no favicon.
func (f *FaviconResolver) Resolve(ctx context.Context, siteURL string) (string, error) {
	site, err := url.Parse(strings.TrimSpace(siteURL))
	if err != nil || site.Host == "" || (site.Scheme != "http" && site.Scheme != "https") {
		return "", &domain.FetchError{URL: siteURL, Err: errors.New("not an absolute http(s) url")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, site.String(), http.NoBody)
	if err != nil {
		return "", &domain.FetchError{URL: siteURL, Err: fmt.Errorf("create request: %w", err)}
	}
	setRequestHeaders(req, f.userAgent, acceptHTML)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &domain.FetchError{URL: siteURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.FetchError{URL: siteURL, Status: resp.StatusCode}
	}

	fallback := (&url.URL{Scheme: site.Scheme, Host: site.Host, Path: "/favicon.ico"}).String()

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxPageSize), resp.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("[DEBUG] can't detect charset of %s, %v", siteURL, err)
		return fallback, nil
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		log.Printf("[DEBUG] can't parse page %s, %v", siteURL, err)
		return fallback, nil
	}

	base := resp.Request.URL // final url after redirects
	var icon string
	doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(s.AttrOr("rel", "")), "icon") {
			return true
		}
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return true
		}
		icon = resolveURL(base, href)
		return icon == ""
	})
	if icon != "" {
		return icon, nil
	}
	return fallback, nil
}
