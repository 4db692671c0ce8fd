package feed

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// ImageStrategy looks for an illustration of a feed entry, returning "" when it has none.
// base is used to resolve relative URLs and may be nil.
type ImageStrategy func(item *gofeed.Item, base *url.URL) string

// ImageResolver applies strategies in order, first non-empty result wins
type ImageResolver struct {
	strategies []ImageStrategy
}

// NewImageResolver makes a resolver with the default strategy chain
func NewImageResolver() *ImageResolver {
	return &ImageResolver{strategies: []ImageStrategy{
		EnclosureImage,
		MediaImage,
		InlineImage,
		StructuredImage,
		ITunesImage,
		MetaImage("og:image"),
		MetaImage("twitter:image"),
	}}
}

// Resolve returns the image URL for the entry or "" if no strategy matched
func (r *ImageResolver) Resolve(item *gofeed.Item, base *url.URL) string {
	if item == nil {
		return ""
	}
	for _, s := range r.strategies {
		if img := s(item, base); img != "" {
			return img
		}
	}
	return ""
}

// EnclosureImage picks the first enclosure declared as image/*
func EnclosureImage(item *gofeed.Item, _ *url.URL) string {
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(enc.Type), "image/") {
			return enc.URL
		}
	}
	return ""
}

// MediaImage checks media:content with an image type and media:thumbnail unconditionally,
// including the ones nested in media:group
func MediaImage(item *gofeed.Item, _ *url.URL) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}

	var contents, thumbnails []ext.Extension
	contents = append(contents, media["content"]...)
	thumbnails = append(thumbnails, media["thumbnail"]...)
	for _, g := range media["group"] {
		contents = append(contents, g.Children["content"]...)
		thumbnails = append(thumbnails, g.Children["thumbnail"]...)
	}

	for _, c := range contents {
		u := c.Attrs["url"]
		if u == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(c.Attrs["type"]), "image/") || strings.EqualFold(c.Attrs["medium"], "image") {
			return u
		}
	}
	for _, th := range thumbnails {
		if u := th.Attrs["url"]; u != "" {
			return u
		}
	}
	return ""
}

// InlineImage scans content, then description, for the first acceptable <img src>
func InlineImage(item *gofeed.Item, base *url.URL) string {
	for _, doc := range htmlFields(item) {
		var found string
		doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			src := strings.TrimSpace(s.AttrOr("src", ""))
			if !acceptableImage(src) {
				return true
			}
			if abs := resolveURL(base, src); abs != "" {
				found = abs
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// StructuredImage uses the entry-level image element
func StructuredImage(item *gofeed.Item, _ *url.URL) string {
	if item.Image != nil {
		return strings.TrimSpace(item.Image.URL)
	}
	return ""
}

// ITunesImage uses the podcast itunes:image href
func ITunesImage(item *gofeed.Item, _ *url.URL) string {
	if item.ITunesExt != nil {
		return strings.TrimSpace(item.ITunesExt.Image)
	}
	return ""
}

// MetaImage makes a strategy scraping <meta property|name=key content=...> from the content fields
func MetaImage(key string) ImageStrategy {
	selector := `meta[property="` + key + `"], meta[name="` + key + `"]`
	return func(item *gofeed.Item, base *url.URL) string {
		for _, doc := range htmlFields(item) {
			if content := strings.TrimSpace(doc.Find(selector).First().AttrOr("content", "")); content != "" {
				if abs := resolveURL(base, content); abs != "" {
					return abs
				}
			}
		}
		return ""
	}
}

// htmlFields parses the rich content and description of the entry, in that order
func htmlFields(item *gofeed.Item) []*goquery.Document {
	var res []*goquery.Document
	for _, field := range []string{item.Content, item.Description} {
		if !strings.Contains(field, "<") {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(field))
		if err != nil {
			continue
		}
		res = append(res, doc)
	}
	return res
}

// acceptableImage rejects data URIs and paths looking like icons or tracking pixels
func acceptableImage(src string) bool {
	if src == "" || strings.HasPrefix(strings.ToLower(src), "data:") {
		return false
	}
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return !strings.Contains(strings.ToLower(u.Path), "icon")
}

// resolveURL makes ref absolute against base, returns ref unchanged when base is nil
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if u.IsAbs() || base == nil {
		return u.String()
	}
	return base.ResolveReference(u).String()
}
