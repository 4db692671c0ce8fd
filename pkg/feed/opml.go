package feed

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/umputun/feedstash/pkg/domain"
)

// OPML represents the root element of an OPML 2.0 subscription list
type OPML struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    OPMLHead `xml:"head"`
	Body    OPMLBody `xml:"body"`
}

// OPMLHead is the document header
type OPMLHead struct {
	Title       string `xml:"title"`
	DateCreated string `xml:"dateCreated"`
}

// OPMLBody holds top-level outlines
type OPMLBody struct {
	Outlines []Outline `xml:"outline"`
}

// Outline is either a folder (with children) or a feed subscription
type Outline struct {
	Text     string    `xml:"text,attr"`
	Title    string    `xml:"title,attr,omitempty"`
	Type     string    `xml:"type,attr,omitempty"`
	XMLURL   string    `xml:"xmlUrl,attr,omitempty"`
	HTMLURL  string    `xml:"htmlUrl,attr,omitempty"`
	Outlines []Outline `xml:"outline,omitempty"`
}

// OPMLExporter renders subscriptions as OPML
type OPMLExporter struct {
	title string
	now   func() time.Time
}

// NewOPMLExporter makes an exporter with the given document title
func NewOPMLExporter(title string) *OPMLExporter {
	if title == "" {
		title = "Feedstash Subscriptions"
	}
	return &OPMLExporter{title: title, now: time.Now}
}

// Export groups feeds by folder, unfiled feeds go to the top level after folders.
// Folders without feeds are kept as empty outlines.
func (e *OPMLExporter) Export(folders []domain.Folder, feeds []domain.Feed) ([]byte, error) {
	byFolder := make(map[int64][]Outline, len(folders))
	var unfiled []Outline
	for _, f := range feeds {
		o := feedOutline(f)
		if f.FolderID == nil {
			unfiled = append(unfiled, o)
			continue
		}
		byFolder[*f.FolderID] = append(byFolder[*f.FolderID], o)
	}

	sorted := make([]domain.Folder, len(folders))
	copy(sorted, folders)
	sort.Slice(sorted, func(i, j int) bool { return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name) })

	outlines := make([]Outline, 0, len(sorted)+len(unfiled))
	known := make(map[int64]bool, len(sorted))
	for _, folder := range sorted {
		known[folder.ID] = true
		outlines = append(outlines, Outline{Text: folder.Name, Title: folder.Name, Outlines: byFolder[folder.ID]})
	}
	// feeds pointing to a folder we weren't given are exported unfiled
	for id, items := range byFolder {
		if !known[id] {
			unfiled = append(unfiled, items...)
		}
	}
	sort.SliceStable(unfiled, func(i, j int) bool { return strings.ToLower(unfiled[i].Text) < strings.ToLower(unfiled[j].Text) })
	outlines = append(outlines, unfiled...)

	doc := OPML{
		Version: "2.0",
		Head:    OPMLHead{Title: e.title, DateCreated: e.now().UTC().Format(time.RFC1123Z)},
		Body:    OPMLBody{Outlines: outlines},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal OPML: %w", err)
	}
	return append([]byte(xml.Header), output...), nil
}

func feedOutline(f domain.Feed) Outline {
	title := f.Title
	if title == "" {
		title = f.URL
	}
	return Outline{Text: title, Title: title, Type: "rss", XMLURL: f.URL, HTMLURL: f.SiteURL}
}
