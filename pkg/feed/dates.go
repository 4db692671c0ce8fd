package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// rfc2822Layouts are the RFC-2822 style layouts seen in RSS pubDate fields, most common first
var rfc2822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04 -0700",
	"Mon, 02 Jan 2006 15:04:05 Z",
	"02 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
}

// rfc2822Zones are the named zones RFC-2822 defines, time.Parse only knows their abbreviations at offset 0
var rfc2822Zones = map[string]string{
	"UT":  "+0000",
	"EST": "-0500", "EDT": "-0400",
	"CST": "-0600", "CDT": "-0500",
	"MST": "-0700", "MDT": "-0600",
	"PST": "-0800", "PDT": "-0700",
}

// DateNormalizer converts publication date strings into timestamps.
// It never fails: unparseable or empty input normalizes to the current time.
type DateNormalizer struct {
	now func() time.Time
}

// NewDateNormalizer makes a normalizer falling back to wall-clock time
func NewDateNormalizer() *DateNormalizer {
	return &DateNormalizer{now: time.Now}
}

// Normalize returns the UTC timestamp for s, first success wins:
// RFC-2822 layouts, then flexible parsing (ISO-8601 variants, partial dates, named months), then now.
func (d *DateNormalizer) Normalize(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return d.now().UTC()
	}
	s = numericZone(s)

	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}

	if t, err := parseFlexible(s); err == nil && !t.IsZero() {
		return t.UTC()
	}

	return d.now().UTC()
}

// parseFlexible wraps dateparse, converting its panics on pathological input into errors
func parseFlexible(s string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse date %q: %v", s, r)
		}
	}()
	return dateparse.ParseIn(s, time.UTC)
}

// numericZone replaces a trailing RFC-2822 zone name with its numeric offset
func numericZone(s string) string {
	idx := strings.LastIndexByte(s, ' ')
	if idx < 0 {
		return s
	}
	if offset, ok := rfc2822Zones[strings.ToUpper(s[idx+1:])]; ok {
		return s[:idx+1] + offset
	}
	return s
}
