// Package dateutils provides the best-effort date parsing used by the
// normalizer. SMS exports carry timestamps in a handful of layouts, so
// parsing tries a fixed list of common formats in order.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common layout constants.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutISOT     = "2006-01-02T15:04:05"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutSlashed  = "02/01/2006"
)

// CommonFormats is the ordered list of layouts tried when parsing.
var CommonFormats = []string{
	time.RFC3339,
	DateLayoutISOT,
	DateLayoutFull,
	DateLayoutISO,
	"02/01/2006 15:04:05",
	DateLayoutSlashed,
	DateLayoutEuropean,
	"2-Jan-2006",
	"Jan 2, 2006",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common formats.
// It returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// FromEpochMillis converts an epoch-milliseconds string, the timestamp
// format of SMS backup exports.
func FromEpochMillis(ms string) (time.Time, error) {
	ms = strings.TrimSpace(ms)
	if ms == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	v, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch milliseconds %q: %w", ms, err)
	}
	return time.UnixMilli(v), nil
}
