// Package format turns Jikan values into display strings.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	durationRegexp = regexp.MustCompile(`(?i)(\d+)\s*(min|hr|hour|sec)`)

	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)

	dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

	statuses = map[string]string{
		"currently_airing": "Currently Airing",
		"finished_airing":  "Finished Airing",
		"not_yet_aired":    "Not Yet Aired",
	}

	types = map[string]string{
		"tv":      "TV",
		"ova":     "OVA",
		"movie":   "Movie",
		"special": "Special",
		"ona":     "ONA",
		"music":   "Music",
	}
)

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date formats an ISO date as "January 2, 2006". Unparsable input is
// returned unchanged.
func Date(s string) string {
	if s == "" {
		return ""
	}
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format("January 2, 2006")
}

func Year(s string) string {
	if s == "" {
		return ""
	}
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return strconv.Itoa(t.Year())
}

// Score renders a score with two decimals, or "" when unscored.
func Score(score *float64) string {
	if score == nil || *score == 0 {
		return ""
	}
	return strconv.FormatFloat(*score, 'f', 2, 64)
}

// Duration shortens "24 min per ep" to "24 min".
func Duration(d string) string {
	if d == "" {
		return ""
	}
	m := durationRegexp.FindStringSubmatch(d)
	if m == nil {
		return d
	}
	return m[1] + " " + strings.ToLower(m[2])
}

// Number adds thousands separators.
func Number(n int) string {
	if n == 0 {
		return ""
	}
	return printer.Sprintf("%d", n)
}

// RelativeTime describes how long before now the date s was.
func RelativeTime(s string, now time.Time) string {
	if s == "" {
		return ""
	}
	t, ok := parseDate(s)
	if !ok {
		return s
	}

	secs := int64(now.Sub(t).Seconds())
	switch {
	case secs < 60:
		return "Just now"
	case secs < 3600:
		return fmt.Sprintf("%d minutes ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%d hours ago", secs/3600)
	case secs < 2592000:
		return fmt.Sprintf("%d days ago", secs/86400)
	case secs < 31536000:
		return fmt.Sprintf("%d months ago", secs/2592000)
	default:
		return fmt.Sprintf("%d years ago", secs/31536000)
	}
}

// Season renders ("spring", 2024) as "Spring 2024".
func Season(season string, year int) string {
	if season == "" || year == 0 {
		return ""
	}
	return fmt.Sprintf("%s %d", title.String(season), year)
}

func Status(s string) string {
	if v, ok := statuses[s]; ok {
		return v
	}
	return s
}

func Type(t string) string {
	if v, ok := types[strings.ToLower(t)]; ok {
		return v
	}
	return t
}
