package jikan

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/zhakazx/animeinfo/internal/models"
)

var youtubeURLRegexp = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// Platforms are the streaming services linked from the detail page.
var Platforms = []string{
	"Crunchyroll",
	"Muse Indonesia",
	"Bilibili",
	"Funimation",
	"Netflix",
	"Hulu",
	"Amazon Prime Video",
}

// YouTubeVideoID extracts the 11 character video id from a youtube.com or
// youtu.be URL.
func YouTubeVideoID(u string) (string, bool) {
	if u == "" {
		return "", false
	}
	m := youtubeURLRegexp.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// TrailerVideoID returns the trailer's YouTube id, falling back to parsing
// the trailer URLs.
func TrailerVideoID(a models.Anime) (string, bool) {
	if a.Trailer.YoutubeID != nil && *a.Trailer.YoutubeID != "" {
		return *a.Trailer.YoutubeID, true
	}
	for _, u := range []*string{a.Trailer.URL, a.Trailer.EmbedURL} {
		if u == nil {
			continue
		}
		if id, ok := YouTubeVideoID(*u); ok {
			return id, true
		}
	}
	return "", false
}

// StreamingURL returns the search page for name on platform. Unknown
// platforms get a web search.
func StreamingURL(name, platform string) string {
	q := escape(name)

	switch strings.ToLower(platform) {
	case "crunchyroll":
		return "https://www.crunchyroll.com/search?q=" + q
	case "muse indonesia":
		return "https://www.youtube.com/c/MuseIndonesiaOfficial/search?query=" + q
	case "bilibili":
		return "https://www.bilibili.tv/en/search?keyword=" + q
	case "funimation":
		return "https://www.funimation.com/search/?q=" + q
	case "netflix":
		return "https://www.netflix.com/search?q=" + q
	case "hulu":
		return "https://www.hulu.com/search?q=" + q
	case "amazon prime video":
		return "https://www.amazon.com/s?k=" + q + "&i=prime-instant-video"
	default:
		return "https://www.google.com/search?q=" + q + "+anime+watch+online"
	}
}

// StreamingLinks builds one link per known platform for the anime title.
func StreamingLinks(a models.Anime) []models.StreamingLink {
	links := make([]models.StreamingLink, 0, len(Platforms))
	for _, p := range Platforms {
		links = append(links, models.StreamingLink{Name: p, URL: StreamingURL(a.Title, p)})
	}
	return links
}

// escape percent-encodes s like a URI component (spaces become %20).
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
