package seo

import (
	"fmt"
	"strings"

	"github.com/zhakazx/animeinfo/internal/models"
)

const (
	DefaultSiteName = "AnimeInfo"
	DefaultSiteURL  = "https://animeinfo.zhakazx.com"

	descriptionLength = 160

	malAnimeURL = "https://myanimelist.net/anime/%d"
)

var animeKeywords = []string{"anime", "watch anime", "anime streaming", "anime information"}

// Site identifies the public site the metadata is generated for.
type Site struct {
	Name string
	URL  string
}

func DefaultSite() Site {
	return Site{Name: DefaultSiteName, URL: DefaultSiteURL}
}

func (s Site) title(prefix string) string {
	return fmt.Sprintf("%s - %s", prefix, s.Name)
}

func (s Site) abs(path string) string {
	return strings.TrimRight(s.URL, "/") + path
}

// AnimeMetadata builds the head of an anime detail page.
func AnimeMetadata(site Site, a models.Anime) models.Metadata {
	title := site.title(a.Title)

	description := fmt.Sprintf("Watch %s and discover more anime on %s. Get detailed information, ratings, and streaming links.", a.Title, site.Name)
	if a.Synopsis != nil && *a.Synopsis != "" {
		description = truncate(*a.Synopsis, descriptionLength) + "..."
	}

	keywords := append([]string{a.Title}, animeKeywords...)
	for _, g := range a.Genres {
		keywords = append(keywords, g.Name)
	}
	for _, s := range a.Studios {
		keywords = append(keywords, s.Name)
	}

	og := &models.OpenGraph{
		Title:       title,
		Description: description,
		Type:        "video.tv_show",
		URL:         site.abs(fmt.Sprintf("/anime/%d", a.MalID)),
		SiteName:    site.Name,
	}
	twitter := &models.TwitterCard{
		Card:        "summary_large_image",
		Title:       title,
		Description: description,
	}
	if img := a.Images.JPG.LargeImageURL; img != "" {
		og.Images = []models.OGImage{{URL: img, Width: 800, Height: 600, Alt: a.Title + " poster"}}
		twitter.Images = []string{img}
	}

	return models.Metadata{
		Title:       title,
		Description: description,
		Keywords:    strings.Join(keywords, ", "),
		OpenGraph:   og,
		Twitter:     twitter,
	}
}

// SearchMetadata builds the head of the search page. query may be empty.
func SearchMetadata(site Site, query string) models.Metadata {
	title := site.title("Search Anime")
	description := "Search through thousands of anime series and movies. Find your next favorite anime with our comprehensive database."
	if query != "" {
		title = site.title(fmt.Sprintf("Search results for %q", query))
		description = fmt.Sprintf("Find anime related to %q. Discover new anime series and movies with detailed information and streaming links.", query)
	}

	return models.Metadata{
		Title:       title,
		Description: description,
		OpenGraph: &models.OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			URL:         site.abs("/search"),
			SiteName:    site.Name,
		},
		Twitter: &models.TwitterCard{
			Card:        "summary",
			Title:       title,
			Description: description,
		},
	}
}

func DefaultMetadata(site Site) models.Metadata {
	title := fmt.Sprintf("%s - Discover Your Next Favorite Anime", site.Name)
	description := "Explore thousands of anime series and movies. Get detailed information, ratings, reviews, and streaming links for your favorite anime."

	return models.Metadata{
		Title:       title,
		Description: description,
		Keywords:    "anime, manga, watch anime, anime streaming, anime database, anime information, anime reviews, anime ratings",
		OpenGraph: &models.OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			URL:         site.URL,
			Locale:      "en_US",
			SiteName:    site.Name,
			Images: []models.OGImage{{
				URL:    site.abs("/og-image.jpg"),
				Width:  1200,
				Height: 630,
				Alt:    site.Name + " - Anime Database",
			}},
		},
		Twitter: &models.TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Creator:     "@animeinfo",
			Images:      []string{site.abs("/twitter-image.jpg")},
		},
		Robots: &models.Robots{Index: true, Follow: true},
	}
}

func NotFoundMetadata(site Site) models.Metadata {
	return models.Metadata{
		Title:       site.title("Anime Not Found"),
		Description: fmt.Sprintf("The requested anime could not be found. Explore other anime on %s.", site.Name),
		Robots:      &models.Robots{Index: false, Follow: true},
	}
}

// StructuredData returns the schema.org TVSeries document for a.
func StructuredData(a models.Anime) models.StructuredData {
	malURL := fmt.Sprintf(malAnimeURL, a.MalID)

	sd := models.StructuredData{
		Context:          "https://schema.org",
		Type:             "TVSeries",
		Name:             a.Title,
		Description:      a.Synopsis,
		Image:            a.Images.JPG.LargeImageURL,
		DatePublished:    a.Aired.From,
		NumberOfEpisodes: a.Episodes,
		URL:              malURL,
		SameAs:           []string{malURL},
	}

	switch {
	case a.TitleEnglish != nil && *a.TitleEnglish != "":
		sd.AlternateName = a.TitleEnglish
	case a.TitleJapanese != nil && *a.TitleJapanese != "":
		sd.AlternateName = a.TitleJapanese
	}

	for _, g := range a.Genres {
		sd.Genre = append(sd.Genre, g.Name)
	}
	for _, s := range a.Studios {
		sd.ProductionCompany = append(sd.ProductionCompany, models.Organization{Type: "Organization", Name: s.Name})
	}
	for _, l := range a.External {
		sd.SameAs = append(sd.SameAs, l.URL)
	}

	if a.Score != nil && *a.Score > 0 {
		sd.AggregateRating = &models.AggregateRating{
			Type:        "AggregateRating",
			RatingValue: *a.Score,
			RatingCount: a.ScoredBy,
			BestRating:  10,
			WorstRating: 1,
		}
	}

	return sd
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
