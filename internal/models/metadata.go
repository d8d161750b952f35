package models

import "time"

type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
}

type OpenGraph struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	URL         string    `json:"url,omitempty"`
	Locale      string    `json:"locale,omitempty"`
	SiteName    string    `json:"siteName"`
	Images      []OGImage `json:"images,omitempty"`
}

type TwitterCard struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Creator     string   `json:"creator,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// Metadata is the head content of a rendered page.
type Metadata struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Keywords    string       `json:"keywords,omitempty"`
	OpenGraph   *OpenGraph   `json:"openGraph,omitempty"`
	Twitter     *TwitterCard `json:"twitter,omitempty"`
	Robots      *Robots      `json:"robots,omitempty"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	RatingCount *int    `json:"ratingCount,omitempty"`
	BestRating  int     `json:"bestRating"`
	WorstRating int     `json:"worstRating"`
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// StructuredData is a schema.org TVSeries JSON-LD document.
type StructuredData struct {
	Context           string           `json:"@context"`
	Type              string           `json:"@type"`
	Name              string           `json:"name"`
	AlternateName     *string          `json:"alternateName,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Image             string           `json:"image,omitempty"`
	Genre             []string         `json:"genre,omitempty"`
	DatePublished     *string          `json:"datePublished,omitempty"`
	NumberOfEpisodes  *int             `json:"numberOfEpisodes,omitempty"`
	AggregateRating   *AggregateRating `json:"aggregateRating,omitempty"`
	ProductionCompany []Organization   `json:"productionCompany,omitempty"`
	URL               string           `json:"url"`
	SameAs            []string         `json:"sameAs"`
}

// PageMetadata is the metadata of one page plus its JSON-LD document, if any.
type PageMetadata struct {
	Metadata       Metadata        `json:"metadata"`
	StructuredData *StructuredData `json:"structuredData,omitempty"`
}

type SitemapURL struct {
	Loc             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}
