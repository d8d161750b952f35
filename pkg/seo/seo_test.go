package seo_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhakazx/animeinfo/internal/models"
	"github.com/zhakazx/animeinfo/pkg/seo"
)

func ptr[T any](v T) *T { return &v }

func frieren() models.Anime {
	return models.Anime{
		MalID:         52991,
		Title:         "Sousou no Frieren",
		TitleEnglish:  ptr("Frieren: Beyond Journey's End"),
		TitleJapanese: ptr("葬送のフリーレン"),
		Synopsis:      ptr(strings.Repeat("a", 200)),
		Score:         ptr(9.3),
		ScoredBy:      ptr(500000),
		Episodes:      ptr(28),
		Aired:         models.Aired{From: ptr("2023-09-29T00:00:00+00:00")},
		Genres:        []models.Entity{{Name: "Adventure"}, {Name: "Drama"}},
		Studios:       []models.Entity{{Name: "Madhouse"}},
		Images:        models.Images{JPG: models.ImageSet{LargeImageURL: "https://cdn.example/52991l.jpg"}},
		External:      []models.Link{{Name: "Official Site", URL: "https://frieren-anime.jp"}},
	}
}

var _ = Describe("Metadata", func() {
	site := seo.DefaultSite()

	Context("AnimeMetadata", func() {
		It("should build title, description and keywords", func() {
			// Act
			md := seo.AnimeMetadata(site, frieren())

			// Assert
			Expect(md.Title).To(Equal("Sousou no Frieren - AnimeInfo"))
			Expect(md.Description).To(Equal(strings.Repeat("a", 160) + "..."))
			Expect(md.Keywords).To(Equal("Sousou no Frieren, anime, watch anime, anime streaming, anime information, Adventure, Drama, Madhouse"))
		})

		It("should use the large jpg for social cards", func() {
			// Act
			md := seo.AnimeMetadata(site, frieren())

			// Assert
			Expect(md.OpenGraph.Type).To(Equal("video.tv_show"))
			Expect(md.OpenGraph.SiteName).To(Equal("AnimeInfo"))
			Expect(md.OpenGraph.URL).To(Equal("https://animeinfo.zhakazx.com/anime/52991"))
			Expect(md.OpenGraph.Images).To(ConsistOf(models.OGImage{
				URL:    "https://cdn.example/52991l.jpg",
				Width:  800,
				Height: 600,
				Alt:    "Sousou no Frieren poster",
			}))
			Expect(md.Twitter.Card).To(Equal("summary_large_image"))
			Expect(md.Twitter.Images).To(Equal([]string{"https://cdn.example/52991l.jpg"}))
		})

		// Given an anime without a synopsis or image
		// When building its metadata
		// Then the fallback description is used and no images are attached
		It("should fall back when synopsis and image are missing", func() {
			// Arrange
			a := models.Anime{MalID: 1, Title: "Cowboy Bebop"}

			// Act
			md := seo.AnimeMetadata(site, a)

			// Assert
			Expect(md.Description).To(Equal("Watch Cowboy Bebop and discover more anime on AnimeInfo. Get detailed information, ratings, and streaming links."))
			Expect(md.OpenGraph.Images).To(BeEmpty())
			Expect(md.Twitter.Images).To(BeEmpty())
		})

		It("should cut multi-byte synopses on rune boundaries", func() {
			a := frieren()
			a.Synopsis = ptr(strings.Repeat("葬", 161))

			md := seo.AnimeMetadata(site, a)

			Expect([]rune(md.Description)).To(HaveLen(163))
		})
	})

	Context("SearchMetadata", func() {
		It("should describe a query", func() {
			md := seo.SearchMetadata(site, "bocchi")

			Expect(md.Title).To(Equal(`Search results for "bocchi" - AnimeInfo`))
			Expect(md.Description).To(HavePrefix(`Find anime related to "bocchi".`))
			Expect(md.Twitter.Card).To(Equal("summary"))
		})

		It("should describe the empty search page", func() {
			md := seo.SearchMetadata(site, "")

			Expect(md.Title).To(Equal("Search Anime - AnimeInfo"))
			Expect(md.OpenGraph.Type).To(Equal("website"))
		})
	})

	It("should build default and not found metadata", func() {
		def := seo.DefaultMetadata(site)
		nf := seo.NotFoundMetadata(site)

		Expect(def.Title).To(Equal("AnimeInfo - Discover Your Next Favorite Anime"))
		Expect(def.OpenGraph.Images[0].URL).To(Equal("https://animeinfo.zhakazx.com/og-image.jpg"))
		Expect(def.Robots.Index).To(BeTrue())
		Expect(nf.Title).To(Equal("Anime Not Found - AnimeInfo"))
		Expect(nf.Robots.Index).To(BeFalse())
	})

	Context("StructuredData", func() {
		It("should describe the anime as a TVSeries", func() {
			// Act
			sd := seo.StructuredData(frieren())

			// Assert
			Expect(sd.Context).To(Equal("https://schema.org"))
			Expect(sd.Type).To(Equal("TVSeries"))
			Expect(*sd.AlternateName).To(Equal("Frieren: Beyond Journey's End"))
			Expect(sd.Genre).To(Equal([]string{"Adventure", "Drama"}))
			Expect(sd.ProductionCompany).To(Equal([]models.Organization{{Type: "Organization", Name: "Madhouse"}}))
			Expect(sd.URL).To(Equal("https://myanimelist.net/anime/52991"))
			Expect(sd.SameAs).To(Equal([]string{"https://myanimelist.net/anime/52991", "https://frieren-anime.jp"}))
			Expect(sd.AggregateRating).To(Equal(&models.AggregateRating{
				Type:        "AggregateRating",
				RatingValue: 9.3,
				RatingCount: ptr(500000),
				BestRating:  10,
				WorstRating: 1,
			}))
		})

		// Given an anime without a score
		// When rendering its JSON-LD
		// Then there is no aggregateRating and the japanese title is the alternate name
		It("should omit the rating when there is no score", func() {
			// Arrange
			a := frieren()
			a.Score = nil
			a.TitleEnglish = nil

			// Act
			b, err := json.Marshal(seo.StructuredData(a))

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).NotTo(ContainSubstring("aggregateRating"))
			Expect(string(b)).To(ContainSubstring(`"@type":"TVSeries"`))
			Expect(string(b)).To(ContainSubstring(`"alternateName":"葬送のフリーレン"`))
		})
	})
})

var _ = Describe("Sitemap", func() {
	It("should list the home and search pages", func() {
		now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

		urls := seo.Sitemap(seo.DefaultSite(), now)

		Expect(urls).To(Equal([]models.SitemapURL{
			{Loc: "https://animeinfo.zhakazx.com", LastModified: now, ChangeFrequency: "daily", Priority: 1},
			{Loc: "https://animeinfo.zhakazx.com/search", LastModified: now, ChangeFrequency: "weekly", Priority: 0.8},
		}))
	})

	It("should render sitemap xml", func() {
		// Arrange
		now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
		var buf bytes.Buffer

		// Act
		err := seo.WriteSitemap(&buf, seo.Sitemap(seo.DefaultSite(), now))

		// Assert
		Expect(err).NotTo(HaveOccurred())
		out := buf.String()
		Expect(out).To(HavePrefix(`<?xml version="1.0" encoding="UTF-8"?>`))
		Expect(out).To(ContainSubstring(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`))
		Expect(out).To(ContainSubstring("<loc>https://animeinfo.zhakazx.com/search</loc>"))
		Expect(out).To(ContainSubstring("<lastmod>2024-04-01T12:00:00Z</lastmod>"))
		Expect(out).To(ContainSubstring("<changefreq>daily</changefreq>"))
		Expect(out).To(ContainSubstring("<priority>0.8</priority>"))
		Expect(out).To(ContainSubstring("<priority>1.0</priority>"))
	})
})
