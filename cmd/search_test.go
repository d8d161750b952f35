package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/zhakazx/animeinfo/internal/config"
	"github.com/zhakazx/animeinfo/internal/models"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
)

const searchResponse = `{
	"data": [{
		"mal_id": 52991,
		"title": "Sousou no Frieren",
		"type": "TV",
		"episodes": 28,
		"score": 9.3,
		"aired": {"from": "2023-09-29T00:00:00+00:00"}
	}],
	"pagination": {
		"last_visible_page": 1,
		"has_next_page": false,
		"current_page": 1,
		"items": {"count": 1, "total": 1, "per_page": 10}
	}
}`

var _ = Describe("Search Command", func() {
	BeforeEach(func() {
		color.NoColor = true
		viper.Reset()
	})

	DescribeTable("validateSearchParams",
		func(p models.SearchParams, expected string) {
			err := validateSearchParams(p)
			if expected == "" {
				Expect(err).ToNot(HaveOccurred())
				return
			}
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(expected))
		},
		Entry("valid", models.SearchParams{Query: "frieren", Page: 1, Limit: 10, Type: "tv", Sort: "desc"}, ""),
		Entry("blank query", models.SearchParams{Query: "  ", Page: 1, Limit: 10}, "query cannot be empty"),
		Entry("page 0", models.SearchParams{Query: "x", Page: 0, Limit: 10}, "page must be at least 1"),
		Entry("limit 26", models.SearchParams{Query: "x", Page: 1, Limit: 26}, "limit must be between 1 and 25"),
		Entry("unknown type", models.SearchParams{Query: "x", Page: 1, Limit: 10, Type: "manga"}, "type must be one of"),
		Entry("unknown sort", models.SearchParams{Query: "x", Page: 1, Limit: 10, Sort: "up"}, "sort must be asc or desc"),
	)

	// Given a Jikan server answering a search
	// When the search command runs against it
	// Then the matching anime is printed with its score and year
	It("should print the search results", func() {
		// Arrange
		var gotQuery string
		jikan := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(searchResponse))
		}))
		defer jikan.Close()

		cfg := config.NewConfigurationWithOptionsAndDefaults()
		root := NewRootCommand(cfg)
		out := &bytes.Buffer{}
		root.SetOut(out)
		root.SetArgs([]string{
			"search", "sousou", "no", "frieren",
			"--jikan-url", jikan.URL,
			"--jikan-min-interval", "1ms",
			"--cache-backend", "none",
		})

		// Act
		err := root.Execute()

		// Assert
		Expect(err).ToNot(HaveOccurred())
		Expect(gotQuery).To(Equal("sousou no frieren"))
		Expect(out.String()).To(ContainSubstring("52991  Sousou no Frieren"))
		Expect(out.String()).To(ContainSubstring("★ 9.30"))
		Expect(out.String()).To(ContainSubstring("TV · 28 eps · 2023"))
		Expect(out.String()).To(ContainSubstring("Page 1 of 1 (1 results)"))
	})

	It("should surface upstream errors", func() {
		jikan := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer jikan.Close()

		cfg := config.NewConfigurationWithOptionsAndDefaults()
		root := NewRootCommand(cfg)
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"search", "frieren", "--jikan-url", jikan.URL, "--jikan-min-interval", "1ms", "--cache-backend", "none"})

		err := root.Execute()

		Expect(srvErrors.IsUpstreamError(err)).To(BeTrue())
	})
})

var _ = Describe("Output", func() {
	BeforeEach(func() {
		color.NoColor = true
	})

	It("should report an empty result", func() {
		out := &bytes.Buffer{}
		printAnimeList(out, &models.AnimeList{})
		Expect(out.String()).To(Equal("No anime found.\n"))
	})

	It("should print the anime page", func() {
		// Arrange
		episodes := 26
		season := "spring"
		year := 1998
		page := &models.AnimePage{
			Anime: models.Anime{
				MalID:    1,
				Title:    "Cowboy Bebop",
				Type:     "TV",
				Status:   "Finished Airing",
				Episodes: &episodes,
				Season:   &season,
				Year:     &year,
				Genres:   []models.Entity{{Name: "Action"}, {Name: "Sci-Fi"}},
			},
			Streaming:       []models.StreamingLink{{Name: "Crunchyroll", URL: "https://www.crunchyroll.com/search?q=Cowboy%20Bebop"}},
			TrailerEmbedURL: "https://www.youtube.com/embed/qig4KOK2R2g",
		}
		var c models.Character
		c.Character.Name = "Spike Spiegel"
		c.Role = "Main"
		c.VoiceActors = []models.VoiceActor{{Language: "Japanese", Person: models.Person{Name: "Yamadera, Kouichi"}}}
		page.Characters = []models.Character{c}

		// Act
		out := &bytes.Buffer{}
		printAnimePage(out, page)

		// Assert
		Expect(out.String()).To(HavePrefix("Cowboy Bebop\n"))
		Expect(out.String()).To(ContainSubstring("Episodes    26"))
		Expect(out.String()).To(ContainSubstring("Season      Spring 1998"))
		Expect(out.String()).To(ContainSubstring("Genres      Action, Sci-Fi"))
		Expect(out.String()).To(ContainSubstring("Spike Spiegel (Main) - Yamadera, Kouichi"))
		Expect(out.String()).To(ContainSubstring("Crunchyroll: https://www.crunchyroll.com/search?q=Cowboy%20Bebop"))
		Expect(out.String()).To(ContainSubstring("Trailer     https://www.youtube.com/embed/qig4KOK2R2g"))
		Expect(out.String()).ToNot(ContainSubstring("Score"))
	})
})
