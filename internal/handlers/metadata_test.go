package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/zhakazx/animeinfo/api/v1"
	"github.com/zhakazx/animeinfo/internal/handlers"
	"github.com/zhakazx/animeinfo/internal/models"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
)

var _ = Describe("Metadata Handlers", func() {
	var (
		mockMetadata *MockMetadataService
		router       *gin.Engine
	)

	get := func(url string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		mockMetadata = &MockMetadataService{}
		handler := handlers.New(&MockHomeService{}, &MockAnimeService{}, mockMetadata, &MockQueueService{})
		router = gin.New()
		v1.RegisterHandlersWithOptions(router, handler, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
		router.GET("/sitemap.xml", handler.GetSitemap)
	})

	Describe("GetAnimeMetadata", func() {
		It("should return metadata and structured data", func() {
			mockMetadata.AnimeResult = &models.PageMetadata{
				Metadata:       models.Metadata{Title: "Cowboy Bebop - AnimeInfo"},
				StructuredData: &models.StructuredData{Type: "TVSeries", Name: "Cowboy Bebop"},
			}

			w := get("/anime/1/metadata")

			Expect(w.Code).To(Equal(http.StatusOK))
			var response v1.PageMetadata
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Metadata.Title).To(Equal("Cowboy Bebop - AnimeInfo"))
			Expect(response.StructuredData.Name).To(Equal("Cowboy Bebop"))
		})

		// Given an anime Jikan does not know
		// When its metadata is requested
		// Then 404 is returned with the not-found metadata
		It("should return not found metadata with 404", func() {
			// Arrange
			mockMetadata.AnimeResult = &models.PageMetadata{Metadata: models.Metadata{
				Title:  "Anime Not Found - AnimeInfo",
				Robots: &models.Robots{Index: false, Follow: true},
			}}
			mockMetadata.AnimeError = srvErrors.NewAnimeNotFoundError(404)

			// Act
			w := get("/anime/404/metadata")

			// Assert
			Expect(w.Code).To(Equal(http.StatusNotFound))
			var response v1.PageMetadata
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Metadata.Title).To(Equal("Anime Not Found - AnimeInfo"))
		})

		It("should map upstream failures", func() {
			mockMetadata.AnimeError = srvErrors.NewUpstreamError("jikan", 503, "Service Unavailable")

			Expect(get("/anime/1/metadata").Code).To(Equal(http.StatusBadGateway))
		})
	})

	Describe("GetSearchMetadata", func() {
		It("should pass the query", func() {
			w := get("/search/metadata?q=bocchi")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(mockMetadata.LastQuery).To(Equal("bocchi"))
			Expect(w.Body.String()).To(ContainSubstring("search bocchi"))
		})

		It("should accept a missing query", func() {
			Expect(get("/search/metadata").Code).To(Equal(http.StatusOK))
			Expect(mockMetadata.LastQuery).To(BeEmpty())
		})
	})

	Describe("GetSitemap", func() {
		It("should render the sitemap as xml", func() {
			now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
			mockMetadata.SitemapURLs = []models.SitemapURL{{Loc: "https://animeinfo.zhakazx.com", LastModified: now, ChangeFrequency: "daily", Priority: 1}}

			w := get("/sitemap.xml")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(HavePrefix("application/xml"))
			Expect(w.Body.String()).To(ContainSubstring("<loc>https://animeinfo.zhakazx.com</loc>"))
		})
	})
})
