package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/zhakazx/animeinfo/api/v1"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
	"github.com/zhakazx/animeinfo/pkg/seo"
)

// GetAnimeMetadata returns the head metadata and JSON-LD of a detail page.
// An unknown anime answers 404 with the not-found metadata as body.
// (GET /anime/{id}/metadata)
func (h *Handler) GetAnimeMetadata(c *gin.Context, id int) {
	md, err := h.metadataSrv.Anime(c.Request.Context(), id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) && md != nil {
			c.JSON(http.StatusNotFound, md)
			return
		}
		respondError(c, err, "failed to build metadata")
		return
	}

	c.JSON(http.StatusOK, md)
}

// (GET /search/metadata)
func (h *Handler) GetSearchMetadata(c *gin.Context, params v1.GetSearchMetadataParams) {
	var q string
	if params.Q != nil {
		q = *params.Q
	}

	c.JSON(http.StatusOK, h.metadataSrv.Search(q))
}

// GetSitemap renders /sitemap.xml. It lives outside the versioned API.
func (h *Handler) GetSitemap(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Status(http.StatusOK)
	if err := seo.WriteSitemap(c.Writer, h.metadataSrv.Sitemap()); err != nil {
		zap.S().Named("handler").Errorw("failed to write sitemap", "error", err)
	}
}
