package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/zhakazx/animeinfo/api/v1"
)

// GetHome returns the landing page sections
// (GET /home)
func (h *Handler) GetHome(c *gin.Context) {
	page, err := h.homeSrv.Home(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to load home page")
		return
	}

	c.JSON(http.StatusOK, v1.NewHomePage(*page))
}

// GetQueueStatus returns the outbound Jikan queue
// (GET /queue)
func (h *Handler) GetQueueStatus(c *gin.Context) {
	var resp v1.QueueStatus
	resp.FromModel(h.queueSrv.Status())

	c.JSON(http.StatusOK, resp)
}
