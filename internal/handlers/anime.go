package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/zhakazx/animeinfo/api/v1"
)

// SearchAnime searches the catalogue
// (GET /anime)
func (h *Handler) SearchAnime(c *gin.Context, params v1.SearchAnimeParams) {
	if err := validateSearch(params); err != nil {
		respondError(c, err, "")
		return
	}

	list, err := h.animeSrv.Search(c.Request.Context(), params.ToModel())
	if err != nil {
		respondError(c, err, "failed to search anime")
		return
	}

	c.JSON(http.StatusOK, v1.NewAnimeList(*list))
}

// (GET /anime/top)
func (h *Handler) GetTopAnime(c *gin.Context, params v1.GetTopAnimeParams) {
	if err := validateParams(params); err != nil {
		respondError(c, err, "")
		return
	}

	list, err := h.animeSrv.Top(c.Request.Context(), params.ToModel())
	if err != nil {
		respondError(c, err, "failed to get top anime")
		return
	}

	c.JSON(http.StatusOK, v1.NewAnimeList(*list))
}

// (GET /anime/popular)
func (h *Handler) GetPopularAnime(c *gin.Context, params v1.GetPopularAnimeParams) {
	if err := validateParams(params); err != nil {
		respondError(c, err, "")
		return
	}

	list, err := h.animeSrv.Popular(c.Request.Context(), params.ToModel())
	if err != nil {
		respondError(c, err, "failed to get popular anime")
		return
	}

	c.JSON(http.StatusOK, v1.NewAnimeList(*list))
}

// (GET /seasons/now)
func (h *Handler) GetCurrentSeason(c *gin.Context, params v1.GetCurrentSeasonParams) {
	if err := validateParams(params); err != nil {
		respondError(c, err, "")
		return
	}

	list, err := h.animeSrv.CurrentSeason(c.Request.Context(), params.ToModel())
	if err != nil {
		respondError(c, err, "failed to get current season")
		return
	}

	c.JSON(http.StatusOK, v1.NewAnimeList(*list))
}

// GetAnime returns the anime details
// (GET /anime/{id})
func (h *Handler) GetAnime(c *gin.Context, id int) {
	anime, err := h.animeSrv.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get anime")
		return
	}

	c.JSON(http.StatusOK, v1.NewAnimeFromModel(*anime))
}

// GetAnimePage returns everything the detail page renders
// (GET /anime/{id}/page)
func (h *Handler) GetAnimePage(c *gin.Context, id int) {
	page, err := h.animeSrv.Page(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get anime page")
		return
	}

	c.JSON(http.StatusOK, v1.NewAnimePage(*page))
}

// (GET /anime/{id}/characters)
func (h *Handler) GetAnimeCharacters(c *gin.Context, id int) {
	characters, err := h.animeSrv.Characters(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get characters")
		return
	}

	c.JSON(http.StatusOK, v1.NewCharacters(characters))
}

// (GET /anime/{id}/staff)
func (h *Handler) GetAnimeStaff(c *gin.Context, id int) {
	staff, err := h.animeSrv.Staff(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get staff")
		return
	}

	c.JSON(http.StatusOK, v1.NewStaff(staff))
}

// GetAnimeRecommendations never fails; an upstream error yields an empty list.
// (GET /anime/{id}/recommendations)
func (h *Handler) GetAnimeRecommendations(c *gin.Context, id int) {
	c.JSON(http.StatusOK, v1.NewRecommendations(h.animeSrv.Recommendations(c.Request.Context(), id)))
}

// (GET /genres)
func (h *Handler) GetGenres(c *gin.Context) {
	genres, err := h.animeSrv.Genres(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to get genres")
		return
	}

	c.JSON(http.StatusOK, v1.NewGenres(genres))
}

// GetVideo returns the YouTube details of a trailer
// (GET /videos/{id})
func (h *Handler) GetVideo(c *gin.Context, id string) {
	video, err := h.animeSrv.Video(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get video")
		return
	}

	c.JSON(http.StatusOK, video)
}
