package services

import (
	"context"

	"github.com/zhakazx/animeinfo/internal/models"
)

// AnimeSource is the upstream anime catalogue (the Jikan client).
type AnimeSource interface {
	SearchAnime(ctx context.Context, params models.SearchParams) (*models.AnimeList, error)
	GetAnimeByID(ctx context.Context, id int) (*models.Anime, error)
	GetAnimeCharacters(ctx context.Context, id int) ([]models.Character, error)
	GetAnimeStaff(ctx context.Context, id int) ([]models.StaffMember, error)
	GetTopAnime(ctx context.Context, params models.PageParams) (*models.AnimeList, error)
	GetCurrentSeasonAnime(ctx context.Context, params models.PageParams) (*models.AnimeList, error)
	GetPopularAnime(ctx context.Context, params models.PageParams) (*models.AnimeList, error)
	GetAnimeRecommendations(ctx context.Context, id int) []models.RecommendationEntry
	GetGenres(ctx context.Context) ([]models.Genre, error)
}

// VideoSource resolves trailer details (the YouTube client).
type VideoSource interface {
	Enabled() bool
	GetVideoDetails(ctx context.Context, id string) (*models.Video, error)
}
