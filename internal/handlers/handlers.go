package handlers

import (
	"context"

	"github.com/zhakazx/animeinfo/internal/models"
)

type HomeService interface {
	Home(ctx context.Context) (*models.HomePage, error)
}

type AnimeService interface {
	Search(ctx context.Context, params models.SearchParams) (*models.AnimeList, error)
	Get(ctx context.Context, id int) (*models.Anime, error)
	Page(ctx context.Context, id int) (*models.AnimePage, error)
	Characters(ctx context.Context, id int) ([]models.Character, error)
	Staff(ctx context.Context, id int) ([]models.StaffMember, error)
	Recommendations(ctx context.Context, id int) []models.RecommendationEntry
	Genres(ctx context.Context) ([]models.Genre, error)
	Top(ctx context.Context, params models.PageParams) (*models.AnimeList, error)
	CurrentSeason(ctx context.Context, params models.PageParams) (*models.AnimeList, error)
	Popular(ctx context.Context, params models.PageParams) (*models.AnimeList, error)
	Video(ctx context.Context, id string) (*models.Video, error)
}

type MetadataService interface {
	Anime(ctx context.Context, id int) (*models.PageMetadata, error)
	Search(query string) models.PageMetadata
	Sitemap() []models.SitemapURL
}

// QueueService reports the outbound Jikan request queue.
type QueueService interface {
	Status() models.SerializerStatus
}

type Handler struct {
	homeSrv     HomeService
	animeSrv    AnimeService
	metadataSrv MetadataService
	queueSrv    QueueService
}

func New(homeSrv HomeService, animeSrv AnimeService, metadataSrv MetadataService, queueSrv QueueService) *Handler {
	return &Handler{
		homeSrv:     homeSrv,
		animeSrv:    animeSrv,
		metadataSrv: metadataSrv,
		queueSrv:    queueSrv,
	}
}
