package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/models"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
	"github.com/zhakazx/animeinfo/pkg/jikan"
	"github.com/zhakazx/animeinfo/pkg/scheduler"
	"github.com/zhakazx/animeinfo/pkg/seo"
	"github.com/zhakazx/animeinfo/pkg/youtube"
)

const maxPageCharacters = 12

type AnimeService struct {
	scheduler *scheduler.Scheduler
	source    AnimeSource
	videos    VideoSource
	site      seo.Site
	logger    *zap.SugaredLogger
}

// NewAnimeService builds the service. videos may be nil.
func NewAnimeService(s *scheduler.Scheduler, source AnimeSource, videos VideoSource, site seo.Site) *AnimeService {
	return &AnimeService{
		scheduler: s,
		source:    source,
		videos:    videos,
		site:      site,
		logger:    zap.S().Named("anime_service"),
	}
}

func (a *AnimeService) Search(ctx context.Context, params models.SearchParams) (*models.AnimeList, error) {
	return a.source.SearchAnime(ctx, params)
}

// Get returns the anime or a ResourceNotFoundError when Jikan does not know it.
func (a *AnimeService) Get(ctx context.Context, id int) (*models.Anime, error) {
	anime, err := a.source.GetAnimeByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return anime, nil
}

func (a *AnimeService) Characters(ctx context.Context, id int) ([]models.Character, error) {
	characters, err := a.source.GetAnimeCharacters(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return characters, nil
}

func (a *AnimeService) Staff(ctx context.Context, id int) ([]models.StaffMember, error) {
	staff, err := a.source.GetAnimeStaff(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return staff, nil
}

func (a *AnimeService) Recommendations(ctx context.Context, id int) []models.RecommendationEntry {
	return a.source.GetAnimeRecommendations(ctx, id)
}

func (a *AnimeService) Genres(ctx context.Context) ([]models.Genre, error) {
	return a.source.GetGenres(ctx)
}

func (a *AnimeService) Top(ctx context.Context, params models.PageParams) (*models.AnimeList, error) {
	return a.source.GetTopAnime(ctx, params)
}

func (a *AnimeService) CurrentSeason(ctx context.Context, params models.PageParams) (*models.AnimeList, error) {
	return a.source.GetCurrentSeasonAnime(ctx, params)
}

func (a *AnimeService) Popular(ctx context.Context, params models.PageParams) (*models.AnimeList, error) {
	return a.source.GetPopularAnime(ctx, params)
}

// Video returns the YouTube details of a video.
func (a *AnimeService) Video(ctx context.Context, id string) (*models.Video, error) {
	if a.videos == nil || !a.videos.Enabled() {
		return nil, srvErrors.NewConfigurationError("youtube api key not configured")
	}
	if !youtube.IsValidVideoID(id) {
		return nil, srvErrors.NewValidationError("invalid video id %q", id)
	}
	return a.videos.GetVideoDetails(ctx, id)
}

// Page composes the detail page. The anime itself must load; characters,
// recommendations and the trailer are best effort.
func (a *AnimeService) Page(ctx context.Context, id int) (*models.AnimePage, error) {
	anime, err := a.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	charactersF := a.scheduler.AddWork(ctx, func(ctx context.Context) (any, error) {
		return a.source.GetAnimeCharacters(ctx, id)
	})
	recommendationsF := a.scheduler.AddWork(ctx, func(ctx context.Context) (any, error) {
		return a.source.GetAnimeRecommendations(ctx, id), nil
	})

	var trailerF *scheduler.Future
	trailerID, hasTrailer := jikan.TrailerVideoID(*anime)
	if hasTrailer && a.videos != nil && a.videos.Enabled() {
		trailerF = a.scheduler.AddWork(ctx, func(ctx context.Context) (any, error) {
			return a.videos.GetVideoDetails(ctx, trailerID)
		})
	}

	sd := seo.StructuredData(*anime)
	page := &models.AnimePage{
		Anime:           *anime,
		Characters:      []models.Character{},
		Recommendations: []models.RecommendationEntry{},
		Streaming:       jikan.StreamingLinks(*anime),
		Metadata:        seo.AnimeMetadata(a.site, *anime),
		StructuredData:  sd,
	}
	if hasTrailer {
		page.TrailerEmbedURL = youtube.EmbedURL(trailerID)
	}

	if v, err := await[[]models.Character](ctx, charactersF); err != nil {
		a.logger.Errorw("failed to load characters", "anime_id", id, "error", err)
	} else {
		page.Characters = pageCharacters(v)
	}

	if v, err := await[[]models.RecommendationEntry](ctx, recommendationsF); err == nil && v != nil {
		page.Recommendations = v
	}

	if trailerF != nil {
		if v, err := await[*models.Video](ctx, trailerF); err != nil {
			a.logger.Warnw("failed to load trailer", "anime_id", id, "video_id", trailerID, "error", err)
		} else {
			page.Trailer = v
		}
	}

	return page, nil
}

// pageCharacters keeps the first 12 characters and only their first
// Japanese voice actor.
func pageCharacters(all []models.Character) []models.Character {
	n := min(len(all), maxPageCharacters)
	out := make([]models.Character, 0, n)
	for _, c := range all[:n] {
		if va, ok := c.JapaneseVoiceActor(); ok {
			c.VoiceActors = []models.VoiceActor{va}
		} else {
			c.VoiceActors = []models.VoiceActor{}
		}
		out = append(out, c)
	}
	return out
}

func await[T any](ctx context.Context, f *scheduler.Future) (T, error) {
	var zero T

	result, err := f.Wait(ctx)
	if err != nil {
		return zero, err
	}
	if result.Err != nil {
		return zero, result.Err
	}
	v, _ := result.Data.(T)
	return v, nil
}

func notFoundOr(err error, id int) error {
	if srvErrors.UpstreamStatusCode(err) == http.StatusNotFound {
		return srvErrors.NewAnimeNotFoundError(id)
	}
	return err
}
