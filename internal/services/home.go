package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/models"
	"github.com/zhakazx/animeinfo/pkg/scheduler"
)

const (
	featuredLimit = 5
	sectionLimit  = 12
)

type HomeService struct {
	scheduler *scheduler.Scheduler
	source    AnimeSource
	logger    *zap.SugaredLogger
}

func NewHomeService(s *scheduler.Scheduler, source AnimeSource) *HomeService {
	return &HomeService{
		scheduler: s,
		source:    source,
		logger:    zap.S().Named("home_service"),
	}
}

type homeSection struct {
	name  string
	dest  *[]models.Anime
	fetch func(ctx context.Context) (*models.AnimeList, error)
}

// Home loads the four landing page sections concurrently. A failing section
// is left empty; the call fails only when every section failed.
func (h *HomeService) Home(ctx context.Context) (*models.HomePage, error) {
	page := &models.HomePage{
		Featured: []models.Anime{},
		Trending: []models.Anime{},
		Popular:  []models.Anime{},
		Top:      []models.Anime{},
	}

	sections := []homeSection{
		{"featured", &page.Featured, func(ctx context.Context) (*models.AnimeList, error) {
			return h.source.GetTopAnime(ctx, models.PageParams{Limit: featuredLimit})
		}},
		{"trending", &page.Trending, func(ctx context.Context) (*models.AnimeList, error) {
			return h.source.GetCurrentSeasonAnime(ctx, models.PageParams{Limit: sectionLimit})
		}},
		{"popular", &page.Popular, func(ctx context.Context) (*models.AnimeList, error) {
			return h.source.GetPopularAnime(ctx, models.PageParams{Limit: sectionLimit})
		}},
		{"top", &page.Top, func(ctx context.Context) (*models.AnimeList, error) {
			return h.source.GetTopAnime(ctx, models.PageParams{Limit: sectionLimit})
		}},
	}

	futures := make([]*scheduler.Future, 0, len(sections))
	for _, s := range sections {
		fetch := s.fetch
		futures = append(futures, h.scheduler.AddWork(ctx, func(ctx context.Context) (any, error) {
			return fetch(ctx)
		}))
	}

	var firstErr error
	failed := 0
	for i, f := range futures {
		result, err := f.Wait(ctx)
		if err == nil {
			err = result.Err
		}
		if err != nil {
			h.logger.Errorw("failed to load home section", "section", sections[i].name, "error", err)
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if list, ok := result.Data.(*models.AnimeList); ok && list != nil && list.Data != nil {
			*sections[i].dest = list.Data
		}
	}

	if failed == len(sections) {
		return nil, firstErr
	}
	return page, nil
}
