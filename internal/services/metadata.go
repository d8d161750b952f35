package services

import (
	"context"
	"time"

	"github.com/zhakazx/animeinfo/internal/models"
	"github.com/zhakazx/animeinfo/pkg/seo"
)

type MetadataService struct {
	source AnimeSource
	site   seo.Site
	now    func() time.Time
}

func NewMetadataService(source AnimeSource, site seo.Site) *MetadataService {
	return &MetadataService{
		source: source,
		site:   site,
		now:    time.Now,
	}
}

// Anime returns the detail page metadata. An unknown anime yields the
// not-found metadata together with the ResourceNotFoundError.
func (m *MetadataService) Anime(ctx context.Context, id int) (*models.PageMetadata, error) {
	anime, err := m.source.GetAnimeByID(ctx, id)
	if err != nil {
		err = notFoundOr(err, id)
		return &models.PageMetadata{Metadata: seo.NotFoundMetadata(m.site)}, err
	}

	sd := seo.StructuredData(*anime)
	return &models.PageMetadata{
		Metadata:       seo.AnimeMetadata(m.site, *anime),
		StructuredData: &sd,
	}, nil
}

func (m *MetadataService) Search(query string) models.PageMetadata {
	return models.PageMetadata{Metadata: seo.SearchMetadata(m.site, query)}
}

func (m *MetadataService) Default() models.PageMetadata {
	return models.PageMetadata{Metadata: seo.DefaultMetadata(m.site)}
}

func (m *MetadataService) Sitemap() []models.SitemapURL {
	return seo.Sitemap(m.site, m.now())
}
