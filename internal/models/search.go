package models

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 25
	MinYear      = 1960
)

var (
	AnimeTypes    = []string{"tv", "movie", "ova", "special", "ona", "music"}
	AnimeStatuses = []string{"airing", "complete", "upcoming"}
	AnimeSeasons  = []string{"winter", "spring", "summer", "fall"}
	AnimeRatings  = []string{"g", "pg", "pg13", "r17", "r", "rx"}
	AnimeOrderBy  = []string{
		"mal_id", "title", "type", "rating", "start_date", "end_date", "episodes",
		"score", "scored_by", "rank", "popularity", "members", "favorites",
	}
)

// SearchParams are the filters accepted by the anime search endpoint.
// Zero values mean "not set".
type SearchParams struct {
	Query     string
	Page      int
	Limit     int
	Genres    []int
	Year      int
	Season    string
	Type      string
	Status    string
	Rating    string
	OrderBy   string
	Sort      string
	MinScore  *float64
	MaxScore  *float64
	StartDate string
	EndDate   string
}

type PageParams struct {
	Page  int
	Limit int
}

// Normalize applies the defaults and clamps the limit.
func (p PageParams) Normalize() PageParams {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
