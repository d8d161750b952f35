package v1

import (
	"github.com/zhakazx/animeinfo/internal/models"
)

func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func (q *QueueStatus) FromModel(m models.SerializerStatus) {
	q.State = QueueStatusState(m.State)
	q.Pending = m.Pending
	q.Dispatched = int64(m.Dispatched)
	q.Failed = int64(m.Failed)
	q.MinIntervalMs = m.MinInterval.Milliseconds()
	if !m.LastDispatch.IsZero() {
		t := m.LastDispatch
		q.LastDispatch = &t
	}
}

func newEntities(in []models.Entity) []Entity {
	out := make([]Entity, 0, len(in))
	for _, e := range in {
		out = append(out, Entity{Id: e.MalID, Name: e.Name, Url: optional(e.URL)})
	}
	return out
}

// NewAnimeFromModel converts a Jikan anime to its API representation.
func NewAnimeFromModel(a models.Anime) Anime {
	anime := Anime{
		Id:            a.MalID,
		Url:           a.URL,
		Title:         a.Title,
		TitleEnglish:  a.TitleEnglish,
		TitleJapanese: a.TitleJapanese,
		Synopsis:      a.Synopsis,
		Score:         a.Score,
		ScoredBy:      a.ScoredBy,
		Rank:          a.Rank,
		Popularity:    a.Popularity,
		Members:       a.Members,
		Favorites:     a.Favorites,
		Episodes:      a.Episodes,
		Status:        a.Status,
		Airing:        a.Airing,
		AiredFrom:     a.Aired.From,
		AiredTo:       a.Aired.To,
		Season:        a.Season,
		Year:          a.Year,
		Type:          a.Type,
		Source:        optional(a.Source),
		Duration:      a.Duration,
		Rating:        a.Rating,
		Genres:        newEntities(a.Genres),
		Studios:       newEntities(a.Studios),
		ImageUrl:      a.Images.JPG.ImageURL,
		LargeImageUrl: a.Images.JPG.LargeImageURL,
	}

	if a.Broadcast != nil {
		anime.Broadcast = a.Broadcast.String
	}

	t := a.Trailer
	if t.YoutubeID != nil || t.URL != nil || t.EmbedURL != nil {
		anime.Trailer = &Trailer{YoutubeId: t.YoutubeID, Url: t.URL, EmbedUrl: t.EmbedURL}
	}

	return anime
}

func NewAnimes(in []models.Anime) []Anime {
	out := make([]Anime, 0, len(in))
	for _, a := range in {
		out = append(out, NewAnimeFromModel(a))
	}
	return out
}

func NewAnimeList(l models.AnimeList) AnimeList {
	return AnimeList{
		Data: NewAnimes(l.Data),
		Pagination: Pagination{
			CurrentPage:     l.Pagination.CurrentPage,
			LastVisiblePage: l.Pagination.LastVisiblePage,
			HasNextPage:     l.Pagination.HasNextPage,
			Total:           l.Pagination.Items.Total,
		},
	}
}

func NewHomePage(h models.HomePage) HomePage {
	return HomePage{
		Featured: NewAnimes(h.Featured),
		Trending: NewAnimes(h.Trending),
		Popular:  NewAnimes(h.Popular),
		Top:      NewAnimes(h.Top),
	}
}

func NewCharacterFromModel(c models.Character) Character {
	ch := Character{
		Id:          c.Character.MalID,
		Name:        c.Character.Name,
		ImageUrl:    optional(c.Character.Images.JPG.ImageURL),
		Role:        c.Role,
		VoiceActors: make([]VoiceActor, 0, len(c.VoiceActors)),
	}
	for _, va := range c.VoiceActors {
		ch.VoiceActors = append(ch.VoiceActors, VoiceActor{
			Id:       va.Person.MalID,
			Name:     va.Person.Name,
			ImageUrl: optional(va.Person.Images.JPG.ImageURL),
			Language: va.Language,
		})
	}
	return ch
}

func NewCharacters(in []models.Character) []Character {
	out := make([]Character, 0, len(in))
	for _, c := range in {
		out = append(out, NewCharacterFromModel(c))
	}
	return out
}

func NewStaff(in []models.StaffMember) []StaffMember {
	out := make([]StaffMember, 0, len(in))
	for _, s := range in {
		positions := s.Positions
		if positions == nil {
			positions = []string{}
		}
		out = append(out, StaffMember{
			Id:        s.Person.MalID,
			Name:      s.Person.Name,
			ImageUrl:  optional(s.Person.Images.JPG.ImageURL),
			Positions: positions,
		})
	}
	return out
}

func NewRecommendations(in []models.RecommendationEntry) []Recommendation {
	out := make([]Recommendation, 0, len(in))
	for _, r := range in {
		out = append(out, Recommendation{
			Id:       r.MalID,
			Title:    r.Title,
			Url:      r.URL,
			ImageUrl: optional(r.Images.JPG.ImageURL),
		})
	}
	return out
}

func NewGenres(in []models.Genre) []Genre {
	out := make([]Genre, 0, len(in))
	for _, g := range in {
		out = append(out, Genre{Id: g.MalID, Name: g.Name, Url: optional(g.URL), Count: g.Count})
	}
	return out
}

func NewAnimePage(p models.AnimePage) AnimePage {
	page := AnimePage{
		Anime:           NewAnimeFromModel(p.Anime),
		Characters:      NewCharacters(p.Characters),
		Recommendations: NewRecommendations(p.Recommendations),
		Trailer:         p.Trailer,
		TrailerEmbedUrl: optional(p.TrailerEmbedURL),
		Streaming:       make([]StreamingLink, 0, len(p.Streaming)),
		Metadata:        p.Metadata,
		StructuredData:  p.StructuredData,
	}
	for _, s := range p.Streaming {
		page.Streaming = append(page.Streaming, StreamingLink{Name: s.Name, Url: s.URL})
	}
	return page
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// ToModel converts the query parameters to the service search filters.
func (p SearchAnimeParams) ToModel() models.SearchParams {
	return models.SearchParams{
		Query:     deref(p.Q),
		Page:      deref(p.Page),
		Limit:     deref(p.Limit),
		Genres:    deref(p.Genres),
		Year:      deref(p.Year),
		Season:    string(deref(p.Season)),
		Type:      string(deref(p.Type)),
		Status:    string(deref(p.Status)),
		Rating:    string(deref(p.Rating)),
		OrderBy:   string(deref(p.OrderBy)),
		Sort:      string(deref(p.Sort)),
		MinScore:  p.MinScore,
		MaxScore:  p.MaxScore,
		StartDate: deref(p.StartDate),
		EndDate:   deref(p.EndDate),
	}
}

func (p GetTopAnimeParams) ToModel() models.PageParams {
	return models.PageParams{Page: deref(p.Page), Limit: deref(p.Limit)}
}

func (p GetPopularAnimeParams) ToModel() models.PageParams {
	return models.PageParams{Page: deref(p.Page), Limit: deref(p.Limit)}
}

func (p GetCurrentSeasonParams) ToModel() models.PageParams {
	return models.PageParams{Page: deref(p.Page), Limit: deref(p.Limit)}
}
