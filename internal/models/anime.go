package models

// Entity is the common {mal_id, name, type, url} shape Jikan uses for
// genres, studios and producers.
type Entity struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

type ImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

type Images struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

type Aired struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

type Trailer struct {
	YoutubeID *string `json:"youtube_id"`
	URL       *string `json:"url"`
	EmbedURL  *string `json:"embed_url"`
}

type Broadcast struct {
	Day      *string `json:"day"`
	Time     *string `json:"time"`
	Timezone *string `json:"timezone"`
	String   *string `json:"string"`
}

type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Anime struct {
	MalID         int        `json:"mal_id"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	TitleEnglish  *string    `json:"title_english"`
	TitleJapanese *string    `json:"title_japanese"`
	Synopsis      *string    `json:"synopsis"`
	Score         *float64   `json:"score"`
	ScoredBy      *int       `json:"scored_by"`
	Rank          *int       `json:"rank"`
	Popularity    *int       `json:"popularity"`
	Members       *int       `json:"members"`
	Favorites     *int       `json:"favorites"`
	Episodes      *int       `json:"episodes"`
	Status        string     `json:"status"`
	Airing        bool       `json:"airing"`
	Aired         Aired      `json:"aired"`
	Season        *string    `json:"season"`
	Year          *int       `json:"year"`
	Genres        []Entity   `json:"genres"`
	Studios       []Entity   `json:"studios"`
	Producers     []Entity   `json:"producers"`
	Images        Images     `json:"images"`
	Trailer       Trailer    `json:"trailer"`
	Streaming     []Link     `json:"streaming"`
	Type          string     `json:"type"`
	Source        string     `json:"source"`
	Duration      *string    `json:"duration"`
	Rating        *string    `json:"rating"`
	Broadcast     *Broadcast `json:"broadcast"`
	External      []Link     `json:"external,omitempty"`
}

type PaginationItems struct {
	Count   int `json:"count"`
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

type Pagination struct {
	LastVisiblePage int             `json:"last_visible_page"`
	HasNextPage     bool            `json:"has_next_page"`
	CurrentPage     int             `json:"current_page"`
	Items           PaginationItems `json:"items"`
}

type AnimeList struct {
	Data       []Anime    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type SingleAnime struct {
	Data Anime `json:"data"`
}

type Person struct {
	MalID  int    `json:"mal_id"`
	URL    string `json:"url"`
	Images struct {
		JPG struct {
			ImageURL string `json:"image_url"`
		} `json:"jpg"`
	} `json:"images"`
	Name string `json:"name"`
}

type VoiceActor struct {
	Person   Person `json:"person"`
	Language string `json:"language"`
}

type Character struct {
	Character struct {
		MalID  int    `json:"mal_id"`
		URL    string `json:"url"`
		Images struct {
			JPG struct {
				ImageURL string `json:"image_url"`
			} `json:"jpg"`
			WebP struct {
				ImageURL string `json:"image_url"`
			} `json:"webp"`
		} `json:"images"`
		Name string `json:"name"`
	} `json:"character"`
	Role        string       `json:"role"`
	VoiceActors []VoiceActor `json:"voice_actors"`
}

// JapaneseVoiceActor returns the first Japanese voice actor, if any.
func (c Character) JapaneseVoiceActor() (VoiceActor, bool) {
	for _, va := range c.VoiceActors {
		if va.Language == "Japanese" {
			return va, true
		}
	}
	return VoiceActor{}, false
}

type CharacterList struct {
	Data []Character `json:"data"`
}

type StaffMember struct {
	Person    Person   `json:"person"`
	Positions []string `json:"positions"`
}

type StaffList struct {
	Data []StaffMember `json:"data"`
}

type RecommendationEntry struct {
	MalID  int    `json:"mal_id"`
	URL    string `json:"url"`
	Images Images `json:"images"`
	Title  string `json:"title"`
}

type Recommendation struct {
	Entry RecommendationEntry `json:"entry"`
	URL   string              `json:"url"`
	Votes int                 `json:"votes"`
}

type RecommendationList struct {
	Data []Recommendation `json:"data"`
}

type Genre struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

type GenreList struct {
	Data []Genre `json:"data"`
}
