package models

import "time"

// HomePage groups the sections rendered on the landing page.
type HomePage struct {
	Featured []Anime
	Trending []Anime
	Popular  []Anime
	Top      []Anime
}

type StreamingLink struct {
	Name string
	URL  string
}

// AnimePage is everything the detail page needs in one response.
type AnimePage struct {
	Anime           Anime
	Characters      []Character
	Recommendations []RecommendationEntry
	Trailer         *Video
	TrailerEmbedURL string
	Streaming       []StreamingLink
	Metadata        Metadata
	StructuredData  StructuredData
}

type SerializerState string

const (
	SerializerIdle     SerializerState = "idle"
	SerializerDraining SerializerState = "draining"
	SerializerClosed   SerializerState = "closed"
)

// SerializerStatus is a snapshot of the outbound request queue.
type SerializerStatus struct {
	State        SerializerState
	Pending      int
	LastDispatch time.Time
	Dispatched   uint64
	Failed       uint64
	MinInterval  time.Duration
}
