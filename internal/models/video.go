package models

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Thumbnails struct {
	Default  Thumbnail  `json:"default"`
	Medium   Thumbnail  `json:"medium"`
	High     Thumbnail  `json:"high"`
	Standard *Thumbnail `json:"standard,omitempty"`
	Maxres   *Thumbnail `json:"maxres,omitempty"`
}

type VideoSnippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
}

type VideoContentDetails struct {
	Duration string `json:"duration"`
}

type Video struct {
	ID             string              `json:"id"`
	Snippet        VideoSnippet        `json:"snippet"`
	ContentDetails VideoContentDetails `json:"contentDetails"`
}

type VideoList struct {
	Items []Video `json:"items"`
}

type SearchResultID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type SearchResult struct {
	ID      SearchResultID `json:"id"`
	Snippet VideoSnippet   `json:"snippet"`
}

type SearchResultList struct {
	Items []SearchResult `json:"items"`
}
