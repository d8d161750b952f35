package jikan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/models"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
	"github.com/zhakazx/animeinfo/pkg/serializer"
)

const (
	serviceName = "jikan"

	maxRecommendations = 12
)

type Client struct {
	baseURL    string
	serializer *serializer.Serializer
	httpClient *http.Client
	userAgent  string
	cache      Cache
	retry      RetryPolicy
	logger     *zap.SugaredLogger
}

// NewClient returns a Jikan client. Every request goes through s.
func NewClient(baseURL string, s *serializer.Serializer, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serializer: s,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  DefaultUserAgent,
		retry:      DefaultRetryPolicy(),
		logger:     zap.S().Named("jikan"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchAnime GET /anime
func (c *Client) SearchAnime(ctx context.Context, params models.SearchParams) (*models.AnimeList, error) {
	var result models.AnimeList
	if err := c.fetch(ctx, "/anime?"+searchQuery(params).Encode(), SearchTTL, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAnimeByID GET /anime/{id}
func (c *Client) GetAnimeByID(ctx context.Context, id int) (*models.Anime, error) {
	var result models.SingleAnime
	if err := c.fetch(ctx, fmt.Sprintf("/anime/%d", id), AnimeDetailsTTL, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// GetAnimeCharacters GET /anime/{id}/characters
func (c *Client) GetAnimeCharacters(ctx context.Context, id int) ([]models.Character, error) {
	var result models.CharacterList
	if err := c.fetch(ctx, fmt.Sprintf("/anime/%d/characters", id), AnimeDetailsTTL, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetAnimeStaff GET /anime/{id}/staff
func (c *Client) GetAnimeStaff(ctx context.Context, id int) ([]models.StaffMember, error) {
	var result models.StaffList
	if err := c.fetch(ctx, fmt.Sprintf("/anime/%d/staff", id), AnimeDetailsTTL, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetTopAnime GET /top/anime
func (c *Client) GetTopAnime(ctx context.Context, params models.PageParams) (*models.AnimeList, error) {
	var result models.AnimeList
	if err := c.fetch(ctx, "/top/anime?"+pageQuery(params).Encode(), StaticContentTTL, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCurrentSeasonAnime GET /seasons/now
func (c *Client) GetCurrentSeasonAnime(ctx context.Context, params models.PageParams) (*models.AnimeList, error) {
	var result models.AnimeList
	if err := c.fetch(ctx, "/seasons/now?"+pageQuery(params).Encode(), TrendingPopularTTL, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPopularAnime GET /anime ordered by popularity
func (c *Client) GetPopularAnime(ctx context.Context, params models.PageParams) (*models.AnimeList, error) {
	q := pageQuery(params)
	q.Set("order_by", "popularity")
	q.Set("sort", "asc")

	var result models.AnimeList
	if err := c.fetch(ctx, "/anime?"+q.Encode(), TrendingPopularTTL, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAnimeRecommendations returns up to 12 recommended entries. Any error
// yields an empty list.
func (c *Client) GetAnimeRecommendations(ctx context.Context, id int) []models.RecommendationEntry {
	var result models.RecommendationList
	if err := c.fetch(ctx, fmt.Sprintf("/anime/%d/recommendations", id), AnimeDetailsTTL, &result); err != nil {
		c.logger.Debugw("recommendations unavailable", "anime_id", id, "error", err)
		return []models.RecommendationEntry{}
	}

	n := min(len(result.Data), maxRecommendations)
	entries := make([]models.RecommendationEntry, 0, n)
	for _, r := range result.Data[:n] {
		entries = append(entries, r.Entry)
	}
	return entries
}

// GetGenres GET /genres/anime
func (c *Client) GetGenres(ctx context.Context) ([]models.Genre, error) {
	var result models.GenreList
	if err := c.fetch(ctx, "/genres/anime", StaticContentTTL, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Status returns the state of the request serializer shared by this client.
func (c *Client) Status() models.SerializerStatus {
	return c.serializer.Status()
}

func (c *Client) fetch(ctx context.Context, endpoint string, ttl time.Duration, dest any) error {
	if c.baseURL == "" {
		return srvErrors.NewConfigurationError("jikan base url is not configured")
	}

	key := "jikan:" + endpoint
	if body, ok := c.cacheGet(ctx, key); ok {
		if err := json.Unmarshal(body, dest); err == nil {
			return nil
		}
		c.logger.Debugw("discarding undecodable cache entry", "key", key)
	}

	body, err := c.getWithRetry(ctx, c.baseURL+endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode jikan response for %s: %w", endpoint, err)
	}

	c.cacheSet(ctx, key, body, ttl)
	return nil
}

// getWithRetry submits the request to the serializer and, on 429, sleeps for
// the backoff and submits it again at the tail of the queue.
func (c *Client) getWithRetry(ctx context.Context, u string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		body, err := serializer.Do(ctx, c.serializer, func(ctx context.Context) ([]byte, error) {
			return c.get(ctx, u)
		})
		if err == nil {
			return body, nil
		}

		var rl *srvErrors.RateLimitError
		if !errors.As(err, &rl) || attempt >= c.retry.MaxRetries {
			return nil, err
		}

		c.logger.Infow("rate limited, retrying", "url", u, "attempt", attempt+1, "backoff", c.retry.Backoff)
		if err := c.retry.Sleep(ctx, c.retry.Backoff); err != nil {
			return nil, err
		}
	}
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, srvErrors.NewUpstreamUnreachableError(serviceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, srvErrors.NewRateLimitError(serviceName, retryAfter(resp.Header.Get("Retry-After")))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, srvErrors.NewUpstreamError(serviceName, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, srvErrors.NewUpstreamUnreachableError(serviceName, err)
	}
	return body, nil
}

func (c *Client) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Errorw("cache read failed", "key", key, "error", err)
		return nil, false
	}
	return body, ok
}

func (c *Client) cacheSet(ctx context.Context, key string, body []byte, ttl time.Duration) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, body, ttl); err != nil {
		c.logger.Errorw("cache write failed", "key", key, "error", err)
	}
}

func retryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func searchQuery(p models.SearchParams) url.Values {
	q := url.Values{}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(min(p.Limit, models.MaxLimit)))
	}
	if len(p.Genres) > 0 {
		ids := make([]string, 0, len(p.Genres))
		for _, g := range p.Genres {
			ids = append(ids, strconv.Itoa(g))
		}
		q.Set("genres", strings.Join(ids, ","))
	}
	switch {
	case p.StartDate != "":
		q.Set("start_date", p.StartDate)
	case p.Year > 0:
		q.Set("start_date", fmt.Sprintf("%d-01-01", p.Year))
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	setIf(q, "season", p.Season)
	setIf(q, "type", p.Type)
	setIf(q, "status", p.Status)
	setIf(q, "rating", p.Rating)
	setIf(q, "order_by", p.OrderBy)
	setIf(q, "sort", p.Sort)
	if p.MinScore != nil {
		q.Set("min_score", strconv.FormatFloat(*p.MinScore, 'f', -1, 64))
	}
	if p.MaxScore != nil {
		q.Set("max_score", strconv.FormatFloat(*p.MaxScore, 'f', -1, 64))
	}
	return q
}

func pageQuery(p models.PageParams) url.Values {
	p = p.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	return q
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
