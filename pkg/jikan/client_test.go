package jikan_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhakazx/animeinfo/internal/models"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
	"github.com/zhakazx/animeinfo/pkg/jikan"
	"github.com/zhakazx/animeinfo/pkg/serializer"
)

// fakeJikan records every request and answers with the registered handler.
type fakeJikan struct {
	mu       sync.Mutex
	requests []*http.Request
	handler  func(w http.ResponseWriter, r *http.Request, n int)
}

func (f *fakeJikan) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r)
	n := len(f.requests)
	f.mu.Unlock()
	f.handler(w, r, n)
}

func (f *fakeJikan) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		paths = append(paths, r.URL.Path)
	}
	return paths
}

func (f *fakeJikan) last() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

// mapCache is an in-memory jikan.Cache.
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.entries[key]
	return b, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = body
	m.ttls[key] = ttl
	return nil
}

const animeBody = `{"data":{"mal_id":%d,"title":"Anime %d","status":"Finished Airing","type":"TV"}}`

var _ = Describe("Client", func() {
	var (
		fake   *fakeJikan
		srv    *httptest.Server
		s      *serializer.Serializer
		sleeps []time.Duration
		sleep  jikan.SleepFunc
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = &fakeJikan{handler: func(w http.ResponseWriter, r *http.Request, _ int) {
			_, _ = fmt.Fprint(w, `{"data":[],"pagination":{"current_page":1}}`)
		}}
		srv = httptest.NewServer(fake)
		s = serializer.New(serializer.WithMinInterval(10 * time.Millisecond))
		sleeps = nil
		sleep = func(ctx context.Context, d time.Duration) error {
			sleeps = append(sleeps, d)
			return nil
		}
	})

	AfterEach(func() {
		s.Close()
		srv.Close()
	})

	newClient := func(opts ...jikan.Option) *jikan.Client {
		opts = append([]jikan.Option{jikan.WithRetryPolicy(jikan.RetryPolicy{
			MaxRetries: 1,
			Backoff:    time.Second,
			Sleep:      sleep,
		})}, opts...)
		return jikan.NewClient(srv.URL, s, opts...)
	}

	Context("Requests", func() {
		// Given a client
		// When any request is sent
		// Then it carries the JSON accept header and the user agent
		It("should send accept and user agent headers", func() {
			// Arrange
			c := newClient()

			// Act
			_, err := c.GetGenres(ctx)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			req := fake.last()
			Expect(req.URL.Path).To(Equal("/genres/anime"))
			Expect(req.Header.Get("Accept")).To(Equal("application/json"))
			Expect(req.Header.Get("User-Agent")).To(Equal("AnimeInfo-App/1.0"))
		})

		// Given search params with a year, genres and a limit above 25
		// When searching
		// Then the query maps year to start_date, joins genres and clamps the limit
		It("should build the search query", func() {
			// Arrange
			c := newClient()
			minScore := 7.5

			// Act
			_, err := c.SearchAnime(ctx, models.SearchParams{
				Query:    "frieren",
				Page:     2,
				Limit:    50,
				Genres:   []int{1, 10},
				Year:     2023,
				Type:     "tv",
				OrderBy:  "score",
				Sort:     "desc",
				MinScore: &minScore,
			})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			q := fake.last().URL.Query()
			Expect(fake.last().URL.Path).To(Equal("/anime"))
			Expect(q.Get("q")).To(Equal("frieren"))
			Expect(q.Get("page")).To(Equal("2"))
			Expect(q.Get("limit")).To(Equal("25"))
			Expect(q.Get("genres")).To(Equal("1,10"))
			Expect(q.Get("start_date")).To(Equal("2023-01-01"))
			Expect(q.Get("type")).To(Equal("tv"))
			Expect(q.Get("order_by")).To(Equal("score"))
			Expect(q.Get("sort")).To(Equal("desc"))
			Expect(q.Get("min_score")).To(Equal("7.5"))
			Expect(q).NotTo(HaveKey("max_score"))
			Expect(q).NotTo(HaveKey("status"))
		})

		// Given both a year and an explicit start date
		// When searching
		// Then the explicit start date wins
		It("should prefer an explicit start date over the year", func() {
			// Arrange
			c := newClient()

			// Act
			_, err := c.SearchAnime(ctx, models.SearchParams{Year: 2020, StartDate: "2020-04-01", EndDate: "2020-06-30"})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			q := fake.last().URL.Query()
			Expect(q.Get("start_date")).To(Equal("2020-04-01"))
			Expect(q.Get("end_date")).To(Equal("2020-06-30"))
		})

		It("should default top anime to page 1 and 25 items", func() {
			// Arrange
			c := newClient()

			// Act
			_, err := c.GetTopAnime(ctx, models.PageParams{})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(fake.last().URL.Path).To(Equal("/top/anime"))
			Expect(fake.last().URL.Query()).To(Equal(url.Values{"page": {"1"}, "limit": {"25"}}))
		})

		It("should order popular anime by popularity", func() {
			// Arrange
			c := newClient()

			// Act
			_, err := c.GetPopularAnime(ctx, models.PageParams{Limit: 12})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			q := fake.last().URL.Query()
			Expect(fake.last().URL.Path).To(Equal("/anime"))
			Expect(q.Get("order_by")).To(Equal("popularity"))
			Expect(q.Get("sort")).To(Equal("asc"))
			Expect(q.Get("limit")).To(Equal("12"))
		})

		It("should query the current season", func() {
			// Arrange
			c := newClient()

			// Act
			_, err := c.GetCurrentSeasonAnime(ctx, models.PageParams{Page: 3, Limit: 12})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(fake.last().URL.Path).To(Equal("/seasons/now"))
			Expect(fake.last().URL.Query().Get("page")).To(Equal("3"))
		})

		It("should decode a single anime", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				_, _ = fmt.Fprintf(w, animeBody, 52991, 52991)
			}
			c := newClient()

			// Act
			anime, err := c.GetAnimeByID(ctx, 52991)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(fake.last().URL.Path).To(Equal("/anime/52991"))
			Expect(anime.MalID).To(Equal(52991))
			Expect(anime.Title).To(Equal("Anime 52991"))
		})
	})

	Context("Rate limiting", func() {
		// Given an upstream that answers 429 once
		// When the caller fetches an anime
		// Then the client sleeps the backoff once, retries, and returns the retry's result
		It("should retry exactly once after the backoff", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, n int) {
				if n == 1 {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				_, _ = fmt.Fprintf(w, animeBody, 1, 1)
			}
			c := newClient()

			// Act
			anime, err := c.GetAnimeByID(ctx, 1)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(anime.MalID).To(Equal(1))
			Expect(fake.paths()).To(Equal([]string{"/anime/1", "/anime/1"}))
			Expect(sleeps).To(Equal([]time.Duration{time.Second}))
		})

		// Given an upstream that keeps answering 429
		// When the caller fetches an anime
		// Then the rate limit error surfaces after a single retry
		It("should give up after the retry budget", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				w.Header().Set("Retry-After", "3")
				w.WriteHeader(http.StatusTooManyRequests)
			}
			c := newClient()

			// Act
			_, err := c.GetAnimeByID(ctx, 1)

			// Assert
			Expect(srvErrors.IsRateLimitError(err)).To(BeTrue())
			var rl *srvErrors.RateLimitError
			Expect(err).To(BeAssignableToTypeOf(rl))
			Expect(err.(*srvErrors.RateLimitError).RetryAfter).To(Equal(3 * time.Second))
			Expect(fake.paths()).To(HaveLen(2))
			Expect(sleeps).To(HaveLen(1))
		})

		// Given a caller that got a 429 and is sleeping before its retry
		// When another caller submits a request
		// Then the other request is served before the retry
		It("should let other requests through while a retry waits", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, n int) {
				if r.URL.Path == "/anime/1" && n == 1 {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				_, _ = fmt.Fprintf(w, animeBody, 0, 0)
			}
			sleeping := make(chan struct{})
			release := make(chan struct{})
			c := jikan.NewClient(srv.URL, s, jikan.WithRetryPolicy(jikan.RetryPolicy{
				MaxRetries: 1,
				Backoff:    time.Second,
				Sleep: func(ctx context.Context, d time.Duration) error {
					close(sleeping)
					<-release
					return nil
				},
			}))

			// Act
			errA := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				_, err := c.GetAnimeByID(ctx, 1)
				errA <- err
			}()
			Eventually(sleeping, time.Second).Should(BeClosed())

			_, errB := c.GetAnimeByID(ctx, 2)
			close(release)

			// Assert
			Expect(errB).NotTo(HaveOccurred())
			Eventually(errA, time.Second).Should(Receive(BeNil()))
			Expect(fake.paths()).To(Equal([]string{"/anime/1", "/anime/2", "/anime/1"}))
		})

		// Given a caller whose context ends while waiting for the retry
		// When the backoff sleep returns the context error
		// Then no retry is sent
		It("should stop retrying when the context is done", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				w.WriteHeader(http.StatusTooManyRequests)
			}
			c := jikan.NewClient(srv.URL, s, jikan.WithRetryPolicy(jikan.RetryPolicy{
				MaxRetries: 1,
				Backoff:    time.Second,
				Sleep: func(ctx context.Context, d time.Duration) error {
					return context.Canceled
				},
			}))

			// Act
			_, err := c.GetAnimeByID(ctx, 1)

			// Assert
			Expect(err).To(MatchError(context.Canceled))
			Expect(fake.paths()).To(HaveLen(1))
		})
	})

	Context("Errors", func() {
		// Given an upstream answering 500
		// When fetching
		// Then an UpstreamError with the status is returned and nothing is retried
		It("should return upstream errors without retrying", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				w.WriteHeader(http.StatusInternalServerError)
			}
			c := newClient()

			// Act
			_, err := c.GetAnimeByID(ctx, 1)

			// Assert
			Expect(srvErrors.IsUpstreamError(err)).To(BeTrue())
			Expect(srvErrors.UpstreamStatusCode(err)).To(Equal(http.StatusInternalServerError))
			Expect(err.Error()).To(Equal("jikan api error: 500 Internal Server Error"))
			Expect(fake.paths()).To(HaveLen(1))
			Expect(sleeps).To(BeEmpty())
		})

		It("should keep the 404 status for missing anime", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				w.WriteHeader(http.StatusNotFound)
			}
			c := newClient()

			// Act
			_, err := c.GetAnimeByID(ctx, 999999)

			// Assert
			Expect(srvErrors.UpstreamStatusCode(err)).To(Equal(http.StatusNotFound))
		})

		// Given an upstream that is not listening
		// When fetching
		// Then an UpstreamUnreachableError is returned
		It("should report transport failures as unreachable", func() {
			// Arrange
			c := newClient()
			srv.Close()

			// Act
			_, err := c.GetGenres(ctx)

			// Assert
			Expect(srvErrors.IsUpstreamUnreachableError(err)).To(BeTrue())
			Expect(srvErrors.IsUpstreamError(err)).To(BeFalse())
		})

		// Given a client without a base url
		// When fetching
		// Then a configuration error is returned without any request
		It("should fail with a configuration error when the base url is empty", func() {
			// Arrange
			c := jikan.NewClient("", s)

			// Act
			_, err := c.GetGenres(ctx)

			// Assert
			Expect(srvErrors.IsConfigurationError(err)).To(BeTrue())
			Expect(fake.paths()).To(BeEmpty())
		})

		It("should fail on an undecodable body", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				_, _ = fmt.Fprint(w, "<html>")
			}
			c := newClient()

			// Act
			_, err := c.GetGenres(ctx)

			// Assert
			Expect(err).To(MatchError(ContainSubstring("failed to decode jikan response")))
		})
	})

	Context("Recommendations", func() {
		// Given an upstream returning 20 recommendations
		// When fetching recommendations
		// Then only the first 12 entries are returned
		It("should cap recommendations at 12", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				_, _ = fmt.Fprint(w, `{"data":[`)
				for i := range 20 {
					if i > 0 {
						_, _ = fmt.Fprint(w, ",")
					}
					_, _ = fmt.Fprintf(w, `{"entry":{"mal_id":%d,"title":"Rec %d"},"votes":1}`, i, i)
				}
				_, _ = fmt.Fprint(w, `]}`)
			}
			c := newClient()

			// Act
			recs := c.GetAnimeRecommendations(ctx, 1)

			// Assert
			Expect(recs).To(HaveLen(12))
			Expect(recs[0].Title).To(Equal("Rec 0"))
			Expect(recs[11].MalID).To(Equal(11))
		})

		It("should return an empty list on error", func() {
			// Arrange
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				w.WriteHeader(http.StatusBadGateway)
			}
			c := newClient()

			// Act
			recs := c.GetAnimeRecommendations(ctx, 1)

			// Assert
			Expect(recs).NotTo(BeNil())
			Expect(recs).To(BeEmpty())
		})
	})

	Context("Cache", func() {
		// Given a client with a cache
		// When the same endpoint is fetched twice
		// Then the second call is served from the cache with the endpoint's TTL
		It("should serve repeated requests from the cache", func() {
			// Arrange
			cache := newMapCache()
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				_, _ = fmt.Fprintf(w, animeBody, 5, 5)
			}
			c := newClient(jikan.WithCache(cache))

			// Act
			first, err := c.GetAnimeByID(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			second, err := c.GetAnimeByID(ctx, 5)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
			Expect(fake.paths()).To(HaveLen(1))
			Expect(cache.ttls).To(HaveKeyWithValue("jikan:/anime/5", jikan.AnimeDetailsTTL))
		})

		It("should use the search TTL for searches", func() {
			// Arrange
			cache := newMapCache()
			c := newClient(jikan.WithCache(cache))

			// Act
			_, err := c.SearchAnime(ctx, models.SearchParams{Query: "bocchi"})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(cache.ttls).To(HaveKeyWithValue("jikan:/anime?q=bocchi", jikan.SearchTTL))
		})

		It("should not cache failed responses", func() {
			// Arrange
			cache := newMapCache()
			fake.handler = func(w http.ResponseWriter, r *http.Request, _ int) {
				w.WriteHeader(http.StatusInternalServerError)
			}
			c := newClient(jikan.WithCache(cache))

			// Act
			_, err := c.GetGenres(ctx)

			// Assert
			Expect(err).To(HaveOccurred())
			Expect(cache.entries).To(BeEmpty())
		})
	})
})
