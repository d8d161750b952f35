// Package handlers implements the HTTP API layer of animeinfo.
//
// Handlers validate query parameters, delegate to the services layer and
// convert models to the API types of api/v1. They implement the
// ServerInterface generated from api/v1/openapi.yaml:
//
//	v1.RegisterHandlersWithOptions(router, handler, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
//
// # API Endpoints
//
//	┌────────┬───────────────────────────────┬───────────────────────────────────────┐
//	│ Method │ Endpoint                      │ Description                           │
//	├────────┼───────────────────────────────┼───────────────────────────────────────┤
//	│ GET    │ /home                         │ Featured, trending, popular, top      │
//	│ GET    │ /anime                        │ Search with filters                   │
//	│ GET    │ /anime/top                    │ Top ranked anime                      │
//	│ GET    │ /anime/popular                │ Most popular anime                    │
//	│ GET    │ /seasons/now                  │ Current season                        │
//	│ GET    │ /anime/{id}                   │ Anime details                         │
//	│ GET    │ /anime/{id}/page              │ Composite detail page                 │
//	│ GET    │ /anime/{id}/characters        │ Characters and voice actors           │
//	│ GET    │ /anime/{id}/staff             │ Staff                                 │
//	│ GET    │ /anime/{id}/recommendations   │ Up to 12 recommendations              │
//	│ GET    │ /anime/{id}/metadata          │ SEO metadata and JSON-LD              │
//	│ GET    │ /genres                       │ Anime genres                          │
//	│ GET    │ /search/metadata              │ Search page metadata                  │
//	│ GET    │ /videos/{id}                  │ YouTube video details                 │
//	│ GET    │ /queue                        │ Outbound Jikan queue status           │
//	└────────┴───────────────────────────────┴───────────────────────────────────────┘
//
// GET /sitemap.xml is served at the root by GetSitemap.
//
// # Search Parameters
//
// q, page (≥ 1), limit (1..25), genres (comma separated ids), year (≥ 1960),
// season, type, status, rating, order_by, sort, min_score and max_score
// (0..10, min ≤ max), start_date and end_date (YYYY-MM-DD).
//
// Example: /anime?q=frieren&type=tv&min_score=8&order_by=score&sort=desc
//
// # Error Handling
//
// Errors are rendered as:
//
//	{ "error": "error message" }
//
//	┌─────────────────────────────┬────────┬──────────────────────────────────┐
//	│ Error Type                  │ Status │ When                             │
//	├─────────────────────────────┼────────┼──────────────────────────────────┤
//	│ ValidationError             │ 400    │ Invalid query or path parameter  │
//	│ ResourceNotFoundError       │ 404    │ Unknown anime or video           │
//	│ RateLimitError              │ 429    │ Jikan throttling, Retry-After    │
//	│ UpstreamError               │ 502    │ Upstream non-2xx answer          │
//	│ ConfigurationError          │ 503    │ Missing base URL or API key      │
//	│ UpstreamUnreachableError    │ 504    │ Upstream transport failure       │
//	│ Internal error              │ 500    │ Anything else                    │
//	└─────────────────────────────┴────────┴──────────────────────────────────┘
//
// An upstream 404 is reported as 404.
package handlers
