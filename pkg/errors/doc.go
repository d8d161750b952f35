// Package errors provides custom error types for animeinfo.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌──────────────────────────┬────────┬─────────────────────────────────────┐
//	│ Error Type               │ HTTP   │ Description                         │
//	├──────────────────────────┼────────┼─────────────────────────────────────┤
//	│ ValidationError          │ 400    │ Invalid query or path parameter     │
//	│ ResourceNotFoundError    │ 404    │ Anime or video doesn't exist        │
//	│ RateLimitError           │ 429    │ Upstream still answers 429 after    │
//	│                          │        │ the retry                           │
//	│ UpstreamError            │ 502    │ Upstream non-2xx (404 maps to 404)  │
//	│ ConfigurationError       │ 503    │ Base URL or API key not configured  │
//	│ UpstreamUnreachableError │ 504    │ Transport failure, no response      │
//	└──────────────────────────┴────────┴─────────────────────────────────────┘
//
// # RateLimitError
//
// Returned by the Jikan client when the upstream keeps answering 429 after
// the bounded retry. RetryAfter carries the Retry-After header when present.
//
// Usage:
//
//	var rl *errors.RateLimitError
//	if stderrors.As(err, &rl) {
//	    c.Header("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds())))
//	    c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
//	}
//
// # UpstreamError and UpstreamUnreachableError
//
// A request that reached the upstream and got a non-success status yields an
// UpstreamError carrying the status code. A request that failed before any
// response (DNS, connection refused, timeout) yields an
// UpstreamUnreachableError wrapping the transport error. Both propagate to
// the caller unchanged; only 429 is retried.
//
// # ConfigurationError
//
// Raised at call time when a client has no base URL or, for YouTube, no API
// key. It is never retried.
//
// # ResourceNotFoundError
//
// Constructors:
//   - NewResourceNotFoundError(kind string, id ...string)
//   - NewAnimeNotFoundError(id int)
//   - NewVideoNotFoundError(id string)
//
// Usage:
//
//	if errors.IsResourceNotFoundError(err) {
//	    c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
//	}
package errors
