// Package jikan is the client for the Jikan v4 API (an unofficial
// MyAnimeList proxy).
//
// All requests are funneled through a serializer.Serializer, so the client
// never sends more than about 3 requests per second no matter how many
// goroutines use it. Responses are cached by endpoint when a Cache is set.
//
// # Rate limiting
//
// When Jikan answers 429 the client sleeps for RetryPolicy.Backoff (1s by
// default) outside the queue, then submits the request again. The retry goes
// to the tail of the queue. After MaxRetries attempts the RateLimitError is
// returned to the caller.
//
// # Errors
//
//	429 after retries  -> *errors.RateLimitError
//	other non-2xx      -> *errors.UpstreamError
//	no response        -> *errors.UpstreamUnreachableError
//	empty base url     -> *errors.ConfigurationError
package jikan
