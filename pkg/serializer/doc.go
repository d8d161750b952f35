// Package serializer is the single choke point for calls to a rate-limited
// upstream API.
//
// Every submitted work item is executed by one drain goroutine, strictly in
// submission order, and two consecutive dispatches never start closer than
// the configured minimum interval (334ms by default, about 3 requests per
// second).
//
// # States
//
//	┌────────┐  Submit on empty idle queue   ┌──────────┐
//	│  Idle  │ ─────────────────────────────►│ Draining │
//	│        │◄───────────────────────────── │          │
//	└────────┘  queue empty after a dispatch └──────────┘
//
// Only one drain cycle exists at a time. Work submitted while a cycle runs
// is appended to the queue and picked up by that same cycle.
//
// # Drain cycle
//
//  1. If the queue is empty, go back to Idle.
//  2. Wait until the minimum interval since the previous dispatch has
//     elapsed (and, when configured, until the per-minute budget allows).
//     After a long idle period there is no wait at all.
//  3. Pop the head, record the dispatch time, run the work and wait for it
//     to return before looping. A failing or panicking item only resolves
//     its own future with the error.
//
// # Retries
//
// The serializer never looks at results. Retrying a rate-limited request is
// the caller's job: it resubmits, which places the retry at the tail of the
// queue so that other callers keep their pacing (see pkg/jikan).
//
// # Usage
//
//	s := serializer.New(serializer.WithMinInterval(334 * time.Millisecond))
//	defer s.Close()
//
//	body, err := serializer.Do(ctx, s, func(ctx context.Context) ([]byte, error) {
//	    return fetch(ctx, url)
//	})
package serializer
