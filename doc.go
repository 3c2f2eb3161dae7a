// Package probe answers a single question as fast as possible: does any item
// in a collection satisfy an expensive predicate? It fans the predicate out
// over a bounded pool of goroutines, optionally rate-limits how fast new
// evaluations are admitted, and returns the moment the answer is known,
// cancelling all remaining work.
//
// The package is built for predicates that are slow or remote: health checks,
// existence probes against a fleet of mirrors, feature lookups against an
// external API. For cheap in-memory predicates a plain loop is always the
// better tool.
//
// # Pipeline
//
// Each call to [Any], [All] or [Find] assembles a small pipeline that lives
// exactly as long as the call:
//
//   - a feeder goroutine admits items into a bounded work queue, pacing
//     admissions against the configured rate limit;
//   - a pool of Options.MaxConcurrency worker goroutines pulls items from the
//     queue and invokes the predicate;
//   - the calling goroutine consumes the workers' verdicts and returns on the
//     first decisive one.
//
// On return, early or not, the call's context is cancelled, the feeder stops
// admitting, and in-flight predicate calls are expected to observe the
// cancellation and wind down. No goroutine started by the call outlives it,
// provided the predicate honors its context.
//
// # The predicate contract
//
// A [Predicate] receives the context of the enclosing call. It must return
// promptly once that context is cancelled, and it must not panic for expected
// failure modes: a network error while probing should resolve to false (or be
// handled by the caller's own retry layer) rather than escape the predicate.
// A predicate that does panic is contained: the item counts as false, the
// panicking worker stops, and its siblings keep running.
//
// # Rate limiting
//
// Options.RequestsPerSecond caps how fast items are admitted into the work
// queue, globally across all workers. Under a saturated pool an admitted item
// may wait in the queue before a worker picks it up, so the observed rate at
// the predicate boundary can be lower than the configured rate, never higher.
// A zero rate disables pacing entirely.
package probe
