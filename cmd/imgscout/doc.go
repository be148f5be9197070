// Package main hosts the imgscout service entrypoint.
//
// Architecture overview:
//   - HTTP API: internal/api.Server exposes the lookup endpoint (/get_image_url), a greeting page, health
//     endpoints, and /metrics. Requests carry a single word and receive a JSON body with one IMAGE_URL field;
//     the value "ERROR" is the failure sentinel for both a missing word and an exhausted search.
//   - Resolution pipeline: internal/scraper.Resolver fetches the category listing page for the word through the
//     Colly-based fetcher, extracts img src attributes with goquery, and rewrites thumbnail URLs into full-size
//     image URLs. An empty result triggers a single synonym lookup for the original word and sequential retries
//     per synonym, stopping at the first that yields images. One candidate is then picked at random.
//   - Synonym lookup: internal/thesaurus.Client calls the Big Huge Thesaurus API and flattens synonyms across
//     grammatical categories in document order. Every failure degrades to an empty list; the pipeline never
//     sees a thesaurus error.
//   - Configuration & plumbing: Viper populates config from env/files; zap provides structured logging;
//     Prometheus counters/histograms track lookups, category page fetches, synonym fallbacks, and API traffic.
//
// Operational notes:
//   - Concurrency model: each request is handled synchronously end to end; there is no shared mutable state
//     between requests and no internal parallelism, so scale-out is purely horizontal.
//   - Timeouts: both outbound clients use http.timeout_seconds (default 15s); the API wraps handlers in a 60s
//     TimeoutHandler. A failed or timed-out fetch counts as zero images for that word and is never retried.
//   - Run locally: go run ./cmd/imgscout -config config.yaml, or rely on IMGSCOUT_* env overrides. The
//     thesaurus credential (IMGSCOUT_THESAURUS_API_KEY) is required.
package main
