package scraper

import (
	"context"
	"errors"
	"math/rand/v2"
)

// ErrMissingWord is returned when the caller supplies an empty word. No
// network calls are made in that case.
var ErrMissingWord = errors.New("no word supplied")

// ErrNoImages is returned when the primary word and every synonym have been
// tried without producing a single image URL.
var ErrNoImages = errors.New("no images found for word or its synonyms")

// PageFetcher retrieves the raw markup of the category listing page for a
// word.
type PageFetcher interface {
	FetchCategoryPage(ctx context.Context, word string) (string, error)
}

// SynonymSource looks up alternate words to retry with. Implementations
// degrade to an empty list on failure rather than returning an error.
type SynonymSource interface {
	Synonyms(ctx context.Context, word string) ([]string, error)
}

// Result holds the outcome of a successful resolution: the word whose
// category page produced images (the original word or one of its synonyms)
// and the candidate full-size image URLs found there.
type Result struct {
	Word string
	URLs []string
}

// Pick returns one candidate URL chosen uniformly at random. It must only
// be called on a Result produced by a successful Resolve, which guarantees
// a non-empty candidate set.
func (r Result) Pick() string {
	return r.URLs[rand.IntN(len(r.URLs))]
}
