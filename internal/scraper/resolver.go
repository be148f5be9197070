package scraper

import (
	"context"

	"go.uber.org/zap"

	"github.com/skellison/imgscout/internal/metrics"
)

// Resolver drives the lookup pipeline: fetch the category page for a word,
// extract and normalize its image links, and on an empty result fall back
// to the word's synonyms, trying each in order until one produces images.
type Resolver struct {
	fetcher  PageFetcher
	synonyms SynonymSource
	logger   *zap.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(fetcher PageFetcher, synonyms SynonymSource, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		fetcher:  fetcher,
		synonyms: synonyms,
		logger:   logger,
	}
}

// Resolve returns the candidate image URLs for word, or for the first of
// its synonyms whose category page yields any. Synonyms are looked up once,
// for the original word, and tried strictly in order; the loop halts at the
// first non-empty attempt. A failed fetch counts as an empty attempt, never
// as an error. Returns ErrMissingWord for an empty word (without touching
// the network) and ErrNoImages when every avenue is exhausted.
func (r *Resolver) Resolve(ctx context.Context, word string) (Result, error) {
	if word == "" {
		return Result{}, ErrMissingWord
	}

	if urls := r.attempt(ctx, word); len(urls) > 0 {
		return Result{Word: word, URLs: urls}, nil
	}

	syns, err := r.synonyms.Synonyms(ctx, word)
	if err != nil {
		r.logger.Warn("synonym lookup failed", zap.String("word", word), zap.Error(err))
		return Result{}, ErrNoImages
	}
	if len(syns) == 0 {
		return Result{}, ErrNoImages
	}

	metrics.ObserveSynonymFallback()
	for _, syn := range syns {
		r.logger.Debug("trying synonym", zap.String("word", word), zap.String("synonym", syn))
		if urls := r.attempt(ctx, syn); len(urls) > 0 {
			return Result{Word: syn, URLs: urls}, nil
		}
	}
	return Result{}, ErrNoImages
}

// attempt runs one fetch/extract/normalize pass. The candidate set is built
// fresh per attempt so a returned URL always belongs to the word that
// satisfied the search.
func (r *Resolver) attempt(ctx context.Context, word string) []string {
	html, err := r.fetcher.FetchCategoryPage(ctx, word)
	if err != nil {
		r.logger.Warn("category page fetch failed", zap.String("word", word), zap.Error(err))
		return nil
	}
	return NormalizeThumbURLs(ExtractImageLinks(html))
}
