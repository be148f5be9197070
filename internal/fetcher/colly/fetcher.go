// Package collyfetcher retrieves category listing pages using gocolly.
package collyfetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/skellison/imgscout/internal/metrics"
)

// Config controls collector behavior.
type Config struct {
	// BaseURL is the category listing prefix; the word is appended to it.
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Fetcher implements scraper.PageFetcher using the Colly collector.
type Fetcher struct {
	cfg           Config
	baseCollector *colly.Collector
	logger        *zap.Logger
}

// New builds a Fetcher.
func New(cfg Config, logger *zap.Logger) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []colly.CollectorOption{}
	if cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.UserAgent))
	}
	base := colly.NewCollector(opts...)
	base.AllowURLRevisit = true
	base.WithTransport(&http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          64,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.Timeout,
		ForceAttemptHTTP2:     true,
	})
	base.SetRequestTimeout(cfg.Timeout)

	return &Fetcher{
		cfg:           cfg,
		baseCollector: base,
		logger:        logger,
	}
}

// CategoryPageURL returns the listing page URL for a word.
func (f *Fetcher) CategoryPageURL(word string) string {
	return f.cfg.BaseURL + url.PathEscape(word)
}

type fetchResult struct {
	body   []byte
	status int
	err    error
}

// FetchCategoryPage retrieves the category listing markup for a word. A
// non-2xx response or transport failure is returned as an error; the
// pipeline treats either the same as zero images for that word.
func (f *Fetcher) FetchCategoryPage(ctx context.Context, word string) (string, error) {
	collector := f.baseCollector.Clone()

	resultCh := make(chan fetchResult, 1)
	var once sync.Once
	send := func(res fetchResult) {
		once.Do(func() {
			resultCh <- res
		})
	}

	collector.OnResponse(func(r *colly.Response) {
		send(fetchResult{
			body:   append([]byte(nil), r.Body...),
			status: r.StatusCode,
		})
	})
	collector.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		send(fetchResult{status: status, err: err})
	})

	target := f.CategoryPageURL(word)
	f.logger.Debug("fetching category page", zap.String("word", word), zap.String("url", target))
	go func() {
		if err := collector.Visit(target); err != nil {
			send(fetchResult{err: err})
		}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("category page fetch canceled: %w", ctx.Err())
	case res := <-resultCh:
		metrics.ObserveCategoryPage(res.status)
		if res.err != nil {
			return "", fmt.Errorf("fetch category page for %q: %w", word, res.err)
		}
		return string(res.body), nil
	}
}
