// Package thesaurus implements the synonym lookup client for the Big Huge
// Thesaurus API.
package thesaurus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client queries the thesaurus API for synonyms of a word.
//
// Every failure mode (transport error, non-2xx status, unparseable body)
// degrades to an empty synonym list: the lookup is best-effort and the
// resolution pipeline only distinguishes "some synonyms" from "none".
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *zap.Logger
}

// New builds a Client. baseURL has no trailing slash, e.g.
// https://words.bighugelabs.com/api/2.
func New(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Synonyms returns the word's synonyms flattened across all grammatical
// categories, in the order the service lists them; duplicates across
// categories are kept. Antonym data is ignored. The error is always nil;
// failures are logged and yield an empty list.
func (c *Client) Synonyms(ctx context.Context, word string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/json", c.baseURL, c.apiKey, url.PathEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Warn("build thesaurus request failed", zap.String("word", word), zap.Error(err))
		return nil, nil
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("thesaurus request failed", zap.String("word", word), zap.Error(err))
		return nil, nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("thesaurus returned non-success status",
			zap.String("word", word),
			zap.Int("status", resp.StatusCode),
		)
		return nil, nil
	}

	syns, err := decodeSynonyms(resp.Body)
	if err != nil {
		c.logger.Warn("invalid thesaurus response", zap.String("word", word), zap.Error(err))
		return nil, nil
	}
	return syns, nil
}

// categoryEntry is one part-of-speech block in the thesaurus response.
// Only the synonym list matters; "ant" and the rest are dropped.
type categoryEntry struct {
	Syn []string `json:"syn"`
}

// decodeSynonyms walks the response object token by token so categories are
// visited in document order, which a plain map decode would not preserve.
func decodeSynonyms(r io.Reader) ([]string, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var syns []string
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("read category name: %w", err)
		}
		var entry categoryEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		syns = append(syns, entry.Syn...)
	}
	return syns, nil
}
