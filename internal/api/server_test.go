package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skellison/imgscout/internal/config"
	"github.com/skellison/imgscout/internal/metrics"
	"github.com/skellison/imgscout/internal/scraper"
)

type fakeResolver struct {
	result scraper.Result
	err    error
	words  []string
}

func (f *fakeResolver) Resolve(_ context.Context, word string) (scraper.Result, error) {
	f.words = append(f.words, word)
	return f.result, f.err
}

func newTestServer(t *testing.T, resolver Resolver, cfg config.Config) *Server {
	t.Helper()
	metrics.Init()
	return NewServer(resolver, cfg, zap.NewNop())
}

func decodeImageResponse(t *testing.T, rec *httptest.ResponseRecorder) imageResponse {
	t.Helper()
	var resp imageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestGetImageURLSuccess(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{result: scraper.Result{
		Word: "cat",
		URLs: []string{"https://upload.example.org/commons/a/ab/Cat.jpg"},
	}}
	server := newTestServer(t, resolver, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/get_image_url?word=cat", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeImageResponse(t, rec)
	require.Equal(t, "https://upload.example.org/commons/a/ab/Cat.jpg", resp.ImageURL)
	require.Equal(t, []string{"cat"}, resolver.words)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetImageURLMissingWord(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{}
	server := newTestServer(t, resolver, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/get_image_url", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeImageResponse(t, rec)
	require.Equal(t, "ERROR", resp.ImageURL)
	require.Empty(t, resolver.words, "resolver must not run without a word")
}

func TestGetImageURLExhausted(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{err: scraper.ErrNoImages}
	server := newTestServer(t, resolver, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/get_image_url?word=zyxwqqq123", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeImageResponse(t, rec)
	require.Equal(t, "ERROR", resp.ImageURL)
}

func TestGetImageURLRequiresAPIKeyWhenEnabled(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{result: scraper.Result{Word: "cat", URLs: []string{"https://a/Cat.jpg"}}}
	cfg := config.Config{Auth: config.AuthConfig{Enabled: true, APIKey: "secret"}}
	server := newTestServer(t, resolver, cfg)

	req := httptest.NewRequest(http.MethodGet, "/get_image_url?word=cat", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Empty(t, resolver.words)

	req = httptest.NewRequest(http.MethodGet, "/get_image_url?word=cat", nil)
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthEndpointsStayOpen(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Auth: config.AuthConfig{Enabled: true, APIKey: "secret"}}
	server := newTestServer(t, &fakeResolver{}, cfg)

	for _, path := range []string{"/healthz", "/readyz", "/", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &fakeResolver{}, config.Config{})

	req := httptest.NewRequest(http.MethodOptions, "/get_image_url", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
