package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/countryflag/countryflag/internal/cache/disk"
	"github.com/countryflag/countryflag/internal/domain"
	"github.com/countryflag/countryflag/internal/resolver"
	"github.com/countryflag/countryflag/internal/service"
	transporthttp "github.com/countryflag/countryflag/internal/transport/http"
)

// TestDiskCachePersistence drives the full stack twice against the same
// cache directory: the second run must answer from disk without touching
// the dataset again.
func TestDiskCachePersistence(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	res := resolver.NewDatasetResolver()

	firstCache, err := disk.New(dir, nil)
	require.NoError(t, err)
	first := service.New(res, firstCache, nil)

	result, err := first.GetFlag(ctx, []string{"France", "Germany", "Japan"}, service.ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, "🇫🇷 🇩🇪 🇯🇵", result.Flags)
	assert.Zero(t, firstCache.Hits())

	// Simulated restart: new cache instance over the same directory
	secondCache, err := disk.New(dir, nil)
	require.NoError(t, err)
	second := service.New(res, secondCache, nil)

	again, err := second.GetFlag(ctx, []string{"France", "Germany", "Japan"}, service.ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, result, again)
	assert.Equal(t, int64(1), secondCache.Hits())
}

// TestGlobalCacheSharing verifies that facades constructed without an
// explicit cache observe each other's entries through the shared default.
func TestGlobalCacheSharing(t *testing.T) {
	service.ClearGlobalCache()
	t.Cleanup(service.ClearGlobalCache)

	ctx := context.Background()
	res := resolver.NewDatasetResolver()

	first := service.New(res, nil, nil)
	second := service.New(res, nil, nil)
	require.Same(t, first.ActiveCache(), second.ActiveCache())

	_, err := first.GetFlag(ctx, []string{"Brazil"}, service.ConvertOptions{})
	require.NoError(t, err)

	result, err := second.GetFlag(ctx, []string{"Brazil"}, service.ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, "🇧🇷", result.Flags)

	// After a global clear both facades converge on the same fresh instance
	service.ClearGlobalCache()
	assert.Same(t, first.ActiveCache(), second.ActiveCache())
}

// TestHTTPRoundTrip exercises the JSON API over the real service and a real
// disk cache.
func TestHTTPRoundTrip(t *testing.T) {
	diskCache, err := disk.New(t.TempDir(), nil)
	require.NoError(t, err)

	cf := service.New(resolver.NewDatasetResolver(), diskCache, nil)
	handler := transporthttp.NewHandler(cf, nil)

	t.Run("convert", func(t *testing.T) {
		body := `{"countries":["France","UK"],"separator":"|"}`
		req := httptest.NewRequest(http.MethodPost, "/api/flags", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		handler.ConvertFlags(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var result domain.FlagResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "🇫🇷|🇬🇧", result.Flags)
	})

	t.Run("reverse", func(t *testing.T) {
		body := `{"flags":["🇫🇷"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/reverse", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		handler.ReverseLookup(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var pairs []domain.FlagPair
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pairs))
		assert.Equal(t, []domain.FlagPair{{Country: "France", Flag: "🇫🇷"}}, pairs)
	})

	t.Run("region", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/regions/Oceania/flags", nil)
		rr := httptest.NewRecorder()
		handler.RegionFlags(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var result domain.FlagResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.NotEmpty(t, result.Pairs)
	})

	t.Run("validate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/validate?country=Japan", nil)
		rr := httptest.NewRecorder()
		handler.Validate(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp domain.ValidateResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
	})

	t.Run("unknown country is 404", func(t *testing.T) {
		body := `{"countries":["Atlantis"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/flags", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		handler.ConvertFlags(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
