package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/countryflag/countryflag/internal/cache"
	cachemocks "github.com/countryflag/countryflag/internal/cache/mocks"
	"github.com/countryflag/countryflag/internal/cache/memory"
	"github.com/countryflag/countryflag/internal/domain"
	"github.com/countryflag/countryflag/internal/resolver"
	"github.com/countryflag/countryflag/internal/resolver/mocks"
)

func TestGetFlag_Convert(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		countries []string
		opts      ConvertOptions
		wantFlags string
		wantPairs []domain.FlagPair
	}{
		{
			name:      "single country",
			countries: []string{"France"},
			wantFlags: "🇫🇷",
			wantPairs: []domain.FlagPair{{Country: "France", Flag: "🇫🇷"}},
		},
		{
			name:      "multiple countries default separator",
			countries: []string{"France", "Germany"},
			wantFlags: "🇫🇷 🇩🇪",
			wantPairs: []domain.FlagPair{
				{Country: "France", Flag: "🇫🇷"},
				{Country: "Germany", Flag: "🇩🇪"},
			},
		},
		{
			name:      "custom separator",
			countries: []string{"Japan", "Brazil"},
			opts:      ConvertOptions{Separator: "|"},
			wantFlags: "🇯🇵|🇧🇷",
			wantPairs: []domain.FlagPair{
				{Country: "Japan", Flag: "🇯🇵"},
				{Country: "Brazil", Flag: "🇧🇷"},
			},
		},
		{
			name:      "iso codes and aliases",
			countries: []string{"UK", "EL", "Holland"},
			wantFlags: "🇬🇧 🇬🇷 🇳🇱",
			wantPairs: []domain.FlagPair{
				{Country: "UK", Flag: "🇬🇧"},
				{Country: "EL", Flag: "🇬🇷"},
				{Country: "Holland", Flag: "🇳🇱"},
			},
		},
		{
			name:      "blank entries skipped",
			countries: []string{"France", "", "  ", "Germany"},
			wantFlags: "🇫🇷 🇩🇪",
			wantPairs: []domain.FlagPair{
				{Country: "France", Flag: "🇫🇷"},
				{Country: "Germany", Flag: "🇩🇪"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(resolver.NewDatasetResolver(), memory.New(), nil)

			result, err := s.GetFlag(ctx, tt.countries, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlags, result.Flags)
			assert.Equal(t, tt.wantPairs, result.Pairs)
		})
	}
}

func TestGetFlag_EmptyInput(t *testing.T) {
	s := New(resolver.NewDatasetResolver(), memory.New(), nil)

	result, err := s.GetFlag(context.Background(), nil, ConvertOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Flags)
	assert.Empty(t, result.Pairs)
}

func TestGetFlag_InvalidCountry(t *testing.T) {
	c := memory.New()
	s := New(resolver.NewDatasetResolver(), c, nil)
	ctx := context.Background()

	_, err := s.GetFlag(ctx, []string{"France", "Atlantis"}, ConvertOptions{})
	require.Error(t, err)

	var invalidErr *domain.InvalidCountryError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "Atlantis", invalidErr.Country)

	// Failed conversions are never cached
	assert.False(t, c.Contains(ctx, conversionKey([]string{"France", "Atlantis"}, DefaultSeparator)))
}

func TestGetFlag_ResolverInvokedOnceOnRepeat(t *testing.T) {
	res := new(mocks.Resolver)
	res.On("Convert", "France").Return("FR", true)

	c := memory.New()
	s := New(res, c, nil)
	ctx := context.Background()

	first, err := s.GetFlag(ctx, []string{"France"}, ConvertOptions{})
	require.NoError(t, err)
	assert.Zero(t, c.Hits())

	second, err := s.GetFlag(ctx, []string{"France"}, ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), c.Hits())
	res.AssertNumberOfCalls(t, "Convert", 1)
}

func TestGetFlag_KeyIsOrderSensitive(t *testing.T) {
	res := new(mocks.Resolver)
	res.On("Convert", "France").Return("FR", true)
	res.On("Convert", "Germany").Return("DE", true)

	c := memory.New()
	s := New(res, c, nil)
	ctx := context.Background()

	forward, err := s.GetFlag(ctx, []string{"France", "Germany"}, ConvertOptions{})
	require.NoError(t, err)

	backward, err := s.GetFlag(ctx, []string{"Germany", "France"}, ConvertOptions{})
	require.NoError(t, err)

	// Reordered inputs derive a different key, so the second call is a miss
	// and resolves from scratch.
	assert.Zero(t, c.Hits())
	res.AssertNumberOfCalls(t, "Convert", 4)
	assert.Equal(t, "🇫🇷 🇩🇪", forward.Flags)
	assert.Equal(t, "🇩🇪 🇫🇷", backward.Flags)
}

func TestGetFlag_SeparatorIsPartOfKey(t *testing.T) {
	res := new(mocks.Resolver)
	res.On("Convert", "France").Return("FR", true)

	c := memory.New()
	s := New(res, c, nil)
	ctx := context.Background()

	_, err := s.GetFlag(ctx, []string{"France"}, ConvertOptions{Separator: " "})
	require.NoError(t, err)
	_, err = s.GetFlag(ctx, []string{"France"}, ConvertOptions{Separator: "|"})
	require.NoError(t, err)

	assert.Zero(t, c.Hits())
	res.AssertNumberOfCalls(t, "Convert", 2)
}

func TestGetFlag_FuzzyMatching(t *testing.T) {
	c := memory.New()
	s := New(resolver.NewDatasetResolver(), c, nil)
	ctx := context.Background()

	result, err := s.GetFlag(ctx, []string{"Germny"}, ConvertOptions{Fuzzy: true})
	require.NoError(t, err)
	assert.Equal(t, "🇩🇪", result.Flags)
	require.Len(t, result.Pairs, 1)

	// The pair carries the matched canonical name, not the misspelling
	assert.Equal(t, "Germany", result.Pairs[0].Country)
}

func TestGetFlag_FuzzyBypassesCache(t *testing.T) {
	res := new(mocks.Resolver)
	res.On("Convert", "Germny").Return("", false)
	res.On("FindCloseMatches", "Germny", DefaultFuzzyThreshold).
		Return([]resolver.Match{{Name: "Germany", Code: "DE"}})

	c := memory.New()
	s := New(res, c, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result, err := s.GetFlag(ctx, []string{"Germny"}, ConvertOptions{Fuzzy: true})
		require.NoError(t, err)
		assert.Equal(t, "🇩🇪", result.Flags)
	}

	// Fuzzy results are neither read from nor written to the cache
	assert.Zero(t, c.Hits())
	assert.False(t, c.Contains(ctx, conversionKey([]string{"Germny"}, DefaultSeparator)))
	res.AssertNumberOfCalls(t, "FindCloseMatches", 2)
}

func TestGetFlag_FuzzyNoMatch(t *testing.T) {
	s := New(resolver.NewDatasetResolver(), memory.New(), nil)

	_, err := s.GetFlag(context.Background(), []string{"xqzw"}, ConvertOptions{Fuzzy: true})
	require.Error(t, err)

	var invalidErr *domain.InvalidCountryError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestReverseLookup(t *testing.T) {
	s := New(resolver.NewDatasetResolver(), memory.New(), nil)
	ctx := context.Background()

	pairs, err := s.ReverseLookup(ctx, []string{"🇫🇷", "🇩🇪"})
	require.NoError(t, err)
	assert.Equal(t, []domain.FlagPair{
		{Country: "France", Flag: "🇫🇷"},
		{Country: "Germany", Flag: "🇩🇪"},
	}, pairs)
}

func TestReverseLookup_EmptyInput(t *testing.T) {
	s := New(resolver.NewDatasetResolver(), memory.New(), nil)

	pairs, err := s.ReverseLookup(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, pairs)
}

func TestReverseLookup_UnknownFlag(t *testing.T) {
	s := New(resolver.NewDatasetResolver(), memory.New(), nil)

	_, err := s.ReverseLookup(context.Background(), []string{"🇫🇷", "notaflag"})
	require.Error(t, err)

	var reverseErr *domain.ReverseConversionError
	require.ErrorAs(t, err, &reverseErr)
	assert.Equal(t, "notaflag", reverseErr.Flag)
}

func TestReverseLookup_CachesResult(t *testing.T) {
	res := new(mocks.Resolver)
	res.On("CountryForFlag", "🇯🇵").Return("Japan", true)

	c := memory.New()
	s := New(res, c, nil)
	ctx := context.Background()

	first, err := s.ReverseLookup(ctx, []string{"🇯🇵"})
	require.NoError(t, err)

	second, err := s.ReverseLookup(ctx, []string{"🇯🇵"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), c.Hits())
	res.AssertNumberOfCalls(t, "CountryForFlag", 1)
}

func TestGetFlagsByRegion(t *testing.T) {
	c := memory.New()
	s := New(resolver.NewDatasetResolver(), c, nil)
	ctx := context.Background()

	result, err := s.GetFlagsByRegion(ctx, "Oceania", "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Pairs)
	assert.NotEmpty(t, result.Flags)

	// The second call is served from the region-level cache entry
	hitsBefore := c.Hits()
	again, err := s.GetFlagsByRegion(ctx, "Oceania", "")
	require.NoError(t, err)
	assert.Equal(t, result, again)
	assert.Equal(t, hitsBefore+1, c.Hits())
}

func TestGetFlagsByRegion_PopulatesConversionLayer(t *testing.T) {
	c := memory.New()
	s := New(resolver.NewDatasetResolver(), c, nil)
	ctx := context.Background()

	result, err := s.GetFlagsByRegion(ctx, "Oceania", "")
	require.NoError(t, err)

	// Region lookups delegate through the conversion path, so the same
	// country list is now cached under its conversion key too.
	names := make([]string, len(result.Pairs))
	for i, pair := range result.Pairs {
		names[i] = pair.Country
	}
	assert.True(t, c.Contains(ctx, conversionKey(names, DefaultSeparator)))
	assert.True(t, c.Contains(ctx, regionKey("Oceania", DefaultSeparator)))
}

func TestGetFlagsByRegion_UnsupportedRegion(t *testing.T) {
	s := New(resolver.NewDatasetResolver(), memory.New(), nil)

	_, err := s.GetFlagsByRegion(context.Background(), "Atlantis", "")
	require.Error(t, err)

	var regionErr *domain.RegionError
	assert.ErrorAs(t, err, &regionErr)
}

func TestValidateCountryName(t *testing.T) {
	c := memory.New()
	s := New(resolver.NewDatasetResolver(), c, nil)
	ctx := context.Background()

	valid, err := s.ValidateCountryName(ctx, "France")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = s.ValidateCountryName(ctx, "Atlantis")
	require.NoError(t, err)
	assert.False(t, valid)

	// Negative outcomes are cached too
	assert.True(t, c.Contains(ctx, validationKey("Atlantis")))
	valid, err = s.ValidateCountryName(ctx, "Atlantis")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidateCountryName_Blank(t *testing.T) {
	c := memory.New()
	s := New(resolver.NewDatasetResolver(), c, nil)
	ctx := context.Background()

	valid, err := s.ValidateCountryName(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, valid)

	// Blank names short-circuit before the cache
	assert.False(t, c.Contains(ctx, validationKey("   ")))
}

func TestGetSupportedCountries_CachesResult(t *testing.T) {
	countries := []domain.CountryInfo{
		{Name: "France", ISO2: "FR", ISO3: "FRA", Region: "Europe", Flag: "🇫🇷"},
		{Name: "Japan", ISO2: "JP", ISO3: "JPN", Region: "Asia", Flag: "🇯🇵"},
	}
	res := new(mocks.Resolver)
	res.On("Countries").Return(countries)

	c := memory.New()
	s := New(res, c, nil)
	ctx := context.Background()

	first, err := s.GetSupportedCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, countries, first)

	second, err := s.GetSupportedCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, int64(1), c.Hits())
	res.AssertNumberOfCalls(t, "Countries", 1)
}

func TestGetFlag_CacheReadErrorPropagates(t *testing.T) {
	readErr := &cache.ReadError{Key: conversionKey([]string{"France"}, DefaultSeparator)}

	c := new(cachemocks.Cache)
	c.On("Get", mock.Anything, mock.Anything).Return(nil, false, readErr)

	s := New(resolver.NewDatasetResolver(), c, nil)

	_, err := s.GetFlag(context.Background(), []string{"France"}, ConvertOptions{})
	require.Error(t, err)

	var got *cache.ReadError
	assert.ErrorAs(t, err, &got)
}

func TestGetFlag_CacheWriteFailureIsNotFatal(t *testing.T) {
	c := new(cachemocks.Cache)
	c.On("Get", mock.Anything, mock.Anything).Return(nil, false, nil)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything).
		Return(&cache.WriteError{Key: "key"})

	s := New(resolver.NewDatasetResolver(), c, nil)

	// The result was already computed; a failed cache write only logs
	result, err := s.GetFlag(context.Background(), []string{"France"}, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, "🇫🇷", result.Flags)
	c.AssertExpectations(t)
}

func TestSharedDefaultCache(t *testing.T) {
	ClearGlobalCache()
	t.Cleanup(ClearGlobalCache)

	res := resolver.NewDatasetResolver()
	first := New(res, nil, nil)
	second := New(res, nil, nil)

	// Facades constructed without a cache share one instance; an explicit
	// cache stays private to its facade.
	private := memory.New()
	third := New(res, private, nil)
	assert.Same(t, first.ActiveCache(), second.ActiveCache())
	assert.NotSame(t, first.ActiveCache(), third.ActiveCache())

	ctx := context.Background()
	_, err := first.GetFlag(ctx, []string{"France"}, ConvertOptions{})
	require.NoError(t, err)

	// A second facade sees the first facade's entry
	_, err = second.GetFlag(ctx, []string{"France"}, ConvertOptions{})
	require.NoError(t, err)

	shared, ok := first.ActiveCache().(*memory.Cache)
	require.True(t, ok)
	assert.Equal(t, int64(1), shared.Hits())
	assert.Zero(t, private.Hits())
}

func TestClearGlobalCache(t *testing.T) {
	ClearGlobalCache()
	t.Cleanup(ClearGlobalCache)

	res := resolver.NewDatasetResolver()
	s := New(res, nil, nil)
	ctx := context.Background()

	_, err := s.GetFlag(ctx, []string{"France"}, ConvertOptions{})
	require.NoError(t, err)

	before := s.ActiveCache()
	assert.True(t, before.Contains(ctx, conversionKey([]string{"France"}, DefaultSeparator)))

	ClearGlobalCache()

	// Existing facades resolve the holder per call, so they pick up the
	// fresh instance immediately.
	after := s.ActiveCache()
	assert.NotSame(t, before, after)
	assert.False(t, after.Contains(ctx, conversionKey([]string{"France"}, DefaultSeparator)))
}

func TestClearGlobalCache_LeavesExplicitCachesAlone(t *testing.T) {
	ClearGlobalCache()
	t.Cleanup(ClearGlobalCache)

	c := memory.New()
	s := New(resolver.NewDatasetResolver(), c, nil)
	ctx := context.Background()

	_, err := s.GetFlag(ctx, []string{"Japan"}, ConvertOptions{})
	require.NoError(t, err)
	_, err = s.GetFlag(ctx, []string{"Japan"}, ConvertOptions{})
	require.NoError(t, err)
	require.Equal(t, int64(1), c.Hits())

	ClearGlobalCache()

	assert.Same(t, c, s.ActiveCache())
	assert.True(t, c.Contains(ctx, conversionKey([]string{"Japan"}, DefaultSeparator)))
	assert.Equal(t, int64(1), c.Hits())
}
