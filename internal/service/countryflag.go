package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/countryflag/countryflag/internal/cache"
	"github.com/countryflag/countryflag/internal/domain"
	"github.com/countryflag/countryflag/internal/flags"
	"github.com/countryflag/countryflag/internal/metrics"
	"github.com/countryflag/countryflag/internal/resolver"
)

// countryFlag implements the CountryFlag interface. It holds no lock of its
// own: every cache operation relies on the backend's internal lock.
type countryFlag struct {
	resolver resolver.Resolver
	cache    cache.Cache // nil means "use the shared default"
	logger   *zap.Logger
}

// New creates a CountryFlag service. A nil cache selects the process-wide
// shared default (an in-memory cache created lazily on first use); an
// explicit cache is private to the facades it was handed to.
func New(res resolver.Resolver, c cache.Cache, logger *zap.Logger) CountryFlag {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &countryFlag{
		resolver: res,
		cache:    c,
		logger:   logger,
	}
}

// ActiveCache returns the cache this instance consults
func (s *countryFlag) ActiveCache() cache.Cache {
	if s.cache != nil {
		return s.cache
	}
	return globalDefaultCache()
}

// lookupCached queries the active cache and, on a hit, materializes the
// value into dest. Structural read errors propagate; plain misses do not.
func (s *countryFlag) lookupCached(ctx context.Context, key, operation string, dest interface{}) (bool, error) {
	value, ok, err := s.ActiveCache().Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		metrics.CacheMisses.WithLabelValues(operation).Inc()
		return false, nil
	}
	if err := cache.Decode(value, dest); err != nil {
		return false, &cache.ReadError{Key: key, Err: err}
	}
	metrics.CacheHits.WithLabelValues(operation).Inc()
	return true, nil
}

// storeCached stores a freshly computed result. A failure to cache is
// logged, not fatal: the caller already has the result.
func (s *countryFlag) storeCached(ctx context.Context, key string, value interface{}) {
	if err := s.ActiveCache().Set(ctx, key, value); err != nil {
		s.logger.Warn("failed to cache result",
			zap.String("key", key),
			zap.Error(err))
	}
}

// GetFlag converts country names to emoji flags. Blank entries are skipped
// rather than failing the whole batch; an unrecognized name fails the
// request with a domain.InvalidCountryError and nothing is cached. Fuzzy
// requests bypass the cache entirely.
func (s *countryFlag) GetFlag(ctx context.Context, countryNames []string, opts ConvertOptions) (domain.FlagResult, error) {
	metrics.Lookups.WithLabelValues("get_flag").Inc()

	if len(countryNames) == 0 {
		s.logger.Warn("empty list of country names provided")
		return domain.FlagResult{}, nil
	}

	separator := opts.Separator
	if separator == "" {
		separator = DefaultSeparator
	}

	var key string
	if !opts.Fuzzy {
		key = conversionKey(countryNames, separator)
		var cached domain.FlagResult
		hit, err := s.lookupCached(ctx, key, "get_flag", &cached)
		if err != nil {
			return domain.FlagResult{}, err
		}
		if hit {
			return cached, nil
		}
	}

	threshold := opts.FuzzyThreshold
	if threshold == 0 {
		threshold = DefaultFuzzyThreshold
	}

	flagList := make([]string, 0, len(countryNames))
	pairs := make([]domain.FlagPair, 0, len(countryNames))

	for i, countryName := range countryNames {
		if strings.TrimSpace(countryName) == "" {
			s.logger.Warn("skipping blank input",
				zap.Int("position", i))
			continue
		}

		code, found := s.resolver.Convert(countryName)
		displayName := countryName

		if !found && opts.Fuzzy {
			if matches := s.resolver.FindCloseMatches(countryName, threshold); len(matches) > 0 {
				displayName = matches[0].Name
				code = matches[0].Code
				found = true
				s.logger.Info("using fuzzy match",
					zap.String("input", countryName),
					zap.String("match", displayName))
			}
		}

		if !found {
			return domain.FlagResult{}, &domain.InvalidCountryError{Country: countryName}
		}

		emoji, valid := flags.Render(code)
		if !valid {
			return domain.FlagResult{}, &domain.InvalidCountryError{Country: countryName}
		}

		flagList = append(flagList, emoji)
		pairs = append(pairs, domain.FlagPair{Country: displayName, Flag: emoji})
	}

	result := domain.FlagResult{
		Flags: strings.Join(flagList, separator),
		Pairs: pairs,
	}

	// Only successful resolutions are cached, and never fuzzy ones.
	if !opts.Fuzzy {
		s.storeCached(ctx, key, result)
	}

	return result, nil
}

// ReverseLookup converts emoji flags back to country names
func (s *countryFlag) ReverseLookup(ctx context.Context, emojiFlags []string) ([]domain.FlagPair, error) {
	metrics.Lookups.WithLabelValues("reverse_lookup").Inc()

	if len(emojiFlags) == 0 {
		s.logger.Warn("empty list of emoji flags provided")
		return nil, nil
	}

	key := reverseLookupKey(emojiFlags)
	var cached []domain.FlagPair
	hit, err := s.lookupCached(ctx, key, "reverse_lookup", &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return cached, nil
	}

	pairs := make([]domain.FlagPair, 0, len(emojiFlags))
	for _, emoji := range emojiFlags {
		countryName, found := s.resolver.CountryForFlag(emoji)
		if !found {
			return nil, &domain.ReverseConversionError{Flag: emoji}
		}
		pairs = append(pairs, domain.FlagPair{
			Country: countryName,
			Flag:    flags.Normalize(emoji),
		})
	}

	s.storeCached(ctx, key, pairs)
	return pairs, nil
}

// GetFlagsByRegion returns flags for every country in a region. The lookup
// goes through the conversion path, so it may hit either cache layer
// independently.
func (s *countryFlag) GetFlagsByRegion(ctx context.Context, region, separator string) (domain.FlagResult, error) {
	metrics.Lookups.WithLabelValues("flags_by_region").Inc()

	if separator == "" {
		separator = DefaultSeparator
	}

	key := regionKey(region, separator)
	var cached domain.FlagResult
	hit, err := s.lookupCached(ctx, key, "flags_by_region", &cached)
	if err != nil {
		return domain.FlagResult{}, err
	}
	if hit {
		return cached, nil
	}

	countries, err := s.resolver.CountriesByRegion(region)
	if err != nil {
		s.logger.Error("failed to get countries for region",
			zap.String("region", region),
			zap.Error(err))
		return domain.FlagResult{}, err
	}

	countryNames := make([]string, len(countries))
	for i, c := range countries {
		countryNames[i] = c.Name
	}

	result, err := s.GetFlag(ctx, countryNames, ConvertOptions{Separator: separator})
	if err != nil {
		return domain.FlagResult{}, err
	}

	s.storeCached(ctx, key, result)
	return result, nil
}

// ValidateCountryName reports whether a name resolves to an ISO2 code
func (s *countryFlag) ValidateCountryName(ctx context.Context, countryName string) (bool, error) {
	metrics.Lookups.WithLabelValues("validate").Inc()

	if strings.TrimSpace(countryName) == "" {
		return false, nil
	}

	key := validationKey(countryName)
	var cached bool
	hit, err := s.lookupCached(ctx, key, "validate", &cached)
	if err != nil {
		return false, err
	}
	if hit {
		return cached, nil
	}

	_, valid := s.resolver.Convert(countryName)
	s.storeCached(ctx, key, valid)
	return valid, nil
}

// GetSupportedCountries lists every country in the dataset
func (s *countryFlag) GetSupportedCountries(ctx context.Context) ([]domain.CountryInfo, error) {
	metrics.Lookups.WithLabelValues("supported_countries").Inc()

	var cached []domain.CountryInfo
	hit, err := s.lookupCached(ctx, supportedCountriesKey, "supported_countries", &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return cached, nil
	}

	countries := s.resolver.Countries()
	s.storeCached(ctx, supportedCountriesKey, countries)
	return countries, nil
}

// Ensure countryFlag implements the interface
var _ CountryFlag = (*countryFlag)(nil)
