package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/countryflag/countryflag/internal/cache"
	"github.com/countryflag/countryflag/internal/domain"
	"github.com/countryflag/countryflag/internal/service"
)

// CountryFlag is a mock implementation of service.CountryFlag
type CountryFlag struct {
	mock.Mock
}

// GetFlag converts country names to emoji flags
func (m *CountryFlag) GetFlag(ctx context.Context, countryNames []string, opts service.ConvertOptions) (domain.FlagResult, error) {
	args := m.Called(ctx, countryNames, opts)
	return args.Get(0).(domain.FlagResult), args.Error(1)
}

// ReverseLookup converts emoji flags back to country names
func (m *CountryFlag) ReverseLookup(ctx context.Context, emojiFlags []string) ([]domain.FlagPair, error) {
	args := m.Called(ctx, emojiFlags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlagPair), args.Error(1)
}

// GetFlagsByRegion returns the flags of every country in a region
func (m *CountryFlag) GetFlagsByRegion(ctx context.Context, region, separator string) (domain.FlagResult, error) {
	args := m.Called(ctx, region, separator)
	return args.Get(0).(domain.FlagResult), args.Error(1)
}

// ValidateCountryName reports whether a name resolves to an ISO2 code
func (m *CountryFlag) ValidateCountryName(ctx context.Context, countryName string) (bool, error) {
	args := m.Called(ctx, countryName)
	return args.Bool(0), args.Error(1)
}

// GetSupportedCountries lists every country in the dataset
func (m *CountryFlag) GetSupportedCountries(ctx context.Context) ([]domain.CountryInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountryInfo), args.Error(1)
}

// FormatOutput renders (country, flag) pairs in the requested format
func (m *CountryFlag) FormatOutput(pairs []domain.FlagPair, format, separator string) (string, error) {
	args := m.Called(pairs, format, separator)
	return args.String(0), args.Error(1)
}

// ActiveCache returns the cache this instance consults
func (m *CountryFlag) ActiveCache() cache.Cache {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(cache.Cache)
}
