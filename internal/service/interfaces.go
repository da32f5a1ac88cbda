package service

import (
	"context"

	"github.com/countryflag/countryflag/internal/cache"
	"github.com/countryflag/countryflag/internal/domain"
)

// Output formats for FormatOutput
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// DefaultSeparator joins flags when no separator is given
const DefaultSeparator = " "

// DefaultFuzzyThreshold is the similarity cutoff for fuzzy matching
const DefaultFuzzyThreshold = 0.6

// ConvertOptions tunes a conversion request
type ConvertOptions struct {
	// Separator joins the individual flags; defaults to a single space
	Separator string

	// Fuzzy enables close-match resolution for unrecognized names. Fuzzy
	// requests bypass the cache: their results depend on the threshold,
	// which the key scheme does not encode.
	Fuzzy bool

	// FuzzyThreshold is the similarity cutoff (0..1); defaults to 0.6
	FuzzyThreshold float64
}

// CountryFlag defines the interface for flag conversion operations
type CountryFlag interface {
	// GetFlag converts country names to emoji flags
	GetFlag(ctx context.Context, countryNames []string, opts ConvertOptions) (domain.FlagResult, error)

	// ReverseLookup converts emoji flags back to country names
	ReverseLookup(ctx context.Context, emojiFlags []string) ([]domain.FlagPair, error)

	// GetFlagsByRegion returns the flags of every country in a region
	GetFlagsByRegion(ctx context.Context, region, separator string) (domain.FlagResult, error)

	// ValidateCountryName reports whether a name resolves to an ISO2 code
	ValidateCountryName(ctx context.Context, countryName string) (bool, error)

	// GetSupportedCountries lists every country in the dataset
	GetSupportedCountries(ctx context.Context) ([]domain.CountryInfo, error)

	// FormatOutput renders (country, flag) pairs as text, JSON or CSV
	FormatOutput(pairs []domain.FlagPair, format, separator string) (string, error)

	// ActiveCache returns the cache this instance consults: the explicitly
	// supplied backend, or the process-wide shared default.
	ActiveCache() cache.Cache
}
