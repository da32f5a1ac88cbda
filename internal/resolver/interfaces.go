package resolver

import "github.com/countryflag/countryflag/internal/domain"

// Match is a fuzzy-matching candidate: a country name and its ISO2 code
type Match struct {
	Name string
	Code string
}

// Resolver defines the country name resolution operations the lookup facade
// delegates to on a cache miss.
type Resolver interface {
	// Convert resolves a country name (or ISO2/ISO3 code) to its canonical
	// ISO2 code. The boolean reports whether the input was recognized.
	Convert(name string) (string, bool)

	// FindCloseMatches returns up to five country names whose similarity to
	// the input is at or above cutoff (0..1), best match first.
	FindCloseMatches(name string, cutoff float64) []Match

	// CountriesByRegion returns the countries belonging to one of the
	// supported regions, or a domain.RegionError for unknown regions.
	CountriesByRegion(region string) ([]domain.CountryInfo, error)

	// Countries returns every country in the dataset
	Countries() []domain.CountryInfo

	// CountryForFlag maps an emoji flag sequence back to a country name,
	// covering alias codes (🇺🇰 → United Kingdom) and special territories
	// (🇦🇨 → Ascension Island).
	CountryForFlag(emoji string) (string, bool)
}
