package resolver

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/countryflag/countryflag/internal/domain"
	"github.com/countryflag/countryflag/internal/flags"
)

const maxCloseMatches = 5

// DatasetResolver resolves country names against the bundled ISO 3166-1
// dataset. All indexes are built once at construction, so lookups are pure
// reads and the resolver is safe for concurrent use.
type DatasetResolver struct {
	countries []domain.CountryInfo
	byName    map[string]string // normalized name/alias/code -> ISO2
	byFlag    map[string]string // emoji flag -> country name
	byRegion  map[string][]domain.CountryInfo
}

// NewDatasetResolver builds a resolver over the bundled country table
func NewDatasetResolver() *DatasetResolver {
	r := &DatasetResolver{
		byName:   make(map[string]string),
		byFlag:   make(map[string]string),
		byRegion: make(map[string][]domain.CountryInfo),
	}

	for _, c := range countryTable {
		emoji, _ := flags.Render(c.ISO2)
		c.Flag = emoji
		r.countries = append(r.countries, c)

		r.byName[normalizeName(c.Name)] = c.ISO2
		r.byName[normalizeName(c.OfficialName)] = c.ISO2
		r.byName[normalizeName(c.ISO2)] = c.ISO2
		r.byName[normalizeName(c.ISO3)] = c.ISO2
		r.byFlag[emoji] = c.Name
		r.byRegion[c.Region] = append(r.byRegion[c.Region], c)
	}

	for alias, iso2 := range nameAliases {
		r.byName[normalizeName(alias)] = iso2
	}

	// Alias ISO2 codes render to their own flag sequences (🇺🇰, 🇬🇷-style
	// alternates) and must reverse-map to the canonical country name.
	for alias, iso2 := range codeAliases {
		r.byName[normalizeName(alias)] = iso2
		if emoji, ok := flags.Render(alias); ok {
			if name, found := r.countryName(iso2); found {
				r.byFlag[emoji] = name
			}
		}
	}

	return r
}

func (r *DatasetResolver) countryName(iso2 string) (string, bool) {
	for _, c := range r.countries {
		if c.ISO2 == iso2 {
			return c.Name, true
		}
	}
	return "", false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Convert resolves a country name or ISO code to its canonical ISO2 code
func (r *DatasetResolver) Convert(name string) (string, bool) {
	iso2, ok := r.byName[normalizeName(name)]
	return iso2, ok
}

// FindCloseMatches scores every country name against the input with
// Levenshtein similarity and returns the best candidates at or above cutoff.
func (r *DatasetResolver) FindCloseMatches(name string, cutoff float64) []Match {
	needle := normalizeName(name)
	if needle == "" {
		return nil
	}

	var matches []Match
	scores := make(map[string]float64)
	for _, c := range r.countries {
		score := levenshtein.Similarity(needle, normalizeName(c.Name), nil)
		if score >= cutoff {
			matches = append(matches, Match{Name: c.Name, Code: c.ISO2})
			scores[c.Name] = score
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return scores[matches[i].Name] > scores[matches[j].Name]
	})

	if len(matches) > maxCloseMatches {
		matches = matches[:maxCloseMatches]
	}
	return matches
}

// CountriesByRegion returns the dataset entries for a supported region
func (r *DatasetResolver) CountriesByRegion(region string) ([]domain.CountryInfo, error) {
	supported := false
	for _, name := range domain.Regions {
		if name == region {
			supported = true
			break
		}
	}
	if !supported {
		return nil, &domain.RegionError{Region: region}
	}
	return r.byRegion[region], nil
}

// Countries returns every country in the dataset
func (r *DatasetResolver) Countries() []domain.CountryInfo {
	return r.countries
}

// CountryForFlag maps an emoji flag back to a country name
func (r *DatasetResolver) CountryForFlag(emoji string) (string, bool) {
	name, ok := r.byFlag[flags.Normalize(emoji)]
	return name, ok
}

// Ensure DatasetResolver implements the interface
var _ Resolver = (*DatasetResolver)(nil)
