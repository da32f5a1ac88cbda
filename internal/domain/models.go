package domain

// CountryInfo describes a single country in the bundled dataset
type CountryInfo struct {
	Name         string `json:"name"`
	ISO2         string `json:"iso2"`
	ISO3         string `json:"iso3"`
	OfficialName string `json:"official_name"`
	Region       string `json:"region,omitempty"`
	Subregion    string `json:"subregion,omitempty"`
	Flag         string `json:"flag,omitempty"`
}

// FlagPair pairs a country name with its emoji flag
type FlagPair struct {
	Country string `json:"country"`
	Flag    string `json:"flag"`
}

// FlagResult is the combined outcome of a conversion request: the joined
// flag string plus the individual (country, flag) pairs
type FlagResult struct {
	Flags string     `json:"flags"`
	Pairs []FlagPair `json:"pairs"`
}

// Supported regions/continents for region-based lookups
const (
	RegionAfrica   = "Africa"
	RegionAmericas = "Americas"
	RegionAsia     = "Asia"
	RegionEurope   = "Europe"
	RegionOceania  = "Oceania"
)

// Regions lists the supported region names in display order
var Regions = []string{RegionAfrica, RegionAmericas, RegionAsia, RegionEurope, RegionOceania}

// ConvertRequest represents an HTTP request to convert country names to flags
type ConvertRequest struct {
	Countries      []string `json:"countries"`
	Separator      string   `json:"separator,omitempty"`
	Fuzzy          bool     `json:"fuzzy,omitempty"`
	FuzzyThreshold float64  `json:"fuzzy_threshold,omitempty"`
}

// ReverseRequest represents an HTTP request to convert flags back to country names
type ReverseRequest struct {
	Flags []string `json:"flags"`
}

// ValidateResponse represents the response for a country name validation
type ValidateResponse struct {
	Country string `json:"country"`
	Valid   bool   `json:"valid"`
}

// ErrorResponse represents an HTTP error payload
type ErrorResponse struct {
	Error string `json:"error"`
}
