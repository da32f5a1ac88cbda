package domain

import "fmt"

// InvalidCountryError is returned when a country name cannot be resolved to
// an ISO2 code
type InvalidCountryError struct {
	Country string
}

func (e *InvalidCountryError) Error() string {
	return fmt.Sprintf("country not found: %s", e.Country)
}

// ReverseConversionError is returned when a flag emoji cannot be mapped back
// to a country name
type ReverseConversionError struct {
	Flag string
}

func (e *ReverseConversionError) Error() string {
	return fmt.Sprintf("cannot convert flag emoji to country name: %s", e.Flag)
}

// RegionError is returned when a region name is not one of the supported
// regions
type RegionError struct {
	Region string
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("unsupported region: %s", e.Region)
}
