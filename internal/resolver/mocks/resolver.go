package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/countryflag/countryflag/internal/domain"
	"github.com/countryflag/countryflag/internal/resolver"
)

// Resolver is a mock implementation of resolver.Resolver
type Resolver struct {
	mock.Mock
}

// Convert resolves a country name to its ISO2 code
func (m *Resolver) Convert(name string) (string, bool) {
	args := m.Called(name)
	return args.String(0), args.Bool(1)
}

// FindCloseMatches returns fuzzy-matching candidates
func (m *Resolver) FindCloseMatches(name string, cutoff float64) []resolver.Match {
	args := m.Called(name, cutoff)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]resolver.Match)
}

// CountriesByRegion returns the countries belonging to a region
func (m *Resolver) CountriesByRegion(region string) ([]domain.CountryInfo, error) {
	args := m.Called(region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountryInfo), args.Error(1)
}

// Countries returns every country in the dataset
func (m *Resolver) Countries() []domain.CountryInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.CountryInfo)
}

// CountryForFlag maps an emoji flag back to a country name
func (m *Resolver) CountryForFlag(emoji string) (string, bool) {
	args := m.Called(emoji)
	return args.String(0), args.Bool(1)
}
