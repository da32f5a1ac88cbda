package service

import "strings"

// Cache keys are derived deterministically from the operation signature.
// The ordered input list is significant: reordering inputs changes the key
// and therefore the lookup outcome.
const supportedCountriesKey = "supported_countries"

func conversionKey(countryNames []string, separator string) string {
	return "get_flag_" + strings.Join(countryNames, ",") + "_" + separator
}

func reverseLookupKey(emojiFlags []string) string {
	return "reverse_lookup_" + strings.Join(emojiFlags, ",")
}

func regionKey(region, separator string) string {
	return "flags_by_region_" + region + "_" + separator
}

func validationKey(countryName string) string {
	return "validate_" + countryName
}
