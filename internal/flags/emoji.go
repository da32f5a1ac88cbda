// Package flags renders and parses Unicode emoji flag sequences built from
// regional indicator symbols (U+1F1E6..U+1F1FF).
package flags

import "strings"

const (
	regionalIndicatorBase = 0x1F1E6
	regionalIndicatorEnd  = 0x1F1FF
	letterA               = 'A'
)

// Render converts a two-letter ISO 3166-1 alpha-2 code into its emoji flag
// sequence. The boolean reports whether the input was a valid code shape;
// no dataset lookup happens here.
func Render(iso2 string) (string, bool) {
	if len(iso2) != 2 {
		return "", false
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(iso2) {
		if r < 'A' || r > 'Z' {
			return "", false
		}
		b.WriteRune(rune(regionalIndicatorBase + (r - letterA)))
	}
	return b.String(), true
}

// Parse converts an emoji flag sequence back into its ISO 3166-1 alpha-2
// code. The boolean reports whether the input was exactly two regional
// indicator symbols.
func Parse(emoji string) (string, bool) {
	runes := []rune(strings.TrimSpace(emoji))
	if len(runes) != 2 {
		return "", false
	}

	var b strings.Builder
	for _, r := range runes {
		if r < regionalIndicatorBase || r > regionalIndicatorEnd {
			return "", false
		}
		b.WriteRune(letterA + (r - regionalIndicatorBase))
	}
	return b.String(), true
}

// IsFlagSequence reports whether the string is a valid two-symbol regional
// indicator sequence.
func IsFlagSequence(emoji string) bool {
	_, ok := Parse(emoji)
	return ok
}

// Normalize trims surrounding whitespace from a flag emoji when it is a
// valid regional indicator sequence, and returns other inputs unchanged.
func Normalize(emoji string) string {
	trimmed := strings.TrimSpace(emoji)
	if IsFlagSequence(trimmed) {
		return trimmed
	}
	return emoji
}
