package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/countryflag/countryflag/internal/domain"
)

// FormatOutput renders (country, flag) pairs in the requested format.
// Text output joins the flags with the separator; JSON and CSV carry both
// the country name and the flag.
func (s *countryFlag) FormatOutput(pairs []domain.FlagPair, format, separator string) (string, error) {
	if separator == "" {
		separator = DefaultSeparator
	}

	switch format {
	case FormatJSON:
		data, err := json.Marshal(pairs)
		if err != nil {
			return "", fmt.Errorf("failed to encode pairs as JSON: %w", err)
		}
		return string(data), nil

	case FormatCSV:
		var b strings.Builder
		w := csv.NewWriter(&b)
		if err := w.Write([]string{"Country", "Flag"}); err != nil {
			return "", fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, pair := range pairs {
			if err := w.Write([]string{pair.Country, pair.Flag}); err != nil {
				return "", fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", fmt.Errorf("failed to flush CSV output: %w", err)
		}
		return b.String(), nil

	case FormatText, "":
		flagList := make([]string, len(pairs))
		for i, pair := range pairs {
			flagList[i] = pair.Flag
		}
		return strings.Join(flagList, separator), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
