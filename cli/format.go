// ABOUTME: Shared CLI formatting helpers
// ABOUTME: Dollar parsing, short IDs, and column output
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDollars converts a dollar string like "1234.56" or "$1,234.56" to cents.
func parseDollars(in string) (int64, error) {
	cleaned := strings.TrimSpace(in)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(cleaned, "-") {
		negative = true
		cleaned = cleaned[1:]
	}

	whole := cleaned
	frac := "0"
	if idx := strings.Index(cleaned, "."); idx >= 0 {
		whole = cleaned[:idx]
		frac = cleaned[idx+1:]
		if len(frac) > 2 {
			return 0, fmt.Errorf("amount %q has sub-cent precision", in)
		}
		for len(frac) < 2 {
			frac += "0"
		}
	} else {
		frac = "00"
	}
	if whole == "" {
		whole = "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", in)
	}
	centsPart, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", in)
	}

	cents := dollars*100 + centsPart
	if negative {
		cents = -cents
	}
	return cents, nil
}

// formatDollars renders cents as $X,XXX.XX.
func formatDollars(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), frac)
}

// shortID truncates a UUID for table display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
