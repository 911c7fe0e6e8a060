// Package currency implements the dashboard's millions-of-dollars display
// format: "$<number>M", with optional thousands separators inside the number
// ("$1,250.5M").
//
// The same contract is used everywhere a premium or insured value is
// aggregated: property statistics, what-if scenarios, and multiline quotes.
// Parsing is forgiving: an absent or malformed value is treated as zero so
// aggregate endpoints never fail on one bad record.
package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse extracts the numeric value from a "$<number>M" string.
// "$12.3M" → 12.3, "$1,250.5M" → 1250.5. Empty or malformed input yields 0.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "M", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Format renders a value as "$<v>M" with one decimal place, the precision
// used by dashboard statistics ("$123.4M").
func Format(v float64) string {
	return fmt.Sprintf("$%.1fM", v)
}

// FormatPrecise renders a value as "$<v>M" with two decimal places, the
// precision used by quote line items ("$1.50M").
func FormatPrecise(v float64) string {
	return fmt.Sprintf("$%.2fM", v)
}
