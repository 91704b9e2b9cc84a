// Package booking holds the input normalization shared by every
// booking-creation endpoint: loose D/M/Y dates, H:MM times, free-text
// amounts, owner attribution and human-readable references.
package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dmySep  = regexp.MustCompile(`[/-]`)
	timeRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
	amountRe = regexp.MustCompile(`[^0-9.]`)
)

// ParseDateDMY converts "5/3/2024" or "5-3-2024" (day first, not ISO)
// to "2024-03-05". Anything that is not exactly three numeric parts
// returns "".
func ParseDateDMY(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	parts := dmySep.Split(s, -1)
	if len(parts) != 3 {
		return ""
	}
	d, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	y, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// ParseTime matches a leading H:MM or HH:MM (seconds ignored) and
// returns "HH:MM:00", or "" when the input does not match.
func ParseTime(s string) string {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ""
	}
	h, _ := strconv.Atoi(m[1])
	return fmt.Sprintf("%02d:%s:00", h, m[2])
}

// NormalizeDate returns the parsed date or, when parsing fails, the raw
// input unchanged. Malformed dates are persisted as sent.
func NormalizeDate(s string) string {
	if parsed := ParseDateDMY(s); parsed != "" {
		return parsed
	}
	return s
}

// NormalizeTime returns the parsed time or the raw input unchanged.
func NormalizeTime(s string) string {
	if parsed := ParseTime(s); parsed != "" {
		return parsed
	}
	return s
}

// ParseAmount strips everything that is not a digit or '.' from a
// free-text amount ("$1,234.50" -> 1234.5). Non-numeric input yields nil.
func ParseAmount(s string) *float64 {
	cleaned := amountRe.ReplaceAllString(strings.TrimSpace(s), "")
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &n
}

// NewReference builds the human-readable booking reference, e.g.
// "JET-1690000000000". Millisecond resolution only: references are not
// collision-proof under concurrent bursts, primary keys are.
func NewReference(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}
