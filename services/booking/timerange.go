package booking

import (
	"regexp"
	"strings"

	"glowbook/utils"
)

// Hours 1-12 (optionally zero padded), minutes 00-59, ':' or '.' separators.
var timeRangePattern = regexp.MustCompile(
	`(?i)^(1[0-2]|0?[1-9])[:.]([0-5][0-9])\s*(AM|PM)\s*-\s*(1[0-2]|0?[1-9])[:.]([0-5][0-9])\s*(AM|PM)$`,
)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeTimeRange validates a human entered range such as "9.00 am-12.00 pm"
// and returns its canonical form "9:00 AM - 12:00 PM".
func NormalizeTimeRange(raw string) (string, error) {
	m := timeRangePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", utils.NewAppError(utils.ErrInvalidTimeFormat,
			"Invalid time range format. Use e.g. 9:00 AM - 12:00 PM")
	}
	return clock(m[1], m[2], m[3]) + " - " + clock(m[4], m[5], m[6]), nil
}

// CanonicalTimeRange is the lenient form used for stored values. Ranges that
// do not parse are still compared after textual normalization.
func CanonicalTimeRange(raw string) string {
	if normalized, err := NormalizeTimeRange(raw); err == nil {
		return normalized
	}
	s := strings.ToUpper(strings.ReplaceAll(raw, ".", ":"))
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

func clock(hour, minute, meridiem string) string {
	return strings.TrimLeft(hour, "0") + ":" + minute + " " + strings.ToUpper(meridiem)
}
