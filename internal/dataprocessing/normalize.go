package dataprocessing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	chineseDateTime = regexp.MustCompile(`(\d{4})年(\d{2})月(\d{2})日\s*(\d{2})?:?(\d{2})?:?(\d{2})?`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	firstNumber     = regexp.MustCompile(`\d+\.?\d*`)
)

// genericDateLayouts are tried in order when a value is not in the native
// Chinese date form.
var genericDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006/01/02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-1-2 15:04:05",
	"2006-1-2",
	"2006/1/2",
	"01/02/2006",
	"20060102",
}

// NormalizeDate converts a published-date value to the canonical
// YYYY-MM-DD_HH:MM:SS form. The native "YYYY年MM月DD日[ HH:MM:SS]" pattern
// takes priority, with absent time parts defaulting to 00; any other value
// is tried against the generic layouts. Unrecognized input is returned
// unchanged with ok=false so the caller can record a diagnostic instead of
// failing the row.
func NormalizeDate(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return "", true
	}

	if strings.Contains(s, "年") && strings.Contains(s, "月") && strings.Contains(s, "日") {
		if m := chineseDateTime.FindStringSubmatch(s); m != nil {
			hours, minutes, seconds := m[4], m[5], m[6]
			if hours == "" {
				hours = "00"
			}
			if minutes == "" {
				minutes = "00"
			}
			if seconds == "" {
				seconds = "00"
			}
			return fmt.Sprintf("%s-%s-%s_%s:%s:%s", m[1], m[2], m[3], hours, minutes, seconds), true
		}
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02_15:04:05"), true
		}
	}
	return s, false
}

// DeriveDate extracts the date-only YYYY-MM-DD value from a normalized
// published_date. The token before the first underscore (or space) is
// reparsed; when it does not resolve to a date, the derived field is null.
func DeriveDate(published string) string {
	if published == "" {
		return ""
	}
	token := published
	if i := strings.IndexByte(token, '_'); i >= 0 {
		token = token[:i]
	} else if i := strings.IndexByte(token, ' '); i >= 0 {
		token = token[:i]
	}
	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// coerceInt parses a count field value. Missing values are 0; unparseable
// values also fall back to 0 but report ok=false. Decimal input truncates
// toward zero, matching integer storage of the count columns.
func coerceInt(value string) (int64, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// NormalizeDuration parses an average-play-duration value in seconds.
// Chinese exports carry a 秒 suffix; other exports are plain numbers. When
// direct parsing fails, the first decimal substring is used, and a value
// with no number at all falls back to 0 with ok=false.
func NormalizeDuration(value string) (float64, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, true
	}
	if strings.Contains(s, durationUnit) {
		if m := firstNumber.FindString(s); m != "" {
			f, _ := strconv.ParseFloat(m, 64)
			return f, true
		}
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	if m := firstNumber.FindString(s); m != "" {
		f, _ := strconv.ParseFloat(m, 64)
		return f, true
	}
	return 0, false
}

// CleanPost normalizes free post text: whitespace runs collapse to a single
// space and newlines never survive, so synthesized post ids stay one line.
func CleanPost(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
