// Package temporal normalizes the heterogeneous date and duration text the
// scraped sources produce into canonical times and minute counts.
//
// Show durations arrive as Dutch free text ("2 uur 15 min"), performance
// dates as locale-specific text combining a machine-readable date token
// with an HH:MM time marker, and trip timestamps in a fixed offset-aware
// layout. Everything is reduced to naive local wall-clock values before
// comparison; nothing in this package raises on bad input.
package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// DefaultShowMinutes substitutes for absent or unparseable durations.
const DefaultShowMinutes = 90

var (
	timeRe    = regexp.MustCompile(`\b(\d{2}):(\d{2})\b`)
	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2}))?\b`)
)

// ParseDuration converts Dutch duration text to minutes. An hour marker
// ("uur") contributes hours×60 plus any minute marker ("min") in the
// remainder; a bare minute marker contributes its value. Any numeric token
// that fails to parse, or a non-positive result, yields DefaultShowMinutes.
func ParseDuration(text string) int {
	minutes := 0
	switch {
	case strings.Contains(text, "uur"):
		parts := strings.SplitN(text, "uur", 2)
		hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return DefaultShowMinutes
		}
		minutes = hours * 60
		if strings.Contains(parts[1], "min") {
			m, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(parts[1], "min", 2)[0]))
			if err != nil {
				return DefaultShowMinutes
			}
			minutes += m
		}
	case strings.Contains(text, "min"):
		m, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(text, "min", 2)[0]))
		if err != nil {
			return DefaultShowMinutes
		}
		minutes = m
	}

	if minutes <= 0 {
		return DefaultShowMinutes
	}
	return minutes
}

// dateLayouts are tried in order against the date portion of performance
// text, per locale.
var dateLayouts = []string{
	"2006-01-02",
	"Monday 2 January 2006",
	"Monday 2 January",
	"Mon 2 Jan 2006",
	"Mon 2 Jan",
	"2 January 2006",
	"2 January",
	"2 Jan 2006",
	"2 Jan",
	"January 2",
	"Jan 2",
}

var locales = map[string]monday.Locale{
	"nl": monday.LocaleNlNL,
	"en": monday.LocaleEnUS,
}

// ParseDateTime parses free performance-date text in the given languages
// ("nl", "en"). It recognizes an embedded HH:MM time marker combined with
// either an ISO date token or locale month-name text. The second return
// value is false when no date could be recognized; callers skip such
// instances.
func ParseDateTime(text string, languages []string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	hour, minute := 0, 0
	if m := timeRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return time.Time{}, false
		}
	}

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		// A time attached to the date token ("2025-06-06T20:15") wins over
		// a free-standing HH:MM elsewhere in the text.
		if m[4] != "" {
			hour, _ = strconv.Atoi(m[4])
			minute, _ = strconv.Atoi(m[5])
			if hour > 23 || minute > 59 {
				return time.Time{}, false
			}
		}
		return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), true
	}

	datePart := strings.TrimSpace(timeRe.ReplaceAllString(text, ""))
	datePart = strings.Join(strings.Fields(datePart), " ")
	if datePart == "" {
		return time.Time{}, false
	}

	for _, lang := range languages {
		locale, ok := locales[strings.ToLower(lang)]
		if !ok {
			continue
		}
		for _, layout := range dateLayouts {
			for _, candidate := range []string{datePart, strings.ToLower(datePart)} {
				dt, err := monday.ParseInLocation(layout, candidate, time.Local, locale)
				if err != nil {
					continue
				}
				return time.Date(dt.Year(), dt.Month(), dt.Day(), hour, minute, 0, 0, time.Local), true
			}
		}
	}

	return time.Time{}, false
}

// FormatHuman renders a performance instant for display in the given
// language, falling back to English layout names when the language is
// unknown.
func FormatHuman(t time.Time, lang string) string {
	const layout = "Monday 2 January 15:04"
	if locale, ok := locales[strings.ToLower(lang)]; ok {
		return monday.Format(t, layout, locale)
	}
	return t.Format(layout)
}

// InjectYear forces the assumed year onto a parsed datetime. The scraped
// source omits the year, so this is ambiguous around year boundaries: a
// December listing scraped in January belongs to the previous year, and
// vice versa. The assumed year is configuration, not a constant.
func InjectYear(t time.Time, year int) time.Time {
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// WallClock strips zone information to naive local wall-clock semantics.
// Both provider timestamps and locally computed show windows pass through
// here before any comparison, so aware and naive values never mix.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
