// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dates resolves due dates from section text. Extraction is
// attempted in priority order: a labeled date ("due", "deadline",
// "submission"), any bare date token, then semester-relative phrasing.
// When nothing matches the resolver fabricates a fallback date spaced
// out by assignment number so un-dated assignments spread across the
// term instead of clustering at today.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

// Source records which extraction rule produced a resolved date.
type Source string

const (
	SourceLabeled  Source = "labeled"
	SourceBare     Source = "bare"
	SourceSemester Source = "semester"
	SourceFallback Source = "fallback"
)

// Resolution is a resolved due date plus its provenance. Date is never
// zero: unresolvable sections get a fabricated fallback.
type Resolution struct {
	Date   time.Time
	Source Source
}

// Fabricated reports whether the date was invented rather than extracted.
func (r Resolution) Fabricated() bool {
	return r.Source == SourceFallback
}

var (
	// dueLabelRe locates a due/deadline label; the date token is expected
	// in a short window after it.
	dueLabelRe = regexp.MustCompile(`(?i)\b(?:due|deadline|submission|submit\s+by)\b(?:\s+date)?\s*[:\-]?\s*(?:on\s+|by\s+)?`)

	// slashDateRe matches numeric dates like 15/03/2025 or 3-4-2025.
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)

	// isoDateRe matches ISO dates like 2025-03-15.
	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	// monthNameRe matches "March 15, 2025", "15 March 2025", "Mar 3 2025".
	monthNameRe = regexp.MustCompile(`(?i)\b(?:(\d{1,2})(?:st|nd|rd|th)?\s+)?(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+(?:(\d{1,2})(?:st|nd|rd|th)?,?\s+)?(\d{4})\b`)

	// semesterRe matches semester-relative phrasing like "Semester 2, 2025".
	semesterRe = regexp.MustCompile(`(?i)\bsemester\s+([12])\s*,?\s*(\d{4})\b`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Resolve extracts a due date from section text, or fabricates one when
// no rule matches. number is the assignment's ordinal (minimum 1) and
// spaces out fabricated dates. now anchors the fallback and is supplied
// by the caller so synthesis stays reproducible.
func Resolve(section string, number int, now time.Time, cfg types.ResolverConfig) Resolution {
	if d, ok := labeledDate(section, cfg); ok {
		return Resolution{Date: d, Source: SourceLabeled}
	}
	if d, ok := ParseToken(section, cfg); ok {
		return Resolution{Date: d, Source: SourceBare}
	}
	if d, ok := semesterDate(section, cfg); ok {
		return Resolution{Date: d, Source: SourceSemester}
	}
	return Resolution{Date: Fallback(now, number, cfg), Source: SourceFallback}
}

// Fallback fabricates a due date: today + base + spacing×number days.
// Larger assignment numbers land strictly later, so fallback dates stay
// monotonic in the assignment ordinal.
func Fallback(now time.Time, number int, cfg types.ResolverConfig) time.Time {
	base := cfg.FallbackBaseDays
	if base <= 0 {
		base = 14
	}
	spacing := cfg.FallbackSpacingDays
	if spacing <= 0 {
		spacing = 14
	}
	if number <= 0 {
		number = 1
	}
	day := midnight(now)
	return day.AddDate(0, 0, base+spacing*number)
}

// labeledDate looks for a date token in a short window after a
// due/deadline label.
func labeledDate(section string, cfg types.ResolverConfig) (time.Time, bool) {
	loc := dueLabelRe.FindStringIndex(section)
	if loc == nil {
		return time.Time{}, false
	}
	window := section[loc[1]:]
	if len(window) > 48 {
		window = window[:48]
	}
	return ParseToken(window, cfg)
}

// ParseToken finds the first parseable date token in text. Slash dates
// are read day-first or month-first per cfg.DayFirst; when the selected
// order yields an impossible calendar date the other order is tried.
// This is inherently lossy for fully ambiguous dates like 03/04/2025.
func ParseToken(text string, cfg types.ResolverConfig) (time.Time, bool) {
	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		if d, ok := makeDate(m[1], m[2], m[3]); ok {
			return d, true
		}
	}
	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		if d, ok := slashDate(m[1], m[2], m[3], cfg.DayFirst); ok {
			return d, true
		}
	}
	if m := monthNameRe.FindStringSubmatch(text); m != nil {
		if d, ok := monthNameDate(m); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// slashDate interprets a D/M/Y or M/D/Y token. The configured order is
// preferred; the other order is a repair path for impossible dates.
func slashDate(first, second, year string, dayFirst bool) (time.Time, bool) {
	if dayFirst {
		if d, ok := makeDate(year, second, first); ok {
			return d, true
		}
		return makeDate(year, first, second)
	}
	if d, ok := makeDate(year, first, second); ok {
		return d, true
	}
	return makeDate(year, second, first)
}

// monthNameDate builds a date from a monthNameRe match: optional leading
// day, month name, optional trailing day, year. A missing day means the
// phrase was like "March 2025"; the 15th is used as an approximation.
func monthNameDate(m []string) (time.Time, bool) {
	month, ok := monthIndex[strings.ToLower(m[2][:3])]
	if !ok {
		return time.Time{}, false
	}
	dayStr := m[1]
	if dayStr == "" {
		dayStr = m[3]
	}
	day := 15
	if dayStr != "" {
		day, _ = strconv.Atoi(dayStr)
	}
	year, _ := strconv.Atoi(m[4])
	return checkedDate(year, month, day)
}

// semesterDate maps "Semester N, YYYY" to the configured approximate
// end-of-semester date.
func semesterDate(section string, cfg types.ResolverConfig) (time.Time, bool) {
	m := semesterRe.FindStringSubmatch(section)
	if m == nil {
		return time.Time{}, false
	}
	sem, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	ends := cfg.SemesterEnds
	if len(ends) == 0 {
		ends = map[int]string{1: "06-15", 2: "11-15"}
	}
	md, ok := ends[sem]
	if !ok {
		return time.Time{}, false
	}
	parts := strings.SplitN(md, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(parts[0])
	day, _ := strconv.Atoi(parts[1])
	return checkedDate(year, time.Month(month), day)
}

// makeDate parses year/month/day strings into a validated date.
func makeDate(yearStr, monthStr, dayStr string) (time.Time, bool) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	return checkedDate(year, time.Month(month), day)
}

// checkedDate builds a UTC midnight date and rejects values that do not
// round-trip (month 13, day 32, Feb 30).
func checkedDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// midnight truncates t to the start of its day in UTC.
func midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// String implements fmt.Stringer for log lines like
// "fallback (2025-04-26)".
func (r Resolution) String() string {
	return fmt.Sprintf("%s (%s)", r.Source, r.Date.Format("2006-01-02"))
}
