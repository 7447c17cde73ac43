package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the DD/MM/YYYY format accepted from free text and produced
// in confirmations. Every recognized date form is normalized to this layout
// at extraction time so downstream span math never sees a relative or
// named-month string.
const DateLayout = "02/01/2006"

// DateRange holds extracted start/end dates in DateLayout. Empty strings
// mean "not found".
type DateRange struct {
	Start string
	End   string
}

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december`

var (
	// Combined "date TO date" form, checked before any single-date pattern.
	dateRangePattern = regexp.MustCompile(
		`(?i)(\d{1,2}/\d{1,2}/\d{4})\s*(?:to|until|-)\s*(\d{1,2}/\d{1,2}/\d{4})`)

	// Single-date cascade, in priority order.
	numericDatePattern = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{4}`)
	monthDayPattern    = regexp.MustCompile(`(?i)(` + monthNames + `)\s+(\d{1,2}),?\s+(\d{4})`)
	dayMonthPattern    = regexp.MustCompile(`(?i)(\d{1,2})\s+(` + monthNames + `)\s+(\d{4})`)
	relativePattern    = regexp.MustCompile(
		`(?i)\b(today|tomorrow|next\s+week|next\s+monday|next\s+tuesday|next\s+wednesday|next\s+thursday|next\s+friday)\b`)

	singleDatePatterns = []*regexp.Regexp{
		numericDatePattern,
		monthDayPattern,
		dayMonthPattern,
		relativePattern,
	}
)

var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday,
}

// ExtractDates pulls a start/end date pair from free text. A combined range
// wins outright; otherwise the single-date cascade collects up to two
// matches, with end defaulting to start. Relative terms resolve against now.
func ExtractDates(message string, now time.Time) DateRange {
	if m := dateRangePattern.FindStringSubmatch(message); m != nil {
		start, okStart := normalizeDate(m[1], now)
		end, okEnd := normalizeDate(m[2], now)
		if okStart && okEnd {
			return DateRange{Start: start, End: end}
		}
	}

	var dates []string
	for _, pattern := range singleDatePatterns {
		for _, match := range pattern.FindAllString(message, -1) {
			if normalized, ok := normalizeDate(match, now); ok {
				dates = append(dates, normalized)
			}
			if len(dates) == 2 {
				break
			}
		}
		if len(dates) == 2 {
			break
		}
	}

	switch len(dates) {
	case 0:
		return DateRange{}
	case 1:
		return DateRange{Start: dates[0], End: dates[0]}
	default:
		return DateRange{Start: dates[0], End: dates[1]}
	}
}

// normalizeDate converts any recognized date form to DateLayout. Reports
// false for strings that look date-shaped but don't denote a real calendar
// day (e.g. 32/01/2025).
func normalizeDate(s string, now time.Time) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))

	if d, ok := resolveRelative(lower, now); ok {
		return d.Format(DateLayout), true
	}

	if m := dayMonthPattern.FindStringSubmatch(lower); m != nil && len(lower) == len(m[0]) {
		return formatDMY(m[1], m[2], m[3])
	}
	if m := monthDayPattern.FindStringSubmatch(lower); m != nil && len(lower) == len(m[0]) {
		return formatDMY(m[2], m[1], m[3])
	}

	if numericDatePattern.MatchString(lower) {
		parts := strings.FieldsFunc(lower, func(r rune) bool { return r == '/' || r == '-' })
		if len(parts) != 3 {
			return "", false
		}
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		return formatDate(day, time.Month(month), year)
	}

	return "", false
}

func resolveRelative(lower string, now time.Time) (time.Time, bool) {
	normalized := strings.Join(strings.Fields(lower), " ")

	switch normalized {
	case "today":
		return now, true
	case "tomorrow":
		return now.AddDate(0, 0, 1), true
	case "next week":
		return now.AddDate(0, 0, 7), true
	}

	if day, ok := strings.CutPrefix(normalized, "next "); ok {
		if wd, ok := weekdays[day]; ok {
			ahead := (int(wd) - int(now.Weekday()) + 7) % 7
			if ahead == 0 {
				ahead = 7
			}
			return now.AddDate(0, 0, ahead), true
		}
	}

	return time.Time{}, false
}

func formatDMY(dayStr, monthStr, yearStr string) (string, bool) {
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)
	month, ok := months[monthStr]
	if !ok {
		return "", false
	}
	return formatDate(day, month, year)
}

// formatDate validates the calendar day via a time.Date round trip before
// formatting, so 31/02/2025 is rejected instead of silently rolling over.
func formatDate(day int, month time.Month, year int) (string, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return "", false
	}
	return t.Format(DateLayout), true
}

// LeaveDays computes the inclusive day span between two DateLayout dates:
// ceil of the absolute difference in days, plus one for the start day.
// Returns 1 when either date fails to parse.
func LeaveDays(start, end string) int {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return 1
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return 1
	}

	diff := math.Abs(to.Sub(from).Hours()) / 24
	return int(math.Ceil(diff)) + 1
}

// formatRange renders a date pair for confirmation text, collapsing
// single-day ranges.
func formatRange(r DateRange) string {
	if r.End == "" || r.End == r.Start {
		return r.Start
	}
	return fmt.Sprintf("%s to %s", r.Start, r.End)
}
