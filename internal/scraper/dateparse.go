package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/apperr"
)

// The index page is inconsistent about range separators. Tilde, hyphen,
// en dash, full-width tilde and stray backslashes all appear; everything
// is folded to a single canonical tilde before matching.
var separatorReplacer = strings.NewReplacer(
	"－", "~",
	"–", "~",
	"-", "~",
	"～", "~",
	"\\", "",
	" ", "",
	" ", "",
)

var (
	sameMonthRange  = regexp.MustCompile(`(\d{1,2})월(\d{1,2})일~(\d{1,2})일`)
	crossMonthRange = regexp.MustCompile(`(\d{1,2})월(\d{1,2})일~(\d{1,2})월(\d{1,2})일`)
	anyDateRange    = regexp.MustCompile(`\d{1,2}월\d{1,2}일~(?:\d{1,2}월)?\d{1,2}일`)
)

// NormalizeDateRange rewrites a raw date-range substring to the canonical
// "<M>월<D>일~[<M>월]<D>일" form used as the stored week label.
func NormalizeDateRange(text string) string {
	return separatorReplacer.Replace(strings.TrimSpace(text))
}

// FindDateRange returns the first date-range-shaped substring of text in
// canonical form, or "" when none is present.
func FindDateRange(text string) string {
	return anyDateRange.FindString(NormalizeDateRange(text))
}

// ParseDateRange converts a Korean week-range label into concrete start and
// end dates within year. The cross-month shape is tried first because the
// same-month pattern would otherwise match its leading half. When the end
// month is numerically smaller than the start month the week wraps into
// January of the following year.
func ParseDateRange(text string, year int) (time.Time, time.Time, error) {
	normalized := NormalizeDateRange(text)

	if m := crossMonthRange.FindStringSubmatch(normalized); m != nil {
		startMonth, _ := strconv.Atoi(m[1])
		startDay, _ := strconv.Atoi(m[2])
		endMonth, _ := strconv.Atoi(m[3])
		endDay, _ := strconv.Atoi(m[4])

		endYear := year
		if endMonth < startMonth {
			endYear = year + 1
		}
		start, err := buildDate(year, startMonth, startDay)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := buildDate(endYear, endMonth, endDay)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}

	if m := sameMonthRange.FindStringSubmatch(normalized); m != nil {
		month, _ := strconv.Atoi(m[1])
		startDay, _ := strconv.Atoi(m[2])
		endDay, _ := strconv.Atoi(m[3])

		start, err := buildDate(year, month, startDay)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := buildDate(year, month, endDay)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("date range %q: %w", text, apperr.ErrUnrecognizedFormat)
}

func buildDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date %d-%d-%d out of range: %w", year, month, day, apperr.ErrUnrecognizedFormat)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. 2월 30일 becomes March); reject
	// instead of silently shifting the week.
	if int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("date %d-%d-%d invalid: %w", year, month, day, apperr.ErrUnrecognizedFormat)
	}
	return t, nil
}
