package scraper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const sepClass = `[~\-–～\\]`

// Named-corpus patterns come before the generic numeric ones so that
// "교리와 성약 98~101편" is not swallowed by the bare "98~101편" matcher.
// The book-name alternation covers the corpora the publisher rotates
// through year to year.
var scripturePatterns = []struct {
	re     *regexp.Regexp
	render func(m []string) string
}{
	{
		re: regexp.MustCompile(`교리와\s*성약\s*(\d+)\s*` + sepClass + `+\s*(\d+)\s*편`),
		render: func(m []string) string {
			return fmt.Sprintf("교리와 성약 %s~%s편", m[1], m[2])
		},
	},
	{
		re: regexp.MustCompile(`교리와\s*성약\s*(\d+)\s*편`),
		render: func(m []string) string {
			return fmt.Sprintf("교리와 성약 %s편", m[1])
		},
	},
	{
		re: regexp.MustCompile(`D&C\s*(\d+)\s*` + sepClass + `\s*(\d+)`),
		render: func(m []string) string {
			return fmt.Sprintf("교리와 성약 %s~%s편", m[1], m[2])
		},
	},
	{
		re: regexp.MustCompile(`D&C\s*(\d+)`),
		render: func(m []string) string {
			return fmt.Sprintf("교리와 성약 %s편", m[1])
		},
	},
	{
		re: regexp.MustCompile(`(구약전서|신약전서|몰몬경|값진\s*진주)\s*([가-힣]*\s*)?(\d+)\s*` + sepClass + `+\s*(\d+)\s*장`),
		render: func(m []string) string {
			book := strings.TrimSpace(m[2])
			if book != "" {
				book += " "
			}
			return fmt.Sprintf("%s %s%s~%s장", m[1], book, m[3], m[4])
		},
	},
	{
		re: regexp.MustCompile(`(구약전서|신약전서|몰몬경|값진\s*진주)\s*([가-힣]*\s*)?(\d+)\s*장`),
		render: func(m []string) string {
			book := strings.TrimSpace(m[2])
			if book != "" {
				book += " "
			}
			return fmt.Sprintf("%s %s%s장", m[1], book, m[3])
		},
	},
	{
		re: regexp.MustCompile(`(\d+)\s*` + sepClass + `+\s*(\d+)\s*(편|장)`),
		render: func(m []string) string {
			if m[3] == "편" {
				return fmt.Sprintf("교리와 성약 %s~%s편", m[1], m[2])
			}
			return fmt.Sprintf("%s~%s장", m[1], m[2])
		},
	},
	{
		re: regexp.MustCompile(`(\d+)\s*(편|장)`),
		render: func(m []string) string {
			if m[2] == "편" {
				return fmt.Sprintf("교리와 성약 %s편", m[1])
			}
			return fmt.Sprintf("%s장", m[1])
		},
	},
}

// Matches a date-range substring in raw (unnormalized) link text, tolerant
// of whitespace and every separator variant the site has been seen to use.
var rawDateRange = regexp.MustCompile(`\d{1,2}\s*월\s*\d{1,2}\s*일\s*` + sepClass + `*\s*(?:\d{1,2}\s*월\s*)?\d{1,2}\s*일`)

// StripDateRange removes any date-range substrings from text, for display
// labels that should not repeat the week's dates.
func StripDateRange(text string) string {
	return strings.TrimSpace(rawDateRange.ReplaceAllString(text, ""))
}

// ExtractScriptureRange pulls a scripture/passage label out of lesson link
// text. It always returns something usable; when no pattern matches, the
// text minus its date range stands in, and when even that is too short a
// generic year label is synthesized.
func ExtractScriptureRange(text string, year int) string {
	for _, p := range scripturePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return p.render(m)
		}
	}

	residual := strings.TrimSpace(rawDateRange.ReplaceAllString(text, ""))
	residual = strings.Trim(residual, `"'“” `)
	if utf8.RuneCountInString(residual) < 2 {
		return fmt.Sprintf("%d년 공과", year)
	}
	return residual
}
