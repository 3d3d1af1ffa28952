package form

import (
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// stripMarkup removes any HTML the operator pasted into a text field
// bluemonday escapes the text it keeps, so entities are decoded again;
// templates escape on output
func stripMarkup(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(textPolicy.Sanitize(raw))
}

// upper upper-cases with Portuguese rules (JOÃO, AÇÚCAR)
// A Caser keeps state, so a new one is built per call
func upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(s)
}

// truncateRunes keeps at most n runes of s
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// acceptText applies the field's acceptance rules to typed text
func acceptText(spec fieldSpec, raw string) string {
	if spec.sanitize {
		raw = stripMarkup(raw)
	}
	return normalizeText(spec, raw)
}

// normalizeText applies casing and the length limit
// Both are idempotent, so stored values can go through it again unchanged
func normalizeText(spec fieldSpec, value string) string {
	if spec.upper {
		value = upper(value)
	}
	return truncateRunes(value, spec.maxLen)
}

// parseLeadingInt reads an optional sign followed by digits from the start of s
// Mirrors how number inputs behave: "12abc" is 12, "abc" is not a number
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range for int
		if s[0] == '-' {
			return 0, false
		}
		return MaxCount, true
	}
	return n, true
}

// clampCount keeps n within [min, MaxCount]
func clampCount(n, min int) int {
	if n < min {
		return min
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// acceptCounter coerces raw counter input; non-numeric input becomes the field minimum
func acceptCounter(spec fieldSpec, raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok {
		return spec.min
	}
	return clampCount(n, spec.min)
}
