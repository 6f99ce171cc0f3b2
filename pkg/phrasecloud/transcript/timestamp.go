package transcript

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Timestamp shapes, in precedence order. Each rule runs once over the whole
// string; later rules never re-scan text substituted by earlier ones.
var (
	// "00:01:23.456 --> 00:01:25,789"
	stampRange = regexp.MustCompile(`\b\d{2}:\d{2}:\d{2}[.,]\d{3}\s*-->\s*\d{2}:\d{2}:\d{2}[.,]\d{3}\b`)
	// "[00:01:23]" or "[ 01:23 ]"
	stampBracketed = regexp.MustCompile(`\[\s*\d{1,2}:\d{2}(?::\d{2})?\s*\]`)
	// "00:01:23.456" or "00:01:23,456"
	stampHMSMillis = regexp.MustCompile(`\b\d{2}:\d{2}:\d{2}[.,]\d{3}\b`)
	// "00:01:23"
	stampHMS = regexp.MustCompile(`\b\d{2}:\d{2}:\d{2}\b`)
	// candidate "01:23" / "1:23"; boundary checks happen in stripShortStamps
	stampShort = regexp.MustCompile(`\d{1,2}:\d{2}`)
)

var stampRules = []func(string) string{
	func(s string) string { return stampRange.ReplaceAllString(s, " ") },
	func(s string) string { return stampBracketed.ReplaceAllString(s, " ") },
	func(s string) string { return stampHMSMillis.ReplaceAllString(s, " ") },
	func(s string) string { return stampHMS.ReplaceAllString(s, " ") },
	stripShortStamps,
}

// StripTimestamps removes every timestamp-shaped substring, applying the
// five shape rules in strict precedence order.
func StripTimestamps(s string) string {
	for _, rule := range stampRules {
		s = rule(s)
	}
	return s
}

// stripShortStamps removes standalone MM:SS stamps. The short shape needs a
// negative lookaround (no word rune touching either side, no ":digit" tail),
// which RE2 cannot express, so candidates are checked by hand. A rejected
// candidate only advances the scan by one rune: an inner window such as the
// "23:45" inside "1:23:45" must still get its chance.
func stripShortStamps(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		loc := stampShort.FindStringIndex(s[i:])
		if loc == nil {
			b.WriteString(s[i:])
			return b.String()
		}
		start, end := i+loc[0], i+loc[1]
		if shortStampBounded(s, start, end) {
			b.WriteString(s[i:start])
			b.WriteByte(' ')
			i = end
			continue
		}
		b.WriteString(s[i : start+1])
		i = start + 1
	}
	return b.String()
}

func shortStampBounded(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
		if r == ':' && end+size < len(s) {
			next, _ := utf8.DecodeRuneInString(s[end+size:])
			if unicode.IsDigit(next) {
				return false
			}
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
