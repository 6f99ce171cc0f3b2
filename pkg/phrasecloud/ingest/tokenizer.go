package ingest

import (
	"regexp"
	"strings"
)

var (
	// anything that cannot appear inside a token: letters, digits,
	// apostrophe and hyphen survive, everything else collapses to a space
	nonTokenRuns = regexp.MustCompile(`[^a-zA-Z0-9'\-]+`)
	apostEdges   = regexp.MustCompile(`^'+|'+$`)
)

// Tokenize splits cleaned text into normalized word tokens. Apostrophes are
// trimmed from token edges, curly right quotes are normalized, and remaining
// apostrophes are collapsed so contractions fuse ("don't" → "dont").
// Hyphenated compounds stay intact. Purely numeric tokens are dropped unless
// keepNumbers is set.
func Tokenize(text string, keepNumbers bool) []string {
	text = nonTokenRuns.ReplaceAllString(text, " ")

	var out []string
	for _, raw := range strings.Fields(text) {
		tok := apostEdges.ReplaceAllString(raw, "")
		tok = strings.ReplaceAll(tok, "’", "'")
		tok = strings.ReplaceAll(tok, "'", "")
		if !keepNumbers && isDigits(tok) {
			continue
		}
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
