package transcript

import (
	"regexp"
	"strings"
)

var (
	webvttHeader = regexp.MustCompile(`(?i)^\s*WEBVTT\b`)
	// inline cue styling such as <c.colorFFFFFF> and </c>
	cueTag   = regexp.MustCompile(`(?i)</?c(?:\.[^>]+)?>`)
	srtIndex = regexp.MustCompile(`^\s*\d+\s*$`)

	urlPat    = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	markupTag = regexp.MustCompile(`<[^>]+>`)

	// "Alice: ", "Bob (Host): ", "Team A - John: " at line start. A leading
	// clause that happens to contain a colon is stripped too; that
	// imprecision is accepted.
	speakerPrefix = regexp.MustCompile(`^\s*[^:]{1,80}:\s+`)
)

// CleanLine strips the structural artifacts from one raw transcript line.
// An empty result means the line carried no speech and should be discarded.
// The rules run in a fixed order; format-specific ones first, then URL and
// markup removal, timestamp removal, and the speaker-label strip.
func CleanLine(line string, format Format) string {
	s := strings.TrimRight(line, "\r\n")
	if s == "" {
		return ""
	}

	switch format {
	case FormatVTT:
		if webvttHeader.MatchString(s) {
			return ""
		}
		s = cueTag.ReplaceAllString(s, " ")
	case FormatSRT:
		// bare sequence index between cues
		if srtIndex.MatchString(s) {
			return ""
		}
	}

	s = urlPat.ReplaceAllString(s, " ")
	s = markupTag.ReplaceAllString(s, " ")
	s = StripTimestamps(s)
	s = speakerPrefix.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	// whole-line non-speech cues like "(laughter)" or "[applause]"
	if wrappedCue(s) {
		return ""
	}
	return s
}

func wrappedCue(s string) bool {
	if s == "" {
		return false
	}
	return (strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}
