package ingest

import (
	"strings"

	"github.com/cognicore/phrasecloud/pkg/phrasecloud/transcript"
)

// Pipeline turns one transcript file's raw text into its token sequence:
// text → per-line cleaning → concatenation → casing → tokenization.
// Lines that clean to empty contribute nothing; the surviving lines are
// joined with a single space, so tokens never merge across lines.
type Pipeline struct {
	Lowercase   bool
	KeepNumbers bool
}

// Process runs a whole file's text through the pipeline.
func (p Pipeline) Process(text string, format transcript.Format) []string {
	if format == transcript.FormatHTML {
		text = transcript.ExtractHTMLText(text)
		format = transcript.FormatText
	}

	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		if c := transcript.CleanLine(line, format); c != "" {
			cleaned = append(cleaned, c)
		}
	}

	joined := strings.Join(cleaned, " ")
	if p.Lowercase {
		joined = strings.ToLower(joined)
	}
	return Tokenize(joined, p.KeepNumbers)
}
