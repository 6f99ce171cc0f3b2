package transcript

import (
	"path/filepath"
	"strings"
)

// Format identifies the structural conventions of a transcript file.
// It is a closed set: the per-format branching in CleanLine switches over
// these values and nothing else.
type Format int

const (
	FormatText Format = iota
	FormatVTT
	FormatSRT
	FormatHTML
)

// String returns the short name of the format.
func (f Format) String() string {
	switch f {
	case FormatVTT:
		return "vtt"
	case FormatSRT:
		return "srt"
	case FormatHTML:
		return "html"
	default:
		return "txt"
	}
}

// DetectFormat derives the format from a file's extension,
// case-insensitively. Unknown extensions are treated as plain text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return FormatVTT
	case ".srt":
		return FormatSRT
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// Eligible reports whether a file name has a recognized transcript
// extension.
func Eligible(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt", ".srt", ".txt", ".html", ".htm":
		return true
	default:
		return false
	}
}
