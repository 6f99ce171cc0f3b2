package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/cognicore/phrasecloud/pkg/phrasecloud/internalerr"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/transcript"
)

// File is one eligible transcript discovered under the input root.
type File struct {
	Path   string
	Format transcript.Format
}

// Scan walks root recursively and returns the eligible transcript files in
// stable path order. A missing root is the one hard failure; unreadable
// entries below it are skipped so a partial corpus still scans.
func Scan(root string) ([]File, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", internalerr.ErrInputNotFound, root)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !transcript.Eligible(path) {
			return nil
		}
		files = append(files, File{Path: path, Format: transcript.DetectFormat(path)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// ReadText reads a file and decodes it as UTF-8. Invalid UTF-8 falls back
// to a permissive Latin-1 interpretation, which cannot fail: every byte
// maps to a rune. Garbled tokens from a wrong guess are left to the
// downstream filters.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	rs := make([]rune, len(data))
	for i, b := range data {
		rs[i] = rune(b)
	}
	return string(rs), nil
}
