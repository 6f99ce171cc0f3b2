package freq

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV serializes a table as a two-column CSV with the given phrase
// column name ("phrase" or "word") and a "count" column, rows by descending
// count. top > 0 truncates.
func WriteCSV(w io.Writer, t *Table, phraseHeader string, top int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{phraseHeader, "count"}); err != nil {
		return err
	}
	for _, e := range t.Entries(top) {
		if err := cw.Write([]string{e.Phrase, strconv.FormatUint(e.Count, 10)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes a table to path, creating parent directories as needed.
func WriteFile(path string, t *Table, phraseHeader string, top int) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, t, phraseHeader, top); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// OrderPath derives the output path for an n-gram order from the unigram
// base path: "counts.csv" → "counts_ngram2.csv". Order 1 is the base path
// itself.
func OrderPath(base string, order int) string {
	if order <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	if ext == "" {
		ext = ".csv"
	}
	return fmt.Sprintf("%s_ngram%d%s", stem, order, ext)
}
