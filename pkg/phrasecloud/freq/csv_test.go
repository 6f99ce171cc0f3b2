package freq

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	table := NewTable()
	table.Add("data science", 3)
	table.Add("code review", 1)

	var b strings.Builder
	if err := WriteCSV(&b, table, "phrase", 0); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "phrase,count\ndata science,3\ncode review,1\n"
	if b.String() != want {
		t.Errorf("WriteCSV = %q, want %q", b.String(), want)
	}
}

func TestWriteCSVWordHeaderAndTop(t *testing.T) {
	table := NewTable()
	table.Add("alpha", 5)
	table.Add("beta", 4)
	table.Add("gamma", 3)

	var b strings.Builder
	if err := WriteCSV(&b, table, "word", 2); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "word,count" {
		t.Errorf("header = %q, want word,count", lines[0])
	}
}

func TestWriteCSVEmptyTable(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, NewTable(), "phrase", 0); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if b.String() != "phrase,count\n" {
		t.Errorf("empty table should emit header only, got %q", b.String())
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	table := NewTable()
	table.Inc("hello")

	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	if err := WriteFile(path, table, "word", 0); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "word,count\nhello,1\n" {
		t.Errorf("file contents = %q", data)
	}
}

func TestOrderPath(t *testing.T) {
	tests := []struct {
		base  string
		order int
		want  string
	}{
		{"counts.csv", 1, "counts.csv"},
		{"counts.csv", 2, "counts_ngram2.csv"},
		{"out/word_counts.csv", 3, "out/word_counts_ngram3.csv"},
		{"counts", 2, "counts_ngram2.csv"},
	}
	for _, tt := range tests {
		if got := OrderPath(tt.base, tt.order); got != tt.want {
			t.Errorf("OrderPath(%q, %d) = %q, want %q", tt.base, tt.order, got, tt.want)
		}
	}
}
