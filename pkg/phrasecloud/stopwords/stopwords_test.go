package stopwords

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSet(t *testing.T) {
	s := Default()

	for _, w := range []string{"the", "and", "um", "yeah", "right", "okay"} {
		if !s.Contains(w) {
			t.Errorf("default set should contain %q", w)
		}
	}
	if s.Contains("data") {
		t.Error("default set should not contain content words")
	}
}

func TestContainsIsCaseSensitive(t *testing.T) {
	s := Default()
	if s.Contains("The") {
		t.Error("membership is checked on post-casing tokens; 'The' should miss")
	}
}

func TestLoadUnionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	content := "Basically\n\n  actually  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// file entries are trimmed and lowercased, defaults are still there
	for _, w := range []string{"basically", "actually", "the"} {
		if !s.Contains(w) {
			t.Errorf("set should contain %q", w)
		}
	}
}

func TestLoadEmptyPath(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if !s.Contains("the") {
		t.Error("empty path should yield the built-in set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected an error for a missing stopwords file")
	}
}
