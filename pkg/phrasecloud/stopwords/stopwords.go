package stopwords

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// defaultList covers English function words plus the filler words that
// dominate meeting speech ("um", "like", "yeah", ...).
var defaultList = []string{
	"a", "an", "and", "the", "or", "but", "if", "then", "than", "that", "this", "those", "these", "there", "here", "when", "where",
	"why", "how", "what", "which", "who", "whom", "whose", "with", "without", "for", "from", "to", "in", "into", "on", "onto",
	"of", "at", "by", "be", "is", "am", "are", "was", "were", "been", "being", "as", "do", "does", "did", "done", "doing", "have",
	"has", "had", "having", "i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "her", "hers", "herself", "it", "its", "itself", "they", "them", "their",
	"theirs", "themselves", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "too", "very", "can", "could", "should", "would", "may", "might", "will", "just", "also",
	"um", "uh", "erm", "hmm", "like", "kinda", "sorta", "yeah", "right", "okay", "ok", "alright",
}

// Set is an immutable-by-convention set of lowercase stopwords.
type Set map[string]struct{}

// Default returns a fresh set holding the built-in stopword list.
func Default() Set {
	s := make(Set, len(defaultList))
	for _, w := range defaultList {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports set membership. Lookups are case-sensitive; callers are
// expected to have applied their casing policy already.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Add inserts a word, lowercased.
func (s Set) Add(word string) {
	s[strings.ToLower(word)] = struct{}{}
}

// Load returns the built-in set unioned with the words from a
// newline-delimited file. Each non-blank line is trimmed and lowercased.
// An empty path yields just the built-in set.
func Load(path string) (Set, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		s[strings.ToLower(w)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return s, nil
}
