package freq

import "sort"

// Table maps phrases (single tokens or space-joined n-grams) to counts.
// First-insertion order is tracked so that equal counts serialize in a
// deterministic order.
type Table struct {
	counts map[string]uint64
	seen   map[string]int
	next   int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		counts: make(map[string]uint64),
		seen:   make(map[string]int),
	}
}

// Inc adds one occurrence of phrase.
func (t *Table) Inc(phrase string) {
	t.Add(phrase, 1)
}

// Add folds n occurrences of phrase into the table. Empty phrases are
// ignored; a table never holds an empty key.
func (t *Table) Add(phrase string, n uint64) {
	if phrase == "" || n == 0 {
		return
	}
	if _, ok := t.counts[phrase]; !ok {
		t.seen[phrase] = t.next
		t.next++
	}
	t.counts[phrase] += n
}

// Count returns the count for phrase, zero when absent.
func (t *Table) Count(phrase string) uint64 {
	return t.counts[phrase]
}

// Len returns the number of distinct phrases.
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *Table) Total() uint64 {
	var sum uint64
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Merge folds other's counts into t. Other's phrases arrive in their
// first-seen order, so phrases new to t keep a stable insertion rank.
func (t *Table) Merge(other *Table) {
	for _, p := range other.phrasesByInsertion() {
		t.Add(p, other.counts[p])
	}
}

// Entry is one row of a finalized table.
type Entry struct {
	Phrase string
	Count  uint64
}

// Entries returns rows sorted by descending count, ties broken by first
// insertion. top > 0 truncates to the top rows.
func (t *Table) Entries(top int) []Entry {
	rows := make([]Entry, 0, len(t.counts))
	for p, c := range t.counts {
		rows = append(rows, Entry{Phrase: p, Count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return t.seen[rows[i].Phrase] < t.seen[rows[j].Phrase]
	})
	if top > 0 && len(rows) > top {
		rows = rows[:top]
	}
	return rows
}

func (t *Table) phrasesByInsertion() []string {
	out := make([]string, len(t.seen))
	for p, rank := range t.seen {
		out[rank] = p
	}
	return out
}
