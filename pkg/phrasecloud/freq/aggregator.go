package freq

import (
	"strings"

	"github.com/cognicore/phrasecloud/pkg/phrasecloud/stopwords"
)

// Aggregator applies the minimum-length and stopword filters to per-file
// token sequences and maintains one frequency table per n-gram order across
// a corpus. Order 1 is always present; higher orders are those requested at
// construction. Counting is purely additive, so the final tables do not
// depend on file processing order.
type Aggregator struct {
	minLen int
	stops  stopwords.Set
	orders []int
	tables map[int]*Table
}

// NewAggregator creates an aggregator. Orders below 2 and duplicates are
// ignored; the unigram table exists regardless.
func NewAggregator(minLen int, stops stopwords.Set, orders []int) *Aggregator {
	a := &Aggregator{
		minLen: minLen,
		stops:  stops,
		tables: map[int]*Table{1: NewTable()},
	}
	for _, n := range orders {
		if n < 2 {
			continue
		}
		if _, ok := a.tables[n]; ok {
			continue
		}
		a.orders = append(a.orders, n)
		a.tables[n] = NewTable()
	}
	return a
}

// Fresh returns an empty aggregator with the same configuration, for
// independent per-file counting before a merge.
func (a *Aggregator) Fresh() *Aggregator {
	return NewAggregator(a.minLen, a.stops, a.orders)
}

// Filter drops tokens shorter than the minimum length or present in the
// stopword set, preserving order.
func (a *Aggregator) Filter(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if len(t) < a.minLen || a.stops.Contains(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// AddFile filters one file's token sequence and folds it into the tables.
// N-grams are windows over the filtered sequence of this file alone; they
// never span files. Returns the number of surviving tokens.
func (a *Aggregator) AddFile(tokens []string) int {
	kept := a.Filter(tokens)

	uni := a.tables[1]
	for _, t := range kept {
		uni.Inc(t)
	}
	for _, n := range a.orders {
		tbl := a.tables[n]
		for _, g := range NGrams(kept, n) {
			tbl.Inc(g)
		}
	}
	return len(kept)
}

// Merge folds another aggregator's tables into this one. Both must have
// been created with the same configuration (see Fresh).
func (a *Aggregator) Merge(other *Aggregator) {
	a.tables[1].Merge(other.tables[1])
	for _, n := range a.orders {
		a.tables[n].Merge(other.tables[n])
	}
}

// Table returns the table for the given order, nil if the order was not
// requested.
func (a *Aggregator) Table(order int) *Table {
	return a.tables[order]
}

// Orders returns 1 followed by the requested higher orders.
func (a *Aggregator) Orders() []int {
	return append([]int{1}, a.orders...)
}

// NGrams returns every contiguous window of exactly n tokens, space-joined.
// Fewer than n tokens yields no windows.
func NGrams(tokens []string, n int) []string {
	if n < 1 || len(tokens) < n {
		return nil
	}
	out := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+n], " "))
	}
	return out
}
