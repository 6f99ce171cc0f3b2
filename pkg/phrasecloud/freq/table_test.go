package freq

import (
	"reflect"
	"testing"
)

func TestTableAddAndCount(t *testing.T) {
	table := NewTable()
	table.Inc("data")
	table.Inc("data")
	table.Inc("science")

	if got := table.Count("data"); got != 2 {
		t.Errorf("Count(data) = %d, want 2", got)
	}
	if got := table.Count("missing"); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}
	if table.Len() != 2 {
		t.Errorf("Len = %d, want 2", table.Len())
	}
	if table.Total() != 3 {
		t.Errorf("Total = %d, want 3", table.Total())
	}
}

func TestTableRejectsEmptyKey(t *testing.T) {
	table := NewTable()
	table.Inc("")
	table.Add("", 5)
	if table.Len() != 0 {
		t.Errorf("empty keys must be ignored, Len = %d", table.Len())
	}
}

func TestTableEntriesOrdering(t *testing.T) {
	table := NewTable()
	table.Add("rare", 1)
	table.Add("common", 5)
	table.Add("tie-first", 3)
	table.Add("tie-second", 3)

	got := table.Entries(0)
	want := []Entry{
		{"common", 5},
		{"tie-first", 3},
		{"tie-second", 3},
		{"rare", 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entries = %v, want %v", got, want)
	}
}

func TestTableEntriesTop(t *testing.T) {
	table := NewTable()
	table.Add("a1", 10)
	table.Add("b2", 9)
	table.Add("c3", 8)

	got := table.Entries(2)
	if len(got) != 2 || got[0].Phrase != "a1" || got[1].Phrase != "b2" {
		t.Errorf("Entries(2) = %v", got)
	}
}

func TestTableMergePreservesInsertionRank(t *testing.T) {
	a := NewTable()
	a.Add("alpha", 2)

	b := NewTable()
	b.Add("beta", 2)
	b.Add("gamma", 2)

	a.Merge(b)

	got := a.Entries(0)
	want := []Entry{{"alpha", 2}, {"beta", 2}, {"gamma", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entries after merge = %v, want %v", got, want)
	}
	if a.Total() != 6 {
		t.Errorf("Total = %d, want 6", a.Total())
	}
}
