package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cognicore/phrasecloud/pkg/phrasecloud/freq"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/internalerr"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveRunAssignsIdentity(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	table := freq.NewTable()
	table.Add("data", 3)

	run, err := st.SaveRun(ctx, store.Run{Root: "/transcripts", Files: 2, Tokens: 3},
		map[int]*freq.Table{1: table})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if run.ID == "" {
		t.Error("SaveRun should assign a run ID")
	}
	if run.CreatedAt.IsZero() {
		t.Error("SaveRun should assign a creation time")
	}
}

func TestRunRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	uni := freq.NewTable()
	uni.Add("data", 5)
	uni.Add("tie-a", 2)
	uni.Add("tie-b", 2)

	bi := freq.NewTable()
	bi.Add("data pipeline", 4)

	run, err := st.SaveRun(ctx, store.Run{Root: "/transcripts", Files: 1, Tokens: 9},
		map[int]*freq.Table{1: uni, 2: bi})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := st.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Root != "/transcripts" || got.Files != 1 || got.Tokens != 9 {
		t.Errorf("GetRun = %+v", got)
	}

	orders, err := st.Orders(ctx, run.ID)
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(orders) != 2 || orders[0] != 1 || orders[1] != 2 {
		t.Errorf("Orders = %v, want [1 2]", orders)
	}

	// the rebuilt table keeps both counts and tie-break order
	loaded, err := st.GetTable(ctx, run.ID, 1)
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}
	wantEntries := uni.Entries(0)
	gotEntries := loaded.Entries(0)
	if len(gotEntries) != len(wantEntries) {
		t.Fatalf("entries = %v, want %v", gotEntries, wantEntries)
	}
	for i := range wantEntries {
		if gotEntries[i] != wantEntries[i] {
			t.Errorf("entry %d = %v, want %v", i, gotEntries[i], wantEntries[i])
		}
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	empty := map[int]*freq.Table{1: freq.NewTable()}
	first, err := st.SaveRun(ctx, store.Run{Root: "/a"}, empty)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	second, err := st.SaveRun(ctx, store.Run{Root: "/b"}, empty)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := st.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Errorf("runs not newest-first: %v then %v", runs[0].ID, runs[1].ID)
	}
}

func TestGetRunNotFound(t *testing.T) {
	st := openTestStore(t)

	_, err := st.GetRun(context.Background(), "01JUNKRUNID")
	if !errors.Is(err, internalerr.ErrRunNotFound) {
		t.Errorf("err = %v, want ErrRunNotFound", err)
	}
}
