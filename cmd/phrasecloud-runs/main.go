package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/phrasecloud/pkg/phrasecloud/freq"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/store/sqlite"
)

func main() {
	var (
		dbPath = flag.String("db", "", "SQLite run store (required)")
		runID  = flag.String("run", "", "Run ID to export; omit to list runs")
		order  = flag.Int("order", 1, "N-gram order to export")
		out    = flag.String("out", "", "Output CSV path (default: stdout)")
		top    = flag.Int("top", 0, "Keep only top N phrases (0 = all)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open run store: %v", err)
	}
	defer st.Close()

	if *runID == "" {
		runs, err := st.ListRuns(ctx)
		if err != nil {
			log.Fatalf("list runs: %v", err)
		}
		if len(runs) == 0 {
			fmt.Println("no recorded runs")
			return
		}
		for _, r := range runs {
			orders, err := st.Orders(ctx, r.ID)
			if err != nil {
				log.Fatalf("read orders for %s: %v", r.ID, err)
			}
			fmt.Printf("%s  %s  files=%d tokens=%d orders=%v  %s\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Files, r.Tokens, orders, r.Root)
		}
		return
	}

	table, err := st.GetTable(ctx, *runID, *order)
	if err != nil {
		log.Fatalf("load table: %v", err)
	}

	if *out == "" {
		if err := freq.WriteCSV(os.Stdout, table, "phrase", *top); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		return
	}
	if err := freq.WriteFile(*out, table, "phrase", *top); err != nil {
		log.Fatalf("write csv: %v", err)
	}
}
