package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/cognicore/phrasecloud/internal/logger"
	"github.com/cognicore/phrasecloud/internal/watch"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/config"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/freq"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/stopwords"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/store"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/store/sqlite"
)

func main() {
	var (
		cfgPath     = flag.String("config", "", "Optional YAML config file")
		input       = flag.String("input", "", "Directory with .vtt/.srt/.txt/.html transcripts (required)")
		out         = flag.String("out", "word_counts.csv", "Output CSV path (base name)")
		minLen      = flag.Int("minlen", 2, "Minimum token length")
		top         = flag.Int("top", 0, "Keep only top N phrases (0 = all)")
		stopPath    = flag.String("stopwords", "", "Optional newline-delimited stopwords file")
		lower       = flag.Bool("lower", true, "Lowercase text before tokenizing")
		keepNumbers = flag.Bool("keep-numbers", false, "Keep numeric tokens (default: drop)")
		verbose     = flag.Bool("verbose", false, "Per-file progress logging")
		ngrams      = flag.String("ngrams", "", "Comma-separated n-gram sizes to count, e.g. 2,3")
		dbPath      = flag.String("db", "", "Optional SQLite run store")
		watchMode   = flag.Bool("watch", false, "Keep running and re-count when the corpus changes")
		workers     = flag.Int("workers", 1, "Concurrent file workers")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	orders, err := parseOrders(*ngrams)
	if err != nil {
		log.Fatalf("parse --ngrams: %v", err)
	}

	// explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "out":
			cfg.Out = *out
		case "minlen":
			cfg.MinLen = *minLen
		case "top":
			cfg.Top = *top
		case "stopwords":
			cfg.Stopwords = *stopPath
		case "lower":
			cfg.Lowercase = *lower
		case "keep-numbers":
			cfg.KeepNumbers = *keepNumbers
		case "verbose":
			cfg.Verbose = *verbose
		case "ngrams":
			cfg.NGrams = orders
		case "db":
			cfg.DB = *dbPath
		case "watch":
			cfg.Watch = *watchMode
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	level := "info"
	if cfg.Verbose {
		level = "debug"
	}
	lg := logger.New(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stops, err := stopwords.Load(cfg.Stopwords)
	if err != nil {
		log.Fatalf("load stopwords: %v", err)
	}

	var st store.Store
	if cfg.DB != "" {
		st, err = sqlite.Open(ctx, cfg.DB)
		if err != nil {
			log.Fatalf("open run store: %v", err)
		}
		defer st.Close()
	}

	analyzer := phrasecloud.New(phrasecloud.Options{
		Root:        cfg.Input,
		MinLen:      cfg.MinLen,
		Top:         cfg.Top,
		Orders:      cfg.NGrams,
		Lowercase:   cfg.Lowercase,
		KeepNumbers: cfg.KeepNumbers,
		Stopwords:   stops,
		Workers:     cfg.Workers,
		Logger:      lg,
	})

	runOnce := func(ctx context.Context) error {
		res, err := analyzer.Run(ctx)
		if err != nil {
			return err
		}
		if err := res.WriteOutputs(cfg.Out, cfg.Top); err != nil {
			return err
		}
		if st != nil {
			tables := make(map[int]*freq.Table)
			for _, n := range res.Agg.Orders() {
				tables[n] = res.Agg.Table(n)
			}
			run, err := st.SaveRun(ctx, store.Run{
				Root:   cfg.Input,
				Files:  res.Files,
				Tokens: res.Tokens,
			}, tables)
			if err != nil {
				return fmt.Errorf("save run: %w", err)
			}
			lg.Debug(ctx, "Recorded run %s", run.ID)
		}
		lg.Debug(ctx, "Wrote %s | %d files | %d tokens | %d unique",
			cfg.Out, res.Files, res.Tokens, res.Agg.Table(1).Len())
		for _, n := range res.Agg.Orders() {
			if n > 1 {
				lg.Debug(ctx, "Wrote %d-grams to %s", n, freq.OrderPath(cfg.Out, n))
			}
		}
		return nil
	}

	if err := runOnce(ctx); err != nil {
		log.Fatal(err)
	}

	if cfg.Watch {
		w := watch.New(cfg.Input, lg, runOnce)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
	}
}

func parseOrders(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var orders []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid n-gram size %q", part)
		}
		orders = append(orders, n)
	}
	return orders, nil
}
