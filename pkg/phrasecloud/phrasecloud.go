package phrasecloud

import (
	"context"
	"sync"

	"github.com/cognicore/phrasecloud/internal/corpus"
	"github.com/cognicore/phrasecloud/internal/logger"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/freq"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/ingest"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/stopwords"
)

// Options configures one corpus analysis.
type Options struct {
	Root        string
	MinLen      int
	Top         int
	Orders      []int // n-gram orders beyond unigrams
	Lowercase   bool
	KeepNumbers bool
	Stopwords   stopwords.Set
	Workers     int
	Logger      logger.Logger
}

// Analyzer runs the full corpus pipeline: scan, per-file clean/tokenize,
// filter, count, merge.
type Analyzer struct {
	opts Options
	log  logger.Logger
	pipe ingest.Pipeline
}

// New creates an Analyzer. A nil Stopwords set means the built-in list.
func New(opts Options) *Analyzer {
	if opts.Stopwords == nil {
		opts.Stopwords = stopwords.Default()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Analyzer{
		opts: opts,
		log:  opts.Logger,
		pipe: ingest.Pipeline{
			Lowercase:   opts.Lowercase,
			KeepNumbers: opts.KeepNumbers,
		},
	}
}

// Result holds the outcome of one corpus run.
type Result struct {
	Agg    *freq.Aggregator
	Files  int    // files that contributed tokens or were read successfully
	Tokens uint64 // tokens surviving the filters, all files summed
}

// Run scans the corpus and aggregates every table. Per-file computation has
// no shared state, so files run on a bounded worker pool; results merge in
// scan order afterwards, keeping tie-break ranks deterministic. A file that
// cannot be read is skipped with a warning.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	files, err := corpus.Scan(a.opts.Root)
	if err != nil {
		return nil, err
	}

	total := freq.NewAggregator(a.opts.MinLen, a.opts.Stopwords, a.opts.Orders)
	perFile := make([]*freq.Aggregator, len(files))
	kept := make([]int, len(files))

	sem := make(chan struct{}, a.opts.Workers)
	var wg sync.WaitGroup
	for i, f := range files {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}

		wg.Add(1)
		go func(i int, f corpus.File) {
			defer wg.Done()
			defer func() { <-sem }()

			a.debugf(ctx, "Processing: %s", f.Path)
			text, err := corpus.ReadText(f.Path)
			if err != nil {
				a.warnf(ctx, "Skipping %s: %v", f.Path, err)
				return
			}
			tokens := a.pipe.Process(text, f.Format)

			agg := total.Fresh()
			kept[i] = agg.AddFile(tokens)
			perFile[i] = agg
		}(i, f)
	}
	wg.Wait()

	res := &Result{Agg: total}
	for i, agg := range perFile {
		if agg == nil {
			continue
		}
		res.Files++
		res.Tokens += uint64(kept[i])
		total.Merge(agg)
	}

	if res.Tokens == 0 {
		a.warnf(ctx, "No tokens found. Check your input path and formats.")
	}
	return res, nil
}

// WriteOutputs serializes every table next to the unigram base path. The
// unigram header is "word" for a unigram-only run and "phrase" otherwise;
// n-gram tables always use "phrase".
func (r *Result) WriteOutputs(base string, top int) error {
	orders := r.Agg.Orders()
	for _, n := range orders {
		header := "phrase"
		if n == 1 && len(orders) == 1 {
			header = "word"
		}
		if err := freq.WriteFile(freq.OrderPath(base, n), r.Agg.Table(n), header, top); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) debugf(ctx context.Context, msg string, args ...interface{}) {
	if a.log != nil {
		a.log.Debug(ctx, msg, args...)
	}
}

func (a *Analyzer) warnf(ctx context.Context, msg string, args ...interface{}) {
	if a.log != nil {
		a.log.Warn(ctx, msg, args...)
	}
}
