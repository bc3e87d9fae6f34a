// cmd/wordset/main.go
//
// Entry point for the vocabulary builder. One invocation is one run: load
// the configuration, build the candidate pool, drive the convergence
// controller to exactly the target cardinality, write the list, and verify
// it. Exit codes: 1 for configuration problems, 2 for an aborted run, 3
// for a list that failed verification.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dirvine/four-word-networking/internal/classifier"
	"github.com/dirvine/four-word-networking/internal/config"
	"github.com/dirvine/four-word-networking/internal/logbook"
	"github.com/dirvine/four-word-networking/internal/morph"
	"github.com/dirvine/four-word-networking/internal/pipeline"
	"github.com/dirvine/four-word-networking/internal/score"
	"github.com/dirvine/four-word-networking/internal/tui"
	"github.com/dirvine/four-word-networking/internal/verify"
	"github.com/dirvine/four-word-networking/internal/words"
)

const (
	exitUsage        = 1
	exitAborted      = 2
	exitVerification = 3
)

func main() {
	configPath := flag.String("config", "wordset.yaml", "run configuration file")
	plain := flag.Bool("plain", false, "disable the progress view, log to stderr instead")
	dryRun := flag.Bool("dry-run", false, "replace the classifier with a keep-all stub")
	verifyOnly := flag.String("verify", "", "verify an existing word list and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(exitUsage, err)
	}
	lex, err := buildLexicon(cfg)
	if err != nil {
		fatal(exitUsage, err)
	}

	if *verifyOnly != "" {
		os.Exit(verifyList(cfg, lex, *verifyOnly))
	}
	os.Exit(run(cfg, lex, *plain, *dryRun))
}

func fatal(code int, err error) {
	fmt.Fprintf(os.Stderr, "wordset: %v\n", err)
	os.Exit(code)
}

func run(cfg *config.Config, lex *score.Lexicon, plain, dryRun bool) int {
	scorer, err := score.NewScorer(lex, cfg.Weights)
	if err != nil {
		fatal(exitUsage, err)
	}
	book, err := logbook.New(cfg.Outputs.Logbook)
	if err != nil {
		fatal(exitUsage, err)
	}
	defer book.Close()
	changes, err := logbook.NewChangeLog(cfg.Outputs.ChangeLog)
	if err != nil {
		fatal(exitUsage, err)
	}
	defer changes.Close()

	pool, err := buildPool(cfg, book)
	if err != nil {
		fatal(exitUsage, err)
	}
	var reserve []words.Candidate
	if cfg.Inputs.Reserve != "" {
		reserve, err = words.LoadCorpus(cfg.Inputs.Reserve, words.SourceCorpus)
		if err != nil {
			fatal(exitUsage, err)
		}
	}

	settings := pipeline.Settings{
		Target:     cfg.TargetSize,
		BatchSize:  cfg.BatchSize,
		MaxCycles:  cfg.MaxCycles,
		MinLength:  cfg.MinLength,
		MaxLength:  cfg.MaxLength,
		Threshold:  cfg.Threshold,
		Synthetic:  cfg.Synthetic,
		Borderline: cfg.Classifier.Borderline,
		Pool:       pool,
		Reserve:    reserve,
		Scorer:     scorer,
		Checker:    buildChecker(cfg, dryRun),
		Book:       book,
		Changes:    changes,
	}

	updates := make(chan pipeline.Progress, 64)
	if !plain {
		settings.Progress = func(p pipeline.Progress) {
			// Dropping a stale snapshot is fine; the next batch sends another.
			select {
			case updates <- p:
			default:
			}
		}
	}

	ctrl, err := pipeline.New(settings)
	if err != nil {
		fatal(exitUsage, err)
	}
	if cfg.Inputs.Seed != "" {
		seed, err := words.LoadLines(cfg.Inputs.Seed)
		if err != nil {
			fatal(exitUsage, err)
		}
		if err := ctrl.Seed(seed, lex.Banned); err != nil {
			fatal(exitUsage, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		rep    *pipeline.Report
		runErr error
	)
	if plain {
		rep, runErr = ctrl.Run(ctx)
	} else {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			rep, runErr = ctrl.Run(ctx)
			close(updates)
		}()
		if err := tui.Run(updates, book); err != nil {
			fmt.Fprintf(os.Stderr, "wordset: %v\n", err)
		}
		wg.Wait()
	}

	fmt.Printf("run %s: %s, %d/%d words, %d passes, %d cycles\n",
		rep.RunID, rep.State, rep.Accepted, rep.Target, rep.Passes, rep.Cycles)
	if rep.Degraded {
		fmt.Printf("warning: output is degraded, %d synthetic names generated\n", len(rep.Synthetic))
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "wordset: %v\n", runErr)
		return exitAborted
	}

	list := ctrl.Words()
	if err := words.WriteList(cfg.Outputs.WordList, list); err != nil {
		fatal(exitUsage, err)
	}
	fmt.Printf("wrote %d words to %s\n", len(list), cfg.Outputs.WordList)

	return reportVerification(cfg, lex, list, plain)
}

// verifyList checks an existing word list without running the pipeline.
func verifyList(cfg *config.Config, lex *score.Lexicon, path string) int {
	list, err := words.LoadLines(path)
	if err != nil {
		fatal(exitUsage, err)
	}
	return reportVerification(cfg, lex, list, true)
}

func reportVerification(cfg *config.Config, lex *score.Lexicon, list []string, plain bool) int {
	v := &verify.Verifier{
		Target:    cfg.TargetSize,
		MinLength: cfg.MinLength,
		MaxLength: cfg.MaxLength,
		Banned:    lex.Banned,
	}
	res := v.Verify(list)
	fmt.Print(verify.Render(res, plain))
	if err := os.WriteFile(cfg.Outputs.Report, []byte(verify.Render(res, true)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "wordset: write report: %v\n", err)
	}
	if !res.Ok() {
		return exitVerification
	}
	return 0
}

// buildLexicon loads whichever reference files the configuration names.
// Missing optional inputs just leave that criterion at its fallback score.
func buildLexicon(cfg *config.Config) (*score.Lexicon, error) {
	lex := score.NewLexicon()
	if p := cfg.Inputs.Pronunciations; p != "" {
		if err := lex.LoadPronunciations(p); err != nil {
			return nil, err
		}
	}
	if p := cfg.Inputs.Familiar; p != "" {
		if err := lex.LoadFamiliar(p); err != nil {
			return nil, err
		}
	}
	if p := cfg.Inputs.Levels; p != "" {
		if err := lex.LoadLevels(p); err != nil {
			return nil, err
		}
	}
	if p := cfg.Inputs.Banned; p != "" {
		if err := lex.LoadBanned(p); err != nil {
			return nil, err
		}
	}
	return lex, nil
}

// buildPool aggregates candidates from every source: the corpora in
// priority order, morphological expansions of each corpus word, and the
// compound generator. The pool deduplicates, keeping the best rank.
func buildPool(cfg *config.Config, book *logbook.Logbook) (*words.Pool, error) {
	pool := words.NewPool()
	ruleset := morph.DefaultRuleset()

	for _, path := range cfg.Inputs.Corpora {
		cands, err := words.LoadCorpus(path, words.SourceCorpus)
		if err != nil {
			return nil, err
		}
		pool.AddAll(cands)
		for _, c := range cands {
			for _, form := range ruleset.Expand(c.Text) {
				pool.Add(words.Candidate{Text: form, Source: words.SourceMorphology, Rank: words.RankUnknown})
			}
		}
	}
	compounds := words.Compounds(words.DefaultCategories(), cfg.MaxLength, pool.Contains)
	pool.AddAll(compounds)

	book.Info("pool built: %d candidates from %d corpora, %d compounds",
		pool.Len(), len(cfg.Inputs.Corpora), len(compounds))
	return pool, nil
}

func buildChecker(cfg *config.Config, dryRun bool) classifier.Checker {
	if !cfg.Classifier.Enabled {
		return nil
	}
	if dryRun {
		return classifier.KeepAll{}
	}
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		fatal(exitUsage, fmt.Errorf("classifier enabled but OPENAI_API_KEY is not set"))
	}
	engine := classifier.NewEngine(key, cfg.Classifier.Model)
	return classifier.NewRetrying(engine, cfg.Classifier.MaxRetries, cfg.Classifier.Backoff.Std())
}
