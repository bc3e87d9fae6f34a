// internal/pipeline/controller.go
//
// The convergence controller. It drives batched scoring passes over the
// candidate pool, relaxes the acceptance threshold when a pass stalls, and
// hands off to finalize (trim, backfill, synthetic fallback) once the pool
// is exhausted. One controller serves one run; it is not safe for
// concurrent use.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/google/uuid"

	"github.com/dirvine/four-word-networking/internal/classifier"
	"github.com/dirvine/four-word-networking/internal/config"
	"github.com/dirvine/four-word-networking/internal/gate"
	"github.com/dirvine/four-word-networking/internal/logbook"
	"github.com/dirvine/four-word-networking/internal/score"
	"github.com/dirvine/four-word-networking/internal/words"
)

var (
	// ErrConvergence reports that every source was exhausted and the set is
	// still short of the target.
	ErrConvergence = errors.New("pipeline: convergence failed")
	// ErrCycleBudget reports that threshold relaxation ran past max_cycles.
	ErrCycleBudget = errors.New("pipeline: cycle budget exhausted")
)

// Settings carries everything a controller needs for one run.
type Settings struct {
	Target    int
	BatchSize int
	MaxCycles int
	MinLength int
	MaxLength int
	Threshold config.ThresholdConfig
	Synthetic config.SyntheticConfig
	// Borderline is the score band above the threshold that gets a
	// classifier consult before acceptance. Ignored when Checker is nil.
	Borderline float64

	Pool *words.Pool
	// Reserve is the ordered backfill pool, highest priority first.
	Reserve []words.Candidate
	Scorer  *score.Scorer
	// Checker is the external word validator; nil disables consults.
	Checker classifier.Checker
	Book    *logbook.Logbook
	Changes *logbook.ChangeLog
	// Progress, when set, receives a snapshot after every batch.
	Progress func(Progress)
}

type cached struct {
	vec   score.Vector
	total float64
}

// Controller runs the convergence loop over a candidate pool.
type Controller struct {
	s    Settings
	gate *gate.Gate

	accepted map[string]words.Candidate
	// filter screens membership probes before the map lookup. It only ever
	// grows; finalize works off the map alone.
	filter *bloom.BloomFilter
	// rejected holds permanently rejected words with their reasons. Score
	// rejects are deliberately absent so relaxation can reconsider them.
	rejected map[string]string
	cache    map[string]cached
	// pending queues placeholders for purged words until backfill or the
	// synthetic generator resolves them.
	pending []string

	history    []float64
	passes     int
	cycles     int
	scanned    int
	consulted  int
	trimmed    int
	backfilled int
	synthetic  []string
}

// New validates the settings and returns a controller ready to run.
func New(s Settings) (*Controller, error) {
	if s.Target < 1 {
		return nil, fmt.Errorf("pipeline: target %d must be positive", s.Target)
	}
	if s.Pool == nil {
		return nil, fmt.Errorf("pipeline: candidate pool is required")
	}
	if s.Scorer == nil {
		return nil, fmt.Errorf("pipeline: scorer is required")
	}
	if s.BatchSize < 1 {
		s.BatchSize = 500
	}
	if s.MaxCycles < 1 {
		s.MaxCycles = 8
	}
	c := &Controller{
		s:        s,
		accepted: make(map[string]words.Candidate, s.Target),
		filter:   bloom.NewWithEstimates(uint(s.Target)*2, 1e-4),
		rejected: make(map[string]string),
		cache:    make(map[string]cached),
	}
	c.gate = &gate.Gate{
		MinLen:         s.MinLength,
		MaxLen:         s.MaxLength,
		BorderlineBand: s.Borderline,
		Consult:        s.Checker != nil,
		Member:         c.member,
	}
	return c, nil
}

func (c *Controller) member(word string) bool {
	if !c.filter.TestString(word) {
		return false
	}
	_, ok := c.accepted[word]
	return ok
}

func (c *Controller) accept(cand words.Candidate) {
	c.accepted[cand.Text] = cand
	c.filter.AddString(cand.Text)
}

// Seed preloads an existing vocabulary for a refinement run. Banned words
// are purged on the spot: a placeholder is queued for backfill and the
// substitution is recorded in the changelog. Structurally invalid entries
// are dropped and never reconsidered.
func (c *Controller) Seed(list []string, banned map[string]struct{}) error {
	for i, raw := range list {
		word := words.Normalize(raw)
		if word == "" || c.member(word) {
			continue
		}
		if _, bad := banned[word]; bad {
			ph := words.Placeholder(word)
			c.pending = append(c.pending, ph)
			c.rejected[word] = "banned word"
			if err := c.s.Changes.Record(word, ph, "banned word purged from seed"); err != nil {
				return err
			}
			c.s.Book.Warn("seed: purged banned word %q", word)
			continue
		}
		if !words.IsAlphabetic(word) || len(word) < c.s.MinLength || len(word) > c.s.MaxLength {
			c.rejected[word] = "invalid seed word"
			continue
		}
		c.accept(words.Candidate{Text: word, Source: words.SourceCorpus, Rank: i})
	}
	c.s.Book.Info("seeded %d words, %d placeholders pending", len(c.accepted), len(c.pending))
	return nil
}

// Run drives the convergence loop to completion. On success the returned
// report's State is StateConverged and Words holds exactly Target entries;
// on failure the report describes how far the run got alongside the error.
func (c *Controller) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	c.s.Book.Info("run %s: target %d, pool %d, threshold %.2f",
		runID, c.s.Target, c.s.Pool.Len(), c.s.Threshold.Start)

	threshold := c.s.Threshold.Start
	c.history = append(c.history, threshold)
	state := StateGrowing

	for len(c.accepted) < c.s.Target {
		if err := ctx.Err(); err != nil {
			return c.report(runID, StateAborted, start), fmt.Errorf("pipeline: run cancelled: %w", err)
		}
		c.passes++
		added, err := c.pass(ctx, state, threshold)
		if err != nil {
			c.s.Book.Error("pass %d: %v", c.passes, err)
			return c.report(runID, StateAborted, start), err
		}
		if added > 0 || len(c.accepted) >= c.s.Target {
			state = StateGrowing
			continue
		}

		state = StateStalled
		c.s.Book.Info("pass %d stalled at threshold %.2f with %d/%d words",
			c.passes, threshold, len(c.accepted), c.s.Target)
		if !c.s.Threshold.Relax || threshold <= c.s.Threshold.Floor+1e-9 {
			// Sources are exhausted; backfill is the only option left.
			break
		}
		c.cycles++
		if c.cycles > c.s.MaxCycles {
			c.s.Book.Error("cycle budget %d exhausted", c.s.MaxCycles)
			return c.report(runID, StateAborted, start),
				fmt.Errorf("%w: %d relaxations, threshold %.2f", ErrCycleBudget, c.cycles-1, threshold)
		}
		threshold -= c.s.Threshold.Step
		if threshold < c.s.Threshold.Floor {
			threshold = c.s.Threshold.Floor
		}
		c.history = append(c.history, threshold)
		state = StateRelaxing
		c.s.Book.Info("relaxing threshold to %.2f (cycle %d)", threshold, c.cycles)
	}

	if err := c.finalize(); err != nil {
		return c.report(runID, StateAborted, start), err
	}
	if len(c.accepted) != c.s.Target {
		rep := c.report(runID, StateAborted, start)
		return rep, fmt.Errorf("%w: %d/%d words after backfill, thresholds %v",
			ErrConvergence, len(c.accepted), c.s.Target, c.history)
	}

	rep := c.report(runID, StateConverged, start)
	c.s.Book.Info("run %s converged: %d words, %d passes, %d cycles, degraded=%v",
		runID, rep.Accepted, rep.Passes, rep.Cycles, rep.Degraded)
	c.emit(StateConverged, threshold)
	return rep, nil
}

// pass evaluates every undecided pool candidate at the given threshold and
// returns how many words it accepted. Borderline candidates are consulted
// in batches; a consult error fails the whole pass.
func (c *Controller) pass(ctx context.Context, state State, threshold float64) (int, error) {
	added := 0
	var borderline []words.Candidate

	flush := func() error {
		if len(borderline) == 0 {
			return nil
		}
		n, err := c.consult(ctx, borderline)
		borderline = borderline[:0]
		if err != nil {
			return err
		}
		added += n
		return nil
	}

	cands := c.s.Pool.Candidates()
	for i := 0; i < len(cands); i += c.s.BatchSize {
		end := i + c.s.BatchSize
		if end > len(cands) {
			end = len(cands)
		}
		for _, cand := range cands[i:end] {
			if c.member(cand.Text) {
				continue
			}
			if _, done := c.rejected[cand.Text]; done {
				continue
			}
			sc := c.scoreOf(cand)
			c.scanned++
			out, reason := c.gate.Evaluate(cand, sc.vec, sc.total, threshold)
			switch out {
			case gate.Accept:
				c.accept(cand)
				added++
			case gate.Borderline:
				borderline = append(borderline, cand)
			case gate.Reject:
				// Hard rejects are final. Score rejects stay undecided so a
				// relaxed threshold can reconsider them.
				if sc.vec.Appropriate == 0 || sc.vec.Clean == 0 ||
					len(cand.Text) < c.s.MinLength || len(cand.Text) > c.s.MaxLength {
					c.rejected[cand.Text] = reason
				}
			}
		}
		if err := flush(); err != nil {
			return added, err
		}
		c.emit(state, threshold)
	}
	return added, nil
}

// consult submits borderline candidates to the classifier and applies the
// verdicts. Removals are permanent; the first usable replacement of a
// removal is admitted in the removed word's place.
func (c *Controller) consult(ctx context.Context, borderline []words.Candidate) (int, error) {
	batch := make([]string, len(borderline))
	byWord := make(map[string]words.Candidate, len(borderline))
	for i, cand := range borderline {
		batch[i] = cand.Text
		byWord[cand.Text] = cand
	}

	verdicts, err := c.s.Checker.Check(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("pipeline: classifier consult: %w", err)
	}
	c.consulted += len(batch)

	added := 0
	for _, v := range verdicts {
		cand, ok := byWord[v.Word]
		if !ok {
			continue
		}
		if v.Action == classifier.ActionKeep {
			if !c.member(cand.Text) {
				c.accept(cand)
				added++
			}
			continue
		}
		reason := v.Reason
		if reason == "" {
			reason = "classifier removal"
		}
		c.rejected[cand.Text] = reason
		replacement := c.adoptReplacement(v)
		if replacement != "" {
			added++
		}
		if err := c.s.Changes.Record(cand.Text, replacement, reason); err != nil {
			return added, err
		}
	}
	return added, nil
}

// adoptReplacement admits the first structurally sound replacement from a
// removal verdict and returns it, or "" when none qualifies.
func (c *Controller) adoptReplacement(v classifier.Verdict) string {
	for _, alt := range v.Replacements {
		if c.member(alt) {
			continue
		}
		if _, done := c.rejected[alt]; done {
			continue
		}
		if len(alt) < c.s.MinLength || len(alt) > c.s.MaxLength {
			continue
		}
		cand := words.Candidate{Text: alt, Source: words.SourceGenerator, Rank: words.RankUnknown}
		if sc := c.scoreOf(cand); sc.vec.Appropriate == 0 || sc.vec.Clean == 0 {
			continue
		}
		c.accept(cand)
		return alt
	}
	return ""
}

// scoreOf returns the cached score for a word, computing it at most once
// per run regardless of threshold changes.
func (c *Controller) scoreOf(cand words.Candidate) cached {
	if sc, ok := c.cache[cand.Text]; ok {
		return sc
	}
	vec := c.s.Scorer.Score(cand)
	sc := cached{vec: vec, total: vec.Total(c.s.Scorer.Weights())}
	c.cache[cand.Text] = sc
	return sc
}

func (c *Controller) emit(state State, threshold float64) {
	if c.s.Progress == nil {
		return
	}
	c.s.Progress(Progress{
		State:     state,
		Pass:      c.passes,
		Threshold: threshold,
		Accepted:  len(c.accepted),
		Target:    c.s.Target,
		Scanned:   c.scanned,
		PoolSize:  c.s.Pool.Len(),
	})
}

// Words returns the final vocabulary in lexicographic order.
func (c *Controller) Words() []string {
	out := make([]string, 0, len(c.accepted))
	for w := range c.accepted {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (c *Controller) report(runID string, state State, start time.Time) *Report {
	shortfall := c.s.Target - len(c.accepted)
	if shortfall < 0 {
		shortfall = 0
	}
	return &Report{
		RunID:            runID,
		State:            state,
		Accepted:         len(c.accepted),
		Target:           c.s.Target,
		Shortfall:        shortfall,
		Passes:           c.passes,
		Cycles:           c.cycles,
		ThresholdHistory: append([]float64(nil), c.history...),
		Rejected:         len(c.rejected),
		Consulted:        c.consulted,
		Trimmed:          c.trimmed,
		Backfilled:       c.backfilled,
		Synthetic:        append([]string(nil), c.synthetic...),
		Degraded:         len(c.synthetic) > 0,
		ChangeLogPath:    c.s.Changes.Path(),
		Elapsed:          time.Since(start),
	}
}
