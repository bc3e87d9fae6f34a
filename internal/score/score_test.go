package score

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/dirvine/four-word-networking/internal/words"
)

func newTestLexicon() *Lexicon {
	lex := NewLexicon()
	lex.Pronunciations["cat"] = []string{"K", "AE1", "T"}
	lex.Pronunciations["water"] = []string{"W", "AO1", "T", "ER0"}
	lex.Familiar["cat"] = struct{}{}
	lex.Levels["cat"] = "A1"
	lex.Levels["require"] = "B2"
	lex.Banned["dang"] = struct{}{}
	return lex
}

func TestWeightsMustSumToOne(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
	bad := DefaultWeights()
	bad.Syllable = 0.5
	if _, err := NewScorer(newTestLexicon(), bad); err == nil {
		t.Fatalf("expected weight-sum validation error")
	}
}

func TestSyllableCounting(t *testing.T) {
	lex := newTestLexicon()
	if got := lex.Syllables("cat"); got != 1 {
		t.Fatalf("cat syllables = %d, want 1", got)
	}
	if got := lex.Syllables("water"); got != 2 {
		t.Fatalf("water syllables = %d, want 2", got)
	}
	// Unknown words fall back to the heuristic.
	if got := lex.Syllables("banana"); got != 3 {
		t.Fatalf("banana syllables = %d, want 3", got)
	}
	if got := lex.Syllables("stone"); got != 1 {
		t.Fatalf("stone syllables = %d, want 1 (silent e)", got)
	}
}

func TestCriterionStepFunctions(t *testing.T) {
	sylSteps := map[int]float64{1: 1.0, 2: 0.9, 3: 0.6, 4: 0.2, 7: 0.2}
	for n, want := range sylSteps {
		if got := syllableFitness(n); got != want {
			t.Fatalf("syllableFitness(%d) = %v, want %v", n, got, want)
		}
	}
	lenSteps := map[int]float64{2: 0.6, 3: 1.0, 5: 1.0, 6: 0.8, 7: 0.8, 8: 0.6, 9: 0.4, 12: 0.2}
	for n, want := range lenSteps {
		if got := lengthFitness(n); got != want {
			t.Fatalf("lengthFitness(%d) = %v, want %v", n, got, want)
		}
	}
	freqSteps := map[int]float64{0: 1.0, 999: 1.0, 1000: 0.8, 9999: 0.6, 19999: 0.4, words.RankUnknown: 0.2}
	for n, want := range freqSteps {
		if got := frequencyFitness(n); got != want {
			t.Fatalf("frequencyFitness(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestScoreVector(t *testing.T) {
	scorer, err := NewScorer(newTestLexicon(), DefaultWeights())
	if err != nil {
		t.Fatalf("new scorer: %v", err)
	}
	v := scorer.Score(words.Candidate{Text: "cat", Source: words.SourceCorpus, Rank: 10})
	want := Vector{
		Syllable:    1.0,
		Length:      1.0,
		Familiarity: 1.0,
		Level:       1.0,
		Frequency:   1.0,
		Phonetic:    1.0,
		Clean:       1.0,
		Appropriate: 1.0,
	}
	if v != want {
		t.Fatalf("Score(cat) = %+v, want all ones", v)
	}
	if total := v.Total(scorer.Weights()); math.Abs(total-1.0) > 1e-9 {
		t.Fatalf("total = %v, want 1.0", total)
	}
}

func TestScoreHardCriteria(t *testing.T) {
	scorer, err := NewScorer(newTestLexicon(), DefaultWeights())
	if err != nil {
		t.Fatalf("new scorer: %v", err)
	}
	if v := scorer.Score(words.Candidate{Text: "dang", Rank: 5}); v.Appropriate != 0.0 {
		t.Fatalf("banned word appropriate = %v, want 0", v.Appropriate)
	}
	if v := scorer.Score(words.Candidate{Text: "ab3", Rank: 5}); v.Clean != 0.0 {
		t.Fatalf("non-alphabetic clean = %v, want 0", v.Clean)
	}
	if v := scorer.Score(words.Candidate{Text: "require", Rank: 5}); v.Level != 0.5 {
		t.Fatalf("B2 level = %v, want 0.5", v.Level)
	}
	if v := scorer.Score(words.Candidate{Text: "zzgloom", Rank: 5}); v.Level != 0.1 || v.Phonetic != 0.5 {
		t.Fatalf("unknown word level/phonetic = %v/%v, want 0.1/0.5", v.Level, v.Phonetic)
	}
}

func TestLoadPronunciationsCMUFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmudict.txt")
	content := ";;; comment line\n" +
		"CAT  K AE1 T\n" +
		"CAT(2)  K AE2 T\n" +
		"WATER  W AO1 T ER0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dict: %v", err)
	}
	lex := NewLexicon()
	if err := lex.LoadPronunciations(path); err != nil {
		t.Fatalf("load pronunciations: %v", err)
	}
	if len(lex.Pronunciations) != 2 {
		t.Fatalf("entries = %d, want 2 (variant dropped)", len(lex.Pronunciations))
	}
	if got := lex.Syllables("water"); got != 2 {
		t.Fatalf("water syllables = %d, want 2", got)
	}
	if !lex.HasPronunciation("cat") || lex.HasPronunciation("dog") {
		t.Fatalf("pronunciation lookup wrong")
	}
}

func TestLoadLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.txt")
	content := "# word level\ncat A1\nrequire b2\nbogus Z9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write levels: %v", err)
	}
	lex := NewLexicon()
	if err := lex.LoadLevels(path); err != nil {
		t.Fatalf("load levels: %v", err)
	}
	if lex.Levels["cat"] != "A1" || lex.Levels["require"] != "B2" {
		t.Fatalf("levels = %v", lex.Levels)
	}
	if _, ok := lex.Levels["bogus"]; ok {
		t.Fatalf("invalid level accepted")
	}
}
