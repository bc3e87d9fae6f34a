package score

import (
	"fmt"
	"math"

	"github.com/dirvine/four-word-networking/internal/words"
)

// Vector holds the per-criterion readability scores for one candidate,
// each in [0,1].
type Vector struct {
	Syllable    float64
	Length      float64
	Familiarity float64
	Level       float64
	Frequency   float64
	Phonetic    float64
	Clean       float64
	Appropriate float64
}

// Weights is the fixed weight vector reducing a Vector to a total score.
// The weights must sum to 1.0; this is checked once at scorer construction.
type Weights struct {
	Syllable    float64 `yaml:"syllable"`
	Length      float64 `yaml:"length"`
	Familiarity float64 `yaml:"familiarity"`
	Level       float64 `yaml:"level"`
	Frequency   float64 `yaml:"frequency"`
	Phonetic    float64 `yaml:"phonetic"`
	Clean       float64 `yaml:"clean"`
	Appropriate float64 `yaml:"appropriate"`
}

// DefaultWeights mirrors the production scoring configuration.
func DefaultWeights() Weights {
	return Weights{
		Syllable:    0.20,
		Length:      0.10,
		Familiarity: 0.20,
		Level:       0.15,
		Frequency:   0.20,
		Phonetic:    0.10,
		Clean:       0.03,
		Appropriate: 0.02,
	}
}

const weightSumTolerance = 1e-9

// Validate checks the sum-to-one invariant.
func (w Weights) Validate() error {
	sum := w.Syllable + w.Length + w.Familiarity + w.Level +
		w.Frequency + w.Phonetic + w.Clean + w.Appropriate
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("score: weights sum to %.6f, want 1.0", sum)
	}
	return nil
}

// Total is the weighted dot product of the vector.
func (v Vector) Total(w Weights) float64 {
	return v.Syllable*w.Syllable +
		v.Length*w.Length +
		v.Familiarity*w.Familiarity +
		v.Level*w.Level +
		v.Frequency*w.Frequency +
		v.Phonetic*w.Phonetic +
		v.Clean*w.Clean +
		v.Appropriate*w.Appropriate
}

// Scorer computes readability vectors against a fixed lexicon and weights.
type Scorer struct {
	lex     *Lexicon
	weights Weights
}

// NewScorer validates the weights and returns a scorer bound to the lexicon.
func NewScorer(lex *Lexicon, weights Weights) (*Scorer, error) {
	if lex == nil {
		return nil, fmt.Errorf("score: lexicon is required")
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{lex: lex, weights: weights}, nil
}

// Weights returns the scorer's weight configuration.
func (s *Scorer) Weights() Weights { return s.weights }

// Score computes the criterion vector for one candidate. Scores are pure
// functions of the candidate and the lexicon; the same candidate always
// scores identically within a run.
func (s *Scorer) Score(c words.Candidate) Vector {
	word := words.Normalize(c.Text)
	return Vector{
		Syllable:    syllableFitness(s.lex.Syllables(word)),
		Length:      lengthFitness(len(word)),
		Familiarity: s.familiarity(word),
		Level:       s.levelFitness(word),
		Frequency:   frequencyFitness(c.Rank),
		Phonetic:    s.phonetic(word),
		Clean:       cleanliness(word),
		Appropriate: s.appropriate(word),
	}
}

// Total is a convenience for Score(c).Total(weights).
func (s *Scorer) Total(c words.Candidate) float64 {
	return s.Score(c).Total(s.weights)
}

// syllableFitness prefers short words: one syllable is ideal.
func syllableFitness(syllables int) float64 {
	switch {
	case syllables <= 1:
		return 1.0
	case syllables == 2:
		return 0.9
	case syllables == 3:
		return 0.6
	default:
		return 0.2
	}
}

// lengthFitness peaks at 3-5 characters.
func lengthFitness(length int) float64 {
	switch {
	case length >= 3 && length <= 5:
		return 1.0
	case length == 6 || length == 7:
		return 0.8
	case length == 2 || length == 8:
		return 0.6
	case length == 9:
		return 0.4
	default:
		return 0.2
	}
}

func (s *Scorer) familiarity(word string) float64 {
	if _, ok := s.lex.Familiar[word]; ok {
		return 1.0
	}
	return 0.3
}

var levelScores = map[string]float64{
	"A1": 1.0,
	"A2": 0.9,
	"B1": 0.7,
	"B2": 0.5,
	"C1": 0.3,
	"C2": 0.1,
}

func (s *Scorer) levelFitness(word string) float64 {
	if level, ok := s.lex.Levels[word]; ok {
		if v, known := levelScores[level]; known {
			return v
		}
	}
	// Unknown words score as the hardest level.
	return levelScores["C2"]
}

// frequencyFitness steps down as the corpus rank grows.
func frequencyFitness(rank int) float64 {
	switch {
	case rank < 1000:
		return 1.0
	case rank < 5000:
		return 0.8
	case rank < 10000:
		return 0.6
	case rank < 20000:
		return 0.4
	default:
		return 0.2
	}
}

func (s *Scorer) phonetic(word string) float64 {
	if s.lex.HasPronunciation(word) {
		return 1.0
	}
	return 0.5
}

func cleanliness(word string) float64 {
	if words.IsAlphabetic(word) {
		return 1.0
	}
	return 0.0
}

func (s *Scorer) appropriate(word string) float64 {
	if _, banned := s.lex.Banned[word]; banned {
		return 0.0
	}
	return 1.0
}
