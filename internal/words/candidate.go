// internal/words/candidate.go
//
// Core candidate model for the vocabulary pipeline. A candidate is a word
// proposed for inclusion together with where it came from and how frequent
// it is believed to be. Candidates are value types and never mutated after
// creation; identity is the normalized text.

package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Source identifies which generator produced a candidate.
type Source string

const (
	SourceMorphology Source = "morphology"
	SourceCompound   Source = "compound"
	SourceCorpus     Source = "corpus"
	SourceGenerator  Source = "generator"
)

// RankUnknown marks candidates with no frequency information. Any real rank
// sorts ahead of it.
const RankUnknown = 1 << 30

// Candidate is a word proposed for the vocabulary, with provenance.
type Candidate struct {
	Text   string
	Source Source
	// Rank is an ordinal frequency position; lower means more frequent.
	// RankUnknown when the source carries no frequency signal.
	Rank int
}

// Length returns the character length of the candidate text.
func (c Candidate) Length() int { return len(c.Text) }

// stripMarks removes combining marks after NFD decomposition, so accented
// input folds onto its ASCII base letters.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, trims, and accent-strips a word. All membership
// checks across the pipeline key on the normalized form.
func Normalize(text string) string {
	out, _, err := transform.String(stripMarks, strings.TrimSpace(text))
	if err != nil {
		out = strings.TrimSpace(text)
	}
	return strings.ToLower(out)
}

// IsAlphabetic reports whether the word is non-empty lowercase ASCII letters
// only. The final vocabulary admits nothing else.
func IsAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
