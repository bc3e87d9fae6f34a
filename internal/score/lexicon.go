// internal/score/lexicon.go
//
// The Lexicon bundles every reference table the scorer consults:
// pronunciations (CMU format), the familiar-word set, CEFR proficiency
// levels, and the banned-word set. It is built once per run and passed in
// explicitly; nothing here is package-level mutable state.

package score

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dirvine/four-word-networking/internal/words"
)

// Lexicon is the read-only reference data behind the readability criteria.
type Lexicon struct {
	// Pronunciations maps a word to its phoneme sequence, CMU style:
	// stress digits on vowel phonemes ("W ER1 D").
	Pronunciations map[string][]string
	// Familiar is the curated common-word reference set.
	Familiar map[string]struct{}
	// Levels maps words to CEFR levels ("A1".."C2").
	Levels map[string]string
	// Banned words hard-disqualify a candidate.
	Banned map[string]struct{}
}

// NewLexicon returns an empty lexicon; load methods fill it in.
func NewLexicon() *Lexicon {
	return &Lexicon{
		Pronunciations: make(map[string][]string),
		Familiar:       make(map[string]struct{}),
		Levels:         make(map[string]string),
		Banned:         make(map[string]struct{}),
	}
}

// LoadPronunciations reads a CMU pronouncing dictionary file. Lines look
// like "WORD  W ER1 D"; comment lines start with ";;;" and alternate
// pronunciations carry a "(2)" marker, which is dropped (the first
// pronunciation wins, later variants are ignored).
func (l *Lexicon) LoadPronunciations(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("score: open pronunciations: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ";;;") || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		head := fields[0]
		if idx := strings.IndexByte(head, '('); idx > 0 {
			continue
		}
		word := words.Normalize(head)
		if word == "" {
			continue
		}
		if _, exists := l.Pronunciations[word]; exists {
			continue
		}
		l.Pronunciations[word] = fields[1:]
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("score: read pronunciations %s: %w", path, err)
	}
	return nil
}

// LoadFamiliar reads the common-word reference list.
func (l *Lexicon) LoadFamiliar(path string) error {
	set, err := words.LoadSet(path)
	if err != nil {
		return fmt.Errorf("score: familiar list: %w", err)
	}
	l.Familiar = set
	return nil
}

// LoadBanned reads the banned-word list.
func (l *Lexicon) LoadBanned(path string) error {
	set, err := words.LoadSet(path)
	if err != nil {
		return fmt.Errorf("score: banned list: %w", err)
	}
	l.Banned = set
	return nil
}

// LoadLevels reads a CEFR level table: one "word LEVEL" pair per line.
func (l *Lexicon) LoadLevels(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("score: open levels: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		word := words.Normalize(fields[0])
		level := strings.ToUpper(strings.TrimSpace(fields[1]))
		if word == "" || !validLevel(level) {
			continue
		}
		l.Levels[word] = level
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("score: read levels %s: %w", path, err)
	}
	return nil
}

func validLevel(level string) bool {
	switch level {
	case "A1", "A2", "B1", "B2", "C1", "C2":
		return true
	}
	return false
}

// Syllables returns the syllable count for a word: stress digits in the
// known pronunciation, or the heuristic estimate for unknown words.
func (l *Lexicon) Syllables(word string) int {
	word = words.Normalize(word)
	if phones, ok := l.Pronunciations[word]; ok {
		count := 0
		for _, ph := range phones {
			if len(ph) > 0 && ph[len(ph)-1] >= '0' && ph[len(ph)-1] <= '9' {
				count++
			}
		}
		if count > 0 {
			return count
		}
	}
	return estimateSyllables(word)
}

// HasPronunciation reports whether the word has a known standard
// pronunciation, the proxy for phonetic regularity.
func (l *Lexicon) HasPronunciation(word string) bool {
	_, ok := l.Pronunciations[words.Normalize(word)]
	return ok
}

// estimateSyllables approximates syllables for out-of-dictionary words by
// counting vowel groups, discounting a silent final e.
func estimateSyllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
