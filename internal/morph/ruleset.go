// internal/morph/ruleset.go
//
// Morphological expansion: base word -> surface forms. One parameterized
// ruleset replaces the pile of near-duplicate generators this grew out of;
// callers tune the irregular table and the optional noun suffixes instead
// of forking the code.

package morph

import (
	"sort"
	"strings"

	"github.com/dirvine/four-word-networking/internal/words"
)

// Ruleset governs expansion. Irregular bases short-circuit the regular
// rules entirely; the two paths never merge for the same base.
type Ruleset struct {
	// Irregular maps a base word to its explicit surface forms.
	Irregular map[string][]string
	// NounSuffixes enables the optional -ness/-ment/-ful/-less/-able/-ish rules.
	NounSuffixes bool
	// MinLen and MaxLen bound every emitted form (inclusive).
	MinLen int
	MaxLen int
}

// DefaultRuleset returns the expansion rules used for the production
// vocabulary: the curated irregular table, noun suffixes on, 2-12 chars.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Irregular:    defaultIrregular(),
		NounSuffixes: true,
		MinLen:       2,
		MaxLen:       12,
	}
}

const (
	vowels = "aeiou"
	// Final consonants that double before a vowel-initial suffix when the
	// base ends in a short stressed CVC pattern.
	doublers = "bcdgklmnprstvwz"
)

// Expand returns the valid surface forms of base, including base itself,
// sorted for deterministic iteration. Forms outside the length window or
// containing non-letters are silently dropped.
func (r Ruleset) Expand(base string) []string {
	base = words.Normalize(base)
	if base == "" {
		return nil
	}

	forms := map[string]struct{}{base: {}}
	if explicit, ok := r.Irregular[base]; ok {
		for _, f := range explicit {
			forms[words.Normalize(f)] = struct{}{}
		}
	} else {
		for _, f := range regularForms(base, r.NounSuffixes) {
			forms[f] = struct{}{}
		}
	}

	out := make([]string, 0, len(forms))
	for f := range forms {
		if len(f) < r.MinLen || len(f) > r.MaxLen || !words.IsAlphabetic(f) {
			continue
		}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func regularForms(base string, nounSuffixes bool) []string {
	var forms []string
	forms = append(forms, plural(base))
	forms = append(forms, progressive(base))
	forms = append(forms, past(base))
	forms = append(forms, comparative(base), superlative(base))
	forms = append(forms, adverbial(base))
	if nounSuffixes {
		forms = append(forms, nounForms(base)...)
	}
	return forms
}

// plural applies -ies after consonant+y, -es after sibilants and most -o
// endings, and plain -s otherwise.
func plural(base string) string {
	switch {
	case endsConsonantY(base):
		return base[:len(base)-1] + "ies"
	case hasSibilantEnding(base):
		return base + "es"
	case strings.HasSuffix(base, "o") && !strings.HasSuffix(base, "oo") && !strings.HasSuffix(base, "eo"):
		return base + "es"
	default:
		return base + "s"
	}
}

func progressive(base string) string {
	switch {
	case strings.HasSuffix(base, "ie"):
		return base[:len(base)-2] + "ying"
	case strings.HasSuffix(base, "e") && !strings.HasSuffix(base, "ee"):
		return base[:len(base)-1] + "ing"
	case doublesFinal(base):
		return base + base[len(base)-1:] + "ing"
	default:
		return base + "ing"
	}
}

func past(base string) string {
	switch {
	case strings.HasSuffix(base, "e"):
		return base + "d"
	case endsConsonantY(base):
		return base[:len(base)-1] + "ied"
	case doublesFinal(base):
		return base + base[len(base)-1:] + "ed"
	default:
		return base + "ed"
	}
}

func comparative(base string) string {
	switch {
	case strings.HasSuffix(base, "e"):
		return base + "r"
	case endsConsonantY(base):
		return base[:len(base)-1] + "ier"
	case doublesFinal(base):
		return base + base[len(base)-1:] + "er"
	default:
		return base + "er"
	}
}

func superlative(base string) string {
	switch {
	case strings.HasSuffix(base, "e"):
		return base + "st"
	case endsConsonantY(base):
		return base[:len(base)-1] + "iest"
	case doublesFinal(base):
		return base + base[len(base)-1:] + "est"
	default:
		return base + "est"
	}
}

// adverbial turns y into -ily and -le endings into -ly without stacking ll.
func adverbial(base string) string {
	switch {
	case strings.HasSuffix(base, "y"):
		return base[:len(base)-1] + "ily"
	case strings.HasSuffix(base, "le"):
		return base[:len(base)-1] + "y"
	default:
		return base + "ly"
	}
}

// conflicting noun endings: a base that already carries one of these never
// receives another state suffix.
var nounConflicts = []string{"ness", "ment", "tion", "sion", "ity", "ance", "ence"}

func nounForms(base string) []string {
	var out []string
	conflicted := false
	for _, suffix := range nounConflicts {
		if strings.HasSuffix(base, suffix) {
			conflicted = true
			break
		}
	}
	if !conflicted {
		if endsConsonantY(base) {
			out = append(out, base[:len(base)-1]+"iness")
		} else {
			out = append(out, base+"ness")
		}
		if !strings.HasSuffix(base, "e") {
			out = append(out, base+"ment")
		}
	}
	out = append(out, base+"ful", base+"less")
	if strings.HasSuffix(base, "e") {
		out = append(out, base[:len(base)-1]+"able")
	} else {
		out = append(out, base+"able")
	}
	if !strings.HasSuffix(base, "ish") {
		out = append(out, base+"ish")
	}
	return out
}

// endsConsonantY reports a final y preceded by a consonant, the trigger for
// the y -> i shift.
func endsConsonantY(base string) bool {
	if len(base) < 3 || !strings.HasSuffix(base, "y") {
		return false
	}
	return !strings.ContainsRune(vowels, rune(base[len(base)-2]))
}

func hasSibilantEnding(base string) bool {
	for _, suffix := range []string{"ss", "sh", "ch", "s", "x", "z"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// doublesFinal reports the short stressed CVC shape: a doubling consonant
// preceded by a single vowel preceded by a consonant.
func doublesFinal(base string) bool {
	if len(base) < 3 {
		return false
	}
	last := rune(base[len(base)-1])
	mid := rune(base[len(base)-2])
	before := rune(base[len(base)-3])
	return strings.ContainsRune(doublers, last) &&
		strings.ContainsRune(vowels, mid) &&
		!strings.ContainsRune(vowels, before)
}
