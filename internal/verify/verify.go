// internal/verify/verify.go
//
// Final-output verification. Structural checks are fatal: a list that
// fails any of them must not ship. Phonetic and concatenation checks are
// advisory; they flag words for human review without failing the run.

package verify

import (
	"fmt"
	"strings"

	"github.com/dirvine/four-word-networking/internal/words"
)

// Severity classifies a finding.
type Severity string

const (
	// SeverityFatal findings make the list unshippable.
	SeverityFatal Severity = "fatal"
	// SeverityAdvisory findings are review flags only.
	SeverityAdvisory Severity = "advisory"
)

// Finding is one verification failure or flag.
type Finding struct {
	Check    string
	Severity Severity
	Detail   string
}

// Result aggregates the findings for one verified list.
type Result struct {
	Words    int
	Findings []Finding
}

// Ok reports whether the list passed every fatal check.
func (r *Result) Ok() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityFatal {
			return false
		}
	}
	return true
}

// Fatal returns only the fatal findings.
func (r *Result) Fatal() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityFatal {
			out = append(out, f)
		}
	}
	return out
}

func (r *Result) add(check string, sev Severity, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Check:    check,
		Severity: sev,
		Detail:   fmt.Sprintf(format, args...),
	})
}

// Verifier checks a final word list against the output contract.
type Verifier struct {
	// Target is the exact cardinality the list must have.
	Target    int
	MinLength int
	MaxLength int
	Banned    map[string]struct{}
}

// Verify runs every check over the list. The list is expected in its
// output form: normalized and sorted.
func (v *Verifier) Verify(list []string) *Result {
	r := &Result{Words: len(list)}

	if len(list) != v.Target {
		r.add("cardinality", SeverityFatal, "%d words, want exactly %d", len(list), v.Target)
	}

	seen := make(map[string]struct{}, len(list))
	for _, w := range list {
		if _, dup := seen[w]; dup {
			r.add("duplicates", SeverityFatal, "duplicate word %q", w)
			continue
		}
		seen[w] = struct{}{}

		if words.IsPlaceholder(w) {
			r.add("placeholders", SeverityFatal, "unresolved placeholder %q", w)
			continue
		}
		if !words.IsAlphabetic(w) {
			r.add("alphabetic", SeverityFatal, "word %q is not lowercase a-z", w)
			continue
		}
		if n := len(w); n < v.MinLength || n > v.MaxLength {
			r.add("length", SeverityFatal, "word %q has length %d outside [%d,%d]", w, n, v.MinLength, v.MaxLength)
		}
		if _, bad := v.Banned[w]; bad {
			r.add("banned", SeverityFatal, "banned word %q present", w)
		}
	}

	v.checkHomophones(seen, r)
	v.checkConcatenations(list, r)
	return r
}

// homophoneClusters is a curated table of sound-alike groups. Having more
// than one member of a cluster in the list invites transcription errors
// when words are spoken aloud.
var homophoneClusters = [][]string{
	{"to", "too", "two"},
	{"for", "four", "fore"},
	{"their", "there"},
	{"by", "buy", "bye"},
	{"sea", "see"},
	{"son", "sun"},
	{"hole", "whole"},
	{"night", "knight"},
	{"one", "won"},
	{"right", "write"},
	{"peace", "piece"},
	{"plain", "plane"},
	{"mail", "male"},
	{"week", "weak"},
	{"steel", "steal"},
	{"blue", "blew"},
	{"hear", "here"},
	{"road", "rode"},
	{"tail", "tale"},
	{"pair", "pear"},
}

func (v *Verifier) checkHomophones(present map[string]struct{}, r *Result) {
	for _, cluster := range homophoneClusters {
		var hits []string
		for _, w := range cluster {
			if _, ok := present[w]; ok {
				hits = append(hits, w)
			}
		}
		if len(hits) > 1 {
			r.add("homophones", SeverityAdvisory, "sound-alike words both present: %s", strings.Join(hits, ", "))
		}
	}
}

// checkConcatenations flags adjacent words in the sorted list whose
// concatenation embeds a banned word. Encoded addresses join words
// directly, so such pairs can spell something unintended.
func (v *Verifier) checkConcatenations(list []string, r *Result) {
	if len(v.Banned) == 0 {
		return
	}
	for i := 1; i < len(list); i++ {
		joined := list[i-1] + list[i]
		for bad := range v.Banned {
			if len(bad) < 3 {
				continue
			}
			if strings.Contains(joined, bad) && list[i-1] != bad && list[i] != bad {
				r.add("concatenation", SeverityAdvisory,
					"adjacent pair %q+%q embeds %q", list[i-1], list[i], bad)
			}
		}
	}
}
