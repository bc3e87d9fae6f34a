// internal/classifier/verdict.go
//
// Typed verdicts for the external word validator. The model's loose JSON is
// parsed and validated here at the boundary; the rest of the pipeline only
// ever sees these types.

package classifier

import (
	"context"
	"fmt"

	"github.com/dirvine/four-word-networking/internal/words"
)

// Action is the validated keep/remove decision for one word.
type Action string

const (
	ActionKeep   Action = "keep"
	ActionRemove Action = "remove"
)

// MaxReplacements bounds how many substitutes a verdict may carry.
const MaxReplacements = 3

// Verdict is the validated decision for a single submitted word.
type Verdict struct {
	Word   string
	Action Action
	// Reason explains a removal; empty for keeps.
	Reason string
	// Replacements lists up to MaxReplacements suggested substitutes,
	// normalized; only present on removals.
	Replacements []string
}

// Checker validates a batch of candidate words. Implementations must be
// idempotent per batch: resubmitting the same words yields the same
// verdicts. A returned error means the whole batch is undecided.
type Checker interface {
	Check(ctx context.Context, batch []string) ([]Verdict, error)
}

// KeepAll is a Checker that keeps every word. It stands in for the real
// engine on dry runs so the borderline path can be exercised offline.
type KeepAll struct{}

func (KeepAll) Check(_ context.Context, batch []string) ([]Verdict, error) {
	out := make([]Verdict, len(batch))
	for i, w := range batch {
		out[i] = Verdict{Word: words.Normalize(w), Action: ActionKeep}
	}
	return out, nil
}

// rawResult mirrors one element of the model's assess_words payload.
type rawResult struct {
	Word         string   `json:"word"`
	Keep         bool     `json:"keep"`
	Reason       string   `json:"reason,omitempty"`
	Replacements []string `json:"replacements,omitempty"`
}

// validateBatch converts raw results into verdicts, requiring exactly one
// verdict per submitted word. A missing or unknown word makes the whole
// response invalid: a partial answer must be retried, never read as an
// implicit keep-all.
func validateBatch(batch []string, results []rawResult) ([]Verdict, error) {
	wanted := make(map[string]int, len(batch))
	for i, w := range batch {
		wanted[words.Normalize(w)] = i
	}

	out := make([]Verdict, len(batch))
	seen := make(map[string]struct{}, len(batch))
	for _, r := range results {
		word := words.Normalize(r.Word)
		idx, ok := wanted[word]
		if !ok {
			return nil, fmt.Errorf("classifier: verdict for unrequested word %q", r.Word)
		}
		if _, dup := seen[word]; dup {
			return nil, fmt.Errorf("classifier: duplicate verdict for %q", word)
		}
		seen[word] = struct{}{}
		out[idx] = toVerdict(word, r)
	}
	if len(seen) != len(batch) {
		return nil, fmt.Errorf("classifier: partial response: %d verdicts for %d words", len(seen), len(batch))
	}
	return out, nil
}

func toVerdict(word string, r rawResult) Verdict {
	v := Verdict{Word: word, Action: ActionKeep}
	if r.Keep {
		return v
	}
	v.Action = ActionRemove
	v.Reason = r.Reason
	for _, alt := range r.Replacements {
		alt = words.Normalize(alt)
		if alt == "" || !words.IsAlphabetic(alt) {
			continue
		}
		v.Replacements = append(v.Replacements, alt)
		if len(v.Replacements) == MaxReplacements {
			break
		}
	}
	return v
}
