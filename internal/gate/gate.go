// internal/gate/gate.go
//
// The acceptance gate is the pipeline's per-candidate policy object. Hard
// structural rejects fire regardless of the threshold; everything else is
// a score comparison, with a borderline band handed off to the external
// classifier when one is configured.

package gate

import (
	"fmt"

	"github.com/dirvine/four-word-networking/internal/score"
	"github.com/dirvine/four-word-networking/internal/words"
)

// Outcome is the gate's three-way decision.
type Outcome int

const (
	// Reject drops the candidate at the current threshold.
	Reject Outcome = iota
	// Accept admits the candidate outright.
	Accept
	// Borderline defers to the external classifier.
	Borderline
)

// Gate evaluates scored candidates against structural rules and the
// current acceptance threshold.
type Gate struct {
	// MinLen and MaxLen bound accepted word lengths (inclusive).
	MinLen int
	MaxLen int
	// BorderlineBand is the score band at and above the threshold whose
	// candidates get double-checked by the classifier. Zero disables
	// consults even when Consult is true.
	BorderlineBand float64
	// Consult enables classifier deferral for borderline candidates.
	Consult bool
	// Member reports whether a normalized word is already accepted.
	Member func(string) bool
}

// Evaluate applies hard rejects first, then the threshold. The returned
// reason is empty for accepts and borderlines.
func (g *Gate) Evaluate(c words.Candidate, v score.Vector, total, threshold float64) (Outcome, string) {
	word := words.Normalize(c.Text)
	if v.Appropriate == 0 {
		return Reject, "banned word"
	}
	if v.Clean == 0 {
		return Reject, "non-alphabetic"
	}
	if n := len(word); n < g.MinLen || n > g.MaxLen {
		return Reject, fmt.Sprintf("length %d outside [%d,%d]", n, g.MinLen, g.MaxLen)
	}
	if g.Member != nil && g.Member(word) {
		return Reject, "already accepted"
	}
	if total < threshold {
		return Reject, fmt.Sprintf("score %.3f below threshold %.2f", total, threshold)
	}
	if g.Consult && g.BorderlineBand > 0 && total < threshold+g.BorderlineBand {
		return Borderline, ""
	}
	return Accept, ""
}
