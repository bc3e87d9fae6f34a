package gate

import (
	"strings"
	"testing"

	"github.com/dirvine/four-word-networking/internal/score"
	"github.com/dirvine/four-word-networking/internal/words"
)

func cleanVector() score.Vector {
	return score.Vector{Clean: 1, Appropriate: 1}
}

func TestHardRejectsIgnoreThreshold(t *testing.T) {
	g := &Gate{MinLen: 2, MaxLen: 12}

	v := cleanVector()
	v.Appropriate = 0
	if out, reason := g.Evaluate(words.Candidate{Text: "dang"}, v, 1.0, 0.0); out != Reject || reason != "banned word" {
		t.Fatalf("banned word: out=%v reason=%q", out, reason)
	}

	v = cleanVector()
	v.Clean = 0
	if out, _ := g.Evaluate(words.Candidate{Text: "ab3"}, v, 1.0, 0.0); out != Reject {
		t.Fatalf("non-alphabetic must hard-reject")
	}

	if out, reason := g.Evaluate(words.Candidate{Text: "a"}, cleanVector(), 1.0, 0.0); out != Reject || !strings.Contains(reason, "length") {
		t.Fatalf("short word: out=%v reason=%q", out, reason)
	}
	long := words.Candidate{Text: "extraordinarily"}
	if out, _ := g.Evaluate(long, cleanVector(), 1.0, 0.0); out != Reject {
		t.Fatalf("long word must hard-reject")
	}
}

func TestDuplicateRejected(t *testing.T) {
	g := &Gate{MinLen: 2, MaxLen: 12, Member: func(w string) bool { return w == "stone" }}
	if out, reason := g.Evaluate(words.Candidate{Text: "Stone"}, cleanVector(), 1.0, 0.5); out != Reject || reason != "already accepted" {
		t.Fatalf("duplicate: out=%v reason=%q", out, reason)
	}
	if out, _ := g.Evaluate(words.Candidate{Text: "river"}, cleanVector(), 1.0, 0.5); out != Accept {
		t.Fatalf("non-duplicate should pass")
	}
}

func TestThresholdAndBorderlineBand(t *testing.T) {
	g := &Gate{MinLen: 2, MaxLen: 12, BorderlineBand: 0.05, Consult: true}

	if out, _ := g.Evaluate(words.Candidate{Text: "stone"}, cleanVector(), 0.49, 0.50); out != Reject {
		t.Fatalf("below threshold must reject")
	}
	if out, _ := g.Evaluate(words.Candidate{Text: "stone"}, cleanVector(), 0.52, 0.50); out != Borderline {
		t.Fatalf("inside band must defer to classifier")
	}
	if out, _ := g.Evaluate(words.Candidate{Text: "stone"}, cleanVector(), 0.60, 0.50); out != Accept {
		t.Fatalf("above band must accept outright")
	}

	// With consults disabled the band collapses into plain accepts.
	g.Consult = false
	if out, _ := g.Evaluate(words.Candidate{Text: "stone"}, cleanVector(), 0.52, 0.50); out != Accept {
		t.Fatalf("band without classifier should accept")
	}
}
