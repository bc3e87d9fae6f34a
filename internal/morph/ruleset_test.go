package morph

import (
	"testing"
)

func contains(forms []string, want string) bool {
	for _, f := range forms {
		if f == want {
			return true
		}
	}
	return false
}

func TestExpandRegularSuffixes(t *testing.T) {
	rules := DefaultRuleset()
	cases := []struct {
		base string
		want []string
	}{
		{"city", []string{"city", "cities"}},
		{"box", []string{"box", "boxes"}},
		{"stop", []string{"stop", "stops", "stopping", "stopped", "stopper"}},
		{"move", []string{"move", "moves", "moving", "moved", "mover", "movable"}},
		{"die", []string{"die", "dying", "died"}},
		{"happy", []string{"happy", "happily", "happier", "happiest", "happiness"}},
		{"gentle", []string{"gentle", "gently"}},
		{"try", []string{"try", "tries", "trying", "tried"}},
	}
	for _, tc := range cases {
		forms := rules.Expand(tc.base)
		for _, want := range tc.want {
			if !contains(forms, want) {
				t.Fatalf("Expand(%q) = %v, missing %q", tc.base, forms, want)
			}
		}
	}
}

func TestExpandIrregularShortCircuits(t *testing.T) {
	rules := DefaultRuleset()
	forms := rules.Expand("go")
	for _, want := range []string{"go", "goes", "went", "gone", "going"} {
		if !contains(forms, want) {
			t.Fatalf("Expand(go) missing %q: %v", want, forms)
		}
	}
	// The regular path must never run for an irregular base.
	for _, reject := range []string{"gos", "goed", "goly", "goness"} {
		if contains(forms, reject) {
			t.Fatalf("regular form %q leaked into irregular expansion", reject)
		}
	}
}

func TestExpandIrregularPlural(t *testing.T) {
	forms := DefaultRuleset().Expand("child")
	if !contains(forms, "children") {
		t.Fatalf("Expand(child) = %v, missing children", forms)
	}
	if contains(forms, "childs") {
		t.Fatalf("regular plural leaked for irregular base: %v", forms)
	}
}

func TestExpandFiltersLengthWindow(t *testing.T) {
	forms := DefaultRuleset().Expand("understand")
	if contains(forms, "understanding") {
		t.Fatalf("13-char form should be filtered: %v", forms)
	}
	if !contains(forms, "understood") {
		t.Fatalf("Expand(understand) = %v, missing understood", forms)
	}
}

func TestExpandDeterministicOrder(t *testing.T) {
	rules := DefaultRuleset()
	first := rules.Expand("walk")
	second := rules.Expand("walk")
	if len(first) != len(second) {
		t.Fatalf("nondeterministic form count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("nondeterministic order at %d: %q vs %q", i, first[i], second[i])
		}
		if i > 0 && first[i-1] >= first[i] {
			t.Fatalf("forms not sorted: %v", first)
		}
	}
}

func TestExpandNoNounSuffixStacking(t *testing.T) {
	rules := DefaultRuleset()
	forms := rules.Expand("payment")
	for _, reject := range []string{"paymentness", "paymentment"} {
		if contains(forms, reject) {
			t.Fatalf("stacked suffix %q produced: %v", reject, forms)
		}
	}
}

func TestExpandZeroExtraFormsIsNotAnError(t *testing.T) {
	rules := Ruleset{MinLen: 2, MaxLen: 3}
	forms := rules.Expand("cat")
	// Every derived form exceeds three characters; only the base survives.
	if len(forms) != 1 || forms[0] != "cat" {
		t.Fatalf("Expand(cat) = %v, want [cat]", forms)
	}
}
