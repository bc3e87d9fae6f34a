package words

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeStripsAccentsAndCase(t *testing.T) {
	cases := map[string]string{
		"  Hello ": "hello",
		"Café":     "cafe",
		"naïve":    "naive",
		"ÜBER":     "uber",
		"plain":    "plain",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsAlphabetic(t *testing.T) {
	if !IsAlphabetic("word") {
		t.Fatalf("expected word to be alphabetic")
	}
	for _, bad := range []string{"", "Word", "wor1d", "wo-rd", "_missing_a_"} {
		if IsAlphabetic(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestPoolKeepsBestProvenance(t *testing.T) {
	pool := NewPool()
	if !pool.Add(Candidate{Text: "Stone", Source: SourceMorphology, Rank: RankUnknown}) {
		t.Fatalf("first add should report new")
	}
	if pool.Add(Candidate{Text: "stone", Source: SourceCorpus, Rank: 42}) {
		t.Fatalf("duplicate add should not report new")
	}
	cs := pool.Candidates()
	if len(cs) != 1 {
		t.Fatalf("pool size = %d, want 1", len(cs))
	}
	if cs[0].Rank != 42 || cs[0].Source != SourceCorpus {
		t.Fatalf("expected corpus provenance to win, got %+v", cs[0])
	}
	// A worse rank must not downgrade the stored one.
	pool.Add(Candidate{Text: "stone", Source: SourceCompound, Rank: 9000})
	if got := pool.Candidates()[0].Rank; got != 42 {
		t.Fatalf("rank downgraded to %d", got)
	}
}

func TestPoolPreservesInsertionOrder(t *testing.T) {
	pool := NewPool()
	for _, w := range []string{"cherry", "apple", "banana"} {
		pool.Add(Candidate{Text: w, Source: SourceCorpus, Rank: RankUnknown})
	}
	got := pool.Candidates()
	want := []string{"cherry", "apple", "banana"}
	for i, w := range want {
		if got[i].Text != w {
			t.Fatalf("candidate %d = %q, want %q", i, got[i].Text, w)
		}
	}
}

func TestLoadCorpusFileOrderRank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	content := "# comment\nthe\n\nof\nand\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	cs, err := LoadCorpus(path, SourceCorpus)
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	if len(cs) != 3 {
		t.Fatalf("len = %d, want 3", len(cs))
	}
	if cs[0].Text != "the" || cs[0].Rank != 0 {
		t.Fatalf("first entry = %+v", cs[0])
	}
	if cs[2].Text != "and" || cs[2].Rank != 2 {
		t.Fatalf("third entry = %+v", cs[2])
	}
}

func TestLoadCorpusExplicitFrequencyColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.txt")
	content := "rare 10\ncommon 9000\nmiddling 500\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	cs, err := LoadCorpus(path, SourceCorpus)
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	order := []string{"common", "middling", "rare"}
	for i, want := range order {
		if cs[i].Text != want || cs[i].Rank != i {
			t.Fatalf("entry %d = %+v, want %s rank %d", i, cs[i], want, i)
		}
	}
}

func TestCompoundsFilterAndDedup(t *testing.T) {
	pairs := []CategoryPair{{
		Name:  "test",
		Left:  []string{"sun", "sun", "verylongword"},
		Right: []string{"rise", "rise"},
	}}
	known := func(w string) bool { return w == "sunrise" }

	// Everything is either too long, a duplicate, or already known.
	if got := Compounds(pairs, 8, known); len(got) != 0 {
		t.Fatalf("expected no compounds, got %v", got)
	}

	got := Compounds(pairs, 8, nil)
	if len(got) != 1 || got[0].Text != "sunrise" {
		t.Fatalf("expected single sunrise compound, got %v", got)
	}
	if got[0].Source != SourceCompound || got[0].Rank != RankUnknown {
		t.Fatalf("unexpected provenance: %+v", got[0])
	}
}

func TestWriteListRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	list := []string{"alpha", "beta", "gamma"}
	if err := WriteList(path, list); err != nil {
		t.Fatalf("write list: %v", err)
	}
	back, err := LoadLines(path)
	if err != nil {
		t.Fatalf("load lines: %v", err)
	}
	if len(back) != len(list) {
		t.Fatalf("round trip length = %d, want %d", len(back), len(list))
	}
	for i := range list {
		if back[i] != list[i] {
			t.Fatalf("line %d = %q, want %q", i, back[i], list[i])
		}
	}
}

func TestPlaceholderRoundTrip(t *testing.T) {
	ph := Placeholder("Dang")
	if ph != "_missing_dang_" {
		t.Fatalf("placeholder = %q", ph)
	}
	if !IsPlaceholder(ph) {
		t.Fatalf("%q must match the placeholder pattern", ph)
	}
	if got := PlaceholderWord(ph); got != "dang" {
		t.Fatalf("placeholder word = %q, want dang", got)
	}
	for _, s := range []string{"dang", "_missing__", "_missing_a1_", "missing_a_"} {
		if IsPlaceholder(s) {
			t.Fatalf("%q must not match the placeholder pattern", s)
		}
	}
	if IsAlphabetic(ph) {
		t.Fatalf("placeholders must never pass the alphabetic check")
	}
}
