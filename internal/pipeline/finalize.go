// internal/pipeline/finalize.go
//
// Exact-cardinality enforcement. Once the passes are done the set is
// trimmed or backfilled to precisely the target size, with a synthetic
// generator as the flagged last resort.

package pipeline

import (
	"fmt"
	"sort"

	"github.com/dirvine/four-word-networking/internal/words"
)

func (c *Controller) finalize() error {
	if len(c.accepted) > c.s.Target {
		if err := c.trim(); err != nil {
			return err
		}
	}
	if len(c.accepted) < c.s.Target {
		if err := c.backfill(); err != nil {
			return err
		}
	}
	if len(c.accepted) < c.s.Target && c.s.Synthetic.Enabled {
		if err := c.generate(); err != nil {
			return err
		}
	}
	return nil
}

// trim drops surplus words in total order: frequency rank ascending, then
// text ascending. The order has no ties, so equal inputs always keep the
// same words.
func (c *Controller) trim() error {
	cands := make([]words.Candidate, 0, len(c.accepted))
	for _, cand := range c.accepted {
		cands = append(cands, cand)
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Rank != cands[j].Rank {
			return cands[i].Rank < cands[j].Rank
		}
		return cands[i].Text < cands[j].Text
	})
	for _, cand := range cands[c.s.Target:] {
		delete(c.accepted, cand.Text)
		c.rejected[cand.Text] = "trimmed"
		c.trimmed++
		if err := c.s.Changes.Record(cand.Text, "", "trimmed: surplus beyond target"); err != nil {
			return err
		}
	}
	c.s.Book.Info("trimmed %d surplus words", c.trimmed)
	return nil
}

// backfill fills vacancies from the reserve in its given order, resolving
// queued placeholders oldest first. Words already accepted or previously
// rejected are skipped and stay skipped.
func (c *Controller) backfill() error {
	for _, cand := range c.s.Reserve {
		if len(c.accepted) >= c.s.Target {
			break
		}
		word := words.Normalize(cand.Text)
		if word == "" || c.member(word) {
			continue
		}
		if _, done := c.rejected[word]; done {
			continue
		}
		if len(word) < c.s.MinLength || len(word) > c.s.MaxLength {
			continue
		}
		cand.Text = word
		if sc := c.scoreOf(cand); sc.vec.Appropriate == 0 || sc.vec.Clean == 0 {
			continue
		}
		c.accept(cand)
		c.backfilled++
		if len(c.pending) > 0 {
			ph := c.pending[0]
			c.pending = c.pending[1:]
			if err := c.s.Changes.Record(ph, word, "backfilled placeholder"); err != nil {
				return err
			}
		}
	}
	if c.backfilled > 0 {
		c.s.Book.Info("backfilled %d words from reserve", c.backfilled)
	}
	return nil
}

// generate mints synthetic names when every real source is exhausted. The
// suffix is base-26 letters rather than digits so the alphabetic-only
// output invariant still holds. Any use of this path marks the run
// degraded.
func (c *Controller) generate() error {
	for i := 0; len(c.accepted) < c.s.Target; i++ {
		name := c.s.Synthetic.Category + alphaSuffix(i)
		if len(name) > c.s.MaxLength {
			return fmt.Errorf("pipeline: synthetic name %q exceeds max length %d", name, c.s.MaxLength)
		}
		if c.member(name) {
			continue
		}
		if _, done := c.rejected[name]; done {
			continue
		}
		c.accept(words.Candidate{Text: name, Source: words.SourceGenerator, Rank: words.RankUnknown})
		c.synthetic = append(c.synthetic, name)
		var original string
		if len(c.pending) > 0 {
			original = c.pending[0]
			c.pending = c.pending[1:]
		}
		if err := c.s.Changes.Record(original, name, "synthetic fallback"); err != nil {
			return err
		}
	}
	c.s.Book.Warn("generated %d synthetic names; output is degraded", len(c.synthetic))
	return nil
}

// alphaSuffix encodes i in base 26 over a-z, padded to three letters.
func alphaSuffix(i int) string {
	var buf []byte
	for i > 0 || len(buf) < 3 {
		buf = append([]byte{byte('a' + i%26)}, buf...)
		i /= 26
	}
	return string(buf)
}
