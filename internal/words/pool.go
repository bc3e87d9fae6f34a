package words

// Pool is the de-duplicated candidate pool the controller iterates over.
// Insertion order is preserved so passes are reproducible; when the same
// word arrives from several sources the pool keeps the best-known
// provenance (the lowest frequency rank).
type Pool struct {
	order  []string
	byText map[string]Candidate
}

// NewPool returns an empty candidate pool.
func NewPool() *Pool {
	return &Pool{byText: make(map[string]Candidate)}
}

// Add merges a candidate into the pool, keyed by normalized text. It returns
// true when the word was new. Re-adding an existing word only upgrades its
// rank if the new sighting is more frequent.
func (p *Pool) Add(c Candidate) bool {
	key := Normalize(c.Text)
	if key == "" {
		return false
	}
	c.Text = key
	existing, ok := p.byText[key]
	if !ok {
		p.byText[key] = c
		p.order = append(p.order, key)
		return true
	}
	if c.Rank < existing.Rank {
		existing.Rank = c.Rank
		existing.Source = c.Source
		p.byText[key] = existing
	}
	return false
}

// AddAll merges a batch of candidates and returns how many were new.
func (p *Pool) AddAll(cs []Candidate) int {
	added := 0
	for _, c := range cs {
		if p.Add(c) {
			added++
		}
	}
	return added
}

// Contains reports whether the normalized word is already pooled.
func (p *Pool) Contains(text string) bool {
	_, ok := p.byText[Normalize(text)]
	return ok
}

// Len returns the number of distinct candidates.
func (p *Pool) Len() int { return len(p.order) }

// Candidates returns all candidates in insertion order.
func (p *Pool) Candidates() []Candidate {
	out := make([]Candidate, 0, len(p.order))
	for _, key := range p.order {
		out = append(out, p.byText[key])
	}
	return out
}
