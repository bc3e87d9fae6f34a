package words

// CategoryPair describes one compound generator: every left word is joined
// with every right word. Category lists stay small on purpose; the product
// is bounded by maxLen filtering and pool dedup.
type CategoryPair struct {
	Name  string
	Left  []string
	Right []string
}

// DefaultCategories returns the curated compound tables. These pair short,
// concrete words whose concatenations still read naturally.
func DefaultCategories() []CategoryPair {
	return []CategoryPair{
		{
			Name:  "color-object",
			Left:  []string{"red", "blue", "green", "black", "white", "gray", "pink", "gold"},
			Right: []string{"car", "ball", "box", "hat", "cup", "pen", "key", "dot", "bar", "tag"},
		},
		{
			Name:  "size-object",
			Left:  []string{"big", "small", "tiny", "huge", "mini", "mega", "super"},
			Right: []string{"car", "ball", "box", "hat", "cup", "pen", "key", "dot", "bar", "tag"},
		},
		{
			Name:  "action-direction",
			Left:  []string{"go", "run", "walk", "turn", "look", "move", "step", "jump"},
			Right: []string{"up", "down", "left", "right", "north", "south", "east", "west"},
		},
		{
			Name:  "weather-time",
			Left:  []string{"sun", "rain", "snow", "wind", "storm", "cloud", "fog", "mist"},
			Right: []string{"dawn", "day", "dusk", "night", "hour", "time", "week", "year"},
		},
		{
			Name:  "nature-motion",
			Left:  []string{"sun", "moon", "star", "sky", "sea", "tree", "leaf", "rock", "hill", "lake"},
			Right: []string{"light", "shine", "glow", "rise", "set", "fall", "flow", "grow"},
		},
		{
			Name:  "place-part",
			Left:  []string{"home", "work", "life", "time", "best", "real", "true", "free", "easy", "safe"},
			Right: []string{"way", "day", "place", "thing", "side", "point", "line", "zone", "spot"},
		},
	}
}

// Compounds generates compound candidates from the category pairs, dropping
// anything over maxLen or already known to the caller. It never produces
// duplicates within one call.
func Compounds(pairs []CategoryPair, maxLen int, known func(string) bool) []Candidate {
	seen := make(map[string]struct{})
	var out []Candidate
	for _, pair := range pairs {
		for _, left := range pair.Left {
			for _, right := range pair.Right {
				compound := Normalize(left + right)
				if len(compound) > maxLen || !IsAlphabetic(compound) {
					continue
				}
				if _, dup := seen[compound]; dup {
					continue
				}
				if known != nil && known(compound) {
					continue
				}
				seen[compound] = struct{}{}
				out = append(out, Candidate{Text: compound, Source: SourceCompound, Rank: RankUnknown})
			}
		}
	}
	return out
}
