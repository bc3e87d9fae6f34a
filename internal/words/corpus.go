package words

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// LoadCorpus reads a line-oriented word corpus. Each line is one token,
// optionally followed by a whitespace-separated frequency count. When an
// explicit count is present, candidates are ranked by descending count;
// otherwise file order supplies the rank. Blank lines and lines starting
// with '#' are skipped.
func LoadCorpus(path string, source Source) ([]Candidate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open corpus: %w", err)
	}
	defer file.Close()

	type entry struct {
		text  string
		count int64
	}
	var entries []entry
	counted := false

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		e := entry{text: Normalize(fields[0])}
		if e.text == "" {
			continue
		}
		if len(fields) > 1 {
			if n, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
				e.count = n
				counted = true
			}
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: read corpus %s: %w", path, err)
	}

	if counted {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].count > entries[j].count
		})
	}

	out := make([]Candidate, 0, len(entries))
	for i, e := range entries {
		out = append(out, Candidate{Text: e.text, Source: source, Rank: i})
	}
	return out, nil
}

// LoadSet reads a plain-text word list into a normalized membership set.
// Used for banned words, familiarity references, and similar lookups.
func LoadSet(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open list: %w", err)
	}
	defer file.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := Normalize(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: read list %s: %w", path, err)
	}
	return set, nil
}

// LoadLines reads a plain-text word list preserving file order.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open list: %w", err)
	}
	defer file.Close()

	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := Normalize(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		out = append(out, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: read list %s: %w", path, err)
	}
	return out, nil
}

// WriteList persists the final vocabulary, one word per line. The list is
// written exactly as given; callers decide the order.
func WriteList(path string, list []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("words: create list: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range list {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return fmt.Errorf("words: write list: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("words: flush list: %w", err)
	}
	return nil
}
