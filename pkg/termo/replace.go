package termo

import (
	"strings"
	"unicode/utf8"

	docxml "github.com/kmzmath/gerador-termos-SEADAP/pkg/termo/xml"
)

// Replacements is an insertion-ordered mapping from literal search
// strings to replacement values. Order matters when one key's value
// contains another key's literal text; the builder relies on explicit
// Set/Delete sequencing to avoid cascading matches.
type Replacements struct {
	keys   []string
	values map[string]string
}

// NewReplacements creates an empty replacement map.
func NewReplacements() *Replacements {
	return &Replacements{values: make(map[string]string)}
}

// Set inserts a key or updates it in place. A new key goes to the end
// of the iteration order; an existing key keeps its position.
func (r *Replacements) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key.
func (r *Replacements) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Delete removes a key, preserving the order of the rest.
func (r *Replacements) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in iteration order.
func (r *Replacements) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of entries.
func (r *Replacements) Len() int {
	return len(r.keys)
}

// ReplaceStats reports how often each key matched across a document.
type ReplaceStats struct {
	// Matches counts replaced occurrences per key. Keys that matched
	// zero times are present with a zero count; they usually mean the
	// template text drifted away from the literal key.
	Matches map[string]int
}

// Unmatched returns the keys that matched nowhere, in map order.
func (s *ReplaceStats) Unmatched(r *Replacements) []string {
	var unmatched []string
	for _, key := range r.Keys() {
		if s.Matches[key] == 0 {
			unmatched = append(unmatched, key)
		}
	}
	return unmatched
}

// Replace substitutes every occurrence of every key in the document's
// paragraphs, in map order, mutating run texts in place. Formatting is
// untouched: no run is added, removed or reordered. The traversal
// covers the body's paragraphs and the paragraphs of every cell of
// every body table; tables nested inside cells are not descended.
func Replace(doc *docxml.Document, reps *Replacements) (*ReplaceStats, error) {
	stats := &ReplaceStats{Matches: make(map[string]int)}
	for _, key := range reps.Keys() {
		stats.Matches[key] = 0
	}
	if reps.Len() == 0 {
		return stats, nil
	}

	for _, p := range doc.Body.Paragraphs() {
		if err := replaceInParagraph(p, reps, stats); err != nil {
			return stats, err
		}
	}
	for _, table := range doc.Body.Tables() {
		for _, row := range table.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					if err := replaceInParagraph(p, reps, stats); err != nil {
						return stats, err
					}
				}
			}
		}
	}
	return stats, nil
}

func replaceInParagraph(p *docxml.Paragraph, reps *Replacements, stats *ReplaceStats) error {
	for _, key := range reps.Keys() {
		if key == "" {
			continue
		}
		value, _ := reps.Get(key)

		if !strings.Contains(p.Text(), key) {
			continue
		}

		// Repeat while the key is present: each splice can shift run
		// boundaries, so offsets are recomputed from scratch. A value
		// that contains its own key would re-match forever; those get
		// one pass per original occurrence.
		maxPasses := -1
		if strings.Contains(value, key) {
			maxPasses = strings.Count(p.Text(), key)
		}
		for passes := 0; strings.Contains(p.Text(), key); passes++ {
			if maxPasses >= 0 && passes >= maxPasses {
				break
			}
			if err := spliceOnce(p, key, value); err != nil {
				return err
			}
			stats.Matches[key]++
		}
	}
	return nil
}

// spliceOnce replaces the first occurrence of key in the paragraph's
// concatenated text, distributing the replacement across the runs the
// occurrence spans. All offset arithmetic is in runes: chunk boundaries
// must never land inside a multibyte character, or a run would carry
// invalid UTF-8.
func spliceOnce(p *docxml.Paragraph, key, value string) error {
	runs := p.Runs()
	fullText := p.Text()

	byteStart := strings.Index(fullText, key)
	if byteStart < 0 {
		return nil
	}
	startPos := utf8.RuneCountInString(fullText[:byteStart])
	endPos := startPos + utf8.RuneCountInString(key)

	// Locate the runs containing the start and end offsets. The start
	// offset lives in [cum, cum+len); the end offset in (cum, cum+len].
	runStart, runEnd := -1, -1
	cum := 0
	for i, run := range runs {
		next := cum + utf8.RuneCountInString(run.Text())
		if runStart == -1 && startPos >= cum && startPos < next {
			runStart = i
		}
		if runEnd == -1 && endPos > cum && endPos <= next {
			runEnd = i
			break
		}
		cum = next
	}
	if runStart == -1 {
		return NewReplaceError(key, startPos)
	}
	if runEnd == -1 {
		return NewReplaceError(key, endPos)
	}

	offsetStart := startPos - runTextLen(runs[:runStart])
	offsetEnd := endPos - runTextLen(runs[:runEnd])

	if runStart == runEnd {
		text := []rune(runs[runStart].Text())
		runs[runStart].SetText(string(text[:offsetStart]) + value + string(text[offsetEnd:]))
		return nil
	}

	remaining := []rune(value)

	// Start run: prefix plus as much of the replacement as fits in the
	// characters the key consumed there.
	firstText := []rune(runs[runStart].Text())
	space := len(firstText) - offsetStart
	chunk := head(remaining, space)
	runs[runStart].SetText(string(firstText[:offsetStart]) + string(chunk))
	remaining = remaining[len(chunk):]

	// Intermediate runs are wholly inside the key: their text is
	// overwritten chunk by chunk, never deleted, so styling markers
	// persist even when a run ends up empty.
	for i := runStart + 1; i < runEnd; i++ {
		space := utf8.RuneCountInString(runs[i].Text())
		chunk := head(remaining, space)
		runs[i].SetText(string(chunk))
		remaining = remaining[len(chunk):]
	}

	// End run: leftover replacement plus the run's own suffix.
	lastText := []rune(runs[runEnd].Text())
	runs[runEnd].SetText(string(remaining) + string(lastText[offsetEnd:]))
	return nil
}

func runTextLen(runs []*docxml.Run) int {
	total := 0
	for _, r := range runs {
		total += utf8.RuneCountInString(r.Text())
	}
	return total
}

func head(s []rune, n int) []rune {
	if n >= len(s) {
		return s
	}
	return s[:n]
}
