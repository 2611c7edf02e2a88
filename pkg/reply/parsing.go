package reply

import (
	"regexp"
	"strings"
)

// valueLineRE matches a standalone amount line: "150 ₽", optionally followed
// by a comment in single or doubled parentheses. The doubled alternative
// comes first so "((note))" keeps its inner text intact.
var valueLineRE = regexp.MustCompile(`^(\d+\.?\d*\s*₽)(?:\s*\(\((.+)\)\)|\s*\((.+)\))?$`)

// inlineLineRE matches "<label> <amount> ₽ [(<comment>)]" on one line.
var inlineLineRE = regexp.MustCompile(`^(.+?)\s+(\d+\.?\d*\s*₽)(?:\s*\(\((.+)\)\)|\s*\((.+)\))?$`)

// PriceEntry is one parsed price row: the amount as pasted (e.g. "150 ₽")
// plus a normalized comment, possibly empty.
type PriceEntry struct {
	Amount  string
	Comment string
}

// PriceData is an order-preserving label -> entry association. Iteration
// follows the original line order; overwriting an existing label keeps its
// first position.
type PriceData struct {
	labels  []string
	entries map[string]PriceEntry
}

func newPriceData() *PriceData {
	return &PriceData{entries: make(map[string]PriceEntry)}
}

func (p *PriceData) set(label string, e PriceEntry) {
	if _, ok := p.entries[label]; !ok {
		p.labels = append(p.labels, label)
	}
	p.entries[label] = e
}

// Get returns the entry for a label.
func (p *PriceData) Get(label string) (PriceEntry, bool) {
	e, ok := p.entries[label]
	return e, ok
}

// Labels returns all labels in first-seen order.
func (p *PriceData) Labels() []string { return p.labels }

// Len reports the number of distinct labels.
func (p *PriceData) Len() int { return len(p.labels) }

// pickComment selects the doubled-parenthesis capture when present,
// otherwise the single one.
func pickComment(double, single string) string {
	if double != "" {
		return strings.TrimSpace(double)
	}
	return strings.TrimSpace(single)
}

// ParsePriceLines tokenizes pasted price-breakdown text. Two shapes are
// recognized: a bare label line followed by an amount line, and a single
// "<label> <amount> ₽" line. Both checks run for every index: even when the
// two-line shape consumed a pair, the current line is still tried as a
// one-line entry. Pasted data is messy enough that the redundant check
// recovers rows the pair match would otherwise swallow. Unmatched lines are
// skipped silently.
func ParsePriceLines(text string) *PriceData {
	lines := nonEmptyLines(text)
	result := newPriceData()
	i := 0
	for i < len(lines) {
		advance := 1
		if i+1 < len(lines) {
			if m := valueLineRE.FindStringSubmatch(lines[i+1]); m != nil {
				result.set(lines[i], PriceEntry{
					Amount:  strings.TrimSpace(m[1]),
					Comment: NormalizeComment(pickComment(m[2], m[3])),
				})
				advance = 2
			}
		}
		if m := inlineLineRE.FindStringSubmatch(lines[i]); m != nil {
			result.set(strings.TrimSpace(m[1]), PriceEntry{
				Amount:  strings.TrimSpace(m[2]),
				Comment: NormalizeComment(pickComment(m[3], m[4])),
			})
		}
		i += advance
	}
	return result
}
