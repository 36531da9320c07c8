package dictionary

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Complete returns the entries starting with prefix, in canonical order.
// A limit of zero or less returns every match.
func (d *Dictionary) Complete(prefix string, limit int) []string {
	if d == nil || d.trie == nil {
		return []string{}
	}

	lowerPrefix := Canonical(strings.TrimSpace(prefix))
	if lowerPrefix == "" {
		return []string{}
	}

	var positions []int
	err := d.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		i, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		positions = append(positions, i)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []string{}
	}

	sort.Ints(positions)
	if limit > 0 && len(positions) > limit {
		positions = positions[:limit]
	}

	out := make([]string, len(positions))
	for n, i := range positions {
		out[n] = d.words[i]
	}
	return out
}

// Expand resolves prefix to the single entry it abbreviates.
// An exact entry always wins; otherwise the prefix must match exactly one entry.
func (d *Dictionary) Expand(prefix string) (string, bool) {
	if d == nil || d.trie == nil {
		return "", false
	}

	lowerPrefix := Canonical(strings.TrimSpace(prefix))
	if lowerPrefix == "" {
		return "", false
	}
	if i, ok := d.index[lowerPrefix]; ok {
		return d.words[i], true
	}

	matches := d.Complete(lowerPrefix, 2)
	if len(matches) != 1 {
		return "", false
	}
	return matches[0], true
}
