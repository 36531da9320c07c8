package dictionary

// Match is a similarity candidate: a dictionary entry and its edit distance to the query.
type Match struct {
	Word     string
	Index    int
	Distance int
}

// FindClosest returns the entry nearest to word by Levenshtein distance.
// Ties go to the entry that comes first in canonical order.
// It reports false for an empty dictionary or when the best distance falls outside MaxDistance.
func (d *Dictionary) FindClosest(word string) (string, bool) {
	m, ok := d.Closest(word)
	if !ok {
		return "", false
	}
	return m.Word, true
}

// Closest is FindClosest with the distance and index of the winning entry.
func (d *Dictionary) Closest(word string) (Match, bool) {
	if d.Len() == 0 {
		return Match{}, false
	}

	query := []rune(Canonical(word))
	best := Match{Index: -1}

	// scratch rows are reused across the scan
	prev := make([]int, len(query)+1)
	curr := make([]int, len(query)+1)

	for i, entry := range d.words {
		dist := distance(query, []rune(entry), prev, curr)
		// strict less-than keeps the earliest entry on ties
		if best.Index < 0 || dist < best.Distance {
			best = Match{Word: entry, Index: i, Distance: dist}
			if dist == 0 {
				break
			}
		}
	}

	if d.maxDistance > 0 && best.Distance > d.maxDistance {
		return Match{}, false
	}
	return best, true
}

// Levenshtein returns the number of single-character insertions, deletions
// or substitutions needed to turn a into b. Characters are runes, not bytes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	return distance(ra, rb, make([]int, len(ra)+1), make([]int, len(ra)+1))
}

// distance runs the two-row dynamic program. prev and curr must hold len(a)+1 ints.
func distance(a, b []rune, prev, curr []int) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}
