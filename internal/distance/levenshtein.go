// Package distance implements the shared Levenshtein edit-distance
// primitive (spec §4.1) used by the BK-tree and SymSpell indexes, and by
// callers that want a plain brute-force baseline (internal/bruteforce).
package distance

// Levenshtein returns the minimum number of single-rune insertions,
// deletions, and substitutions required to transform a into b. Comparison
// is over code points (runes), not bytes, so multi-byte UTF-8 characters
// are never split mid-sequence.
//
// It is a total function: every pair of valid strings has a well-defined
// distance, so this never fails (spec §4.1 "Failure").
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Two rows of state suffice (spec §4.2 "two full rows... acceptable").
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
