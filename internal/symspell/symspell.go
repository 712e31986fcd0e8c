// Package symspell implements a deletion-indexed dictionary: every term is
// indexed by its "deletion variants" (strings obtained by deleting up to
// max_edits characters from a bounded prefix), so a query can be matched by
// generating the same variants and looking candidates up directly, instead
// of comparing against the whole dictionary.
package symspell

import (
	"errors"
	"fmt"
)

// ErrPrefixLengthTooSmall is returned by NewWithPrefixLength when
// prefixLength does not exceed maxEdits, which would make the deletion-
// variant generator incomplete.
var ErrPrefixLengthTooSmall = errors.New("symspell: prefix length must be greater than max edits")

// DistanceFunc is the verified-distance function used to confirm a
// candidate pulled from the deletion index is truly within the edit
// budget.
type DistanceFunc func(a, b string) int

// Options groups the settings of a Dictionary. No constructor accepts an
// Options value: New and NewWithPrefixLength take these settings as
// separate arguments.
type Options struct {
	// MaxEdits is the edit budget k for both indexing and search.
	MaxEdits int
	// PrefixLength is the code-point prefix length p used to generate
	// deletion variants; must satisfy p > MaxEdits.
	PrefixLength int
	// Distance verifies candidates pulled from the deletion index. New and
	// NewWithPrefixLength take it as an explicit argument.
	Distance DistanceFunc
}

// Dictionary is a SymSpell-style fuzzy-search index.
type Dictionary struct {
	distance     DistanceFunc
	maxEdits     int
	prefixLength int

	dict *dictionary
}

// New creates a Dictionary with prefixLength defaulted to maxEdits+1, the
// smallest value satisfying the prefixLength > maxEdits invariant.
func New(distance DistanceFunc, maxEdits int) *Dictionary {
	d, err := NewWithPrefixLength(distance, maxEdits, maxEdits+1)
	if err != nil {
		// maxEdits+1 > maxEdits always holds; this branch is unreachable.
		panic(fmt.Sprintf("symspell: unreachable: %v", err))
	}
	return d
}

// NewWithPrefixLength creates a Dictionary with an explicit prefix length.
// It fails if prefixLength does not exceed maxEdits.
func NewWithPrefixLength(distance DistanceFunc, maxEdits, prefixLength int) (*Dictionary, error) {
	if prefixLength <= maxEdits {
		return nil, ErrPrefixLengthTooSmall
	}
	return &Dictionary{
		distance:     distance,
		maxEdits:     maxEdits,
		prefixLength: prefixLength,
		dict:         newDictionary(maxEdits, prefixLength),
	}, nil
}

// Insert adds term to the index. Re-inserting an existing term is a no-op.
func (s *Dictionary) Insert(term string) {
	s.dict.insert(term)
}

// Search returns every term within MaxEdits of query. Order follows
// insertion order within each deletion-variant bucket and the DFS over
// variants explored during the query (spec §4.7); callers should treat
// exact ordering as implementation-defined.
func (s *Dictionary) Search(query string) []string {
	var results []string

	queryRunes := []rune(query)
	seenSuggestions := make(map[string]bool)

	if s.dict.containsTerm(query) {
		results = append(results, query)
	}
	seenSuggestions[query] = true

	prefixLen := len(queryRunes)
	if prefixLen > s.prefixLength {
		prefixLen = s.prefixLength
	}
	queryPrefix := queryRunes[:prefixLen]

	seenVariants := make(map[string]bool)
	stack := []string{string(queryPrefix)}

	for len(stack) > 0 {
		candidate := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		candidateRunes := []rune(candidate)
		if abs(len(queryPrefix)-len(candidateRunes)) > s.maxEdits {
			continue
		}

		for _, suggestion := range s.dict.get(candidate) {
			if suggestion == query {
				continue
			}
			suggestionRunes := []rune(suggestion)
			if abs(len(suggestionRunes)-len(queryRunes)) > s.maxEdits {
				continue
			}
			if seenSuggestions[suggestion] {
				continue
			}

			var dist int
			switch {
			case len(candidateRunes) == 0:
				// No common prefix signal between query and suggestion.
				dist = max(len(queryRunes), len(suggestionRunes))
			case len(suggestionRunes) == 1:
				if containsRune(queryRunes, suggestionRunes[0]) {
					dist = len(queryRunes) - 1
				} else {
					dist = len(queryRunes)
				}
			default:
				dist = s.distance(query, suggestion)
			}

			seenSuggestions[suggestion] = true
			if dist <= s.maxEdits {
				results = append(results, suggestion)
			}
		}

		if len(queryPrefix)-len(candidateRunes) < s.maxEdits && len(candidateRunes) <= s.prefixLength {
			for i := range candidateRunes {
				lacked := make([]rune, 0, len(candidateRunes)-1)
				lacked = append(lacked, candidateRunes[:i]...)
				lacked = append(lacked, candidateRunes[i+1:]...)

				lackedStr := string(lacked)
				if !seenVariants[lackedStr] {
					seenVariants[lackedStr] = true
					stack = append(stack, lackedStr)
				}
			}
		}
	}

	return results
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}
