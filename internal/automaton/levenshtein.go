package automaton

import "errors"

// ErrNegativeEditDistance is returned when maxEdits is negative.
var ErrNegativeEditDistance = errors.New("edit distance must be non-negative")

// LevenshteinAutomaton accepts every string within maxEdits edits of query.
// It is built once, by NFA construction (§4.2) followed by subset
// construction to a DFA (§4.3), and can then drive repeated dictionary
// searches (§4.5) or direct NextValidString queries (§4.4).
//
// Note on the edit budget: GoSearch's own simplified automaton rejected
// maxEdits above 2 (internal/automaton.MaxEditDistance, dropped here — see
// DESIGN.md) because its encoding couldn't represent more. This automaton's
// NFA has no such limit; subset construction grows with O(m*k) states, so
// very large budgets are simply slow, not incorrect, matching spec §7.2's
// "best-effort, no crash" guidance for misuse rather than a hard cap.
type LevenshteinAutomaton struct {
	dfa *dfa
}

// NewLevenshteinAutomaton builds the automaton for query and maxEdits.
func NewLevenshteinAutomaton(query string, maxEdits int) (*LevenshteinAutomaton, error) {
	if maxEdits < 0 {
		return nil, ErrNegativeEditDistance
	}
	n := buildNFA([]rune(query), maxEdits)
	return &LevenshteinAutomaton{dfa: n.toDFA()}, nil
}

// NextValidString returns the lexicographically smallest string >= s that
// the automaton accepts. Spec §4.4.
func (a *LevenshteinAutomaton) NextValidString(s string) (string, bool) {
	runes, ok := a.dfa.nextValidString([]rune(s))
	if !ok {
		return "", false
	}
	return string(runes), true
}

// Search returns every term in sortedChoices within the automaton's edit
// budget, in ascending order. sortedChoices MUST be sorted ascending by
// code point (§4.5).
func (a *LevenshteinAutomaton) Search(sortedChoices []string) []string {
	return automatonSearch(a.dfa, sortedChoices)
}
