// Package automaton implements DFA-based string matching: a Levenshtein
// automaton that accepts every string within a bounded edit distance of a
// query (the spec's core fuzzy index), plus prefix and wildcard automata
// kept from the teacher's simplified version as auxiliary, non-fuzzy search
// modes. Only the Levenshtein automaton has a Search method; the prefix and
// wildcard automata are stepped through the Automaton interface.
package automaton

// State represents a state in a deterministic finite automaton.
type State uint32

// DeadState is the sink state from which no accepting state is reachable.
const DeadState State = 0

// Automaton is the interface shared by the prefix and wildcard automata.
// The Levenshtein automaton does not implement it: its DFA is driven by
// NextValidString rather than a rune-at-a-time Step, since dictionary
// search needs to skip ahead through the sorted term list (§4.5) instead
// of testing candidates one at a time.
type Automaton interface {
	// Start returns the initial state.
	Start() State

	// Step returns the next state for the given input rune.
	// Returns DeadState if no transition exists.
	Step(state State, r rune) State

	// IsAccept returns true if the state is an accepting state.
	IsAccept(state State) bool

	// CanMatch returns true if any accepting state is reachable from this state.
	CanMatch(state State) bool
}
