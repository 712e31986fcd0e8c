package automaton

import (
	"sort"
	"unicode/utf8"
)

// dfa is the deterministic automaton produced by subset-constructing an nfa
// (§4.3): a start state, the set of final states, concrete transitions, an
// "any" fallback for unlisted runes, and each state's transitions sorted
// for binary search during enumeration (§3 "DFA").
type dfa struct {
	startID        int
	final          map[int]bool
	transitions    map[int]map[rune]int
	anyTransitions map[int]int
	sortedChars    map[int][]rune
}

func (d *dfa) isFinal(id int) bool { return d.final[id] }

// step returns the next state for rune r out of id, consulting the any
// fallback when r has no concrete transition.
func (d *dfa) step(id int, r rune) (int, bool) {
	if m, ok := d.transitions[id]; ok {
		if next, ok := m[r]; ok {
			return next, true
		}
	}
	if next, ok := d.anyTransitions[id]; ok {
		return next, true
	}
	return 0, false
}

const surrogateMin, surrogateMax rune = 0xD800, 0xDFFF

// nextCodePoint returns c+1, skipping the UTF-16 surrogate gap so the
// result always lands on a valid Unicode scalar value. Returns false once
// the codespace is exhausted (c is the maximum valid rune).
func nextCodePoint(c rune) (rune, bool) {
	if c >= utf8.MaxRune {
		return 0, false
	}
	n := c + 1
	if n >= surrogateMin && n <= surrogateMax {
		n = surrogateMax + 1
	}
	return n, true
}

func containsRune(sorted []rune, r rune) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= r })
	return i < len(sorted) && sorted[i] == r
}

// nextEdge finds the smallest rune accepted out of state id that is
// strictly greater than *after (or, when after is nil, the smallest rune
// accepted at all), per spec §4.4. It reports false when no such rune
// exists, either because the state has no outgoing edges at or above the
// seed, or because the code space is exhausted.
func (d *dfa) nextEdge(id int, after *rune) (rune, bool) {
	var seed rune
	if after != nil {
		next, ok := nextCodePoint(*after)
		if !ok {
			return 0, false
		}
		seed = next
	}
	chars := d.sortedChars[id]
	if containsRune(chars, seed) {
		return seed, true
	}
	if _, ok := d.anyTransitions[id]; ok {
		return seed, true
	}
	i := sort.Search(len(chars), func(i int) bool { return chars[i] >= seed })
	if i < len(chars) {
		return chars[i], true
	}
	return 0, false
}

// backtrackFrame records a point the walk can resume from: the prefix
// accumulated so far, the DFA state before any further character, and the
// character last tried out of that state (nil once none has been tried).
type backtrackFrame struct {
	prefix []rune
	state  int
	tried  *rune
}

// nextValidString returns the lexicographically smallest string >= s
// accepted by the DFA, or false if none exists. Spec §4.4.
func (d *dfa) nextValidString(s []rune) ([]rune, bool) {
	state := d.startID
	var stack []backtrackFrame
	walked := true

	for i, r := range s {
		tried := s[i]
		stack = append(stack, backtrackFrame{
			prefix: append([]rune(nil), s[:i]...),
			state:  state,
			tried:  &tried,
		})
		next, ok := d.step(state, r)
		if !ok {
			walked = false
			break
		}
		state = next
	}
	if walked {
		if d.isFinal(state) {
			return append([]rune(nil), s...), true
		}
		stack = append(stack, backtrackFrame{
			prefix: append([]rune(nil), s...),
			state:  state,
		})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ch, ok := d.nextEdge(top.state, top.tried)
		if !ok {
			continue
		}
		path := append(append([]rune(nil), top.prefix...), ch)
		next, ok := d.step(top.state, ch)
		if !ok {
			continue
		}
		if d.isFinal(next) {
			return path, true
		}
		stack = append(stack, backtrackFrame{prefix: path, state: next})
	}
	return nil, false
}
