package automaton

import "sort"

// labelKind distinguishes the three NFA transition labels of spec §3.
type labelKind int8

const (
	labelEpsilon labelKind = iota
	labelAny
	labelInput
)

// label is one NFA transition label: Epsilon, Any, or Input(ch).
type label struct {
	kind labelKind
	ch   rune
}

// labelLess orders labels Epsilon < Any < Input(c) ascending, matching the
// enumeration order spec §4.3 requires for deterministic DFA construction.
func labelLess(a, b label) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.ch < b.ch
}

// nfa is the nondeterministic Levenshtein automaton for a query of up to
// maxEdits edits, built per spec §4.2.
type nfa struct {
	query       []rune
	maxEdits    int
	transitions map[editState]map[label][]editState
}

func buildNFA(query []rune, maxEdits int) *nfa {
	n := &nfa{
		query:       query,
		maxEdits:    maxEdits,
		transitions: make(map[editState]map[label][]editState),
	}
	m := len(query)

	add := func(from editState, lbl label, to editState) {
		bucket := n.transitions[from]
		if bucket == nil {
			bucket = make(map[label][]editState)
			n.transitions[from] = bucket
		}
		bucket[lbl] = append(bucket[lbl], to)
	}

	for i := 0; i < m; i++ {
		for e := 0; e <= maxEdits; e++ {
			from := editState{i, e}
			add(from, label{kind: labelInput, ch: query[i]}, editState{i + 1, e})
			if e < maxEdits {
				add(from, label{kind: labelAny}, editState{i, e + 1})         // deletion
				add(from, label{kind: labelEpsilon}, editState{i + 1, e + 1}) // insertion
				add(from, label{kind: labelAny}, editState{i + 1, e + 1})     // substitution
			}
		}
	}
	for e := 0; e < maxEdits; e++ {
		add(editState{m, e}, label{kind: labelAny}, editState{m, e + 1})
	}
	return n
}

// epsilonClosure repeatedly follows Epsilon transitions from every state in
// s until a fixpoint, per spec §4.3.
func (n *nfa) epsilonClosure(s compositeState) compositeState {
	seen := make(map[editState]bool, len(s))
	queue := make([]editState, 0, len(s))
	for _, st := range s {
		seen[st] = true
		queue = append(queue, st)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range n.transitions[cur][label{kind: labelEpsilon}] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	out := make([]editState, 0, len(seen))
	for st := range seen {
		out = append(out, st)
	}
	return newCompositeState(out...)
}

// labelsFrom returns the distinct non-Epsilon labels reachable from any
// state in s, sorted per labelLess.
func (n *nfa) labelsFrom(s compositeState) []label {
	seen := make(map[label]bool)
	var out []label
	for _, st := range s {
		for lbl := range n.transitions[st] {
			if lbl.kind == labelEpsilon {
				continue
			}
			if !seen[lbl] {
				seen[lbl] = true
				out = append(out, lbl)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return labelLess(out[i], out[j]) })
	return out
}

// reachable computes the union, over every state in s, of the successors
// reached by lbl — Input(c) pulls in both exact Input(c) edges and Any
// edges (Any fires on any input, including c); Any pulls in only Any edges.
// Spec §4.3.
func (n *nfa) reachable(s compositeState, lbl label) compositeState {
	var out []editState
	for _, st := range s {
		dests := n.transitions[st]
		if lbl.kind != labelAny {
			out = append(out, dests[lbl]...)
		}
		out = append(out, dests[label{kind: labelAny}]...)
	}
	return newCompositeState(out...)
}

// isFinal reports whether s contains any pair (m, *) — the full query has
// been consumed, with any remaining edit budget. Spec §3/§4.3.
func (n *nfa) isFinal(s compositeState) bool {
	m := len(n.query)
	for _, st := range s {
		if st.pos == m {
			return true
		}
	}
	return false
}
