package automaton

import "sort"

// stateIDs assigns dense integer ids to composite states by first-seen
// order, per spec §3 "DFA state id".
type stateIDs struct {
	ids  map[string]int
	next int
}

func newStateIDs() *stateIDs {
	return &stateIDs{ids: make(map[string]int)}
}

// insert returns the id for s, assigning a new one if s hasn't been seen.
func (t *stateIDs) insert(s compositeState) (id int, isNew bool) {
	k := s.key()
	if id, ok := t.ids[k]; ok {
		return id, false
	}
	id = t.next
	t.next++
	t.ids[k] = id
	return id, true
}

// toDFA subset-constructs a DFA from the NFA, per spec §4.3. The frontier
// is processed smallest-composite-state-first (mirroring popping the
// minimum of a sorted set) so that repeated builds of the same query and
// edit budget always assign the same ids in the same order.
func (n *nfa) toDFA() *dfa {
	ids := newStateIDs()

	start := n.epsilonClosure(newCompositeState(editState{0, 0}))
	startID, _ := ids.insert(start)

	d := &dfa{
		startID:        startID,
		final:          make(map[int]bool),
		transitions:    make(map[int]map[rune]int),
		anyTransitions: make(map[int]int),
	}
	d.final[startID] = n.isFinal(start)

	frontier := []compositeState{start}

	for len(frontier) > 0 {
		smallest := 0
		for i := 1; i < len(frontier); i++ {
			if frontier[i].less(frontier[smallest]) {
				smallest = i
			}
		}
		cur := frontier[smallest]
		frontier = append(frontier[:smallest], frontier[smallest+1:]...)
		curID, _ := ids.insert(cur)

		for _, lbl := range n.labelsFrom(cur) {
			next := n.epsilonClosure(n.reachable(cur, lbl))
			if next.isEmpty() {
				continue
			}
			nextID, isNew := ids.insert(next)
			if isNew {
				d.final[nextID] = n.isFinal(next)
				frontier = append(frontier, next)
			}
			switch lbl.kind {
			case labelAny:
				d.anyTransitions[curID] = nextID
			case labelInput:
				bucket := d.transitions[curID]
				if bucket == nil {
					bucket = make(map[rune]int)
					d.transitions[curID] = bucket
				}
				bucket[lbl.ch] = nextID
			}
		}
	}

	d.sortedChars = make(map[int][]rune, len(d.transitions))
	for id, m := range d.transitions {
		chars := make([]rune, 0, len(m))
		for c := range m {
			chars = append(chars, c)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
		d.sortedChars[id] = chars
	}
	return d
}
