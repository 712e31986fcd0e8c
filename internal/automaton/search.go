package automaton

import "sort"

// automatonSearch walks a DFA against a dictionary that MUST already be
// sorted in ascending code-point order (§4.5's precondition; violating it
// is the programmer error described in spec §7.2 — results may silently
// omit matches, but the walk itself never panics). It returns every
// matching term, in ascending order, once per distinct term: a term that
// occurs several times in the dictionary is reported once.
func automatonSearch(d *dfa, sortedChoices []string) []string {
	var results []string
	cursor := []rune{}

	for {
		cand, ok := d.nextValidString(cursor)
		if !ok {
			break
		}
		candStr := string(cand)

		idx := sort.SearchStrings(sortedChoices, candStr)
		if idx < len(sortedChoices) && sortedChoices[idx] == candStr {
			results = append(results, candStr)
			cursor = append([]rune(candStr), 0)
			continue
		}
		if idx >= len(sortedChoices) {
			break
		}
		cursor = []rune(sortedChoices[idx])
	}
	return results
}
