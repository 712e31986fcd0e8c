package symspell

// dictionary is the deletion-variant index backing SymSpell. It maps each
// deletion variant of an inserted term's prefix to the list of terms that
// variant was derived from, in insertion order.
type dictionary struct {
	maxEdits     int
	prefixLength int

	terms    map[string]bool
	variants map[string][]string
}

func newDictionary(maxEdits, prefixLength int) *dictionary {
	return &dictionary{
		maxEdits:     maxEdits,
		prefixLength: prefixLength,
		terms:        make(map[string]bool),
		variants:     make(map[string][]string),
	}
}

func (d *dictionary) containsTerm(term string) bool {
	return d.terms[term]
}

func (d *dictionary) get(variant string) []string {
	return d.variants[variant]
}

// insert computes every deletion variant of term's prefix (up to maxEdits
// deletions) and records term under each one. Re-inserting an already
// present term is a no-op, keeping the index idempotent.
func (d *dictionary) insert(term string) {
	if d.terms[term] {
		return
	}
	d.terms[term] = true

	runes := []rune(term)

	variantSet := make(map[string]bool)
	if len(runes) <= d.maxEdits {
		variantSet[""] = true
	}

	prefixLen := len(runes)
	if prefixLen > d.prefixLength {
		prefixLen = d.prefixLength
	}
	prefix := runes[:prefixLen]
	variantSet[string(prefix)] = true
	d.expand(prefix, 0, variantSet)

	for variant := range variantSet {
		d.variants[variant] = append(d.variants[variant], term)
	}
}

// expand recursively deletes one rune at a time from term, adding every
// distinct result to set, until current edits reaches maxEdits or the
// string can no longer be shortened.
func (d *dictionary) expand(term []rune, currentEdits int, set map[string]bool) {
	currentEdits++
	if len(term) <= 1 || currentEdits > d.maxEdits {
		return
	}
	for i := range term {
		lacked := make([]rune, 0, len(term)-1)
		lacked = append(lacked, term[:i]...)
		lacked = append(lacked, term[i+1:]...)

		lackedStr := string(lacked)
		if !set[lackedStr] {
			set[lackedStr] = true
			if currentEdits < d.maxEdits {
				d.expand(lacked, currentEdits, set)
			}
		}
	}
}
