package bruteforce

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"fuzzysearch/internal/distance"
)

func TestSearch_FiltersWithinBudget(t *testing.T) {
	choices := []string{"book", "books", "boon", "cook", "cake", "cape", "cart"}
	got := Search("book", choices, 1, distance.Levenshtein)
	sort.Strings(got)

	want := []string{"book", "books", "boon", "cook"}
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestSearch_EmptyChoices(t *testing.T) {
	got := Search("book", nil, 2, distance.Levenshtein)
	assert.Empty(t, got)
}

func TestSearch_NoMatches(t *testing.T) {
	got := Search("zzzz", []string{"book", "cake"}, 0, distance.Levenshtein)
	assert.Empty(t, got)
}

func TestSearch_LargeDictionarySharding(t *testing.T) {
	choices := make([]string, 0, 5000)
	for i := 0; i < 5000; i++ {
		choices = append(choices, "term")
	}
	choices = append(choices, "food")

	got := Search("food", choices, 0, distance.Levenshtein)
	assert.Equal(t, []string{"food"}, got)
}
