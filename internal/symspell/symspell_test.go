package symspell

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzysearch/internal/distance"
)

func TestNewWithPrefixLength_RejectsTooSmallPrefix(t *testing.T) {
	_, err := NewWithPrefixLength(distance.Levenshtein, 2, 2)
	require.ErrorIs(t, err, ErrPrefixLengthTooSmall)

	_, err = NewWithPrefixLength(distance.Levenshtein, 2, 1)
	require.ErrorIs(t, err, ErrPrefixLengthTooSmall)
}

func TestNewWithPrefixLength_AcceptsValidPrefix(t *testing.T) {
	d, err := NewWithPrefixLength(distance.Levenshtein, 2, 3)
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestDictionary_Scenario4(t *testing.T) {
	d := New(distance.Levenshtein, 2)
	d.Insert("food")

	assert.Equal(t, []string{"food"}, d.Search("food"))
	assert.Equal(t, []string{"food"}, d.Search("fod"))
	assert.Empty(t, d.Search("xyz"))
}

func TestDictionary_InsertIsIdempotent(t *testing.T) {
	d := New(distance.Levenshtein, 2)
	d.Insert("food")
	d.Insert("food")

	got := d.Search("food")
	assert.Equal(t, []string{"food"}, got)
}

func TestDictionary_MultipleTermsWithinBudget(t *testing.T) {
	d := New(distance.Levenshtein, 1)
	for _, term := range []string{"book", "books", "boon", "cook", "cake"} {
		d.Insert(term)
	}

	got := d.Search("book")
	sort.Strings(got)
	want := []string{"book", "books", "boon", "cook"}
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestDictionary_ShortTermsReachableViaEmptyVariant(t *testing.T) {
	d := New(distance.Levenshtein, 2)
	d.Insert("a")
	d.Insert("ab")

	got := d.Search("a")
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "ab")
}

func TestDictionary_UnicodeTerms(t *testing.T) {
	d := New(distance.Levenshtein, 1)
	d.Insert("食べ物")

	got := d.Search("食べる")
	assert.Contains(t, got, "食べ物")
}
