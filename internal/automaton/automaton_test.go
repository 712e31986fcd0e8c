package automaton

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzysearch/internal/distance"
)

func TestNewLevenshteinAutomaton_NegativeEdits(t *testing.T) {
	_, err := NewLevenshteinAutomaton("kitten", -1)
	require.ErrorIs(t, err, ErrNegativeEditDistance)
}

func TestNewLevenshteinAutomaton_ZeroEditsIsExactMatch(t *testing.T) {
	auto, err := NewLevenshteinAutomaton("cat", 0)
	require.NoError(t, err)

	got := auto.Search([]string{"bat", "cat", "cats", "cot"})
	assert.Equal(t, []string{"cat"}, got)
}

func TestLevenshteinAutomaton_KittenSitting(t *testing.T) {
	// Scenario 3: k=2 rejects, k=3 accepts.
	auto2, err := NewLevenshteinAutomaton("kitten", 2)
	require.NoError(t, err)
	assert.Empty(t, auto2.Search([]string{"sitting"}))

	auto3, err := NewLevenshteinAutomaton("kitten", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"sitting"}, auto3.Search([]string{"sitting"}))
}

func TestLevenshteinAutomaton_SearchIsSortedAndWithinBudget(t *testing.T) {
	auto, err := NewLevenshteinAutomaton("cat", 1)
	require.NoError(t, err)

	choices := []string{"bat", "cap", "cat", "cats", "cot", "dog"}
	sort.Strings(choices)

	got := auto.Search(choices)
	assert.True(t, sort.StringsAreSorted(got))
	for _, term := range got {
		assert.LessOrEqual(t, distance.Levenshtein("cat", term), 1)
	}
}

func TestLevenshteinAutomaton_NextValidString(t *testing.T) {
	auto, err := NewLevenshteinAutomaton("ab", 1)
	require.NoError(t, err)

	next, ok := auto.NextValidString("")
	require.True(t, ok)
	assert.LessOrEqual(t, distance.Levenshtein("ab", next), 1)
}

func TestLevenshteinAutomaton_UnicodeQuery(t *testing.T) {
	auto, err := NewLevenshteinAutomaton("食べ物", 1)
	require.NoError(t, err)

	got := auto.Search([]string{"食べる", "食べ物", "無関係"})
	assert.Contains(t, got, "食べ物")
	assert.Contains(t, got, "食べる")
	assert.NotContains(t, got, "無関係")
}

func TestPrefixAutomaton(t *testing.T) {
	auto := NewPrefixAutomaton("foo")

	run := func(s string) (State, bool) {
		state := auto.Start()
		for _, r := range s {
			state = auto.Step(state, r)
			if state == DeadState {
				return DeadState, false
			}
		}
		return state, auto.IsAccept(state)
	}

	_, acceptFoo := run("foobar")
	assert.True(t, acceptFoo)

	_, acceptBar := run("barfoo")
	assert.False(t, acceptBar)
}

func TestWildcardAutomaton(t *testing.T) {
	auto, err := NewWildcardAutomaton("h?llo")
	require.NoError(t, err)

	run := func(s string) bool {
		state := auto.Start()
		for _, r := range s {
			state = auto.Step(state, r)
			if state == DeadState {
				return false
			}
		}
		return auto.IsAccept(state)
	}

	assert.True(t, run("hello"))
	assert.True(t, run("hallo"))
	assert.False(t, run("hllo"))
	assert.False(t, run("helllo"))
}

func TestWildcardAutomaton_Star(t *testing.T) {
	auto, err := NewWildcardAutomaton("a*c")
	require.NoError(t, err)

	run := func(s string) bool {
		state := auto.Start()
		for _, r := range s {
			state = auto.Step(state, r)
			if state == DeadState {
				return false
			}
		}
		return auto.IsAccept(state)
	}

	assert.True(t, run("ac"))
	assert.True(t, run("abc"))
	assert.True(t, run("abbbbc"))
	assert.False(t, run("ab"))
}

func TestWildcardAutomaton_PatternTooLong(t *testing.T) {
	long := make([]byte, MaxWildcardPatternLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := NewWildcardAutomaton(string(long))
	require.ErrorIs(t, err, ErrWildcardPatternTooLong)
}
