package distance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevenshtein_KnownPairs(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "abcd", 1},
		{"abc", "ab", 1},
		{"flaw", "lawn", 2},
		{"食べ物", "食べる", 1}, // multi-byte runes: must count code points, not bytes
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Levenshtein(c.a, c.b), "Levenshtein(%q, %q)", c.a, c.b)
	}
}

func TestLevenshtein_IdentityIsZero(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "наука"} {
		require.Equal(t, 0, Levenshtein(s, s))
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	alphabet := []rune("abcde")
	randomString := func(n int) string {
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = alphabet[r.Intn(len(alphabet))]
		}
		return string(rs)
	}
	for i := 0; i < 200; i++ {
		a := randomString(r.Intn(8))
		b := randomString(r.Intn(8))
		assert.Equal(t, Levenshtein(a, b), Levenshtein(b, a))
	}
}

func TestLevenshtein_TriangleInequality(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	alphabet := []rune("abc")
	randomString := func(n int) string {
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = alphabet[r.Intn(len(alphabet))]
		}
		return string(rs)
	}
	for i := 0; i < 200; i++ {
		a := randomString(r.Intn(6))
		b := randomString(r.Intn(6))
		c := randomString(r.Intn(6))
		require.LessOrEqual(t, Levenshtein(a, c), Levenshtein(a, b)+Levenshtein(b, c))
	}
}

func TestLevenshtein_EmptyStringIsLength(t *testing.T) {
	assert.Equal(t, 5, Levenshtein("", "hello"))
	assert.Equal(t, 5, Levenshtein("hello", ""))
}
