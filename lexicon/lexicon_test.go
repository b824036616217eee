package lexicon_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boggle/lexicon"
)

//----------------------------------------------------------------------------//
// Membership
//----------------------------------------------------------------------------//

// TestLexicon_CarFamily checks prefix and word answers on a small family of
// words sharing the "ca" prefix.
func TestLexicon_CarFamily(t *testing.T) {
	lx := lexicon.New([]string{"car", "cat", "card", "cart"})

	assert.True(t, lx.IsPrefix("ca"))
	assert.False(t, lx.IsWord("ca"))
	assert.True(t, lx.IsWord("car"))
	assert.False(t, lx.IsPrefix("zz"))
	assert.False(t, lx.IsWord("zz"))

	for _, w := range []string{"car", "card", "cart", "cat"} {
		assert.True(t, lx.IsWord(w), "IsWord(%q)", w)
		assert.True(t, lx.IsPrefix(w), "IsPrefix(%q)", w)
	}
	for _, p := range []string{"c", "ca"} {
		assert.False(t, lx.IsWord(p), "IsWord(%q)", p)
		assert.True(t, lx.IsPrefix(p), "IsPrefix(%q)", p)
	}
	assert.False(t, lx.IsWord("NoTfOuNd"))
	assert.False(t, lx.IsPrefix("cards"))
}

// TestLexicon_AllPrefixes verifies that every non-empty prefix of every
// inserted word is reported as a prefix, and the word itself as a word.
func TestLexicon_AllPrefixes(t *testing.T) {
	words := []string{"python", "pylon", "go", "gopher", "été", "ça"}
	lx := lexicon.New(words)

	for _, w := range words {
		require.True(t, lx.IsWord(w), "IsWord(%q)", w)
		runes := []rune(w)
		for i := 1; i <= len(runes); i++ {
			p := string(runes[:i])
			assert.True(t, lx.IsPrefix(p), "IsPrefix(%q) of %q", p, w)
		}
	}
}

// TestLexicon_NonPrefix checks strings that prefix nothing.
func TestLexicon_NonPrefix(t *testing.T) {
	lx := lexicon.New([]string{"car", "cat", "python"})

	for _, s := range []string{"zebr", "cb", "pythons", "x", "ac"} {
		assert.False(t, lx.IsPrefix(s), "IsPrefix(%q)", s)
		assert.False(t, lx.IsWord(s), "IsWord(%q)", s)
	}
}

// TestLexicon_Classify checks that Classify agrees with the two separate queries.
func TestLexicon_Classify(t *testing.T) {
	lx := lexicon.New([]string{"car", "cat", "card", "cart"})

	cases := []struct {
		in           string
		prefix, word bool
	}{
		{"", true, false},
		{"c", true, false},
		{"car", true, true},
		{"card", true, true},
		{"cards", false, false},
		{"zz", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, w := lx.Classify(tc.in)
			assert.Equal(t, tc.prefix, p)
			assert.Equal(t, tc.word, w)
			assert.Equal(t, lx.IsPrefix(tc.in), p)
			assert.Equal(t, lx.IsWord(tc.in), w)
		})
	}
}

//----------------------------------------------------------------------------//
// Construction edge cases
//----------------------------------------------------------------------------//

// TestLexicon_Empty verifies that an empty lexicon answers false to every
// query except the trivial empty prefix.
func TestLexicon_Empty(t *testing.T) {
	for name, lx := range map[string]*lexicon.Lexicon{
		"nil":    lexicon.New(nil),
		"empty":  lexicon.New([]string{}),
		"blank":  lexicon.New([]string{"", ""}),
		"zero":   {},
		"nilptr": nil,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0, lx.Len())
			assert.True(t, lx.IsPrefix(""))
			assert.False(t, lx.IsWord(""))
			assert.False(t, lx.IsPrefix("a"))
			assert.False(t, lx.IsWord("a"))
			assert.Empty(t, lx.Words())
		})
	}
}

// TestLexicon_Duplicates ensures repeated insertions are idempotent.
func TestLexicon_Duplicates(t *testing.T) {
	lx := lexicon.New([]string{"car", "car", "cart", "car"})

	assert.Equal(t, 2, lx.Len())
	assert.Equal(t, []string{"car", "cart"}, lx.Words())
}

// TestLexicon_CaseSensitive documents that no normalization happens.
func TestLexicon_CaseSensitive(t *testing.T) {
	lx := lexicon.New([]string{"Car"})

	assert.True(t, lx.IsWord("Car"))
	assert.False(t, lx.IsWord("car"))
	assert.False(t, lx.IsPrefix("c"))
}

// TestLexicon_Deterministic builds the same words twice, in different
// orders, and compares both the stored words and a grid of query answers.
func TestLexicon_Deterministic(t *testing.T) {
	words := []string{"card", "data", "act", "arc", "cad", "car", "cat", "rat", "tad", "tar", "ac", "ad"}
	reversed := slices.Clone(words)
	slices.Reverse(reversed)

	a := lexicon.New(words)
	b := lexicon.FromSeq(slices.Values(reversed))

	if diff := cmp.Diff(a.Words(), b.Words()); diff != "" {
		t.Errorf("Words() mismatch (-first +second):\n%s", diff)
	}

	queries := []string{"", "a", "ac", "act", "acts", "c", "ca", "cad", "d", "da", "dat", "data", "r", "ra", "t", "ta", "tx"}
	for _, q := range queries {
		ap, aw := a.Classify(q)
		bp, bw := b.Classify(q)
		assert.Equal(t, ap, bp, "prefix(%q)", q)
		assert.Equal(t, aw, bw, "word(%q)", q)
	}
}

// TestLexicon_WordsSorted checks Words returns ascending rune order.
func TestLexicon_WordsSorted(t *testing.T) {
	lx := lexicon.New([]string{"tar", "act", "a", "ab", "b"})

	want := []string{"a", "ab", "act", "b", "tar"}
	if diff := cmp.Diff(want, lx.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}
