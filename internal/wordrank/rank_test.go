package wordrank

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/matryer/is"
)

type rankpair struct {
	word string
	rank uint64
}

var rankTests = []rankpair{
	{"a", 1},
	{"ab", 1},
	{"ba", 2},
	{"aab", 1},
	{"aba", 2},
	{"baa", 3},
	{"aabb", 1},
	{"abab", 2},
	{"abba", 3},
	{"baab", 4},
	{"baba", 5},
	{"bbaa", 6},
	{"abcd", 1},
	{"dcba", 24},
	{"QUESTION", 24572},
	{"BOOKKEEPER", 10743},
	{"AAAAAAAAAAAAAAAAAAAA", 1},
	{"ABCDEFGHIJKLMNOPQRST", 1},
	{"TSRQPONMLKJIHGFEDCBA", 2432902008176640000},
	{"Ba", 1},
	{"aB", 2},
}

func TestRank(t *testing.T) {
	is := is.New(t)
	for _, pair := range rankTests {
		r, err := Rank(pair.word)
		is.NoErr(err)
		is.Equal(r, pair.rank) // Rank
		r, err = RankByRemoval(pair.word)
		is.NoErr(err)
		is.Equal(r, pair.rank) // RankByRemoval
	}
}

func TestEmptyWord(t *testing.T) {
	is := is.New(t)
	_, err := Rank("")
	is.Equal(err, ErrEmptyWord)
	_, err = RankByRemoval("")
	is.Equal(err, ErrEmptyWord)
	_, err = Combinations("")
	is.Equal(err, ErrEmptyWord)
	_, err = Unrank("", 1)
	is.Equal(err, ErrEmptyWord)
}

func TestOverflow(t *testing.T) {
	is := is.New(t)
	for _, word := range []string{
		"ABCDEFGHIJKLMNOPQRSTU",
		"UTSRQPONMLKJIHGFEDCBA",
		"AAAAAAAAAAAAAAAAAAAAA",
		"PNEUMONOULTRAMICROSCOPICSILICOVOLCANOCONIOSIS",
	} {
		_, err := Rank(word)
		is.True(errors.Is(err, ErrOverflow))
		_, err = RankByRemoval(word)
		is.True(errors.Is(err, ErrOverflow))
		_, err = Combinations(word)
		is.True(errors.Is(err, ErrOverflow))
	}
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func TestSortedAndReversed(t *testing.T) {
	is := is.New(t)
	fact := uint64(1)
	letters := "ABCDEFGHIJKLMNOPQRST"
	for n := 1; n <= len(letters); n++ {
		fact *= uint64(n)
		word := letters[:n]
		r, err := Rank(word)
		is.NoErr(err)
		is.Equal(r, uint64(1))
		r, err = Rank(reverse(word))
		is.NoErr(err)
		is.Equal(r, fact)
	}
}

// anagrams lists every distinct arrangement of letters in sorted order.
func anagrams(letters string) []string {
	b := []byte(letters)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	out := []string{}
	var gen func(prefix []byte, rest []byte)
	gen = func(prefix []byte, rest []byte) {
		if len(rest) == 0 {
			out = append(out, string(prefix))
			return
		}
		for i := range rest {
			if i > 0 && rest[i] == rest[i-1] {
				continue
			}
			next := append(append([]byte{}, rest[:i]...), rest[i+1:]...)
			gen(append(prefix, rest[i]), next)
		}
	}
	gen(make([]byte, 0, len(b)), b)
	return out
}

func TestAgainstEnumeration(t *testing.T) {
	is := is.New(t)
	for _, letters := range []string{
		"ab", "aab", "aabb", "abcd", "aaabbc", "MISSISS", "EERIEST", "zZaA1",
	} {
		all := anagrams(letters)
		combos, err := Combinations(letters)
		is.NoErr(err)
		is.Equal(combos, uint64(len(all)))

		prev := uint64(0)
		for i, w := range all {
			want := uint64(i + 1)
			r, err := Rank(w)
			is.NoErr(err)
			is.Equal(r, want)

			r, err = RankByRemoval(w)
			is.NoErr(err)
			is.Equal(r, want)

			// monotone in lexicographic order
			is.True(r > prev)
			prev = r

			u, err := Unrank(letters, want)
			is.NoErr(err)
			is.Equal(u, w)
		}
	}
}

func TestBounds(t *testing.T) {
	is := is.New(t)
	for _, word := range []string{"ZYZZYVA", "CINEMATOGRAPHER", "DEUTERANOMALIES", "MUUMUUS", "QAJAQ"} {
		r, err := Rank(word)
		is.NoErr(err)
		c, err := Combinations(word)
		is.NoErr(err)
		is.True(r >= 1)
		is.True(r <= c)
	}
}

func TestUnrankRoundTrip(t *testing.T) {
	is := is.New(t)
	letters := "DEUTERANOMALIES"
	c, err := Combinations(letters)
	is.NoErr(err)
	for _, rank := range []uint64{1, 2, 1000, 123456789, c / 2, c - 1, c} {
		w, err := Unrank(letters, rank)
		is.NoErr(err)
		is.Equal(len(w), len(letters))
		r, err := Rank(w)
		is.NoErr(err)
		is.Equal(r, rank)
	}
	first, err := Unrank(letters, 1)
	is.NoErr(err)
	is.True(strings.HasPrefix(first, "AAD"))
}

func TestUnrankOutOfRange(t *testing.T) {
	is := is.New(t)
	_, err := Unrank("aab", 0)
	is.True(errors.Is(err, ErrRankOutOfRange))
	_, err = Unrank("aab", 4)
	is.True(errors.Is(err, ErrRankOutOfRange))
	w, err := Unrank("aab", 3)
	is.NoErr(err)
	is.Equal(w, "baa")
}
