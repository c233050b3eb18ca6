// Package rack implements a sorted multiset of letters. A Rack knows, for any
// letter, how many of the letters it holds sort strictly before it, which is
// what the ranking code needs at every step.
//
// Letters are bytes and compare byte-wise, so 'A' and 'a' are different
// letters and 'A' sorts first.
package rack

import (
	"errors"
	"strings"

	"github.com/domino14/wordrank/internal/combinatorics"
)

// ErrLetterNotFound is returned when taking a letter the rack does not hold.
var ErrLetterNotFound = errors.New("letter not in rack")

type tile struct {
	letter byte
	count  int
}

// Rack holds letters in ascending order. There is never an entry with a zero
// count, and length is always the sum of the counts.
type Rack struct {
	tiles  []tile
	length int
}

// NewRack returns a rack holding every letter of word.
func NewRack(word string) *Rack {
	r := &Rack{}
	for i := 0; i < len(word); i++ {
		r.Insert(word[i])
	}
	return r
}

// Insert adds a letter and returns the number of held letters that sort
// strictly before it. Repeats of a letter all get the same index.
func (r *Rack) Insert(letter byte) int {
	r.length++
	index := 0
	for i := range r.tiles {
		t := &r.tiles[i]
		if t.letter == letter {
			t.count++
			return index
		}
		if t.letter > letter {
			r.tiles = append(r.tiles, tile{})
			copy(r.tiles[i+1:], r.tiles[i:])
			r.tiles[i] = tile{letter: letter, count: 1}
			return index
		}
		index += t.count
	}
	r.tiles = append(r.tiles, tile{letter: letter, count: 1})
	return index
}

// Take removes one copy of letter and returns the number of held letters that
// sorted strictly before it.
func (r *Rack) Take(letter byte) (int, error) {
	index := 0
	for i := range r.tiles {
		t := &r.tiles[i]
		if t.letter == letter {
			t.count--
			r.length--
			if t.count == 0 {
				r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			}
			return index, nil
		}
		if t.letter > letter {
			break
		}
		index += t.count
	}
	return 0, ErrLetterNotFound
}

// Combinations is the number of distinct arrangements of the held letters.
func (r *Rack) Combinations() (uint64, error) {
	return combinatorics.Multinomial(r.Counts())
}

// Counts returns the multiplicity of each distinct letter in sort order.
func (r *Rack) Counts() []int {
	counts := make([]int, len(r.tiles))
	for i, t := range r.tiles {
		counts[i] = t.count
	}
	return counts
}

// Count returns how many copies of letter the rack holds.
func (r *Rack) Count(letter byte) int {
	for _, t := range r.tiles {
		if t.letter == letter {
			return t.count
		}
	}
	return 0
}

// Letters returns the distinct held letters in sort order.
func (r *Rack) Letters() []byte {
	letters := make([]byte, len(r.tiles))
	for i, t := range r.tiles {
		letters[i] = t.letter
	}
	return letters
}

func (r *Rack) Len() int      { return r.length }
func (r *Rack) Distinct() int { return len(r.tiles) }

// String returns the held letters in sorted order, i.e. the alphagram.
func (r *Rack) String() string {
	var sb strings.Builder
	sb.Grow(r.length)
	for _, t := range r.tiles {
		for i := 0; i < t.count; i++ {
			sb.WriteByte(t.letter)
		}
	}
	return sb.String()
}
