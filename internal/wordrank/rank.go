// Package wordrank finds the position of a word in the sorted list of its
// anagrams, and the anagram at a given position, without ever building
// that list. Ranks are 1-based: the alphagram of a word has rank 1.
//
// For a suffix S of the word starting with letter L, the number of anagrams
// of S that start with a letter smaller than L is
//
//	combinations(S) * index(L, S) / len(S)
//
// where index is the number of letters of S that sort before L. The rank is
// one plus the sum of that quantity over every suffix.
package wordrank

import (
	"errors"
	"fmt"

	"github.com/domino14/wordrank/internal/combinatorics"
	"github.com/domino14/wordrank/internal/rack"
)

var (
	ErrEmptyWord      = errors.New("word is empty")
	ErrRankOutOfRange = errors.New("rank out of range")
	// ErrOverflow is the same error as combinatorics.ErrOverflow.
	ErrOverflow = combinatorics.ErrOverflow
)

// Rank returns the 1-based rank of word among its distinct anagrams. It
// walks the word right to left, growing a rack of the suffix seen so far.
func Rank(word string) (uint64, error) {
	if len(word) == 0 {
		return 0, ErrEmptyWord
	}
	r := &rack.Rack{}
	acc := uint64(0)
	for i := len(word) - 1; i >= 0; i-- {
		index := r.Insert(word[i])
		combos, err := r.Combinations()
		if err != nil {
			return 0, fmt.Errorf("combinations of %q: %w", word[i:], err)
		}
		if combos < 2 || index == 0 {
			continue
		}
		acc, err = accumulate(acc, uint64(index), combos, uint64(r.Len()))
		if err != nil {
			return 0, fmt.Errorf("rank of %q: %w", word, err)
		}
	}
	return combinatorics.CheckedAdd(acc, 1)
}

// RankByRemoval computes the same thing as Rank, left to right, taking
// letters out of a rack that starts with the whole word. It stops as soon as
// the remaining letters can only be arranged one way.
func RankByRemoval(word string) (uint64, error) {
	if len(word) == 0 {
		return 0, ErrEmptyWord
	}
	r := rack.NewRack(word)
	acc := uint64(0)
	for i := 0; i < len(word); i++ {
		length := uint64(r.Len())
		combos, err := r.Combinations()
		if err != nil {
			return 0, fmt.Errorf("combinations of %q: %w", word[i:], err)
		}
		if combos < 2 {
			break
		}
		index, err := r.Take(word[i])
		if err != nil {
			// The rack was built from this very word.
			panic(fmt.Sprintf("rack out of sync with %q at %d: %v", word, i, err))
		}
		acc, err = accumulate(acc, uint64(index), combos, length)
		if err != nil {
			return 0, fmt.Errorf("rank of %q: %w", word, err)
		}
	}
	return combinatorics.CheckedAdd(acc, 1)
}

// accumulate adds index*combos/length to acc. combos is split into
// quotient and remainder by length so the remainder term is multiplied
// before it is divided; index*combos is always a multiple of length, so
// nothing is truncated.
func accumulate(acc, index, combos, length uint64) (uint64, error) {
	q, rem := combos/length, combos%length
	whole, err := combinatorics.CheckedMul(index, q)
	if err != nil {
		return 0, err
	}
	part := index * rem / length
	acc, err = combinatorics.CheckedAdd(acc, whole)
	if err != nil {
		return 0, err
	}
	return combinatorics.CheckedAdd(acc, part)
}

// Combinations returns the number of distinct anagrams of word, which is
// also the largest rank any of them can have.
func Combinations(word string) (uint64, error) {
	if len(word) == 0 {
		return 0, ErrEmptyWord
	}
	return rack.NewRack(word).Combinations()
}

// Unrank returns the anagram of letters at the given 1-based rank.
func Unrank(letters string, rank uint64) (string, error) {
	if len(letters) == 0 {
		return "", ErrEmptyWord
	}
	r := rack.NewRack(letters)
	combos, err := r.Combinations()
	if err != nil {
		return "", err
	}
	if rank == 0 || rank > combos {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrRankOutOfRange, rank, combos)
	}
	remaining := rank - 1
	out := make([]byte, 0, len(letters))
	for r.Len() > 0 {
		length := uint64(r.Len())
		// Anagrams starting with each letter in turn occupy consecutive
		// blocks of size combos*count/length.
		for _, letter := range r.Letters() {
			block, err := combinatorics.MulDiv(combos, uint64(r.Count(letter)), length)
			if err != nil {
				return "", err
			}
			if remaining < block {
				if _, err := r.Take(letter); err != nil {
					panic(err)
				}
				out = append(out, letter)
				combos = block
				break
			}
			remaining -= block
		}
	}
	return string(out), nil
}
