package common

import (
	"github.com/domino14/wordrank/internal/rack"
	"github.com/domino14/wordrank/internal/wordrank"
)

type Word struct {
	word string
}

func InitializeWord(word string) Word {
	return Word{word}
}

func (w Word) Word() string {
	return w.word // stop saying word so much
}

// MakeAlphagram sorts the letters byte-wise. The alphagram is always rank 1
// among the word's anagrams.
func (w Word) MakeAlphagram() string {
	return rack.NewRack(w.word).String()
}

func (w Word) Rank() (uint64, error) {
	return wordrank.Rank(w.word)
}

func (w Word) Combinations() (uint64, error) {
	return wordrank.Combinations(w.word)
}

// MakeAlphagram is a shortcut for InitializeWord(word).MakeAlphagram().
func MakeAlphagram(word string) string {
	return InitializeWord(word).MakeAlphagram()
}
