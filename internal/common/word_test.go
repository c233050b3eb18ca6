package common

import (
	"testing"

	"github.com/matryer/is"
)

type alphagramtestpair struct {
	word      string
	alphagram string
}

var alphagramTests = []alphagramtestpair{
	{"FIREFANG", "AEFFGINR"},
	{"QAJAQ", "AAJQQ"},
	{"EROTICA", "ACEIORT"},
	{"MUUMUUS", "MMSUUUU"},
	{"PRIVATDOZENT", "ADEINOPRTTVZ"},
	{"DEUTERANOMALIES", "AADEEEILMNORSTU"},
	{"?EMONEN", "?EEMNNO"},
	{"Zebra", "Zaber"},
}

func TestAlphagram(t *testing.T) {
	is := is.New(t)
	for _, pair := range alphagramTests {
		is.Equal(MakeAlphagram(pair.word), pair.alphagram)
	}
}

func TestAlphagramIsFirst(t *testing.T) {
	is := is.New(t)
	for _, pair := range alphagramTests {
		r, err := InitializeWord(pair.alphagram).Rank()
		is.NoErr(err)
		is.Equal(r, uint64(1))
	}
}

func TestWord(t *testing.T) {
	is := is.New(t)
	w := InitializeWord("BOOKKEEPER")
	is.Equal(w.Word(), "BOOKKEEPER")
	r, err := w.Rank()
	is.NoErr(err)
	is.Equal(r, uint64(10743))
	c, err := w.Combinations()
	is.NoErr(err)
	is.Equal(c, uint64(151200))
}
