package rankserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/domino14/wordrank/internal/common"
	"github.com/domino14/wordrank/internal/wordrank"
)

// Useful for chat bots.

func writeError(w http.ResponseWriter, err string) {
	w.WriteHeader(400)
	w.Write([]byte(err))
}

// NewTextHandler answers /txt?method=...&word=... with a single line of
// plain text.
func NewTextHandler(s *Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Query().Get("method")
		if method == "" {
			writeError(w, "method required")
			return
		}
		word := s.normalize(r.URL.Query().Get("word"))
		if word == "" {
			writeError(w, "word required")
			return
		}
		switch method {
		case "rank":
			rank(s, w, r, word)
		case "combinations":
			combinations(s, w, r, word)
		case "unrank":
			unrank(w, r, word)
		case "alphagram":
			w.Write([]byte(common.MakeAlphagram(word)))
		default:
			writeError(w, "method not found")
		}
	})
}

func rank(s *Server, w http.ResponseWriter, r *http.Request, word string) {
	e, err := s.Lookup(r.Context(), word)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	fmt.Fprintf(w, "Order of word %s: %d of %d.", e.Word, e.Rank, e.Combinations)
}

func combinations(s *Server, w http.ResponseWriter, r *http.Request, word string) {
	e, err := s.Lookup(r.Context(), word)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	plural := ""
	if e.Combinations > 1 {
		plural = "s"
	}
	fmt.Fprintf(w, "%d anagram%s of %s.", e.Combinations, plural, e.Alphagram)
}

func unrank(w http.ResponseWriter, r *http.Request, letters string) {
	rankStr := r.URL.Query().Get("rank")
	if rankStr == "" {
		writeError(w, "rank required")
		return
	}
	n, err := strconv.ParseUint(rankStr, 10, 64)
	if err != nil {
		writeError(w, "rank must be a positive integer")
		return
	}
	word, err := wordrank.Unrank(letters, n)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	w.Write([]byte(word))
}
