// rankcli is an interactive rank explorer. Type a word and its rank shows up
// as you type.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domino14/wordrank/internal/common"
	"github.com/domino14/wordrank/internal/rankserver"
	"github.com/domino14/wordrank/internal/wordrank"
)

const remoteTimeout = 5 * time.Second

type rankResult struct {
	word   string
	rank   uint64
	combos uint64
	err    error
}

type ranker interface {
	Rank(ctx context.Context, word string) (uint64, error)
	Combinations(ctx context.Context, word string) (uint64, error)
}

type localRanker struct{}

func (localRanker) Rank(_ context.Context, word string) (uint64, error) {
	return wordrank.Rank(word)
}

func (localRanker) Combinations(_ context.Context, word string) (uint64, error) {
	return wordrank.Combinations(word)
}

type model struct {
	textInput textinput.Model
	ranker    ranker
	last      rankResult
}

func initialModel(r ranker) model {
	ti := textinput.New()
	ti.Placeholder = "Word"
	ti.Focus()
	ti.CharLimit = 30
	ti.Width = 30

	return model{
		textInput: ti,
		ranker:    r,
	}
}

func lookupCmd(r ranker, word string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()
		res := rankResult{word: word}
		res.rank, res.err = r.Rank(ctx, word)
		if res.err != nil {
			return res
		}
		res.combos, res.err = r.Combinations(ctx, word)
		return res
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	case rankResult:
		// Drop answers for something the user has typed past.
		if msg.word == m.textInput.Value() {
			m.last = msg
		}
		return m, nil
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	word := m.textInput.Value()
	if word == before {
		return m, cmd
	}
	if word == "" {
		m.last = rankResult{}
		return m, cmd
	}
	return m, tea.Batch(cmd, lookupCmd(m.ranker, word))
}

func (m model) View() string {
	var body string
	switch {
	case m.last.word == "":
		body = "Type a word to see where it falls among its anagrams."
	case m.last.err != nil:
		body = "Can't rank " + m.last.word + ": " + m.last.err.Error()
	default:
		body = fmt.Sprintf("  %s\n\n  rank %d of %d\n  alphagram %s",
			m.last.word, m.last.rank, m.last.combos, common.MakeAlphagram(m.last.word))
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n(esc to quit)\n",
		m.textInput.View(), strings.Repeat("-", 25), body)
}

func main() {
	var r ranker = localRanker{}
	if url := os.Getenv("RANK_SERVER_URL"); url != "" {
		r = rankserver.NewClient(http.DefaultClient, url)
	}
	p := tea.NewProgram(initialModel(r))

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
