// wordorder prints the position of a word in the sorted list of its anagrams.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordrank/internal/common"
	"github.com/domino14/wordrank/internal/wordrank"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

var errNoWord = errors.New("you forgot to supply a word")

// Use more specific env var names here to avoid colliding with other
// env vars user might have on their system. (more so the case for log level)
var LogLevel = os.Getenv("WORDORDER_LOG_LEVEL")

type Config struct {
	foldCase  bool
	showStats bool
	word      string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("wordorder", flag.ContinueOnError)
	fs.BoolVar(&c.foldCase, "fold-case", false, "uppercase the word before ranking it")
	fs.BoolVar(&c.showStats, "t", false, "Show stats")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	switch fs.NArg() {
	case 0:
		return errNoWord
	case 1:
		c.word = fs.Arg(0)
	default:
		return fmt.Errorf("expected one word, got %d arguments", fs.NArg())
	}
	if c.foldCase {
		c.word = strings.ToUpper(c.word)
	}
	return nil
}

func run(args []string, stdout io.Writer) int {
	cfg := &Config{}
	if err := cfg.Load(args); err != nil {
		fmt.Fprintf(stdout, "Oops! %v.\n\nusage: wordorder [-fold-case] [-t] WORD\n", err)
		return exitUsage
	}
	log.Debug().Interface("config", cfg).Str("word", cfg.word).Msg("input")

	order, err := wordrank.Rank(cfg.word)
	if err != nil {
		log.Error().Err(err).Str("word", cfg.word).Msg("could-not-rank")
		return exitFailure
	}
	fmt.Fprintf(stdout, "Order of word %s: %d.\n", cfg.word, order)
	if cfg.showStats {
		// Can't fail once Rank succeeded.
		combos, _ := wordrank.Combinations(cfg.word)
		fmt.Fprintf(stdout, "Alphagram: %s -- Anagrams: %d\n", common.MakeAlphagram(cfg.word), combos)
	}
	return exitOK
}

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if strings.ToLower(LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	os.Exit(run(os.Args[1:], os.Stdout))
}
