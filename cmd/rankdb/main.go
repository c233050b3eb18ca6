// The caller of the rank store builder.
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordrank/internal/rankstore"
)

type Config struct {
	dbName      string
	outputDir   string
	forceCreate bool
	wordLists   []string
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("rankdb", flag.ContinueOnError)

	fs.StringVar(&c.dbName, "dbname", "ranks.db", "Name of the database file to create")
	fs.StringVar(&c.outputDir, "outputdir", ".", "The output directory")
	fs.BoolVar(&c.forceCreate, "force", false, "Create DB even if it already exists (overwrite)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.wordLists = fs.Args()
	if len(c.wordLists) == 0 {
		return errors.New("must provide at least one word list")
	}
	return nil
}

func buildDB(ctx context.Context, cfg *Config) (rankstore.LoadStats, error) {
	total := rankstore.LoadStats{}
	// MkdirAll will make any intermediate dirs but fail gracefully if they exist.
	if err := os.MkdirAll(cfg.outputDir, os.ModePerm); err != nil {
		return total, err
	}
	dbPath := filepath.Join(cfg.outputDir, cfg.dbName)
	if _, err := os.Stat(dbPath); err == nil {
		if !cfg.forceCreate {
			return total, errors.New(dbPath + " already exists; use -force to overwrite")
		}
		if err := os.Remove(dbPath); err != nil {
			return total, err
		}
	}

	store, err := rankstore.Open(ctx, dbPath)
	if err != nil {
		return total, err
	}
	defer store.Close()

	for _, wl := range cfg.wordLists {
		f, err := os.Open(wl)
		if err != nil {
			return total, err
		}
		stats, err := store.LoadWordList(ctx, f)
		f.Close()
		if err != nil {
			return total, err
		}
		log.Info().Str("word-list", wl).Int("stored", stats.Stored).Int("skipped", stats.Skipped).Msg("word-list-done")
		total.Stored += stats.Stored
		total.Skipped += stats.Skipped
	}
	return total, nil
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-arguments")
	}
	log.Info().Interface("config", cfg).Msg("rankdb-started")

	stats, err := buildDB(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("rankdb-failed")
	}
	log.Info().Int("stored", stats.Stored).Int("skipped", stats.Skipped).Msg("rankdb-finished")
}
