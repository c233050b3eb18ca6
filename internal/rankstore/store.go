// Package rankstore keeps precomputed anagram ranks in a SQLite database, one
// row per word. It is built from a word list with the rankdb command and
// consulted by the rank server before it computes anything.
package rankstore

import (
	"bufio"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	// sqlite3 driver is used by this store.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordrank/internal/common"
	"github.com/domino14/wordrank/internal/wordrank"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var ErrNotFound = errors.New("word not in rank store")

type Entry struct {
	Word         string
	Alphagram    string
	Rank         uint64
	Combinations uint64
}

// NewEntry computes the entry for a single word.
func NewEntry(word string) (Entry, error) {
	w := common.InitializeWord(word)
	rank, err := w.Rank()
	if err != nil {
		return Entry{}, err
	}
	combos, err := w.Combinations()
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Word:         word,
		Alphagram:    w.MakeAlphagram(),
		Rank:         rank,
		Combinations: combos,
	}, nil
}

type LoadStats struct {
	Stored  int
	Skipped int
}

type Store struct {
	db *sql.DB
}

// Open migrates the database at path up to the latest schema and opens it.
// The file is created if it does not exist.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := migrateUp(path); err != nil {
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrateUp(path string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return err
	}
	defer func() {
		e1, e2 := m.Close()
		if e1 != nil || e2 != nil {
			log.Err(errors.Join(e1, e2)).Msg("closing-migrator")
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const upsertQuery = `INSERT OR REPLACE INTO ranks (word, alphagram, rank, combinations) VALUES (?, ?, ?, ?)`

func (s *Store) Put(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, upsertQuery, e.Word, e.Alphagram, int64(e.Rank), int64(e.Combinations))
	return err
}

func (s *Store) Get(ctx context.Context, word string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT word, alphagram, rank, combinations FROM ranks WHERE word = ?`, word)
	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

// ByAlphagram returns the stored anagrams of an alphagram, lowest rank first.
func (s *Store) ByAlphagram(ctx context.Context, alphagram string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, alphagram, rank, combinations FROM ranks WHERE alphagram = ? ORDER BY rank`,
		alphagram)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(scan func(dest ...any) error) (Entry, error) {
	var e Entry
	var rank, combos int64
	if err := scan(&e.Word, &e.Alphagram, &rank, &combos); err != nil {
		return Entry{}, err
	}
	e.Rank = uint64(rank)
	e.Combinations = uint64(combos)
	return e, nil
}

// LoadWordList stores the first field of every line of r. Words too long to
// rank are logged and skipped. Everything is written in one transaction.
func (s *Store) LoadWordList(ctx context.Context, r io.Reader) (LoadStats, error) {
	stats := LoadStats{}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertQuery)
	if err != nil {
		return stats, err
	}
	defer stmt.Close()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		e, err := NewEntry(fields[0])
		if errors.Is(err, wordrank.ErrOverflow) {
			log.Debug().Str("word", fields[0]).Msg("word-too-long-skipping")
			stats.Skipped++
			continue
		} else if err != nil {
			return stats, err
		}
		_, err = stmt.ExecContext(ctx, e.Word, e.Alphagram, int64(e.Rank), int64(e.Combinations))
		if err != nil {
			return stats, err
		}
		stats.Stored++
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	if err := tx.Commit(); err != nil {
		return stats, err
	}
	log.Info().Int("stored", stats.Stored).Int("skipped", stats.Skipped).Msg("loaded-word-list")
	return stats, nil
}
