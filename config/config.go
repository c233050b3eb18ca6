package config

import (
	"github.com/namsral/flag"
)

type Config struct {
	LogLevel string

	ListenAddr string
	// DBPath is an optional rank store to consult before computing.
	DBPath    string
	SecretKey string
	// FoldCase uppercases input words. Ranking itself is case-sensitive.
	FoldCase bool
}

// Load loads the configs from the given arguments. Every flag can also be
// set through its environment variable, e.g. LISTEN_ADDR.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("wordrank", flag.ContinueOnError)

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	fs.StringVar(&c.ListenAddr, "listen-addr", ":8180", "address for the rank server to listen on")
	fs.StringVar(&c.DBPath, "db-path", "", "path to a rank store built with rankdb (optional)")
	fs.StringVar(&c.SecretKey, "secret-key", "", "HMAC key for JWT auth; auth is off if empty")
	fs.BoolVar(&c.FoldCase, "fold-case", false, "uppercase words before ranking them")
	err := fs.Parse(args)
	return err
}
