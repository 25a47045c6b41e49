package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/flightbook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-m bool     run embedded migrations on start
//	-r int      serializable transaction attempt budget
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.BoolVar(&config.MigrateOnStart, "m", config.MigrateOnStart, "run migrations on start")
	fs.IntVar(&config.MaxTxAttempts, "r", config.MaxTxAttempts, "max attempts for conflicting transactions")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
