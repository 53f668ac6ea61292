package config

import (
	"flag"
	"os"

	"github.com/jmoranq/recetario/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local database file
//	-b string   path to the users backup snapshot
//
// Arguments are filtered through flagx.FilterArgs so flags owned by other
// components are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.BackupPath, "b", cfg.BackupPath, "path to the users backup snapshot")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
