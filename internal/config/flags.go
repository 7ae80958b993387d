package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// parses CLI flags for the migrate command. the database url falls back to
// SUPABASE_CONNECTION_STRING so the same .env drives server and migrations
func ParseMigrateFlags(args []string) (MigrateFlags, error) {
	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)

	databaseURL := fs.String("database-url", "", "postgres connection url (defaults to SUPABASE_CONNECTION_STRING)")
	down := fs.Bool("down", false, "roll migrations back instead of applying them")
	steps := fs.IntP("steps", "n", 0, "number of migrations to apply or roll back (0 = all)")

	if err := fs.Parse(args); err != nil {
		return MigrateFlags{}, err
	}

	url := *databaseURL
	if url == "" {
		url = os.Getenv("SUPABASE_CONNECTION_STRING")
	}

	if url == "" {
		return MigrateFlags{}, fmt.Errorf("--database-url or SUPABASE_CONNECTION_STRING is required")
	}

	if *steps < 0 {
		return MigrateFlags{}, fmt.Errorf("--steps must not be negative")
	}

	return MigrateFlags{DatabaseURL: url, Down: *down, Steps: *steps}, nil
}
