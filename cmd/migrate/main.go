package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/LucasBaccaro/fullstack/internal/config"
	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/LucasBaccaro/fullstack/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	_ = godotenv.Load() // a missing .env is fine outside local development

	flags, err := config.ParseMigrateFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, "Usage: migrate [--database-url <url>] [--down] [--steps <n>]")
		logger.Fatal("invalid arguments", "error", err)
	}

	direction := "up"
	if flags.Down {
		direction = "down"
	}

	logger.Info("running migrations", "direction", direction, "steps", flags.Steps)

	if err := storage.RunMigrations(flags.DatabaseURL, flags.Down, flags.Steps); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	logger.Info("migrations complete")
}
