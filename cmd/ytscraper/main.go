// Command ytscraper calls the YouTube scraper API from the shell and prints
// the raw JSON payload.
package main

import (
	"log/slog"

	"github.com/anatolykoptev/go_ytscraper/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env loaded", slog.Any("error", err))
	}
	cli.Execute()
}
