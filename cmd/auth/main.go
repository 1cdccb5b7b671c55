// Command auth exchanges a LinkedIn OAuth authorization code for an
// access token and prints it, so it can be exported as
// LINKEDIN_ACCESS_TOKEN for the poster.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"linkedin-auto-poster/config"
	"linkedin-auto-poster/internal/linkedin"
)

func main() {
	code := flag.String("code", "", "authorization code from the LinkedIn OAuth redirect")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadLinkedIn()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	client, err := linkedin.New(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := client.ExchangeCode(context.Background(), *code)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(token)
}
