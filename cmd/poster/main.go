package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"linkedin-auto-poster/config"
	"linkedin-auto-poster/internal/generator"
	"linkedin-auto-poster/internal/linkedin"
	apperrors "linkedin-auto-poster/pkg/errors"
)

func main() {
	topic := flag.String("topic", "C# generics", "topic to write the post about")
	disclosure := flag.Bool("disclosure", true, "append the AI disclosure to the post")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	// Optional .env next to the binary; real environments set vars directly.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), logger, *topic, *disclosure); err != nil {
		fmt.Fprintln(os.Stderr, categorize(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, topic string, disclosure bool) error {
	liCfg, err := config.LoadLinkedIn()
	if err != nil {
		return err
	}
	llmCfg, err := config.LoadLLM()
	if err != nil {
		return err
	}
	accessToken, err := config.AccessToken()
	if err != nil {
		return err
	}

	gen, err := generator.NewFromConfig(ctx, llmCfg, logger)
	if err != nil {
		return err
	}
	client, err := linkedin.New(liCfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Generating LinkedIn post about %s...\n", topic)
	content, err := gen.GeneratePost(ctx, topic, disclosure)
	if err != nil {
		return err
	}
	fmt.Println("Generated post:")
	fmt.Println(content)

	fmt.Println("Fetching LinkedIn user info...")
	info, err := client.UserInfo(ctx, accessToken)
	if err != nil {
		return err
	}
	fmt.Printf("Posting as %s (%s)\n", info.Name, info.Sub)

	result, err := client.CreatePost(ctx, accessToken, info.Sub, content)
	if err != nil {
		return err
	}
	fmt.Printf("Post successfully created: %s\n", result.ID)

	return nil
}

func categorize(err error) string {
	switch apperrors.KindOf(err) {
	case apperrors.KindAuthentication:
		return fmt.Sprintf("Authentication Error: %v", err)
	case apperrors.KindPostCreation:
		return fmt.Sprintf("LinkedIn API Error: %v", err)
	case apperrors.KindConfiguration:
		return fmt.Sprintf("Configuration Error: %v", err)
	case apperrors.KindGenerationFormat, apperrors.KindInputValidation:
		return fmt.Sprintf("Validation Error: %v", err)
	default:
		return fmt.Sprintf("Unexpected Error: %v", err)
	}
}
