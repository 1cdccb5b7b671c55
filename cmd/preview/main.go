// Command preview generates a post without publishing it, dumping the
// parsed draft and the rendered text. With -mock it skips the LLM
// backend entirely.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/k0kubun/pp/v3"

	"linkedin-auto-poster/config"
	"linkedin-auto-poster/internal/generator"
)

func main() {
	topic := flag.String("topic", "C# generics", "topic to write the post about")
	disclosure := flag.Bool("disclosure", true, "append the AI disclosure to the post")
	mock := flag.Bool("mock", false, "use the mock LLM instead of Gemini")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	gen, err := buildGenerator(ctx, logger, *mock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	draft, err := gen.GenerateDraft(ctx, *topic, *disclosure)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pp.Println(draft)

	rendered, err := draft.Render()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("---")
	fmt.Println(rendered)
}

func buildGenerator(ctx context.Context, logger *slog.Logger, mock bool) (*generator.Generator, error) {
	if mock {
		return generator.New(&generator.MockLLM{}, logger)
	}

	cfg, err := config.LoadLLM()
	if err != nil {
		return nil, err
	}
	return generator.NewFromConfig(ctx, cfg, logger)
}
