// Command chat runs the assistant in a terminal against an in-memory
// conversation. Navigation intents are printed when they fire.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"fitlife-assistant/internal/config"
	"fitlife-assistant/internal/domain"
	"fitlife-assistant/internal/integrations/openai"
	"fitlife-assistant/internal/intent"
	"fitlife-assistant/internal/navigation"
	"fitlife-assistant/internal/repository"
	"fitlife-assistant/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	if err := run(context.Background(), cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("chat failed", "err", err)
		os.Exit(1)
	}
}

// lockedWriter serializes prompt output with navigations firing from timers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, w io.Writer) error {
	out := &lockedWriter{w: w}
	routerOpts := []intent.Option{
		intent.WithLogger(logger),
		intent.WithNavigationDelay(cfg.NavigationDelay),
	}
	if cfg.LLMEnabled && cfg.OpenAIAPIKey != "" {
		model, err := openai.NewClient(
			openai.WithAPIKey(cfg.OpenAIAPIKey),
			openai.WithBaseURL(cfg.OpenAIBaseURL),
			openai.WithModel(cfg.OpenAIModel),
			openai.WithHTTPClient(&http.Client{Timeout: cfg.LLMTimeout}),
		)
		if err != nil {
			return err
		}
		routerOpts = append(routerOpts, intent.WithModel(model))
	}
	router := intent.NewRouter(routerOpts...)

	svc, err := usecase.NewChatService(router, repository.NewMemoryStore(),
		usecase.WithModel(router.HasModel()),
		usecase.WithMaxMessageLength(cfg.MaxMessageLength),
		usecase.WithMaxHistory(cfg.MaxHistoryItems),
		usecase.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	nav := navigation.NewScheduler()
	defer nav.Close()

	fmt.Fprintln(out, "FitLife assistant. Type a message, or /quit to leave.")
	convID := ""
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		}

		res, err := svc.Send(ctx, usecase.ChatInput{Message: line, ConversationID: convID})
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		convID = res.ConversationID
		printReply(out, res.Reply)

		if err := nav.Schedule(res.Reply.Navigation, func(path string) {
			fmt.Fprintf(out, "\n[navigating to %s]\n> ", path)
		}); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printReply(w io.Writer, r domain.Reply) {
	fmt.Fprintf(w, "%s: %s\n", r.Persona, r.Text)
	for _, l := range r.Links {
		fmt.Fprintf(w, "  - %s: %s\n", l.Label, l.URL)
	}
	if r.Navigation != nil {
		fmt.Fprintf(w, "  (opening %s in %s)\n", r.Navigation.Path, r.Navigation.Delay)
	}
}
