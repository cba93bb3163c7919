package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"golang.org/x/time/rate"

	"fitlife-assistant/handler"
	"fitlife-assistant/internal/config"
	"fitlife-assistant/internal/integrations/openai"
	"fitlife-assistant/internal/integrations/paramstore"
	"fitlife-assistant/internal/intent"
	"fitlife-assistant/internal/repository"
	"fitlife-assistant/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if cfg.StateTable == "" {
		logger.Error("required environment variable is not set", "key", "STATE_TABLE")
		os.Exit(1)
	}

	// ---- AWS SDK config ----
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	stateClient, err := repository.New(awsdynamodb.NewFromConfig(awsCfg), cfg.StateTable)
	if err != nil {
		logger.Error("failed to create state client", "err", err)
		os.Exit(1)
	}

	routerOpts := []intent.Option{
		intent.WithLogger(logger),
		intent.WithNavigationDelay(cfg.NavigationDelay),
	}
	if cfg.ModelConfigured() {
		model, err := newModel(cfg, awsssm.NewFromConfig(awsCfg))
		if err != nil {
			logger.Error("failed to create OpenAI client", "err", err)
			os.Exit(1)
		}
		routerOpts = append(routerOpts, intent.WithModel(model))
	} else {
		logger.Info("language model disabled, answering from rules only")
	}
	router := intent.NewRouter(routerOpts...)

	// ---- Handler ----
	chatService, err := usecase.NewChatService(router, stateClient,
		usecase.WithModel(router.HasModel()),
		usecase.WithMaxMessageLength(cfg.MaxMessageLength),
		usecase.WithMaxHistory(cfg.MaxHistoryItems),
		usecase.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to create chat service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(chatService)
	if err != nil {
		logger.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}

// newModel prefers a static key and otherwise reads the token from SSM.
func newModel(cfg *config.Config, ssmAPI *awsssm.Client) (*openai.Client, error) {
	opts := []openai.Option{
		openai.WithBaseURL(cfg.OpenAIBaseURL),
		openai.WithModel(cfg.OpenAIModel),
		openai.WithHTTPClient(&http.Client{Timeout: cfg.LLMTimeout}),
	}
	if cfg.LLMRequestsPerMinute > 0 {
		every := time.Minute / time.Duration(cfg.LLMRequestsPerMinute)
		opts = append(opts, openai.WithRateLimiter(rate.NewLimiter(rate.Every(every), cfg.LLMRequestsPerMinute)))
	}

	if cfg.OpenAIAPIKey != "" {
		return openai.NewClient(append(opts, openai.WithAPIKey(cfg.OpenAIAPIKey))...)
	}
	params, err := paramstore.New(ssmAPI, paramstore.WithCacheTTL(cfg.ParamCacheTTL))
	if err != nil {
		return nil, err
	}
	return openai.NewClient(append(opts, openai.WithParamStore(params, cfg.ParamPrefix))...)
}
