package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"fitlife-assistant/internal/domain"
)

const (
	defaultMaxMessage = 2000
	defaultMaxHistory = 50
)

// Router produces exactly one reply per message and never fails.
type Router interface {
	Route(ctx context.Context, message string, useModel bool) domain.Reply
}

type Store interface {
	Append(ctx context.Context, conversationID string, msg domain.Message) error
	History(ctx context.Context, conversationID string, limit int) ([]domain.Message, error)
}

type ChatService struct {
	router        Router
	store         Store
	useModel      bool
	maxMessageLen int
	maxHistory    int
	logger        *slog.Logger
}

type Option func(*ChatService)

// WithModel makes every turn try the remote model before the rules.
func WithModel(enabled bool) Option {
	return func(s *ChatService) {
		s.useModel = enabled
	}
}

func WithMaxMessageLength(n int) Option {
	return func(s *ChatService) {
		if n > 0 {
			s.maxMessageLen = n
		}
	}
}

func WithMaxHistory(n int) Option {
	return func(s *ChatService) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *ChatService) {
		if l != nil {
			s.logger = l
		}
	}
}

type ChatInput struct {
	Message        string
	ConversationID string
}

type ChatOutput struct {
	ConversationID string
	Reply          domain.Reply
}

func NewChatService(r Router, s Store, opts ...Option) (*ChatService, error) {
	if r == nil {
		return nil, errors.New("usecase: router must not be nil")
	}
	if s == nil {
		return nil, errors.New("usecase: store must not be nil")
	}
	svc := &ChatService{
		router:        r,
		store:         s,
		maxMessageLen: defaultMaxMessage,
		maxHistory:    defaultMaxHistory,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Send records the user's message, routes it, and records the single reply.
func (s *ChatService) Send(ctx context.Context, in ChatInput) (ChatOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return ChatOutput{}, newError(ErrorInvalidInput, "empty_message", nil)
	}
	if utf8.RuneCountInString(message) > s.maxMessageLen {
		return ChatOutput{}, newError(ErrorInvalidInput, "message_too_long", nil)
	}
	convID := strings.TrimSpace(in.ConversationID)
	if convID == "" {
		convID = newUUID()
	}

	if err := s.store.Append(ctx, convID, domain.NewUserMessage(message)); err != nil {
		return ChatOutput{}, newError(ErrorInternal, "store_append_error", err)
	}

	reply := s.router.Route(ctx, message, s.useModel)

	if err := s.store.Append(ctx, convID, domain.NewAssistantMessage(reply.Text)); err != nil {
		// The user message is already stored and stays without a reply.
		s.logger.ErrorContext(ctx, "reply not recorded, user message left unanswered",
			"conversation_id", convID,
			"intent", reply.Intent.String(),
			"err", err,
		)
		return ChatOutput{}, newError(ErrorInternal, "store_append_error", err)
	}

	s.logger.InfoContext(ctx, "chat turn",
		"conversation_id", convID,
		"intent", reply.Intent.String(),
		"source", string(reply.Source),
		"navigate", reply.Navigation != nil,
	)
	return ChatOutput{ConversationID: convID, Reply: reply}, nil
}

// History returns the most recent messages of a conversation, oldest first.
func (s *ChatService) History(ctx context.Context, conversationID string) ([]domain.Message, error) {
	convID := strings.TrimSpace(conversationID)
	if convID == "" {
		return nil, newError(ErrorInvalidInput, "missing_conversation_id", nil)
	}
	msgs, err := s.store.History(ctx, convID, s.maxHistory)
	if err != nil {
		return nil, newError(ErrorInternal, "store_history_error", err)
	}
	return msgs, nil
}

var newUUID = func() string {
	return uuid.NewString()
}
