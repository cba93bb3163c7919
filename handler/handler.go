package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"fitlife-assistant/internal/domain"
	"fitlife-assistant/internal/usecase"
)

const (
	chatPath          = "/chat"
	historyPath       = "/chat/history"
	correlationHeader = "X-Correlation-Id"
	errorNotFound     = "NOT_FOUND"
)

type ChatUseCase interface {
	Send(ctx context.Context, in usecase.ChatInput) (usecase.ChatOutput, error)
	History(ctx context.Context, conversationID string) ([]domain.Message, error)
}

type Handler struct {
	uc     ChatUseCase
	logger *slog.Logger
}

func NewHandler(uc ChatUseCase) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: use case must not be nil")
	}
	return &Handler{uc: uc, logger: slog.Default()}, nil
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
}

type linkResponse struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type navigationResponse struct {
	Path    string `json:"path"`
	DelayMs int64  `json:"delayMs"`
}

type chatResponse struct {
	ConversationID string              `json:"conversationId"`
	Reply          string              `json:"reply"`
	Persona        string              `json:"persona"`
	Intent         string              `json:"intent"`
	Source         string              `json:"source"`
	Links          []linkResponse      `json:"links"`
	Navigation     *navigationResponse `json:"navigation,omitempty"`
}

type messageResponse struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type historyResponse struct {
	ConversationID string            `json:"conversationId"`
	Messages       []messageResponse `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	logger := h.logger.With("correlation_id", correlationID, "method", req.HTTPMethod, "path", req.Path)

	path := strings.TrimSuffix(req.Path, "/")
	switch {
	case req.HTTPMethod == http.MethodPost && path == chatPath:
		return h.chat(ctx, logger, correlationID, req)
	case req.HTTPMethod == http.MethodGet && path == historyPath:
		return h.history(ctx, logger, correlationID, req)
	default:
		return jsonResponse(http.StatusNotFound, correlationID, errorResponse{Error: errorNotFound}), nil
	}
}

func (h *Handler) chat(ctx context.Context, logger *slog.Logger, correlationID string, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body chatRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		logger.WarnContext(ctx, "invalid request body", "err", err)
		return jsonResponse(http.StatusBadRequest, correlationID, errorResponse{Error: string(usecase.ErrorInvalidInput)}), nil
	}

	out, err := h.uc.Send(ctx, usecase.ChatInput{Message: body.Message, ConversationID: body.ConversationID})
	if err != nil {
		return h.errorResponse(ctx, logger, correlationID, err), nil
	}
	return jsonResponse(http.StatusOK, correlationID, toChatResponse(out)), nil
}

func (h *Handler) history(ctx context.Context, logger *slog.Logger, correlationID string, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	convID := req.QueryStringParameters["conversationId"]
	msgs, err := h.uc.History(ctx, convID)
	if err != nil {
		return h.errorResponse(ctx, logger, correlationID, err), nil
	}

	resp := historyResponse{ConversationID: strings.TrimSpace(convID), Messages: make([]messageResponse, 0, len(msgs))}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, messageResponse{
			Role:      string(m.Role),
			Text:      m.Text,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return jsonResponse(http.StatusOK, correlationID, resp), nil
}

func (h *Handler) errorResponse(ctx context.Context, logger *slog.Logger, correlationID string, err error) events.APIGatewayProxyResponse {
	status, code := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", "code", code, "err", err)
	} else {
		logger.WarnContext(ctx, "request rejected", "code", code, "err", err)
	}
	return jsonResponse(status, correlationID, errorResponse{Error: code})
}

func mapError(err error) (int, string) {
	switch code := usecase.CodeOf(err); code {
	case usecase.ErrorInvalidInput:
		return http.StatusBadRequest, string(code)
	default:
		return http.StatusInternalServerError, string(usecase.ErrorInternal)
	}
}

func toChatResponse(out usecase.ChatOutput) chatResponse {
	r := out.Reply
	resp := chatResponse{
		ConversationID: out.ConversationID,
		Reply:          r.Text,
		Persona:        string(r.Persona),
		Intent:         r.Intent.String(),
		Source:         string(r.Source),
		Links:          make([]linkResponse, 0, len(r.Links)),
	}
	for _, l := range r.Links {
		resp.Links = append(resp.Links, linkResponse{Label: l.Label, URL: l.URL})
	}
	if r.Navigation != nil {
		resp.Navigation = &navigationResponse{Path: r.Navigation.Path, DelayMs: r.Navigation.Delay.Milliseconds()}
	}
	return resp
}

func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func jsonResponse(status int, correlationID string, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"INTERNAL_ERROR"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: correlationID,
		},
		Body: string(body),
	}
}
