package intent

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"fitlife-assistant/internal/domain"
)

// DefaultNavigationDelay is how long the UI waits before following a
// navigation intent.
const DefaultNavigationDelay = 2 * time.Second

// Model is the optional remote language model.
type Model interface {
	Complete(ctx context.Context, system, message string) (string, error)
}

// Router turns one user message into exactly one reply. It keeps no state
// between calls.
type Router struct {
	model           Model
	logger          *slog.Logger
	navigationDelay time.Duration
}

type Option func(*Router)

func WithModel(m Model) Option {
	return func(r *Router) {
		r.model = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithNavigationDelay(d time.Duration) Option {
	return func(r *Router) {
		if d > 0 {
			r.navigationDelay = d
		}
	}
}

func NewRouter(opts ...Option) *Router {
	r := &Router{
		logger:          slog.Default(),
		navigationDelay: DefaultNavigationDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HasModel reports whether a remote model is configured.
func (r *Router) HasModel() bool {
	return r.model != nil
}

// Route answers message. When useModel is set and a model is configured the
// model's text is used verbatim; any model failure falls back to the rule
// based template. Links and navigation always come from classifying the
// user's message.
func (r *Router) Route(ctx context.Context, message string, useModel bool) domain.Reply {
	in := Classify(message)
	tpl := lookupTemplate(in)

	reply := domain.Reply{
		Text:    tpl.Text,
		Persona: tpl.Persona,
		Intent:  in,
		Source:  domain.SourceRules,
		Links:   slices.Clone(tpl.Links),
	}
	if tpl.Path != "" {
		reply.Navigation = &domain.NavigationIntent{Path: tpl.Path, Delay: r.navigationDelay}
	}

	if useModel && r.model != nil {
		if text, ok := r.complete(ctx, message); ok {
			reply.Text = text
			reply.Source = domain.SourceModel
		}
	}
	return reply
}

func (r *Router) complete(ctx context.Context, message string) (string, bool) {
	text, err := r.model.Complete(ctx, Persona(), message)
	if err != nil {
		r.logger.WarnContext(ctx, "model reply failed, using rules", "err", err)
		return "", false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		r.logger.WarnContext(ctx, "model reply empty, using rules")
		return "", false
	}
	return text, true
}
