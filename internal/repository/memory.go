package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fitlife-assistant/internal/domain"
)

// MemoryStore keeps conversations in process. A single mutex serializes all
// appends.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string][]domain.Message
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{conversations: make(map[string][]domain.Message)}
}

func (m *MemoryStore) Append(_ context.Context, conversationID string, msg domain.Message) error {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return errors.New("repository: Append: conversation id is required")
	}
	if msg.Role != domain.RoleUser && msg.Role != domain.RoleAssistant {
		return fmt.Errorf("repository: Append: unknown role %q", msg.Role)
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[conversationID] = append(m.conversations[conversationID], msg)
	return nil
}

func (m *MemoryStore) History(_ context.Context, conversationID string, limit int) ([]domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.conversations[conversationID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
