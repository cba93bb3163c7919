package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry of a conversation. Entries are append-only.
type Message struct {
	Role      Role
	Text      string
	CreatedAt time.Time
}

func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text, CreatedAt: time.Now().UTC()}
}

func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text, CreatedAt: time.Now().UTC()}
}
