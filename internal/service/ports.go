package service

import (
	"context"

	"anonpairbot/internal/core"
)

// UserStore is the durable user record collaborator.
type UserStore interface {
	GetByTelegramID(telegramID int64) (*core.User, error)
	Create(user *core.User) error
	Update(user *core.User) error
	// ListEligible returns non-banned, profile-complete users excluding the
	// given requester. Session membership is filtered by the caller.
	ListEligible(excluding int64) ([]core.User, error)
}

// SessionStore is the durable pairing record collaborator.
type SessionStore interface {
	Create(userA, userB int64) (*core.Session, error)
	FindByUser(telegramID int64) (*core.Session, error)
	Delete(sessionID string) error
	ActiveUserIDs() (map[int64]bool, error)
}

// Transport delivers outbound content to a chat.
type Transport interface {
	SendText(chatID int64, text string) error
	SendContent(chatID int64, content core.Content) error
	Forward(toChatID, fromChatID int64, messageID int) error
	// PromptChoice renders the options as buttons whose callback data is
	// prefix:code.
	PromptChoice(chatID int64, text string, prefix string, options []core.Option) error
}

// Completer produces one model reply for a prompt. Satisfied by the Groq
// client.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}
