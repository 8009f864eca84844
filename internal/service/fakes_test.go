package service

import (
	"fmt"
	"sync"
	"time"

	"anonpairbot/internal/core"
)

// --- in-memory store and transport fakes shared by the service tests ---

type fakeUserStore struct {
	mu    sync.Mutex
	users map[int64]*core.User

	updateErr error
}

func newFakeUserStore(users ...*core.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[int64]*core.User)}
	for _, u := range users {
		cp := *u
		s.users[u.TelegramID] = &cp
	}
	return s
}

func (s *fakeUserStore) GetByTelegramID(id int64) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) Create(u *core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.TelegramID] = &cp
	return nil
}

func (s *fakeUserStore) Update(u *core.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.TelegramID] = &cp
	return nil
}

func (s *fakeUserStore) ListEligible(excluding int64) ([]core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.User
	for _, u := range s.users {
		if u.TelegramID == excluding || u.IsBanned || !u.ProfileComplete() {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*core.Session
	seq      int

	createErr error
	deleteErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*core.Session)}
}

func (s *fakeSessionStore) Create(userA, userB int64) (*core.Session, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	sess := &core.Session{
		ID:        fmt.Sprintf("sess-%d", s.seq),
		UserA:     userA,
		UserB:     userB,
		StartedAt: time.Now(),
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *fakeSessionStore) FindByUser(id int64) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.Has(id) {
			cp := *sess
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeSessionStore) Delete(sessionID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *fakeSessionStore) ActiveUserIDs() (map[int64]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	busy := make(map[int64]bool)
	for _, sess := range s.sessions {
		busy[sess.UserA] = true
		busy[sess.UserB] = true
	}
	return busy, nil
}

func (s *fakeSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type sentText struct {
	ChatID int64
	Text   string
}

type sentContent struct {
	ChatID  int64
	Content core.Content
}

type forwarded struct {
	ToChatID   int64
	FromChatID int64
	MessageID  int
}

type prompted struct {
	ChatID  int64
	Text    string
	Prefix  string
	Options []core.Option
}

type fakeTransport struct {
	mu       sync.Mutex
	texts    []sentText
	contents []sentContent
	forwards []forwarded
	prompts  []prompted

	sendTextErr    error
	sendContentErr error
}

func (t *fakeTransport) SendText(chatID int64, text string) error {
	if t.sendTextErr != nil {
		return t.sendTextErr
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.texts = append(t.texts, sentText{ChatID: chatID, Text: text})
	return nil
}

func (t *fakeTransport) SendContent(chatID int64, content core.Content) error {
	if t.sendContentErr != nil {
		return t.sendContentErr
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.contents = append(t.contents, sentContent{ChatID: chatID, Content: content})
	return nil
}

func (t *fakeTransport) Forward(toChatID, fromChatID int64, messageID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.forwards = append(t.forwards, forwarded{ToChatID: toChatID, FromChatID: fromChatID, MessageID: messageID})
	return nil
}

func (t *fakeTransport) PromptChoice(chatID int64, text string, prefix string, options []core.Option) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prompts = append(t.prompts, prompted{ChatID: chatID, Text: text, Prefix: prefix, Options: options})
	return nil
}

func (t *fakeTransport) textsFor(chatID int64) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []string
	for _, s := range t.texts {
		if s.ChatID == chatID {
			out = append(out, s.Text)
		}
	}
	return out
}

func (t *fakeTransport) lastPrompt() *prompted {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.prompts) == 0 {
		return nil
	}
	p := t.prompts[len(t.prompts)-1]
	return &p
}
