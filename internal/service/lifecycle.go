package service

import (
	"log/slog"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/i18n"
)

// Lifecycle terminates sessions. Termination is the only path back to
// matchmaking eligibility for both participants.
type Lifecycle struct {
	users    UserStore
	sessions SessionStore
	registry *Registry
	bot      Transport
	tr       *i18n.Translator
	log      *slog.Logger
}

func NewLifecycle(users UserStore, sessions SessionStore, registry *Registry, bot Transport, tr *i18n.Translator, log *slog.Logger) *Lifecycle {
	return &Lifecycle{
		users:    users,
		sessions: sessions,
		registry: registry,
		bot:      bot,
		tr:       tr,
		log:      log,
	}
}

// End removes the session containing the user, notifies both parties and
// resets both cursors. Calling it again after removal reports
// ErrNotInSession cleanly.
func (s *Lifecycle) End(u *core.User) (*core.Session, error) {
	s.registry.LockPairing()
	defer s.registry.UnlockPairing()

	session, err := s.sessions.FindByUser(u.TelegramID)
	if err != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "generic_error"))
		return nil, err
	}
	if session == nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "not_in_session"))
		return nil, core.ErrNotInSession
	}

	if err := s.sessions.Delete(session.ID); err != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "generic_error"))
		return nil, err
	}

	partnerID := session.OtherOf(u.TelegramID)
	s.registry.SetCursor(u.TelegramID, core.StateProfileComplete)
	s.registry.SetCursor(partnerID, core.StateProfileComplete)

	_ = s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "chat_ended"))

	partnerLang := ""
	if partner, err := s.users.GetByTelegramID(partnerID); err == nil && partner != nil {
		partnerLang = partner.Language
	}
	_ = s.bot.SendText(partnerID, s.tr.Get(partnerLang, "partner_left"))

	s.log.Info("session ended", "session", session.ID, "by", u.TelegramID)
	return session, nil
}
