package service

import (
	"fmt"
	"log/slog"
	"math/rand"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/i18n"
)

// Matchmaker pairs a requesting user with one uniformly random eligible
// candidate and establishes the session.
type Matchmaker struct {
	users    UserStore
	sessions SessionStore
	registry *Registry
	bot      Transport
	tr       *i18n.Translator
	log      *slog.Logger
}

func NewMatchmaker(users UserStore, sessions SessionStore, registry *Registry, bot Transport, tr *i18n.Translator, log *slog.Logger) *Matchmaker {
	return &Matchmaker{
		users:    users,
		sessions: sessions,
		registry: registry,
		bot:      bot,
		tr:       tr,
		log:      log,
	}
}

// FindPartner selects a partner for the requester and creates the session.
// There is no waiting list: when nobody is eligible the requester stays
// unmatched and must re-issue the request.
func (s *Matchmaker) FindPartner(u *core.User) (*core.Session, error) {
	lang := u.Language

	if u.IsBanned {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "banned_notice"))
		return nil, core.ErrIneligible
	}
	if !u.ProfileComplete() {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "profile_incomplete"))
		return nil, core.ErrIneligible
	}

	// Candidate selection and session creation form one critical section;
	// see Registry.
	s.registry.LockPairing()
	defer s.registry.UnlockPairing()

	existing, err := s.sessions.FindByUser(u.TelegramID)
	if err != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "generic_error"))
		return nil, err
	}
	if existing != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "already_chatting"))
		return nil, core.ErrIneligible
	}

	candidates, err := s.users.ListEligible(u.TelegramID)
	if err != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "generic_error"))
		return nil, err
	}
	busy, err := s.sessions.ActiveUserIDs()
	if err != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "generic_error"))
		return nil, err
	}

	free := candidates[:0]
	for _, c := range candidates {
		if !busy[c.TelegramID] {
			free = append(free, c)
		}
	}

	if len(free) == 0 {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "no_partner"))
		return nil, core.ErrNoPartner
	}

	// VIP is stored and shown on the profile card but takes no part in
	// selection today.
	partner := free[rand.Intn(len(free))]

	session, err := s.sessions.Create(u.TelegramID, partner.TelegramID)
	if err != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "generic_error"))
		return nil, err
	}

	s.registry.SetCursor(u.TelegramID, core.StateInSession)
	s.registry.SetCursor(partner.TelegramID, core.StateInSession)

	s.notifyMatch(u, &partner)
	s.notifyMatch(&partner, u)

	s.log.Info("match made", "session", session.ID, "user_a", u.TelegramID, "user_b", partner.TelegramID)
	return session, nil
}

func (s *Matchmaker) notifyMatch(receiver, partner *core.User) {
	lang := receiver.Language

	gender := partner.Gender
	for _, g := range core.AvailableGenders {
		if g.Code == partner.Gender {
			gender = fmt.Sprintf("%s %s", g.Icon, s.tr.Get(lang, g.Label))
		}
	}

	name := partner.FirstName
	if partner.IsVIP {
		name += " 🌟"
	}

	card := fmt.Sprintf("%s\n\n", s.tr.Get(lang, "match_title"))
	card += fmt.Sprintf("👤 %s: %s\n", s.tr.Get(lang, "match_partner"), name)
	card += fmt.Sprintf("🚻 %s: %s\n", s.tr.Get(lang, "match_gender"), gender)
	card += fmt.Sprintf("🗺 %s: %s\n", s.tr.Get(lang, "match_continent"), partner.Continent)
	card += fmt.Sprintf("🎂 %s: %d\n\n", s.tr.Get(lang, "match_age"), partner.Age)
	card += s.tr.Get(lang, "match_tip")

	if err := s.bot.SendText(receiver.TelegramID, card); err != nil {
		s.log.Error("match notification failed", "user", receiver.TelegramID, "err", err)
	}
}
