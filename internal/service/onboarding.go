package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/i18n"
)

// Onboarding drives a new user through the language -> gender -> continent
// -> age steps. Every other command stays gated until the profile is
// complete.
type Onboarding struct {
	users    UserStore
	sessions SessionStore
	registry *Registry
	bot      Transport
	tr       *i18n.Translator
	log      *slog.Logger
}

func NewOnboarding(users UserStore, sessions SessionStore, registry *Registry, bot Transport, tr *i18n.Translator, log *slog.Logger) *Onboarding {
	return &Onboarding{
		users:    users,
		sessions: sessions,
		registry: registry,
		bot:      bot,
		tr:       tr,
		log:      log,
	}
}

// StateOf returns the user's cursor, rebuilding it from store state when the
// registry has no entry (fresh process, evicted entry).
func (s *Onboarding) StateOf(u *core.User) (core.State, error) {
	if st, ok := s.registry.Cursor(u.TelegramID); ok {
		return st, nil
	}

	st := u.OnboardingStep()
	if st == core.StateProfileComplete {
		sess, err := s.sessions.FindByUser(u.TelegramID)
		if err != nil {
			return "", err
		}
		if sess != nil {
			st = core.StateInSession
		}
	}
	s.registry.SetCursor(u.TelegramID, st)
	return st, nil
}

// Start handles the start command. Banned users short-circuit before any
// state transition; completed profiles get a status message instead of a
// restart.
func (s *Onboarding) Start(u *core.User) error {
	if u.IsBanned {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "banned_notice"))
		return core.ErrIneligible
	}

	st, err := s.StateOf(u)
	if err != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "generic_error"))
		return err
	}

	switch st {
	case core.StateInSession:
		return s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "status_chatting"))
	case core.StateProfileComplete:
		return s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "status_ready"))
	default:
		return s.Prompt(u)
	}
}

// Prompt re-presents the input request for the user's current step.
func (s *Onboarding) Prompt(u *core.User) error {
	st, err := s.StateOf(u)
	if err != nil {
		return err
	}
	lang := u.Language

	switch st {
	case core.StateLanguage:
		return s.bot.PromptChoice(u.TelegramID, s.tr.Get(lang, "ask_language"), "lang", displayOptions(core.AvailableLanguages))
	case core.StateGender:
		return s.bot.PromptChoice(u.TelegramID, s.tr.Get(lang, "ask_gender"), "gender", s.genderOptions(lang))
	case core.StateContinent:
		return s.bot.PromptChoice(u.TelegramID, s.tr.Get(lang, "ask_continent"), "cont", displayOptions(core.AvailableContinents))
	case core.StateAge:
		return s.bot.SendText(u.TelegramID, s.tr.Get(lang, "ask_age"))
	}
	return nil
}

// HandleChoice applies one button selection to the state machine. Stale
// callbacks (step does not match the cursor) and values outside the
// enumerated set are ignored, leaving the state unchanged.
func (s *Onboarding) HandleChoice(u *core.User, step core.State, code string) error {
	st, err := s.StateOf(u)
	if err != nil {
		return err
	}
	if st != step {
		return nil
	}

	switch step {
	case core.StateLanguage:
		if !core.ValidLanguage(code) {
			return nil
		}
		u.Language = code
	case core.StateGender:
		if !core.ValidGender(code) {
			return nil
		}
		u.Gender = code
	case core.StateContinent:
		if !core.ValidContinent(code) {
			return nil
		}
		u.Continent = code
	default:
		return nil
	}

	return s.advance(u)
}

// HandleAge applies free-text age input. Non-numeric input or an age outside
// (0, 100) re-prompts without mutating the stored age or the cursor.
func (s *Onboarding) HandleAge(u *core.User, text string) error {
	st, err := s.StateOf(u)
	if err != nil {
		return err
	}
	if st != core.StateAge {
		return nil
	}

	age, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil || !core.ValidAge(age) {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "age_invalid"))
		return core.ErrValidation
	}

	u.Age = age
	return s.advance(u)
}

// advance persists the freshly set field and moves the cursor to the next
// step, prompting for it or announcing completion.
func (s *Onboarding) advance(u *core.User) error {
	if err := s.users.Update(u); err != nil {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "generic_error"))
		return err
	}

	next := u.OnboardingStep()
	s.registry.SetCursor(u.TelegramID, next)

	if next == core.StateProfileComplete {
		s.log.Info("onboarding complete", "user", u.TelegramID)
		return s.bot.SendText(u.TelegramID, s.tr.Get(u.Language, "onboarding_done"))
	}
	return s.Prompt(u)
}

func (s *Onboarding) genderOptions(lang string) []core.Option {
	opts := make([]core.Option, 0, len(core.AvailableGenders))
	for _, g := range core.AvailableGenders {
		opts = append(opts, core.Option{
			Code:  g.Code,
			Label: fmt.Sprintf("%s %s", g.Icon, s.tr.Get(lang, g.Label)),
		})
	}
	return opts
}

func displayOptions(in []core.Option) []core.Option {
	opts := make([]core.Option, 0, len(in))
	for _, o := range in {
		opts = append(opts, core.Option{
			Code:  o.Code,
			Label: fmt.Sprintf("%s %s", o.Icon, o.Label),
		})
	}
	return opts
}
