package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"anonpairbot/internal/core"
	"anonpairbot/internal/service"
	"anonpairbot/internal/transport"
	"anonpairbot/pkg/i18n"
	"anonpairbot/pkg/telegram"
)

type BotHandler struct {
	Bot        *telegram.Client
	Users      service.UserStore
	Onboarding *service.Onboarding
	Matchmaker *service.Matchmaker
	Lifecycle  *service.Lifecycle
	Relay      *service.Relay
	Debate     *service.Debate
	Admin      *AdminHandler
	Tr         *i18n.Translator
	Log        *slog.Logger
}

func NewBotHandler(bot *telegram.Client, users service.UserStore, onboarding *service.Onboarding,
	matchmaker *service.Matchmaker, lifecycle *service.Lifecycle, relay *service.Relay,
	debate *service.Debate, admin *AdminHandler, tr *i18n.Translator, log *slog.Logger) *BotHandler {
	return &BotHandler{
		Bot:        bot,
		Users:      users,
		Onboarding: onboarding,
		Matchmaker: matchmaker,
		Lifecycle:  lifecycle,
		Relay:      relay,
		Debate:     debate,
		Admin:      admin,
		Tr:         tr,
		Log:        log,
	}
}

func (h *BotHandler) HandleUpdate(update telegram.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message != nil {
		h.handleMessage(update.Message)
	}
}

func (h *BotHandler) handleMessage(msg *telegram.Message) {
	if msg.From == nil || msg.Chat == nil || msg.From.IsBot {
		return
	}

	user, err := h.ensureUser(msg.From)
	if err != nil {
		h.Log.Error("failed to resolve user", "user", msg.From.ID, "err", err)
		return
	}

	text := msg.Text

	if isAdminCommand(text) {
		if !h.Admin.IsAdmin(user.TelegramID) {
			_, _ = h.Bot.SendMessage(user.TelegramID, h.Tr.Get(user.Language, "unauthorized"))
			return
		}
		h.Admin.HandleCommand(msg)
		return
	}

	if user.IsBanned {
		_, _ = h.Bot.SendMessage(user.TelegramID, h.Tr.Get(user.Language, "banned_notice"))
		return
	}

	if text == "/start" {
		_ = h.Onboarding.Start(user)
		return
	}

	state, err := h.Onboarding.StateOf(user)
	if err != nil {
		h.Log.Error("failed to resolve state", "user", user.TelegramID, "err", err)
		_, _ = h.Bot.SendMessage(user.TelegramID, h.Tr.Get(user.Language, "generic_error"))
		return
	}

	// Everything but /start stays gated until the profile is complete.
	if state.Onboarding() {
		if state == core.StateAge && text != "" && !strings.HasPrefix(text, "/") {
			_ = h.Onboarding.HandleAge(user, text)
		} else {
			_ = h.Onboarding.Prompt(user)
		}
		return
	}

	switch {
	case text == "/find":
		_, _ = h.Matchmaker.FindPartner(user)
	case text == "/stop":
		_, _ = h.Lifecycle.End(user)
	case text == "/profile":
		h.sendProfile(user)
	case text == "/help":
		_, _ = h.Bot.SendMessage(user.TelegramID, h.Tr.Get(user.Language, "help_text"))
	case text == "/vip":
		_, _ = h.Bot.SendMessage(user.TelegramID, h.Tr.Get(user.Language, "vip_advert"))
	case strings.HasPrefix(text, "/debate"):
		if state == core.StateInSession {
			_, _ = h.Bot.SendMessage(user.TelegramID, h.Tr.Get(user.Language, "debate_busy"))
			return
		}
		task := strings.TrimSpace(strings.TrimPrefix(text, "/debate"))
		_ = h.Debate.Run(context.Background(), user, task)
	case strings.HasPrefix(text, "/"):
		_, _ = h.Bot.SendMessage(user.TelegramID, h.Tr.Get(user.Language, "help_text"))
	default:
		// Ordinary content. The relay itself answers when there is no
		// active session.
		content, _ := transport.Classify(msg)
		_ = h.Relay.Relay(user, content)
	}
}

func (h *BotHandler) handleCallback(cb *telegram.CallbackQuery) {
	h.Bot.AnswerCallbackQuery(cb.ID, "")

	if cb.From == nil {
		return
	}
	user, err := h.Users.GetByTelegramID(cb.From.ID)
	if err != nil || user == nil {
		return
	}
	if user.IsBanned {
		return
	}

	data := cb.Data
	switch {
	case strings.HasPrefix(data, "lang:"):
		_ = h.Onboarding.HandleChoice(user, core.StateLanguage, strings.TrimPrefix(data, "lang:"))
	case strings.HasPrefix(data, "gender:"):
		_ = h.Onboarding.HandleChoice(user, core.StateGender, strings.TrimPrefix(data, "gender:"))
	case strings.HasPrefix(data, "cont:"):
		_ = h.Onboarding.HandleChoice(user, core.StateContinent, strings.TrimPrefix(data, "cont:"))
	case data == "cmd:find":
		_, _ = h.Matchmaker.FindPartner(user)
	case data == "cmd:stop":
		_, _ = h.Lifecycle.End(user)
	}
}

// ensureUser fetches the stored record, creating it with unset profile
// fields on first contact.
func (h *BotHandler) ensureUser(from *telegram.User) (*core.User, error) {
	user, err := h.Users.GetByTelegramID(from.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &core.User{
			TelegramID: from.ID,
			Username:   from.Username,
			FirstName:  from.FirstName,
		}
		if err := h.Users.Create(user); err != nil {
			return nil, err
		}
		h.Log.Info("new user", "user", from.ID)
	}
	return user, nil
}

func (h *BotHandler) sendProfile(user *core.User) {
	lang := user.Language

	gender := user.Gender
	for _, g := range core.AvailableGenders {
		if g.Code == user.Gender {
			gender = fmt.Sprintf("%s %s", g.Icon, h.Tr.Get(lang, g.Label))
		}
	}

	status := h.Tr.Get(lang, "profile_status_free")
	if user.IsVIP {
		status = "🌟 VIP"
	}

	text := h.Tr.Getf(lang, "profile_view", user.FirstName, gender, user.Continent, user.Age, status)
	_, _ = h.Bot.SendMessage(user.TelegramID, text)
}

// isAdminCommand recognizes the administrative surface. A bare /vip is the
// user-facing advert, not the grant.
func isAdminCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "/ban", "/unban", "/stats":
		return true
	case "/vip":
		return len(fields) > 1
	}
	return false
}
