package handler

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"anonpairbot/config"
	"anonpairbot/internal/repository"
	"anonpairbot/pkg/i18n"
	"anonpairbot/pkg/telegram"
)

// AdminHandler serves the administrative surface: ban/unban/grant-VIP/stats.
// Each command is a direct single-field store mutation with a fixed-format
// acknowledgment; malformed arguments produce a usage string.
type AdminHandler struct {
	Bot      *telegram.Client
	Users    *repository.UserRepository
	Sessions *repository.SessionRepository
	Tr       *i18n.Translator
	Cfg      *config.Config
	Log      *slog.Logger
}

func NewAdminHandler(bot *telegram.Client, users *repository.UserRepository, sessions *repository.SessionRepository, tr *i18n.Translator, cfg *config.Config, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		Bot:      bot,
		Users:    users,
		Sessions: sessions,
		Tr:       tr,
		Cfg:      cfg,
		Log:      log,
	}
}

// IsAdmin checks the sender against the single authorized identity.
func (h *AdminHandler) IsAdmin(userID int64) bool {
	return h.Cfg.AdminID != 0 && userID == h.Cfg.AdminID
}

func (h *AdminHandler) HandleCommand(msg *telegram.Message) {
	args := strings.Fields(msg.Text)
	chatID := msg.Chat.ID

	switch args[0] {
	case "/ban":
		h.setBanned(chatID, args, true)
	case "/unban":
		h.setBanned(chatID, args, false)
	case "/vip":
		h.grantVIP(chatID, args)
	case "/stats":
		h.stats(chatID)
	}
}

func (h *AdminHandler) setBanned(chatID int64, args []string, banned bool) {
	usage := "⚠️ Usage: /ban <user_id>"
	if !banned {
		usage = "⚠️ Usage: /unban <user_id>"
	}
	if len(args) < 2 {
		_, _ = h.Bot.SendMessage(chatID, usage)
		return
	}
	targetID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		_, _ = h.Bot.SendMessage(chatID, usage)
		return
	}

	user, err := h.Users.GetByTelegramID(targetID)
	if err != nil || user == nil {
		_, _ = h.Bot.SendMessage(chatID, "❌ User not found.")
		return
	}

	user.IsBanned = banned
	if err := h.Users.Update(user); err != nil {
		_, _ = h.Bot.SendMessage(chatID, "❌ Store update failed.")
		return
	}

	if banned {
		_, _ = h.Bot.SendMessage(chatID, fmt.Sprintf("🚫 User %d banned.", targetID))
		_, _ = h.Bot.SendMessage(targetID, h.Tr.Get(user.Language, "banned_notice"))
		h.Log.Info("user banned", "user", targetID)
	} else {
		_, _ = h.Bot.SendMessage(chatID, fmt.Sprintf("✅ User %d unbanned.", targetID))
		_, _ = h.Bot.SendMessage(targetID, h.Tr.Get(user.Language, "unban_notice"))
		h.Log.Info("user unbanned", "user", targetID)
	}
}

func (h *AdminHandler) grantVIP(chatID int64, args []string) {
	const usage = "⚠️ Usage: /vip <user_id> <days>"
	if len(args) < 3 {
		_, _ = h.Bot.SendMessage(chatID, usage)
		return
	}

	targetID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		_, _ = h.Bot.SendMessage(chatID, usage)
		return
	}
	days, err := strconv.Atoi(args[2])
	if err != nil || days <= 0 {
		_, _ = h.Bot.SendMessage(chatID, usage)
		return
	}

	user, err := h.Users.GetByTelegramID(targetID)
	if err != nil || user == nil {
		_, _ = h.Bot.SendMessage(chatID, "❌ User not found.")
		return
	}

	expiry := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	user.IsVIP = true
	user.VipExpiresAt = &expiry
	if err := h.Users.Update(user); err != nil {
		_, _ = h.Bot.SendMessage(chatID, "❌ Store update failed.")
		return
	}

	_, _ = h.Bot.SendMessage(chatID, fmt.Sprintf("🌟 VIP granted to %d for %d days.", targetID, days))
	_, _ = h.Bot.SendMessage(targetID, h.Tr.Getf(user.Language, "vip_granted", days))
	h.Log.Info("vip granted", "user", targetID, "days", days)
}

func (h *AdminHandler) stats(chatID int64) {
	total, vips, banned, err := h.Users.Stats()
	if err != nil {
		_, _ = h.Bot.SendMessage(chatID, "❌ Store query failed.")
		return
	}
	active, err := h.Sessions.CountActive()
	if err != nil {
		_, _ = h.Bot.SendMessage(chatID, "❌ Store query failed.")
		return
	}

	text := fmt.Sprintf(
		"📊 <b>STATS</b>\n\n"+
			"👥 Total users: %d\n"+
			"💬 Active sessions: %d\n"+
			"🌟 VIP: %d\n"+
			"🚫 Banned: %d",
		total, active, vips, banned,
	)
	_, _ = h.Bot.SendMessage(chatID, text)
}
