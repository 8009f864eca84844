package service

import (
	"fmt"
	"log/slog"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/i18n"
)

// Relay forwards in-session content to the sender's partner, preserving the
// content category, and mirrors every exchange to the moderation channel.
type Relay struct {
	sessions   SessionStore
	bot        Transport
	tr         *i18n.Translator
	modChannel int64
	log        *slog.Logger
}

func NewRelay(sessions SessionStore, bot Transport, tr *i18n.Translator, modChannel int64, log *slog.Logger) *Relay {
	return &Relay{
		sessions:   sessions,
		bot:        bot,
		tr:         tr,
		modChannel: modChannel,
		log:        log,
	}
}

func (s *Relay) Relay(sender *core.User, content core.Content) error {
	session, err := s.sessions.FindByUser(sender.TelegramID)
	if err != nil {
		_ = s.bot.SendText(sender.TelegramID, s.tr.Get(sender.Language, "generic_error"))
		return err
	}
	if session == nil {
		_ = s.bot.SendText(sender.TelegramID, s.tr.Get(sender.Language, "not_in_session"))
		return core.ErrNotInSession
	}

	partnerID := session.OtherOf(sender.TelegramID)

	var sendErr error
	switch {
	case content.Kind == core.ContentText:
		sendErr = s.bot.SendText(partnerID, content.Text)
	case content.Kind == core.ContentPoll:
		// Polls cannot be re-sent by reference; forwarding is the
		// category-appropriate primitive for them.
		sendErr = s.bot.Forward(partnerID, content.Ref.ChatID, content.Ref.MessageID)
	case content.Kind.Relayable():
		sendErr = s.bot.SendContent(partnerID, content)
	default:
		// Unsupported categories are dropped from the partner-facing relay.
		s.log.Warn("dropping unsupported content", "from", sender.TelegramID, "kind", string(content.Kind))
	}

	if sendErr != nil {
		s.log.Error("relay delivery failed", "from", sender.TelegramID, "to", partnerID, "err", sendErr)
		_ = s.bot.SendText(sender.TelegramID, s.tr.Get(sender.Language, "generic_error"))
		return sendErr
	}

	s.mirror(sender.TelegramID, partnerID, content)
	return nil
}

// mirror copies the exchange to the moderation channel: text annotated with
// both identities, everything else as a forwarded copy of the original. A
// mirror failure never fails the relay itself.
func (s *Relay) mirror(senderID, partnerID int64, content core.Content) {
	var err error
	if content.Kind == core.ContentText {
		entry := fmt.Sprintf("User:%d → Partner:%d: %s", senderID, partnerID, content.Text)
		err = s.bot.SendText(s.modChannel, entry)
	} else {
		err = s.bot.Forward(s.modChannel, content.Ref.ChatID, content.Ref.MessageID)
	}
	if err != nil {
		s.log.Error("moderation mirror failed", "from", senderID, "err", err)
	}
}
