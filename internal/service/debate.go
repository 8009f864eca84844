package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/i18n"
)

// Telegram caps messages at 4096 chars; leave headroom for the header.
const debateTranscriptLimit = 3800

// Debate runs a short coder-vs-reviewer exchange between two hosted models
// and replies with the transcript. It shares no state with the pairing core.
type Debate struct {
	llm           Completer
	coderModel    string
	reviewerModel string
	rounds        int
	bot           Transport
	tr            *i18n.Translator
	log           *slog.Logger
}

func NewDebate(llm Completer, coderModel, reviewerModel string, rounds int, bot Transport, tr *i18n.Translator, log *slog.Logger) *Debate {
	return &Debate{
		llm:           llm,
		coderModel:    coderModel,
		reviewerModel: reviewerModel,
		rounds:        rounds,
		bot:           bot,
		tr:            tr,
		log:           log,
	}
}

func (s *Debate) Enabled() bool { return s.llm != nil }

func (s *Debate) Run(ctx context.Context, u *core.User, task string) error {
	lang := u.Language

	if !s.Enabled() {
		return s.bot.SendText(u.TelegramID, s.tr.Get(lang, "debate_disabled"))
	}

	task = strings.TrimSpace(task)
	if task == "" {
		_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "debate_usage"))
		return core.ErrValidation
	}

	_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "debate_wait"))

	transcript := fmt.Sprintf("Task: %s", task)
	for i := 0; i < s.rounds; i++ {
		coderMsg, err := s.llm.Complete(ctx, s.coderModel, transcript)
		if err != nil {
			_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "generic_error"))
			return err
		}
		transcript += "\n\nCoder: " + coderMsg

		reviewerMsg, err := s.llm.Complete(ctx, s.reviewerModel, transcript)
		if err != nil {
			_ = s.bot.SendText(u.TelegramID, s.tr.Get(lang, "generic_error"))
			return err
		}
		transcript += "\n\nReviewer: " + reviewerMsg
	}

	if runes := []rune(transcript); len(runes) > debateTranscriptLimit {
		transcript = string(runes[:debateTranscriptLimit]) + "…"
	}

	s.log.Info("debate finished", "user", u.TelegramID, "rounds", s.rounds)
	return s.bot.SendText(u.TelegramID, s.tr.Get(lang, "debate_header")+"\n\n"+transcript)
}
