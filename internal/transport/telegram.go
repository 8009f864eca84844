package transport

import (
	"fmt"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/telegram"
)

// Telegram adapts the Bot API client to the transport contract the services
// consume.
type Telegram struct {
	client *telegram.Client
}

func New(client *telegram.Client) *Telegram {
	return &Telegram{client: client}
}

func (t *Telegram) SendText(chatID int64, text string) error {
	_, err := t.client.SendMessage(chatID, text)
	return err
}

// contentMethods maps a relayable kind to its Bot API send method.
var contentMethods = map[core.ContentKind]string{
	core.ContentPhoto:     "sendPhoto",
	core.ContentAudio:     "sendAudio",
	core.ContentVideo:     "sendVideo",
	core.ContentDocument:  "sendDocument",
	core.ContentVoice:     "sendVoice",
	core.ContentSticker:   "sendSticker",
	core.ContentAnimation: "sendAnimation",
	core.ContentVideoNote: "sendVideoNote",
}

// SendContent delivers one tagged content value through the primitive its
// category calls for, preserving captions where the category has them.
func (t *Telegram) SendContent(chatID int64, content core.Content) error {
	switch content.Kind {
	case core.ContentText:
		return t.SendText(chatID, content.Text)

	case core.ContentContact:
		if content.Contact == nil {
			return fmt.Errorf("contact content without contact payload")
		}
		_, err := t.client.SendContact(telegram.SendContactRequest{
			ChatID:      chatID,
			PhoneNumber: content.Contact.PhoneNumber,
			FirstName:   content.Contact.FirstName,
			LastName:    content.Contact.LastName,
		})
		return err

	case core.ContentLocation:
		if content.Location == nil {
			return fmt.Errorf("location content without location payload")
		}
		_, err := t.client.SendLocation(telegram.SendLocationRequest{
			ChatID:    chatID,
			Latitude:  content.Location.Latitude,
			Longitude: content.Location.Longitude,
		})
		return err

	case core.ContentVenue:
		if content.Venue == nil {
			return fmt.Errorf("venue content without venue payload")
		}
		_, err := t.client.SendVenue(telegram.SendVenueRequest{
			ChatID:    chatID,
			Latitude:  content.Venue.Location.Latitude,
			Longitude: content.Venue.Location.Longitude,
			Title:     content.Venue.Title,
			Address:   content.Venue.Address,
		})
		return err
	}

	method, ok := contentMethods[content.Kind]
	if !ok {
		return fmt.Errorf("no send primitive for content kind %q", content.Kind)
	}
	_, err := t.client.SendMedia(method, telegram.SendMediaRequest{
		ChatID:  chatID,
		FileID:  content.FileID,
		Caption: content.Caption,
	})
	return err
}

func (t *Telegram) Forward(toChatID, fromChatID int64, messageID int) error {
	_, err := t.client.ForwardMessage(toChatID, fromChatID, messageID)
	return err
}

// PromptChoice renders the options as an inline keyboard, two buttons per
// row, with callback data prefix:code.
func (t *Telegram) PromptChoice(chatID int64, text string, prefix string, options []core.Option) error {
	var rows [][]telegram.InlineKeyboardButton
	var row []telegram.InlineKeyboardButton

	for _, o := range options {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         o.Label,
			CallbackData: prefix + ":" + o.Code,
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	_, err := t.client.SendMessageComplex(telegram.SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: telegram.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	return err
}
