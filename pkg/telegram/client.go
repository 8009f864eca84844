package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org/bot"

type Client struct {
	Token      string
	HttpClient *http.Client
	BaseURL    string
}

func NewClient(token string) *Client {
	return &Client{
		Token: token,
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: telegramAPIBase,
	}
}

func (c *Client) GetUpdates(offset int) ([]Update, error) {
	url := fmt.Sprintf("%s%s/getUpdates?offset=%d&timeout=10", c.BaseURL, c.Token, offset)
	resp, err := c.HttpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updates: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse json response: %w", err)
	}

	if !apiResp.Ok {
		return nil, fmt.Errorf("telegram api error: %d %s", apiResp.ErrorCode, apiResp.Description)
	}

	return apiResp.Result, nil
}

// call posts a JSON payload to one Bot API method and returns the resulting
// message id, when the method produces a message.
func (c *Client) call(method string, payload interface{}) (int, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal error: %w", err)
	}

	url := fmt.Sprintf("%s%s/%s", c.BaseURL, c.Token, method)
	resp, err := c.HttpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var apiResp struct {
		Ok          bool    `json:"ok"`
		Result      Message `json:"result"`
		Description string  `json:"description"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return 0, nil
	}
	if !apiResp.Ok {
		return 0, fmt.Errorf("api error: %s", apiResp.Description)
	}
	return apiResp.Result.MessageID, nil
}

func (c *Client) SendMessage(chatID int64, text string) (int, error) {
	return c.SendMessageComplex(SendMessageRequest{
		ChatID: chatID,
		Text:   text,
	})
}

func (c *Client) SendMessageComplex(req SendMessageRequest) (int, error) {
	if req.ParseMode == "" {
		req.ParseMode = "HTML"
	}
	return c.call("sendMessage", req)
}

// mediaMethods maps a send method to the JSON field carrying the file id.
var mediaMethods = map[string]string{
	"sendPhoto":     "photo",
	"sendAudio":     "audio",
	"sendVideo":     "video",
	"sendDocument":  "document",
	"sendVoice":     "voice",
	"sendSticker":   "sticker",
	"sendAnimation": "animation",
	"sendVideoNote": "video_note",
}

// SendMedia re-sends a file by its file_id through the given Bot API method,
// keeping the caption when the method supports one.
func (c *Client) SendMedia(method string, req SendMediaRequest) (int, error) {
	field, ok := mediaMethods[method]
	if !ok {
		return 0, fmt.Errorf("unsupported media method: %s", method)
	}

	payload := map[string]interface{}{
		"chat_id": req.ChatID,
		field:     req.FileID,
	}
	// Stickers and video notes carry no caption.
	if req.Caption != "" && method != "sendSticker" && method != "sendVideoNote" {
		payload["caption"] = req.Caption
		if req.ParseMode != "" {
			payload["parse_mode"] = req.ParseMode
		}
	}
	return c.call(method, payload)
}

func (c *Client) SendContact(req SendContactRequest) (int, error) {
	return c.call("sendContact", req)
}

func (c *Client) SendLocation(req SendLocationRequest) (int, error) {
	return c.call("sendLocation", req)
}

func (c *Client) SendVenue(req SendVenueRequest) (int, error) {
	return c.call("sendVenue", req)
}

func (c *Client) ForwardMessage(toChatID, fromChatID int64, messageID int) (int, error) {
	return c.call("forwardMessage", ForwardMessageRequest{
		ChatID:     toChatID,
		FromChatID: fromChatID,
		MessageID:  messageID,
	})
}

func (c *Client) SendChatAction(chatID int64, action string) error {
	_, err := c.call("sendChatAction", SendChatActionRequest{ChatID: chatID, Action: action})
	return err
}

func (c *Client) EditMessageText(chatID int64, messageID int, text string, replyMarkup interface{}) error {
	req := struct {
		ChatID      int64       `json:"chat_id"`
		MessageID   int         `json:"message_id"`
		Text        string      `json:"text"`
		ParseMode   string      `json:"parse_mode"`
		ReplyMarkup interface{} `json:"reply_markup,omitempty"`
	}{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: replyMarkup,
	}
	_, err := c.call("editMessageText", req)
	return err
}

func (c *Client) AnswerCallbackQuery(callbackQueryID string, text string) {
	req := struct {
		CallbackQueryID string `json:"callback_query_id"`
		Text            string `json:"text,omitempty"`
	}{
		CallbackQueryID: callbackQueryID,
		Text:            text,
	}
	_, _ = c.call("answerCallbackQuery", req)
}

func (c *Client) SetMyCommands(commands []BotCommand, langCode string) error {
	_, err := c.call("setMyCommands", SetMyCommandsRequest{
		Commands:     commands,
		LanguageCode: langCode,
	})
	return err
}
