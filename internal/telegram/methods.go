package telegram

import (
	"context"
	"fmt"
)

// ParseModeHTML is the parse mode replies use by default.
const ParseModeHTML = "HTML"

type GetUpdatesParams struct {
	Offset         int64
	Limit          int
	Timeout        int
	AllowedUpdates []UpdateType
}

// GetUpdates long-polls for updates. Each returned entry decodes on its
// own; see DecodeUpdates.
func (c *Client) GetUpdates(ctx context.Context, p GetUpdatesParams) ([]Decoded, error) {
	params := map[string]any{
		"timeout": p.Timeout,
	}
	if p.Offset != 0 {
		params["offset"] = p.Offset
	}
	if p.Limit > 0 {
		params["limit"] = p.Limit
	}
	if p.AllowedUpdates != nil {
		params["allowed_updates"] = updateKeyList(p.AllowedUpdates)
	}
	raw, err := c.Call(ctx, "getUpdates", params)
	if err != nil {
		return nil, err
	}
	return DecodeUpdates(raw)
}

func (c *Client) GetMe(ctx context.Context) (*User, error) {
	u, err := callInto[User](ctx, c, "getMe", nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type SetWebhookParams struct {
	URL                string
	SecretToken        string
	MaxConnections     int
	AllowedUpdates     []UpdateType
	DropPendingUpdates bool
}

func (c *Client) SetWebhook(ctx context.Context, p SetWebhookParams) error {
	params := map[string]any{
		"url":                  p.URL,
		"secret_token":         optString(p.SecretToken),
		"drop_pending_updates": optBool(p.DropPendingUpdates),
	}
	if p.MaxConnections > 0 {
		params["max_connections"] = p.MaxConnections
	}
	if p.AllowedUpdates != nil {
		params["allowed_updates"] = updateKeyList(p.AllowedUpdates)
	}
	return c.callOK(ctx, "setWebhook", params)
}

func (c *Client) DeleteWebhook(ctx context.Context, dropPending bool) error {
	return c.callOK(ctx, "deleteWebhook", map[string]any{
		"drop_pending_updates": optBool(dropPending),
	})
}

func (c *Client) GetWebhookInfo(ctx context.Context) (*WebhookInfo, error) {
	info, err := callInto[WebhookInfo](ctx, c, "getWebhookInfo", nil)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

type SendMessageParams struct {
	ChatID                ChatID
	Text                  string
	ParseMode             string
	DisableWebPagePreview bool
	DisableNotification   bool
	ReplyToMessageID      int64
	// ReplyMarkup is one of *InlineKeyboardMarkup, *ReplyKeyboardMarkup,
	// *ReplyKeyboardRemove or *ForceReply.
	ReplyMarkup any
}

func (c *Client) SendMessage(ctx context.Context, p SendMessageParams) (*Message, error) {
	params := map[string]any{
		"chat_id":                  p.ChatID,
		"text":                     p.Text,
		"parse_mode":               optString(p.ParseMode),
		"disable_web_page_preview": optBool(p.DisableWebPagePreview),
		"disable_notification":     optBool(p.DisableNotification),
		"reply_markup":             p.ReplyMarkup,
	}
	if p.ReplyToMessageID != 0 {
		params["reply_to_message_id"] = p.ReplyToMessageID
	}
	m, err := callInto[Message](ctx, c, "sendMessage", params)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, id, text string, showAlert bool) error {
	return c.callOK(ctx, "answerCallbackQuery", map[string]any{
		"callback_query_id": id,
		"text":              optString(text),
		"show_alert":        optBool(showAlert),
	})
}

func (c *Client) AnswerInlineQuery(ctx context.Context, id string, results []InlineQueryResult, cacheTime int) error {
	if results == nil {
		results = []InlineQueryResult{}
	}
	params := map[string]any{
		"inline_query_id": id,
		"results":         results,
	}
	if cacheTime > 0 {
		params["cache_time"] = cacheTime
	}
	return c.callOK(ctx, "answerInlineQuery", params)
}

// GetChatMember returns the membership of a user, resolved to its concrete
// variant (*ChatMemberOwner, *ChatMemberBanned, ...).
func (c *Client) GetChatMember(ctx context.Context, chat ChatID, userID int64) (ChatMember, error) {
	return callInto[ChatMember](ctx, c, "getChatMember", map[string]any{
		"chat_id": chat,
		"user_id": userID,
	})
}

// GetChatMenuButton returns the menu button of a private chat, or the
// default button when chatID is nil.
func (c *Client) GetChatMenuButton(ctx context.Context, chatID *int64) (MenuButton, error) {
	return callInto[MenuButton](ctx, c, "getChatMenuButton", map[string]any{
		"chat_id": chatID,
	})
}

func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand, scope BotCommandScope, languageCode string) error {
	return c.callOK(ctx, "setMyCommands", map[string]any{
		"commands":      commands,
		"scope":         scope,
		"language_code": optString(languageCode),
	})
}

func (c *Client) GetMyCommands(ctx context.Context, scope BotCommandScope, languageCode string) ([]BotCommand, error) {
	return callInto[[]BotCommand](ctx, c, "getMyCommands", map[string]any{
		"scope":         scope,
		"language_code": optString(languageCode),
	})
}

// callOK calls a method whose result is a bare true.
func (c *Client) callOK(ctx context.Context, method string, params map[string]any) error {
	ok, err := callInto[bool](ctx, c, method, params)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("telegram: %s: result is false", method)
	}
	return nil
}

func updateKeyList(types []UpdateType) []string {
	keys := make([]string, 0, len(types))
	for _, t := range types {
		if t != UpdateNone {
			keys = append(keys, t.String())
		}
	}
	return keys
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optBool(b bool) *bool {
	if !b {
		return nil
	}
	return &b
}
