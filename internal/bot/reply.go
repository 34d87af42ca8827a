package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexYaroshenko/tgwire/internal/markup"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

var ErrNoChat = errors.New("bot: event has no chat to reply to")

// Reply sends an HTML message to the event's chat. If Telegram rejects the
// markup, the text is stripped to plain and sent once more without a parse
// mode.
func Reply(ctx context.Context, ev Event, text string, kb *telegram.InlineKeyboardMarkup) (*telegram.Message, error) {
	api := ev.API()
	if api == nil {
		return nil, errors.New("bot: no api client")
	}
	chatID := ev.StateKey().ChatID
	if chatID == 0 {
		return nil, ErrNoChat
	}

	p := telegram.SendMessageParams{
		ChatID:    telegram.ChatIDInt(chatID),
		Text:      text,
		ParseMode: telegram.ParseModeHTML,
	}
	if kb != nil {
		p.ReplyMarkup = kb
	}
	msg, err := api.SendMessage(ctx, p)
	if err == nil || !isEntityError(err) {
		return msg, err
	}

	plain, perr := markup.PlainText(text)
	if perr != nil {
		return nil, fmt.Errorf("bot: reply fallback: %w", perr)
	}
	p.Text = plain
	p.ParseMode = ""
	return api.SendMessage(ctx, p)
}

func isEntityError(err error) bool {
	var apiErr *telegram.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == 400 && strings.Contains(strings.ToLower(apiErr.Description), "can't parse entities")
}
