package main

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/AlexYaroshenko/tgwire/internal/bot"
	"github.com/AlexYaroshenko/tgwire/internal/i18n"
	"github.com/AlexYaroshenko/tgwire/internal/markup"
	"github.com/AlexYaroshenko/tgwire/internal/store"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

// Conversation states.
const (
	stateAwaitingNote = "awaiting_note"
	stateNote         = "note"
)

var commands = []telegram.BotCommand{
	{Command: telegram.Ptr("start"), Description: telegram.Ptr("Register this chat")},
	{Command: telegram.Ptr("help"), Description: telegram.Ptr("List commands")},
	{Command: telegram.Ptr("id"), Description: telegram.Ptr("Show chat and user ids")},
	{Command: telegram.Ptr("remember"), Description: telegram.Ptr("Store a note")},
	{Command: telegram.Ptr("recall"), Description: telegram.Ptr("Show the stored note")},
	{Command: telegram.Ptr("forget"), Description: telegram.Ptr("Clear the stored note")},
}

type app struct {
	api    *telegram.Client
	store  store.Store
	admins []telegram.ChatID
	logger *zap.Logger
}

func (a *app) router() *bot.Router {
	r := bot.NewRouter().
		On("start", bot.Command("start"), bot.HandlerFunc(a.start)).
		On("help", bot.Command("help"), bot.HandlerFunc(a.help)).
		On("id", bot.Command("id"), bot.HandlerFunc(a.id)).
		On("remember", bot.Command("remember"), bot.HandlerFunc(a.remember)).
		On("recall", bot.Command("recall"), bot.HandlerFunc(a.recall)).
		On("forget", bot.Command("forget"), bot.HandlerFunc(a.forget)).
		On("chats", bot.Command("chats"), bot.HandlerFunc(a.chats)).
		On("unknown command", isCommand, bot.HandlerFunc(a.unknown)).
		On("note text", bot.TextMessage(), bot.HandlerFunc(a.noteText)).
		On("note buttons", bot.CallbackData("note:"), bot.HandlerFunc(a.noteButton))
	bot.Handle(r, telegram.UpdateInlineQuery, a.inline)
	bot.Handle(r, telegram.UpdateMyChatMember, a.myMembership)
	bot.Handle(r, telegram.UpdateChatMember, a.membership)
	return r
}

func isCommand(ev bot.Event) bool {
	_, _, ok := bot.CommandOf(ev)
	return ok
}

func message(ev bot.Event) *telegram.Message {
	if u, ok := ev.(*bot.MessageUpdate); ok {
		return u.Payload
	}
	return nil
}

func lang(ev bot.Event) string {
	switch u := ev.(type) {
	case *bot.MessageUpdate:
		return i18n.ForUser(u.Payload.From)
	case *bot.CallbackQueryUpdate:
		return i18n.ForUser(u.Payload.From)
	}
	return "en"
}

func reply(ctx context.Context, ev bot.Event, text string) error {
	_, err := bot.Reply(ctx, ev, text, nil)
	return err
}

func (a *app) start(ctx context.Context, ev bot.Event) error {
	m := message(ev)
	l := lang(ev)
	chatID := strconv.FormatInt(ev.StateKey().ChatID, 10)

	key := "welcome"
	if _, err := a.store.GetChat(ctx, chatID); err == nil {
		key = "welcome_back"
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	c := store.Chat{ChatID: chatID, Language: l}
	if m.From != nil {
		c.Username = telegram.Deref(m.From.Username)
		c.FirstName = telegram.Deref(m.From.FirstName)
		c.LastName = telegram.Deref(m.From.LastName)
	}
	if err := a.store.UpsertChat(ctx, c); err != nil {
		return err
	}
	return reply(ctx, ev, i18n.Tf(l, key, markup.Escape(telegram.DisplayName(m.From))))
}

func (a *app) help(ctx context.Context, ev bot.Event) error {
	return reply(ctx, ev, markup.Escape(i18n.T(lang(ev), "help")))
}

func (a *app) id(ctx context.Context, ev bot.Event) error {
	k := ev.StateKey()
	return reply(ctx, ev, i18n.Tf(lang(ev), "your_id", k.ChatID, k.UserID))
}

// chats lists the active chats to an admin. Everyone else gets the unknown
// command reply, so the command stays out of the public list.
func (a *app) chats(ctx context.Context, ev bot.Event) error {
	if !a.isAdmin(ev.StateKey().ChatID) {
		return a.unknown(ctx, ev)
	}
	list, err := a.store.ListChats(ctx)
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("Active chats: " + strconv.Itoa(len(list)))
	for _, c := range list {
		b.WriteString("\n" + markup.Escape(chatLabel(c)) + " (" + c.ChatID + ")")
	}
	return reply(ctx, ev, b.String())
}

func (a *app) isAdmin(chatID int64) bool {
	for _, id := range a.admins {
		if n, ok := id.Int(); ok && n == chatID {
			return true
		}
	}
	return false
}

func chatLabel(c store.Chat) string {
	if c.Username != "" {
		return "@" + c.Username
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (a *app) unknown(ctx context.Context, ev bot.Event) error {
	return reply(ctx, ev, i18n.T(lang(ev), "unknown"))
}

// remember stores its argument as the note, or asks for the note when
// there is none.
func (a *app) remember(ctx context.Context, ev bot.Event) error {
	_, args, _ := bot.CommandOf(ev)
	l := lang(ev)
	if args == "" {
		if err := ev.State().Save(ctx, stateAwaitingNote, nil); err != nil {
			return err
		}
		return reply(ctx, ev, i18n.T(l, "remember_prompt"))
	}
	return a.saveNote(ctx, ev, args)
}

func (a *app) saveNote(ctx context.Context, ev bot.Event, note string) error {
	if err := ev.State().Save(ctx, stateNote, map[string]string{"text": note}); err != nil {
		return err
	}
	return reply(ctx, ev, i18n.T(lang(ev), "remembered"))
}

func (a *app) noteText(ctx context.Context, ev bot.Event) error {
	st, err := ev.State().Load(ctx)
	if err != nil {
		return err
	}
	if st.Name != stateAwaitingNote {
		return nil
	}
	return a.saveNote(ctx, ev, telegram.Deref(message(ev).Text))
}

func (a *app) recall(ctx context.Context, ev bot.Event) error {
	l := lang(ev)
	st, err := ev.State().Load(ctx)
	if err != nil {
		return err
	}
	if st.Name != stateNote {
		return reply(ctx, ev, i18n.T(l, "recall_empty"))
	}
	kb := telegram.InlineKeyboard([]telegram.InlineKeyboardButton{
		telegram.CallbackButton(i18n.T(l, "button_keep"), "note:keep"),
		telegram.CallbackButton(i18n.T(l, "button_forget"), "note:forget"),
	})
	_, err = bot.Reply(ctx, ev, i18n.Tf(l, "recall", markup.Bold(st.Data["text"])), kb)
	return err
}

func (a *app) forget(ctx context.Context, ev bot.Event) error {
	if err := ev.State().Reset(ctx); err != nil {
		return err
	}
	return reply(ctx, ev, i18n.T(lang(ev), "forgotten"))
}

func (a *app) noteButton(ctx context.Context, ev bot.Event) error {
	q := ev.(*bot.CallbackQueryUpdate).Payload
	l := lang(ev)
	choice := strings.TrimPrefix(telegram.Deref(q.Data), "note:")
	label := i18n.T(l, "button_"+choice)
	if choice == "forget" {
		if err := ev.State().Reset(ctx); err != nil {
			return err
		}
	}
	return ev.API().AnswerCallbackQuery(ctx, telegram.Deref(q.ID), i18n.Tf(l, "pressed", label), false)
}

// inline offers the query text back as a single article.
func (a *app) inline(ctx context.Context, u *bot.InlineQueryUpdate) error {
	text := strings.TrimSpace(telegram.Deref(u.Payload.Query))
	var results []telegram.InlineQueryResult
	if text != "" {
		results = append(results, telegram.Article("echo", text, text))
	}
	return u.API().AnswerInlineQuery(ctx, telegram.Deref(u.Payload.ID), results, 0)
}

// myMembership tracks the chats the bot belongs to.
func (a *app) myMembership(ctx context.Context, u *bot.ChatMemberUpdate) error {
	chat := u.Payload.Chat
	if chat == nil {
		return nil
	}
	chatID := strconv.FormatInt(u.StateKey().ChatID, 10)
	title := chatTitle(chat)

	if telegram.IsPresent(u.Payload.NewChatMember) {
		c := store.Chat{ChatID: chatID, Username: telegram.Deref(chat.Username), FirstName: title}
		if err := a.store.UpsertChat(ctx, c); err != nil {
			return err
		}
		a.notify(ctx, i18n.Tf("en", "bot_added", title))
		return nil
	}
	if err := a.store.DeactivateChat(ctx, chatID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	a.notify(ctx, i18n.Tf("en", "bot_removed", title))
	return nil
}

func (a *app) membership(ctx context.Context, u *bot.ChatMemberUpdate) error {
	was, is := telegram.IsPresent(u.Payload.OldChatMember), telegram.IsPresent(u.Payload.NewChatMember)
	if was == is || u.Payload.NewChatMember == nil {
		return nil
	}
	who := telegram.DisplayName(u.Payload.NewChatMember.MemberUser())
	key := "member_left"
	if is {
		key = "member_joined"
	}
	a.notify(ctx, i18n.Tf("en", key, who, chatTitle(u.Payload.Chat)))
	return nil
}

func chatTitle(c *telegram.Chat) string {
	if c == nil {
		return ""
	}
	if t := telegram.Deref(c.Title); t != "" {
		return t
	}
	if u := telegram.Deref(c.Username); u != "" {
		return "@" + u
	}
	return strconv.FormatInt(telegram.Deref(c.ID), 10)
}

// notify sends text to every admin chat. Failures are logged only.
func (a *app) notify(ctx context.Context, text string) {
	for _, id := range a.admins {
		_, err := a.api.SendMessage(ctx, telegram.SendMessageParams{
			ChatID:              id,
			Text:                text,
			DisableNotification: true,
		})
		if err != nil {
			a.logger.Warn("admin notification failed", zap.Stringer("chat", id), zap.Error(err))
		}
	}
}
