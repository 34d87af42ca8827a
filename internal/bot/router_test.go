package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

func eventOf(t *testing.T, raw string) Event {
	t.Helper()
	return (&Composer{}).Compose(envelope(t, raw))
}

const (
	startMsg  = `{"update_id": 1, "message": {"message_id": 1, "chat": {"id": 1}, "from": {"id": 1}, "text": "/start@tgwire_bot deep link"}}`
	textMsg   = `{"update_id": 2, "message": {"message_id": 2, "chat": {"id": 1}, "from": {"id": 1}, "text": "just text"}}`
	editedCmd = `{"update_id": 3, "edited_message": {"message_id": 1, "chat": {"id": 1}, "from": {"id": 1}, "text": "/start"}}`
	callback  = `{"update_id": 4, "callback_query": {"id": "q", "from": {"id": 1}, "data": "vote:yes"}}`
)

func TestCommandOf(t *testing.T) {
	cmd, args, ok := CommandOf(eventOf(t, startMsg))
	require.True(t, ok)
	assert.Equal(t, "start", cmd)
	assert.Equal(t, "deep link", args)

	_, _, ok = CommandOf(eventOf(t, textMsg))
	assert.False(t, ok)
	_, _, ok = CommandOf(eventOf(t, editedCmd))
	assert.False(t, ok, "edited messages are not commands")
	_, _, ok = CommandOf(eventOf(t, callback))
	assert.False(t, ok)
	_, _, ok = CommandOf(eventOf(t, `{"update_id": 5, "message": {"text": "/ nothing"}}`))
	assert.False(t, ok)
}

func TestMatchers(t *testing.T) {
	start, text, edited, cb := eventOf(t, startMsg), eventOf(t, textMsg), eventOf(t, editedCmd), eventOf(t, callback)

	assert.True(t, Command("start")(start))
	assert.True(t, Command("/START")(start))
	assert.False(t, Command("stop")(start))
	assert.False(t, Command("start")(edited))

	assert.True(t, TextMessage()(text))
	assert.False(t, TextMessage()(start))
	assert.False(t, TextMessage()(edited))

	assert.True(t, CallbackData("vote:")(cb))
	assert.False(t, CallbackData("poll:")(cb))
	assert.False(t, CallbackData("")(text))

	assert.True(t, OfType(telegram.UpdateEditedMessage, telegram.UpdateCallbackQuery)(edited))
	assert.False(t, OfType(telegram.UpdateEditedMessage)(text))
	assert.True(t, Any()(cb))
}

func TestRouterFirstMatchWins(t *testing.T) {
	var got []string
	record := func(name string) Handler {
		return HandlerFunc(func(context.Context, Event) error {
			got = append(got, name)
			return nil
		})
	}
	r := NewRouter().
		On("start", Command("start"), record("start")).
		On("messages", OfType(telegram.UpdateMessage), record("messages")).
		On("everything", Any(), record("everything"))

	ctx := context.Background()
	require.NoError(t, r.Dispatch(ctx, eventOf(t, startMsg)))
	require.NoError(t, r.Dispatch(ctx, eventOf(t, textMsg)))
	require.NoError(t, r.Dispatch(ctx, eventOf(t, callback)))
	assert.Equal(t, []string{"start", "messages", "everything"}, got)
}

func TestRouterFallback(t *testing.T) {
	ctx := context.Background()
	r := NewRouter().On("cb", OfType(telegram.UpdateCallbackQuery), HandlerFunc(nil))

	name, _, ok := r.Match(eventOf(t, textMsg))
	assert.False(t, ok)
	assert.Empty(t, name)
	assert.NoError(t, r.Dispatch(ctx, eventOf(t, textMsg)))

	errFallback := errors.New("fallback ran")
	r.Fallback(HandlerFunc(func(context.Context, Event) error { return errFallback }))
	name, _, ok = r.Match(eventOf(t, textMsg))
	assert.True(t, ok)
	assert.Equal(t, "fallback", name)
	assert.ErrorIs(t, r.Dispatch(ctx, eventOf(t, textMsg)), errFallback)
	assert.NoError(t, r.Dispatch(ctx, eventOf(t, callback)))
}

func TestHandleTyped(t *testing.T) {
	var edited, member string
	r := NewRouter()
	Handle(r, telegram.UpdateEditedMessage, func(_ context.Context, u *MessageUpdate) error {
		edited = telegram.Deref(u.Payload.Text)
		return nil
	})
	Handle(r, telegram.UpdateMyChatMember, func(_ context.Context, u *ChatMemberUpdate) error {
		member = telegram.Deref(u.Payload.NewChatMember.(*telegram.ChatMemberBanned).Status)
		return nil
	})

	ctx := context.Background()
	require.NoError(t, r.Dispatch(ctx, eventOf(t, textMsg)))
	assert.Empty(t, edited, "plain message must not reach the edited handler")
	require.NoError(t, r.Dispatch(ctx, eventOf(t, editedCmd)))
	assert.Equal(t, "/start", edited)

	require.NoError(t, r.Dispatch(ctx, eventOf(t, `{"update_id": 9, "my_chat_member": {"chat": {"id": 1}, "from": {"id": 2}, "date": 0, "old_chat_member": {"status": "member", "user": {"id": 3}}, "new_chat_member": {"status": "kicked", "user": {"id": 3}, "until_date": 0}}}`)))
	assert.Equal(t, "kicked", member)
}
