package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/AlexYaroshenko/tgwire/internal/bot"
	"github.com/AlexYaroshenko/tgwire/internal/store"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

type call struct {
	method string
	params map[string]any
}

type fakeAPI struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeAPI) take() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.calls
	f.calls = nil
	return c
}

type harness struct {
	api   *fakeAPI
	store *store.MemoryStore
	bot   *bot.Bot
}

func newHarness(t *testing.T, admins ...telegram.ChatID) *harness {
	t.Helper()
	f := &fakeAPI{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var params map[string]any
		_ = json.Unmarshal(body, &params)
		f.mu.Lock()
		f.calls = append(f.calls, call{method: path.Base(r.URL.Path), params: params})
		f.mu.Unlock()
		if path.Base(r.URL.Path) == "sendMessage" {
			w.Write([]byte(`{"ok": true, "result": {"message_id": 1, "chat": {"id": 1}}}`))
			return
		}
		w.Write([]byte(`{"ok": true, "result": true}`))
	}))
	t.Cleanup(srv.Close)

	api := telegram.NewClient("tok", telegram.WithAPIURL(srv.URL))
	st := store.NewMemory()
	a := &app{api: api, store: st, admins: admins, logger: zaptest.NewLogger(t)}
	return &harness{api: f, store: st, bot: bot.New(a.router(), st, api, zaptest.NewLogger(t))}
}

func (h *harness) send(t *testing.T, raw string) []call {
	t.Helper()
	env, err := telegram.DecodeEnvelope([]byte(raw))
	require.NoError(t, err)
	require.NoError(t, h.bot.Handle(context.Background(), env))
	return h.api.take()
}

func text(s string) string {
	b, _ := json.Marshal(s)
	return `{"update_id": 1, "message": {"message_id": 1, "chat": {"id": 10, "type": "private"}, "from": {"id": 20, "first_name": "Ann", "language_code": "de"}, "text": ` + string(b) + `}}`
}

func TestStart(t *testing.T) {
	h := newHarness(t)
	calls := h.send(t, text("/start"))
	require.Len(t, calls, 1)
	assert.Equal(t, "sendMessage", calls[0].method)
	assert.Equal(t, float64(10), calls[0].params["chat_id"])
	assert.Contains(t, calls[0].params["text"], "Hallo Ann")

	c, err := h.store.GetChat(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, "Ann", c.FirstName)
	assert.Equal(t, "de", c.Language)

	calls = h.send(t, text("/start"))
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].params["text"], "Willkommen zurück")
}

func TestIDAndUnknown(t *testing.T) {
	h := newHarness(t)
	calls := h.send(t, text("/id"))
	require.Len(t, calls, 1)
	assert.Equal(t, "Chat-ID: 10\nBenutzer-ID: 20", calls[0].params["text"])

	calls = h.send(t, text("/frobnicate"))
	require.Len(t, calls, 1)
	assert.Equal(t, "Unbekannter Befehl. Sende /help.", calls[0].params["text"])

	assert.Empty(t, h.send(t, text("small talk")), "plain text outside a conversation is ignored")
}

func TestChatsForAdmins(t *testing.T) {
	h := newHarness(t, telegram.ChatIDInt(10))
	ctx := context.Background()
	h.send(t, text("/start"))
	require.NoError(t, h.store.UpsertChat(ctx, store.Chat{ChatID: "30", Username: "bob"}))
	require.NoError(t, h.store.UpsertChat(ctx, store.Chat{ChatID: "40", FirstName: "Gone"}))
	require.NoError(t, h.store.DeactivateChat(ctx, "40"))

	calls := h.send(t, text("/chats"))
	require.Len(t, calls, 1)
	assert.Equal(t, "Active chats: 2\nAnn (10)\n@bob (30)", calls[0].params["text"])

	other := newHarness(t, telegram.ChatIDInt(99))
	calls = other.send(t, text("/chats"))
	require.Len(t, calls, 1)
	assert.Equal(t, "Unbekannter Befehl. Sende /help.", calls[0].params["text"])
}

func TestRememberConversation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	calls := h.send(t, text("/remember"))
	require.Len(t, calls, 1)
	assert.Equal(t, "Was soll ich mir merken?", calls[0].params["text"])
	st, err := h.store.GetState(ctx, "10:20")
	require.NoError(t, err)
	assert.Equal(t, stateAwaitingNote, st.Name)

	calls = h.send(t, text("buy <milk>"))
	require.Len(t, calls, 1)
	assert.Equal(t, "Notiert.", calls[0].params["text"])

	calls = h.send(t, text("/recall"))
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].params["text"], "<b>buy &lt;milk&gt;</b>")
	assert.NotNil(t, calls[0].params["reply_markup"])

	calls = h.send(t, `{"update_id": 2, "callback_query": {"id": "cb1", "from": {"id": 20, "language_code": "en"}, "message": {"message_id": 5, "chat": {"id": 10}}, "data": "note:forget"}}`)
	require.Len(t, calls, 1)
	assert.Equal(t, "answerCallbackQuery", calls[0].method)
	assert.Equal(t, "cb1", calls[0].params["callback_query_id"])
	assert.Equal(t, "You picked Forget", calls[0].params["text"])

	_, err = h.store.GetState(ctx, "10:20")
	assert.ErrorIs(t, err, store.ErrNotFound)

	calls = h.send(t, text("/recall"))
	require.Len(t, calls, 1)
	assert.Equal(t, "Für dieses Gespräch ist nichts gespeichert.", calls[0].params["text"])
}

func TestRememberInline(t *testing.T) {
	h := newHarness(t)
	h.send(t, text("/remember call mom"))
	st, err := h.store.GetState(context.Background(), "10:20")
	require.NoError(t, err)
	assert.Equal(t, stateNote, st.Name)
	assert.Equal(t, "call mom", st.Data["text"])

	calls := h.send(t, text("/forget"))
	require.Len(t, calls, 1)
	assert.Equal(t, "Vergessen.", calls[0].params["text"])
}

func TestInlineQuery(t *testing.T) {
	h := newHarness(t)
	calls := h.send(t, `{"update_id": 3, "inline_query": {"id": "iq", "from": {"id": 20}, "query": " hello ", "offset": ""}}`)
	require.Len(t, calls, 1)
	assert.Equal(t, "answerInlineQuery", calls[0].method)
	results, ok := calls[0].params["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	article := results[0].(map[string]any)
	assert.Equal(t, "article", article["type"])
	assert.Equal(t, "hello", article["title"])

	calls = h.send(t, `{"update_id": 4, "inline_query": {"id": "iq2", "from": {"id": 20}, "query": ""}}`)
	require.Len(t, calls, 1)
	assert.Equal(t, []any{}, calls[0].params["results"])
}

func TestMyMembership(t *testing.T) {
	h := newHarness(t, telegram.ChatIDInt(99))
	ctx := context.Background()

	added := `{"update_id": 5, "my_chat_member": {"chat": {"id": -100, "type": "group", "title": "Climbers"}, "from": {"id": 20}, "date": 0,
		"old_chat_member": {"status": "left", "user": {"id": 1, "is_bot": true}},
		"new_chat_member": {"status": "member", "user": {"id": 1, "is_bot": true}}}}`
	calls := h.send(t, added)
	require.Len(t, calls, 1)
	assert.Equal(t, float64(99), calls[0].params["chat_id"])
	assert.Equal(t, "Bot added to Climbers", calls[0].params["text"])
	c, err := h.store.GetChat(ctx, "-100")
	require.NoError(t, err)
	assert.True(t, c.IsActive)

	kicked := `{"update_id": 6, "my_chat_member": {"chat": {"id": -100, "type": "group", "title": "Climbers"}, "from": {"id": 20}, "date": 0,
		"old_chat_member": {"status": "member", "user": {"id": 1, "is_bot": true}},
		"new_chat_member": {"status": "kicked", "user": {"id": 1, "is_bot": true}, "until_date": 0}}}`
	calls = h.send(t, kicked)
	require.Len(t, calls, 1)
	assert.Equal(t, "Bot removed from Climbers", calls[0].params["text"])
	c, err = h.store.GetChat(ctx, "-100")
	require.NoError(t, err)
	assert.False(t, c.IsActive)
}

func TestMembership(t *testing.T) {
	h := newHarness(t, telegram.ChatIDInt(99))
	joined := `{"update_id": 7, "chat_member": {"chat": {"id": -100, "title": "Climbers"}, "from": {"id": 30}, "date": 0,
		"old_chat_member": {"status": "left", "user": {"id": 30, "username": "bob"}},
		"new_chat_member": {"status": "member", "user": {"id": 30, "username": "bob"}}}}`
	calls := h.send(t, joined)
	require.Len(t, calls, 1)
	assert.Equal(t, "@bob joined Climbers", calls[0].params["text"])

	promoted := `{"update_id": 8, "chat_member": {"chat": {"id": -100, "title": "Climbers"}, "from": {"id": 30}, "date": 0,
		"old_chat_member": {"status": "member", "user": {"id": 30}},
		"new_chat_member": {"status": "administrator", "user": {"id": 30}, "can_be_edited": false}}}`
	assert.Empty(t, h.send(t, promoted), "changes between present states are not announced")
}
