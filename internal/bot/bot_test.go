package bot

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/AlexYaroshenko/tgwire/internal/store"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

// fakeAPI answers sendMessage and records every request body.
type fakeAPI struct {
	mu     sync.Mutex
	sent   []map[string]any
	reject func(params map[string]any) bool
	srv    *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var params map[string]any
		_ = json.Unmarshal(body, &params)
		f.mu.Lock()
		f.sent = append(f.sent, params)
		reject := f.reject
		f.mu.Unlock()
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			w.Write([]byte(`{"ok": false, "error_code": 404, "description": "Not Found"}`))
			return
		}
		if reject != nil && reject(params) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "error_code": 400, "description": "Bad Request: can't parse entities: unsupported start tag \"span\""}`))
			return
		}
		w.Write([]byte(`{"ok": true, "result": {"message_id": 100, "chat": {"id": 1}, "text": "ok"}}`))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) client() *telegram.Client {
	return telegram.NewClient("tok", telegram.WithAPIURL(f.srv.URL))
}

func (f *fakeAPI) requests() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.sent...)
}

func TestReply(t *testing.T) {
	api := newFakeAPI(t)
	c := &Composer{API: api.client()}
	ev := c.Compose(envelope(t, `{"update_id": 1, "message": {"message_id": 1, "chat": {"id": 55}, "from": {"id": 1}, "text": "hi"}}`))

	msg, err := Reply(context.Background(), ev, "<b>hello</b>", telegram.InlineKeyboard(
		[]telegram.InlineKeyboardButton{telegram.CallbackButton("Yes", "vote:yes")},
	))
	require.NoError(t, err)
	assert.Equal(t, int64(100), telegram.Deref(msg.MessageID))

	reqs := api.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, float64(55), reqs[0]["chat_id"])
	assert.Equal(t, "HTML", reqs[0]["parse_mode"])
	assert.NotNil(t, reqs[0]["reply_markup"])
}

func TestReplyFallsBackToPlainText(t *testing.T) {
	api := newFakeAPI(t)
	api.reject = func(p map[string]any) bool { return p["parse_mode"] == "HTML" }
	c := &Composer{API: api.client()}
	ev := c.Compose(envelope(t, `{"update_id": 1, "message": {"chat": {"id": 55}, "from": {"id": 1}}}`))

	_, err := Reply(context.Background(), ev, `<span>total</span> 1 &lt; 2`, nil)
	require.NoError(t, err)

	reqs := api.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "total 1 < 2", reqs[1]["text"])
	_, hasMode := reqs[1]["parse_mode"]
	assert.False(t, hasMode)
}

func TestReplyErrors(t *testing.T) {
	ctx := context.Background()
	_, err := Reply(ctx, eventOf(t, textMsg), "x", nil)
	assert.Error(t, err, "no client")

	api := newFakeAPI(t)
	c := &Composer{API: api.client()}
	_, err = Reply(ctx, c.Compose(envelope(t, `{"update_id": 1, "poll": {"id": "p"}}`)), "x", nil)
	assert.ErrorIs(t, err, ErrNoChat)
	assert.Empty(t, api.requests())
}

func TestBotHandle(t *testing.T) {
	st := store.NewMemory()
	r := NewRouter()
	Handle(r, telegram.UpdateMessage, func(ctx context.Context, u *MessageUpdate) error {
		return u.State().Save(ctx, "seen", map[string]string{"text": telegram.Deref(u.Payload.Text)})
	})
	r.On("panics", OfType(telegram.UpdateCallbackQuery), HandlerFunc(func(context.Context, Event) error {
		panic("boom")
	}))
	b := New(r, st, nil, zaptest.NewLogger(t))

	ctx := context.Background()
	require.NoError(t, b.Handle(ctx, envelope(t, textMsg)))
	saved, err := st.GetState(ctx, "1:1")
	require.NoError(t, err)
	assert.Equal(t, "just text", saved.Data["text"])

	err = b.Handle(ctx, envelope(t, callback))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	assert.NoError(t, b.Handle(ctx, envelope(t, `{"update_id": 8}`)), "unrouted updates are ignored")
}

func TestBotRunContinuesAfterFailure(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var mu sync.Mutex
	var seen []int64
	errBad := errors.New("bad")
	r := NewRouter().On("all", Any(), HandlerFunc(func(_ context.Context, ev Event) error {
		mu.Lock()
		seen = append(seen, ev.ID())
		mu.Unlock()
		if ev.ID() == 1 {
			return errBad
		}
		return nil
	}))
	b := New(r, nil, nil, zaptest.NewLogger(t))

	in := make(chan *telegram.Envelope, 3)
	in <- envelope(t, startMsg)
	in <- envelope(t, textMsg)
	in <- envelope(t, callback)
	close(in)

	done := make(chan struct{})
	go func() {
		b.Run(context.Background(), in)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after input closed")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int64{1, 2, 4}, seen)
}

func TestBotRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	b := New(NewRouter(), nil, nil, nil)
	done := make(chan struct{})
	go func() {
		b.Run(ctx, make(chan *telegram.Envelope))
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
