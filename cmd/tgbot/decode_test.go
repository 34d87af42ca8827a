package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		checkFunc func(t *testing.T, out string)
	}{
		{
			name:  "single update",
			input: `{"update_id": 1, "message": {"message_id": 2, "text": "hi"}}`,
			checkFunc: func(t *testing.T, out string) {
				assert.Contains(t, out, "update 1: message")
				assert.Contains(t, out, `"text": "hi"`)
			},
		},
		{
			name:  "getUpdates response",
			input: `{"ok": true, "result": [{"update_id": 1, "poll": {"id": "p"}}, {"update_id": 2, "callback_query": {"id": "q"}}]}`,
			checkFunc: func(t *testing.T, out string) {
				assert.Contains(t, out, "update 1: poll")
				assert.Contains(t, out, "update 2: callback_query")
			},
		},
		{
			name:  "array with a bad entry",
			input: `[{"update_id": 1, "message": {"chat": {"id": "x"}}}, {"update_id": 2}, "junk"]`,
			checkFunc: func(t *testing.T, out string) {
				assert.Contains(t, out, "update 1: message\n  error:")
				assert.Contains(t, out, "message.chat.id")
				assert.Contains(t, out, "update 2: none")
				assert.Contains(t, out, "invalid update")
			},
		},
		{
			name:  "missing update id",
			input: `{"message": {}}`,
			checkFunc: func(t *testing.T, out string) {
				assert.True(t, strings.HasPrefix(out, "invalid update"))
			},
		},
		{name: "empty", input: "  ", wantErr: true},
		{name: "not an array", input: `"text"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := decodeInput(&buf, []byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, buf.String())
		})
	}
}

func TestResolveUnion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, resolveUnion(&buf, "ChatMember", []byte(`{"status": "kicked", "user": {"id": 1}, "until_date": 0}`)))
	assert.Contains(t, buf.String(), "ChatMember variant 5: ChatMemberBanned")

	buf.Reset()
	require.NoError(t, resolveUnion(&buf, "BotCommandScope", []byte(`{"type": "chat", "chat_id": "@group"}`)))
	assert.Contains(t, buf.String(), "BotCommandScopeChat")
	assert.Contains(t, buf.String(), `"chat_id": "@group"`)

	assert.Error(t, resolveUnion(&buf, "ChatMember", []byte(`{"status": "emperor", "user": {"id": 1}}`)))
	assert.ErrorContains(t, resolveUnion(&buf, "Nope", []byte(`{}`)), "unknown union")
}

func TestWebhookURL(t *testing.T) {
	assert.Equal(t, "https://bot.example.com/telegram/webhook", webhookURL("https://bot.example.com/"))
	assert.Equal(t, "https://bot.example.com/telegram/webhook", webhookURL("https://bot.example.com"))
}
