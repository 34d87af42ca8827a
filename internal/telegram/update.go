package telegram

import (
	"encoding/json"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/AlexYaroshenko/tgwire/internal/schema"
)

// Update is one incoming update. At most one payload slot is set; an update
// with none is valid and carries nothing to act on.
type Update struct {
	UpdateID           int64               `json:"update_id"`
	Message            *Message            `json:"message,omitempty"`
	EditedMessage      *Message            `json:"edited_message,omitempty"`
	ChannelPost        *Message            `json:"channel_post,omitempty"`
	EditedChannelPost  *Message            `json:"edited_channel_post,omitempty"`
	InlineQuery        *InlineQuery        `json:"inline_query,omitempty"`
	ChosenInlineResult *ChosenInlineResult `json:"chosen_inline_result,omitempty"`
	CallbackQuery      *CallbackQuery      `json:"callback_query,omitempty"`
	ShippingQuery      *ShippingQuery      `json:"shipping_query,omitempty"`
	PreCheckoutQuery   *PreCheckoutQuery   `json:"pre_checkout_query,omitempty"`
	Poll               *Poll               `json:"poll,omitempty"`
	PollAnswer         *PollAnswer         `json:"poll_answer,omitempty"`
	MyChatMember       *ChatMemberUpdated  `json:"my_chat_member,omitempty"`
	ChatMember         *ChatMemberUpdated  `json:"chat_member,omitempty"`
	ChatJoinRequest    *ChatJoinRequest    `json:"chat_join_request,omitempty"`
}

// UpdateType names the populated payload slot of an Update.
type UpdateType int

// Slots in classification order.
const (
	UpdateNone UpdateType = iota
	UpdateMessage
	UpdateEditedMessage
	UpdateChannelPost
	UpdateEditedChannelPost
	UpdateInlineQuery
	UpdateChosenInlineResult
	UpdateCallbackQuery
	UpdateShippingQuery
	UpdatePreCheckoutQuery
	UpdatePoll
	UpdatePollAnswer
	UpdateMyChatMember
	UpdateChatMember
	UpdateChatJoinRequest
)

var updateKeys = [...]string{
	UpdateNone:               "",
	UpdateMessage:            "message",
	UpdateEditedMessage:      "edited_message",
	UpdateChannelPost:        "channel_post",
	UpdateEditedChannelPost:  "edited_channel_post",
	UpdateInlineQuery:        "inline_query",
	UpdateChosenInlineResult: "chosen_inline_result",
	UpdateCallbackQuery:      "callback_query",
	UpdateShippingQuery:      "shipping_query",
	UpdatePreCheckoutQuery:   "pre_checkout_query",
	UpdatePoll:               "poll",
	UpdatePollAnswer:         "poll_answer",
	UpdateMyChatMember:       "my_chat_member",
	UpdateChatMember:         "chat_member",
	UpdateChatJoinRequest:    "chat_join_request",
}

// UpdateTypes returns every payload slot in classification order.
func UpdateTypes() []UpdateType {
	out := make([]UpdateType, 0, len(updateKeys)-1)
	for t := UpdateMessage; int(t) < len(updateKeys); t++ {
		out = append(out, t)
	}
	return out
}

// String returns the wire key of the slot, or "none".
func (t UpdateType) String() string {
	if t == UpdateNone {
		return "none"
	}
	if t < 0 || int(t) >= len(updateKeys) {
		return fmt.Sprintf("UpdateType(%d)", int(t))
	}
	return updateKeys[t]
}

// ParseUpdateType maps a wire key to its UpdateType.
func ParseUpdateType(key string) (UpdateType, bool) {
	for _, t := range UpdateTypes() {
		if updateKeys[t] == key {
			return t, true
		}
	}
	return UpdateNone, false
}

// Classify returns the first populated slot in classification order and its
// payload. A second populated slot is ignored.
func (u *Update) Classify() (UpdateType, any) {
	switch {
	case u.Message != nil:
		return UpdateMessage, u.Message
	case u.EditedMessage != nil:
		return UpdateEditedMessage, u.EditedMessage
	case u.ChannelPost != nil:
		return UpdateChannelPost, u.ChannelPost
	case u.EditedChannelPost != nil:
		return UpdateEditedChannelPost, u.EditedChannelPost
	case u.InlineQuery != nil:
		return UpdateInlineQuery, u.InlineQuery
	case u.ChosenInlineResult != nil:
		return UpdateChosenInlineResult, u.ChosenInlineResult
	case u.CallbackQuery != nil:
		return UpdateCallbackQuery, u.CallbackQuery
	case u.ShippingQuery != nil:
		return UpdateShippingQuery, u.ShippingQuery
	case u.PreCheckoutQuery != nil:
		return UpdatePreCheckoutQuery, u.PreCheckoutQuery
	case u.Poll != nil:
		return UpdatePoll, u.Poll
	case u.PollAnswer != nil:
		return UpdatePollAnswer, u.PollAnswer
	case u.MyChatMember != nil:
		return UpdateMyChatMember, u.MyChatMember
	case u.ChatMember != nil:
		return UpdateChatMember, u.ChatMember
	case u.ChatJoinRequest != nil:
		return UpdateChatJoinRequest, u.ChatJoinRequest
	}
	return UpdateNone, nil
}

// ClassifyRaw finds the first non-null payload slot of a raw envelope
// without decoding any payload.
func ClassifyRaw(raw []byte) (UpdateType, json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return UpdateNone, nil, &schema.ShapeError{Want: "object (Update)", Got: rawKind(raw), Err: err}
	}
	for _, t := range UpdateTypes() {
		if p, ok := fields[updateKeys[t]]; ok && !isNull(p) {
			return t, p, nil
		}
	}
	return UpdateNone, nil, nil
}

// newPayload returns a pointer to a zero payload of the slot's type.
func newPayload(t UpdateType) any {
	switch t {
	case UpdateMessage, UpdateEditedMessage, UpdateChannelPost, UpdateEditedChannelPost:
		return new(Message)
	case UpdateInlineQuery:
		return new(InlineQuery)
	case UpdateChosenInlineResult:
		return new(ChosenInlineResult)
	case UpdateCallbackQuery:
		return new(CallbackQuery)
	case UpdateShippingQuery:
		return new(ShippingQuery)
	case UpdatePreCheckoutQuery:
		return new(PreCheckoutQuery)
	case UpdatePoll:
		return new(Poll)
	case UpdatePollAnswer:
		return new(PollAnswer)
	case UpdateMyChatMember, UpdateChatMember:
		return new(ChatMemberUpdated)
	case UpdateChatJoinRequest:
		return new(ChatJoinRequest)
	}
	return nil
}

// Envelope is a classified update: its id, the populated slot and the
// decoded payload (a pointer such as *Message, nil for UpdateNone).
type Envelope struct {
	UpdateID int64
	Type     UpdateType
	Payload  any
}

type envelopeHeader struct {
	UpdateID *int64 `json:"update_id,omitempty"`
}

// DecodeEnvelope decodes one raw update. Only the winning slot is decoded;
// error paths are rooted at the envelope ("message.chat.id"). When the
// payload fails to decode the returned Envelope still carries the id and
// type, so a poller can move past it.
func DecodeEnvelope(raw []byte) (*Envelope, error) {
	var h envelopeHeader
	if err := registry.Decode(raw, &h); err != nil {
		return nil, err
	}
	if h.UpdateID == nil {
		return nil, &schema.ShapeError{Path: "update_id", Want: "integer", Got: "absent"}
	}
	t, payload, err := ClassifyRaw(raw)
	if err != nil {
		return nil, err
	}
	env := &Envelope{UpdateID: *h.UpdateID, Type: t}
	if t == UpdateNone {
		return env, nil
	}
	dst := newPayload(t)
	if err := registry.DecodeAt(schema.Path{t.String()}, payload, dst); err != nil {
		return env, err
	}
	env.Payload = dst
	return env, nil
}

// Update rebuilds the full wire envelope.
func (e *Envelope) Update() *Update {
	u := &Update{UpdateID: e.UpdateID}
	switch p := e.Payload.(type) {
	case *Message:
		switch e.Type {
		case UpdateMessage:
			u.Message = p
		case UpdateEditedMessage:
			u.EditedMessage = p
		case UpdateChannelPost:
			u.ChannelPost = p
		case UpdateEditedChannelPost:
			u.EditedChannelPost = p
		}
	case *InlineQuery:
		u.InlineQuery = p
	case *ChosenInlineResult:
		u.ChosenInlineResult = p
	case *CallbackQuery:
		u.CallbackQuery = p
	case *ShippingQuery:
		u.ShippingQuery = p
	case *PreCheckoutQuery:
		u.PreCheckoutQuery = p
	case *Poll:
		u.Poll = p
	case *PollAnswer:
		u.PollAnswer = p
	case *ChatMemberUpdated:
		if e.Type == UpdateMyChatMember {
			u.MyChatMember = p
		} else {
			u.ChatMember = p
		}
	case *ChatJoinRequest:
		u.ChatJoinRequest = p
	}
	return u
}

// DecodeError is a batch entry that failed to decode. UpdateID is zero when
// the id itself could not be read.
type DecodeError struct {
	Index    int
	UpdateID int64
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("telegram: update #%d (id %d): %v", e.Index, e.UpdateID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decoded is one entry of a decoded batch. Envelope is nil only when not
// even the update id could be read.
type Decoded struct {
	Envelope *Envelope
	Err      *DecodeError
}

// DecodeUpdates decodes a getUpdates result array. Entries are independent:
// one malformed update never affects the others. Only a body that is not a
// JSON array is an error.
func DecodeUpdates(body []byte) ([]Decoded, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("telegram: decode updates: %w",
			&schema.ShapeError{Want: "array", Got: rawKind(body), Err: err})
	}
	out := make([]Decoded, len(items))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, item := range items {
		g.Go(func() error {
			env, err := DecodeEnvelope(item)
			out[i].Envelope = env
			if err != nil {
				de := &DecodeError{Index: i, Err: err}
				if env != nil {
					de.UpdateID = env.UpdateID
				}
				out[i].Err = de
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("telegram: decode updates: %w", err)
	}
	return out, nil
}

// Failed reports whether d carries a decode error.
func (d Decoded) Failed() bool { return d.Err != nil }

func rawKind(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "malformed JSON"
	}
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	}
	return "unknown"
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 4 && string(raw) == "null"
}
