// Package bot turns classified updates into typed, state-aware events and
// dispatches them to handlers.
package bot

import "github.com/AlexYaroshenko/tgwire/internal/telegram"

// Event is what handlers receive: any Update[T].
type Event interface {
	ID() int64
	Type() telegram.UpdateType
	StateKey() StateKey
	State() *StateHandle
	API() *telegram.Client
}

// Update is a classified update of one kind. Payload holds the wire
// object's own fields; the state and API handles ride alongside it and
// never collide with payload field names.
type Update[T any] struct {
	Payload *T

	id    int64
	kind  telegram.UpdateType
	key   StateKey
	state *StateHandle
	api   *telegram.Client
}

func (u *Update[T]) ID() int64                 { return u.id }
func (u *Update[T]) Type() telegram.UpdateType { return u.kind }
func (u *Update[T]) StateKey() StateKey        { return u.key }
func (u *Update[T]) State() *StateHandle       { return u.state }
func (u *Update[T]) API() *telegram.Client     { return u.api }

// NoPayload is the payload of an update with no recognized slot.
type NoPayload struct{}

type (
	MessageUpdate            = Update[telegram.Message]
	CallbackQueryUpdate      = Update[telegram.CallbackQuery]
	InlineQueryUpdate        = Update[telegram.InlineQuery]
	ChosenInlineResultUpdate = Update[telegram.ChosenInlineResult]
	ShippingQueryUpdate      = Update[telegram.ShippingQuery]
	PreCheckoutQueryUpdate   = Update[telegram.PreCheckoutQuery]
	PollUpdate               = Update[telegram.Poll]
	PollAnswerUpdate         = Update[telegram.PollAnswer]
	ChatMemberUpdate         = Update[telegram.ChatMemberUpdated]
	ChatJoinRequestUpdate    = Update[telegram.ChatJoinRequest]
	// EmptyUpdate is the inert result for an update with no payload.
	EmptyUpdate = Update[NoPayload]
)
