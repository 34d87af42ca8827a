package bot

import (
	"github.com/AlexYaroshenko/tgwire/internal/store"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

// Composer attaches a state handle and an API client to classified
// updates. Either may be nil.
type Composer struct {
	Store store.Store
	API   *telegram.Client
}

// Compose builds the typed update for env. An envelope with no payload
// yields an *EmptyUpdate; it is never an error.
func (c *Composer) Compose(env *telegram.Envelope) Event {
	switch env.Type {
	case telegram.UpdateMessage, telegram.UpdateEditedMessage,
		telegram.UpdateChannelPost, telegram.UpdateEditedChannelPost:
		return compose(c, env, func(m *telegram.Message) StateKey {
			return chatUserKey(m.Chat, m.From)
		})
	case telegram.UpdateCallbackQuery:
		return compose(c, env, func(q *telegram.CallbackQuery) StateKey {
			if q.Message != nil && q.Message.Chat != nil {
				return chatUserKey(q.Message.Chat, q.From)
			}
			return userKey(q.From)
		})
	case telegram.UpdateInlineQuery:
		return compose(c, env, func(q *telegram.InlineQuery) StateKey { return userKey(q.From) })
	case telegram.UpdateChosenInlineResult:
		return compose(c, env, func(r *telegram.ChosenInlineResult) StateKey { return userKey(r.From) })
	case telegram.UpdateShippingQuery:
		return compose(c, env, func(q *telegram.ShippingQuery) StateKey { return userKey(q.From) })
	case telegram.UpdatePreCheckoutQuery:
		return compose(c, env, func(q *telegram.PreCheckoutQuery) StateKey { return userKey(q.From) })
	case telegram.UpdatePoll:
		return compose(c, env, func(*telegram.Poll) StateKey { return StateKey{} })
	case telegram.UpdatePollAnswer:
		return compose(c, env, func(a *telegram.PollAnswer) StateKey { return userKey(a.User) })
	case telegram.UpdateMyChatMember, telegram.UpdateChatMember:
		return compose(c, env, func(m *telegram.ChatMemberUpdated) StateKey {
			return chatUserKey(m.Chat, m.From)
		})
	case telegram.UpdateChatJoinRequest:
		return compose(c, env, func(r *telegram.ChatJoinRequest) StateKey {
			return chatUserKey(r.Chat, r.From)
		})
	}
	return c.empty(env)
}

func compose[T any](c *Composer, env *telegram.Envelope, key func(*T) StateKey) Event {
	p, ok := env.Payload.(*T)
	if !ok || p == nil {
		return c.empty(env)
	}
	k := key(p)
	return &Update[T]{
		Payload: p,
		id:      env.UpdateID,
		kind:    env.Type,
		key:     k,
		state:   &StateHandle{key: k, store: c.Store},
		api:     c.API,
	}
}

func (c *Composer) empty(env *telegram.Envelope) *EmptyUpdate {
	return &EmptyUpdate{
		Payload: &NoPayload{},
		id:      env.UpdateID,
		kind:    telegram.UpdateNone,
		state:   &StateHandle{store: c.Store},
		api:     c.API,
	}
}
