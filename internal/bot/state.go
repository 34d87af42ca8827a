package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/AlexYaroshenko/tgwire/internal/store"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

// ErrNoState is returned by a StateHandle that has nothing to point at:
// the update has no chat or user, or no store is configured.
var ErrNoState = errors.New("bot: no conversation state")

// StateKey identifies a conversation. Updates that only carry a user (inline
// queries, payments, poll answers) use the user id as the chat id, i.e. they
// share the private chat's state.
type StateKey struct {
	ChatID int64
	UserID int64
}

func (k StateKey) IsZero() bool { return k.ChatID == 0 && k.UserID == 0 }

// String is the store key, "chat:user".
func (k StateKey) String() string {
	return strconv.FormatInt(k.ChatID, 10) + ":" + strconv.FormatInt(k.UserID, 10)
}

func chatUserKey(chat *telegram.Chat, user *telegram.User) StateKey {
	var k StateKey
	if chat != nil {
		k.ChatID = telegram.Deref(chat.ID)
	}
	if user != nil {
		k.UserID = telegram.Deref(user.ID)
	}
	return k
}

func userKey(user *telegram.User) StateKey {
	if user == nil {
		return StateKey{}
	}
	id := telegram.Deref(user.ID)
	return StateKey{ChatID: id, UserID: id}
}

// StateHandle reads and writes one conversation's state in the store. It
// holds a key, not the state itself, and does no locking of its own.
type StateHandle struct {
	key   StateKey
	store store.Store
}

func (h *StateHandle) Key() StateKey { return h.key }

func (h *StateHandle) usable() bool {
	return h != nil && h.store != nil && !h.key.IsZero()
}

// Load returns the stored state. A conversation with nothing stored yet
// yields an idle State carrying the key.
func (h *StateHandle) Load(ctx context.Context) (store.State, error) {
	if !h.usable() {
		return store.State{}, ErrNoState
	}
	st, err := h.store.GetState(ctx, h.key.String())
	if errors.Is(err, store.ErrNotFound) {
		return store.State{Key: h.key.String()}, nil
	}
	if err != nil {
		return store.State{}, fmt.Errorf("bot: load state %s: %w", h.key, err)
	}
	return st, nil
}

// Save replaces the stored state.
func (h *StateHandle) Save(ctx context.Context, name string, data map[string]string) error {
	if !h.usable() {
		return ErrNoState
	}
	st := store.State{Key: h.key.String(), Name: name, Data: data}
	if err := h.store.PutState(ctx, st); err != nil {
		return fmt.Errorf("bot: save state %s: %w", h.key, err)
	}
	return nil
}

// Reset forgets the conversation.
func (h *StateHandle) Reset(ctx context.Context) error {
	if !h.usable() {
		return ErrNoState
	}
	if err := h.store.DeleteState(ctx, h.key.String()); err != nil {
		return fmt.Errorf("bot: reset state %s: %w", h.key, err)
	}
	return nil
}
