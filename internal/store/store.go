package store

import (
	"context"
	"errors"
	"maps"
	"time"
)

// State is the conversation state kept for one conversation key.
type State struct {
	Key string `json:"key"`
	// Name is the conversation step the bot is in; empty means idle.
	Name      string            `json:"name"`
	Data      map[string]string `json:"data,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Clone returns a copy of s that shares no map with it.
func (s State) Clone() State {
	s.Data = maps.Clone(s.Data)
	return s
}

// Chat is a chat the bot has talked to.
type Chat struct {
	ChatID        string    `json:"chat_id"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Language      string    `json:"language"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	IsActive      bool      `json:"is_active"`
}

// Store abstracts persistent storage operations. Implementations serialize
// access per call; callers get no cross-call atomicity.
type Store interface {
	Close() error

	// Conversation state
	GetState(ctx context.Context, key string) (State, error)
	PutState(ctx context.Context, st State) error
	DeleteState(ctx context.Context, key string) error

	// Chats
	UpsertChat(ctx context.Context, c Chat) error
	GetChat(ctx context.Context, chatID string) (Chat, error)
	ListChats(ctx context.Context) ([]Chat, error)
	DeactivateChat(ctx context.Context, chatID string) error
}

var ErrNotFound = errors.New("not found")

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
)

// Options selects and configures a store.
type Options struct {
	Driver      string
	BoltPath    string
	DatabaseURL string
	TablePrefix string
}

// Open returns the store named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverBolt:
		return OpenBolt(opts.BoltPath, opts.TablePrefix)
	case DriverPostgres:
		return OpenPostgres(ctx, opts.DatabaseURL, opts.TablePrefix)
	}
	return nil, errors.New("store: unknown driver " + opts.Driver)
}

func touchState(st *State, now time.Time) error {
	if st.Key == "" {
		return errors.New("store: state key required")
	}
	st.UpdatedAt = now
	return nil
}

func touchChat(c *Chat, now time.Time) error {
	if c.ChatID == "" {
		return errors.New("store: chat id required")
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.LastUpdatedAt = now
	if c.Language == "" {
		c.Language = "en"
	}
	return nil
}
