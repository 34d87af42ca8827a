package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps everything in process memory; it is lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]State
	chats  map[string]Chat
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		states: make(map[string]State),
		chats:  make(map[string]Chat),
	}
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) GetState(_ context.Context, key string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[key]
	if !ok {
		return State{}, ErrNotFound
	}
	return st.Clone(), nil
}

func (s *MemoryStore) PutState(_ context.Context, st State) error {
	if err := touchState(&st, time.Now()); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[st.Key] = st.Clone()
	return nil
}

func (s *MemoryStore) DeleteState(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, key)
	return nil
}

func (s *MemoryStore) UpsertChat(_ context.Context, c Chat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.chats[c.ChatID]; ok && c.CreatedAt.IsZero() {
		c.CreatedAt = prev.CreatedAt
	}
	if err := touchChat(&c, time.Now()); err != nil {
		return err
	}
	c.IsActive = true
	s.chats[c.ChatID] = c
	return nil
}

func (s *MemoryStore) GetChat(_ context.Context, chatID string) (Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[chatID]
	if !ok {
		return Chat{}, ErrNotFound
	}
	return c, nil
}

// ListChats returns the active chats ordered by chat id.
func (s *MemoryStore) ListChats(_ context.Context) ([]Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []Chat
	for _, c := range s.chats {
		if c.IsActive {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ChatID < res[j].ChatID })
	return res, nil
}

func (s *MemoryStore) DeactivateChat(_ context.Context, chatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chats[chatID]
	if !ok {
		return ErrNotFound
	}
	c.IsActive = false
	c.LastUpdatedAt = time.Now()
	s.chats[chatID] = c
	return nil
}
