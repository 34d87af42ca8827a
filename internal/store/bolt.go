package store

import (
	"context"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

type BoltStore struct {
	db        *bolt.DB
	bktStates []byte
	bktChats  []byte
}

var (
	bucketStates = []byte("conversation_states")
	bucketChats  = []byte("chats")
)

// OpenBolt opens (or creates) a bbolt file. prefix namespaces the buckets so
// several deployments can share one file.
func OpenBolt(path, prefix string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	bktStates := []byte(prefix + string(bucketStates))
	bktChats := []byte(prefix + string(bucketChats))
	err = db.Update(func(tx *bolt.Tx) error {
		if _, e := tx.CreateBucketIfNotExists(bktStates); e != nil {
			return e
		}
		if _, e := tx.CreateBucketIfNotExists(bktChats); e != nil {
			return e
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db, bktStates: bktStates, bktChats: bktChats}, nil
}

func (s *BoltStore) Close() error { return s.db.Close() }

func (s *BoltStore) GetState(_ context.Context, key string) (State, error) {
	var st State
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bktStates).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &st)
	})
	return st, err
}

func (s *BoltStore) PutState(_ context.Context, st State) error {
	if err := touchState(&st, time.Now()); err != nil {
		return err
	}
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bktStates).Put([]byte(st.Key), b)
	})
}

func (s *BoltStore) DeleteState(_ context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bktStates).Delete([]byte(key))
	})
}

func (s *BoltStore) UpsertChat(_ context.Context, c Chat) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(s.bktChats)
		if v := bucket.Get([]byte(c.ChatID)); v != nil && c.CreatedAt.IsZero() {
			var prev Chat
			if err := json.Unmarshal(v, &prev); err == nil {
				c.CreatedAt = prev.CreatedAt
			}
		}
		if err := touchChat(&c, time.Now()); err != nil {
			return err
		}
		c.IsActive = true
		b, err := json.Marshal(c)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(c.ChatID), b)
	})
}

func (s *BoltStore) GetChat(_ context.Context, chatID string) (Chat, error) {
	var c Chat
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bktChats).Get([]byte(chatID))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &c)
	})
	return c, err
}

// ListChats returns the active chats in key order.
func (s *BoltStore) ListChats(_ context.Context) ([]Chat, error) {
	var res []Chat
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bktChats).ForEach(func(k, v []byte) error {
			var c Chat
			if err := json.Unmarshal(v, &c); err != nil {
				return err
			}
			if c.IsActive {
				res = append(res, c)
			}
			return nil
		})
	})
	return res, err
}

func (s *BoltStore) DeactivateChat(_ context.Context, chatID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(s.bktChats)
		v := bucket.Get([]byte(chatID))
		if v == nil {
			return ErrNotFound
		}
		var c Chat
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}
		c.IsActive = false
		c.LastUpdatedAt = time.Now()
		b, err := json.Marshal(c)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(chatID), b)
	})
}
