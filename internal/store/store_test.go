package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStoreTests(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("state round trip", func(t *testing.T) {
		_, err := s.GetState(ctx, "1:2")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, s.PutState(ctx, State{Key: "1:2", Name: "awaiting_name", Data: map[string]string{"a": "b"}}))
		st, err := s.GetState(ctx, "1:2")
		require.NoError(t, err)
		assert.Equal(t, "1:2", st.Key)
		assert.Equal(t, "awaiting_name", st.Name)
		assert.Equal(t, map[string]string{"a": "b"}, st.Data)
		assert.False(t, st.UpdatedAt.IsZero())

		require.NoError(t, s.PutState(ctx, State{Key: "1:2", Name: "done"}))
		st, err = s.GetState(ctx, "1:2")
		require.NoError(t, err)
		assert.Equal(t, "done", st.Name)
		assert.Empty(t, st.Data)

		require.NoError(t, s.DeleteState(ctx, "1:2"))
		_, err = s.GetState(ctx, "1:2")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, s.DeleteState(ctx, "missing"))
	})

	t.Run("state requires key", func(t *testing.T) {
		assert.Error(t, s.PutState(ctx, State{Name: "x"}))
	})

	t.Run("chats", func(t *testing.T) {
		require.NoError(t, s.UpsertChat(ctx, Chat{ChatID: "20", Username: "bob"}))
		require.NoError(t, s.UpsertChat(ctx, Chat{ChatID: "10", FirstName: "Ann", Language: "fr"}))

		c, err := s.GetChat(ctx, "20")
		require.NoError(t, err)
		assert.Equal(t, "bob", c.Username)
		assert.Equal(t, "en", c.Language)
		assert.True(t, c.IsActive)
		created := c.CreatedAt

		require.NoError(t, s.UpsertChat(ctx, Chat{ChatID: "20", Username: "bobby"}))
		c, err = s.GetChat(ctx, "20")
		require.NoError(t, err)
		assert.Equal(t, "bobby", c.Username)
		assert.True(t, created.Equal(c.CreatedAt), "created_at survives upsert")

		chats, err := s.ListChats(ctx)
		require.NoError(t, err)
		require.Len(t, chats, 2)
		assert.Equal(t, "10", chats[0].ChatID)

		require.NoError(t, s.DeactivateChat(ctx, "10"))
		chats, err = s.ListChats(ctx)
		require.NoError(t, err)
		require.Len(t, chats, 1)
		assert.Equal(t, "20", chats[0].ChatID)

		c, err = s.GetChat(ctx, "10")
		require.NoError(t, err)
		assert.False(t, c.IsActive)

		assert.ErrorIs(t, s.DeactivateChat(ctx, "nope"), ErrNotFound)
		_, err = s.GetChat(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Error(t, s.UpsertChat(ctx, Chat{}))
	})
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	runStoreTests(t, s)
}

func TestMemoryStoreDoesNotShareMaps(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	data := map[string]string{"k": "v"}
	require.NoError(t, s.PutState(ctx, State{Key: "k", Data: data}))
	data["k"] = "changed"

	st, err := s.GetState(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", st.Data["k"])
	st.Data["k"] = "again"

	st, err = s.GetState(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", st.Data["k"])
}

func TestBoltStore(t *testing.T) {
	s, err := OpenBolt(filepath.Join(t.TempDir(), "state.db"), "test_")
	require.NoError(t, err)
	defer s.Close()
	runStoreTests(t, s)
}

func TestBoltStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenBolt(path, "")
	require.NoError(t, err)
	require.NoError(t, s.PutState(ctx, State{Key: "5:5", Name: "step"}))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path, "")
	require.NoError(t, err)
	defer s.Close()
	st, err := s.GetState(ctx, "5:5")
	require.NoError(t, err)
	assert.Equal(t, "step", st.Name)

	other, err := OpenBolt(filepath.Join(t.TempDir(), "other.db"), "other_")
	require.NoError(t, err)
	defer other.Close()
	_, err = other.GetState(ctx, "5:5")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPgStore(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	s, err := OpenPostgres(ctx, url, "tgwire_test_")
	require.NoError(t, err)
	defer s.Close()
	_, err = s.pool.Exec(ctx, "truncate "+s.tableStates+", "+s.tableChats)
	require.NoError(t, err)
	runStoreTests(t, s)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(ctx, Options{Driver: DriverBolt, BoltPath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &BoltStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Driver: "redis"})
	assert.Error(t, err)
}
