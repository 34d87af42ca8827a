package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgStore struct {
	pool        *pgxpool.Pool
	tableStates string
	tableChats  string
}

func OpenPostgres(ctx context.Context, url, prefix string) (*PgStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	s := &PgStore{
		pool:        pool,
		tableStates: prefix + "conversation_states",
		tableChats:  prefix + "chats",
	}
	if err := s.init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PgStore) init(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`create table if not exists %s (
			key text primary key,
			name text not null default '',
			data jsonb not null default '{}'::jsonb,
			updated_at timestamptz not null default now()
		)`, s.tableStates),
		fmt.Sprintf(`create table if not exists %s (
			chat_id text primary key,
			username text,
			first_name text,
			last_name text,
			language text not null default 'en',
			is_active boolean not null default true,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		)`, s.tableChats),
	}
	for _, q := range stmts {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *PgStore) Close() error { s.pool.Close(); return nil }

func (s *PgStore) GetState(ctx context.Context, key string) (State, error) {
	st := State{Key: key}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`select name, data, updated_at from %s where key=$1`, s.tableStates), key,
	).Scan(&st.Name, &st.Data, &st.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, err
	}
	return st, nil
}

func (s *PgStore) PutState(ctx context.Context, st State) error {
	if err := touchState(&st, time.Now()); err != nil {
		return err
	}
	data := st.Data
	if data == nil {
		data = map[string]string{}
	}
	_, err := s.pool.Exec(ctx,
		fmt.Sprintf(`insert into %s (key, name, data, updated_at) values ($1,$2,$3,$4)
		 on conflict (key) do update set name=excluded.name, data=excluded.data, updated_at=excluded.updated_at`, s.tableStates),
		st.Key, st.Name, data, st.UpdatedAt,
	)
	return err
}

func (s *PgStore) DeleteState(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, fmt.Sprintf(`delete from %s where key=$1`, s.tableStates), key)
	return err
}

func (s *PgStore) UpsertChat(ctx context.Context, c Chat) error {
	if err := touchChat(&c, time.Now()); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx,
		fmt.Sprintf(`insert into %s (chat_id, username, first_name, last_name, language, is_active, created_at, updated_at)
		 values ($1,$2,$3,$4,$5,true,$6,$7)
		 on conflict (chat_id) do update set username=excluded.username, first_name=excluded.first_name, last_name=excluded.last_name, language=excluded.language, is_active=true, updated_at=excluded.updated_at`, s.tableChats),
		c.ChatID, c.Username, c.FirstName, c.LastName, c.Language, c.CreatedAt, c.LastUpdatedAt,
	)
	return err
}

const chatColumns = `chat_id, coalesce(username, ''), coalesce(first_name, ''), coalesce(last_name, ''), language, is_active, created_at, updated_at`

func scanChat(row pgx.Row) (Chat, error) {
	var c Chat
	err := row.Scan(&c.ChatID, &c.Username, &c.FirstName, &c.LastName, &c.Language, &c.IsActive, &c.CreatedAt, &c.LastUpdatedAt)
	return c, err
}

func (s *PgStore) GetChat(ctx context.Context, chatID string) (Chat, error) {
	c, err := scanChat(s.pool.QueryRow(ctx,
		fmt.Sprintf(`select %s from %s where chat_id=$1`, chatColumns, s.tableChats), chatID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Chat{}, ErrNotFound
	}
	return c, err
}

func (s *PgStore) ListChats(ctx context.Context) ([]Chat, error) {
	rows, err := s.pool.Query(ctx,
		fmt.Sprintf(`select %s from %s where is_active=true order by chat_id`, chatColumns, s.tableChats))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (s *PgStore) DeactivateChat(ctx context.Context, chatID string) error {
	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`update %s set is_active=false, updated_at=now() where chat_id=$1`, s.tableChats), chatID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
