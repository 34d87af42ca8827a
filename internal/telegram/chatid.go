package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ChatID addresses a chat either by numeric id or by "@channelusername".
type ChatID struct {
	id       int64
	username string
}

// ChatIDInt addresses a chat by its numeric id.
func ChatIDInt(id int64) ChatID { return ChatID{id: id} }

// ChatIDUsername addresses a public chat by username; a leading "@" is added
// when missing.
func ChatIDUsername(name string) ChatID {
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	return ChatID{username: name}
}

// Int returns the numeric id and whether the ChatID holds one.
func (c ChatID) Int() (int64, bool) { return c.id, c.username == "" }

func (c ChatID) String() string {
	if c.username != "" {
		return c.username
	}
	return strconv.FormatInt(c.id, 10)
}

func (c ChatID) MarshalJSON() ([]byte, error) {
	if c.username != "" {
		return json.Marshal(c.username)
	}
	return []byte(strconv.FormatInt(c.id, 10)), nil
}

func (c *ChatID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = ChatID{username: s}
		return nil
	}
	var id int64
	if err := json.Unmarshal(b, &id); err != nil {
		return fmt.Errorf("chat id: want integer or string: %w", err)
	}
	*c = ChatID{id: id}
	return nil
}

// Ptr returns a pointer to v. It is the usual way to fill optional fields.
func Ptr[T any](v T) *T { return &v }

// Deref returns *p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
