package bot

import (
	"context"
	"strings"

	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

// Handler processes one event.
type Handler interface {
	Handle(ctx context.Context, ev Event) error
}

// HandlerFunc lets a plain function act as a Handler.
type HandlerFunc func(ctx context.Context, ev Event) error

func (f HandlerFunc) Handle(ctx context.Context, ev Event) error {
	if f == nil {
		return nil
	}
	return f(ctx, ev)
}

// Matcher decides whether a route takes an event.
type Matcher func(ev Event) bool

type route struct {
	name    string
	match   Matcher
	handler Handler
}

// Router checks routes in registration order and hands the event to the
// first match. Unmatched events go to the fallback, if any. Routes must be
// registered before dispatching starts.
type Router struct {
	routes   []route
	fallback Handler
}

func NewRouter() *Router {
	return &Router{}
}

// On adds a route. The name only shows up in logs.
func (r *Router) On(name string, m Matcher, h Handler) *Router {
	r.routes = append(r.routes, route{name: name, match: m, handler: h})
	return r
}

// Fallback sets the handler for events no route matches.
func (r *Router) Fallback(h Handler) *Router {
	r.fallback = h
	return r
}

// Match returns the route name and handler for ev, or ok=false when
// neither a route nor a fallback takes it.
func (r *Router) Match(ev Event) (name string, h Handler, ok bool) {
	for _, rt := range r.routes {
		if rt.match(ev) {
			return rt.name, rt.handler, true
		}
	}
	if r.fallback != nil {
		return "fallback", r.fallback, true
	}
	return "", nil, false
}

// Dispatch runs the matching handler. Unmatched events are dropped silently.
func (r *Router) Dispatch(ctx context.Context, ev Event) error {
	_, h, ok := r.Match(ev)
	if !ok {
		return nil
	}
	return h.Handle(ctx, ev)
}

// Handle registers a typed handler for one update kind. The route matches
// only events of that kind whose payload is a T.
func Handle[T any](r *Router, kind telegram.UpdateType, fn func(ctx context.Context, u *Update[T]) error) *Router {
	return r.On(kind.String(), func(ev Event) bool {
		_, ok := ev.(*Update[T])
		return ok && ev.Type() == kind
	}, HandlerFunc(func(ctx context.Context, ev Event) error {
		return fn(ctx, ev.(*Update[T]))
	}))
}

// Any matches every event.
func Any() Matcher {
	return func(Event) bool { return true }
}

// OfType matches events of any of the given kinds.
func OfType(kinds ...telegram.UpdateType) Matcher {
	return func(ev Event) bool {
		for _, k := range kinds {
			if ev.Type() == k {
				return true
			}
		}
		return false
	}
}

// Command matches a message whose text starts with /name, optionally
// addressed as /name@bot.
func Command(name string) Matcher {
	name = strings.TrimPrefix(name, "/")
	return func(ev Event) bool {
		cmd, _, ok := CommandOf(ev)
		return ok && strings.EqualFold(cmd, name)
	}
}

// CommandOf splits a new command message into its name (without slash or bot
// suffix) and the remaining arguments.
func CommandOf(ev Event) (cmd, args string, ok bool) {
	u, isMsg := ev.(*MessageUpdate)
	if !isMsg || u.Payload == nil || u.kind != telegram.UpdateMessage {
		return "", "", false
	}
	text := telegram.Deref(u.Payload.Text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, rest, _ := strings.Cut(text[1:], " ")
	head, _, _ = strings.Cut(head, "@")
	if head == "" {
		return "", "", false
	}
	return head, strings.TrimSpace(rest), true
}

// CallbackData matches a callback query whose data starts with prefix.
func CallbackData(prefix string) Matcher {
	return func(ev Event) bool {
		u, ok := ev.(*CallbackQueryUpdate)
		return ok && u.Payload != nil && strings.HasPrefix(telegram.Deref(u.Payload.Data), prefix)
	}
}

// TextMessage matches a new message with non-command text.
func TextMessage() Matcher {
	return func(ev Event) bool {
		u, ok := ev.(*MessageUpdate)
		if !ok || u.Payload == nil || u.Payload.Text == nil || u.kind != telegram.UpdateMessage {
			return false
		}
		return !strings.HasPrefix(*u.Payload.Text, "/")
	}
}
