package bot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AlexYaroshenko/tgwire/internal/store"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

// Bot composes incoming envelopes into events and dispatches them.
type Bot struct {
	composer *Composer
	router   *Router
	logger   *zap.Logger
}

// New wires a bot. st and api may be nil; events then carry unusable state
// handles or no client.
func New(router *Router, st store.Store, api *telegram.Client, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		composer: &Composer{Store: st, API: api},
		router:   router,
		logger:   logger,
	}
}

// Handle processes one envelope. A handler panic is recovered and
// returned as an error.
func (b *Bot) Handle(ctx context.Context, env *telegram.Envelope) (err error) {
	ev := b.composer.Compose(env)
	name, h, ok := b.router.Match(ev)
	if !ok {
		b.logger.Debug("update not routed",
			zap.Int64("update_id", ev.ID()),
			zap.Stringer("type", ev.Type()))
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bot: handler %s panicked: %v", name, r)
		}
	}()

	start := time.Now()
	err = h.Handle(ctx, ev)
	b.logger.Debug("update handled",
		zap.Int64("update_id", ev.ID()),
		zap.Stringer("type", ev.Type()),
		zap.String("route", name),
		zap.Duration("took", time.Since(start)),
		zap.Error(err))
	return err
}

// Run handles envelopes from in until it is closed or ctx is done. A
// failing handler is logged and does not stop the loop.
func (b *Bot) Run(ctx context.Context, in <-chan *telegram.Envelope) {
	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-in:
			if !ok {
				return
			}
			if err := b.Handle(ctx, env); err != nil {
				b.logger.Error("handler failed",
					zap.Int64("update_id", env.UpdateID),
					zap.Stringer("type", env.Type),
					zap.Error(err))
			}
		}
	}
}
