package telegram

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// retryDelay is the pause after all retries of a poll are exhausted.
var retryDelay = 5 * time.Second

// Poller receives updates by long polling getUpdates.
type Poller struct {
	client  *Client
	logger  *zap.Logger
	timeout time.Duration
	allowed []UpdateType

	offset int64
}

// NewPoller returns a poller. allowed restricts the update kinds Telegram
// sends; nil keeps whatever the server has configured.
func NewPoller(client *Client, timeout time.Duration, allowed []UpdateType, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		client:  client,
		logger:  logger,
		timeout: timeout,
		allowed: allowed,
	}
}

// Offset is the id of the next update the poller will ask for.
func (p *Poller) Offset() int64 { return p.offset }

// Poll performs a single getUpdates call. The offset moves past every
// update whose id could be read, including updates whose payload failed to
// decode, so a malformed update is never fetched twice.
func (p *Poller) Poll(ctx context.Context) ([]Decoded, error) {
	pollCtx, cancel := context.WithTimeout(ctx, p.timeout+5*time.Second)
	defer cancel()

	batch, err := p.client.GetUpdates(pollCtx, GetUpdatesParams{
		Offset:         p.offset,
		Timeout:        int(p.timeout / time.Second),
		AllowedUpdates: p.allowed,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: poll: %w", err)
	}
	for _, d := range batch {
		if d.Envelope != nil && d.Envelope.UpdateID >= p.offset {
			p.offset = d.Envelope.UpdateID + 1
		}
	}
	return batch, nil
}

// Run polls until ctx is done, sending every decoded envelope on out.
// Entries that fail to decode are logged and skipped. out is closed when
// Run returns.
func (p *Poller) Run(ctx context.Context, out chan<- *Envelope) {
	defer close(out)
	p.logger.Info("poller started", zap.Duration("timeout", p.timeout))

	for {
		var batch []Decoded
		err := Retry(ctx, p.logger, 3, 2*time.Second, func() error {
			var pollErr error
			batch, pollErr = p.Poll(ctx)
			return pollErr
		})
		if err != nil {
			if ctx.Err() != nil {
				p.logger.Info("poller stopped")
				return
			}
			p.logger.Error("poll failed after retries", zap.Error(err))
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				p.logger.Info("poller stopped")
				return
			}
			continue
		}

		for _, d := range batch {
			if d.Failed() {
				p.logger.Warn("skipping undecodable update",
					zap.Int64("update_id", d.Err.UpdateID),
					zap.Error(d.Err.Err),
				)
				continue
			}
			select {
			case out <- d.Envelope:
			case <-ctx.Done():
				p.logger.Info("poller stopped")
				return
			}
		}
	}
}
