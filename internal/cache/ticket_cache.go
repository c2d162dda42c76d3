package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

// TicketCache is a read-through redis cache for the full ticket listing
// behind the community view. Misses and redis failures degrade to the
// database; writes invalidate.
type TicketCache struct {
	client   *redis.Client
	key      string
	ttl      time.Duration
	strategy retry.Strategy
}

func NewTicketCache(client *redis.Client, prefix string, ttl time.Duration, strategy retry.Strategy) *TicketCache {
	return &TicketCache{
		client:   client,
		key:      prefix + "tickets:all",
		ttl:      ttl,
		strategy: strategy,
	}
}

func (c *TicketCache) Get(ctx context.Context) ([]*domain.Ticket, bool) {
	raw, err := c.client.Get(ctx, c.key)
	if err != nil {
		return nil, false
	}

	var tickets []*domain.Ticket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		zlog.Logger.Warn().Err(err).Msg("ticket cache entry corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return tickets, true
}

func (c *TicketCache) Set(ctx context.Context, tickets []*domain.Ticket) {
	raw, err := json.Marshal(tickets)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("ticket cache marshal failed")
		return
	}

	err = retry.Do(func() error {
		return c.client.Client.Set(ctx, c.key, raw, c.ttl).Err()
	}, c.strategy)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("ticket cache set failed")
	}
}

func (c *TicketCache) Invalidate(ctx context.Context) {
	err := retry.Do(func() error {
		return c.client.Del(ctx, c.key).Err()
	}, c.strategy)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("ticket cache invalidate failed")
	}
}
