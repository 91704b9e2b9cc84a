// Package events publishes booking lifecycle events to a redis stream
// consumed by the push-notification pipeline.
package events

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const Stream = "bookings:events"

type Publisher struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewPublisher(rdb *redis.Client, log zerolog.Logger) *Publisher {
	return &Publisher{rdb: rdb, log: log}
}

// BookingCreated is best-effort: a booking must never fail because the
// event stream is down.
func (p *Publisher) BookingCreated(ctx context.Context, domain string, reference string, userID *int64) {
	if p == nil || p.rdb == nil {
		return
	}

	values := map[string]any{
		"type":      "booking_created",
		"domain":    domain,
		"reference": reference,
	}
	if userID != nil {
		values["user_id"] = *userID
	}

	if err := p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: Stream,
		Values: values,
	}).Err(); err != nil {
		p.log.Warn().Err(err).Str("domain", domain).Msg("booking event publish failed")
	}
}
