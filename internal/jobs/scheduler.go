package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"marinahub/api/internal/events"
	"marinahub/api/internal/repository"
)

const notificationRetention = 30 * 24 * time.Hour

// Scheduler runs the nightly housekeeping: trimming the booking event
// stream and purging old read notifications.
type Scheduler struct {
	cron          *cron.Cron
	rdb           *redis.Client
	notifications *repository.NotificationRepository
	log           zerolog.Logger
}

func NewScheduler(rdb *redis.Client, notifications *repository.NotificationRepository, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithSeconds()),
		rdb:           rdb,
		notifications: notifications,
		log:           log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 0 * * *", s.runCleanup); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop waits for in-flight jobs, up to five seconds.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if s.rdb != nil {
		if err := s.rdb.XTrimMaxLen(ctx, events.Stream, 10000).Err(); err != nil {
			s.log.Error().Err(err).Msg("event stream trim failed")
		}
	}

	if s.notifications != nil {
		cutoff := time.Now().Add(-notificationRetention)
		deleted, err := s.notifications.DeleteReadOlderThan(ctx, cutoff)
		if err != nil {
			s.log.Error().Err(err).Msg("notification cleanup failed")
			return
		}
		if deleted > 0 {
			s.log.Info().Int64("deleted", deleted).Msg("old notifications purged")
		}
	}
}
