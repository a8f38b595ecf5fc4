package retention

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/mileusna/crontab"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/infrastructure/metrics"
)

const (
	lockName   = "matsols:chat-retention"
	jobTimeout = 10 * time.Minute
)

// Pruner deletes conversation turns older than a retention window.
type Pruner interface {
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// Locker serializes prune runs across replicas.
type Locker interface {
	WithLock(ctx context.Context, fn func(ctx context.Context) error) error
}

// Scheduler runs the chat retention job on a cron schedule.
type Scheduler struct {
	pruner    Pruner
	locker    Locker
	retention time.Duration
	schedule  string
	ctab      *crontab.Crontab
	log       zerolog.Logger
}

// NewScheduler creates a scheduler. locker may be nil for single replica
// deployments.
func NewScheduler(pruner Pruner, locker Locker, retention time.Duration, schedule string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		pruner:    pruner,
		locker:    locker,
		retention: retention,
		schedule:  schedule,
		ctab:      crontab.New(),
		log:       log.With().Str("component", "chat-retention").Logger(),
	}
}

// Enabled reports whether a retention window is configured.
func (s *Scheduler) Enabled() bool {
	return s.retention > 0
}

// Run schedules the job and blocks until ctx is done. It returns immediately
// when retention is unlimited.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.Enabled() {
		s.log.Info().Msg("chat retention unlimited, prune job disabled")
		return nil
	}

	if err := s.ctab.AddJob(s.schedule, func() {
		jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()
		if _, err := s.RunOnce(jobCtx); err != nil {
			s.log.Error().Err(err).Msg("chat retention run failed")
		}
	}); err != nil {
		return err
	}
	s.log.Info().Str("schedule", s.schedule).Dur("retention", s.retention).Msg("chat retention scheduled")

	<-ctx.Done()
	s.ctab.Shutdown()
	return nil
}

// RunOnce prunes immediately, holding the lock when one is configured.
func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	var removed int64
	prune := func(ctx context.Context) error {
		n, err := s.pruner.Prune(ctx, s.retention)
		if err != nil {
			return err
		}
		removed = n
		return nil
	}

	var err error
	if s.locker != nil {
		err = s.locker.WithLock(ctx, prune)
	} else {
		err = prune(ctx)
	}
	if err != nil {
		return 0, err
	}

	metrics.RecordPruned(removed)
	return removed, nil
}

// RedisLocker implements Locker with a redsync mutex.
type RedisLocker struct {
	rs  *redsync.Redsync
	ttl time.Duration
	log zerolog.Logger
}

// NewRedisLocker creates a locker backed by client.
func NewRedisLocker(client redis.UniversalClient, log zerolog.Logger) *RedisLocker {
	return &RedisLocker{
		rs:  redsync.New(goredis.NewPool(client)),
		ttl: jobTimeout,
		log: log,
	}
}

// ErrLockHeld is returned when another replica is pruning.
var ErrLockHeld = errors.New("retention lock held by another replica")

// WithLock runs fn while holding the retention lock.
func (l *RedisLocker) WithLock(ctx context.Context, fn func(ctx context.Context) error) error {
	mutex := l.rs.NewMutex(lockName, redsync.WithExpiry(l.ttl), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		var taken redsync.ErrTaken
		var takenPtr *redsync.ErrTaken
		if errors.As(err, &taken) || errors.As(err, &takenPtr) || errors.Is(err, redsync.ErrFailed) {
			return ErrLockHeld
		}
		return err
	}
	defer func() {
		if _, err := mutex.UnlockContext(context.WithoutCancel(ctx)); err != nil {
			l.log.Error().Err(err).Msg("release retention lock")
		}
	}()
	return fn(ctx)
}
