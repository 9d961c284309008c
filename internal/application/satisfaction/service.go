package satisfaction

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

type Options struct {
	Scorer     *domain.Scorer
	SegmentGap time.Duration

	// Cache TTLs for days that are already over. Today is never cached.
	TTLDay    time.Duration
	TTLMinute time.Duration
}

type Service struct {
	repo  RecordRepo
	cache Cache
	clock Clock
	obs   Observer

	scorer *domain.Scorer
	gap    time.Duration

	ttlDay    time.Duration
	ttlMinute time.Duration
}

func New(repo RecordRepo, clock Clock, cache Cache, obs Observer, opt Options) *Service {
	if opt.Scorer == nil {
		opt.Scorer = domain.NewScorer(domain.DefaultWeights())
	}
	if opt.SegmentGap <= 0 {
		opt.SegmentGap = domain.DefaultSegmentGap
	}
	if opt.TTLDay == 0 {
		opt.TTLDay = 5 * time.Minute
	}
	if opt.TTLMinute == 0 {
		opt.TTLMinute = time.Minute
	}
	if obs == nil {
		obs = NoopObserver{}
	}

	return &Service{
		repo:      repo,
		cache:     cache,
		clock:     clock,
		obs:       obs,
		scorer:    opt.Scorer,
		gap:       opt.SegmentGap,
		ttlDay:    opt.TTLDay,
		ttlMinute: opt.TTLMinute,
	}
}

// Ping checks the upstream store.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// cacheable reports whether the given day is fully in the past on the
// service's wall clock, so its records can no longer change.
func (s *Service) cacheable(day time.Time) bool {
	if s.cache == nil {
		return false
	}
	today := domain.Naive(s.clock.Now()).Truncate(24 * time.Hour)
	return day.Before(today)
}

func (s *Service) fromCache(ctx context.Context, view, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	s.obs.CacheLookup(view, found)
	if found {
		zlog.Debug().Str("key", key).Msg("cache hit")
	} else {
		zlog.Debug().Str("key", key).Msg("cache miss")
	}
	return found
}

func (s *Service) toCache(ctx context.Context, key string, val any, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, val, ttl); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
