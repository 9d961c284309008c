package satisfaction

import (
	"context"
	"time"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// RecordRepo is the read side of the emotion detection table.
// Windows are half open: from <= timestamp < to, on naive wall-clock time.
type RecordRepo interface {
	ListRecords(ctx context.Context, from, to time.Time) ([]domain.EmotionRecord, error)
	ListTimestamps(ctx context.Context, from, to time.Time) ([]time.Time, error)
	ListDates(ctx context.Context, limit int) ([]domain.DateCount, error)
	Ping(ctx context.Context) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
}

// Observer receives per-request computation stats.
type Observer interface {
	ObserveDaily(records, segments int)
	ObserveMinute(records int)
	CacheLookup(view string, hit bool)
}

type NoopObserver struct{}

func (NoopObserver) ObserveDaily(int, int)    {}
func (NoopObserver) ObserveMinute(int)        {}
func (NoopObserver) CacheLookup(string, bool) {}
