package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

// Repo reads the externally owned emotion detection table.
type Repo struct {
	db *sql.DB
	q  queries
}

func New(db *sql.DB, d Dialect, table, dateCol string) (*Repo, error) {
	if !ValidIdent(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	if !ValidIdent(dateCol) {
		return nil, fmt.Errorf("invalid date column %q", dateCol)
	}
	return &Repo{db: db, q: buildQueries(d, table, dateCol)}, nil
}

// Bounds are passed as naive "YYYY-MM-DD HH:mm:ss" strings so the driver
// never applies a zone conversion.
func bound(t time.Time) string { return domain.Naive(t).Format(domain.DateTimeLayout) }

// ListRecords returns the records with from <= timestamp < to in timestamp order.
func (r *Repo) ListRecords(ctx context.Context, from, to time.Time) ([]domain.EmotionRecord, error) {
	rows, err := r.db.QueryContext(ctx, r.q.records, bound(from), bound(to))
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []domain.EmotionRecord
	for rows.Next() {
		var ts civilTime
		var h, sa, an, su, di, fe, ne intensityCol
		if err := rows.Scan(&ts, &h, &sa, &an, &su, &di, &fe, &ne); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, domain.EmotionRecord{
			Timestamp: ts.t,
			Happiness: h.v,
			Sadness:   sa.v,
			Anger:     an.v,
			Surprise:  su.v,
			Disgust:   di.v,
			Fear:      fe.v,
			Neutral:   ne.v,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

// ListTimestamps is ListRecords without the emotion columns.
func (r *Repo) ListTimestamps(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, r.q.timestamps, bound(from), bound(to))
	if err != nil {
		return nil, fmt.Errorf("query timestamps: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var ts civilTime
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scan timestamp: %w", err)
		}
		out = append(out, ts.t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timestamps: %w", err)
	}
	return out, nil
}

// ListDates returns per-day record counts, newest day first.
func (r *Repo) ListDates(ctx context.Context, limit int) ([]domain.DateCount, error) {
	rows, err := r.db.QueryContext(ctx, r.q.dates, limit)
	if err != nil {
		return nil, fmt.Errorf("query dates: %w", err)
	}
	defer rows.Close()

	var out []domain.DateCount
	for rows.Next() {
		var d civilTime
		var c int
		if err := rows.Scan(&d, &c); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		out = append(out, domain.DateCount{Date: d.t.Format(domain.DateLayout), Count: c})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dates: %w", err)
	}
	return out, nil
}

func (r *Repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
