package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emtionre/satisfaction-service/internal/config"
	"github.com/emtionre/satisfaction-service/internal/domain"
	rediscache "github.com/emtionre/satisfaction-service/internal/infrastructure/caching/redis"
)

var recordCols = []string{"created_at", "happiness", "sadness", "anger", "surprise", "disgust", "fear", "neutral"}

func testConfig() *config.Config {
	return &config.Config{
		HTTPAddr:       ":4000",
		DBDriver:       "mysql",
		DBTable:        "emotion_detection_customeremotion",
		DBDateColumn:   "created_at",
		CORSOrigins:    []string{"http://localhost:5173"},
		SegmentGap:     domain.DefaultSegmentGap,
		Weights:        domain.DefaultWeights(),
		CacheTTLDay:    5 * time.Minute,
		CacheTTLMinute: time.Minute,
	}
}

func TestNewApp(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("should_correctly_wire_dependencies", func(t *testing.T) {
		cfg := testConfig()
		app, err := NewApp(cfg, db, nil, prometheus.NewRegistry())
		require.NoError(t, err)

		assert.Equal(t, cfg.HTTPAddr, app.Server.Addr)
		assert.NotNil(t, app.Server.Handler, "HTTP Handler should be initialized")
		assert.Nil(t, app.Cache)
	})

	t.Run("should_reject_bad_table_name", func(t *testing.T) {
		cfg := testConfig()
		cfg.DBTable = "x; DROP TABLE y"
		_, err := NewApp(cfg, db, nil, prometheus.NewRegistry())
		assert.Error(t, err)
	})

	t.Run("should_reject_unknown_driver", func(t *testing.T) {
		cfg := testConfig()
		cfg.DBDriver = "oracle"
		_, err := NewApp(cfg, db, nil, prometheus.NewRegistry())
		assert.Error(t, err)
	})
}

func TestApp_ServesDailySegmentsThroughCache(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	cache, err := rediscache.New("redis://" + mr.Addr())
	require.NoError(t, err)
	defer cache.Close()

	app, err := NewApp(testConfig(), db, cache, prometheus.NewRegistry())
	require.NoError(t, err)

	mock.ExpectQuery("SELECT `created_at`, happiness, (.+) FROM `emotion_detection_customeremotion`").
		WithArgs("2025-03-01 00:00:00", "2025-03-02 00:00:00").
		WillReturnRows(sqlmock.NewRows(recordCols).
			AddRow(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), 0.9, 0.0, 0.0, 0.0, 0.0, 0.0, 0.1).
			AddRow(time.Date(2025, 3, 1, 10, 1, 0, 0, time.UTC), 0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.5))

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/satisfaction-segments?date=2025-03-01", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"date": "2025-03-01",
			"first_minute": "2025-03-01 10:00:00",
			"overall_avg": 85,
			"segments": [{
				"start": "2025-03-01 10:00:00",
				"end": "2025-03-01 10:01:00",
				"count": 2,
				"points": [
					{"minute": "2025-03-01 10:00:00", "value": 95},
					{"minute": "2025-03-01 10:01:00", "value": 75}
				]
			}]
		}`, rr.Body.String())
	}

	assert.True(t, mr.Exists("satisfaction:daily:2025-03-01"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_DBPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app, err := NewApp(testConfig(), db, nil, prometheus.NewRegistry())
	require.NoError(t, err)

	mock.ExpectPing()
	rr := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/db-ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"db":"ok"}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_DBPingReportsRedisHealth(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	cache, err := rediscache.New("redis://" + mr.Addr())
	require.NoError(t, err)
	defer cache.Close()

	cfg := testConfig()
	cfg.RedisURL = "redis://" + mr.Addr()
	app, err := NewApp(cfg, db, cache, prometheus.NewRegistry())
	require.NoError(t, err)

	scrape := func() string {
		rr := httptest.NewRecorder()
		app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		return rr.Body.String()
	}
	assert.Contains(t, scrape(), `satisfaction_dependency_health{dependency="redis"} 1`)

	mr.Close()
	mock.ExpectPing()
	rr := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/db-ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"db":"ok"}`, rr.Body.String())
	out := scrape()
	assert.Contains(t, out, `satisfaction_dependency_health{dependency="db"} 1`)
	assert.Contains(t, out, `satisfaction_dependency_health{dependency="redis"} 0`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSysClock_Now(t *testing.T) {
	now := sysClock{}.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
