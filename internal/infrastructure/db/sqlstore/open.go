package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Options describe how to reach the store. URL wins over the discrete fields.
type Options struct {
	Driver   string
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string

	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the driver specific connection string.
func DSN(d Dialect, o Options) (string, error) {
	switch d.Driver {
	case MySQL.Driver:
		var cfg *mysql.Config
		if strings.TrimSpace(o.URL) != "" {
			c, err := mysql.ParseDSN(o.URL)
			if err != nil {
				return "", fmt.Errorf("parse mysql dsn: %w", err)
			}
			cfg = c
		} else {
			cfg = mysql.NewConfig()
			cfg.User = o.User
			cfg.Passwd = o.Password
			cfg.Net = "tcp"
			cfg.Addr = net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
			cfg.DBName = o.Name
		}
		// DATETIME columns must come back as time.Time in their stored wall clock.
		cfg.ParseTime = true
		cfg.Loc = time.UTC
		return cfg.FormatDSN(), nil

	case Postgres.Driver:
		if strings.TrimSpace(o.URL) != "" {
			return o.URL, nil
		}
		u := &url.URL{
			Scheme: "postgres",
			Host:   net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
			Path:   "/" + strings.TrimPrefix(o.Name, "/"),
		}
		if o.Password != "" {
			u.User = url.UserPassword(o.User, o.Password)
		} else {
			u.User = url.User(o.User)
		}
		u.RawQuery = url.Values{"sslmode": {"disable"}}.Encode()
		return u.String(), nil

	case SQLite.Driver:
		if strings.TrimSpace(o.URL) != "" {
			return o.URL, nil
		}
		if o.Name == "" {
			return "", fmt.Errorf("sqlite3 needs DATABASE_URL or DB_NAME (file path)")
		}
		return o.Name, nil
	}
	return "", fmt.Errorf("unsupported db driver %q", d.Driver)
}

// Open creates the shared pool. It does not ping; callers decide whether an
// unreachable store is fatal.
func Open(d Dialect, o Options) (*sql.DB, error) {
	dsn, err := DSN(d, o)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	if d.Driver == Postgres.Driver {
		cc, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse postgres dsn: %w", err)
		}
		db = stdlib.OpenDB(*cc)
	} else {
		db, err = sql.Open(d.Driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", d.Driver, err)
		}
	}

	if o.MaxOpenConns > 0 {
		db.SetMaxOpenConns(o.MaxOpenConns)
		db.SetMaxIdleConns(o.MaxOpenConns)
	}
	if o.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(o.ConnMaxLifetime)
	}
	return db, nil
}

// PingTimeout pings once with a bounded wait.
func PingTimeout(ctx context.Context, db *sql.DB, d time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return db.PingContext(ctx)
}
