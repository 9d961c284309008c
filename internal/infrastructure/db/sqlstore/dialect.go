package sqlstore

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect captures the few syntax differences between the supported drivers.
type Dialect struct {
	Driver      string
	quote       func(ident string) string
	placeholder func(n int) string
}

var (
	MySQL = Dialect{
		Driver:      "mysql",
		quote:       func(s string) string { return "`" + s + "`" },
		placeholder: func(int) string { return "?" },
	}
	Postgres = Dialect{
		Driver:      "pgx",
		quote:       func(s string) string { return `"` + s + `"` },
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	}
	SQLite = Dialect{
		Driver:      "sqlite3",
		quote:       func(s string) string { return `"` + s + `"` },
		placeholder: func(int) string { return "?" },
	}
)

func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "mysql":
		return MySQL, nil
	case "pgx", "postgres", "postgresql":
		return Postgres, nil
	case "sqlite3", "sqlite":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported db driver %q", driver)
	}
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdent reports whether s can be spliced into SQL as a table or column name.
func ValidIdent(s string) bool { return identRe.MatchString(s) }

// Quote quotes an identifier that already passed ValidIdent.
func (d Dialect) Quote(ident string) string { return d.quote(ident) }

func (d Dialect) Placeholder(n int) string { return d.placeholder(n) }
