package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

// intensityCol never fails: anything that is not a readable number becomes
// an invalid Intensity, which the scorer treats as 0.
type intensityCol struct {
	v domain.Intensity
}

func (c *intensityCol) Scan(src any) error {
	c.v = domain.Intensity{}
	switch v := src.(type) {
	case nil:
	case float64:
		c.v = domain.Of(v)
	case float32:
		c.v = domain.Of(float64(v))
	case int64:
		c.v = domain.Of(float64(v))
	case []byte:
		c.v = parseIntensity(string(v))
	case string:
		c.v = parseIntensity(v)
	}
	return nil
}

func parseIntensity(s string) domain.Intensity {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return domain.Intensity{}
	}
	return domain.Of(f)
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04",
	domain.DateLayout,
}

// civilTime accepts whatever the driver hands back for a DATETIME/TIMESTAMP
// or DATE column and keeps only the wall-clock fields.
type civilTime struct {
	t time.Time
}

func (c *civilTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		c.t = domain.Naive(v)
		return nil
	case []byte:
		return c.parse(string(v))
	case string:
		return c.parse(v)
	case nil:
		return fmt.Errorf("sqlstore: null timestamp")
	default:
		return fmt.Errorf("sqlstore: unsupported timestamp type %T", src)
	}
}

func (c *civilTime) parse(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			c.t = domain.Naive(t)
			return nil
		}
	}
	return fmt.Errorf("sqlstore: unparseable timestamp %q", s)
}
