package context

import (
	"context"
	"net/http"
	"strings"
)

// HeaderRequestID carries the request id in and out of the service.
const HeaderRequestID = "X-Request-Id"

// MaxRequestIDLen bounds client-supplied ids before they reach logs.
const MaxRequestIDLen = 128

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the id stored by WithRequestID, or "".
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDFromHeader returns the inbound id when it is usable: at most
// MaxRequestIDLen visible ASCII characters. Anything else yields "".
func RequestIDFromHeader(h http.Header) string {
	id := strings.TrimSpace(h.Get(HeaderRequestID))
	if len(id) > MaxRequestIDLen {
		return ""
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return ""
		}
	}
	return id
}
