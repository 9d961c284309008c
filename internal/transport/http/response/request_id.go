package response

import (
	"net/http"

	pkgctx "github.com/emtionre/satisfaction-service/internal/pkg/context"
)

// RequestIDFromRequest prefers the id set by the RequestID middleware and
// falls back to a well-formed inbound header.
func RequestIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if v := pkgctx.GetRequestID(r.Context()); v != "" {
		return v
	}
	return pkgctx.RequestIDFromHeader(r.Header)
}
