package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appCtx "github.com/emtionre/satisfaction-service/internal/pkg/context"
)

const HeaderXRequestID = appCtx.HeaderRequestID

// RequestID reuses a well-formed inbound id and mints a uuid otherwise, so a
// client cannot push oversized or multi-line ids into the access log.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := appCtx.RequestIDFromHeader(r.Header)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(appCtx.WithRequestID(r.Context(), reqID)))
	})
}
