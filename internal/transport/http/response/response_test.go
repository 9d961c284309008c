package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emtionre/satisfaction-service/internal/domain"
	pkgctx "github.com/emtionre/satisfaction-service/internal/pkg/context"
)

func TestErr(t *testing.T) {
	t.Run("maps_domain_error_to_correct_status", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{
				name:       "validation",
				err:        domain.ErrValidation("invalid date"),
				wantStatus: http.StatusBadRequest,
				wantCode:   "validation_error",
			},
			{
				name:       "not_found",
				err:        domain.ErrNotFound("route missing"),
				wantStatus: http.StatusNotFound,
				wantCode:   "not_found",
			},
			{
				name:       "unmapped_domain_code_is_500",
				err:        &domain.AppError{Code: "unavailable", Message: "db down"},
				wantStatus: http.StatusInternalServerError,
				wantCode:   "unavailable",
			},
			{
				name:       "wrapped_domain_error",
				err:        fmt.Errorf("daily: %w", domain.ErrValidation("bad")),
				wantStatus: http.StatusBadRequest,
				wantCode:   "validation_error",
			},
			{
				name:       "generic_error",
				err:        errors.New("db crash"),
				wantStatus: http.StatusInternalServerError,
				wantCode:   "internal_error",
			},
			{
				name:       "nil_error",
				err:        nil,
				wantStatus: http.StatusInternalServerError,
				wantCode:   "internal_error",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rr := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
				Err(rr, req, tt.err)

				assert.Equal(t, tt.wantStatus, rr.Code)

				var body ErrorBody
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Error.Code)
			})
		}
	})

	t.Run("internal_details_are_not_leaked", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		Err(rr, req, errors.New("dial tcp 10.0.0.5:3306: connection refused"))

		assert.NotContains(t, rr.Body.String(), "10.0.0.5")
		assert.Contains(t, rr.Body.String(), `"message":"internal error"`)
	})

	t.Run("carries_meta_and_request_id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(pkgctx.WithRequestID(req.Context(), "req-7"))

		Err(rr, req, domain.ErrValidationMeta("invalid date", map[string]string{"date": "expected YYYY-MM-DD"}))

		var body ErrorBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "req-7", body.Error.RequestID)
		assert.Equal(t, "expected YYYY-MM-DD", body.Error.Meta["date"])
		assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	})
}

func TestRequestIDFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "from-header")
	assert.Equal(t, "from-header", RequestIDFromRequest(req))

	req = req.WithContext(pkgctx.WithRequestID(req.Context(), "from-ctx"))
	assert.Equal(t, "from-ctx", RequestIDFromRequest(req))

	assert.Empty(t, RequestIDFromRequest(nil))

	t.Run("oversized_header_is_dropped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(pkgctx.HeaderRequestID, strings.Repeat("x", pkgctx.MaxRequestIDLen+1))
		assert.Empty(t, RequestIDFromRequest(req))
	})
}

func TestJSON_IsBare(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, map[string]bool{"ok": true})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
}
