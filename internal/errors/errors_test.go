package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agussaepos/saepos-cms/internal/client"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument_local", ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"invalid_argument_upstream", client.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"session_expired", client.ErrSessionExpired, http.StatusUnauthorized, "session_expired"},
		{"invalid_credentials", client.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"unauthenticated", client.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"not_found", client.ErrNotFound, http.StatusNotFound, "not_found"},
		{"conflict", client.ErrConflict, http.StatusConflict, "conflict"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"unavailable", client.ErrUnavailable, http.StatusServiceUnavailable, "unavailable"},
		{"internal", stderrors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Обёрнутые сентинелы (fmt.Errorf("%s: %w", ...)) маппятся так же.
func TestToHTTP_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("client.Dashboard: %w", client.ErrSessionExpired)

	gotStatus, resp := ToHTTP(err)
	require.Equal(t, http.StatusUnauthorized, gotStatus)
	require.Equal(t, "session_expired", resp.Error.Code)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/cms/dashboard", nil)
	r.Header.Set("X-Request-Id", "rid-42")
	w := httptest.NewRecorder()

	WriteError(w, r, client.ErrNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Contains(t, w.Body.String(), `"request_id":"rid-42"`)
	require.Contains(t, w.Body.String(), `"code":"not_found"`)
}
