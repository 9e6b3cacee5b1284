package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/handler"
	"github.com/dokkaebistudio/kanghwa-server/mocks"
)

func TestSessionAuthMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Public path bypasses auth", func(t *testing.T) {
		sessions := mocks.NewMockSessionService(t)
		mw := SessionAuthMiddleware(sessions, nil, NewSuspiciousActivityDetector())

		req := httptest.NewRequest("GET", "/healthz", nil)
		rec := httptest.NewRecorder()

		mw(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing token rejected", func(t *testing.T) {
		sessions := mocks.NewMockSessionService(t)
		sessions.On("Resolve", mock.Anything, "").Return("", domain.ErrUnauthorized)
		mw := SessionAuthMiddleware(sessions, nil, NewSuspiciousActivityDetector())

		req := httptest.NewRequest("POST", "/api/v1/upgrade", nil)
		rec := httptest.NewRecorder()

		mw(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid token sets player ID", func(t *testing.T) {
		sessions := mocks.NewMockSessionService(t)
		sessions.On("Resolve", mock.Anything, "token-abc").Return("player-1", nil)
		mw := SessionAuthMiddleware(sessions, nil, NewSuspiciousActivityDetector())

		var gotPlayerID string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPlayerID, _ = handler.PlayerIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/api/v1/upgrade", nil)
		req.Header.Set(HeaderAuthorization, "Bearer token-abc")
		rec := httptest.NewRecorder()

		mw(inner).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "player-1", gotPlayerID)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	mw := SecurityHeadersMiddleware()
	req := httptest.NewRequest("GET", "/api/v1/feed", nil)
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	mw := RequestSizeLimitMiddleware(16)

	read := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Small body passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/upgrade", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		mw(read).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Oversized body rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/upgrade", strings.NewReader(strings.Repeat("x", 64)))
		rec := httptest.NewRecorder()
		mw(read).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestExtractIP(t *testing.T) {
	t.Run("Direct connection", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.9:4711"

		assert.Equal(t, "203.0.113.9", extractIP(req, nil))
	})

	t.Run("Forwarded header ignored for untrusted proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.9:4711"
		req.Header.Set(HeaderForwardedFor, "198.51.100.1")

		assert.Equal(t, "203.0.113.9", extractIP(req, nil))
	})

	t.Run("Forwarded header honored for trusted proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:4711"
		req.Header.Set(HeaderForwardedFor, "198.51.100.1, 198.51.100.2")

		assert.Equal(t, "198.51.100.2", extractIP(req, []string{"10.0.0.1"}))
	})
}
