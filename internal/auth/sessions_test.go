package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestSessions_CreateAndValidate(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewSessions(clock, time.Hour)

	token := s.Create()
	assert.NotEmpty(t, token)
	assert.True(t, s.Valid(token))
	assert.False(t, s.Valid("bogus"))
}

func TestSessions_Expiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewSessions(clock, time.Hour)

	token := s.Create()
	clock.Advance(59 * time.Minute)
	assert.True(t, s.Valid(token))

	clock.Advance(2 * time.Minute)
	assert.False(t, s.Valid(token))
	assert.False(t, s.Valid(token), "expired token stays invalid")
}

func TestSessions_Destroy(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewSessions(clock, time.Hour)

	token := s.Create()
	s.Destroy(token)
	assert.False(t, s.Valid(token))
}

func TestRequireAdmin(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewSessions(clock, time.Hour)
	token := s.Create()

	handler := s.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/control_timer/1", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/control_timer/1", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "bogus"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("live session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/control_timer/1", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
