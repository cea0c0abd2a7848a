package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "stagetimer_session"

// Sessions is an in-memory admin session table. Tokens are random and expire
// after a fixed TTL; nothing is persisted across restarts.
type Sessions struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	ttl    time.Duration
	tokens map[string]time.Time
}

// NewSessions creates a session table with the given token lifetime.
func NewSessions(clock clockwork.Clock, ttl time.Duration) *Sessions {
	return &Sessions{
		clock:  clock,
		ttl:    ttl,
		tokens: make(map[string]time.Time),
	}
}

// Create issues a new session token.
func (s *Sessions) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.tokens[token] = s.clock.Now().Add(s.ttl)
	return token
}

// Valid reports whether token identifies a live session. Expired tokens are
// dropped on the way out.
func (s *Sessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if s.clock.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Destroy ends the session for token, if any.
func (s *Sessions) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// RequireAdmin wraps next, rejecting requests without a live admin session.
func (s *Sessions) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || !s.Valid(cookie.Value) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
