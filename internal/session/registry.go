// Package session keeps one contact form per visitor.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prawat/portfolio/internal/contact"
)

// CookieName carries the visitor's session id.
const CookieName = "portfolio_session"

// Session is one visitor's view state.
type Session struct {
	ID   string
	Form *contact.Form

	limiter  *rate.Limiter
	lastSeen time.Time
}

// Allow reports whether the visitor may submit now.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

// Registry maps session ids to sessions and expires idle ones.
type Registry struct {
	ttl     time.Duration
	limit   rate.Limit
	burst   int
	newForm func() *contact.Form
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry returns a registry creating forms with newForm. Visitors may
// submit perMinute times a minute with the given burst.
func NewRegistry(ttl time.Duration, perMinute float64, burst int, newForm func() *contact.Form, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		ttl:      ttl,
		limit:    rate.Limit(perMinute / 60),
		burst:    burst,
		newForm:  newForm,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating a fresh one when id is empty,
// malformed or unknown. created reports whether a new session was made.
func (r *Registry) Get(id string) (s *Session, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if _, err := uuid.Parse(id); err == nil {
		if s, ok := r.sessions[id]; ok {
			s.lastSeen = now
			return s, false
		}
	}
	s = &Session{
		ID:       uuid.NewString(),
		Form:     r.newForm(),
		limiter:  rate.NewLimiter(r.limit, r.burst),
		lastSeen: now,
	}
	r.sessions[s.ID] = s
	return s, true
}

// Lookup returns an existing session without creating or touching one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes and drops sessions idle for longer than the TTL.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	n := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			s.Form.Close()
			delete(r.sessions, id)
			n++
		}
	}
	if n > 0 {
		r.logger.Debug("expired sessions", zap.Int("count", n), zap.Int("live", len(r.sessions)))
	}
	return n
}

// Run sweeps periodically until ctx is done, then closes every session.
func (r *Registry) Run(ctx context.Context) {
	interval := r.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-ctx.Done():
			r.closeAll()
			return
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.Form.Close()
		delete(r.sessions, id)
	}
}
