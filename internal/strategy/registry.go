package strategy

import (
	"log/slog"
	"sync"
	"time"

	"github.com/eloqagency/website/internal/metrics"
)

// Registry holds one Flow per visitor id. Entries idle longer than the TTL
// are dropped on the next access.
type Registry struct {
	gen Generator
	log *slog.Logger
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	flow     *Flow
	lastSeen time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(gen Generator, log *slog.Logger, ttl time.Duration) *Registry {
	return &Registry{
		gen:      gen,
		log:      log,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Flow returns the visitor's flow, creating an idle one if needed.
func (r *Registry) Flow(id string) *Flow {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)

	s, ok := r.sessions[id]
	if !ok {
		s = &session{flow: NewFlow(r.gen, r.log)}
		r.sessions[id] = s
	}
	s.lastSeen = now
	metrics.StrategySessions.Set(float64(len(r.sessions)))

	return s.flow
}

// Peek returns the visitor's flow without creating or touching it.
func (r *Registry) Peek(id string) (*Flow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || r.expired(s, r.now()) {
		return nil, false
	}
	return s.flow, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(s *session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.lastSeen) > r.ttl
}

func (r *Registry) pruneLocked(now time.Time) {
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
		}
	}
}
