package page

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/showcase/internal/logger"
)

// Sessions holds the mounted pages. A page is created per document load
// and unmounted when the tab leaves or after it has been idle for the TTL.
type Sessions struct {
	deps Deps
	ttl  time.Duration
	log  *logger.Logger

	mu    sync.Mutex
	pages map[string]*Page
}

func NewSessions(d Deps, ttl time.Duration, log *logger.Logger) *Sessions {
	if log == nil {
		log = logger.Nop()
	}
	return &Sessions{
		deps:  d.withDefaults(),
		ttl:   ttl,
		log:   log.With("component", "Sessions"),
		pages: make(map[string]*Page),
	}
}

// Open mounts a new page under a fresh id.
func (s *Sessions) Open() *Page {
	p := New(uuid.NewString(), s.deps)
	p.Mount()

	s.mu.Lock()
	s.pages[p.ID] = p
	n := len(s.pages)
	s.mu.Unlock()

	s.log.Debug("Page mounted", "session_id", p.ID, "sessions", n)
	return p
}

// Get returns a mounted page and records activity on it.
func (s *Sessions) Get(id string) (*Page, bool) {
	s.mu.Lock()
	p, ok := s.pages[id]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	p.Touch()
	return p, true
}

// Close unmounts and forgets a page. It reports whether the page existed.
func (s *Sessions) Close(id string) bool {
	s.mu.Lock()
	p, ok := s.pages[id]
	delete(s.pages, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	p.Unmount()
	s.log.Debug("Page unmounted", "session_id", id)
	return true
}

// Sweep unmounts every page idle for longer than the TTL and returns how
// many were removed.
func (s *Sessions) Sweep() int {
	cutoff := s.deps.Clock.Now().Add(-s.ttl)

	s.mu.Lock()
	var idle []*Page
	for id, p := range s.pages {
		if p.LastSeen().Before(cutoff) {
			idle = append(idle, p)
			delete(s.pages, id)
		}
	}
	s.mu.Unlock()

	for _, p := range idle {
		p.Unmount()
	}
	if len(idle) > 0 {
		s.log.Info("Expired idle pages", "count", len(idle))
	}
	return len(idle)
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Run sweeps idle pages until ctx is done, then unmounts everything left.
func (s *Sessions) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Sessions) closeAll() {
	s.mu.Lock()
	pages := s.pages
	s.pages = make(map[string]*Page)
	s.mu.Unlock()
	for _, p := range pages {
		p.Unmount()
	}
}
