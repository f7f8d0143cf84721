package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jaminalder/history-tic-tac-toe/internal/game"
)

// ErrNotFound is returned for unknown session ids.
var ErrNotFound = errors.New("session not found")

// Session is the in-memory state tracked per player session.
type Session struct {
	ID      string
	State   game.State
	Created time.Time
	Updated time.Time
}

// Service owns every live session. Each Dispatch runs to completion under
// the lock before the next one starts.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session
	log      zerolog.Logger
	now      func() time.Time
}

// NewService creates an empty service.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		sessions: make(map[string]*Session),
		log:      logger.With().Str("component", "sessions").Logger(),
		now:      time.Now,
	}
}

// Create registers a fresh game.
func (s *Service) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess := &Session{ID: uuid.NewString(), State: game.New(), Created: now, Updated: now}
	s.sessions[sess.ID] = sess
	s.log.Info().Str("session", sess.ID).Msg("session created")
	return *sess
}

// Get returns a copy of the session if present.
func (s *Service) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Dispatch reduces the session state with a and returns the result.
func (s *Service) Dispatch(id string, a game.Action) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	sess.State = game.Reduce(sess.State, a)
	sess.Updated = s.now()
	s.log.Debug().
		Str("session", id).
		Stringer("action", a).
		Int("current", sess.State.Current).
		Int("history", len(sess.State.History)).
		Msg("dispatched")
	return *sess, nil
}

// Len reports the number of live sessions.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many
// were removed.
func (s *Service) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-maxIdle)
	n := 0
	for id, sess := range s.sessions {
		if sess.Updated.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	if n > 0 {
		s.log.Info().Int("removed", n).Int("live", len(s.sessions)).Msg("idle sessions swept")
	}
	return n
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *Service) Run(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(maxIdle)
		}
	}
}
