/*
Package session holds the single current candidate: restored from the local
cache at startup, set by login, dropped by logout. There is no multi-account
support; at most one candidate is current at any time.
*/
package session

import (
	"context"
	"errors"
	"sync"

	"applydesk-engine/internal/events"
	"applydesk-engine/internal/remote"
)

// ErrLoginInFlight is returned when a login is attempted while another one
// is still waiting on the API. The guard lives here, not in the rendered
// control, so rapid repeated submits cannot race.
var ErrLoginInFlight = errors.New("login already in flight")

// CandidateSource is the slice of the remote service the session needs.
type CandidateSource interface {
	CandidateByEmail(ctx context.Context, email string) (remote.Candidate, error)
	CachedCandidate() *remote.Candidate
	ClearCachedCandidate()
}

type Store struct {
	mu        sync.Mutex
	svc       CandidateSource
	hub       *events.Hub
	loading   bool
	inFlight  bool
	candidate *remote.Candidate
}

func New(svc CandidateSource, hub *events.Hub) *Store {
	return &Store{svc: svc, hub: hub, loading: true}
}

// Init restores a cached candidate if one exists and clears the loading
// flag. Runs once at startup.
func (s *Store) Init() {
	c := s.svc.CachedCandidate()

	s.mu.Lock()
	if c != nil {
		s.candidate = c
	}
	s.loading = false
	s.mu.Unlock()

	if c != nil {
		s.hub.Publish(events.MakeEvent("", events.TypeSessionChanged, 1,
			map[string]any{"authenticated": true, "restored": true}))
	}
}

// Login fetches the candidate for the given email. On failure the session
// drops back to anonymous and the error is returned untouched; the login
// view owns translating it into a message.
func (s *Store) Login(ctx context.Context, email string) (remote.Candidate, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return remote.Candidate{}, ErrLoginInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	c, err := s.svc.CandidateByEmail(ctx, email)

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.candidate = nil
		s.mu.Unlock()
		return remote.Candidate{}, err
	}
	s.candidate = &c
	s.mu.Unlock()

	s.hub.Publish(events.MakeEvent("", events.TypeSessionChanged, 1,
		map[string]any{"authenticated": true}))
	return c, nil
}

// Logout clears the cache and drops the in-memory candidate. Idempotent and
// cannot fail.
func (s *Store) Logout() {
	s.svc.ClearCachedCandidate()

	s.mu.Lock()
	wasAuthed := s.candidate != nil
	s.candidate = nil
	s.mu.Unlock()

	if wasAuthed {
		s.hub.Publish(events.MakeEvent("", events.TypeSessionChanged, 1,
			map[string]any{"authenticated": false}))
	}
}

// Candidate returns a copy of the current candidate, or nil when anonymous.
func (s *Store) Candidate() *remote.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.candidate == nil {
		return nil
	}
	c := *s.candidate
	return &c
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) LoginInFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}
