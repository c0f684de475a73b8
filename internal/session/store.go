package session

import (
	"sync"

	"backoffice/internal/domain"
)

// Store holds the authentication state of the gateway process. Transitions
// are synchronous and do no I/O; reading or writing the persisted credential
// is the caller's job (bootstrap controller, login and logout flows).
//
// The cycle is idle -> loading -> {success, error}, re-enterable: logout or
// a re-check moves back through loading. A success state always carries the
// credential it was reached with.
type Store struct {
	mu         sync.Mutex
	status     domain.SessionStatus
	credential string
}

func NewStore() *Store {
	return &Store{status: domain.SessionIdle}
}

// Begin enters loading. Used by the bootstrap controller and by an explicit
// login attempt. The held credential is untouched until the check resolves.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = domain.SessionLoading
}

// Succeed resolves the pending check with a valid credential.
func (s *Store) Succeed(credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = domain.SessionSuccess
	s.credential = credential
}

// Fail resolves the pending check negatively and drops any held credential.
func (s *Store) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = domain.SessionError
	s.credential = ""
}

// Logout re-enters loading and resolves to error in the same step. Logged
// out is always reachable without a network round-trip.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = domain.SessionError
	s.credential = ""
}

// Snapshot returns the current status and credential atomically.
func (s *Store) Snapshot() (domain.SessionStatus, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.credential
}

func (s *Store) Status() domain.SessionStatus {
	st, _ := s.Snapshot()
	return st
}

func (s *Store) Credential() string {
	_, cred := s.Snapshot()
	return cred
}
