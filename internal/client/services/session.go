package services

import (
	"context"
	"sync"
)

// SessionListener is notified after the signed-in account changes. accountID
// is empty after a sign-out.
type SessionListener func(ctx context.Context, accountID string)

// Session holds the identity of the signed-in account, if any. It is safe for
// concurrent use.
type Session struct {
	mu        sync.RWMutex
	accountID string
	listeners []SessionListener
}

func NewSession() *Session {
	return &Session{}
}

// AccountID returns the signed-in account and whether there is one.
func (s *Session) AccountID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID, s.accountID != ""
}

func (s *Session) SignedIn() bool {
	_, ok := s.AccountID()
	return ok
}

// Subscribe registers l for every subsequent transition.
func (s *Session) Subscribe(l SessionListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// SignIn records accountID. Listeners run only when the account actually
// changes.
func (s *Session) SignIn(ctx context.Context, accountID string) {
	s.transition(ctx, accountID)
}

func (s *Session) SignOut(ctx context.Context) {
	s.transition(ctx, "")
}

func (s *Session) transition(ctx context.Context, accountID string) {
	s.mu.Lock()
	if s.accountID == accountID {
		s.mu.Unlock()
		return
	}
	s.accountID = accountID
	listeners := append([]SessionListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(ctx, accountID)
	}
}
