package services

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// SessionServiceImpl implements SessionService. The authenticated flag is the
// only session fact modeled client-side; the backend owns session truth
// through its cookie mechanism.
type SessionServiceImpl struct {
	repo     MessageRepository
	loginURL string

	mu            sync.RWMutex
	authenticated bool
	inboxLoaded   bool

	inbox  InboxService // Optional - set after construction to avoid circular dependencies
	logger *log.Logger  // Optional - for debug logging
}

// NewSessionService creates a new session service.
func NewSessionService(repo MessageRepository, loginURL string) *SessionServiceImpl {
	return &SessionServiceImpl{
		repo:     repo,
		loginURL: loginURL,
	}
}

// SetInboxService sets the inbox whose initial load Initialize triggers.
// Called after initialization to avoid circular dependencies.
func (s *SessionServiceImpl) SetInboxService(inbox InboxService) {
	s.inbox = inbox
}

// SetLogger sets the logger for debug output.
func (s *SessionServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Initialize performs the startup session check. A check failure is treated
// as unauthenticated so protected UI is never exposed without confirmed
// credentials; the failure is logged, not surfaced.
func (s *SessionServiceImpl) Initialize(ctx context.Context) error {
	ok, err := s.repo.CheckSession(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("session check failed, treating as unauthenticated: %v", err)
		}
		s.setAuthenticated(false)
		return fmt.Errorf("session check failed: %w", err)
	}

	s.setAuthenticated(ok)
	if !ok {
		return nil
	}

	// Trigger the inbox's initial load exactly once per process.
	s.mu.Lock()
	first := !s.inboxLoaded
	s.inboxLoaded = true
	s.mu.Unlock()

	if first && s.inbox != nil {
		if err := s.inbox.Load(ctx); err != nil {
			if s.logger != nil {
				s.logger.Printf("initial inbox load failed: %v", err)
			}
			return fmt.Errorf("initial inbox load failed: %w", err)
		}
	}
	return nil
}

func (s *SessionServiceImpl) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *SessionServiceImpl) Invalidate() {
	s.setAuthenticated(false)
}

// Logout flips the visible state before the server confirms. The backend
// call still runs to completion; its outcome only gets logged.
func (s *SessionServiceImpl) Logout(ctx context.Context) {
	s.setAuthenticated(false)
	if err := s.repo.Logout(ctx); err != nil {
		if s.logger != nil {
			s.logger.Printf("logout request failed after local transition: %v", err)
		}
	}
}

func (s *SessionServiceImpl) LoginURL() string {
	return s.loginURL
}

func (s *SessionServiceImpl) setAuthenticated(v bool) {
	s.mu.Lock()
	s.authenticated = v
	s.mu.Unlock()
}
