package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/averde/postbox/internal/api"
)

// InboxServiceImpl implements InboxService. Every mutation of the sequence is
// a whole-value replacement, so readers only ever observe complete states.
type InboxServiceImpl struct {
	repo MessageRepository

	mu       sync.RWMutex
	messages []api.MessageSummary

	session SessionService // Optional - set after construction to avoid circular dependencies
	logger  *log.Logger    // Optional - for debug logging
}

// NewInboxService creates a new inbox service.
func NewInboxService(repo MessageRepository) *InboxServiceImpl {
	return &InboxServiceImpl{
		repo: repo,
	}
}

// SetSessionService sets the session flipped when a load observes an
// unauthorized response. Called after initialization to avoid circular
// dependencies.
func (s *InboxServiceImpl) SetSessionService(session SessionService) {
	s.session = session
}

// SetLogger sets the logger for debug output.
func (s *InboxServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Load fetches the inbox and replaces the whole sequence. A fresh load always
// wins: locally mutated entries absent from the response disappear. On an
// unauthorized response the session flips and the sequence stays untouched.
func (s *InboxServiceImpl) Load(ctx context.Context) error {
	messages, err := s.repo.GetMessages(ctx)
	if err != nil {
		if IsAuthError(err) {
			if s.session != nil {
				s.session.Invalidate()
			}
			if s.logger != nil {
				s.logger.Printf("inbox load unauthorized, session invalidated")
			}
			return fmt.Errorf("inbox load unauthorized: %w", ErrUnauthorized)
		}
		if s.logger != nil {
			s.logger.Printf("inbox load failed, keeping current sequence: %v", err)
		}
		return fmt.Errorf("inbox load failed: %w", err)
	}

	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
	return nil
}

// Messages returns a snapshot copy in display order, which is the backend's
// insertion order; the store never re-sorts.
func (s *InboxServiceImpl) Messages() []api.MessageSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]api.MessageSummary, len(s.messages))
	copy(snapshot, s.messages)
	return snapshot
}

// UpdateField produces a new sequence where the entry matching id has field
// set to value and all other entries are unchanged. A non-matching id is a
// no-op. This is a pure local rewrite: no network, no failure mode.
func (s *InboxServiceImpl) UpdateField(id string, field FlagField, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]api.MessageSummary, len(s.messages))
	copy(next, s.messages)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case FieldStarred:
			next[i].Starred = value
		case FieldSpam:
			next[i].Spam = value
		}
	}
	s.messages = next
}
