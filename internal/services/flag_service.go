package services

import (
	"context"
	"fmt"
	"log"
)

// FlagServiceImpl implements FlagService. Both operations follow
// remote-call-then-reconcile: the inbox mutates only after the backend
// confirmed, so no rollback path exists or is needed.
type FlagServiceImpl struct {
	repo  MessageRepository
	inbox InboxService

	logger *log.Logger // Optional - for debug logging
}

// NewFlagService creates a new flag service.
func NewFlagService(repo MessageRepository, inbox InboxService) *FlagServiceImpl {
	return &FlagServiceImpl{
		repo:  repo,
		inbox: inbox,
	}
}

// SetLogger sets the logger for debug output.
func (s *FlagServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Star marks the message starred and, on success only, reconciles the local
// entry to starred=true. The contract exposes no unstar action, so starred
// never transitions back to false here.
func (s *FlagServiceImpl) Star(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("message ID cannot be empty")
	}

	if err := s.repo.StarMessage(ctx, id); err != nil {
		if s.logger != nil {
			s.logger.Printf("star failed for %s, local state untouched: %v", id, err)
		}
		return err
	}

	s.inbox.UpdateField(id, FieldStarred, true)
	return nil
}

// ToggleSpam calls spam or unspam depending on the current state, returns the
// backend's confirmation text, and reconciles the local entry to the opposite
// state. On failure the displayed flag stays whatever it was.
func (s *FlagServiceImpl) ToggleSpam(ctx context.Context, id string, currentSpam bool) (string, error) {
	if id == "" {
		return "", fmt.Errorf("message ID cannot be empty")
	}

	var confirmation string
	var err error
	if currentSpam {
		confirmation, err = s.repo.UnmarkSpam(ctx, id)
	} else {
		confirmation, err = s.repo.MarkSpam(ctx, id)
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("spam toggle failed for %s, local state untouched: %v", id, err)
		}
		return "", err
	}

	s.inbox.UpdateField(id, FieldSpam, !currentSpam)
	return confirmation, nil
}
