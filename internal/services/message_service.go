package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/averde/postbox/internal/api"
)

// MessageServiceImpl implements MessageService. It owns the single "currently
// viewed" detail; selecting a new message discards the previous one. In-flight
// fetches are never cancelled, but a monotonic sequence token ensures a
// superseded response is discarded instead of overwriting a newer result.
type MessageServiceImpl struct {
	repo MessageRepository

	mu      sync.Mutex
	seq     uint64
	current *api.MessageDetail

	logger *log.Logger // Optional - for debug logging
}

// NewMessageService creates a new message detail service.
func NewMessageService(repo MessageRepository) *MessageServiceImpl {
	return &MessageServiceImpl{
		repo: repo,
	}
}

// SetLogger sets the logger for debug output.
func (s *MessageServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Open fetches the message's full content and replaces the held detail. On
// failure the held detail is left unchanged and no retry happens. A response
// that arrives after a newer Open or Close is dropped; the returned detail is
// nil in that case.
func (s *MessageServiceImpl) Open(ctx context.Context, id string) (*api.MessageDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("message ID cannot be empty")
	}

	s.mu.Lock()
	s.seq++
	token := s.seq
	s.mu.Unlock()

	detail, err := s.repo.GetMessage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to open message %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		if s.logger != nil {
			s.logger.Printf("discarding superseded detail response for %s", id)
		}
		return nil, nil
	}
	s.current = detail
	return detail, nil
}

// Current returns the held detail, or nil when no message is open.
func (s *MessageServiceImpl) Current() *api.MessageDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Close clears the held detail unconditionally and supersedes any fetch
// still in flight.
func (s *MessageServiceImpl) Close() {
	s.mu.Lock()
	s.seq++
	s.current = nil
	s.mu.Unlock()
}
