package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// replySubjectPrefix seeds the subject of a reply draft.
const replySubjectPrefix = "Subject: "

// slotState is the full state of one draft slot: the draft itself, panel
// visibility, and an instance ID regenerated each time the panel opens so log
// lines can be correlated to one editing session.
type slotState struct {
	draft      Draft
	open       bool
	instanceID string
}

// ComposerServiceImpl implements ComposerService with two independent slots.
// No client-side validation happens anywhere: an empty recipient passes
// through to the backend, which is expected to reject it.
type ComposerServiceImpl struct {
	repo MessageRepository

	mu    sync.Mutex
	slots [2]slotState

	logger *log.Logger // Optional - for debug logging
}

// NewComposerService creates a new composer service with both slots closed
// and empty.
func NewComposerService(repo MessageRepository) *ComposerServiceImpl {
	return &ComposerServiceImpl{
		repo: repo,
	}
}

// SetLogger sets the logger for debug output.
func (s *ComposerServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

func (s *ComposerServiceImpl) OpenCompose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[SlotCompose] = slotState{
		draft:      Draft{},
		open:       true,
		instanceID: uuid.NewString(),
	}
}

// OpenReply seeds the reply slot with the sender's address and the fixed
// subject placeholder. The original message's content is not fetched into
// the draft. The compose slot is untouched.
func (s *ComposerServiceImpl) OpenReply(senderAddress string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[SlotReply] = slotState{
		draft: Draft{
			Recipient: senderAddress,
			Subject:   replySubjectPrefix,
		},
		open:       true,
		instanceID: uuid.NewString(),
	}
}

func (s *ComposerServiceImpl) UpdateField(slot DraftSlot, field DraftField, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case DraftRecipient:
		s.slots[slot].draft.Recipient = value
	case DraftSubject:
		s.slots[slot].draft.Subject = value
	case DraftBody:
		s.slots[slot].draft.Body = value
	}
}

func (s *ComposerServiceImpl) Draft(slot DraftSlot) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[slot].draft
}

func (s *ComposerServiceImpl) IsOpen(slot DraftSlot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[slot].open
}

// Send submits the slot's draft. On success the slot resets to empty and
// closes. On failure of any kind the draft and panel stay exactly as they
// were, so the user can correct and resubmit; a *SendRejectedError carries
// the backend's reason for display.
func (s *ComposerServiceImpl) Send(ctx context.Context, slot DraftSlot) error {
	s.mu.Lock()
	if !s.slots[slot].open {
		s.mu.Unlock()
		return fmt.Errorf("draft panel is not open")
	}
	draft := s.slots[slot].draft
	instanceID := s.slots[slot].instanceID
	s.mu.Unlock()

	if err := s.repo.SendMessage(ctx, draft); err != nil {
		if s.logger != nil {
			s.logger.Printf("send failed for draft %s, panel kept open: %v", instanceID, err)
		}
		return err
	}

	s.mu.Lock()
	s.slots[slot] = slotState{}
	s.mu.Unlock()
	return nil
}

func (s *ComposerServiceImpl) Cancel(slot DraftSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = slotState{}
}
