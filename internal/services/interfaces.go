package services

import (
	"context"

	"github.com/averde/postbox/internal/api"
)

// MessageRepository handles message data operations against the backend.
type MessageRepository interface {
	CheckSession(ctx context.Context) (bool, error)
	GetMessages(ctx context.Context) ([]api.MessageSummary, error)
	GetMessage(ctx context.Context, id string) (*api.MessageDetail, error)
	StarMessage(ctx context.Context, id string) error
	MarkSpam(ctx context.Context, id string) (string, error)
	UnmarkSpam(ctx context.Context, id string) (string, error)
	SendMessage(ctx context.Context, draft Draft) error
	Logout(ctx context.Context) error
}

// SessionService gates every other operation on the client's belief about
// whether the current backend credentials are valid.
type SessionService interface {
	// Initialize performs the startup session check. Any failure is treated
	// as unauthenticated (fail-closed). On success it triggers the inbox's
	// initial load exactly once.
	Initialize(ctx context.Context) error
	IsAuthenticated() bool
	// Invalidate flips the session to unauthenticated; called by any
	// component that observes an unauthorized response.
	Invalidate()
	// Logout flips the session optimistically and dispatches the backend
	// logout without awaiting its acknowledgment.
	Logout(ctx context.Context)
	// LoginURL is the backend endpoint that starts the browser auth flow.
	LoginURL() string
}

// FlagField names a mutable boolean flag on a message summary.
type FlagField string

const (
	FieldStarred FlagField = "starred"
	FieldSpam    FlagField = "spam"
)

// InboxService owns the ordered in-memory list of message summaries. It is
// the single source of truth for the list view and the single point through
// which all optimistic local mutations pass.
type InboxService interface {
	// Load replaces the entire sequence with the backend's response. There
	// is no merge: entries absent from the new response disappear, even if
	// locally flag-mutated. An unauthorized response flips the session
	// instead of setting data.
	Load(ctx context.Context) error
	// Messages returns a snapshot copy of the current sequence in display
	// order.
	Messages() []api.MessageSummary
	// UpdateField rewrites the entry matching id with field set to value,
	// leaving every other entry unchanged. It never talks to the network
	// and never fails; an absent id is a no-op.
	UpdateField(id string, field FlagField, value bool)
}

// MessageService fetches and holds the full body of at most one message.
type MessageService interface {
	// Open fetches the message and replaces the held detail. Responses
	// superseded by a newer Open or Close are discarded, never applied.
	Open(ctx context.Context, id string) (*api.MessageDetail, error)
	// Current returns the held detail, or nil when no message is open.
	Current() *api.MessageDetail
	// Close clears the held detail unconditionally.
	Close()
}

// FlagService applies starred/spam changes with confirm-then-apply ordering:
// local state mutates only after the remote call succeeded.
type FlagService interface {
	// Star marks the message starred. One-way by contract: there is no
	// unstar endpoint.
	Star(ctx context.Context, id string) error
	// ToggleSpam calls the opposite-action endpoint for the current state
	// and returns the backend's confirmation text for display.
	ToggleSpam(ctx context.Context, id string, currentSpam bool) (string, error)
}

// DraftSlot identifies one of the two independent draft instances.
type DraftSlot int

const (
	SlotCompose DraftSlot = iota
	SlotReply
)

// DraftField names one of a draft's three free-text fields.
type DraftField string

const (
	DraftRecipient DraftField = "recipient"
	DraftSubject   DraftField = "subject"
	DraftBody      DraftField = "body"
)

// Draft is an editable, unsent message. Drafts live only in memory.
type Draft struct {
	Recipient string
	Subject   string
	Body      string
}

// ComposerService holds the compose and reply draft slots and performs
// submission. The two slots never affect each other.
type ComposerService interface {
	// OpenCompose opens the compose slot with an empty draft.
	OpenCompose()
	// OpenReply opens the reply slot seeded with the sender's address and
	// the fixed subject placeholder. It does not fetch the original
	// message's content.
	OpenReply(senderAddress string)
	// UpdateField mutates one field of the slot's draft.
	UpdateField(slot DraftSlot, field DraftField, value string)
	// Draft returns a copy of the slot's current draft.
	Draft(slot DraftSlot) Draft
	// IsOpen reports whether the slot's panel is visible.
	IsOpen(slot DraftSlot) bool
	// Send submits the slot's draft without client-side validation. On
	// success the slot resets and closes; on any failure the draft and
	// panel are left intact for correction.
	Send(ctx context.Context, slot DraftSlot) error
	// Cancel hides the slot's panel and resets its draft.
	Cancel(slot DraftSlot)
}
