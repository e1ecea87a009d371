package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/averde/postbox/internal/api"
)

// MessageRepositoryImpl implements MessageRepository over the backend client.
type MessageRepositoryImpl struct {
	client *api.Client
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(client *api.Client) *MessageRepositoryImpl {
	return &MessageRepositoryImpl{
		client: client,
	}
}

func (r *MessageRepositoryImpl) CheckSession(ctx context.Context) (bool, error) {
	ok, err := r.client.CheckSession(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return ok, nil
}

func (r *MessageRepositoryImpl) GetMessages(ctx context.Context) ([]api.MessageSummary, error) {
	messages, err := r.client.FetchInbox(ctx)
	if err != nil {
		if isUnauthorizedStatus(err) {
			return nil, fmt.Errorf("failed to get messages: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) GetMessage(ctx context.Context, id string) (*api.MessageDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("message ID cannot be empty")
	}
	detail, err := r.client.FetchMessage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id, err)
	}
	return detail, nil
}

func (r *MessageRepositoryImpl) StarMessage(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("message ID cannot be empty")
	}
	if err := r.client.Star(ctx, id); err != nil {
		return fmt.Errorf("failed to star message %s: %w", id, err)
	}
	return nil
}

func (r *MessageRepositoryImpl) MarkSpam(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("message ID cannot be empty")
	}
	msg, err := r.client.MarkSpam(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to mark message %s as spam: %w", id, err)
	}
	return msg, nil
}

func (r *MessageRepositoryImpl) UnmarkSpam(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("message ID cannot be empty")
	}
	msg, err := r.client.UnmarkSpam(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to unmark message %s as spam: %w", id, err)
	}
	return msg, nil
}

func (r *MessageRepositoryImpl) SendMessage(ctx context.Context, draft Draft) error {
	err := r.client.Send(ctx, draft.Recipient, draft.Subject, draft.Body)
	if err == nil {
		return nil
	}
	var sendErr *api.SendError
	if errors.As(err, &sendErr) {
		return &SendRejectedError{Reason: sendErr.Reason}
	}
	return fmt.Errorf("failed to send message: %w", err)
}

func (r *MessageRepositoryImpl) Logout(ctx context.Context) error {
	if err := r.client.Logout(ctx); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}

func isUnauthorizedStatus(err error) bool {
	var statusErr *api.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 401
}
