package services

import (
	"context"
	"errors"
	"testing"

	"github.com/averde/postbox/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMessageService_Open_ValidationErrors(t *testing.T) {
	repo := &MockMessageRepository{}
	service := NewMessageService(repo)
	ctx := context.Background()

	detail, err := service.Open(ctx, "")
	assert.Error(t, err)
	assert.Nil(t, detail)
	assert.Contains(t, err.Error(), "message ID cannot be empty")
}

func TestMessageService_Open_Success(t *testing.T) {
	repo := &MockMessageRepository{}
	service := NewMessageService(repo)
	ctx := context.Background()

	want := &api.MessageDetail{ID: "m1", Subject: "Hello", Sender: "alice@example.com", Body: "<p>hi</p>"}
	repo.On("GetMessage", ctx, "m1").Return(want, nil)

	detail, err := service.Open(ctx, "m1")

	assert.NoError(t, err)
	assert.Equal(t, want, detail)
	assert.Equal(t, want, service.Current())
}

func TestMessageService_Open_FailureKeepsCurrentDetail(t *testing.T) {
	repo := &MockMessageRepository{}
	service := NewMessageService(repo)
	ctx := context.Background()

	first := &api.MessageDetail{ID: "m1", Subject: "Hello"}
	repo.On("GetMessage", ctx, "m1").Return(first, nil)
	_, err := service.Open(ctx, "m1")
	assert.NoError(t, err)

	repo.On("GetMessage", ctx, "m2").Return(nil, errors.New("not found"))
	detail, err := service.Open(ctx, "m2")

	assert.Error(t, err)
	assert.Nil(t, detail)
	// Superseding happened before the failure, so the held detail is the
	// newest successfully applied one
	assert.Equal(t, first, service.Current())
}

func TestMessageService_Open_SupersededResponseIsDiscarded(t *testing.T) {
	repo := &MockMessageRepository{}
	service := NewMessageService(repo)
	ctx := context.Background()

	stale := &api.MessageDetail{ID: "m1", Subject: "Old"}
	fresh := &api.MessageDetail{ID: "m2", Subject: "New"}

	// The second Open runs to completion while the first is still in
	// flight; the first response must not overwrite the second.
	repo.On("GetMessage", ctx, "m1").Return(stale, nil).Run(func(args mock.Arguments) {
		repo.On("GetMessage", ctx, "m2").Return(fresh, nil)
		detail, err := service.Open(ctx, "m2")
		assert.NoError(t, err)
		assert.Equal(t, fresh, detail)
	})

	detail, err := service.Open(ctx, "m1")

	assert.NoError(t, err)
	assert.Nil(t, detail)
	assert.Equal(t, fresh, service.Current())
}

func TestMessageService_Close_ClearsAndSupersedes(t *testing.T) {
	repo := &MockMessageRepository{}
	service := NewMessageService(repo)
	ctx := context.Background()

	held := &api.MessageDetail{ID: "m1"}
	repo.On("GetMessage", ctx, "m1").Return(held, nil)
	_, err := service.Open(ctx, "m1")
	assert.NoError(t, err)

	service.Close()

	assert.Nil(t, service.Current())
}

func TestMessageService_Close_DiscardsInFlightFetch(t *testing.T) {
	repo := &MockMessageRepository{}
	service := NewMessageService(repo)
	ctx := context.Background()

	late := &api.MessageDetail{ID: "m1"}
	repo.On("GetMessage", ctx, "m1").Return(late, nil).Run(func(args mock.Arguments) {
		service.Close()
	})

	detail, err := service.Open(ctx, "m1")

	assert.NoError(t, err)
	assert.Nil(t, detail)
	assert.Nil(t, service.Current())
}

func TestMessageService_Current_NilBeforeFirstOpen(t *testing.T) {
	repo := &MockMessageRepository{}
	service := NewMessageService(repo)

	assert.Nil(t, service.Current())
}
