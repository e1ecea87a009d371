package services

import (
	"context"
	"testing"

	"github.com/averde/postbox/internal/api"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockMessageRepository implements MessageRepository for testing
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) CheckSession(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageRepository) GetMessages(ctx context.Context) ([]api.MessageSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.MessageSummary), args.Error(1)
}

func (m *MockMessageRepository) GetMessage(ctx context.Context, id string) (*api.MessageDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.MessageDetail), args.Error(1)
}

func (m *MockMessageRepository) StarMessage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) MarkSpam(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockMessageRepository) UnmarkSpam(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockMessageRepository) SendMessage(ctx context.Context, draft Draft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockMessageRepository) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockInboxService implements InboxService for testing
type MockInboxService struct {
	mock.Mock
}

func (m *MockInboxService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInboxService) Messages() []api.MessageSummary {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]api.MessageSummary)
}

func (m *MockInboxService) UpdateField(id string, field FlagField, value bool) {
	m.Called(id, field, value)
}

// MockSessionService implements SessionService for testing
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionService) IsAuthenticated() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSessionService) Invalidate() {
	m.Called()
}

func (m *MockSessionService) Logout(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockSessionService) LoginURL() string {
	args := m.Called()
	return args.String(0)
}
