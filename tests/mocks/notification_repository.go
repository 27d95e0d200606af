package mocks

import (
	"context"
	"tribehub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID, params domain.PaginationParams) ([]domain.NotificationView, int64, error) {
	args := m.Called(ctx, receiverID, params)
	return args.Get(0).([]domain.NotificationView), args.Get(1).(int64), args.Error(2)
}

func (m *NotificationRepository) ListByReceiverAndGroup(ctx context.Context, receiverID, groupID uuid.UUID) ([]domain.NotificationView, error) {
	args := m.Called(ctx, receiverID, groupID)
	return args.Get(0).([]domain.NotificationView), args.Error(1)
}

func (m *NotificationRepository) ListByReceiverAndType(ctx context.Context, receiverID uuid.UUID, notifType domain.NotificationType) ([]domain.NotificationView, error) {
	args := m.Called(ctx, receiverID, notifType)
	return args.Get(0).([]domain.NotificationView), args.Error(1)
}

func (m *NotificationRepository) GetUnreadByReceiverGroupAndType(ctx context.Context, receiverID, groupID uuid.UUID, notifType domain.NotificationType) (*domain.Notification, error) {
	args := m.Called(ctx, receiverID, groupID, notifType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationRepository) MarkAllAsRead(ctx context.Context, receiverID uuid.UUID) error {
	args := m.Called(ctx, receiverID)
	return args.Error(0)
}

func (m *NotificationRepository) MarkDiscussionAsRead(ctx context.Context, receiverID, groupID, discussionID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, receiverID, groupID, discussionID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationRepository) CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
