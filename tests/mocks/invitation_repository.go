package mocks

import (
	"context"
	"tribehub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type InvitationRepository struct {
	mock.Mock
}

func (m *InvitationRepository) Create(ctx context.Context, invitation *domain.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *InvitationRepository) GetPending(ctx context.Context, groupID, receiverID uuid.UUID) (*domain.Invitation, error) {
	args := m.Called(ctx, groupID, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *InvitationRepository) HasPending(ctx context.Context, groupID, receiverID uuid.UUID) (bool, error) {
	args := m.Called(ctx, groupID, receiverID)
	return args.Bool(0), args.Error(1)
}

func (m *InvitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvitationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *InvitationRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]domain.Invitation, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).([]domain.Invitation), args.Error(1)
}
