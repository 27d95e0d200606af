package mocks

import (
	"context"
	"tribehub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MembershipRepository struct {
	mock.Mock
}

func (m *MembershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MembershipRepository) CreateIfAbsent(ctx context.Context, groupID, userID uuid.UUID) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MembershipRepository) Exists(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MembershipRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.Profile, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MembershipRepository) ListMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MembershipRepository) ListMemberUsernames(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]string), args.Error(1)
}
