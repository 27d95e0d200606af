package mocks

import (
	"context"
	"tribehub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DiscussionRepository struct {
	mock.Mock
}

func (m *DiscussionRepository) Create(ctx context.Context, discussion *domain.Discussion) error {
	args := m.Called(ctx, discussion)
	return args.Error(0)
}

func (m *DiscussionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discussion), args.Error(1)
}

func (m *DiscussionRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Discussion, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]domain.Discussion), args.Error(1)
}
