package mocks

import (
	"context"
	"tribehub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReactionRepository struct {
	mock.Mock
}

func (m *ReactionRepository) Create(ctx context.Context, reaction *domain.Reaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *ReactionRepository) GetByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType domain.ReactionTarget, targetID uuid.UUID) (*domain.Reaction, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reaction), args.Error(1)
}

func (m *ReactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReactionRepository) CountByTarget(ctx context.Context, targetType domain.ReactionTarget, targetID uuid.UUID) (domain.ReactionCounts, error) {
	args := m.Called(ctx, targetType, targetID)
	return args.Get(0).(domain.ReactionCounts), args.Error(1)
}
