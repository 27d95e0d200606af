package mocks

import (
	"context"
	"tribehub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) Create(ctx context.Context, reply *domain.Reply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *ReplyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reply), args.Error(1)
}

func (m *ReplyRepository) ListByComment(ctx context.Context, commentID uuid.UUID) ([]domain.Reply, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).([]domain.Reply), args.Error(1)
}
