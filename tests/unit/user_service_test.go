package unit_test

import (
	"context"
	"errors"
	"testing"

	"tribehub/internal/domain"
	"tribehub/internal/repository"
	"tribehub/internal/service"
	"tribehub/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := service.NewUserService(userRepo, nil)

		existing := &domain.User{ID: userID, Name: "Alice Smith", Username: "alice"}
		userRepo.On("GetByID", ctx, userID).Return(existing, nil).Once()

		user, err := svc.GetByID(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Unknown User", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := service.NewUserService(userRepo, nil)

		userRepo.On("GetByID", ctx, userID).Return(nil, nil).Once()

		user, err := svc.GetByID(ctx, userID)

		assert.Nil(t, user)
		var notFoundErr *service.NotFoundError
		assert.True(t, errors.As(err, &notFoundErr))
	})
}

func TestUserService_SuggestUsernames(t *testing.T) {
	ctx := context.Background()

	t.Run("Skips Taken Candidates", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := service.NewUserService(userRepo, nil)

		userRepo.On("ListUsernamesByPrefix", ctx, "alice").Return([]string{"alice1", "alice3"}, nil).Once()

		suggestions, err := svc.SuggestUsernames(ctx, "alice")

		assert.NoError(t, err)
		assert.Equal(t, []string{"alice2", "alice4", "alice5", "alice6", "alice7"}, suggestions)
	})

	t.Run("Empty Partial", func(t *testing.T) {
		svc := service.NewUserService(new(mocks.UserRepository), nil)

		suggestions, err := svc.SuggestUsernames(ctx, "")

		assert.Nil(t, suggestions)
		var validationErr *service.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	existing := &domain.User{
		ID:       userID,
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Username: "alice",
	}

	t.Run("Title-Cases Sex", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := service.NewUserService(userRepo, nil)

		sex := "female"
		current := *existing
		userRepo.On("GetByID", ctx, userID).Return(&current, nil).Once()
		userRepo.On("Update", ctx, &current).Return(nil).Once()

		updated, err := svc.Update(ctx, userID, domain.UpdateUserInput{
			Name:     "Alice Smith",
			Email:    "alice@example.com",
			Username: "alice",
			Sex:      &sex,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Female", *updated.Sex)
	})

	t.Run("Taken Username Conflicts", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := service.NewUserService(userRepo, nil)

		current := *existing
		userRepo.On("GetByID", ctx, userID).Return(&current, nil).Once()
		userRepo.On("Update", ctx, &current).Return(repository.ErrDuplicate).Once()

		updated, err := svc.Update(ctx, userID, domain.UpdateUserInput{
			Name:     "Alice Smith",
			Email:    "alice@example.com",
			Username: "bob",
		})

		assert.Nil(t, updated)
		var conflictErr *service.ConflictError
		assert.True(t, errors.As(err, &conflictErr))
	})

	t.Run("Invalid Email", func(t *testing.T) {
		svc := service.NewUserService(new(mocks.UserRepository), nil)

		updated, err := svc.Update(ctx, userID, domain.UpdateUserInput{
			Name:     "Alice Smith",
			Email:    "nope",
			Username: "alice",
		})

		assert.Nil(t, updated)
		var validationErr *service.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}
