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
	"github.com/stretchr/testify/mock"
)

func newGroupService(groupRepo *mocks.GroupRepository, membershipRepo *mocks.MembershipRepository, userRepo *mocks.UserRepository, discussionRepo *mocks.DiscussionRepository) service.GroupService {
	return service.NewGroupService(groupRepo, membershipRepo, userRepo, discussionRepo)
}

func TestGroupService_Create(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		membershipRepo := new(mocks.MembershipRepository)
		svc := newGroupService(groupRepo, membershipRepo, new(mocks.UserRepository), new(mocks.DiscussionRepository))

		input := domain.CreateGroupInput{Name: "Hiking Club", Description: "Weekend hikes around the city"}

		groupRepo.On("Create", ctx, mock.MatchedBy(func(g *domain.Group) bool {
			return g.Name == input.Name && g.CreatorID == creatorID
		})).Return(nil).Once()
		membershipRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Membership) bool {
			return m.UserID == creatorID
		})).Return(nil).Once()

		group, err := svc.Create(ctx, creatorID, input)

		assert.NoError(t, err)
		assert.NotNil(t, group)
		assert.Equal(t, input.Name, group.Name)
		groupRepo.AssertExpectations(t)
		membershipRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		svc := newGroupService(groupRepo, new(mocks.MembershipRepository), new(mocks.UserRepository), new(mocks.DiscussionRepository))

		groupRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate).Once()

		group, err := svc.Create(ctx, creatorID, domain.CreateGroupInput{Name: "Hiking Club", Description: "Weekend hikes around the city"})

		assert.Nil(t, group)
		var conflictErr *service.ConflictError
		assert.True(t, errors.As(err, &conflictErr))
		assert.Contains(t, err.Error(), "Group already exists")
	})

	t.Run("Name Too Short", func(t *testing.T) {
		svc := newGroupService(new(mocks.GroupRepository), new(mocks.MembershipRepository), new(mocks.UserRepository), new(mocks.DiscussionRepository))

		group, err := svc.Create(ctx, creatorID, domain.CreateGroupInput{Name: "ab", Description: "long enough description"})

		assert.Nil(t, group)
		var validationErr *service.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("Description Too Short", func(t *testing.T) {
		svc := newGroupService(new(mocks.GroupRepository), new(mocks.MembershipRepository), new(mocks.UserRepository), new(mocks.DiscussionRepository))

		group, err := svc.Create(ctx, creatorID, domain.CreateGroupInput{Name: "Hiking Club", Description: "short"})

		assert.Nil(t, group)
		var validationErr *service.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestGroupService_Update(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()
	otherID := uuid.New()
	groupID := uuid.New()

	existing := &domain.Group{ID: groupID, Name: "Hiking Club", Description: "Weekend hikes", CreatorID: creatorID}
	input := domain.UpdateGroupInput{Name: "Trail Club", Description: "Trails and camping trips"}

	t.Run("Success", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		svc := newGroupService(groupRepo, new(mocks.MembershipRepository), new(mocks.UserRepository), new(mocks.DiscussionRepository))

		groupRepo.On("GetByID", ctx, groupID).Return(existing, nil).Once()
		groupRepo.On("Update", ctx, mock.MatchedBy(func(g *domain.Group) bool {
			return g.ID == groupID && g.Name == "Trail Club"
		})).Return(nil).Once()

		group, err := svc.Update(ctx, groupID, creatorID, input)

		assert.NoError(t, err)
		assert.Equal(t, "Trail Club", group.Name)
		groupRepo.AssertExpectations(t)
	})

	t.Run("Not Creator", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		svc := newGroupService(groupRepo, new(mocks.MembershipRepository), new(mocks.UserRepository), new(mocks.DiscussionRepository))

		groupRepo.On("GetByID", ctx, groupID).Return(existing, nil).Once()

		group, err := svc.Update(ctx, groupID, otherID, input)

		assert.Nil(t, group)
		var forbiddenErr *service.ForbiddenError
		assert.True(t, errors.As(err, &forbiddenErr))
	})

	t.Run("Group Missing", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		svc := newGroupService(groupRepo, new(mocks.MembershipRepository), new(mocks.UserRepository), new(mocks.DiscussionRepository))

		groupRepo.On("GetByID", ctx, groupID).Return(nil, nil).Once()

		group, err := svc.Update(ctx, groupID, creatorID, input)

		assert.Nil(t, group)
		var notFoundErr *service.NotFoundError
		assert.True(t, errors.As(err, &notFoundErr))
	})
}

func TestGroupService_Delete(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()
	otherID := uuid.New()
	groupID := uuid.New()

	existing := &domain.Group{ID: groupID, Name: "Hiking Club", CreatorID: creatorID}

	t.Run("Success", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		svc := newGroupService(groupRepo, new(mocks.MembershipRepository), new(mocks.UserRepository), new(mocks.DiscussionRepository))

		groupRepo.On("GetByID", ctx, groupID).Return(existing, nil).Once()
		groupRepo.On("Delete", ctx, groupID).Return(nil).Once()

		err := svc.Delete(ctx, groupID, creatorID)

		assert.NoError(t, err)
		groupRepo.AssertExpectations(t)
	})

	t.Run("Not Creator", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		svc := newGroupService(groupRepo, new(mocks.MembershipRepository), new(mocks.UserRepository), new(mocks.DiscussionRepository))

		groupRepo.On("GetByID", ctx, groupID).Return(existing, nil).Once()

		err := svc.Delete(ctx, groupID, otherID)

		var forbiddenErr *service.ForbiddenError
		assert.True(t, errors.As(err, &forbiddenErr))
		groupRepo.AssertNotCalled(t, "Delete", ctx, groupID)
	})
}

func TestGroupService_Join(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	groupID := uuid.New()

	existing := &domain.Group{ID: groupID, Name: "Hiking Club", CreatorID: uuid.New()}

	t.Run("Success", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		membershipRepo := new(mocks.MembershipRepository)
		svc := newGroupService(groupRepo, membershipRepo, new(mocks.UserRepository), new(mocks.DiscussionRepository))

		groupRepo.On("GetByID", ctx, groupID).Return(existing, nil).Once()
		membershipRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Membership) bool {
			return m.GroupID == groupID && m.UserID == userID
		})).Return(nil).Once()

		group, err := svc.Join(ctx, groupID, userID)

		assert.NoError(t, err)
		assert.Equal(t, existing.Name, group.Name)
		membershipRepo.AssertExpectations(t)
	})

	t.Run("Already Member", func(t *testing.T) {
		groupRepo := new(mocks.GroupRepository)
		membershipRepo := new(mocks.MembershipRepository)
		svc := newGroupService(groupRepo, membershipRepo, new(mocks.UserRepository), new(mocks.DiscussionRepository))

		groupRepo.On("GetByID", ctx, groupID).Return(existing, nil).Once()
		membershipRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate).Once()

		group, err := svc.Join(ctx, groupID, userID)

		assert.Nil(t, group)
		var conflictErr *service.ConflictError
		assert.True(t, errors.As(err, &conflictErr))
	})
}
