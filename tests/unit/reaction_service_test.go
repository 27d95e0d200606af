package unit_test

import (
	"context"
	"errors"
	"testing"

	"tribehub/internal/domain"
	"tribehub/internal/service"
	"tribehub/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type reactionFixture struct {
	reactionRepo   *mocks.ReactionRepository
	discussionRepo *mocks.DiscussionRepository
	commentRepo    *mocks.CommentRepository
	groupRepo      *mocks.GroupRepository
	membershipRepo *mocks.MembershipRepository
	userRepo       *mocks.UserRepository
	notifRepo      *mocks.NotificationRepository
	svc            service.ReactionService
}

func newReactionFixture() *reactionFixture {
	f := &reactionFixture{
		reactionRepo:   new(mocks.ReactionRepository),
		discussionRepo: new(mocks.DiscussionRepository),
		commentRepo:    new(mocks.CommentRepository),
		groupRepo:      new(mocks.GroupRepository),
		membershipRepo: new(mocks.MembershipRepository),
		userRepo:       new(mocks.UserRepository),
		notifRepo:      new(mocks.NotificationRepository),
	}
	f.svc = service.NewReactionService(f.reactionRepo, f.discussionRepo, f.commentRepo, f.groupRepo, f.membershipRepo, f.userRepo, f.notifRepo)
	return f
}

func TestReactionService_React(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	authorID := uuid.New()
	groupID := uuid.New()
	discussionID := uuid.New()

	discussion := &domain.Discussion{ID: discussionID, GroupID: groupID, AuthorID: authorID, Title: "First hike"}
	group := &domain.Group{ID: groupID, Name: "Hiking Club"}
	user := &domain.User{ID: userID, Name: "Bob", Username: "bob"}

	expectMember := func(f *reactionFixture) {
		f.discussionRepo.On("GetByID", ctx, discussionID).Return(discussion, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, userID).Return(true, nil).Once()
	}

	t.Run("New Like Notifies Author", func(t *testing.T) {
		f := newReactionFixture()
		expectMember(f)

		f.reactionRepo.On("GetByUserAndTarget", ctx, userID, domain.TargetDiscussion, discussionID).Return(nil, nil).Once()
		f.reactionRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Reaction) bool {
			return r.Kind == domain.ReactionLike && r.TargetID == discussionID
		})).Return(nil).Once()
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
		f.notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifReaction && n.ReceiverID == authorID
		})).Return(nil).Once()

		result, err := f.svc.React(ctx, userID, domain.TargetDiscussion, discussionID, domain.ReactionLike)

		assert.NoError(t, err)
		assert.True(t, result.Applied)
		f.notifRepo.AssertExpectations(t)
	})

	t.Run("New Dislike Stays Silent", func(t *testing.T) {
		f := newReactionFixture()
		expectMember(f)

		f.reactionRepo.On("GetByUserAndTarget", ctx, userID, domain.TargetDiscussion, discussionID).Return(nil, nil).Once()
		f.reactionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		result, err := f.svc.React(ctx, userID, domain.TargetDiscussion, discussionID, domain.ReactionDislike)

		assert.NoError(t, err)
		assert.True(t, result.Applied)
		f.notifRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("Same Kind Toggles Off", func(t *testing.T) {
		f := newReactionFixture()
		expectMember(f)

		existing := &domain.Reaction{ID: uuid.New(), UserID: userID, TargetType: domain.TargetDiscussion, TargetID: discussionID, Kind: domain.ReactionLike}
		f.reactionRepo.On("GetByUserAndTarget", ctx, userID, domain.TargetDiscussion, discussionID).Return(existing, nil).Once()
		f.reactionRepo.On("Delete", ctx, existing.ID).Return(nil).Once()

		result, err := f.svc.React(ctx, userID, domain.TargetDiscussion, discussionID, domain.ReactionLike)

		assert.NoError(t, err)
		assert.False(t, result.Applied)
		f.reactionRepo.AssertExpectations(t)
	})

	t.Run("Opposite Kind Conflicts", func(t *testing.T) {
		f := newReactionFixture()
		expectMember(f)

		existing := &domain.Reaction{ID: uuid.New(), UserID: userID, TargetType: domain.TargetDiscussion, TargetID: discussionID, Kind: domain.ReactionDislike}
		f.reactionRepo.On("GetByUserAndTarget", ctx, userID, domain.TargetDiscussion, discussionID).Return(existing, nil).Once()

		result, err := f.svc.React(ctx, userID, domain.TargetDiscussion, discussionID, domain.ReactionLike)

		assert.Nil(t, result)
		var conflictErr *service.ConflictError
		assert.True(t, errors.As(err, &conflictErr))
		f.reactionRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("Non-Member Forbidden", func(t *testing.T) {
		f := newReactionFixture()

		f.discussionRepo.On("GetByID", ctx, discussionID).Return(discussion, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, userID).Return(false, nil).Once()

		result, err := f.svc.React(ctx, userID, domain.TargetDiscussion, discussionID, domain.ReactionLike)

		assert.Nil(t, result)
		var forbiddenErr *service.ForbiddenError
		assert.True(t, errors.As(err, &forbiddenErr))
	})

	t.Run("Invalid Kind", func(t *testing.T) {
		f := newReactionFixture()

		result, err := f.svc.React(ctx, userID, domain.TargetDiscussion, discussionID, domain.ReactionKind("love"))

		assert.Nil(t, result)
		var validationErr *service.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("Comment Like Notifies Comment Author", func(t *testing.T) {
		f := newReactionFixture()
		commentID := uuid.New()
		commentAuthorID := uuid.New()
		comment := &domain.Comment{ID: commentID, DiscussionID: discussionID, AuthorID: commentAuthorID}

		f.commentRepo.On("GetByID", ctx, commentID).Return(comment, nil).Once()
		f.discussionRepo.On("GetByID", ctx, discussionID).Return(discussion, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, userID).Return(true, nil).Once()
		f.reactionRepo.On("GetByUserAndTarget", ctx, userID, domain.TargetComment, commentID).Return(nil, nil).Once()
		f.reactionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
		f.notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.ReceiverID == commentAuthorID && n.Type == domain.NotifReaction
		})).Return(nil).Once()

		result, err := f.svc.React(ctx, userID, domain.TargetComment, commentID, domain.ReactionLike)

		assert.NoError(t, err)
		assert.True(t, result.Applied)
		f.notifRepo.AssertExpectations(t)
	})
}
