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

type discussionFixture struct {
	discussionRepo *mocks.DiscussionRepository
	commentRepo    *mocks.CommentRepository
	replyRepo      *mocks.ReplyRepository
	reactionRepo   *mocks.ReactionRepository
	groupRepo      *mocks.GroupRepository
	membershipRepo *mocks.MembershipRepository
	userRepo       *mocks.UserRepository
	notifRepo      *mocks.NotificationRepository
	svc            service.DiscussionService
}

func newDiscussionFixture() *discussionFixture {
	f := &discussionFixture{
		discussionRepo: new(mocks.DiscussionRepository),
		commentRepo:    new(mocks.CommentRepository),
		replyRepo:      new(mocks.ReplyRepository),
		reactionRepo:   new(mocks.ReactionRepository),
		groupRepo:      new(mocks.GroupRepository),
		membershipRepo: new(mocks.MembershipRepository),
		userRepo:       new(mocks.UserRepository),
		notifRepo:      new(mocks.NotificationRepository),
	}
	f.svc = service.NewDiscussionService(
		f.discussionRepo, f.commentRepo, f.replyRepo, f.reactionRepo,
		f.groupRepo, f.membershipRepo, f.userRepo, f.notifRepo,
		nil, // Redis nil
	)
	return f
}

func TestDiscussionService_Create(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	authorID := uuid.New()
	memberID := uuid.New()

	group := &domain.Group{ID: groupID, Name: "Hiking Club"}
	author := &domain.User{ID: authorID, Name: "Alice", Username: "alice"}
	input := domain.CreateDiscussionInput{GroupID: groupID, Title: "First hike", Content: "Where should we go first?"}

	t.Run("Fans Out To All Members", func(t *testing.T) {
		f := newDiscussionFixture()

		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, authorID).Return(true, nil).Once()
		f.userRepo.On("GetByID", ctx, authorID).Return(author, nil).Once()
		f.discussionRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Discussion) bool {
			return d.GroupID == groupID && d.AuthorID == authorID && d.Title == input.Title
		})).Return(nil).Once()
		f.membershipRepo.On("ListMemberIDs", ctx, groupID).Return([]uuid.UUID{authorID, memberID}, nil).Once()
		f.notifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifDiscussionCreated && n.GroupID == groupID
		})).Return(nil).Times(2)

		discussion, err := f.svc.Create(ctx, authorID, input)

		assert.NoError(t, err)
		assert.NotNil(t, discussion)
		f.notifRepo.AssertExpectations(t)
	})

	t.Run("Failed Notification Insert Fails The Request", func(t *testing.T) {
		f := newDiscussionFixture()
		insertErr := errors.New("insert failed")

		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, authorID).Return(true, nil).Once()
		f.userRepo.On("GetByID", ctx, authorID).Return(author, nil).Once()
		f.discussionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.membershipRepo.On("ListMemberIDs", ctx, groupID).Return([]uuid.UUID{authorID, memberID}, nil).Once()
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(insertErr)

		discussion, err := f.svc.Create(ctx, authorID, input)

		assert.Nil(t, discussion)
		assert.ErrorIs(t, err, insertErr)
	})

	t.Run("Non-Member Forbidden", func(t *testing.T) {
		f := newDiscussionFixture()

		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, authorID).Return(false, nil).Once()

		discussion, err := f.svc.Create(ctx, authorID, input)

		assert.Nil(t, discussion)
		var forbiddenErr *service.ForbiddenError
		assert.True(t, errors.As(err, &forbiddenErr))
	})

	t.Run("Title Too Short", func(t *testing.T) {
		f := newDiscussionFixture()

		discussion, err := f.svc.Create(ctx, authorID, domain.CreateDiscussionInput{GroupID: groupID, Title: "hi", Content: "long enough content"})

		assert.Nil(t, discussion)
		var validationErr *service.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestDiscussionService_Get(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	userID := uuid.New()
	authorID := uuid.New()
	discussionID := uuid.New()
	commentID := uuid.New()

	group := &domain.Group{ID: groupID, Name: "Hiking Club"}
	author := &domain.User{ID: authorID, Name: "Alice", Username: "alice"}
	discussion := &domain.Discussion{ID: discussionID, GroupID: groupID, AuthorID: authorID, Title: "First hike"}

	t.Run("Assembles Detail", func(t *testing.T) {
		f := newDiscussionFixture()

		f.discussionRepo.On("GetByID", ctx, discussionID).Return(discussion, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, userID).Return(true, nil).Once()
		f.commentRepo.On("ListByDiscussion", ctx, discussionID).Return([]domain.Comment{
			{ID: commentID, DiscussionID: discussionID, AuthorID: userID, Content: "count me in"},
		}, nil).Once()
		f.replyRepo.On("ListByComment", ctx, commentID).Return([]domain.Reply{}, nil).Once()
		f.reactionRepo.On("CountByTarget", ctx, domain.TargetDiscussion, discussionID).Return(domain.ReactionCounts{Likes: 3, Dislikes: 1}, nil).Once()
		f.userRepo.On("GetByID", ctx, authorID).Return(author, nil).Once()

		detail, err := f.svc.Get(ctx, discussionID, userID)

		assert.NoError(t, err)
		assert.Len(t, detail.Comments, 1)
		assert.Equal(t, int64(3), detail.Likes)
		assert.Equal(t, int64(1), detail.Dislikes)
		assert.Equal(t, "alice", detail.Creator.Username)
	})

	t.Run("Missing Discussion", func(t *testing.T) {
		f := newDiscussionFixture()

		f.discussionRepo.On("GetByID", ctx, discussionID).Return(nil, nil).Once()

		detail, err := f.svc.Get(ctx, discussionID, userID)

		assert.Nil(t, detail)
		var notFoundErr *service.NotFoundError
		assert.True(t, errors.As(err, &notFoundErr))
	})
}

func TestDiscussionService_AddComment(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	authorID := uuid.New()
	commenterID := uuid.New()
	discussionID := uuid.New()

	group := &domain.Group{ID: groupID, Name: "Hiking Club"}
	discussion := &domain.Discussion{ID: discussionID, GroupID: groupID, AuthorID: authorID, Title: "First hike"}
	commenter := &domain.User{ID: commenterID, Name: "Bob", Username: "bob"}

	t.Run("Notifies Discussion Author", func(t *testing.T) {
		f := newDiscussionFixture()

		f.discussionRepo.On("GetByID", ctx, discussionID).Return(discussion, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, commenterID).Return(true, nil).Once()
		f.userRepo.On("GetByID", ctx, commenterID).Return(commenter, nil).Once()
		f.commentRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.DiscussionID == discussionID && c.AuthorID == commenterID
		})).Return(nil).Once()
		f.notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifNewComment && n.ReceiverID == authorID
		})).Return(nil).Once()

		comment, err := f.svc.AddComment(ctx, commenterID, domain.CreateCommentInput{DiscussionID: discussionID, Content: "count me in"})

		assert.NoError(t, err)
		assert.Equal(t, "bob", comment.Author.Username)
		f.notifRepo.AssertExpectations(t)
	})

	t.Run("Author Comment Skips Notification", func(t *testing.T) {
		f := newDiscussionFixture()
		selfAuthor := &domain.User{ID: authorID, Name: "Alice", Username: "alice"}

		f.discussionRepo.On("GetByID", ctx, discussionID).Return(discussion, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, authorID).Return(true, nil).Once()
		f.userRepo.On("GetByID", ctx, authorID).Return(selfAuthor, nil).Once()
		f.commentRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		comment, err := f.svc.AddComment(ctx, authorID, domain.CreateCommentInput{DiscussionID: discussionID, Content: "forgot to add the date"})

		assert.NoError(t, err)
		assert.NotNil(t, comment)
		f.notifRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})
}

func TestDiscussionService_AddReply(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	commentAuthorID := uuid.New()
	replierID := uuid.New()
	discussionID := uuid.New()
	commentID := uuid.New()

	group := &domain.Group{ID: groupID, Name: "Hiking Club"}
	discussion := &domain.Discussion{ID: discussionID, GroupID: groupID, AuthorID: uuid.New(), Title: "First hike"}
	comment := &domain.Comment{ID: commentID, DiscussionID: discussionID, AuthorID: commentAuthorID}
	replier := &domain.User{ID: replierID, Name: "Carol", Username: "carol"}

	t.Run("Notifies Comment Author", func(t *testing.T) {
		f := newDiscussionFixture()

		f.commentRepo.On("GetByID", ctx, commentID).Return(comment, nil).Once()
		f.discussionRepo.On("GetByID", ctx, discussionID).Return(discussion, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.membershipRepo.On("Exists", ctx, groupID, replierID).Return(true, nil).Once()
		f.userRepo.On("GetByID", ctx, replierID).Return(replier, nil).Once()
		f.replyRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Reply) bool {
			return r.CommentID == commentID && r.AuthorID == replierID
		})).Return(nil).Once()
		f.notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifNewReply && n.ReceiverID == commentAuthorID
		})).Return(nil).Once()

		reply, err := f.svc.AddReply(ctx, replierID, domain.CreateReplyInput{CommentID: commentID, Content: "same here"})

		assert.NoError(t, err)
		assert.Equal(t, "carol", reply.Author.Username)
		f.notifRepo.AssertExpectations(t)
	})

	t.Run("Missing Comment", func(t *testing.T) {
		f := newDiscussionFixture()

		f.commentRepo.On("GetByID", ctx, commentID).Return(nil, nil).Once()

		reply, err := f.svc.AddReply(ctx, replierID, domain.CreateReplyInput{CommentID: commentID, Content: "same here"})

		assert.Nil(t, reply)
		var notFoundErr *service.NotFoundError
		assert.True(t, errors.As(err, &notFoundErr))
	})
}
