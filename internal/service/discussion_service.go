package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"tribehub/internal/domain"
	"tribehub/internal/repository"
)

const discussionCacheTTL = 5 * time.Minute

type DiscussionService interface {
	Create(ctx context.Context, authorID uuid.UUID, input domain.CreateDiscussionInput) (*domain.Discussion, error)
	ListByGroup(ctx context.Context, groupID, userID uuid.UUID) ([]domain.Discussion, error)
	Get(ctx context.Context, discussionID, userID uuid.UUID) (*domain.DiscussionDetail, error)
	AddComment(ctx context.Context, authorID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error)
	AddReply(ctx context.Context, authorID uuid.UUID, input domain.CreateReplyInput) (*domain.Reply, error)
}

type discussionService struct {
	discussionRepo repository.DiscussionRepository
	commentRepo    repository.CommentRepository
	replyRepo      repository.ReplyRepository
	reactionRepo   repository.ReactionRepository
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	notifRepo      repository.NotificationRepository
	redisClient    *redis.Client
}

func NewDiscussionService(
	discussionRepo repository.DiscussionRepository,
	commentRepo repository.CommentRepository,
	replyRepo repository.ReplyRepository,
	reactionRepo repository.ReactionRepository,
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	redisClient *redis.Client,
) DiscussionService {
	return &discussionService{
		discussionRepo: discussionRepo,
		commentRepo:    commentRepo,
		replyRepo:      replyRepo,
		reactionRepo:   reactionRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		notifRepo:      notifRepo,
		redisClient:    redisClient,
	}
}

func discussionListCacheKey(groupID uuid.UUID) string {
	return fmt.Sprintf("group:%s:discussions", groupID)
}

// requireMember resolves the group and rejects non-members.
func (s *discussionService) requireMember(ctx context.Context, groupID, userID uuid.UUID) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFoundf("Group with id %s does not exist", groupID)
	}

	isMember, err := s.membershipRepo.Exists(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, Forbiddenf("You are not a member of %s group", group.Name)
	}
	return group, nil
}

func (s *discussionService) Create(ctx context.Context, authorID uuid.UUID, input domain.CreateDiscussionInput) (*domain.Discussion, error) {
	if len(input.Title) < 3 || len(input.Title) > 40 {
		return nil, Validationf("title must be between 3 and 40 characters")
	}
	if len(input.Content) < 10 {
		return nil, Validationf("content must be at least 10 characters")
	}

	group, err := s.requireMember(ctx, input.GroupID, authorID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, NotFoundf("User not found")
	}

	discussion := &domain.Discussion{
		ID:       uuid.New(),
		GroupID:  input.GroupID,
		AuthorID: authorID,
		Title:    input.Title,
		Content:  input.Content,
	}

	if err := s.discussionRepo.Create(ctx, discussion); err != nil {
		return nil, err
	}

	// Every member gets the announcement, the author included, so the
	// discussion shows as unread for the whole group.
	memberIDs, err := s.membershipRepo.ListMemberIDs(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s created a new discussion in %s group", author.Name, group.Name)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(10)
	for _, memberID := range memberIDs {
		memberID := memberID
		g.Go(func() error {
			notif := &domain.Notification{
				ID:           uuid.New(),
				SenderID:     authorID,
				ReceiverID:   memberID,
				GroupID:      group.ID,
				DiscussionID: &discussion.ID,
				Type:         domain.NotifDiscussionCreated,
				Message:      message,
			}
			return s.notifRepo.Create(gctx, notif)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.invalidateDiscussionCache(ctx, group.ID)

	return discussion, nil
}

func (s *discussionService) ListByGroup(ctx context.Context, groupID, userID uuid.UUID) ([]domain.Discussion, error) {
	if _, err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	cacheKey := discussionListCacheKey(groupID)
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var discussions []domain.Discussion
			if err := json.Unmarshal(cached, &discussions); err == nil {
				return discussions, nil
			}
		}
	}

	discussions, err := s.discussionRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(discussions); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, data, discussionCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache discussions for group %s: %v", groupID, err)
			}
		}
	}

	return discussions, nil
}

func (s *discussionService) Get(ctx context.Context, discussionID, userID uuid.UUID) (*domain.DiscussionDetail, error) {
	discussion, err := s.discussionRepo.GetByID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, NotFoundf("Discussion with id %s does not exist", discussionID)
	}

	if _, err := s.requireMember(ctx, discussion.GroupID, userID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByDiscussion(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		replies, err := s.replyRepo.ListByComment(ctx, comments[i].ID)
		if err != nil {
			return nil, err
		}
		comments[i].Replies = replies
	}

	counts, err := s.reactionRepo.CountByTarget(ctx, domain.TargetDiscussion, discussionID)
	if err != nil {
		return nil, err
	}

	creator, err := s.userRepo.GetByID(ctx, discussion.AuthorID)
	if err != nil {
		return nil, err
	}

	detail := &domain.DiscussionDetail{
		Discussion: *discussion,
		Comments:   comments,
		Likes:      counts.Likes,
		Dislikes:   counts.Dislikes,
	}
	if creator != nil {
		profile := creator.Profile()
		detail.Creator = &profile
	}
	return detail, nil
}

func (s *discussionService) AddComment(ctx context.Context, authorID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error) {
	if input.Content == "" {
		return nil, Validationf("content is required")
	}

	discussion, err := s.discussionRepo.GetByID(ctx, input.DiscussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, NotFoundf("Discussion with id %s does not exist", input.DiscussionID)
	}

	if _, err := s.requireMember(ctx, discussion.GroupID, authorID); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, NotFoundf("User not found")
	}

	comment := &domain.Comment{
		ID:           uuid.New(),
		DiscussionID: input.DiscussionID,
		AuthorID:     authorID,
		Content:      input.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if discussion.AuthorID != authorID {
		notif := &domain.Notification{
			ID:           uuid.New(),
			SenderID:     authorID,
			ReceiverID:   discussion.AuthorID,
			GroupID:      discussion.GroupID,
			DiscussionID: &discussion.ID,
			Type:         domain.NotifNewComment,
			Message:      fmt.Sprintf("%s commented on your discussion %s", author.Name, discussion.Title),
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			return nil, err
		}
	}

	profile := author.Profile()
	comment.Author = &profile
	return comment, nil
}

func (s *discussionService) AddReply(ctx context.Context, authorID uuid.UUID, input domain.CreateReplyInput) (*domain.Reply, error) {
	if input.Content == "" {
		return nil, Validationf("content is required")
	}

	comment, err := s.commentRepo.GetByID(ctx, input.CommentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, NotFoundf("Comment with id %s does not exist", input.CommentID)
	}

	discussion, err := s.discussionRepo.GetByID(ctx, comment.DiscussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, NotFoundf("Discussion with id %s does not exist", comment.DiscussionID)
	}

	if _, err := s.requireMember(ctx, discussion.GroupID, authorID); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, NotFoundf("User not found")
	}

	reply := &domain.Reply{
		ID:        uuid.New(),
		CommentID: input.CommentID,
		AuthorID:  authorID,
		Content:   input.Content,
	}

	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	if comment.AuthorID != authorID {
		notif := &domain.Notification{
			ID:           uuid.New(),
			SenderID:     authorID,
			ReceiverID:   comment.AuthorID,
			GroupID:      discussion.GroupID,
			DiscussionID: &discussion.ID,
			Type:         domain.NotifNewReply,
			Message:      fmt.Sprintf("%s replied to your comment on %s", author.Name, discussion.Title),
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			return nil, err
		}
	}

	profile := author.Profile()
	reply.Author = &profile
	return reply, nil
}

func (s *discussionService) invalidateDiscussionCache(ctx context.Context, groupID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, discussionListCacheKey(groupID)).Err(); err != nil {
		log.Printf("Failed to invalidate discussion cache for group %s: %v", groupID, err)
	}
}
