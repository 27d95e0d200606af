package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tribehub/internal/domain"
	"tribehub/internal/repository"
)

type ReactionService interface {
	// React toggles the user's reaction on a discussion or comment. Reacting
	// with the kind already held removes it; the opposite kind must be
	// removed before switching.
	React(ctx context.Context, userID uuid.UUID, targetType domain.ReactionTarget, targetID uuid.UUID, kind domain.ReactionKind) (*domain.ReactionResult, error)
	Totals(ctx context.Context, userID, discussionID uuid.UUID) (*domain.ReactionCounts, error)
}

type reactionService struct {
	reactionRepo   repository.ReactionRepository
	discussionRepo repository.DiscussionRepository
	commentRepo    repository.CommentRepository
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	notifRepo      repository.NotificationRepository
}

func NewReactionService(
	reactionRepo repository.ReactionRepository,
	discussionRepo repository.DiscussionRepository,
	commentRepo repository.CommentRepository,
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
) ReactionService {
	return &reactionService{
		reactionRepo:   reactionRepo,
		discussionRepo: discussionRepo,
		commentRepo:    commentRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		notifRepo:      notifRepo,
	}
}

// reactionTarget carries what React needs regardless of target type: the
// author to notify and the discussion the target belongs to.
type reactionTarget struct {
	authorID   uuid.UUID
	discussion *domain.Discussion
}

func (s *reactionService) resolveTarget(ctx context.Context, targetType domain.ReactionTarget, targetID uuid.UUID) (*reactionTarget, error) {
	switch targetType {
	case domain.TargetDiscussion:
		discussion, err := s.discussionRepo.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if discussion == nil {
			return nil, NotFoundf("Discussion with id %s does not exist", targetID)
		}
		return &reactionTarget{authorID: discussion.AuthorID, discussion: discussion}, nil

	case domain.TargetComment:
		comment, err := s.commentRepo.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if comment == nil {
			return nil, NotFoundf("Comment with id %s does not exist", targetID)
		}
		discussion, err := s.discussionRepo.GetByID(ctx, comment.DiscussionID)
		if err != nil {
			return nil, err
		}
		if discussion == nil {
			return nil, NotFoundf("Discussion with id %s does not exist", comment.DiscussionID)
		}
		return &reactionTarget{authorID: comment.AuthorID, discussion: discussion}, nil

	default:
		return nil, Validationf("target type must be either discussion or comment")
	}
}

func (s *reactionService) React(ctx context.Context, userID uuid.UUID, targetType domain.ReactionTarget, targetID uuid.UUID, kind domain.ReactionKind) (*domain.ReactionResult, error) {
	if !kind.IsValid() {
		return nil, Validationf("kind must be either like or dislike")
	}

	target, err := s.resolveTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(ctx, target.discussion.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFoundf("Group with id %s does not exist", target.discussion.GroupID)
	}

	isMember, err := s.membershipRepo.Exists(ctx, group.ID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, Forbiddenf("You are not a member of %s group", group.Name)
	}

	existing, err := s.reactionRepo.GetByUserAndTarget(ctx, userID, targetType, targetID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.Kind == kind {
			if err := s.reactionRepo.Delete(ctx, existing.ID); err != nil {
				return nil, err
			}
			return &domain.ReactionResult{Applied: false, Kind: kind}, nil
		}
		return nil, Conflictf("You already %sd this, remove the %s first", kind.Opposite(), kind.Opposite())
	}

	reaction := &domain.Reaction{
		ID:         uuid.New(),
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
		Kind:       kind,
	}
	if err := s.reactionRepo.Create(ctx, reaction); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflictf("You already reacted to this")
		}
		return nil, err
	}

	if kind == domain.ReactionLike && target.authorID != userID {
		if err := s.notifyLike(ctx, userID, target); err != nil {
			return nil, err
		}
	}

	return &domain.ReactionResult{Applied: true, Kind: kind}, nil
}

func (s *reactionService) notifyLike(ctx context.Context, userID uuid.UUID, target *reactionTarget) error {
	sender, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	senderName := userID.String()
	if sender != nil {
		senderName = sender.Name
	}

	notif := &domain.Notification{
		ID:           uuid.New(),
		SenderID:     userID,
		ReceiverID:   target.authorID,
		GroupID:      target.discussion.GroupID,
		DiscussionID: &target.discussion.ID,
		Type:         domain.NotifReaction,
		Message:      fmt.Sprintf("%s liked %s", senderName, target.discussion.Title),
	}
	return s.notifRepo.Create(ctx, notif)
}

func (s *reactionService) Totals(ctx context.Context, userID, discussionID uuid.UUID) (*domain.ReactionCounts, error) {
	discussion, err := s.discussionRepo.GetByID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, NotFoundf("Discussion with id %s does not exist", discussionID)
	}

	group, err := s.groupRepo.GetByID(ctx, discussion.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFoundf("Group with id %s does not exist", discussion.GroupID)
	}

	isMember, err := s.membershipRepo.Exists(ctx, group.ID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, Forbiddenf("You are not a member of %s group", group.Name)
	}

	counts, err := s.reactionRepo.CountByTarget(ctx, domain.TargetDiscussion, discussionID)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
