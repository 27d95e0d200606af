package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tribehub/internal/domain"
	"tribehub/internal/repository"
)

const unreadCountCacheTTL = time.Minute

type NotificationService interface {
	ListForUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResponse[domain.NotificationView], error)
	ListForGroup(ctx context.Context, userID, groupID uuid.UUID) ([]domain.NotificationView, error)
	ListInvites(ctx context.Context, userID uuid.UUID) ([]domain.NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	// MarkDiscussionRead bulk-marks the user's notifications for one
	// discussion and returns them with the discussion they point at.
	MarkDiscussionRead(ctx context.Context, userID, groupID, discussionID uuid.UUID) ([]domain.Notification, *domain.Discussion, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	// Delete removes a notification; only its receiver may do so.
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
}

type notificationService struct {
	notifRepo      repository.NotificationRepository
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	discussionRepo repository.DiscussionRepository
	redisClient    *redis.Client
}

func NewNotificationService(
	notifRepo repository.NotificationRepository,
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	discussionRepo repository.DiscussionRepository,
	redisClient *redis.Client,
) NotificationService {
	return &notificationService{
		notifRepo:      notifRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		discussionRepo: discussionRepo,
		redisClient:    redisClient,
	}
}

func unreadCountCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s:unread_count", userID)
}

func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResponse[domain.NotificationView], error) {
	params.Validate()

	notifications, total, err := s.notifRepo.ListByReceiver(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	response := domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total)
	return &response, nil
}

func (s *notificationService) ListForGroup(ctx context.Context, userID, groupID uuid.UUID) ([]domain.NotificationView, error) {
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

	return s.notifRepo.ListByReceiverAndGroup(ctx, userID, groupID)
}

func (s *notificationService) ListInvites(ctx context.Context, userID uuid.UUID) ([]domain.NotificationView, error) {
	return s.notifRepo.ListByReceiverAndType(ctx, userID, domain.NotifInvite)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	cacheKey := unreadCountCacheKey(userID)
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return count, nil
			}
		}
	}

	count, err := s.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.redisClient != nil {
		if err := s.redisClient.Set(ctx, cacheKey, count, unreadCountCacheTTL).Err(); err != nil {
			log.Printf("Failed to cache unread count for user %s: %v", userID, err)
		}
	}
	return count, nil
}

func (s *notificationService) MarkDiscussionRead(ctx context.Context, userID, groupID, discussionID uuid.UUID) ([]domain.Notification, *domain.Discussion, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, NotFoundf("Group with id %s does not exist", groupID)
	}

	isMember, err := s.membershipRepo.Exists(ctx, groupID, userID)
	if err != nil {
		return nil, nil, err
	}
	if !isMember {
		return nil, nil, Forbiddenf("You are not a member of %s group", group.Name)
	}

	discussion, err := s.discussionRepo.GetByID(ctx, discussionID)
	if err != nil {
		return nil, nil, err
	}
	if discussion == nil || discussion.GroupID != groupID {
		return nil, nil, NotFoundf("Discussion with id %s does not exist in %s group", discussionID, group.Name)
	}

	notifications, err := s.notifRepo.MarkDiscussionAsRead(ctx, userID, groupID, discussionID)
	if err != nil {
		return nil, nil, err
	}

	s.invalidateUnreadCount(ctx, userID)
	return notifications, discussion, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notifRepo.MarkAllAsRead(ctx, userID); err != nil {
		return err
	}
	s.invalidateUnreadCount(ctx, userID)
	return nil
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	notif, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notif == nil {
		return NotFoundf("Notification with id %s does not exist", notificationID)
	}

	if notif.ReceiverID != userID {
		return Forbiddenf("You can only delete your own notifications")
	}

	if err := s.notifRepo.Delete(ctx, notificationID); err != nil {
		return err
	}
	s.invalidateUnreadCount(ctx, userID)
	return nil
}

func (s *notificationService) invalidateUnreadCount(ctx context.Context, userID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, unreadCountCacheKey(userID)).Err(); err != nil {
		log.Printf("Failed to invalidate unread count for user %s: %v", userID, err)
	}
}
