package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"tribehub/internal/config"
	"tribehub/internal/repository"
)

type Services struct {
	Auth         AuthService
	User         UserService
	Group        GroupService
	Invitation   InvitationService
	Discussion   DiscussionService
	Reaction     ReactionService
	Notification NotificationService
	Email        EmailService
	Media        MediaService
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailSvc := NewEmailService(cfg)
	mediaSvc := NewMediaService(minioClient, cfg)

	return &Services{
		Auth:       NewAuthService(repos.User, repos.Session, emailSvc, cfg),
		User:       NewUserService(repos.User, mediaSvc),
		Group:      NewGroupService(repos.Group, repos.Membership, repos.User, repos.Discussion),
		Invitation: NewInvitationService(repos.Invitation, repos.Group, repos.User, repos.Membership, repos.Notification, emailSvc),
		Discussion: NewDiscussionService(
			repos.Discussion, repos.Comment, repos.Reply, repos.Reaction,
			repos.Group, repos.Membership, repos.User, repos.Notification,
			redisClient,
		),
		Reaction: NewReactionService(
			repos.Reaction, repos.Discussion, repos.Comment,
			repos.Group, repos.Membership, repos.User, repos.Notification,
		),
		Notification: NewNotificationService(repos.Notification, repos.Group, repos.Membership, repos.Discussion, redisClient),
		Email:        emailSvc,
		Media:        mediaSvc,
	}
}
