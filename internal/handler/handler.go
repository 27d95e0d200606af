package handler

import "tribehub/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Group        *GroupHandler
	Discussion   *DiscussionHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Group:        NewGroupHandler(services.Group, services.Invitation),
		Discussion:   NewDiscussionHandler(services.Discussion, services.Reaction),
		Notification: NewNotificationHandler(services.Notification),
	}
}
